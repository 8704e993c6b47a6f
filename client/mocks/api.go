// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mocks testify mock of client.API
package mocks

import (
	"context"

	"github.com/BirthdayResearch/jellyfishsdk-sub005/types"
	"github.com/stretchr/testify/mock"
)

// API mock of client.API
type API struct {
	mock.Mock
}

// Submit mock
func (m *API) Submit(tx *types.Transaction) (string, error) {
	args := m.Called(tx)
	return args.String(0), args.Error(1)
}

// GetBalance mock
func (m *API) GetBalance(addr, asset string) (*types.Account, error) {
	args := m.Called(addr, asset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Account), args.Error(1)
}

// GetParam mock
func (m *API) GetParam(name string) (string, error) {
	args := m.Called(name)
	return args.String(0), args.Error(1)
}

// CurrentHeight mock
func (m *API) CurrentHeight() int64 {
	args := m.Called()
	return args.Get(0).(int64)
}

// Query mock
func (m *API) Query(driver, funcName string, param types.Message) (types.Message, error) {
	args := m.Called(driver, funcName, param)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0), args.Error(1)
}

// QueryTx mock
func (m *API) QueryTx(txid string) (*types.TxResult, error) {
	args := m.Called(txid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.TxResult), args.Error(1)
}

// WaitTx mock
func (m *API) WaitTx(ctx context.Context, txid string) (*types.TxResult, error) {
	args := m.Called(ctx, txid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.TxResult), args.Error(1)
}

// GetConfig mock
func (m *API) GetConfig() *types.Config {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*types.Config)
}
