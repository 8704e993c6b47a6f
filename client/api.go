// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package client narrow view of the node consumed by rpc and plugins
package client

import (
	"context"

	"github.com/BirthdayResearch/jellyfishsdk-sub005/types"
)

// API operations of a running node
type API interface {
	// Submit queue tx for the next block, returns the txid at once
	Submit(tx *types.Transaction) (string, error)
	GetBalance(addr, asset string) (*types.Account, error)
	// GetParam governance parameter value
	GetParam(name string) (string, error)
	CurrentHeight() int64
	// Query read only call into an executor against the last block
	Query(driver, funcName string, param types.Message) (types.Message, error)
	QueryTx(txid string) (*types.TxResult, error)
	// WaitTx block until txid is included or ctx is done
	WaitTx(ctx context.Context, txid string) (*types.TxResult, error)
	GetConfig() *types.Config
}
