// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dapp executor driver interface, base implementation and registry
package dapp

import (
	"github.com/BirthdayResearch/jellyfishsdk-sub005/account"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/common/address"
	dbm "github.com/BirthdayResearch/jellyfishsdk-sub005/common/db"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/types"
	log "github.com/inconshreveable/log15"
)

var blog = log.New("module", "execs.base")

// Driver one executor. A fresh driver is loaded for every block and every query.
type Driver interface {
	SetStateDB(dbm.KV)
	GetStateDB() dbm.KV
	SetLocalDB(dbm.KVDB)
	GetLocalDB() dbm.KVDB
	SetEnv(height, blocktime int64)
	SetConfig(cfg *types.Config)
	//驱动的名字，这个名称是固定的
	GetDriverName() string
	GetName() string
	// BeginBlock runs once per block before any transaction
	BeginBlock() (*types.Receipt, error)
	Exec(tx *types.Transaction, index int) (*types.Receipt, error)
	// ExecLocal tx is nil for the BeginBlock receipt
	ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error)
	Query(funcName string, params []byte) (types.Message, error)
}

// DriverBase defaults shared by every executor
type DriverBase struct {
	statedb   dbm.KV
	localdb   dbm.KVDB
	height    int64
	blocktime int64
	cfg       *types.Config
	child     Driver
}

// SetChild the embedding driver
func (d *DriverBase) SetChild(e Driver) {
	d.child = e
}

// GetName executor name, same as the driver name
func (d *DriverBase) GetName() string {
	return d.child.GetDriverName()
}

// GetAddr executor address
func (d *DriverBase) GetAddr() string {
	return ExecAddress(d.child.GetName())
}

// SetEnv block height and time
func (d *DriverBase) SetEnv(height, blocktime int64) {
	d.height = height
	d.blocktime = blocktime
}

// GetHeight current block height
func (d *DriverBase) GetHeight() int64 {
	return d.height
}

// GetBlockTime current block time
func (d *DriverBase) GetBlockTime() int64 {
	return d.blocktime
}

// SetConfig node config
func (d *DriverBase) SetConfig(cfg *types.Config) {
	d.cfg = cfg
}

// GetConfig node config
func (d *DriverBase) GetConfig() *types.Config {
	return d.cfg
}

// SetStateDB state overlay of the block
func (d *DriverBase) SetStateDB(db dbm.KV) {
	d.statedb = db
}

// GetStateDB state overlay of the block
func (d *DriverBase) GetStateDB() dbm.KV {
	return d.statedb
}

// SetLocalDB local index db
func (d *DriverBase) SetLocalDB(db dbm.KVDB) {
	d.localdb = db
}

// GetLocalDB local index db
func (d *DriverBase) GetLocalDB() dbm.KVDB {
	return d.localdb
}

// GetCoinsAccount native asset balances
func (d *DriverBase) GetCoinsAccount() *account.DB {
	return account.NewCoinsAccount(d.statedb)
}

// GetAccount balances of a registered asset
func (d *DriverBase) GetAccount(symbol string) (*account.DB, error) {
	if !account.AssetExists(d.statedb, symbol) {
		return nil, types.ErrAssetNotExist
	}
	return account.NewAccountDB(symbol, d.statedb)
}

// BeginBlock nothing by default
func (d *DriverBase) BeginBlock() (*types.Receipt, error) {
	return nil, nil
}

// ExecLocal nothing by default
func (d *DriverBase) ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return &types.LocalDBSet{}, nil
}

// Query not supported by default
func (d *DriverBase) Query(funcname string, params []byte) (types.Message, error) {
	blog.Debug("Query", "driver", d.child.GetDriverName(), "func", funcname)
	return nil, types.ErrQueryNotSupport
}

// ExecAddress address of an executor
func ExecAddress(name string) string {
	return address.ExecAddress(name)
}
