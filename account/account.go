// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package account per asset balance ledger with free and frozen balances
package account

//package for account manger
//1. load from db
//2. save to db
//3. KVSet
//4. Transfer
//5. Frozen / Active / TransferFrozen

import (
	"strings"

	dbm "github.com/BirthdayResearch/jellyfishsdk-sub005/common/db"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/types"
	log "github.com/inconshreveable/log15"
)

var alog = log.New("module", "account")

// DB balances of one asset
type DB struct {
	db               dbm.KV
	accountKeyPerfix []byte
	symbol           string
}

// NewAccountDB account db of symbol on top of the state db
func NewAccountDB(symbol string, db dbm.KV) (*DB, error) {
	if symbol == "" || strings.ContainsRune(symbol, '-') {
		return nil, types.ErrAssetNotExist
	}
	acc := &DB{
		accountKeyPerfix: []byte(SymbolPrefix(symbol)),
		symbol:           symbol,
	}
	acc.SetDB(db)
	return acc, nil
}

// NewCoinsAccount account db of the native asset
func NewCoinsAccount(db dbm.KV) *DB {
	acc, err := NewAccountDB(types.DFI, db)
	if err != nil {
		panic(err)
	}
	return acc
}

// SymbolPrefix state key prefix of an asset
func SymbolPrefix(symbol string) string {
	return "mavl-asset-" + symbol + "-"
}

// SetDB switch the underlying state db
func (acc *DB) SetDB(db dbm.KV) *DB {
	acc.db = db
	return acc
}

// Symbol asset of this db
func (acc *DB) Symbol() string {
	return acc.symbol
}

// AccountKey state key of addr
func (acc *DB) AccountKey(addr string) []byte {
	key := make([]byte, 0, len(acc.accountKeyPerfix)+len(addr))
	key = append(key, acc.accountKeyPerfix...)
	key = append(key, []byte(addr)...)
	return key
}

// LoadAccount missing accounts load as zero
func (acc *DB) LoadAccount(addr string) *types.Account {
	value, err := acc.db.Get(acc.AccountKey(addr))
	if err != nil {
		return &types.Account{Asset: acc.symbol, Addr: addr}
	}
	var acc1 types.Account
	err = types.Decode(value, &acc1)
	if err != nil {
		panic(err) //数据库已经损坏
	}
	return &acc1
}

// SaveAccount write account to state
func (acc *DB) SaveAccount(acc1 *types.Account) {
	set := acc.GetKVSet(acc1)
	for i := 0; i < len(set); i++ {
		err := acc.db.Set(set[i].Key, set[i].Value)
		if err != nil {
			panic(err)
		}
	}
}

// GetKVSet account as state writes
func (acc *DB) GetKVSet(acc1 *types.Account) (kvset []*types.KeyValue) {
	acc1.Asset = acc.symbol
	value := types.Encode(acc1)
	kvset = append(kvset, &types.KeyValue{
		Key:   acc.AccountKey(acc1.Addr),
		Value: value,
	})
	return kvset
}

// CheckTransfer from has enough free balance
func (acc *DB) CheckTransfer(from, to string, amount int64) error {
	if !types.CheckAmount(amount) {
		return types.ErrAmount
	}
	accFrom := acc.LoadAccount(from)
	if accFrom.Balance-amount < 0 {
		return types.ErrNoBalance
	}
	return nil
}

// Transfer move free balance
func (acc *DB) Transfer(from, to string, amount int64) (*types.Receipt, error) {
	if !types.CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	if from == to {
		return nil, types.ErrSendSameToRecv
	}
	accFrom := acc.LoadAccount(from)
	accTo := acc.LoadAccount(to)
	if accFrom.Balance-amount < 0 {
		alog.Error("Transfer", "symbol", acc.symbol, "from", from, "balance", accFrom.Balance, "amount", amount)
		return nil, types.ErrNoBalance
	}
	copyfrom := *accFrom
	copyto := *accTo
	accFrom.Balance -= amount
	accTo.Balance += amount
	acc.SaveAccount(accFrom)
	acc.SaveAccount(accTo)
	return acc.receipt(types.TyLogTransfer,
		&types.ReceiptAccountTransfer{Prev: &copyfrom, Current: accFrom},
		&types.ReceiptAccountTransfer{Prev: &copyto, Current: accTo},
	), nil
}

// Frozen move amount of addr from free to frozen
func (acc *DB) Frozen(addr string, amount int64) (*types.Receipt, error) {
	if !types.CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	acc1 := acc.LoadAccount(addr)
	if acc1.Balance-amount < 0 {
		alog.Error("Frozen", "symbol", acc.symbol, "addr", addr, "balance", acc1.Balance, "amount", amount)
		return nil, types.ErrNoBalance
	}
	copyacc := *acc1
	acc1.Balance -= amount
	acc1.Frozen += amount
	acc.SaveAccount(acc1)
	return acc.receipt(types.TyLogExecFrozen, &types.ReceiptAccountTransfer{Prev: &copyacc, Current: acc1}), nil
}

// Active move amount of addr from frozen back to free
func (acc *DB) Active(addr string, amount int64) (*types.Receipt, error) {
	if !types.CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	acc1 := acc.LoadAccount(addr)
	if acc1.Frozen-amount < 0 {
		alog.Error("Active", "symbol", acc.symbol, "addr", addr, "frozen", acc1.Frozen, "amount", amount)
		return nil, types.ErrNoBalance
	}
	copyacc := *acc1
	acc1.Balance += amount
	acc1.Frozen -= amount
	acc.SaveAccount(acc1)
	return acc.receipt(types.TyLogExecActive, &types.ReceiptAccountTransfer{Prev: &copyacc, Current: acc1}), nil
}

// TransferFrozen pay amount out of from's frozen balance into to's free balance
func (acc *DB) TransferFrozen(from, to string, amount int64) (*types.Receipt, error) {
	if !types.CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	if from == to {
		return acc.Active(from, amount)
	}
	accFrom := acc.LoadAccount(from)
	accTo := acc.LoadAccount(to)
	if accFrom.Frozen-amount < 0 {
		alog.Error("TransferFrozen", "symbol", acc.symbol, "from", from, "frozen", accFrom.Frozen, "amount", amount)
		return nil, types.ErrNoBalance
	}
	copyfrom := *accFrom
	copyto := *accTo
	accFrom.Frozen -= amount
	accTo.Balance += amount
	acc.SaveAccount(accFrom)
	acc.SaveAccount(accTo)
	return acc.receipt(types.TyLogTransFrozen,
		&types.ReceiptAccountTransfer{Prev: &copyfrom, Current: accFrom},
		&types.ReceiptAccountTransfer{Prev: &copyto, Current: accTo},
	), nil
}

// GenesisInit credit free balance out of thin air, height 0 only
func (acc *DB) GenesisInit(addr string, amount int64) (*types.Receipt, error) {
	if !types.CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	acc1 := acc.LoadAccount(addr)
	copyacc := *acc1
	acc1.Balance += amount
	acc.SaveAccount(acc1)
	return acc.receipt(types.TyLogGenesis, &types.ReceiptAccountTransfer{Prev: &copyacc, Current: acc1}), nil
}

func (acc *DB) receipt(ty int32, changes ...*types.ReceiptAccountTransfer) *types.Receipt {
	receipt := &types.Receipt{Ty: types.ExecOk}
	for _, c := range changes {
		receipt.KV = append(receipt.KV, acc.GetKVSet(c.Current)...)
		receipt.Logs = append(receipt.Logs, &types.ReceiptLog{Ty: ty, Log: types.Encode(c)})
	}
	return receipt
}

// MergeReceipt append receipt2 to receipt1
func MergeReceipt(receipt1, receipt2 *types.Receipt) *types.Receipt {
	if receipt1 == nil {
		return receipt2
	}
	if receipt2 == nil {
		return receipt1
	}
	receipt1.KV = append(receipt1.KV, receipt2.KV...)
	receipt1.Logs = append(receipt1.Logs, receipt2.Logs...)
	return receipt1
}
