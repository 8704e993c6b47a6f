// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dbm "github.com/BirthdayResearch/jellyfishsdk-sub005/common/db"
	mty "github.com/BirthdayResearch/jellyfishsdk-sub005/system/dapp/manage/types"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/types"
)

type action struct {
	db       dbm.KV
	cfg      *types.Config
	txhash   []byte
	fromaddr string
	height   int64
}

func newAction(m *Manage, tx *types.Transaction) *action {
	return &action{m.GetStateDB(), m.GetConfig(), tx.Hash(), tx.From(), m.GetHeight()}
}

func (a *action) modifyConfig(modify *mty.ModifyConfig) (*types.Receipt, error) {
	if !IsSuperManager(a.cfg, a.fromaddr) {
		clog.Error("modifyConfig", "from", a.fromaddr, "err", mty.ErrNoPrivilege)
		return nil, mty.ErrNoPrivilege
	}
	if len(modify.Key) == 0 {
		return nil, mty.ErrBadConfigKey
	}
	switch modify.Op {
	case mty.OpSet:
		if _, err := types.ParseAmount(modify.Value); err != nil {
			clog.Error("modifyConfig", "key", modify.Key, "value", modify.Value, "err", err)
			return nil, mty.ErrBadConfigValue
		}
	case mty.OpDelete:
	default:
		return nil, mty.ErrBadConfigOp
	}

	prev := &types.ConfigItem{Key: modify.Key}
	if value, err := a.db.Get(manageKey(modify.Key)); err == nil {
		if err = types.Decode(value, prev); err != nil {
			clog.Error("modifyConfig", "decode db key", modify.Key)
			return nil, err
		}
	}
	cur := &types.ConfigItem{Key: modify.Key, Addr: a.fromaddr}
	kv := &types.KeyValue{Key: manageKey(modify.Key)}
	if modify.Op == mty.OpSet {
		cur.Value = modify.Value
		kv.Value = types.Encode(cur)
	}
	if err := a.db.Set(kv.Key, kv.Value); err != nil {
		return nil, err
	}
	log := &types.ReceiptConfig{Prev: prev, Current: cur}
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{kv},
		Logs: []*types.ReceiptLog{{Ty: mty.TyLogModifyConfig, Log: types.Encode(log)}},
	}, nil
}

// GetGovParam value of a governance parameter, types.ErrNotFound if unset
func GetGovParam(db dbm.KV, key string) (string, error) {
	value, err := db.Get(manageKey(key))
	if err != nil {
		return "", types.ErrNotFound
	}
	var item types.ConfigItem
	if err = types.Decode(value, &item); err != nil {
		return "", err
	}
	return item.Value, nil
}

// GenesisGov write an initial parameter without a privilege check
func GenesisGov(db dbm.KV, key, value string) (*types.Receipt, error) {
	if len(key) == 0 {
		return nil, mty.ErrBadConfigKey
	}
	if _, err := types.ParseAmount(value); err != nil {
		return nil, mty.ErrBadConfigValue
	}
	item := &types.ConfigItem{Key: key, Value: value}
	kv := &types.KeyValue{Key: manageKey(key), Value: types.Encode(item)}
	if err := db.Set(kv.Key, kv.Value); err != nil {
		return nil, err
	}
	log := &types.ReceiptConfig{Prev: &types.ConfigItem{Key: key}, Current: item}
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{kv},
		Logs: []*types.ReceiptLog{{Ty: mty.TyLogModifyConfig, Log: types.Encode(log)}},
	}, nil
}
