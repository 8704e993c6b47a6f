// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package util

import (
	"sort"

	"github.com/BirthdayResearch/jellyfishsdk-sub005/account"
	dbm "github.com/BirthdayResearch/jellyfishsdk-sub005/common/db"
	mexec "github.com/BirthdayResearch/jellyfishsdk-sub005/system/dapp/manage/executor"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/types"
	"github.com/pkg/errors"
)

// Setup seed data strategy: List names what should exist, Has reports what
// already does, Create adds one item
type Setup[T any] interface {
	Name() string
	List() []T
	Has(db dbm.KV, item T) bool
	Create(db dbm.KV, item T) (*types.Receipt, error)
}

// RunSetup create every listed item that is missing. Returns the merged
// receipt and how many items were created.
func RunSetup[T any](db dbm.KV, s Setup[T]) (*types.Receipt, int, error) {
	receipt := &types.Receipt{Ty: types.ExecOk}
	created := 0
	for _, item := range s.List() {
		if s.Has(db, item) {
			continue
		}
		r, err := s.Create(db, item)
		if err != nil {
			return nil, created, errors.Wrapf(err, "setup %s", s.Name())
		}
		account.MergeReceipt(receipt, r)
		created++
	}
	ulog.Debug("RunSetup", "setup", s.Name(), "created", created)
	return receipt, created, nil
}

// AssetSetup registers asset symbols
type AssetSetup struct {
	Symbols []string
	Height  int64
}

// Name setup name
func (s *AssetSetup) Name() string { return "assets" }

// List symbols to register
func (s *AssetSetup) List() []string { return s.Symbols }

// Has symbol registered
func (s *AssetSetup) Has(db dbm.KV, symbol string) bool {
	return account.AssetExists(db, symbol)
}

// Create register symbol
func (s *AssetSetup) Create(db dbm.KV, symbol string) (*types.Receipt, error) {
	return account.RegisterAsset(db, symbol, s.Height)
}

// BalanceSetup genesis balances, an account that already holds the asset is
// left alone
type BalanceSetup struct {
	Accounts []*types.GenesisAccount
}

// Name setup name
func (s *BalanceSetup) Name() string { return "balances" }

// List accounts to credit
func (s *BalanceSetup) List() []*types.GenesisAccount { return s.Accounts }

// Has account already funded
func (s *BalanceSetup) Has(db dbm.KV, item *types.GenesisAccount) bool {
	acc, err := account.NewAccountDB(item.Asset, db)
	if err != nil {
		return false
	}
	a := acc.LoadAccount(item.Addr)
	return a.Balance != 0 || a.Frozen != 0
}

// Create credit the account
func (s *BalanceSetup) Create(db dbm.KV, item *types.GenesisAccount) (*types.Receipt, error) {
	if !account.AssetExists(db, item.Asset) {
		return nil, errors.Wrap(types.ErrAssetNotExist, item.Asset)
	}
	amount, err := types.ParseAmount(item.Amount)
	if err != nil {
		return nil, err
	}
	acc, err := account.NewAccountDB(item.Asset, db)
	if err != nil {
		return nil, err
	}
	return acc.GenesisInit(item.Addr, amount)
}

// GovParam one governance parameter
type GovParam struct {
	Key   string
	Value string
}

// GovSetup initial governance parameters
type GovSetup struct {
	Params map[string]string
}

// Name setup name
func (s *GovSetup) Name() string { return "gov" }

// List parameters sorted by key
func (s *GovSetup) List() []GovParam {
	keys := make([]string, 0, len(s.Params))
	for k := range s.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	params := make([]GovParam, 0, len(keys))
	for _, k := range keys {
		params = append(params, GovParam{Key: k, Value: s.Params[k]})
	}
	return params
}

// Has parameter set
func (s *GovSetup) Has(db dbm.KV, p GovParam) bool {
	_, err := mexec.GetGovParam(db, p.Key)
	return err == nil
}

// Create set parameter
func (s *GovSetup) Create(db dbm.KV, p GovParam) (*types.Receipt, error) {
	return mexec.GenesisGov(db, p.Key, p.Value)
}

// RunGenesis assets, then balances, then governance parameters
func RunGenesis(db dbm.KV, cfg *types.Config) (*types.Receipt, error) {
	receipt := &types.Receipt{Ty: types.ExecOk}
	var assets []string
	var accounts []*types.GenesisAccount
	if cfg.Genesis != nil {
		assets = cfg.Genesis.Assets
		accounts = cfg.Genesis.Accounts
	}
	if !containsString(assets, types.DFI) {
		assets = append([]string{types.DFI}, assets...)
	}
	r, _, err := RunSetup[string](db, &AssetSetup{Symbols: assets})
	if err != nil {
		return nil, err
	}
	account.MergeReceipt(receipt, r)
	r2, _, err := RunSetup[*types.GenesisAccount](db, &BalanceSetup{Accounts: accounts})
	if err != nil {
		return nil, err
	}
	account.MergeReceipt(receipt, r2)
	r3, _, err := RunSetup[GovParam](db, &GovSetup{Params: cfg.Gov})
	if err != nil {
		return nil, err
	}
	account.MergeReceipt(receipt, r3)
	return receipt, nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
