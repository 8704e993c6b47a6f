// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package util

import (
	"github.com/BirthdayResearch/jellyfishsdk-sub005/common"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/common/address"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/types"
)

// SwapContext parties and secrets shared by the steps of one swap test.
// Build it once per suite and pass it around.
type SwapContext struct {
	Maker       string
	MakerPubkey string
	Taker       string
	TakerPubkey string
	Manager     string
	Symbol      string
	Chain       string
	Network     string
	Seed        string
	Hash        string
}

// NewSwapContext fresh keys for maker, taker and manager
func NewSwapContext() *SwapContext {
	c := &SwapContext{
		Symbol:  types.DFI,
		Chain:   types.BTC,
		Network: types.DefaultICX().BTCNetwork,
	}
	c.Maker, c.MakerPubkey = Genaddress()
	c.Taker, c.TakerPubkey = Genaddress()
	c.Manager, _ = Genaddress()
	c.NewSecret()
	return c
}

// NewSecret replace seed and hash
func (c *SwapContext) NewSecret() {
	c.Seed, c.Hash = common.NewSecret()
}

// HTLCScriptAddress p2sh address standing for the foreign htlc script
func (c *SwapContext) HTLCScriptAddress() string {
	script, err := common.Hex2Bytes(c.Hash)
	if err != nil {
		panic(err)
	}
	addr, err := address.BTCScriptAddress(script, c.Network)
	if err != nil {
		panic(err)
	}
	return addr
}

// Config node config with maker and taker funded and the manager as super
// manager. Gov params: 0.001 DFI fee per BTC, 1000 DFI per BTC.
func (c *SwapContext) Config(makerDFI, takerDFI string) *types.Config {
	cfg, err := types.InitCfgString("")
	if err != nil {
		panic(err)
	}
	cfg.SuperManager = []string{c.Manager}
	cfg.Genesis = &types.Genesis{
		Assets: []string{c.Symbol},
		Accounts: []*types.GenesisAccount{
			{Addr: c.Maker, Asset: c.Symbol, Amount: makerDFI},
			{Addr: c.Taker, Asset: c.Symbol, Amount: takerDFI},
		},
	}
	cfg.Gov = map[string]string{
		"ICX_TAKERFEE_PER_BTC": "0.001",
		"DFI_PER_BTC":          "1000",
	}
	return cfg
}
