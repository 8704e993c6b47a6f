// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"testing"

	"github.com/BirthdayResearch/jellyfishsdk-sub005/account"
	dbm "github.com/BirthdayResearch/jellyfishsdk-sub005/common/db"
	ty "github.com/BirthdayResearch/jellyfishsdk-sub005/plugin/dapp/icxorderbook/types"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/types"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/util"
	"github.com/stretchr/testify/require"
)

// testChain minimal block loop: sweep, per tx overlay, local indexes, flush
type testChain struct {
	t      *testing.T
	cfg    *types.Config
	state  dbm.DB
	local  dbm.DB
	sdb    *dbm.StateDB
	height int64
	nonce  int64
}

func newTestChain(t *testing.T, cfg *types.Config) *testChain {
	state, err := dbm.NewGoMemDB("state", "", 0)
	require.NoError(t, err)
	local, err := dbm.NewGoMemDB("local", "", 0)
	require.NoError(t, err)
	c := &testChain{t: t, cfg: cfg, state: state, local: local, sdb: dbm.NewStateDB(state)}
	_, err = util.RunGenesis(c.sdb, cfg)
	require.NoError(t, err)
	c.flush()
	return c
}

func (c *testChain) driver() *ICX {
	d := newIcx().(*ICX)
	d.SetStateDB(c.sdb)
	d.SetLocalDB(c.local)
	d.SetEnv(c.height, 0)
	d.SetConfig(c.cfg)
	return d
}

func (c *testChain) flush() {
	batch := c.state.NewBatch(true)
	c.sdb.Flush(batch)
	require.NoError(c.t, batch.Write())
}

func (c *testChain) execLocal(d *ICX, tx *types.Transaction, r *types.Receipt, index int) {
	if r == nil {
		return
	}
	set, err := d.ExecLocal(tx, &types.ReceiptData{Ty: r.Ty, Logs: r.Logs}, index)
	require.NoError(c.t, err)
	for _, kv := range set.KV {
		require.NoError(c.t, c.local.Set(kv.Key, kv.Value))
	}
}

// block one new height holding txs, returns the error of every tx
func (c *testChain) block(txs ...*types.Transaction) []error {
	c.height++
	d := c.driver()
	r, err := d.BeginBlock()
	require.NoError(c.t, err)
	c.execLocal(d, nil, r, -1)
	errs := make([]error, len(txs))
	for i, tx := range txs {
		c.sdb.Begin()
		r, err := d.Exec(tx, i)
		if err != nil {
			c.sdb.Rollback()
			errs[i] = err
			continue
		}
		c.sdb.Commit()
		c.execLocal(d, tx, r, i)
	}
	c.flush()
	return errs
}

func (c *testChain) advance(n int) {
	for i := 0; i < n; i++ {
		c.block()
	}
}

// advanceTo empty blocks until height h
func (c *testChain) advanceTo(h int64) {
	for c.height < h {
		c.block()
	}
}

func (c *testChain) exec(tx *types.Transaction) error {
	return c.block(tx)[0]
}

func (c *testChain) nextNonce() int64 {
	c.nonce++
	return c.nonce
}

func (c *testChain) coins(addr string) *types.Account {
	return account.NewCoinsAccount(c.sdb).LoadAccount(addr)
}

func (c *testChain) order(id string) *ty.Order {
	order, err := c.driver().reader().getOrder(id)
	require.NoError(c.t, err)
	return order
}

func (c *testChain) offer(id string) *ty.Offer {
	offer, err := c.driver().reader().getOffer(id)
	require.NoError(c.t, err)
	return offer
}

func (c *testChain) dfcHTLC(id string) *ty.DFCHTLC {
	htlc, err := c.driver().reader().getDFCHTLC(id)
	require.NoError(c.t, err)
	return htlc
}

func (c *testChain) extHTLC(id string) *ty.ExtHTLC {
	htlc, err := c.driver().reader().getExtHTLC(id)
	require.NoError(c.t, err)
	return htlc
}

func (c *testChain) query(funcName string, req types.Message) (types.Message, error) {
	return c.driver().Query(funcName, types.Encode(req))
}

func amt(s string) int64 {
	v, err := types.ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return v
}

// checkOrderBooks amountToFill + reserved + consumed == amountFrom
func (c *testChain) checkOrderBooks(id string) {
	o := c.order(id)
	require.True(c.t, o.AmountToFill >= 0 && o.AmountToFill <= o.AmountFrom, "amountToFill %d", o.AmountToFill)
	require.Equal(c.t, o.AmountFrom, o.AmountToFill+o.Reserved+o.Consumed)
}
