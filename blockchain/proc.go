// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blockchain

import (
	"bytes"
	"time"

	"github.com/BirthdayResearch/jellyfishsdk-sub005/common"
	dbm "github.com/BirthdayResearch/jellyfishsdk-sub005/common/db"
	drivers "github.com/BirthdayResearch/jellyfishsdk-sub005/system/dapp"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/types"
	"github.com/pkg/errors"
)

// blockExec executors and overlays of the block being built
type blockExec struct {
	cfg     *types.Config
	height  int64
	time    int64
	state   *dbm.StateDB
	local   *dbm.StateDB
	drivers map[string]drivers.Driver
}

func (b *blockExec) driver(name string) (drivers.Driver, error) {
	if d, ok := b.drivers[name]; ok {
		return d, nil
	}
	d, err := drivers.LoadDriver(name, b.height)
	if err != nil {
		return nil, err
	}
	d.SetStateDB(b.state)
	d.SetLocalDB(b.local)
	d.SetEnv(b.height, b.time)
	d.SetConfig(b.cfg)
	b.drivers[name] = d
	return d, nil
}

func (b *blockExec) execLocal(d drivers.Driver, tx *types.Transaction, r *types.ReceiptData, index int) error {
	set, err := d.ExecLocal(tx, r, index)
	if err != nil {
		return err
	}
	for _, kv := range set.KV {
		if err := b.local.Set(kv.Key, kv.Value); err != nil {
			return err
		}
	}
	return nil
}

// beginBlock block hooks of every executor, in name order
func (b *blockExec) beginBlock() error {
	for _, name := range drivers.ListDrivers() {
		d, err := b.driver(name)
		if err == types.ErrExecNotFound {
			continue
		}
		if err != nil {
			return err
		}
		receipt, err := d.BeginBlock()
		if err != nil {
			return errors.Wrapf(err, "BeginBlock %s", name)
		}
		if receipt == nil {
			continue
		}
		data := &types.ReceiptData{Ty: receipt.Ty, Logs: receipt.Logs}
		if err := b.execLocal(d, nil, data, -1); err != nil {
			return errors.Wrapf(err, "ExecLocal BeginBlock %s", name)
		}
	}
	return nil
}

// execTx a failing tx leaves no state change and is recorded with its error
func (b *blockExec) execTx(tx *types.Transaction, index int) *types.TxResult {
	result := &types.TxResult{
		Txid:   tx.TxID(),
		Height: b.height,
		Index:  int32(index),
		Execer: string(tx.Execer),
	}
	fail := func(err error) *types.TxResult {
		txFailed.Inc(1)
		result.Receipt = &types.ReceiptData{Ty: types.ExecErr}
		result.Error = err.Error()
		chainlog.Debug("execTx", "txid", result.Txid, "err", err)
		return result
	}
	d, err := b.driver(result.Execer)
	if err != nil {
		return fail(err)
	}
	b.state.Begin()
	receipt, err := d.Exec(tx, index)
	if err != nil {
		b.state.Rollback()
		return fail(err)
	}
	b.state.Commit()
	result.Receipt = &types.ReceiptData{Ty: receipt.Ty, Logs: receipt.Logs}
	if err := b.execLocal(d, tx, result.Receipt, index); err != nil {
		chainlog.Error("execTx ExecLocal", "txid", result.Txid, "err", err)
	}
	return result
}

// ProduceBlock build and commit the next block from the mempool
func (chain *BlockChain) ProduceBlock() (*types.Header, error) {
	start := time.Now()
	txs := chain.mem.GetTxList(int(chain.cfg.BlockChain.MaxTxsPerBlock))

	chain.mu.Lock()
	b := &blockExec{
		cfg:     chain.cfg,
		height:  chain.header.Height + 1,
		time:    start.Unix(),
		state:   dbm.NewStateDB(chain.stateDB),
		local:   dbm.NewStateDB(chain.localDB),
		drivers: make(map[string]drivers.Driver),
	}
	if err := b.beginBlock(); err != nil {
		chain.mu.Unlock()
		return nil, err
	}
	results := make([]*types.TxResult, 0, len(txs))
	var txids bytes.Buffer
	for i, tx := range txs {
		r := b.execTx(tx, i)
		results = append(results, r)
		txids.WriteString(r.Txid)
	}
	header := &types.Header{
		Height:    b.height,
		BlockTime: b.time,
		TxCount:   int64(len(txs)),
		TxHash:    common.HashHex(common.Sha256(txids.Bytes())),
	}
	if err := chain.commit(b, header, results); err != nil {
		chain.mu.Unlock()
		return nil, err
	}
	chain.header = header
	chain.mu.Unlock()

	chain.mem.RemoveTxs(txs)
	chain.notify(results)
	blockTimer.UpdateSince(start)
	heightGauge.Update(header.Height)
	txCounter.Inc(int64(len(txs)))
	chainlog.Debug("ProduceBlock", "height", header.Height, "txs", len(txs), "cost", time.Since(start))
	return header, nil
}

func (chain *BlockChain) commit(b *blockExec, header *types.Header, results []*types.TxResult) error {
	state := chain.stateDB.NewBatch(true)
	b.state.Flush(state)
	if err := state.Write(); err != nil {
		return errors.Wrapf(err, "write state of block %d", header.Height)
	}
	local := chain.localDB.NewBatch(true)
	b.local.Flush(local)
	chain.blockStore.SaveBlock(local, header, results)
	if err := local.Write(); err != nil {
		return errors.Wrapf(err, "write local of block %d", header.Height)
	}
	chain.blockStore.CacheResults(results)
	return nil
}
