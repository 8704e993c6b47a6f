// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mempool pending transactions waiting for the next block
package mempool

import (
	"sync"
	"time"

	"github.com/BirthdayResearch/jellyfishsdk-sub005/types"
	lru "github.com/hashicorp/golang-lru"
	log "github.com/inconshreveable/log15"
)

// DisableLog silence the module
func DisableLog() {
	mlog.SetHandler(log.DiscardHandler())
}

// Mempool FIFO queue of checked transactions
type Mempool struct {
	proxyMtx sync.Mutex
	cache    *txCache
	addedTxs *lru.Cache
}

// New mempool sized by cfg
func New(cfg *types.Mempool) *Mempool {
	size := int64(10240)
	if cfg != nil && cfg.PoolCacheSize > 0 {
		size = cfg.PoolCacheSize
	}
	pool := &Mempool{cache: newTxCache(size)}
	var err error
	pool.addedTxs, err = lru.New(mempoolAddedTxSize)
	if err != nil {
		panic(err)
	}
	return pool
}

// PushTx check and queue tx, a tx already packed into a block is rejected
func (mem *Mempool) PushTx(tx *types.Transaction) error {
	if tx == nil || len(tx.Execer) == 0 {
		return types.ErrEmptyTx
	}
	if tx.From() == "" {
		return types.ErrFromAddr
	}
	txid := tx.TxID()
	mem.proxyMtx.Lock()
	defer mem.proxyMtx.Unlock()
	if mem.addedTxs.Contains(txid) {
		return types.ErrTxDup
	}
	if err := mem.cache.Push(tx, time.Now().Unix()); err != nil {
		mlog.Debug("PushTx", "txid", txid, "err", err)
		return err
	}
	mlog.Debug("PushTx", "txid", txid, "execer", string(tx.Execer), "size", mem.cache.Size())
	return nil
}

// GetTxList up to max pending transactions, oldest first. They stay queued
// until RemoveTxs.
func (mem *Mempool) GetTxList(max int) []*types.Transaction {
	mem.proxyMtx.Lock()
	defer mem.proxyMtx.Unlock()
	return mem.cache.Front(max)
}

// RemoveTxs drop packed transactions and remember their ids
func (mem *Mempool) RemoveTxs(txs []*types.Transaction) {
	mem.proxyMtx.Lock()
	defer mem.proxyMtx.Unlock()
	for _, tx := range txs {
		txid := tx.TxID()
		mem.cache.Remove(txid)
		mem.addedTxs.Add(txid, nil)
	}
}

// Exists txid is pending
func (mem *Mempool) Exists(txid string) bool {
	mem.proxyMtx.Lock()
	defer mem.proxyMtx.Unlock()
	return mem.cache.Exists(txid)
}

// GetLatestTx last ten accepted transactions
func (mem *Mempool) GetLatestTx() []*types.Transaction {
	mem.proxyMtx.Lock()
	defer mem.proxyMtx.Unlock()
	return append([]*types.Transaction(nil), mem.cache.GetLatestTx()...)
}

// Size pending count
func (mem *Mempool) Size() int {
	mem.proxyMtx.Lock()
	defer mem.proxyMtx.Unlock()
	return mem.cache.Size()
}
