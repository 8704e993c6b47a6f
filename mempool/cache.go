// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mempool

import (
	"container/list"

	"github.com/BirthdayResearch/jellyfishsdk-sub005/types"
)

type txCache struct {
	size       int
	txMap      map[string]*list.Element
	txList     *list.List
	txFrontTen []*types.Transaction
	accMap     map[string]int64
}

// Item 包装交易
type Item struct {
	value     *types.Transaction
	enterTime int64
}

func newTxCache(cacheSize int64) *txCache {
	return &txCache{
		size:   int(cacheSize),
		txMap:  make(map[string]*list.Element, cacheSize),
		txList: list.New(),
		accMap: make(map[string]int64),
	}
}

// TxNumOfAccount 账户在mempool中的交易数量
func (cache *txCache) TxNumOfAccount(addr string) int64 {
	return cache.accMap[addr]
}

// Exists txid is pending
func (cache *txCache) Exists(txid string) bool {
	_, exists := cache.txMap[txid]
	return exists
}

// Push append tx to the queue
func (cache *txCache) Push(tx *types.Transaction, now int64) error {
	txid := tx.TxID()
	if cache.Exists(txid) {
		return types.ErrTxDup
	}
	if cache.txList.Len() >= cache.size {
		return types.ErrMemFull
	}
	if cache.TxNumOfAccount(tx.From()) >= maxTxNumPerAccount {
		return ErrManyTx
	}
	cache.txMap[txid] = cache.txList.PushBack(&Item{value: tx, enterTime: now})
	cache.accMap[tx.From()]++

	if len(cache.txFrontTen) >= 10 {
		cache.txFrontTen = cache.txFrontTen[len(cache.txFrontTen)-9:]
	}
	cache.txFrontTen = append(cache.txFrontTen, tx)
	return nil
}

// GetLatestTx 最新加入的十条交易
func (cache *txCache) GetLatestTx() []*types.Transaction {
	return cache.txFrontTen
}

// Remove drop txid from the queue, missing ids are ignored
func (cache *txCache) Remove(txid string) {
	elem, ok := cache.txMap[txid]
	if !ok {
		return
	}
	item := cache.txList.Remove(elem).(*Item)
	delete(cache.txMap, txid)
	addr := item.value.From()
	cache.accMap[addr]--
	if cache.accMap[addr] <= 0 {
		delete(cache.accMap, addr)
	}
}

// Front at most n transactions in arrival order
func (cache *txCache) Front(n int) []*types.Transaction {
	txs := make([]*types.Transaction, 0, n)
	for e := cache.txList.Front(); e != nil && len(txs) < n; e = e.Next() {
		txs = append(txs, e.Value.(*Item).value)
	}
	return txs
}

// Size 已存交易数目
func (cache *txCache) Size() int {
	return cache.txList.Len()
}
