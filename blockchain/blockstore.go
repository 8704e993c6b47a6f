// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blockchain

import (
	"fmt"

	dbm "github.com/BirthdayResearch/jellyfishsdk-sub005/common/db"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/types"
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
)

var (
	lastHeaderKey = []byte("blockchain-LastHeader")
	headerPrefix  = "blockchain-Header-"
	txResultPre   = "blockchain-TxResult-"
)

func calcHeaderKey(height int64) []byte {
	return []byte(fmt.Sprintf("%s%012d", headerPrefix, height))
}

func calcTxResultKey(txid string) []byte {
	return []byte(txResultPre + txid)
}

// BlockStore headers and tx results, kept in the local db next to the
// executor indexes
type BlockStore struct {
	db      dbm.DB
	txCache *lru.Cache
}

// NewBlockStore wrap db, the last cacheSize tx results stay in memory
func NewBlockStore(db dbm.DB, cacheSize int) (*BlockStore, error) {
	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "NewBlockStore")
	}
	return &BlockStore{db: db, txCache: cache}, nil
}

// LastHeader nil before genesis
func (bs *BlockStore) LastHeader() (*types.Header, error) {
	value, err := bs.db.Get(lastHeaderKey)
	if err == dbm.ErrNotFoundInDb {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "LastHeader")
	}
	var header types.Header
	if err := types.Decode(value, &header); err != nil {
		return nil, err
	}
	return &header, nil
}

// GetHeader header at height
func (bs *BlockStore) GetHeader(height int64) (*types.Header, error) {
	value, err := bs.db.Get(calcHeaderKey(height))
	if err == dbm.ErrNotFoundInDb {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var header types.Header
	if err := types.Decode(value, &header); err != nil {
		return nil, err
	}
	return &header, nil
}

// GetTxResult ErrTxNotExist until the tx is in a block
func (bs *BlockStore) GetTxResult(txid string) (*types.TxResult, error) {
	if v, ok := bs.txCache.Get(txid); ok {
		return v.(*types.TxResult), nil
	}
	value, err := bs.db.Get(calcTxResultKey(txid))
	if err == dbm.ErrNotFoundInDb {
		return nil, types.ErrTxNotExist
	}
	if err != nil {
		return nil, err
	}
	var result types.TxResult
	if err := types.Decode(value, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SaveBlock write header and results into batch
func (bs *BlockStore) SaveBlock(batch dbm.Batch, header *types.Header, results []*types.TxResult) {
	for _, r := range results {
		batch.Set(calcTxResultKey(r.Txid), types.Encode(r))
	}
	value := types.Encode(header)
	batch.Set(calcHeaderKey(header.Height), value)
	batch.Set(lastHeaderKey, value)
}

// CacheResults after the batch is written
func (bs *BlockStore) CacheResults(results []*types.TxResult) {
	for _, r := range results {
		bs.txCache.Add(r.Txid, r)
	}
}
