// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package blockchain single node block producer. It drains the mempool every
// interval, runs the executors and commits state and local indexes.
package blockchain

import (
	"context"
	"sync"
	"time"

	dbm "github.com/BirthdayResearch/jellyfishsdk-sub005/common/db"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/mempool"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/pluginmgr"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/types"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/util"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
	gometrics "github.com/rcrowley/go-metrics"
)

var (
	chainlog = log.New("module", "blockchain")

	// DefCacheSize tx results kept in memory
	DefCacheSize = 10240

	blockTimer  = gometrics.GetOrRegisterTimer("blockchain/produce", nil)
	heightGauge = gometrics.GetOrRegisterGauge("blockchain/height", nil)
	txCounter   = gometrics.GetOrRegisterCounter("blockchain/txs", nil)
	txFailed    = gometrics.GetOrRegisterCounter("blockchain/txs/failed", nil)
)

// BlockChain node state plus the block loop
type BlockChain struct {
	cfg        *types.Config
	mem        *mempool.Mempool
	stateDB    dbm.DB
	localDB    dbm.DB
	blockStore *BlockStore

	mu     sync.RWMutex
	header *types.Header

	waitMu  sync.Mutex
	waiters map[string][]chan *types.TxResult
}

// New open the databases named by cfg.Store and write genesis on first start
func New(cfg *types.Config, mem *mempool.Mempool) (*BlockChain, error) {
	store := cfg.Store
	stateDB, err := dbm.NewDB(store.Name, store.Driver, store.DbPath, store.DbCache)
	if err != nil {
		return nil, errors.Wrap(err, "open state db")
	}
	localDB, err := dbm.NewDB(store.Name+"-local", store.Driver, store.DbPath, store.DbCache)
	if err != nil {
		stateDB.Close()
		return nil, errors.Wrap(err, "open local db")
	}
	return NewWithDB(cfg, mem, stateDB, localDB)
}

// NewWithDB chain on top of already opened databases
func NewWithDB(cfg *types.Config, mem *mempool.Mempool, stateDB, localDB dbm.DB) (*BlockChain, error) {
	pluginmgr.InitExec(cfg)
	bs, err := NewBlockStore(localDB, DefCacheSize)
	if err != nil {
		return nil, err
	}
	chain := &BlockChain{
		cfg:        cfg,
		mem:        mem,
		stateDB:    stateDB,
		localDB:    localDB,
		blockStore: bs,
		waiters:    make(map[string][]chan *types.TxResult),
	}
	header, err := bs.LastHeader()
	if err != nil {
		return nil, err
	}
	if header == nil {
		header, err = chain.genesis()
		if err != nil {
			return nil, err
		}
	}
	chain.header = header
	heightGauge.Update(header.Height)
	chainlog.Info("BlockChain", "height", header.Height, "driver", cfg.Store.Driver)
	return chain, nil
}

func (chain *BlockChain) genesis() (*types.Header, error) {
	sdb := dbm.NewStateDB(chain.stateDB)
	if _, err := util.RunGenesis(sdb, chain.cfg); err != nil {
		return nil, err
	}
	batch := chain.stateDB.NewBatch(true)
	sdb.Flush(batch)
	if err := batch.Write(); err != nil {
		return nil, errors.Wrap(err, "write genesis state")
	}
	header := &types.Header{Height: 0, BlockTime: time.Now().Unix()}
	local := chain.localDB.NewBatch(true)
	chain.blockStore.SaveBlock(local, header, nil)
	if err := local.Write(); err != nil {
		return nil, errors.Wrap(err, "write genesis header")
	}
	chainlog.Info("genesis", "assets", len(chain.cfg.Genesis.Assets), "accounts", len(chain.cfg.Genesis.Accounts))
	return header, nil
}

// Run produce a block every BlockInterval milliseconds until ctx is done.
// Empty blocks are produced too, expiry runs on height.
func (chain *BlockChain) Run(ctx context.Context) {
	interval := time.Duration(chain.cfg.BlockChain.BlockInterval) * time.Millisecond
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			chainlog.Info("block loop stopped", "height", chain.CurrentHeight())
			return
		case <-ticker.C:
			if _, err := chain.ProduceBlock(); err != nil {
				chainlog.Error("ProduceBlock", "err", err)
			}
		}
	}
}

// Close the databases
func (chain *BlockChain) Close() {
	chain.mu.Lock()
	defer chain.mu.Unlock()
	chain.stateDB.Close()
	chain.localDB.Close()
	chainlog.Info("blockchain closed")
}

// LastHeader header of the last committed block
func (chain *BlockChain) LastHeader() *types.Header {
	chain.mu.RLock()
	defer chain.mu.RUnlock()
	h := *chain.header
	return &h
}

// CurrentHeight height of the last committed block
func (chain *BlockChain) CurrentHeight() int64 {
	chain.mu.RLock()
	defer chain.mu.RUnlock()
	return chain.header.Height
}

// GetConfig node config
func (chain *BlockChain) GetConfig() *types.Config {
	return chain.cfg
}
