// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blockchain

import (
	"context"

	"github.com/BirthdayResearch/jellyfishsdk-sub005/account"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/common/address"
	dbm "github.com/BirthdayResearch/jellyfishsdk-sub005/common/db"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/client"
	drivers "github.com/BirthdayResearch/jellyfishsdk-sub005/system/dapp"
	mexec "github.com/BirthdayResearch/jellyfishsdk-sub005/system/dapp/manage/executor"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/types"
)

var _ client.API = (*BlockChain)(nil)

// Submit queue tx for the next block
func (chain *BlockChain) Submit(tx *types.Transaction) (string, error) {
	if err := chain.mem.PushTx(tx); err != nil {
		return "", err
	}
	return tx.TxID(), nil
}

// GetBalance free and frozen amounts of addr in asset
func (chain *BlockChain) GetBalance(addr, asset string) (*types.Account, error) {
	if err := address.CheckAddress(addr); err != nil {
		return nil, err
	}
	chain.mu.RLock()
	defer chain.mu.RUnlock()
	acc, err := account.NewAccountDB(asset, dbm.NewStateDB(chain.stateDB))
	if err != nil {
		return nil, err
	}
	return acc.LoadAccount(addr), nil
}

// GetParam governance parameter, ErrNotFound when unset
func (chain *BlockChain) GetParam(name string) (string, error) {
	chain.mu.RLock()
	defer chain.mu.RUnlock()
	return mexec.GetGovParam(dbm.NewStateDB(chain.stateDB), name)
}

// Query read only executor call against the last committed block
func (chain *BlockChain) Query(driver, funcName string, param types.Message) (types.Message, error) {
	chain.mu.RLock()
	defer chain.mu.RUnlock()
	d, err := drivers.LoadDriver(driver, chain.header.Height)
	if err != nil {
		return nil, err
	}
	d.SetStateDB(dbm.NewStateDB(chain.stateDB))
	d.SetLocalDB(chain.localDB)
	d.SetEnv(chain.header.Height, chain.header.BlockTime)
	d.SetConfig(chain.cfg)
	return d.Query(funcName, types.Encode(param))
}

// QueryTx inclusion result of txid
func (chain *BlockChain) QueryTx(txid string) (*types.TxResult, error) {
	return chain.blockStore.GetTxResult(txid)
}

// GetHeader header at height
func (chain *BlockChain) GetHeader(height int64) (*types.Header, error) {
	return chain.blockStore.GetHeader(height)
}

// WaitTx block until txid is in a block. Returns ErrTimeout when the ctx
// deadline passes first.
func (chain *BlockChain) WaitTx(ctx context.Context, txid string) (*types.TxResult, error) {
	ch := make(chan *types.TxResult, 1)
	chain.waitMu.Lock()
	chain.waiters[txid] = append(chain.waiters[txid], ch)
	chain.waitMu.Unlock()
	defer chain.removeWaiter(txid, ch)

	if r, err := chain.QueryTx(txid); err == nil {
		return r, nil
	}
	select {
	case r := <-ch:
		return r, nil
	case <-ctx.Done():
		if ctx.Err() == context.DeadlineExceeded {
			return nil, types.ErrTimeout
		}
		return nil, ctx.Err()
	}
}

func (chain *BlockChain) removeWaiter(txid string, ch chan *types.TxResult) {
	chain.waitMu.Lock()
	defer chain.waitMu.Unlock()
	list := chain.waiters[txid]
	for i, c := range list {
		if c == ch {
			list = append(list[:i], list[i+1:]...)
			break
		}
	}
	if len(list) == 0 {
		delete(chain.waiters, txid)
	} else {
		chain.waiters[txid] = list
	}
}

func (chain *BlockChain) notify(results []*types.TxResult) {
	chain.waitMu.Lock()
	defer chain.waitMu.Unlock()
	for _, r := range results {
		for _, ch := range chain.waiters[r.Txid] {
			select {
			case ch <- r:
			default:
			}
		}
	}
}
