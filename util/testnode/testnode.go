// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package testnode in process node for integration tests. Blocks are
// produced on demand instead of by the ticker.
package testnode

import (
	"fmt"
	"sync/atomic"

	"github.com/BirthdayResearch/jellyfishsdk-sub005/blockchain"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/client"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/mempool"
	_ "github.com/BirthdayResearch/jellyfishsdk-sub005/plugin" // register plugins
	"github.com/BirthdayResearch/jellyfishsdk-sub005/rpc"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/rpc/jsonclient"
	_ "github.com/BirthdayResearch/jellyfishsdk-sub005/system" // register system dapps
	"github.com/BirthdayResearch/jellyfishsdk-sub005/types"
	log "github.com/inconshreveable/log15"
)

var tlog = log.New("module", "testnode")

// IcxMock node without the block loop
type IcxMock struct {
	cfg    *types.Config
	mem    *mempool.Mempool
	chain  *blockchain.BlockChain
	rpcapi *rpc.JSONRPCServer
	nonce  int64
}

// New node on cfg, memdb unless cfg.Store says otherwise
func New(cfg *types.Config) *IcxMock {
	mem := mempool.New(cfg.Mempool)
	chain, err := blockchain.New(cfg, mem)
	if err != nil {
		panic(err)
	}
	return &IcxMock{cfg: cfg, mem: mem, chain: chain}
}

// Listen start the json rpc server on a free loopback port
func (m *IcxMock) Listen() string {
	m.cfg.RPC.JrpcBindAddr = "127.0.0.1:0"
	m.rpcapi = rpc.NewJSONRPCServer(m.cfg.RPC, m.chain)
	port, err := m.rpcapi.Listen()
	if err != nil {
		panic(err)
	}
	return fmt.Sprintf("http://127.0.0.1:%d", port)
}

// GetAPI node api
func (m *IcxMock) GetAPI() client.API {
	return m.chain
}

// GetChain the chain
func (m *IcxMock) GetChain() *blockchain.BlockChain {
	return m.chain
}

// GetCfg node config
func (m *IcxMock) GetCfg() *types.Config {
	return m.cfg
}

// NextNonce unique nonce for hand built transactions
func (m *IcxMock) NextNonce() int64 {
	return atomic.AddInt64(&m.nonce, 1)
}

// SendTx submit tx and pack it into a new block alone
func (m *IcxMock) SendTx(tx *types.Transaction) (*types.TxResult, error) {
	txid, err := m.chain.Submit(tx)
	if err != nil {
		return nil, err
	}
	if _, err := m.chain.ProduceBlock(); err != nil {
		return nil, err
	}
	return m.chain.QueryTx(txid)
}

// SendTxOK SendTx that fails on a rejected tx
func (m *IcxMock) SendTxOK(tx *types.Transaction) error {
	r, err := m.SendTx(tx)
	if err != nil {
		return err
	}
	if r.Error != "" {
		return fmt.Errorf("tx %s rejected: %s", r.Txid, r.Error)
	}
	return nil
}

// WaitHeight produce empty blocks until height
func (m *IcxMock) WaitHeight(height int64) error {
	for m.chain.CurrentHeight() < height {
		if _, err := m.chain.ProduceBlock(); err != nil {
			return err
		}
	}
	return nil
}

// NewJSONClient client of the listening rpc server, prefix is the service name
func (m *IcxMock) NewJSONClient(url, prefix string) *jsonclient.JSONClient {
	cli, err := jsonclient.New(prefix, url)
	if err != nil {
		panic(err)
	}
	return cli
}

// Close rpc then chain
func (m *IcxMock) Close() {
	if m.rpcapi != nil {
		m.rpcapi.Close()
	}
	m.chain.Close()
	tlog.Debug("testnode closed", "mempool", m.mem.Size())
}
