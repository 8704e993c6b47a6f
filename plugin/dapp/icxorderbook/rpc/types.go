// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rpc ICX json rpc service
package rpc

import (
	"sync/atomic"
	"time"

	ty "github.com/BirthdayResearch/jellyfishsdk-sub005/plugin/dapp/icxorderbook/types"
	rpctypes "github.com/BirthdayResearch/jellyfishsdk-sub005/rpc/types"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/types"
	log "github.com/inconshreveable/log15"
)

var rlog = log.New("module", "icxorderbook.rpc")

// Jrpc ICX service, one method per verb
type Jrpc struct {
	cli *channelClient
}

type channelClient struct {
	nonce int64
	rpctypes.ChannelClient
}

// Init register the ICX service, name is the executor name
func Init(name string, s rpctypes.RPCServer) {
	cli := newChannelClient()
	if err := cli.Init(ty.JRPCName, s, &Jrpc{cli: cli}); err != nil {
		rlog.Error("Init", "executor", name, "err", err)
		panic(err)
	}
}

func newChannelClient() *channelClient {
	return &channelClient{nonce: time.Now().UnixNano()}
}

// nextNonce keeps txids of identical requests apart
func (c *channelClient) nextNonce() int64 {
	return atomic.AddInt64(&c.nonce, 1)
}

func (c *channelClient) submit(tx *types.Transaction) (*rpctypes.ReplyTxID, error) {
	txid, err := c.Submit(tx)
	if err != nil {
		rlog.Error("submit", "action", ty.ActionName(tx), "err", err)
		return nil, err
	}
	return &rpctypes.ReplyTxID{Txid: txid}, nil
}
