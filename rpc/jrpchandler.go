// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/BirthdayResearch/jellyfishsdk-sub005/client"
	rpctypes "github.com/BirthdayResearch/jellyfishsdk-sub005/rpc/types"
	mty "github.com/BirthdayResearch/jellyfishsdk-sub005/system/dapp/manage/types"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/types"
)

// maxWaitTimeout seconds, also the default
const maxWaitTimeout = 60

// Chain33 node service: balances, governance and tx results
type Chain33 struct {
	cli   client.API
	nonce int64
}

func newChain33(api client.API) *Chain33 {
	return &Chain33{cli: api, nonce: time.Now().UnixNano()}
}

// GetBalance amounts of one address in one asset
func (c *Chain33) GetBalance(in *rpctypes.ReqAddrAsset, result *rpctypes.ReplyBalance) error {
	if in == nil {
		return types.ErrInvalidParam
	}
	asset := in.Asset
	if asset == "" {
		asset = types.DFI
	}
	acc, err := c.cli.GetBalance(in.Addr, asset)
	if err != nil {
		return err
	}
	*result = rpctypes.ReplyBalance{
		Addr:    in.Addr,
		Asset:   asset,
		Balance: types.FormatAmount(acc.Balance),
		Frozen:  types.FormatAmount(acc.Frozen),
	}
	return nil
}

// GetParam governance parameter, empty value when unset
func (c *Chain33) GetParam(in *rpctypes.ReqParam, result *rpctypes.ReplyParam) error {
	if in == nil || in.Name == "" {
		return types.ErrInvalidParam
	}
	value, err := c.cli.GetParam(in.Name)
	if err != nil && err != types.ErrNotFound {
		return err
	}
	*result = rpctypes.ReplyParam{Name: in.Name, Value: value}
	return nil
}

// SetGov submit a governance change, From must be a super manager
func (c *Chain33) SetGov(in *rpctypes.ReqSetGov, result *rpctypes.ReplyTxID) error {
	if in == nil || in.From == "" || in.Key == "" {
		return types.ErrInvalidParam
	}
	op := in.Op
	if op == "" {
		op = mty.OpSet
	}
	tx := types.CreateTx(mty.ManageX, mty.NewModifyAction(in.Key, in.Value, op), in.From, atomic.AddInt64(&c.nonce, 1))
	txid, err := c.cli.Submit(tx)
	if err != nil {
		rlog.Error("SetGov", "key", in.Key, "err", err)
		return err
	}
	result.Txid = txid
	return nil
}

// GetHeight height of the last block
func (c *Chain33) GetHeight(in *rpctypes.ReqNil, result *types.Int64) error {
	result.Data = c.cli.CurrentHeight()
	return nil
}

// QueryTx inclusion result of a tx
func (c *Chain33) QueryTx(in *rpctypes.ReqTxID, result *types.TxResult) error {
	if in == nil || in.Txid == "" {
		return types.ErrInvalidParam
	}
	r, err := c.cli.QueryTx(in.Txid)
	if err != nil {
		return err
	}
	*result = *r
	return nil
}

// WaitTx block until the tx is in a block, at most Timeout seconds
func (c *Chain33) WaitTx(in *rpctypes.ReqWaitTx, result *types.TxResult) error {
	if in == nil || in.Txid == "" {
		return types.ErrInvalidParam
	}
	timeout := in.Timeout
	if timeout <= 0 || timeout > maxWaitTimeout {
		timeout = maxWaitTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
	defer cancel()
	r, err := c.cli.WaitTx(ctx, in.Txid)
	if err != nil {
		return err
	}
	*result = *r
	return nil
}
