// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	ty "github.com/BirthdayResearch/jellyfishsdk-sub005/plugin/dapp/icxorderbook/types"
	rpctypes "github.com/BirthdayResearch/jellyfishsdk-sub005/rpc/types"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/types"
)

func (c *channelClient) createOrder(in *ty.CreateOrderReq) (*rpctypes.ReplyTxID, error) {
	from, p, err := in.Action()
	if err != nil {
		return nil, err
	}
	return c.submit(ty.CreateOrderTx(from, p, c.nextNonce()))
}

func (c *channelClient) makeOffer(in *ty.MakeOfferReq) (*rpctypes.ReplyTxID, error) {
	from, p, err := in.Action()
	if err != nil {
		return nil, err
	}
	return c.submit(ty.MakeOfferTx(from, p, c.nextNonce()))
}

func (c *channelClient) submitDFCHTLC(in *ty.SubmitDFCHTLCReq) (*rpctypes.ReplyTxID, error) {
	p, err := in.Action()
	if err != nil {
		return nil, err
	}
	return c.submit(ty.SubmitDFCHTLCTx(in.From, p, c.nextNonce()))
}

func (c *channelClient) submitExtHTLC(in *ty.SubmitExtHTLCReq) (*rpctypes.ReplyTxID, error) {
	p, err := in.Action()
	if err != nil {
		return nil, err
	}
	return c.submit(ty.SubmitExtHTLCTx(in.From, p, c.nextNonce()))
}

func (c *channelClient) claimDFCHTLC(in *ty.ClaimDFCHTLCReq) (*rpctypes.ReplyTxID, error) {
	p := &ty.IcxClaimDFCHTLC{DfchtlcTx: in.DfchtlcTx, Seed: in.Seed}
	return c.submit(ty.ClaimDFCHTLCTx(in.From, p, c.nextNonce()))
}

func (c *channelClient) closeOrder(in *ty.CloseOrderReq) (*rpctypes.ReplyTxID, error) {
	return c.submit(ty.CloseOrderTx(in.From, &ty.IcxCloseOrder{OrderTx: in.OrderTx}, c.nextNonce()))
}

func (c *channelClient) closeOffer(in *ty.CloseOfferReq) (*rpctypes.ReplyTxID, error) {
	return c.submit(ty.CloseOfferTx(in.From, &ty.IcxCloseOffer{OfferTx: in.OfferTx}, c.nextNonce()))
}

func (c *channelClient) listOrders(in *ty.ReqListOrders) (*ty.ReplyListOrders, error) {
	reply, err := c.Query(ty.IcxX, ty.FuncListOrders, in)
	if err != nil {
		return nil, err
	}
	return reply.(*ty.ReplyListOrders), nil
}

func (c *channelClient) getOrder(in *types.ReqString) (*ty.ReplyListOrders, error) {
	reply, err := c.Query(ty.IcxX, ty.FuncGetOrder, in)
	if err != nil {
		return nil, err
	}
	return reply.(*ty.ReplyListOrders), nil
}

func (c *channelClient) listHTLCs(in *ty.ReqListHTLCs) (*ty.ReplyListHTLCs, error) {
	reply, err := c.Query(ty.IcxX, ty.FuncListHTLCs, in)
	if err != nil {
		return nil, err
	}
	return reply.(*ty.ReplyListHTLCs), nil
}
