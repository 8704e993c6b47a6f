// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	ty "github.com/BirthdayResearch/jellyfishsdk-sub005/plugin/dapp/icxorderbook/types"
	rpctypes "github.com/BirthdayResearch/jellyfishsdk-sub005/rpc/types"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/types"
)

// CreateOrder ICX.CreateOrder
func (j *Jrpc) CreateOrder(in *ty.CreateOrderReq, result *rpctypes.ReplyTxID) error {
	if in == nil {
		return types.ErrInvalidParam
	}
	reply, err := j.cli.createOrder(in)
	if err != nil {
		return err
	}
	*result = *reply
	return nil
}

// CloseOrder ICX.CloseOrder
func (j *Jrpc) CloseOrder(in *ty.CloseOrderReq, result *rpctypes.ReplyTxID) error {
	if in == nil {
		return types.ErrInvalidParam
	}
	reply, err := j.cli.closeOrder(in)
	if err != nil {
		return err
	}
	*result = *reply
	return nil
}

// MakeOffer ICX.MakeOffer
func (j *Jrpc) MakeOffer(in *ty.MakeOfferReq, result *rpctypes.ReplyTxID) error {
	if in == nil {
		return types.ErrInvalidParam
	}
	reply, err := j.cli.makeOffer(in)
	if err != nil {
		return err
	}
	*result = *reply
	return nil
}

// CloseOffer ICX.CloseOffer
func (j *Jrpc) CloseOffer(in *ty.CloseOfferReq, result *rpctypes.ReplyTxID) error {
	if in == nil {
		return types.ErrInvalidParam
	}
	reply, err := j.cli.closeOffer(in)
	if err != nil {
		return err
	}
	*result = *reply
	return nil
}

// SubmitDFCHTLC ICX.SubmitDFCHTLC
func (j *Jrpc) SubmitDFCHTLC(in *ty.SubmitDFCHTLCReq, result *rpctypes.ReplyTxID) error {
	if in == nil {
		return types.ErrInvalidParam
	}
	reply, err := j.cli.submitDFCHTLC(in)
	if err != nil {
		return err
	}
	*result = *reply
	return nil
}

// SubmitExtHTLC ICX.SubmitExtHTLC
func (j *Jrpc) SubmitExtHTLC(in *ty.SubmitExtHTLCReq, result *rpctypes.ReplyTxID) error {
	if in == nil {
		return types.ErrInvalidParam
	}
	reply, err := j.cli.submitExtHTLC(in)
	if err != nil {
		return err
	}
	*result = *reply
	return nil
}

// ClaimDFCHTLC ICX.ClaimDFCHTLC
func (j *Jrpc) ClaimDFCHTLC(in *ty.ClaimDFCHTLCReq, result *rpctypes.ReplyTxID) error {
	if in == nil {
		return types.ErrInvalidParam
	}
	reply, err := j.cli.claimDFCHTLC(in)
	if err != nil {
		return err
	}
	*result = *reply
	return nil
}

// ListOrders ICX.ListOrders
func (j *Jrpc) ListOrders(in *ty.ReqListOrders, result *ty.ReplyListOrders) error {
	if in == nil {
		return types.ErrInvalidParam
	}
	reply, err := j.cli.listOrders(in)
	if err != nil {
		return err
	}
	*result = *reply
	return nil
}

// GetOrder ICX.GetOrder, id of an order or an offer
func (j *Jrpc) GetOrder(in *types.ReqString, result *ty.ReplyListOrders) error {
	if in == nil {
		return types.ErrInvalidParam
	}
	reply, err := j.cli.getOrder(in)
	if err != nil {
		return err
	}
	*result = *reply
	return nil
}

// ListHTLCs ICX.ListHTLCs
func (j *Jrpc) ListHTLCs(in *ty.ReqListHTLCs, result *ty.ReplyListHTLCs) error {
	if in == nil {
		return types.ErrInvalidParam
	}
	reply, err := j.cli.listHTLCs(in)
	if err != nil {
		return err
	}
	*result = *reply
	return nil
}
