// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/BirthdayResearch/jellyfishsdk-sub005/types"
)

// ActionName readable name of a payload
func ActionName(tx *types.Transaction) string {
	var action IcxAction
	if err := types.Decode(tx.Payload, &action); err != nil {
		return "unknown-icx-action-err"
	}
	switch {
	case action.Ty == IcxActionCreateOrder && action.CreateOrder != nil:
		return "icxCreateOrder"
	case action.Ty == IcxActionMakeOffer && action.MakeOffer != nil:
		return "icxMakeOffer"
	case action.Ty == IcxActionSubmitDFCHTLC && action.SubmitDFCHTLC != nil:
		return "icxSubmitDFCHTLC"
	case action.Ty == IcxActionSubmitExtHTLC && action.SubmitExtHTLC != nil:
		return "icxSubmitExtHTLC"
	case action.Ty == IcxActionClaimDFCHTLC && action.ClaimDFCHTLC != nil:
		return "icxClaimDFCHTLC"
	case action.Ty == IcxActionCloseOrder && action.CloseOrder != nil:
		return "icxCloseOrder"
	case action.Ty == IcxActionCloseOffer && action.CloseOffer != nil:
		return "icxCloseOffer"
	}
	return "unknown"
}

// CreateOrderTx new create order transaction
func CreateOrderTx(from string, p *IcxCreateOrder, nonce int64) *types.Transaction {
	return types.CreateTx(IcxX, &IcxAction{Ty: IcxActionCreateOrder, CreateOrder: p}, from, nonce)
}

// MakeOfferTx new make offer transaction
func MakeOfferTx(from string, p *IcxMakeOffer, nonce int64) *types.Transaction {
	return types.CreateTx(IcxX, &IcxAction{Ty: IcxActionMakeOffer, MakeOffer: p}, from, nonce)
}

// SubmitDFCHTLCTx new dfc htlc transaction
func SubmitDFCHTLCTx(from string, p *IcxSubmitDFCHTLC, nonce int64) *types.Transaction {
	return types.CreateTx(IcxX, &IcxAction{Ty: IcxActionSubmitDFCHTLC, SubmitDFCHTLC: p}, from, nonce)
}

// SubmitExtHTLCTx new external htlc transaction
func SubmitExtHTLCTx(from string, p *IcxSubmitExtHTLC, nonce int64) *types.Transaction {
	return types.CreateTx(IcxX, &IcxAction{Ty: IcxActionSubmitExtHTLC, SubmitExtHTLC: p}, from, nonce)
}

// ClaimDFCHTLCTx new claim transaction
func ClaimDFCHTLCTx(from string, p *IcxClaimDFCHTLC, nonce int64) *types.Transaction {
	return types.CreateTx(IcxX, &IcxAction{Ty: IcxActionClaimDFCHTLC, ClaimDFCHTLC: p}, from, nonce)
}

// CloseOrderTx new close order transaction
func CloseOrderTx(from string, p *IcxCloseOrder, nonce int64) *types.Transaction {
	return types.CreateTx(IcxX, &IcxAction{Ty: IcxActionCloseOrder, CloseOrder: p}, from, nonce)
}

// CloseOfferTx new close offer transaction
func CloseOfferTx(from string, p *IcxCloseOffer, nonce int64) *types.Transaction {
	return types.CreateTx(IcxX, &IcxAction{Ty: IcxActionCloseOffer, CloseOffer: p}, from, nonce)
}
