// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/BirthdayResearch/jellyfishsdk-sub005/types"
)

// json rpc params, amounts are decimal strings. From is the verified
// sender; order and offer calls default it to OwnerAddress.

// CreateOrderReq ICX.CreateOrder
type CreateOrderReq struct {
	From          string `json:"from,omitempty"`
	TokenFrom     string `json:"tokenFrom,omitempty"`
	ChainTo       string `json:"chainTo,omitempty"`
	ReceivePubkey string `json:"receivePubkey,omitempty"`
	ChainFrom     string `json:"chainFrom,omitempty"`
	TokenTo       string `json:"tokenTo,omitempty"`
	OwnerAddress  string `json:"ownerAddress"`
	AmountFrom    string `json:"amountFrom"`
	OrderPrice    string `json:"orderPrice"`
	Expiry        int64  `json:"expiry,omitempty"`
}

// MakeOfferReq ICX.MakeOffer
type MakeOfferReq struct {
	From          string `json:"from,omitempty"`
	OrderTx       string `json:"orderTx"`
	Amount        string `json:"amount"`
	OwnerAddress  string `json:"ownerAddress"`
	ReceivePubkey string `json:"receivePubkey,omitempty"`
	Expiry        int64  `json:"expiry,omitempty"`
}

// SubmitDFCHTLCReq ICX.SubmitDFCHTLC
type SubmitDFCHTLCReq struct {
	From    string `json:"from"`
	OfferTx string `json:"offerTx"`
	Amount  string `json:"amount"`
	Hash    string `json:"hash"`
	Timeout int64  `json:"timeout,omitempty"`
}

// SubmitExtHTLCReq ICX.SubmitExtHTLC
type SubmitExtHTLCReq struct {
	From              string `json:"from"`
	OfferTx           string `json:"offerTx"`
	Amount            string `json:"amount"`
	Hash              string `json:"hash"`
	HTLCScriptAddress string `json:"htlcScriptAddress"`
	OwnerPubkey       string `json:"ownerPubkey"`
	Timeout           int64  `json:"timeout"`
}

// ClaimDFCHTLCReq ICX.ClaimDFCHTLC
type ClaimDFCHTLCReq struct {
	From      string `json:"from"`
	DfchtlcTx string `json:"dfchtlcTx"`
	Seed      string `json:"seed"`
}

// CloseOrderReq ICX.CloseOrder
type CloseOrderReq struct {
	From    string `json:"from"`
	OrderTx string `json:"orderTx"`
}

// CloseOfferReq ICX.CloseOffer
type CloseOfferReq struct {
	From    string `json:"from"`
	OfferTx string `json:"offerTx"`
}

func sender(from, owner string) string {
	if from != "" {
		return from
	}
	return owner
}

// Action payload of the request
func (r *CreateOrderReq) Action() (string, *IcxCreateOrder, error) {
	amount, err := types.ParseAmount(r.AmountFrom)
	if err != nil {
		return "", nil, err
	}
	price, err := types.ParseAmount(r.OrderPrice)
	if err != nil {
		return "", nil, err
	}
	return sender(r.From, r.OwnerAddress), &IcxCreateOrder{
		TokenFrom:     r.TokenFrom,
		ChainTo:       r.ChainTo,
		ReceivePubkey: r.ReceivePubkey,
		ChainFrom:     r.ChainFrom,
		TokenTo:       r.TokenTo,
		OwnerAddress:  r.OwnerAddress,
		AmountFrom:    amount,
		OrderPrice:    price,
		Expiry:        r.Expiry,
	}, nil
}

// Action payload of the request
func (r *MakeOfferReq) Action() (string, *IcxMakeOffer, error) {
	amount, err := types.ParseAmount(r.Amount)
	if err != nil {
		return "", nil, err
	}
	return sender(r.From, r.OwnerAddress), &IcxMakeOffer{
		OrderTx:       r.OrderTx,
		Amount:        amount,
		OwnerAddress:  r.OwnerAddress,
		ReceivePubkey: r.ReceivePubkey,
		Expiry:        r.Expiry,
	}, nil
}

// Action payload of the request
func (r *SubmitDFCHTLCReq) Action() (*IcxSubmitDFCHTLC, error) {
	amount, err := types.ParseAmount(r.Amount)
	if err != nil {
		return nil, err
	}
	return &IcxSubmitDFCHTLC{OfferTx: r.OfferTx, Amount: amount, Hash: r.Hash, Timeout: r.Timeout}, nil
}

// Action payload of the request
func (r *SubmitExtHTLCReq) Action() (*IcxSubmitExtHTLC, error) {
	amount, err := types.ParseAmount(r.Amount)
	if err != nil {
		return nil, err
	}
	return &IcxSubmitExtHTLC{
		OfferTx:           r.OfferTx,
		Amount:            amount,
		Hash:              r.Hash,
		HTLCScriptAddress: r.HTLCScriptAddress,
		OwnerPubkey:       r.OwnerPubkey,
		Timeout:           r.Timeout,
	}, nil
}
