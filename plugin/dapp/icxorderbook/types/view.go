// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"fmt"

	"github.com/BirthdayResearch/jellyfishsdk-sub005/types"
)

// OrderView rpc projection of an order, amounts as decimal strings
type OrderView struct {
	Type          string `json:"type"`
	Status        string `json:"status"`
	TokenFrom     string `json:"tokenFrom,omitempty"`
	ChainTo       string `json:"chainTo,omitempty"`
	ReceivePubkey string `json:"receivePubkey,omitempty"`
	ChainFrom     string `json:"chainFrom,omitempty"`
	TokenTo       string `json:"tokenTo,omitempty"`
	OwnerAddress  string `json:"ownerAddress"`
	AmountFrom    string `json:"amountFrom"`
	AmountToFill  string `json:"amountToFill"`
	Reserved      string `json:"reserved"`
	OrderPrice    string `json:"orderPrice"`
	Height        int64  `json:"height"`
	ExpireHeight  int64  `json:"expireHeight"`
	CloseHeight   int64  `json:"closeHeight,omitempty"`
	CloseTx       string `json:"closeTx,omitempty"`
}

// NewOrderView view of o
func NewOrderView(o *Order) *OrderView {
	return &OrderView{
		Type:          o.Type.String(),
		Status:        o.Status.String(),
		TokenFrom:     o.TokenFrom,
		ChainTo:       o.ChainTo,
		ReceivePubkey: o.ReceivePubkey,
		ChainFrom:     o.ChainFrom,
		TokenTo:       o.TokenTo,
		OwnerAddress:  o.OwnerAddress,
		AmountFrom:    types.FormatAmount(o.AmountFrom),
		AmountToFill:  types.FormatAmount(o.AmountToFill),
		Reserved:      types.FormatAmount(o.Reserved),
		OrderPrice:    types.FormatAmount(o.OrderPrice),
		Height:        o.Height,
		ExpireHeight:  o.ExpiryHeight,
		CloseHeight:   o.CloseHeight,
		CloseTx:       o.CloseTx,
	}
}

// OfferView rpc projection of an offer
type OfferView struct {
	OrderTx       string `json:"orderTx"`
	Status        string `json:"status"`
	Amount        string `json:"amount"`
	OwnerAddress  string `json:"ownerAddress"`
	ReceivePubkey string `json:"receivePubkey,omitempty"`
	TakerFee      string `json:"takerFee"`
	Height        int64  `json:"height"`
	ExpireHeight  int64  `json:"expireHeight"`
}

// NewOfferView view of o
func NewOfferView(o *Offer) *OfferView {
	return &OfferView{
		OrderTx:       o.OrderTx,
		Status:        o.Status.String(),
		Amount:        types.FormatAmount(o.Amount),
		OwnerAddress:  o.OwnerAddress,
		ReceivePubkey: o.ReceivePubkey,
		TakerFee:      types.FormatAmount(o.TakerFee),
		Height:        o.Height,
		ExpireHeight:  o.ExpiryHeight,
	}
}

// HTLCView one htlc record, Type says which member is set
type HTLCView struct {
	Type  HTLCKind          `json:"type"`
	DFC   *DFCHTLCView      `json:"dfc,omitempty"`
	Ext   *ExtHTLCView      `json:"ext,omitempty"`
	Claim *ClaimDFCHTLCView `json:"claim,omitempty"`
}

// DFCHTLCView projection of a DFC HTLC
type DFCHTLCView struct {
	OfferTx      string `json:"offerTx"`
	Status       string `json:"status"`
	Amount       string `json:"amount"`
	AmountInBTC  string `json:"amountInEXTAsset"`
	Hash         string `json:"hash"`
	Timeout      int64  `json:"timeout"`
	Height       int64  `json:"height"`
	RefundHeight int64  `json:"refundHeight"`
}

// ExtHTLCView projection of an external HTLC
type ExtHTLCView struct {
	OfferTx           string `json:"offerTx"`
	Status            string `json:"status"`
	Amount            string `json:"amount"`
	Hash              string `json:"hash"`
	HTLCScriptAddress string `json:"htlcScriptAddress"`
	OwnerPubkey       string `json:"ownerPubkey"`
	Timeout           int64  `json:"timeout"`
	Height            int64  `json:"height"`
}

// ClaimDFCHTLCView projection of a claim
type ClaimDFCHTLCView struct {
	DfchtlcTx string `json:"dfchtlcTx"`
	Seed      string `json:"seed"`
	Height    int64  `json:"height"`
}

// NewDFCHTLCView amountInBTC is the converted foreign amount
func NewDFCHTLCView(h *DFCHTLC, amountInBTC int64) *HTLCView {
	return &HTLCView{Type: HTLCKindDFC, DFC: &DFCHTLCView{
		OfferTx:      h.OfferTx,
		Status:       h.Status.String(),
		Amount:       types.FormatAmount(h.Amount),
		AmountInBTC:  types.FormatAmount(amountInBTC),
		Hash:         h.Hash,
		Timeout:      h.Timeout,
		Height:       h.Height,
		RefundHeight: h.RefundHeight,
	}}
}

// NewExtHTLCView view of h
func NewExtHTLCView(h *ExtHTLC) *HTLCView {
	return &HTLCView{Type: HTLCKindExternal, Ext: &ExtHTLCView{
		OfferTx:           h.OfferTx,
		Status:            h.Status.String(),
		Amount:            types.FormatAmount(h.Amount),
		Hash:              h.Hash,
		HTLCScriptAddress: h.HTLCScriptAddress,
		OwnerPubkey:       h.OwnerPubkey,
		Timeout:           h.Timeout,
		Height:            h.Height,
	}}
}

// NewClaimView view of c
func NewClaimView(c *ClaimDFCHTLC) *HTLCView {
	return &HTLCView{Type: HTLCKindClaimDFC, Claim: &ClaimDFCHTLCView{
		DfchtlcTx: c.DfchtlcTx,
		Seed:      c.Seed,
		Height:    c.Height,
	}}
}

// Validate exactly the member named by Type is set
func (v *HTLCView) Validate() error {
	var ok bool
	switch v.Type {
	case HTLCKindDFC:
		ok = v.DFC != nil && v.Ext == nil && v.Claim == nil
	case HTLCKindExternal:
		ok = v.Ext != nil && v.DFC == nil && v.Claim == nil
	case HTLCKindClaimDFC:
		ok = v.Claim != nil && v.DFC == nil && v.Ext == nil
	default:
		return fmt.Errorf("unknown htlc type %q", v.Type)
	}
	if !ok {
		return fmt.Errorf("htlc view of type %s has wrong members", v.Type)
	}
	return nil
}

// Status status string of whichever record is set, claims are CLAIMED
func (v *HTLCView) Status() string {
	switch v.Type {
	case HTLCKindDFC:
		return v.DFC.Status
	case HTLCKindExternal:
		return v.Ext.Status
	case HTLCKindClaimDFC:
		return HTLCClaimed.String()
	}
	return "UNKNOWN"
}
