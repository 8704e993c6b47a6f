// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types icxorderbook records, actions and query shapes
package types

// Order maker intent. Amounts are in order units: tokenFrom for INTERNAL
// orders, BTC for EXTERNAL ones. AmountToFill+Reserved+Consumed == AmountFrom.
type Order struct {
	ID            string    `json:"id"`
	Type          OrderType `json:"type"`
	TokenFrom     string    `json:"tokenFrom,omitempty"`
	ChainTo       string    `json:"chainTo,omitempty"`
	ReceivePubkey string    `json:"receivePubkey,omitempty"`
	ChainFrom     string    `json:"chainFrom,omitempty"`
	TokenTo       string    `json:"tokenTo,omitempty"`
	OwnerAddress  string    `json:"ownerAddress"`
	AmountFrom    int64     `json:"amountFrom"`
	AmountToFill  int64     `json:"amountToFill"`
	Reserved      int64     `json:"reserved"`
	Consumed      int64     `json:"consumed"`
	OrderPrice    int64     `json:"orderPrice"`
	Height        int64     `json:"height"`
	ExpiryHeight  int64     `json:"expiryHeight"`
	Status        Status    `json:"status"`
	CloseHeight   int64     `json:"closeHeight,omitempty"`
	CloseTx       string    `json:"closeTx,omitempty"`
}

// NativeAsset asset moved on the native ledger
func (o *Order) NativeAsset() string {
	if o.Type == OrderInternal {
		return o.TokenFrom
	}
	return o.TokenTo
}

// Offer taker fill. Amount is BTC for INTERNAL orders, native for EXTERNAL
// ones; Reserved is in order units.
type Offer struct {
	ID            string `json:"id"`
	OrderTx       string `json:"orderTx"`
	Amount        int64  `json:"amount"`
	OwnerAddress  string `json:"ownerAddress"`
	ReceivePubkey string `json:"receivePubkey,omitempty"`
	TakerFee      int64  `json:"takerFee"`
	Reserved      int64  `json:"reserved"`
	Height        int64  `json:"height"`
	ExpiryHeight  int64  `json:"expiryHeight"`
	Status        Status `json:"status"`
	CloseHeight   int64  `json:"closeHeight,omitempty"`
	CloseTx       string `json:"closeTx,omitempty"`
}

// DFCHTLC native side escrow
type DFCHTLC struct {
	ID           string     `json:"id"`
	OfferTx      string     `json:"offerTx"`
	Asset        string     `json:"asset"`
	Amount       int64      `json:"amount"`
	Hash         string     `json:"hash"`
	Timeout      int64      `json:"timeout"`
	OwnerAddress string     `json:"ownerAddress"`
	MakerDeposit int64      `json:"makerDeposit"`
	Height       int64      `json:"height"`
	RefundHeight int64      `json:"refundHeight"`
	Status       HTLCStatus `json:"status"`
}

// ExtHTLC attested foreign side escrow
type ExtHTLC struct {
	ID                string     `json:"id"`
	OfferTx           string     `json:"offerTx"`
	Amount            int64      `json:"amount"`
	Hash              string     `json:"hash"`
	HTLCScriptAddress string     `json:"htlcScriptAddress"`
	OwnerPubkey       string     `json:"ownerPubkey"`
	Timeout           int64      `json:"timeout"`
	Height            int64      `json:"height"`
	Status            HTLCStatus `json:"status"`
}

// ClaimDFCHTLC revealed seed of a claimed DFC HTLC
type ClaimDFCHTLC struct {
	ID        string `json:"id"`
	OfferTx   string `json:"offerTx"`
	DfchtlcTx string `json:"dfchtlcTx"`
	Seed      string `json:"seed"`
	Claimer   string `json:"claimer"`
	Height    int64  `json:"height"`
}

// OfferHTLCs htlc ids attached to one offer
type OfferHTLCs struct {
	DFC   string `json:"dfc,omitempty"`
	Ext   string `json:"ext,omitempty"`
	Claim string `json:"claim,omitempty"`
}

// IDList ids in insertion order
type IDList struct {
	IDs []string `json:"ids"`
}

// ExpiryEntry entity due at a height
type ExpiryEntry struct {
	Kind ExpiryKind `json:"kind"`
	ID   string     `json:"id"`
}

// ExpiryBucket entities due at one height
type ExpiryBucket struct {
	Entries []*ExpiryEntry `json:"entries"`
}

// IcxAction payload, exactly one member matching Ty is set
type IcxAction struct {
	Ty            int32             `json:"ty"`
	CreateOrder   *IcxCreateOrder   `json:"createOrder,omitempty"`
	MakeOffer     *IcxMakeOffer     `json:"makeOffer,omitempty"`
	SubmitDFCHTLC *IcxSubmitDFCHTLC `json:"submitDFCHTLC,omitempty"`
	SubmitExtHTLC *IcxSubmitExtHTLC `json:"submitExtHTLC,omitempty"`
	ClaimDFCHTLC  *IcxClaimDFCHTLC  `json:"claimDFCHTLC,omitempty"`
	CloseOrder    *IcxCloseOrder    `json:"closeOrder,omitempty"`
	CloseOffer    *IcxCloseOffer    `json:"closeOffer,omitempty"`
}

// IcxCreateOrder exactly one of {TokenFrom, ChainTo} or {ChainFrom, TokenTo}
type IcxCreateOrder struct {
	TokenFrom     string `json:"tokenFrom,omitempty"`
	ChainTo       string `json:"chainTo,omitempty"`
	ReceivePubkey string `json:"receivePubkey,omitempty"`
	ChainFrom     string `json:"chainFrom,omitempty"`
	TokenTo       string `json:"tokenTo,omitempty"`
	OwnerAddress  string `json:"ownerAddress"`
	AmountFrom    int64  `json:"amountFrom"`
	OrderPrice    int64  `json:"orderPrice"`
	Expiry        int64  `json:"expiry,omitempty"`
}

// IcxMakeOffer offer on an order
type IcxMakeOffer struct {
	OrderTx       string `json:"orderTx"`
	Amount        int64  `json:"amount"`
	OwnerAddress  string `json:"ownerAddress"`
	ReceivePubkey string `json:"receivePubkey,omitempty"`
	Expiry        int64  `json:"expiry,omitempty"`
}

// IcxSubmitDFCHTLC native escrow of an offer
type IcxSubmitDFCHTLC struct {
	OfferTx string `json:"offerTx"`
	Amount  int64  `json:"amount"`
	Hash    string `json:"hash"`
	Timeout int64  `json:"timeout,omitempty"`
}

// IcxSubmitExtHTLC foreign escrow attestation
type IcxSubmitExtHTLC struct {
	OfferTx           string `json:"offerTx"`
	Amount            int64  `json:"amount"`
	Hash              string `json:"hash"`
	HTLCScriptAddress string `json:"htlcScriptAddress"`
	OwnerPubkey       string `json:"ownerPubkey"`
	Timeout           int64  `json:"timeout"`
}

// IcxClaimDFCHTLC reveal the seed
type IcxClaimDFCHTLC struct {
	DfchtlcTx string `json:"dfchtlcTx"`
	Seed      string `json:"seed"`
}

// IcxCloseOrder close by owner
type IcxCloseOrder struct {
	OrderTx string `json:"orderTx"`
}

// IcxCloseOffer close by owner
type IcxCloseOffer struct {
	OfferTx string `json:"offerTx"`
}

// ReceiptICXOrder log of an order change
type ReceiptICXOrder struct {
	Order      *Order `json:"order"`
	PrevStatus Status `json:"prevStatus"`
}

// ReceiptICXOffer log of an offer change
type ReceiptICXOffer struct {
	Offer      *Offer `json:"offer"`
	PrevStatus Status `json:"prevStatus"`
}

// ReceiptICXDFCHTLC log of a dfc htlc change
type ReceiptICXDFCHTLC struct {
	HTLC       *DFCHTLC   `json:"htlc"`
	PrevStatus HTLCStatus `json:"prevStatus"`
}

// ReceiptICXExtHTLC log of an external htlc change
type ReceiptICXExtHTLC struct {
	HTLC       *ExtHTLC   `json:"htlc"`
	PrevStatus HTLCStatus `json:"prevStatus"`
}

// ReceiptICXClaim log of a claim
type ReceiptICXClaim struct {
	Claim *ClaimDFCHTLC `json:"claim"`
}

// ReqListOrders without OrderTx lists orders, with it the offers of that order
type ReqListOrders struct {
	OrderTx string `json:"orderTx,omitempty"`
	Closed  bool   `json:"closed,omitempty"`
	Limit   int32  `json:"limit,omitempty"`
}

// ReqListHTLCs htlcs of an offer, closed adds terminal ones and claims
type ReqListHTLCs struct {
	OfferTx string `json:"offerTx"`
	Closed  bool   `json:"closed,omitempty"`
	Limit   int32  `json:"limit,omitempty"`
}

// ReplyListOrders ids to views, an id appears in one map only
type ReplyListOrders struct {
	Orders map[string]*OrderView `json:"orders,omitempty"`
	Offers map[string]*OfferView `json:"offers,omitempty"`
}

// ReplyListHTLCs ids to views
type ReplyListHTLCs struct {
	HTLCs map[string]*HTLCView `json:"htlcs"`
}
