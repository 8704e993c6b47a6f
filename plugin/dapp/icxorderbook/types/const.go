// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// IcxX executor name
var IcxX = "icxorderbook"

// JRPCName json rpc service name
const JRPCName = "ICX"

// actions
const (
	IcxActionCreateOrder = iota + 1
	IcxActionMakeOffer
	IcxActionSubmitDFCHTLC
	IcxActionSubmitExtHTLC
	IcxActionClaimDFCHTLC
	IcxActionCloseOrder
	IcxActionCloseOffer
)

// log ty
const (
	TyLogICXOrder = 3001 + iota
	TyLogICXOffer
	TyLogICXDFCHTLC
	TyLogICXExtHTLC
	TyLogICXClaimDFCHTLC
)

// governance parameters read by the fee engine
const (
	GovTakerFeePerBTC = "ICX_TAKERFEE_PER_BTC"
	GovDFIPerBTC      = "DFI_PER_BTC"
)

// ChainBTC only foreign chain supported
const ChainBTC = "BTC"

// OrderType which side of the pair the maker sells
type OrderType int32

// order types
const (
	// OrderInternal maker sells a native asset for BTC
	OrderInternal OrderType = iota + 1
	// OrderExternal maker sells BTC for a native asset
	OrderExternal
)

func (t OrderType) String() string {
	switch t {
	case OrderInternal:
		return "INTERNAL"
	case OrderExternal:
		return "EXTERNAL"
	}
	return "UNKNOWN"
}

// Status of orders and offers
type Status int32

// order and offer status
const (
	StatusOpen Status = iota + 1
	StatusClosed
	StatusExpired
	StatusFilled
)

func (s Status) String() string {
	switch s {
	case StatusOpen:
		return "OPEN"
	case StatusClosed:
		return "CLOSED"
	case StatusExpired:
		return "EXPIRED"
	case StatusFilled:
		return "FILLED"
	}
	return "UNKNOWN"
}

// Terminal no further transition
func (s Status) Terminal() bool {
	return s != StatusOpen
}

// HTLCStatus status of both htlc records
type HTLCStatus int32

// htlc status
const (
	HTLCOpen HTLCStatus = iota + 1
	HTLCClaimed
	HTLCRefunded
	HTLCExpired
)

func (s HTLCStatus) String() string {
	switch s {
	case HTLCOpen:
		return "OPEN"
	case HTLCClaimed:
		return "CLAIMED"
	case HTLCRefunded:
		return "REFUNDED"
	case HTLCExpired:
		return "EXPIRED"
	}
	return "UNKNOWN"
}

// HTLCKind discriminator of HTLCView
type HTLCKind string

// htlc kinds
const (
	HTLCKindDFC      HTLCKind = "DFC"
	HTLCKindExternal HTLCKind = "EXTERNAL"
	HTLCKindClaimDFC HTLCKind = "CLAIM_DFC"
)

// ExpiryKind entity kind of an expiry bucket entry
type ExpiryKind int32

// expiry kinds
const (
	ExpireOrder ExpiryKind = iota + 1
	ExpireOffer
	ExpireDFCHTLC
)

// query names
const (
	FuncListOrders = "ListOrders"
	FuncGetOrder   = "GetOrder"
	FuncListHTLCs  = "ListHTLCs"
)
