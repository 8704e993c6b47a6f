// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

// validation
var (
	ErrInvalidSpec    = errors.New("ErrInvalidSpec")
	ErrInvalidAddress = errors.New("ErrInvalidAddress")
	ErrInvalidPubkey  = errors.New("ErrInvalidPubkey")
	ErrInvalidAmount  = errors.New("ErrInvalidAmount")
	ErrInvalidHash    = errors.New("ErrInvalidHash")
	ErrInvalidSeed    = errors.New("ErrInvalidSeed")
	ErrAssetNotFound  = errors.New("ErrAssetNotFound")
)

// not found
var (
	ErrOrderNotFound = errors.New("ErrOrderNotFound")
	ErrOfferNotFound = errors.New("ErrOfferNotFound")
	ErrHTLCNotFound  = errors.New("ErrHTLCNotFound")
)

// state conflict
var (
	ErrOrderNotOpen     = errors.New("ErrOrderNotOpen")
	ErrOfferNotOpen     = errors.New("ErrOfferNotOpen")
	ErrHTLCNotOpen      = errors.New("ErrHTLCNotOpen")
	ErrNoDFCHTLC        = errors.New("ErrNoDFCHTLC")
	ErrDFCHTLCExists    = errors.New("ErrDFCHTLCExists")
	ErrExtHTLCExists    = errors.New("ErrExtHTLCExists")
	ErrOfferHasHTLC     = errors.New("ErrOfferHasHTLC")
	ErrOrderHasOpenHTLC = errors.New("ErrOrderHasOpenHTLC")
)

// business rule
var (
	ErrAmountExceedsRemaining = errors.New("ErrAmountExceedsRemaining")
	ErrAmountExceedsOffer     = errors.New("ErrAmountExceedsOffer")
	ErrAmountMismatch         = errors.New("ErrAmountMismatch")
	ErrHashMismatch           = errors.New("ErrHashMismatch")
	ErrSeedMismatch           = errors.New("ErrSeedMismatch")
	ErrTimeoutTooShort        = errors.New("ErrTimeoutTooShort")
	ErrOrderExpiresBeforeHTLC = errors.New("ErrOrderExpiresBeforeHTLC")
	ErrInsufficientFunds      = errors.New("ErrInsufficientFunds")
)

// authorization
var (
	ErrForbidden = errors.New("ErrForbidden")
)
