// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	ty "github.com/BirthdayResearch/jellyfishsdk-sub005/plugin/dapp/icxorderbook/types"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/types"
)

// TakerFee fee in DFI of an offer of amount. INTERNAL orders are offered in
// BTC so the fee is converted with dfiPerBTC; EXTERNAL offers are already
// native. Truncated to 8 decimals.
func TakerFee(orderType ty.OrderType, amount, feePerBTC, dfiPerBTC int64) (int64, error) {
	fee := types.AmountToDecimal(amount).Mul(types.AmountToDecimal(feePerBTC))
	if orderType == ty.OrderInternal {
		fee = fee.Mul(types.AmountToDecimal(dfiPerBTC))
	}
	return types.DecimalToAmount(fee)
}

// MakerDeposit deposit frozen from the DFC HTLC submitter
func MakerDeposit(takerFee int64) int64 {
	return takerFee
}

// ProportionalFee share of fee matching part of whole
func ProportionalFee(fee, part, whole int64) int64 {
	if whole <= 0 || part >= whole {
		return fee
	}
	if part <= 0 {
		return 0
	}
	share := types.DivAmount(types.AmountToDecimal(fee).Mul(types.AmountToDecimal(part)), types.AmountToDecimal(whole))
	// part < whole keeps the share below fee
	v, _ := types.DecimalToAmount(share)
	return v
}

// ToOrderUnits amount / price
func ToOrderUnits(amount, price int64) (int64, error) {
	if price <= 0 {
		return 0, types.ErrAmount
	}
	return types.DecimalToAmount(types.DivAmount(types.AmountToDecimal(amount), types.AmountToDecimal(price)))
}

// ToForeignUnits amount * price
func ToForeignUnits(amount, price int64) (int64, error) {
	return types.DecimalToAmount(types.AmountToDecimal(amount).Mul(types.AmountToDecimal(price)))
}

// offerReserve order capacity held by an offer of amount. Both order types
// divide by the price: BTC / (BTC per DFI) or DFI / (DFI per BTC).
func offerReserve(order *ty.Order, amount int64) (int64, error) {
	return ToOrderUnits(amount, order.OrderPrice)
}

// nativeAmount DFC HTLC sized amount covered by an offer
func nativeAmount(order *ty.Order, offer *ty.Offer) int64 {
	if order.Type == ty.OrderInternal {
		return offer.Reserved
	}
	return offer.Amount
}

// foreignAmount BTC matching a native amount
func foreignAmount(order *ty.Order, native int64) (int64, error) {
	if order.Type == ty.OrderInternal {
		return ToForeignUnits(native, order.OrderPrice)
	}
	return ToOrderUnits(native, order.OrderPrice)
}

// nativeToOrderUnits order capacity consumed by a native amount
func nativeToOrderUnits(order *ty.Order, native int64) (int64, error) {
	if order.Type == ty.OrderInternal {
		return native, nil
	}
	return ToOrderUnits(native, order.OrderPrice)
}

// nativeToOfferUnits offer amount matching a native amount
func nativeToOfferUnits(order *ty.Order, native int64) (int64, error) {
	if order.Type == ty.OrderInternal {
		return ToForeignUnits(native, order.OrderPrice)
	}
	return native, nil
}
