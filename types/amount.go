// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// AmountDecimals fractional digits carried by every amount
const AmountDecimals = 8

// FormatAmount render a fixed point amount, 150000000 -> "1.50000000"
func FormatAmount(v int64) string {
	return decimal.New(v, -AmountDecimals).StringFixed(AmountDecimals)
}

// ParseAmount parse a decimal string into fixed point. More than 8
// fractional digits, negative values and values above MaxCoin are refused.
func ParseAmount(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, errors.Wrapf(ErrAmount, "parse %q", s)
	}
	if d.IsNegative() {
		return 0, errors.Wrapf(ErrAmount, "negative %q", s)
	}
	if !d.Equal(d.Truncate(AmountDecimals)) {
		return 0, errors.Wrapf(ErrAmount, "too many decimals %q", s)
	}
	scaled := d.Shift(AmountDecimals)
	if scaled.GreaterThan(decimal.NewFromInt(MaxCoin)) {
		return 0, errors.Wrapf(ErrAmount, "out of range %q", s)
	}
	return scaled.IntPart(), nil
}

// AmountToDecimal fixed point to decimal
func AmountToDecimal(v int64) decimal.Decimal {
	return decimal.New(v, -AmountDecimals)
}

// DecimalToAmount decimal to fixed point, truncating extra digits. Results
// outside [0, MaxCoin) are refused with ErrAmount.
func DecimalToAmount(d decimal.Decimal) (int64, error) {
	scaled := d.Truncate(AmountDecimals).Shift(AmountDecimals)
	if scaled.IsNegative() || scaled.GreaterThanOrEqual(decimal.NewFromInt(MaxCoin)) {
		return 0, ErrAmount
	}
	return scaled.IntPart(), nil
}

// DivAmount a / b truncated toward zero at 8 decimals. b must not be zero.
func DivAmount(a, b decimal.Decimal) decimal.Decimal {
	q, _ := a.QuoRem(b, AmountDecimals)
	return q
}

// CheckAmount amount must be positive and below MaxCoin
func CheckAmount(amount int64) bool {
	if amount <= 0 || amount >= MaxCoin {
		return false
	}
	return true
}
