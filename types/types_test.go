// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	v, err := ParseAmount("0.10")
	require.NoError(t, err)
	assert.Equal(t, int64(10000000), v)

	v, err = ParseAmount("15")
	require.NoError(t, err)
	assert.Equal(t, 15*Coin, v)

	v, err = ParseAmount("0.00000001")
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)

	_, err = ParseAmount("0.000000001")
	assert.Equal(t, ErrAmount, errors.Cause(err))
	_, err = ParseAmount("-1")
	assert.Equal(t, ErrAmount, errors.Cause(err))
	_, err = ParseAmount("abc")
	assert.Equal(t, ErrAmount, errors.Cause(err))
	_, err = ParseAmount("1000000001")
	assert.Equal(t, ErrAmount, errors.Cause(err))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1.50000000", FormatAmount(150000000))
	assert.Equal(t, "0.00000001", FormatAmount(1))
	assert.Equal(t, "0.00000000", FormatAmount(0))
}

func TestDecimalToAmount(t *testing.T) {
	v, err := DecimalToAmount(AmountToDecimal(3).Mul(AmountToDecimal(Coin / 2)))
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)

	// 2^56+1 satoshi over a 1 satoshi price leaves the int64 range
	_, err = DecimalToAmount(DivAmount(AmountToDecimal(72057594037927937), AmountToDecimal(1)))
	assert.Equal(t, ErrAmount, err)
	_, err = DecimalToAmount(AmountToDecimal(MaxCoin))
	assert.Equal(t, ErrAmount, err)
	_, err = DecimalToAmount(AmountToDecimal(-1))
	assert.Equal(t, ErrAmount, err)
}

func TestDivAmount(t *testing.T) {
	// 0.00000003 / 3.00000001 is just below one satoshi
	v, err := DecimalToAmount(DivAmount(AmountToDecimal(3), AmountToDecimal(300000001)))
	require.NoError(t, err)
	assert.Equal(t, int64(0), v)

	v, err = DecimalToAmount(DivAmount(AmountToDecimal(Coin), AmountToDecimal(3*Coin)))
	require.NoError(t, err)
	assert.Equal(t, int64(33333333), v)
}

func TestTxHash(t *testing.T) {
	tx1 := CreateTx("icxorderbook", &ReqString{Data: "a"}, "addr", 1)
	tx2 := CreateTx("icxorderbook", &ReqString{Data: "a"}, "addr", 2)
	assert.Len(t, tx1.TxID(), 64)
	assert.NotEqual(t, tx1.TxID(), tx2.TxID())
	assert.Equal(t, tx1.TxID(), tx1.TxID())
	assert.Equal(t, "addr", tx1.From())

	var req ReqString
	require.NoError(t, Decode(tx1.Payload, &req))
	assert.Equal(t, "a", req.Data)
	assert.Equal(t, ErrDecode, Decode(nil, &req))
}

func TestInitCfgString(t *testing.T) {
	cfg, err := InitCfgString(`
title="test"
superManager=["1abc"]
[store]
driver="gobadgerdb"
[icx]
defaultOfferExpiry=20
btcNetwork="mainnet"
[gov]
ICX_TAKERFEE_PER_BTC="0.001"
[[genesis.accounts]]
addr="1abc"
asset="DFI"
amount="100"
`)
	require.NoError(t, err)
	assert.Equal(t, "test", cfg.Title)
	assert.Equal(t, []string{"1abc"}, cfg.SuperManager)
	assert.Equal(t, "gobadgerdb", cfg.Store.Driver)
	assert.Equal(t, int64(20), cfg.ICX.DefaultOfferExpiry)
	assert.Equal(t, int64(2880), cfg.ICX.DefaultOrderExpiry)
	assert.Equal(t, int64(16), cfg.ICX.ExtBlockRatio)
	assert.Equal(t, "mainnet", cfg.ICX.BTCNetwork)
	assert.Equal(t, "0.001", cfg.Gov["ICX_TAKERFEE_PER_BTC"])
	require.Len(t, cfg.Genesis.Accounts, 1)
	assert.Equal(t, "100", cfg.Genesis.Accounts[0].Amount)
	assert.Equal(t, int64(1000), cfg.BlockChain.BlockInterval)

	_, err = InitCfgString("title=")
	assert.Error(t, err)
}
