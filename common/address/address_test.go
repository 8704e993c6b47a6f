// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package address

import (
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPubkeyToAddress(t *testing.T) {
	pubkey := "024a17b0c6eb3143839482faa7e917c9b90a8cfe5008dff748789b8cea1a3d08d5"
	b, err := hex.DecodeString(pubkey)
	require.NoError(t, err)
	addr := PubKeyToAddr(b)
	assert.NoError(t, CheckAddress(addr))
	// cached path
	assert.NoError(t, CheckAddress(addr))

	a, err := NewAddrFromString(addr)
	require.NoError(t, err)
	assert.Equal(t, PubKeyToAddress(b).Hash160, a.Hash160)
	assert.Len(t, a.HashHex(), 40)
}

func TestCheckAddressErrors(t *testing.T) {
	assert.Equal(t, ErrDecodeBase58, CheckAddress(""))
	assert.Equal(t, ErrAddressLength, CheckAddress("1abc"))

	addr := PubKeyToAddr([]byte("some key"))
	raw := []byte(addr)
	if raw[len(raw)-1] == 'a' {
		raw[len(raw)-1] = 'b'
	} else {
		raw[len(raw)-1] = 'a'
	}
	assert.Error(t, CheckAddress(string(raw)))
}

func TestExecAddress(t *testing.T) {
	a1 := ExecAddress("icxorderbook")
	a2 := ExecAddress("icxorderbook")
	assert.Equal(t, a1, a2)
	assert.NotEqual(t, a1, ExecAddress("manage"))
	assert.NoError(t, CheckAddress(a1))
}

func TestCheckPubkey(t *testing.T) {
	priv, err := btcec.NewPrivateKey()
	require.NoError(t, err)
	pub := hex.EncodeToString(priv.PubKey().SerializeCompressed())
	assert.NoError(t, CheckPubkey(pub))
	assert.NoError(t, CheckPubkey(hex.EncodeToString(priv.PubKey().SerializeUncompressed())))
	assert.Equal(t, ErrBadPubkey, CheckPubkey(""))
	assert.Equal(t, ErrBadPubkey, CheckPubkey("zz"))
	assert.Equal(t, ErrBadPubkey, CheckPubkey(pub[:20]))
}

func TestCheckBTCAddress(t *testing.T) {
	priv, err := btcec.NewPrivateKey()
	require.NoError(t, err)
	script := append([]byte{0x63, 0xa8, 0x20}, make([]byte, 32)...)
	p2sh, err := BTCScriptAddress(script, "regtest")
	require.NoError(t, err)
	assert.NoError(t, CheckBTCAddress(p2sh, "regtest"))
	assert.Equal(t, ErrBadBTCAddress, CheckBTCAddress(p2sh, "mainnet"))

	p2pkh, err := BTCAddressFromPubkey(priv.PubKey().SerializeCompressed(), "mainnet")
	require.NoError(t, err)
	assert.NoError(t, CheckBTCAddress(p2pkh, "mainnet"))
	assert.Equal(t, ErrBadBTCAddress, CheckBTCAddress("notanaddress", "mainnet"))
	assert.Equal(t, ErrUnknownNetwork, CheckBTCAddress(p2pkh, "dogenet"))
}
