// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHex(t *testing.T) {
	assert.Equal(t, "0x0102", ToHex([]byte{1, 2}))
	assert.Equal(t, "", ToHex(nil))
	b, err := FromHex("0x102")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, b)
	_, err = FromHex("zz")
	assert.Error(t, err)
}

func TestIsHash32(t *testing.T) {
	h := Sha256([]byte("seed"))
	assert.True(t, IsHash32(hex.EncodeToString(h)))
	assert.True(t, IsHash32("0x"+hex.EncodeToString(h)))
	assert.False(t, IsHash32(hex.EncodeToString(h[:31])))
	assert.False(t, IsHash32("zz"+hex.EncodeToString(h[1:])))
	assert.Equal(t, "abcd", NormalizeHex("0xABCD"))
}

func TestNewSecret(t *testing.T) {
	seed, hash := NewSecret()
	raw, err := hex.DecodeString(seed)
	require.NoError(t, err)
	assert.Equal(t, hash, hex.EncodeToString(Sha256(raw)))
	assert.Len(t, GetRandBytes(10), 10)
}

func TestRimp160(t *testing.T) {
	out := Rimp160AfterSha256([]byte("abc"))
	assert.Len(t, out, 20)
	sum := Sha2Sum([]byte("abc"))
	assert.NotEqual(t, [32]byte{}, sum)
}
