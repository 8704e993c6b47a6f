// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	"crypto/rand"
	"encoding/hex"
)

// GetRandBytes n random bytes, panics if the system source fails
func GetRandBytes(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return b
}

// NewSecret random 32 byte preimage and its sha256, both hex
func NewSecret() (seed string, hash string) {
	s := GetRandBytes(HashLen)
	return hex.EncodeToString(s), hex.EncodeToString(Sha256(s))
}
