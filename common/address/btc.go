// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package address

import (
	"encoding/hex"
	"errors"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
)

// foreign chain errors
var (
	ErrUnknownNetwork = errors.New("ErrUnknownNetwork")
	ErrBadPubkey      = errors.New("ErrBadPubkey")
	ErrBadBTCAddress  = errors.New("ErrBadBTCAddress")
)

// BTCParams chain params by network name
func BTCParams(network string) (*chaincfg.Params, error) {
	switch strings.ToLower(network) {
	case "mainnet", "main":
		return &chaincfg.MainNetParams, nil
	case "testnet", "testnet3", "test":
		return &chaincfg.TestNet3Params, nil
	case "regtest", "":
		return &chaincfg.RegressionNetParams, nil
	case "simnet":
		return &chaincfg.SimNetParams, nil
	}
	return nil, ErrUnknownNetwork
}

// CheckBTCAddress address must decode and belong to the network
func CheckBTCAddress(addr string, network string) error {
	params, err := BTCParams(network)
	if err != nil {
		return err
	}
	decoded, err := btcutil.DecodeAddress(addr, params)
	if err != nil {
		return ErrBadBTCAddress
	}
	if !decoded.IsForNet(params) {
		return ErrBadBTCAddress
	}
	return nil
}

// CheckPubkey hex encoded secp256k1 public key, compressed or not
func CheckPubkey(pubkey string) error {
	raw, err := hex.DecodeString(strings.TrimPrefix(pubkey, "0x"))
	if err != nil || len(raw) == 0 {
		return ErrBadPubkey
	}
	if _, err := btcec.ParsePubKey(raw); err != nil {
		return ErrBadPubkey
	}
	return nil
}

// BTCAddressFromPubkey p2pkh address of a pubkey on the network
func BTCAddressFromPubkey(pubkey []byte, network string) (string, error) {
	params, err := BTCParams(network)
	if err != nil {
		return "", err
	}
	addr, err := btcutil.NewAddressPubKeyHash(btcutil.Hash160(pubkey), params)
	if err != nil {
		return "", err
	}
	return addr.EncodeAddress(), nil
}

// BTCScriptAddress p2sh address of a redeem script on the network
func BTCScriptAddress(script []byte, network string) (string, error) {
	params, err := BTCParams(network)
	if err != nil {
		return "", err
	}
	addr, err := btcutil.NewAddressScriptHash(script, params)
	if err != nil {
		return "", err
	}
	return addr.EncodeAddress(), nil
}
