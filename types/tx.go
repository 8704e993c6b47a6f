// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/hex"
	"encoding/json"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Transaction one ledger operation. Sender authentication is done by the
// signing layer in front of the node, From carries the verified address.
type Transaction struct {
	Execer  []byte `json:"execer"`
	Payload []byte `json:"payload"`
	Sender  string `json:"from"`
	Nonce   int64  `json:"nonce"`
}

// CreateTx build a transaction for execer with the action as payload
func CreateTx(execer string, action Message, from string, nonce int64) *Transaction {
	return &Transaction{
		Execer:  []byte(execer),
		Payload: Encode(action),
		Sender:  from,
		Nonce:   nonce,
	}
}

//From 交易from地址
func (tx *Transaction) From() string {
	return tx.Sender
}

// Hash double sha256 of the encoded transaction
func (tx *Transaction) Hash() []byte {
	return chainhash.DoubleHashB(Encode(tx))
}

// TxID hex form of Hash, used as id of every entity the tx creates
func (tx *Transaction) TxID() string {
	return hex.EncodeToString(tx.Hash())
}

// Size encoded size in bytes
func (tx *Transaction) Size() int {
	return len(Encode(tx))
}

//JSON Transaction交易信息转成json结构体
func (tx *Transaction) JSON() string {
	type transaction struct {
		Hash    string `json:"hash"`
		Execer  string `json:"execer"`
		Payload string `json:"payload"`
		From    string `json:"from"`
		Nonce   int64  `json:"nonce,omitempty"`
	}
	newtx := &transaction{
		Hash:    tx.TxID(),
		Execer:  string(tx.Execer),
		Payload: string(tx.Payload),
		From:    tx.Sender,
		Nonce:   tx.Nonce,
	}
	data, err := json.Marshal(newtx)
	if err != nil {
		return err.Error()
	}
	return string(data)
}
