// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
)

// Message is any value that can be stored in state or returned by a query
type Message interface{}

// Encode state and payload values are stored as json
func Encode(data Message) []byte {
	b, err := json.Marshal(data)
	if err != nil {
		panic(err)
	}
	return b
}

// Decode decode json bytes into msg
func Decode(data []byte, msg Message) error {
	if len(data) == 0 {
		return ErrDecode
	}
	return json.Unmarshal(data, msg)
}

// MustDecode panics if data can not be decoded
func MustDecode(data []byte, v interface{}) {
	if data == nil {
		return
	}
	err := json.Unmarshal(data, v)
	if err != nil {
		panic(err)
	}
}

// KeyValue state or localdb write, a nil value deletes the key
type KeyValue struct {
	Key   []byte `json:"key"`
	Value []byte `json:"value"`
}

// ReceiptLog typed log emitted by an executor
type ReceiptLog struct {
	Ty  int32  `json:"ty"`
	Log []byte `json:"log"`
}

// Receipt result of executing one transaction or one block hook
type Receipt struct {
	Ty   int32         `json:"ty"`
	KV   []*KeyValue   `json:"kv"`
	Logs []*ReceiptLog `json:"logs"`
}

// ReceiptData receipt stored after the block is committed
type ReceiptData struct {
	Ty   int32         `json:"ty"`
	Logs []*ReceiptLog `json:"logs"`
}

// LocalDBSet local index writes derived from receipts
type LocalDBSet struct {
	KV []*KeyValue `json:"kv"`
}

// Account balance of one address for one asset
type Account struct {
	Asset   string `json:"asset"`
	Balance int64  `json:"balance"`
	Frozen  int64  `json:"frozen"`
	Addr    string `json:"addr"`
}

// ReceiptAccountTransfer account change log
type ReceiptAccountTransfer struct {
	Prev    *Account `json:"prev"`
	Current *Account `json:"current"`
}

// ReceiptAssetCreate asset registration log
type ReceiptAssetCreate struct {
	Symbol string `json:"symbol"`
	Height int64  `json:"height"`
}

// ConfigItem governance parameter
type ConfigItem struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Addr  string `json:"addr"`
}

// ReceiptConfig governance parameter change log
type ReceiptConfig struct {
	Prev    *ConfigItem `json:"prev"`
	Current *ConfigItem `json:"current"`
}

// Int64 int64 wrapper
type Int64 struct {
	Data int64 `json:"data"`
}

// ReqString string request
type ReqString struct {
	Data string `json:"data"`
}

// ReplyString string reply
type ReplyString struct {
	Data string `json:"data"`
}

// ReqBalance balance query of one address
type ReqBalance struct {
	Addr  string `json:"addr"`
	Asset string `json:"asset"`
}

// ReqHash query a transaction result by txid
type ReqHash struct {
	Hash string `json:"hash"`
}

// TxResult inclusion result of one transaction
type TxResult struct {
	Txid    string       `json:"txid"`
	Height  int64        `json:"height"`
	Index   int32        `json:"index"`
	Execer  string       `json:"execer"`
	Receipt *ReceiptData `json:"receipt"`
	Error   string       `json:"error,omitempty"`
}

// Header summary of a produced block
type Header struct {
	Height    int64  `json:"height"`
	BlockTime int64  `json:"blockTime"`
	TxCount   int64  `json:"txCount"`
	TxHash    string `json:"txHash"`
}
