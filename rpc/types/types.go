// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types request and reply shapes of the json rpc
package types

// ReplyTxID reply of every mutating call
type ReplyTxID struct {
	Txid string `json:"txid"`
}

// ReqNil empty params
type ReqNil struct{}

// ReqAddrAsset balance query
type ReqAddrAsset struct {
	Addr  string `json:"addr"`
	Asset string `json:"asset"`
}

// ReplyBalance amounts formatted with 8 decimals
type ReplyBalance struct {
	Addr    string `json:"addr"`
	Asset   string `json:"asset"`
	Balance string `json:"balance"`
	Frozen  string `json:"frozen"`
}

// ReqParam governance parameter name
type ReqParam struct {
	Name string `json:"name"`
}

// ReplyParam governance parameter value
type ReplyParam struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ReqSetGov governance change, signed by a super manager
type ReqSetGov struct {
	From  string `json:"from"`
	Key   string `json:"key"`
	Value string `json:"value"`
	Op    string `json:"op,omitempty"`
}

// ReqTxID tx lookup
type ReqTxID struct {
	Txid string `json:"txid"`
}

// ReqWaitTx wait for inclusion, timeout in seconds
type ReqWaitTx struct {
	Txid    string `json:"txid"`
	Timeout int64  `json:"timeout"`
}
