// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"net/rpc"

	"github.com/BirthdayResearch/jellyfishsdk-sub005/client"
)

// RPCServer what plugins need to register their services
type RPCServer interface {
	API() client.API
	JRPC() *rpc.Server
}

// ChannelClient base of plugin rpc services
type ChannelClient struct {
	client.API
}

// Init bind api and register jrpc under name
func (c *ChannelClient) Init(name string, s RPCServer, jrpc interface{}) error {
	if c.API == nil {
		c.API = s.API()
	}
	if jrpc != nil {
		return s.JRPC().RegisterName(name, jrpc)
	}
	return nil
}
