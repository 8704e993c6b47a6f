// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rpc json rpc 1.0 over http, the Chain33 service plus every plugin service
package rpc

import (
	"io"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"

	"github.com/BirthdayResearch/jellyfishsdk-sub005/client"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/pluginmgr"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/types"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
	"github.com/rs/cors"
)

var rlog = log.New("module", "rpc")

// HTTPConn adapt HTTP connection to ReadWriteCloser
type HTTPConn struct {
	in  io.Reader
	out io.Writer
}

// Read rewrite the read of http
func (c *HTTPConn) Read(p []byte) (n int, err error) { return c.in.Read(p) }

// Write rewrite the write of http
func (c *HTTPConn) Write(d []byte) (n int, err error) { return c.out.Write(d) }

// Close rewrite the close of http
func (c *HTTPConn) Close() error { return nil }

// JSONRPCServer json rpc server
type JSONRPCServer struct {
	cfg       *types.RPC
	api       client.API
	s         *rpc.Server
	whitelist *whitelist
	l         net.Listener
	srv       *http.Server
}

// NewJSONRPCServer register Chain33 and the plugin services
func NewJSONRPCServer(cfg *types.RPC, api client.API) *JSONRPCServer {
	j := &JSONRPCServer{
		cfg:       cfg,
		api:       api,
		s:         rpc.NewServer(),
		whitelist: newWhitelist(cfg.Whitelist),
	}
	if err := j.s.Register(newChain33(api)); err != nil {
		panic(err)
	}
	pluginmgr.AddRPC(j)
	return j
}

// API node behind the services
func (j *JSONRPCServer) API() client.API {
	return j.api
}

// JRPC the net/rpc server plugins register on
func (j *JSONRPCServer) JRPC() *rpc.Server {
	return j.s
}

// Handler whitelist and cors around the json rpc endpoint
func (j *JSONRPCServer) Handler() http.Handler {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		if r.Method != http.MethodPost {
			http.Error(w, "json rpc accepts POST only", http.StatusMethodNotAllowed)
			return
		}
		if !j.whitelist.allowed(r.RemoteAddr) {
			rlog.Error("HTTPServer", "rejected", r.RemoteAddr)
			http.Error(w, "reject", http.StatusForbidden)
			return
		}
		serverCodec := jsonrpc.NewServerCodec(&HTTPConn{in: r.Body, out: w})
		w.Header().Set("Content-type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := j.s.ServeRequest(serverCodec); err != nil {
			rlog.Debug("Error while serving JSON request", "err", err)
		}
	})
	origins := j.cfg.CorsOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodPost},
		AllowedHeaders: []string{"*"},
	}).Handler(handler)
}

// Listen bind JrpcBindAddr and serve in the background, returns the bound port
func (j *JSONRPCServer) Listen() (int, error) {
	l, err := net.Listen("tcp", j.cfg.JrpcBindAddr)
	if err != nil {
		return 0, errors.Wrapf(err, "listen %s", j.cfg.JrpcBindAddr)
	}
	j.l = l
	j.srv = &http.Server{Handler: j.Handler()}
	go func() {
		if err := j.srv.Serve(l); err != nil && err != http.ErrServerClosed {
			rlog.Error("Serve", "err", err)
		}
	}()
	rlog.Info("json rpc listening", "addr", l.Addr().String())
	return l.Addr().(*net.TCPAddr).Port, nil
}

// Close stop listening
func (j *JSONRPCServer) Close() {
	if j.srv != nil {
		j.srv.Close()
	}
}
