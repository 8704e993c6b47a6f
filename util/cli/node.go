// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli entry points of the node and client binaries
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/BirthdayResearch/jellyfishsdk-sub005/blockchain"
	clog "github.com/BirthdayResearch/jellyfishsdk-sub005/common/log"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/mempool"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/metrics"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/rpc"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/types"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/util"
	log "github.com/inconshreveable/log15"
	"github.com/spf13/cobra"
)

var nlog = log.New("module", "node")

// Node modules of a running node
type Node struct {
	cfg    *types.Config
	mem    *mempool.Mempool
	chain  *blockchain.BlockChain
	rpcapi *rpc.JSONRPCServer
	port   int
	cancel context.CancelFunc
	done   chan struct{}
}

// NewNode open the chain and register the rpc services
func NewNode(cfg *types.Config) (*Node, error) {
	nlog.Info("loading mempool module")
	mem := mempool.New(cfg.Mempool)
	nlog.Info("loading blockchain module")
	chain, err := blockchain.New(cfg, mem)
	if err != nil {
		return nil, err
	}
	nlog.Info("loading rpc module")
	return &Node{
		cfg:    cfg,
		mem:    mem,
		chain:  chain,
		rpcapi: rpc.NewJSONRPCServer(cfg.RPC, chain),
	}, nil
}

// Start listen and run the block loop
func (n *Node) Start(ctx context.Context) error {
	port, err := n.rpcapi.Listen()
	if err != nil {
		return err
	}
	n.port = port
	ctx, n.cancel = context.WithCancel(ctx)
	metrics.StartMetrics(ctx, n.cfg.Metrics)
	n.done = make(chan struct{})
	go func() {
		defer close(n.done)
		n.chain.Run(ctx)
	}()
	go watching(ctx)
	return nil
}

// Port bound rpc port
func (n *Node) Port() int {
	return n.port
}

// Chain the node's chain
func (n *Node) Chain() *blockchain.BlockChain {
	return n.chain
}

// Close stop the modules in reverse order
func (n *Node) Close() {
	nlog.Info("begin close rpc module")
	n.rpcapi.Close()
	if n.cancel != nil {
		n.cancel()
		<-n.done
	}
	nlog.Info("begin close blockchain module")
	n.chain.Close()
}

func watching(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			var m runtime.MemStats
			runtime.ReadMemStats(&m)
			nlog.Info("info:", "NumGoroutine:", runtime.NumGoroutine(), "Mem:", m.Sys/(1024*1024), "HeapAlloc:", m.HeapAlloc/(1024*1024))
		}
	}
}

// NodeCmd daemon command of binary name, config defaults to name.toml
func NodeCmd(name string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name,
		Short: "ICX order book node",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			datadir, _ := cmd.Flags().GetString("datadir")
			return runNode(configPath, datadir)
		},
	}
	cmd.Flags().StringP("config", "f", name+".toml", "config file")
	cmd.Flags().String("datadir", "", "data dir, holds logs and databases")
	return cmd
}

// RunNode execute NodeCmd
func RunNode(name string) {
	if err := NodeCmd(name).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runNode(configPath, datadir string) error {
	cfg, err := types.InitCfg(configPath)
	if err != nil {
		return err
	}
	if datadir != "" {
		util.ResetDatadir(cfg, datadir)
	}
	clog.SetFileLog(cfg.Log)
	nlog.Info("config", "title", cfg.Title, "store", cfg.Store.Driver, "rpc", cfg.RPC.JrpcBindAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	node, err := NewNode(cfg)
	if err != nil {
		return err
	}
	if err := node.Start(ctx); err != nil {
		node.chain.Close()
		return err
	}
	<-ctx.Done()
	node.Close()
	return nil
}
