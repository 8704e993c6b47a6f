// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	tml "github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config node configuration
type Config struct {
	Title        string            `toml:"title"`
	SuperManager []string          `toml:"superManager"`
	Log          *Log              `toml:"log"`
	Store        *Store            `toml:"store"`
	Mempool      *Mempool          `toml:"mempool"`
	BlockChain   *BlockChain       `toml:"blockchain"`
	RPC          *RPC              `toml:"rpc"`
	ICX          *ICX              `toml:"icx"`
	Gov          map[string]string `toml:"gov"`
	Genesis      *Genesis          `toml:"genesis"`
	Metrics      *Metrics          `toml:"metrics"`
}

// Log 日志配置
type Log struct {
	Loglevel        string `toml:"loglevel"`
	LogConsoleLevel string `toml:"logConsoleLevel"`
	LogFile         string `toml:"logFile"`
	MaxFileSize     uint32 `toml:"maxFileSize"`
	MaxBackups      uint32 `toml:"maxBackups"`
	MaxAge          uint32 `toml:"maxAge"`
	LocalTime       bool   `toml:"localTime"`
	Compress        bool   `toml:"compress"`
	CallerFile      bool   `toml:"callerFile"`
	CallerFunction  bool   `toml:"callerFunction"`
}

// Store state database
type Store struct {
	Name    string `toml:"name"`
	Driver  string `toml:"driver"`
	DbPath  string `toml:"dbPath"`
	DbCache int32  `toml:"dbCache"`
}

// Mempool pending operations queue
type Mempool struct {
	PoolCacheSize int64 `toml:"poolCacheSize"`
}

// BlockChain block production
type BlockChain struct {
	// milliseconds between two blocks
	BlockInterval  int64 `toml:"blockInterval"`
	MaxTxsPerBlock int64 `toml:"maxTxsPerBlock"`
}

// RPC json rpc server
type RPC struct {
	JrpcBindAddr string   `toml:"jrpcBindAddr"`
	Whitelist    []string `toml:"whitelist"`
	CorsOrigins  []string `toml:"corsOrigins"`
}

// ICX order book heights and timeouts, in native blocks unless noted
type ICX struct {
	DefaultOrderExpiry   int64  `toml:"defaultOrderExpiry"`
	DefaultOfferExpiry   int64  `toml:"defaultOfferExpiry"`
	MinDFCHTLCTimeout    int64  `toml:"minDFCHTLCTimeout"`
	MinDFCHTLCTimeoutExt int64  `toml:"minDFCHTLCTimeoutExt"`
	MinExtHTLCTimeout    int64  `toml:"minExtHTLCTimeout"` // foreign blocks
	ExtBlockRatio        int64  `toml:"extBlockRatio"`
	BTCNetwork           string `toml:"btcNetwork"`
}

// Genesis assets and balances created at height 0
type Genesis struct {
	Assets   []string          `toml:"assets"`
	Accounts []*GenesisAccount `toml:"accounts"`
}

// GenesisAccount initial free balance
type GenesisAccount struct {
	Addr   string `toml:"addr"`
	Asset  string `toml:"asset"`
	Amount string `toml:"amount"`
}

// Metrics periodic metrics log
type Metrics struct {
	EnableMetrics bool  `toml:"enableMetrics"`
	Duration      int64 `toml:"duration"` // seconds
}

// DefaultICX default order book parameters
func DefaultICX() *ICX {
	return &ICX{
		DefaultOrderExpiry:   2880,
		DefaultOfferExpiry:   10,
		MinDFCHTLCTimeout:    500,
		MinDFCHTLCTimeoutExt: 1440,
		MinExtHTLCTimeout:    14,
		ExtBlockRatio:        16,
		BTCNetwork:           "regtest",
	}
}

// InitCfg load config file
func InitCfg(path string) (*Config, error) {
	var cfg Config
	if _, err := tml.DecodeFile(path, &cfg); err != nil {
		return nil, errors.Wrapf(err, "decode config %s", path)
	}
	fillDefaults(&cfg)
	return &cfg, nil
}

// InitCfgString load config from a toml string
func InitCfgString(cfgstring string) (*Config, error) {
	var cfg Config
	if _, err := tml.Decode(cfgstring, &cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	fillDefaults(&cfg)
	return &cfg, nil
}

func fillDefaults(cfg *Config) {
	if cfg.Title == "" {
		cfg.Title = "local"
	}
	if cfg.Log == nil {
		cfg.Log = &Log{}
	}
	if cfg.Store == nil {
		cfg.Store = &Store{}
	}
	if cfg.Store.Name == "" {
		cfg.Store.Name = "icxstate"
	}
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = "memdb"
	}
	if cfg.Store.DbPath == "" {
		cfg.Store.DbPath = "datadir"
	}
	if cfg.Mempool == nil {
		cfg.Mempool = &Mempool{}
	}
	if cfg.Mempool.PoolCacheSize <= 0 {
		cfg.Mempool.PoolCacheSize = 10240
	}
	if cfg.BlockChain == nil {
		cfg.BlockChain = &BlockChain{}
	}
	if cfg.BlockChain.BlockInterval <= 0 {
		cfg.BlockChain.BlockInterval = 1000
	}
	if cfg.BlockChain.MaxTxsPerBlock <= 0 {
		cfg.BlockChain.MaxTxsPerBlock = 10000
	}
	if cfg.RPC == nil {
		cfg.RPC = &RPC{}
	}
	if cfg.RPC.JrpcBindAddr == "" {
		cfg.RPC.JrpcBindAddr = "localhost:8801"
	}
	def := DefaultICX()
	if cfg.ICX == nil {
		cfg.ICX = def
	}
	if cfg.ICX.DefaultOrderExpiry <= 0 {
		cfg.ICX.DefaultOrderExpiry = def.DefaultOrderExpiry
	}
	if cfg.ICX.DefaultOfferExpiry <= 0 {
		cfg.ICX.DefaultOfferExpiry = def.DefaultOfferExpiry
	}
	if cfg.ICX.MinDFCHTLCTimeout <= 0 {
		cfg.ICX.MinDFCHTLCTimeout = def.MinDFCHTLCTimeout
	}
	if cfg.ICX.MinDFCHTLCTimeoutExt <= 0 {
		cfg.ICX.MinDFCHTLCTimeoutExt = def.MinDFCHTLCTimeoutExt
	}
	if cfg.ICX.MinExtHTLCTimeout <= 0 {
		cfg.ICX.MinExtHTLCTimeout = def.MinExtHTLCTimeout
	}
	if cfg.ICX.ExtBlockRatio <= 0 {
		cfg.ICX.ExtBlockRatio = def.ExtBlockRatio
	}
	if cfg.ICX.BTCNetwork == "" {
		cfg.ICX.BTCNetwork = def.BTCNetwork
	}
	if cfg.Gov == nil {
		cfg.Gov = make(map[string]string)
	}
	if cfg.Genesis == nil {
		cfg.Genesis = &Genesis{}
	}
	if cfg.Metrics == nil {
		cfg.Metrics = &Metrics{}
	}
	if cfg.Metrics.Duration <= 0 {
		cfg.Metrics.Duration = 60
	}
}
