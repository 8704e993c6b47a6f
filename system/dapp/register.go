// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"sort"
	"sync"

	clog "github.com/BirthdayResearch/jellyfishsdk-sub005/common/log"
	"github.com/BirthdayResearch/jellyfishsdk-sub005/types"
	log "github.com/inconshreveable/log15"
)

var elog = log.New("module", "execs")

// SetLogLevel set log level of the executors
func SetLogLevel(level string) {
	clog.SetLogLevel(level)
}

// DriverCreate driver factory
type DriverCreate func() Driver

type driverWithHeight struct {
	create DriverCreate
	height int64
}

var (
	mu                 sync.RWMutex
	registedExecDriver = make(map[string]*driverWithHeight)
)

// Register driver enabled from height on
func Register(name string, create DriverCreate, height int64) {
	if create == nil {
		panic("Execute: Register driver is nil")
	}
	mu.Lock()
	defer mu.Unlock()
	if _, dup := registedExecDriver[name]; dup {
		panic("Execute: Register called twice for driver " + name)
	}
	registedExecDriver[name] = &driverWithHeight{create: create, height: height}
	elog.Debug("Register", "driver", name, "height", height)
}

// LoadDriver new driver instance, height -1 ignores the enable height
func LoadDriver(name string, height int64) (driver Driver, err error) {
	mu.RLock()
	c, ok := registedExecDriver[name]
	mu.RUnlock()
	if !ok {
		return nil, types.ErrExecNotFound
	}
	if height >= c.height || height == -1 {
		return c.create(), nil
	}
	return nil, types.ErrExecNotFound
}

// ListDrivers registered names in a fixed order
func ListDrivers() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registedExecDriver))
	for name := range registedExecDriver {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
