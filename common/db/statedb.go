// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"sort"
)

// StateDB write overlay of one block on top of a backend. Begin starts a
// transaction level cache; Commit folds it into the block cache, Rollback
// drops it. Nothing reaches the backend until Flush.
type StateDB struct {
	backend KVDB
	cache   map[string][]byte
	txcache map[string][]byte
	intx    bool
}

// NewStateDB new overlay
func NewStateDB(backend KVDB) *StateDB {
	return &StateDB{
		backend: backend,
		cache:   make(map[string][]byte),
	}
}

// Begin 开启内存事务处理
func (s *StateDB) Begin() {
	s.intx = true
	s.txcache = make(map[string][]byte)
}

// Rollback reset tx
func (s *StateDB) Rollback() {
	s.resetTx()
}

// Commit canche tx
func (s *StateDB) Commit() {
	for k, v := range s.txcache {
		s.cache[k] = v
	}
	s.resetTx()
}

func (s *StateDB) resetTx() {
	s.intx = false
	s.txcache = nil
}

// Get a deleted or missing key returns ErrNotFoundInDb
func (s *StateDB) Get(key []byte) ([]byte, error) {
	skey := string(key)
	if s.intx {
		if value, ok := s.txcache[skey]; ok {
			return found(value)
		}
	}
	if value, ok := s.cache[skey]; ok {
		return found(value)
	}
	value, err := s.backend.Get(key)
	if err != nil {
		return nil, err
	}
	return value, nil
}

func found(value []byte) ([]byte, error) {
	if value == nil {
		return nil, ErrNotFoundInDb
	}
	return cloneByte(value), nil
}

// Set a nil value deletes the key
func (s *StateDB) Set(key []byte, value []byte) error {
	skey := string(key)
	if s.intx {
		s.txcache[skey] = cloneByte(value)
	} else {
		s.cache[skey] = cloneByte(value)
	}
	return nil
}

// List reads the backend only, pending writes are not visible
func (s *StateDB) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	return s.backend.List(prefix, key, count, direction)
}

// KVs committed writes sorted by key
func (s *StateDB) KVs() (kvs []*PendingKV) {
	keys := make([]string, 0, len(s.cache))
	for k := range s.cache {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		kvs = append(kvs, &PendingKV{Key: []byte(k), Value: s.cache[k]})
	}
	return kvs
}

// Flush committed writes into batch and clear the block cache
func (s *StateDB) Flush(batch Batch) {
	for _, kv := range s.KVs() {
		if kv.Value == nil {
			batch.Delete(kv.Key)
		} else {
			batch.Set(kv.Key, kv.Value)
		}
	}
	s.cache = make(map[string][]byte)
	s.resetTx()
}

// PendingKV one pending write
type PendingKV struct {
	Key   []byte
	Value []byte
}
