// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package db key value storage backends and the interfaces executors see
package db

import (
	"bytes"
	"errors"

	pkgerr "github.com/pkg/errors"
)

// ErrNotFoundInDb key does not exist
var ErrNotFoundInDb = errors.New("ErrNotFoundInDb")

// ErrUnknownBackend backend name not registered
var ErrUnknownBackend = errors.New("ErrUnknownBackend")

// KV state access for one block, Begin/Rollback/Commit wrap one transaction
type KV interface {
	Get(key []byte) ([]byte, error)
	Set(key []byte, value []byte) error
	Begin()
	Rollback()
	Commit()
}

// KVDB local index access
type KVDB interface {
	Get(key []byte) ([]byte, error)
	Set(key []byte, value []byte) error
	List(prefix, key []byte, count, direction int32) ([][]byte, error)
}

// IteratorDB ordered iteration over [start, end) or the start prefix when end is nil
type IteratorDB interface {
	Iterator(start []byte, end []byte, reverse bool) Iterator
}

// DB persistent backend
type DB interface {
	KVDB
	IteratorDB
	SetSync([]byte, []byte) error
	Delete([]byte) error
	DeleteSync([]byte) error
	Close()
	NewBatch(sync bool) Batch
	Stats() map[string]string
}

// Batch atomic group of writes
type Batch interface {
	Set(key, value []byte)
	Delete(key []byte)
	Write() error
	ValueSize() int
	Reset()
}

// Iterator cursor over an ordered key range
type Iterator interface {
	Rewind() bool
	Next() bool
	Valid() bool
	// Seek forward: first key >= key, reverse: last key <= key
	Seek(key []byte) bool
	Key() []byte
	Value() []byte
	ValueCopy() []byte
	Error() error
	Close()
}

type itBase struct {
	start   []byte
	end     []byte
	reverse bool
}

func (it *itBase) checkKey(key []byte) bool {
	if it.start != nil && it.end == nil {
		return bytes.HasPrefix(key, it.start)
	}
	if it.start != nil && bytes.Compare(key, it.start) < 0 {
		return false
	}
	if it.end != nil && bytes.Compare(key, it.end) >= 0 {
		return false
	}
	return true
}

//-----------------------------------------------------------------------------

// backend names
const (
	LevelDBBackendStr    = "leveldb" // legacy, defaults to goleveldb.
	GoLevelDBBackendStr  = "goleveldb"
	MemDBBackendStr      = "memdb"
	GoBadgerDBBackendStr = "gobadgerdb"
)

type dbCreator func(name string, dir string, cache int) (DB, error)

var backends = map[string]dbCreator{}

func registerDBCreator(backend string, creator dbCreator, force bool) {
	_, ok := backends[backend]
	if !force && ok {
		return
	}
	backends[backend] = creator
}

// NewDB open a backend by name
func NewDB(name string, backend string, dir string, cache int32) (DB, error) {
	creator, ok := backends[backend]
	if !ok {
		return nil, pkgerr.Wrap(ErrUnknownBackend, backend)
	}
	db, err := creator(name, dir, int(cache))
	if err != nil {
		return nil, pkgerr.Wrapf(err, "open %s db %s", backend, name)
	}
	return db, nil
}

func cloneByte(v []byte) []byte {
	if v == nil {
		return nil
	}
	value := make([]byte, len(v))
	copy(value, v)
	return value
}

// prefixEnd smallest key greater than every key with the prefix, nil if none
func prefixEnd(prefix []byte) []byte {
	end := cloneByte(prefix)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	return nil
}
