// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"strconv"

	"github.com/syndtr/goleveldb/leveldb/comparer"
	lerrors "github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/memdb"
)

// memdb 应该无需区分同步与异步操作

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoMemDB(name, dir, cache)
	}
	registerDBCreator(MemDBBackendStr, dbCreator, false)
}

// GoMemDB ordered in memory db, used by tests and throwaway nodes
type GoMemDB struct {
	db *memdb.DB
}

// NewGoMemDB new memdb, name and dir are ignored
func NewGoMemDB(name string, dir string, cache int) (*GoMemDB, error) {
	return &GoMemDB{
		db: memdb.New(comparer.DefaultComparer, cache*1024),
	}, nil
}

// Get copy of the value of key
func (db *GoMemDB) Get(key []byte) ([]byte, error) {
	v, err := db.db.Get(key)
	if err != nil {
		if err == lerrors.ErrNotFound {
			return nil, ErrNotFoundInDb
		}
		return nil, err
	}
	return cloneByte(v), nil
}

// Set key, a nil value deletes it
func (db *GoMemDB) Set(key []byte, value []byte) error {
	if value == nil {
		return db.Delete(key)
	}
	return db.db.Put(key, value)
}

// SetSync same as Set
func (db *GoMemDB) SetSync(key []byte, value []byte) error {
	return db.Set(key, value)
}

// Delete key, deleting a missing key is not an error
func (db *GoMemDB) Delete(key []byte) error {
	err := db.db.Delete(key)
	if err == lerrors.ErrNotFound {
		return nil
	}
	return err
}

// DeleteSync same as Delete
func (db *GoMemDB) DeleteSync(key []byte) error {
	return db.Delete(key)
}

// List see ListHelper.List
func (db *GoMemDB) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	return NewListHelper(db).List(prefix, key, count, direction)
}

// Close drop all content
func (db *GoMemDB) Close() {
	db.db.Reset()
}

// Stats key count and byte size
func (db *GoMemDB) Stats() map[string]string {
	return map[string]string{
		"memdb.len":  strconv.Itoa(db.db.Len()),
		"memdb.size": strconv.Itoa(db.db.Size()),
	}
}

// Iterator iterate the start prefix, or [start, end) when end is set
func (db *GoMemDB) Iterator(start []byte, end []byte, reverse bool) Iterator {
	return newLevelIterator(db.db.NewIterator(levelRange(start, end)), start, end, reverse)
}

type kv struct{ k, v []byte }

type memBatch struct {
	db     *GoMemDB
	writes []kv
	size   int
}

// NewBatch new batch
func (db *GoMemDB) NewBatch(sync bool) Batch {
	return &memBatch{db: db}
}

func (b *memBatch) Set(key, value []byte) {
	b.writes = append(b.writes, kv{cloneByte(key), cloneByte(value)})
	b.size += len(value)
}

func (b *memBatch) Delete(key []byte) {
	b.writes = append(b.writes, kv{cloneByte(key), nil})
	b.size++
}

func (b *memBatch) Write() error {
	for _, kv := range b.writes {
		if err := b.db.Set(kv.k, kv.v); err != nil {
			return err
		}
	}
	return nil
}

func (b *memBatch) ValueSize() int {
	return b.size
}

func (b *memBatch) Reset() {
	b.writes = b.writes[:0]
	b.size = 0
}
