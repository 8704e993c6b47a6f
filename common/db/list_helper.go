// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"bytes"

	log "github.com/inconshreveable/log15"
)

//ListHelper ...
type ListHelper struct {
	db IteratorDB
}

var listlog = log.New("module", "db.ListHelper")

//NewListHelper new
func NewListHelper(db IteratorDB) *ListHelper {
	return &ListHelper{db}
}

//PrefixScan 前缀
func (db *ListHelper) PrefixScan(prefix []byte) (values [][]byte, err error) {
	it := db.db.Iterator(prefix, nil, false)
	defer it.Close()

	for it.Rewind(); it.Valid(); it.Next() {
		value := it.ValueCopy()
		if it.Error() != nil {
			listlog.Error("PrefixScan it.Value()", "error", it.Error())
			return nil, it.Error()
		}
		values = append(values, value)
	}
	return values, nil
}

// direction
const (
	ListDESC = int32(0)
	ListASC  = int32(1)
	ListSeek = int32(2)
)

// List up to count values under prefix (count <= 0 means all). With an empty
// key the scan starts at the first (ASC) or last (DESC) key, otherwise it
// starts right after key. ListSeek with count 1 returns the key and value at
// the seek position.
func (db *ListHelper) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	if len(key) == 0 {
		if direction == ListASC {
			return db.IteratorScanFromFirst(prefix, count)
		}
		return db.IteratorScanFromLast(prefix, count)
	}
	if count == 1 && direction == ListSeek {
		it := db.db.Iterator(prefix, nil, true)
		defer it.Close()
		if !it.Seek(key) {
			return nil, it.Error()
		}
		return [][]byte{cloneByte(it.Key()), it.ValueCopy()}, nil
	}
	return db.IteratorScan(prefix, key, count, direction)
}

//IteratorScan 迭代
func (db *ListHelper) IteratorScan(prefix []byte, key []byte, count int32, direction int32) (values [][]byte, err error) {
	it := db.db.Iterator(prefix, nil, direction == ListDESC)
	defer it.Close()

	if !it.Seek(key) {
		return nil, it.Error()
	}
	if bytes.Equal(it.Key(), key) {
		it.Next()
	}
	return collect(it, count)
}

//IteratorScanFromFirst 从头迭代
func (db *ListHelper) IteratorScanFromFirst(prefix []byte, count int32) (values [][]byte, err error) {
	it := db.db.Iterator(prefix, nil, false)
	defer it.Close()
	it.Rewind()
	return collect(it, count)
}

//IteratorScanFromLast 从尾迭代
func (db *ListHelper) IteratorScanFromLast(prefix []byte, count int32) (values [][]byte, err error) {
	it := db.db.Iterator(prefix, nil, true)
	defer it.Close()
	it.Rewind()
	return collect(it, count)
}

func collect(it Iterator, count int32) (values [][]byte, err error) {
	var i int32
	for ; it.Valid(); it.Next() {
		value := it.ValueCopy()
		if it.Error() != nil {
			listlog.Error("List it.Value()", "error", it.Error())
			return nil, it.Error()
		}
		values = append(values, value)
		i++
		if i == count {
			break
		}
	}
	return values, nil
}
