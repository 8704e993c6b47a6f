// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateDBTx(t *testing.T) {
	backend, err := NewGoMemDB("state", "", 0)
	require.NoError(t, err)
	require.NoError(t, backend.Set([]byte("a"), []byte("1")))

	s := NewStateDB(backend)
	var kv KV = s
	v, err := kv.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), v)

	kv.Begin()
	require.NoError(t, kv.Set([]byte("a"), []byte("2")))
	require.NoError(t, kv.Set([]byte("b"), []byte("3")))
	v, _ = kv.Get([]byte("a"))
	assert.Equal(t, []byte("2"), v)
	kv.Rollback()

	v, _ = kv.Get([]byte("a"))
	assert.Equal(t, []byte("1"), v)
	_, err = kv.Get([]byte("b"))
	assert.Equal(t, ErrNotFoundInDb, err)

	kv.Begin()
	require.NoError(t, kv.Set([]byte("b"), []byte("3")))
	require.NoError(t, kv.Set([]byte("a"), nil))
	kv.Commit()
	_, err = kv.Get([]byte("a"))
	assert.Equal(t, ErrNotFoundInDb, err)

	// nothing reached the backend yet
	v, _ = backend.Get([]byte("a"))
	assert.Equal(t, []byte("1"), v)
	_, err = backend.Get([]byte("b"))
	assert.Equal(t, ErrNotFoundInDb, err)

	kvs := s.KVs()
	require.Len(t, kvs, 2)
	assert.Equal(t, []byte("a"), kvs[0].Key)

	batch := backend.NewBatch(true)
	s.Flush(batch)
	require.NoError(t, batch.Write())
	_, err = backend.Get([]byte("a"))
	assert.Equal(t, ErrNotFoundInDb, err)
	v, _ = backend.Get([]byte("b"))
	assert.Equal(t, []byte("3"), v)
	assert.Len(t, s.KVs(), 0)
}
