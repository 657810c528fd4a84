// Copyright 2026 The Checktica Authors
// SPDX-License-Identifier: MIT

package testable

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOsFileSystem_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "a", "b")
	path := filepath.Join(sub, "essay.txt")

	var fsys FileSystem = OsFileSystem{}
	require.NoError(t, fsys.MkdirAll(sub, 0o750))
	require.NoError(t, fsys.WriteFile(path, []byte("hello"), 0o600))

	info, err := fsys.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(5), info.Size())

	data, err := fsys.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	var seen []string
	err = fsys.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			seen = append(seen, p)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{path}, seen)
}

func TestMockFileSystem_Overrides(t *testing.T) {
	boom := errors.New("boom")
	m := &MockFileSystem{
		ReadFileFn: func(string) ([]byte, error) { return nil, boom },
		StatFn:     func(string) (os.FileInfo, error) { return nil, os.ErrNotExist },
	}

	_, err := m.ReadFile("anything")
	assert.ErrorIs(t, err, boom)

	_, err = m.Stat("anything")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMockFileSystem_FallsThrough(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.md")

	m := &MockFileSystem{}
	require.NoError(t, m.MkdirAll(dir, 0o750))
	require.NoError(t, m.WriteFile(path, []byte("# note"), 0o600))

	data, err := m.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# note", string(data))

	count := 0
	require.NoError(t, m.WalkDir(dir, func(string, fs.DirEntry, error) error {
		count++
		return nil
	}))
	assert.Equal(t, 2, count)
}
