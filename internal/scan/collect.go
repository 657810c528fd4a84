// Copyright 2026 The Checktica Authors
// SPDX-License-Identifier: MIT

package scan

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"
)

// DefaultExtensions are the file types picked up when walking a directory.
var DefaultExtensions = []string{".txt", ".md"}

const defaultReadConcurrency = 8

// Collect expands paths into inputs. Directories are walked recursively and
// filtered by extension; hidden directories are skipped. Files named directly
// are always included. Inputs keep the order in which paths were given, and
// files within a directory are in lexical order. Reads run in parallel.
func (s *Scanner) Collect(ctx context.Context, paths []string) ([]Input, error) {
	files, err := s.expand(paths)
	if err != nil {
		return nil, err
	}

	inputs := make([]Input, len(files))
	g, ctx := errgroup.WithContext(ctx)
	limit := s.ReadConcurrency
	if limit <= 0 {
		limit = defaultReadConcurrency
	}
	g.SetLimit(limit)

	fsys := s.fs()
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := fsys.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}
			inputs[i] = Input{Source: path, Text: string(data)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return inputs, nil
}

// expand resolves paths to a de-duplicated list of files.
func (s *Scanner) expand(paths []string) ([]string, error) {
	fsys := s.fs()
	exts := s.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}

	seen := make(map[string]bool)
	var files []string
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			files = append(files, p)
		}
	}

	for _, p := range paths {
		info, err := fsys.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("cannot access %q: %w", p, err)
		}
		if !info.IsDir() {
			add(p)
			continue
		}

		err = fsys.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != p && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if matchesExtension(path, exts) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", p, err)
		}
	}
	return files, nil
}

func matchesExtension(path string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return slices.ContainsFunc(exts, func(e string) bool {
		e = strings.ToLower(e)
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		return e == ext
	})
}
