// ============================================================================
// TDL - Task Definition Language Toolchain
// ============================================================================
//
// Package:     store
// Description: Tests for the SQLite task index
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	mdwconfig "github.com/msto63/tdl/foundation/core/config"
	mdwerror "github.com/msto63/tdl/foundation/core/error"
	"github.com/msto63/tdl/foundation/tdl"
)

func newTestStore(t *testing.T) *SQLiteIndexStore {
	t.Helper()
	s, err := NewSQLiteIndexStore(SQLiteIndexConfig{Path: filepath.Join(t.TempDir(), "data", "index.db")})
	if err != nil {
		t.Fatalf("NewSQLiteIndexStore() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func mustIndex(t *testing.T, s *SQLiteIndexStore, file, source string) int {
	t.Helper()
	prog, err := tdl.CompileString(source)
	if err != nil {
		t.Fatalf("CompileString() error = %v", err)
	}
	n, err := s.IndexFile(context.Background(), file, "run-"+file, prog)
	if err != nil {
		t.Fatalf("IndexFile(%s) error = %v", file, err)
	}
	return n
}

func TestSQLiteIndexStore_IndexAndQuery(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	mustIndex(t, s, "a.tdl", "task control { priority = 5; deadline = 100; }\ntask log { priority = 1; deadline = 20; }")
	mustIndex(t, s, "b.tdl", "task control { priority = 5; deadline = 50; }")

	all, err := s.Query(ctx, TaskFilter{})
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}

	want := []struct {
		file     string
		name     string
		deadline int64
	}{
		{"b.tdl", "control", 50},
		{"a.tdl", "control", 100},
		{"a.tdl", "log", 20},
	}
	if len(all) != len(want) {
		t.Fatalf("Query() returned %d records, want %d", len(all), len(want))
	}
	for i, w := range want {
		if all[i].File != w.file || all[i].Name != w.name || all[i].Deadline != w.deadline {
			t.Errorf("record %d = %s/%s deadline %d, want %s/%s deadline %d",
				i, all[i].File, all[i].Name, all[i].Deadline, w.file, w.name, w.deadline)
		}
	}
	if all[2].Line != 2 || all[2].Column != 6 || all[2].RunID != "run-a.tdl" {
		t.Errorf("log record = %+v, want line 2 column 6 run-a.tdl", all[2])
	}

	filtered, err := s.Query(ctx, TaskFilter{File: "a.tdl", MinPriority: 2})
	if err != nil {
		t.Fatalf("Query(filter) error = %v", err)
	}
	if len(filtered) != 1 || filtered[0].Name != "control" {
		t.Errorf("Query(filter) = %v, want a.tdl/control", filtered)
	}

	urgent, err := s.Query(ctx, TaskFilter{MaxDeadline: 50, Limit: 1})
	if err != nil {
		t.Fatalf("Query(deadline) error = %v", err)
	}
	if len(urgent) != 1 || urgent[0].File != "b.tdl" {
		t.Errorf("Query(deadline) = %v, want b.tdl/control", urgent)
	}
}

func TestSQLiteIndexStore_Reindex(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	mustIndex(t, s, "a.tdl", "task x { priority = 1; deadline = 1; }\ntask y { priority = 1; deadline = 1; }")
	if n := mustIndex(t, s, "a.tdl", "task z { priority = 3; deadline = 3; }"); n != 1 {
		t.Errorf("IndexFile() = %d, want 1", n)
	}

	records, err := s.Query(ctx, TaskFilter{File: "a.tdl"})
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(records) != 1 || records[0].Name != "z" {
		t.Errorf("records after reindex = %v, want only z", records)
	}

	stats, err := s.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats["files"] != int64(1) || stats["tasks"] != int64(1) {
		t.Errorf("Stats() = %v, want 1 file, 1 task", stats)
	}
}

func TestSQLiteIndexStore_RemoveFile(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	mustIndex(t, s, "a.tdl", "task x { priority = 1; deadline = 1; }\ntask y { priority = 1; deadline = 1; }")

	removed, err := s.RemoveFile(ctx, "a.tdl")
	if err != nil {
		t.Fatalf("RemoveFile() error = %v", err)
	}
	if removed != 2 {
		t.Errorf("RemoveFile() = %d, want 2", removed)
	}

	if removed, _ := s.RemoveFile(ctx, "a.tdl"); removed != 0 {
		t.Errorf("second RemoveFile() = %d, want 0", removed)
	}
}

func TestSQLiteIndexStore_NilProgram(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.IndexFile(context.Background(), "a.tdl", "", nil); !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("IndexFile(nil) code = %v, want INVALID_INPUT", mdwerror.GetCode(err))
	}
}

func TestNewSQLiteIndexStore_DefaultPath(t *testing.T) {
	if got := DefaultIndexConfig().Path; got != mdwconfig.DefaultIndexPath {
		t.Errorf("DefaultIndexConfig().Path = %q, want %q", got, mdwconfig.DefaultIndexPath)
	}

	dir := t.TempDir()
	t.Chdir(dir)

	s, err := NewSQLiteIndexStore(SQLiteIndexConfig{})
	if err != nil {
		t.Fatalf("NewSQLiteIndexStore() error = %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(filepath.Join(dir, mdwconfig.DefaultIndexPath)); err != nil {
		t.Errorf("default index file not created: %v", err)
	}
}
