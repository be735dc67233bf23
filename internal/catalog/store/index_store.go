// ============================================================================
// TDL - Task Definition Language Toolchain
// ============================================================================
//
// Package:     store
// Description: SQLite index of validated TDL tasks
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	mdwconfig "github.com/msto63/tdl/foundation/core/config"
	mdwerror "github.com/msto63/tdl/foundation/core/error"
	"github.com/msto63/tdl/foundation/tdl/ast"
)

// TaskRecord is one indexed task
type TaskRecord struct {
	ID        string    `json:"id"`
	File      string    `json:"file"`
	Name      string    `json:"name"`
	Priority  int64     `json:"priority"`
	Deadline  int64     `json:"deadline"`
	Line      int       `json:"line"`
	Column    int       `json:"column"`
	RunID     string    `json:"run_id"`
	IndexedAt time.Time `json:"indexed_at"`
}

// TaskFilter defines criteria for querying tasks
type TaskFilter struct {
	File        string
	Name        string
	MinPriority int64 // 0: no lower bound
	MaxDeadline int64 // 0: no upper bound
	Limit       int
}

// IndexStore defines the interface for task index persistence
type IndexStore interface {
	IndexFile(ctx context.Context, file, runID string, prog *ast.Program) (int, error)
	RemoveFile(ctx context.Context, file string) (int64, error)
	Query(ctx context.Context, filter TaskFilter) ([]*TaskRecord, error)
	Stats(ctx context.Context) (map[string]interface{}, error)
	Close() error
}

// SQLiteIndexStore implements IndexStore using SQLite
type SQLiteIndexStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// SQLiteIndexConfig holds configuration for SQLite store
type SQLiteIndexConfig struct {
	Path string
}

// DefaultIndexConfig returns default configuration
func DefaultIndexConfig() SQLiteIndexConfig {
	return SQLiteIndexConfig{
		Path: mdwconfig.DefaultIndexPath,
	}
}

// NewSQLiteIndexStore creates a new SQLite-based index store. An empty
// path selects the default index file.
func NewSQLiteIndexStore(cfg SQLiteIndexConfig) (*SQLiteIndexStore, error) {
	if cfg.Path == "" {
		cfg.Path = DefaultIndexConfig().Path
	}
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, dbError(err, "failed to create directory", "store.New")
	}

	// Open database with WAL mode
	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL&_foreign_keys=on")
	if err != nil {
		return nil, dbError(err, "failed to open database", "store.New")
	}

	store := &SQLiteIndexStore{db: db}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, dbError(err, "failed to initialize schema", "store.New")
	}

	return store, nil
}

// initSchema creates the necessary tables
func (s *SQLiteIndexStore) initSchema() error {
	schema := `
	-- Indexed source files
	CREATE TABLE IF NOT EXISTS files (
		path TEXT PRIMARY KEY,
		run_id TEXT NOT NULL,
		task_count INTEGER NOT NULL,
		indexed_at DATETIME NOT NULL
	);

	-- Tasks of the indexed files
	CREATE TABLE IF NOT EXISTS tasks (
		id TEXT PRIMARY KEY,
		file TEXT NOT NULL REFERENCES files(path) ON DELETE CASCADE,
		name TEXT NOT NULL,
		priority INTEGER NOT NULL,
		deadline INTEGER NOT NULL,
		line INTEGER NOT NULL,
		col INTEGER NOT NULL,
		UNIQUE(file, name)
	);

	CREATE INDEX IF NOT EXISTS idx_tasks_name ON tasks(name);
	CREATE INDEX IF NOT EXISTS idx_tasks_priority ON tasks(priority DESC);
	CREATE INDEX IF NOT EXISTS idx_tasks_deadline ON tasks(deadline);
	`

	_, err := s.db.Exec(schema)
	return err
}

// IndexFile replaces the tasks of file with the tasks of prog. The program
// must have passed validation.
func (s *SQLiteIndexStore) IndexFile(ctx context.Context, file, runID string, prog *ast.Program) (int, error) {
	if prog == nil {
		return 0, mdwerror.New("program is nil").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("store.IndexFile")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, dbError(err, "failed to begin transaction", "store.IndexFile")
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE file = ?`, file); err != nil {
		return 0, dbError(err, "failed to clear file tasks", "store.IndexFile")
	}

	now := time.Now().UTC()
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO files (path, run_id, task_count, indexed_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			run_id = excluded.run_id,
			task_count = excluded.task_count,
			indexed_at = excluded.indexed_at
	`, file, runID, len(prog.Tasks), now); err != nil {
		return 0, dbError(err, "failed to upsert file", "store.IndexFile")
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO tasks (id, file, name, priority, deadline, line, col)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, dbError(err, "failed to prepare statement", "store.IndexFile")
	}
	defer stmt.Close()

	for _, task := range prog.Tasks {
		priority, _ := task.Priority()
		deadline, _ := task.Deadline()
		if _, err := stmt.ExecContext(ctx, uuid.NewString(), file, task.Name,
			priority, deadline, task.Pos.Line, task.Pos.Column); err != nil {
			return 0, dbError(err, fmt.Sprintf("failed to insert task %s", task.Name), "store.IndexFile")
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, dbError(err, "failed to commit transaction", "store.IndexFile")
	}

	return len(prog.Tasks), nil
}

// RemoveFile deletes a file and its tasks, returning the number of tasks
// removed
func (s *SQLiteIndexStore) RemoveFile(ctx context.Context, file string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, dbError(err, "failed to begin transaction", "store.RemoveFile")
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE file = ?`, file)
	if err != nil {
		return 0, dbError(err, "failed to delete tasks", "store.RemoveFile")
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM files WHERE path = ?`, file); err != nil {
		return 0, dbError(err, "failed to delete file", "store.RemoveFile")
	}
	if err := tx.Commit(); err != nil {
		return 0, dbError(err, "failed to commit transaction", "store.RemoveFile")
	}

	return result.RowsAffected()
}

// Query retrieves tasks by filter, most urgent first: highest priority,
// then earliest deadline
func (s *SQLiteIndexStore) Query(ctx context.Context, filter TaskFilter) ([]*TaskRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT t.id, t.file, t.name, t.priority, t.deadline, t.line, t.col, f.run_id, f.indexed_at
		FROM tasks t JOIN files f ON f.path = t.file WHERE 1=1`
	var args []interface{}

	if filter.File != "" {
		query += " AND t.file = ?"
		args = append(args, filter.File)
	}
	if filter.Name != "" {
		query += " AND t.name = ?"
		args = append(args, filter.Name)
	}
	if filter.MinPriority > 0 {
		query += " AND t.priority >= ?"
		args = append(args, filter.MinPriority)
	}
	if filter.MaxDeadline > 0 {
		query += " AND t.deadline <= ?"
		args = append(args, filter.MaxDeadline)
	}

	query += " ORDER BY t.priority DESC, t.deadline ASC, t.name ASC, t.file ASC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbError(err, "failed to query tasks", "store.Query")
	}
	defer rows.Close()

	var records []*TaskRecord
	for rows.Next() {
		var r TaskRecord
		if err := rows.Scan(&r.ID, &r.File, &r.Name, &r.Priority, &r.Deadline,
			&r.Line, &r.Column, &r.RunID, &r.IndexedAt); err != nil {
			return nil, dbError(err, "failed to scan task", "store.Query")
		}
		records = append(records, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError(err, "failed to read tasks", "store.Query")
	}

	return records, nil
}

// Stats returns file and task counts
func (s *SQLiteIndexStore) Stats(ctx context.Context) (map[string]interface{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var files, tasks int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM files`).Scan(&files); err != nil {
		return nil, dbError(err, "failed to count files", "store.Stats")
	}
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&tasks); err != nil {
		return nil, dbError(err, "failed to count tasks", "store.Stats")
	}

	return map[string]interface{}{
		"files": files,
		"tasks": tasks,
	}, nil
}

// Close closes the database connection
func (s *SQLiteIndexStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

func dbError(err error, message, operation string) error {
	return mdwerror.Wrap(err, message).
		WithCode(mdwerror.CodeDatabaseError).
		WithOperation(operation)
}
