package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/msto63/tdl/internal/catalog/store"
)

// run executes the root command with fresh flag values
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cfgFile, verbose, logFormat, noColor = "", false, "", false
	outputFormat = "text"
	indexDB, indexWatch = "", false
	queryFilter, queryJSON = store.TaskFilter{}, false

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// testDir writes files plus a quiet config and returns the directory and
// config path
func testDir(t *testing.T, files map[string]string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("WriteFile(%s) error = %v", name, err)
		}
	}

	cfg := filepath.Join(t.TempDir(), "tdl.toml")
	content := "[log]\nlevel = \"error\"\nformat = \"logfmt\"\n\n[index]\npath = \"" +
		filepath.ToSlash(filepath.Join(t.TempDir(), "index.db")) + "\"\n"
	if err := os.WriteFile(cfg, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile(config) error = %v", err)
	}
	return dir, cfg
}

func TestCheck(t *testing.T) {
	dir, cfg := testDir(t, map[string]string{
		"good.tdl": "task controlLoop { priority = 5; deadline = 100; }",
		"bad.tdl":  "task t { priority = 1; }",
	})
	good := filepath.Join(dir, "good.tdl")
	bad := filepath.Join(dir, "bad.tdl")

	stdout, stderr, err := run(t, "", "--config", cfg, "check", good, bad)

	if !IsReported(err) || ExitCode(err) != 1 {
		t.Errorf("check error = %v, exit %d, want reported failure with exit 1", err, ExitCode(err))
	}
	if stdout != "ok "+good+" (1 task)\n" {
		t.Errorf("stdout = %q", stdout)
	}
	if !strings.Contains(stderr, bad+":1:6: missing_property: task 't' is missing required property 'deadline'") {
		t.Errorf("stderr = %q", stderr)
	}

	if _, _, err := run(t, "", "--config", cfg, "check", good); err != nil {
		t.Errorf("check of a valid file error = %v", err)
	}
}

func TestCheck_MissingFile(t *testing.T) {
	_, cfg := testDir(t, nil)

	_, stderr, err := run(t, "", "--config", cfg, "check", "does-not-exist.tdl")
	if !IsReported(err) {
		t.Errorf("check error = %v, want reported failure", err)
	}
	if !strings.Contains(stderr, "does-not-exist.tdl: error: failed to read") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestParse_JSONFromStdin(t *testing.T) {
	_, cfg := testDir(t, nil)

	stdout, _, err := run(t, "task a { priority = 2; deadline = 9; }", "--config", cfg, "parse", "-", "-f", "json")
	if err != nil {
		t.Fatalf("parse error = %v", err)
	}

	var doc struct {
		Source string `json:"source"`
		Tasks  []struct {
			Name     string `json:"name"`
			Priority int64  `json:"priority"`
			Deadline int64  `json:"deadline"`
		} `json:"tasks"`
	}
	if err := json.Unmarshal([]byte(stdout), &doc); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, stdout)
	}
	if doc.Source != "<stdin>" || len(doc.Tasks) != 1 || doc.Tasks[0].Name != "a" || doc.Tasks[0].Deadline != 9 {
		t.Errorf("document = %+v", doc)
	}
}

func TestParse_Errors(t *testing.T) {
	_, cfg := testDir(t, nil)

	_, _, err := run(t, "task a { priority = 2; deadline = 9; }", "--config", cfg, "parse", "-", "-f", "xml")
	if err == nil || IsReported(err) || ExitCode(err) != 2 {
		t.Errorf("unknown format error = %v, exit %d, want exit 2", err, ExitCode(err))
	}

	_, stderr, err := run(t, "task { }", "--config", cfg, "parse", "-")
	if !IsReported(err) || !strings.Contains(stderr, "<stdin>:1:6: syntax:") {
		t.Errorf("syntax error = %v, stderr = %q", err, stderr)
	}
}

func TestTokens(t *testing.T) {
	_, cfg := testDir(t, nil)

	stdout, _, err := run(t, "task a\n@", "--config", cfg, "tokens", "-")
	if err != nil {
		t.Fatalf("tokens error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if len(lines) != 4 {
		t.Fatalf("tokens printed %d lines, want 4:\n%s", len(lines), stdout)
	}
	for i, want := range []string{"TASK_KEYWORD", "IDENTIFIER", "UNKNOWN", "END_OF_INPUT"} {
		if !strings.Contains(lines[i], want) {
			t.Errorf("line %d = %q, want %s", i, lines[i], want)
		}
	}
	if !strings.HasPrefix(lines[2], "2:1") {
		t.Errorf("unknown token line = %q, want position 2:1", lines[2])
	}
}

func TestTokens_TraceLogging(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "tdl.toml")
	if err := os.WriteFile(cfg, []byte("[log]\nlevel = \"trace\"\nformat = \"logfmt\"\n"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	_, stderr, err := run(t, "@", "--config", cfg, "tokens", "-")
	if err != nil {
		t.Fatalf("tokens error = %v", err)
	}
	for _, want := range []string{`message="Token"`, `type="UNKNOWN"`, `source="<stdin>"`, `message="Configuration loaded"`} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr missing %q:\n%s", want, stderr)
		}
	}
}

func TestIndexAndQuery(t *testing.T) {
	dir, cfg := testDir(t, map[string]string{
		"a.tdl":   "task control { priority = 5; deadline = 100; }\ntask log { priority = 1; deadline = 20; }",
		"b.tdl":   "task backup { priority = 3; deadline = 500; }",
		"bad.tdl": "task broken { deadline = 0; priority = 1; }",
	})

	stdout, stderr, err := run(t, "", "--config", cfg, "index", dir)
	if !IsReported(err) {
		t.Errorf("index error = %v, want reported failure for bad.tdl", err)
	}
	if !strings.Contains(stdout, "indexed 3 tasks from 2 files") {
		t.Errorf("stdout = %q", stdout)
	}
	if !strings.Contains(stderr, "out_of_range") {
		t.Errorf("stderr = %q, want out_of_range diagnostic", stderr)
	}

	stdout, _, err = run(t, "", "--config", cfg, "query", "--json", "--min-priority", "2")
	if err != nil {
		t.Fatalf("query error = %v", err)
	}

	var records []store.TaskRecord
	if err := json.Unmarshal([]byte(stdout), &records); err != nil {
		t.Fatalf("query output is not JSON: %v\n%s", err, stdout)
	}
	if len(records) != 2 || records[0].Name != "control" || records[1].Name != "backup" {
		t.Errorf("records = %+v, want control, backup", records)
	}

	stdout, _, err = run(t, "", "--config", cfg, "query", "-n", "1")
	if err != nil {
		t.Fatalf("query error = %v", err)
	}
	if !strings.Contains(stdout, "PRIORITY") || !strings.Contains(stdout, "control") || strings.Contains(stdout, "backup") {
		t.Errorf("table output = %q", stdout)
	}
}

func TestVersion(t *testing.T) {
	_, cfg := testDir(t, nil)

	stdout, _, err := run(t, "", "--config", cfg, "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.HasPrefix(stdout, "tdl v") || !strings.Contains(stdout, "Language:") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "tdl.toml")
	if err := os.WriteFile(cfg, []byte("[log]\nlevel = \"loud\"\n"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	_, _, err := run(t, "", "--config", cfg, "version")
	if err == nil || ExitCode(err) != 2 {
		t.Errorf("invalid config error = %v, exit %d, want exit 2", err, ExitCode(err))
	}
}
