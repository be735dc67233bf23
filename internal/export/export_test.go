// ============================================================================
// TDL - Task Definition Language Toolchain
// ============================================================================
//
// Package:     export
// Description: Tests for the output encoders
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/tdl/foundation/core/error"
	"github.com/msto63/tdl/foundation/tdl"
	"github.com/msto63/tdl/foundation/tdl/ast"
)

const source = "task controlLoop { deadline = 100; priority = 5; }\ntask logger { priority = 0; deadline = 20; }"

func compile(t *testing.T) *ast.Program {
	t.Helper()
	prog, err := tdl.CompileString(source)
	if err != nil {
		t.Fatalf("CompileString() error = %v", err)
	}
	prog.Source = "plan.tdl"
	return prog
}

func wantDocument() Document {
	return Document{
		Source: "plan.tdl",
		Tasks: []TaskDoc{
			{Name: "controlLoop", Line: 1, Column: 6, Priority: 5, Deadline: 100},
			{Name: "logger", Line: 2, Column: 6, Priority: 0, Deadline: 20},
		},
	}
}

func equalDocuments(a, b Document) bool {
	if a.Source != b.Source || len(a.Tasks) != len(b.Tasks) {
		return false
	}
	for i := range a.Tasks {
		if a.Tasks[i] != b.Tasks[i] {
			return false
		}
	}
	return true
}

func TestNewDocument(t *testing.T) {
	got := *NewDocument(compile(t))
	if !equalDocuments(got, wantDocument()) {
		t.Errorf("NewDocument() = %+v, want %+v", got, wantDocument())
	}

	empty := NewDocument(&ast.Program{})
	if empty.Tasks == nil || len(empty.Tasks) != 0 {
		t.Errorf("empty document Tasks = %#v, want empty non-nil slice", empty.Tasks)
	}
}

func TestWrite_Decodes(t *testing.T) {
	decoders := map[string]func([]byte, *Document) error{
		"json": func(b []byte, d *Document) error { return json.Unmarshal(b, d) },
		"yaml": func(b []byte, d *Document) error { return yaml.Unmarshal(b, d) },
		"toml": func(b []byte, d *Document) error { return toml.Unmarshal(b, d) },
	}

	for format, decode := range decoders {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Write(&buf, format, compile(t)); err != nil {
				t.Fatalf("Write() error = %v", err)
			}

			var got Document
			if err := decode(buf.Bytes(), &got); err != nil {
				t.Fatalf("decode error = %v\n%s", err, buf.String())
			}
			if !equalDocuments(got, wantDocument()) {
				t.Errorf("decoded = %+v, want %+v", got, wantDocument())
			}
		})
	}
}

func TestWrite_Text(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, "TEXT", compile(t)); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	want := "task controlLoop {\n    deadline = 100;\n    priority = 5;\n}\n\ntask logger {\n    priority = 0;\n    deadline = 20;\n}\n"
	if buf.String() != want {
		t.Errorf("text output = %q, want %q", buf.String(), want)
	}
}

func TestWrite_Errors(t *testing.T) {
	var buf bytes.Buffer

	err := Write(&buf, "xml", compile(t))
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("Write(xml) code = %v, want INVALID_INPUT", mdwerror.GetCode(err))
	}
	if !strings.Contains(err.Error(), "xml") {
		t.Errorf("Write(xml) error = %v, want format name", err)
	}

	if err := Write(&buf, "json", nil); !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("Write(nil) code = %v, want INVALID_INPUT", mdwerror.GetCode(err))
	}
}

func TestFormats(t *testing.T) {
	if got := strings.Join(Formats(), ","); got != "json,text,toml,yaml" {
		t.Errorf("Formats() = %s, want json,text,toml,yaml", got)
	}
}
