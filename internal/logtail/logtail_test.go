package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "bookshelf.log")

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	if err := os.WriteFile(logPath, []byte(content.String()), 0o644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{"read all (0)", 0, expectedAll},
		{"read all (negative)", -1, expectedAll},
		{"read partial (5)", 5, expectedAll[5:]},
		{"read partial (3)", 3, expectedAll[7:]},
		{"read exactly all (10)", 10, expectedAll},
		{"read more than exists (20)", 20, expectedAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "nope.log"), 10)
	if err != nil {
		t.Fatalf("Read() error = %v, want nil", err)
	}
	if got != nil {
		t.Fatalf("Read() = %v, want nil", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Entry
	}{
		{
			name:  "message with attrs",
			input: "2026-10-17 21:01:05 INF book added id=6 name=Dune",
			want:  Entry{Time: "2026-10-17 21:01:05", Level: "INF", Message: "book added", Attrs: "id=6 name=Dune"},
		},
		{
			name:  "quoted attr with spaces",
			input: `2026-10-17 21:01:05 INF book updated id=2 name="The Lord of the Rings"`,
			want:  Entry{Time: "2026-10-17 21:01:05", Level: "INF", Message: "book updated", Attrs: `id=2 name="The Lord of the Rings"`},
		},
		{
			name:  "message only",
			input: "2026-10-17 21:01:05 WRN store empty",
			want:  Entry{Time: "2026-10-17 21:01:05", Level: "WRN", Message: "store empty"},
		},
		{
			name:  "fractional seconds and level offset",
			input: "2026-10-17 21:01:05.123 DBG+1 delete ignored, no such book id=42",
			want:  Entry{Time: "2026-10-17 21:01:05.123", Level: "DBG", Message: "delete ignored, no such book", Attrs: "id=42"},
		},
		{
			name:  "attrs only",
			input: "2026-10-17 21:01:05 ERR err=boom",
			want:  Entry{Time: "2026-10-17 21:01:05", Level: "ERR", Attrs: "err=boom"},
		},
		{
			name:  "not a record",
			input: "panic: something odd",
			want:  Entry{Message: "panic: something odd"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.input); got != tt.want {
				t.Errorf("Parse() = %#v, want %#v", got, tt.want)
			}
		})
	}
}
