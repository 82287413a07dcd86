package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Read returns the last maxLines lines of the file at path, oldest first.
// A non-positive maxLines returns every line. A missing file is not an
// error: nothing has been logged yet.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer func() { _ = file.Close() }()

	var (
		ring  []string
		start int
	)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if maxLines <= 0 || len(ring) < maxLines {
			ring = append(ring, line)
			continue
		}
		ring[start] = line
		start = (start + 1) % maxLines
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	if start == 0 {
		return ring, nil
	}
	return append(ring[start:], ring[:start]...), nil
}

// Entry is one line of the application log split into its parts.
type Entry struct {
	Time    string
	Level   string // DBG, INF, WRN, ERR; empty when the line is not a log record
	Message string
	Attrs   string
}

var (
	recordRe = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}(?:\.\d+)?) (DBG|INF|WRN|ERR)(?:[+-]\d+)? (.*)$`)
	attrRe   = regexp.MustCompile(`\s[\w.]+=`)
)

// Parse splits a line written by the application's text log handler. Lines
// that do not look like records come back with only Message set.
func Parse(line string) Entry {
	m := recordRe.FindStringSubmatch(line)
	if m == nil {
		return Entry{Message: line}
	}
	e := Entry{Time: m[1], Level: m[2], Message: m[3]}
	if loc := attrRe.FindStringIndex(" " + e.Message); loc != nil {
		cut := loc[0]
		if cut == 0 {
			e.Attrs = strings.TrimSpace(e.Message)
			e.Message = ""
		} else {
			e.Attrs = strings.TrimSpace(e.Message[cut:])
			e.Message = strings.TrimSpace(e.Message[:cut])
		}
	}
	return e
}
