// Copyright (c) Topohedral. All rights reserved.
// Licensed under the MIT License.

package writer

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/topohedral/topolog/config"
	"github.com/topohedral/topolog/level"
)

func TestWrite_LineShape(t *testing.T) {
	var buf bytes.Buffer
	w := New(Options{Out: &buf})

	w.Write(Record{
		Level:     level.Info,
		Target:    "net",
		Goroutine: 7,
		File:      "conn.go",
		Line:      42,
		Message:   "dialed peer",
	})

	got := buf.String()
	want := "[INFO ] [thread:7] [conn.go:42] dialed peer\n"
	if got != want {
		t.Errorf("line = %q, want %q", got, want)
	}
}

func TestWrite_NoColorOnPlainWriter(t *testing.T) {
	var buf bytes.Buffer
	w := New(Options{Out: &buf})

	if w.Colored() {
		t.Error("non-terminal destination should not be colored by default")
	}

	w.Write(Record{Level: level.Error, Message: "boom"})
	if strings.Contains(buf.String(), "\033[") {
		t.Errorf("unexpected ANSI escapes in %q", buf.String())
	}
}

func TestWrite_ForcedColor(t *testing.T) {
	var buf bytes.Buffer
	w := New(Options{Out: &buf, Color: config.ColorAlways})

	w.Write(Record{Level: level.Error, Message: "boom"})
	out := buf.String()
	if !strings.Contains(out, ansiRed) || !strings.Contains(out, ansiReset) {
		t.Errorf("expected red level tag in %q", out)
	}
}

func TestPaint(t *testing.T) {
	tests := []struct {
		l    level.Level
		code string
	}{
		{level.Error, ansiRed},
		{level.Warn, ansiYellow},
		{level.Info, ansiGreen},
		{level.Debug, ansiBlue},
		{level.Trace, ansiMagenta},
	}

	for _, tt := range tests {
		got := Paint(tt.l, "x", true)
		want := tt.code + "x" + ansiReset
		if got != want {
			t.Errorf("Paint(%v) = %q, want %q", tt.l, got, want)
		}
		if Paint(tt.l, "x", false) != "x" {
			t.Errorf("Paint(%v, enabled=false) should be a no-op", tt.l)
		}
	}
}

func TestFileDestination(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "topo.log")
	w := New(Options{File: path})

	w.Write(Record{Level: level.Warn, Goroutine: 1, File: "x.go", Line: 1, Message: "to file"})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "to file") {
		t.Errorf("file content = %q", data)
	}
	if strings.Contains(string(data), "\033[") {
		t.Error("file output must not be colored")
	}
}

func TestWrite_ConcurrentLinesDoNotInterleave(t *testing.T) {
	var buf bytes.Buffer
	w := New(Options{Out: &buf})

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			w.Write(Record{
				Level:   level.Debug,
				File:    "g.go",
				Line:    i,
				Message: fmt.Sprintf("message-%d", i),
			})
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != n {
		t.Fatalf("got %d lines, want %d", len(lines), n)
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, "[DEBUG]") || !strings.Contains(line, "message-") {
			t.Errorf("malformed line %q", line)
		}
	}
}

func TestCurrentGoroutine(t *testing.T) {
	main := CurrentGoroutine()
	if main == 0 {
		t.Fatal("CurrentGoroutine returned 0")
	}

	done := make(chan uint64)
	go func() { done <- CurrentGoroutine() }()
	other := <-done

	if other == 0 || other == main {
		t.Errorf("goroutine ids not distinct: main=%d other=%d", main, other)
	}
}
