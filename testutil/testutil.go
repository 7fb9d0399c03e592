// Copyright (c) Topohedral. All rights reserved.
// Licensed under the MIT License.

// Package testutil provides common testing utilities for topolog: capturing
// the process output streams that log records land on, and scratch paths
// for log-file tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// CaptureStderr captures everything written to os.Stderr while fn runs.
// Log records and topolog diagnostics go to stderr, so this is the main
// way tests observe emitted output. The original stderr is always
// restored.
func CaptureStderr(t *testing.T, fn func()) string {
	t.Helper()
	return capture(t, &os.Stderr, fn)
}

// CaptureStdout captures everything written to os.Stdout while fn runs.
// Useful for testing CLI commands that print to stdout.
func CaptureStdout(t *testing.T, fn func()) string {
	t.Helper()
	return capture(t, &os.Stdout, fn)
}

// capture redirects *stream to a pipe for the duration of fn and returns
// what was written.
func capture(t *testing.T, stream **os.File, fn func()) string {
	t.Helper()

	orig := *stream
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	*stream = w

	outCh := make(chan string, 1)
	go func() {
		var output strings.Builder
		buf := make([]byte, 1024)
		for {
			n, readErr := r.Read(buf)
			if n > 0 {
				output.Write(buf[:n])
			}
			if readErr != nil {
				break
			}
		}
		outCh <- output.String()
	}()

	fn()

	if err := w.Close(); err != nil {
		t.Logf("Failed to close pipe writer: %v", err)
	}
	*stream = orig

	return <-outCh
}

// TempLogFile returns a path for a log file inside a fresh temp directory
// that is cleaned up with the test.
func TempLogFile(t *testing.T) string {
	t.Helper()

	dir, err := os.MkdirTemp("", "topolog-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.RemoveAll(dir); err != nil {
			t.Logf("Failed to clean up temp directory %s: %v", dir, err)
		}
	})

	return filepath.Join(dir, "topo.log")
}
