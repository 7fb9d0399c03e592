// Copyright (c) Topohedral. All rights reserved.
// Licensed under the MIT License.

package tracelog

import (
	"strings"
	"sync"
	"testing"

	"github.com/topohedral/topolog/config"
	"github.com/topohedral/topolog/level"
	"github.com/topohedral/topolog/testutil"
)

// resetState clears the process-wide singleton so each test exercises a
// fresh first-use path. Tests in this package must not run in parallel.
func resetState() {
	initOnce = sync.Once{}
	shared = nil
}

func TestNew(t *testing.T) {
	s, err := New(config.Config{Spec: "net=warn,db=trace"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if !s.ShouldLog("net", level.Warn) {
		t.Error("net/warn should be enabled")
	}
	if s.ShouldLog("net", level.Info) {
		t.Error("net/info should be suppressed")
	}
	if !s.ShouldLog("db", level.Trace) {
		t.Error("db/trace should be enabled")
	}
	if s.ShouldLog("other", level.Error) {
		t.Error("unlisted target should be suppressed without a wildcard")
	}
}

func TestNew_MalformedSpec(t *testing.T) {
	if _, err := New(config.Config{Spec: "net=verbose"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestInit_FirstCallerWins(t *testing.T) {
	resetState()

	first := Init(config.Config{Spec: "all=debug"})
	second := Init(config.Config{Spec: "all=error"})

	if first != second {
		t.Fatal("Init returned different states")
	}
	if !first.ShouldLog("anything", level.Debug) {
		t.Error("first Init config should be in effect")
	}
	if first.ShouldLog("anything", level.Trace) {
		t.Error("all=debug must not enable trace")
	}
	if Handle() != first {
		t.Error("Handle should return the state built by Init")
	}
}

func TestHandle_FromEnvironment(t *testing.T) {
	resetState()
	t.Setenv(config.EnvSpec, "net=warn")
	t.Setenv(config.EnvFile, "")
	t.Setenv(config.EnvColor, "")

	s := Handle()
	if !s.ShouldLog("net", level.Error) {
		t.Error("net/error should be enabled")
	}
	if s.ShouldLog("net", level.Info) {
		t.Error("net/info should be suppressed")
	}
}

func TestHandle_EmptyEnvironmentFailsClosed(t *testing.T) {
	resetState()
	t.Setenv(config.EnvSpec, "")
	t.Setenv(config.EnvFile, "")
	t.Setenv(config.EnvColor, "")

	s := Handle()
	for _, lvl := range level.Levels() {
		if s.ShouldLog("anything", lvl) {
			t.Errorf("unconfigured state enabled anything/%v", lvl)
		}
	}
}

func TestHandle_MalformedSpecFallsBack(t *testing.T) {
	t.Setenv(config.EnvSpec, "net=verbose")
	t.Setenv(config.EnvFile, "")
	t.Setenv(config.EnvColor, "")

	var s *State
	diag := testutil.CaptureStderr(t, func() {
		resetState()
		s = Handle()
	})

	for _, lvl := range level.Levels() {
		if s.ShouldLog("net", lvl) {
			t.Errorf("rejected spec enabled net/%v", lvl)
		}
	}
	if !strings.Contains(diag, config.EnvSpec) || !strings.Contains(diag, "verbose") {
		t.Errorf("diagnostic missing or wrong: %q", diag)
	}
	if n := strings.Count(diag, "\n"); n != 1 {
		t.Errorf("expected exactly one diagnostic line, got %d: %q", n, diag)
	}
}

func TestHandle_ConcurrentFirstUse(t *testing.T) {
	resetState()
	t.Setenv(config.EnvSpec, "net=warn,db=trace")
	t.Setenv(config.EnvFile, "")
	t.Setenv(config.EnvColor, "")

	const goroutines = 64
	states := make([]*State, goroutines)
	decisions := make([]bool, goroutines)

	var start, done sync.WaitGroup
	start.Add(1)
	done.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(i int) {
			defer done.Done()
			start.Wait()
			s := Handle()
			states[i] = s
			decisions[i] = s.ShouldLog("db", level.Trace)
		}(i)
	}
	start.Done()
	done.Wait()

	for i := 1; i < goroutines; i++ {
		if states[i] != states[0] {
			t.Fatalf("goroutine %d observed a different state", i)
		}
	}
	for i, ok := range decisions {
		if !ok {
			t.Errorf("goroutine %d got an inconsistent decision", i)
		}
	}
}
