package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/reorder/pkg/core/jump"
	"github.com/matzehuels/reorder/pkg/errors"
	"github.com/matzehuels/reorder/pkg/scene"
)

func TestNewJumperLogsThroughContext(t *testing.T) {
	var buf bytes.Buffer
	ctx := withLogger(context.Background(), newLogger(&buf, log.InfoLevel))

	// No previous destination: a caller error that must be logged.
	res := newJumper(ctx).Jump(ctx, jump.Args{IsMovingForward: true, DraggableID: "bump"})
	if res.IsAccepted() {
		t.Fatal("jump without a destination should be rejected")
	}
	out := buf.String()
	if !strings.Contains(out, string(errors.ErrCodeMissingDestination)) {
		t.Errorf("context logger should record the rejection, got:\n%s", out)
	}
}

func TestBoundaryRejectionIsNotLogged(t *testing.T) {
	var buf bytes.Buffer
	ctx := withLogger(context.Background(), newLogger(&buf, log.DebugLevel))

	s, _, err := liftItem(ctx, scene.Default(), "triage")
	if err != nil {
		t.Fatal(err)
	}
	res := s.Move(ctx, false)
	if !errors.Is(res.Reason, errors.ErrCodeOutOfRange) {
		t.Fatalf("Reason = %v, want OUT_OF_RANGE", res.Reason)
	}
	if buf.Len() != 0 {
		t.Errorf("out-of-range move should not log, got:\n%s", buf.String())
	}
}

func TestJumpTraceLevels(t *testing.T) {
	tests := []struct {
		name      string
		level     log.Level
		wantTrace bool
	}{
		{"info hides jump traces", log.InfoLevel, false},
		{"debug shows jump traces", log.DebugLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			ctx := withLogger(context.Background(), newLogger(&buf, tt.level))

			s, _, err := liftItem(ctx, scene.Default(), "bump")
			if err != nil {
				t.Fatal(err)
			}
			if res := s.Move(ctx, true); !res.IsAccepted() {
				t.Fatalf("move rejected: %v", res.Reason)
			}

			gotTrace := strings.Contains(buf.String(), "Jump bump: 2 → 3")
			if gotTrace != tt.wantTrace {
				t.Errorf("trace logged = %v, want %v\n%s", gotTrace, tt.wantTrace, buf.String())
			}
		})
	}
}

func TestRunJumpReportsProgress(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var logs bytes.Buffer
	c := New(&logs, LogInfo)
	c.SetOutput(io.Discard)
	ctx := withLogger(context.Background(), c.Logger)

	if err := c.runJump(ctx, jumpOpts{drag: "bump", moves: "bbf"}); err != nil {
		t.Fatalf("runJump: %v", err)
	}
	if !strings.Contains(logs.String(), "Replayed 3 moves") {
		t.Errorf("progress line missing from log:\n%s", logs.String())
	}
}

func TestLoggerFromContextDefault(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("loggerFromContext without a logger should return log.Default()")
	}
}
