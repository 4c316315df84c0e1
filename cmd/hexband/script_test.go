package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/samdwyer/hexband/internal/game"
	"github.com/samdwyer/hexband/internal/hex"
)

func TestParseScript(t *testing.T) {
	script := `
# select and move
click 2 0
hover -1 1
leave
queue click 0 0
tick 150ms
cancel
end
state
board
`
	cmds, err := parseScript(strings.NewReader(script))
	if err != nil {
		t.Fatalf("parseScript() error: %v", err)
	}
	if len(cmds) != 9 {
		t.Fatalf("len(cmds) = %d, want 9", len(cmds))
	}

	if ev, ok := cmds[0].event.(game.CellActivated); !ok || ev.Cell != hex.FromAxial(2, 0) {
		t.Errorf("cmds[0].event = %#v", cmds[0].event)
	}
	if cmds[0].line != 3 {
		t.Errorf("cmds[0].line = %d, want 3", cmds[0].line)
	}
	if ev, ok := cmds[1].event.(game.CursorEnteredCell); !ok || ev.Cell != hex.FromAxial(-1, 1) {
		t.Errorf("cmds[1].event = %#v", cmds[1].event)
	}
	if _, ok := cmds[2].event.(game.CursorExitedCell); !ok {
		t.Errorf("cmds[2].event = %#v", cmds[2].event)
	}
	if !cmds[3].queue {
		t.Error("cmds[3] should be queued")
	}
	if cmds[4].name != "tick" || cmds[4].delta != 150*time.Millisecond {
		t.Errorf("cmds[4] = %+v", cmds[4])
	}
	if _, ok := cmds[5].event.(game.SelectionCancelled); !ok {
		t.Errorf("cmds[5].event = %#v", cmds[5].event)
	}
	if _, ok := cmds[6].event.(game.EndTurnRequested); !ok {
		t.Errorf("cmds[6].event = %#v", cmds[6].event)
	}
	if cmds[7].name != "state" || cmds[8].name != "board" {
		t.Errorf("snapshot commands = %q, %q", cmds[7].name, cmds[8].name)
	}
}

func TestParseScriptErrors(t *testing.T) {
	tests := []string{
		"jump 1 2",
		"click 1",
		"click a 2",
		"hover 1 b",
		"tick",
		"tick later",
		"queue",
		"queue tick 1s",
		"queue state",
	}
	for _, line := range tests {
		if _, err := parseScript(strings.NewReader(line)); err == nil {
			t.Errorf("parseScript(%q) error = nil", line)
		}
	}
}

func TestRunReplaysScript(t *testing.T) {
	t.Setenv(game.EnvSeed, "7")
	t.Setenv(game.EnvGridRadius, "")
	t.Setenv(game.EnvCellSize, "")
	t.Setenv(game.EnvStepDuration, "")

	script := `tick 0
click 2 0
hover 0 0
state
click 0 0
tick 1s
state
end
tick 0
state
board
`
	path := filepath.Join(t.TempDir(), "moves.txt")
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := run(context.Background(), logger, "skirmish", "", path, &out); err != nil {
		t.Fatalf("run() error: %v", err)
	}

	lines := strings.Split(out.String(), "\n")
	if len(lines) < 3 {
		t.Fatalf("output too short:\n%s", out.String())
	}
	wantContains := []struct {
		line int
		want string
	}{
		{0, "state=selected(1)"},
		{0, "path=(2,0,-2),(1,0,-1),(0,0,0)"},
		{1, "unit1@(0,0,0)[p0 hp20 mv3 atk1]"},
		{2, `round=2 player="Player 2" state=waiting`},
	}
	for _, tt := range wantContains {
		if !strings.Contains(lines[tt.line], tt.want) {
			t.Errorf("line %d = %q, want it to contain %q", tt.line, lines[tt.line], tt.want)
		}
	}
	if !strings.Contains(out.String(), "round 2 | Player 2 | waiting") {
		t.Errorf("board status line missing:\n%s", out.String())
	}
}

func TestRunScenarioErrors(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	var out bytes.Buffer

	if err := run(context.Background(), logger, "nowhere", "", "-", &out); err == nil {
		t.Error("unknown scenario: error = nil")
	}

	dir := t.TempDir()
	if err := run(context.Background(), logger, "", filepath.Join(dir, "missing.json"), "-", &out); err == nil {
		t.Error("missing scenario file: error = nil")
	}
	if err := run(context.Background(), logger, "skirmish", "", filepath.Join(dir, "missing.txt"), &out); err == nil {
		t.Error("missing script: error = nil")
	}
}

func TestNewLoggerLevel(t *testing.T) {
	t.Setenv(envLogLevel, "debug")
	if !newLogger(io.Discard).Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug level not enabled")
	}

	t.Setenv(envLogLevel, "bogus")
	if newLogger(io.Discard).Enabled(context.Background(), slog.LevelDebug) {
		t.Error("invalid level should fall back to info")
	}
}
