package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/samdwyer/hexband/internal/game"
	"github.com/samdwyer/hexband/internal/hex"
	"github.com/samdwyer/hexband/internal/ui"
)

// command is one parsed script line.
type command struct {
	line  int
	name  string
	event game.Event    // nil for tick, state and board
	delta time.Duration // tick only
	queue bool          // deliver on the next tick instead of immediately
}

// parseScript reads a line-oriented event script. Blank lines and lines
// starting with '#' are skipped. A leading "queue" defers an event to the
// next tick.
func parseScript(r io.Reader) ([]command, error) {
	var cmds []command
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cmd, err := parseLine(strings.Fields(line))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		cmd.line = n
		cmds = append(cmds, cmd)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return cmds, nil
}

func parseLine(fields []string) (command, error) {
	cmd := command{name: fields[0]}
	args := fields[1:]

	if cmd.name == "queue" {
		if len(args) == 0 {
			return cmd, errors.New("queue needs an event")
		}
		inner, err := parseLine(args)
		if err != nil {
			return cmd, err
		}
		if inner.event == nil {
			return cmd, fmt.Errorf("%s cannot be queued", inner.name)
		}
		inner.queue = true
		return inner, nil
	}

	switch cmd.name {
	case "click", "hover":
		cell, err := parseCell(args)
		if err != nil {
			return cmd, fmt.Errorf("%s: %w", cmd.name, err)
		}
		if cmd.name == "click" {
			cmd.event = game.CellActivated{Cell: cell}
		} else {
			cmd.event = game.CursorEnteredCell{Cell: cell}
		}
	case "leave":
		cmd.event = game.CursorExitedCell{}
	case "cancel":
		cmd.event = game.SelectionCancelled{}
	case "end":
		cmd.event = game.EndTurnRequested{}
	case "tick":
		if len(args) != 1 {
			return cmd, errors.New("tick needs one duration")
		}
		d, err := game.ParseDuration(args[0])
		if err != nil {
			return cmd, fmt.Errorf("tick: %w", err)
		}
		cmd.delta = d
	case "state", "board":
	default:
		return cmd, fmt.Errorf("unknown command %q", cmd.name)
	}
	return cmd, nil
}

func parseCell(args []string) (hex.Cell, error) {
	if len(args) != 2 {
		return hex.Cell{}, fmt.Errorf("want q r, got %d values", len(args))
	}
	q, err := strconv.Atoi(args[0])
	if err != nil {
		return hex.Cell{}, fmt.Errorf("q: %w", err)
	}
	r, err := strconv.Atoi(args[1])
	if err != nil {
		return hex.Cell{}, fmt.Errorf("r: %w", err)
	}
	return hex.FromAxial(q, r), nil
}

// replay feeds cmds to s in order. State and board snapshots go to out.
func replay(ctx context.Context, s *game.Session, cmds []command, out io.Writer, logger *slog.Logger) error {
	width, height := ui.BoardSize(ui.Radius(s.World()))
	screen, err := ui.NewSimulationScreen(width, height)
	if err != nil {
		return fmt.Errorf("board screen: %w", err)
	}
	defer screen.Close()
	renderer := ui.NewRenderer(screen)

	for _, cmd := range cmds {
		switch {
		case cmd.event != nil && cmd.queue:
			s.Enqueue(cmd.event)
		case cmd.event != nil:
			s.HandleEvent(ctx, cmd.event)
		case cmd.name == "tick":
			s.Tick(ctx, cmd.delta)
		case cmd.name == "state":
			fmt.Fprintln(out, describe(s))
		case cmd.name == "board":
			renderer.Render(s)
			fmt.Fprint(out, screen.String())
		}
		logger.Debug("command", "line", cmd.line, "name", cmd.name, "state", s.State().String())
	}
	return nil
}

// describe summarises the session on one line.
func describe(s *game.Session) string {
	var b strings.Builder
	fmt.Fprintf(&b, "round=%d player=%q state=%s", s.Round(), s.ActivePlayer().Name, s.State())
	if path := s.CurrentPath(); len(path) > 0 {
		cells := make([]string, len(path))
		for i, c := range path {
			cells[i] = c.String()
		}
		fmt.Fprintf(&b, " path=%s", strings.Join(cells, ","))
	}
	w := s.World()
	for _, id := range w.UnitIDs() {
		u, _ := w.Unit(id)
		pos, _ := w.Position(id)
		owner, _ := w.Owner(id)
		fmt.Fprintf(&b, " unit%d@%s[p%d hp%d mv%d atk%d]", id, pos, owner, u.Integrity, u.RemainingRange, u.RemainingAttacks)
	}
	return b.String()
}
