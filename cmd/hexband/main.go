// Package main is a headless driver for the HexBand combat core. It loads a
// scenario and replays a script of logical input events against it.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/samdwyer/hexband/internal/game"
	"github.com/samdwyer/hexband/internal/gamedata"
	"github.com/samdwyer/hexband/internal/telemetry"
)

const envLogLevel = "HEXBAND_LOG_LEVEL"

func main() {
	// Load .env file for local development. Not fatal: env vars might be set directly.
	envErr := godotenv.Load()

	logger := newLogger(os.Stderr)
	slog.SetDefault(logger)
	if envErr != nil {
		logger.Debug(".env file not loaded", "error", envErr)
	}

	var (
		scenarioID   string
		scenarioFile string
		scriptPath   string
	)
	flag.StringVar(&scenarioID, "scenario", gamedata.DefaultScenario, "embedded scenario id")
	flag.StringVar(&scenarioFile, "scenario-file", "", "scenario JSON file on disk (overrides -scenario)")
	flag.StringVar(&scriptPath, "script", "-", "event script to replay, - for stdin")
	flag.Parse()

	setupOTelEnv()

	ctx := context.Background()

	if telemetry.Configured() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			logger.Warn("telemetry setup failed, running without tracing", "error", err)
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.Error("telemetry shutdown failed", "error", err)
				}
			}()
		}
	}

	if err := run(ctx, logger, scenarioID, scenarioFile, scriptPath, os.Stdout); err != nil {
		logger.Error("hexband failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, scenarioID, scenarioFile, scriptPath string, out io.Writer) error {
	cfg, err := game.ConfigFromEnv()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	scenario, err := loadScenario(scenarioID, scenarioFile)
	if err != nil {
		return err
	}
	if os.Getenv(game.EnvCellSize) == "" && scenario.CellSize > 0 {
		cfg.CellSize = scenario.CellSize
	}

	classes, err := gamedata.LoadClassRegistry()
	if err != nil {
		return fmt.Errorf("classes: %w", err)
	}
	w, players, err := scenario.Build(ctx, classes, gamedata.BuildOptions{
		GridRadius: cfg.GridRadius,
		Seed:       cfg.Seed,
	})
	if err != nil {
		return fmt.Errorf("scenario %s: %w", scenario.ID, err)
	}

	session, err := game.NewSession(cfg, w, players, nil, game.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	logger.Info("session started",
		"session", session.ID().String(),
		"scenario", scenario.ID,
		"players", len(players),
		"units", len(w.UnitIDs()),
		"cells", len(w.Cells()),
	)

	script, err := openScript(scriptPath)
	if err != nil {
		return err
	}
	defer script.Close()

	cmds, err := parseScript(script)
	if err != nil {
		return fmt.Errorf("script: %w", err)
	}
	if err := replay(ctx, session, cmds, out, logger); err != nil {
		return err
	}

	logger.Info("script finished", "commands", len(cmds), "state", session.State().String())
	return nil
}

func loadScenario(id, file string) (gamedata.ScenarioDef, error) {
	if file == "" {
		s, err := gamedata.LoadScenario(id)
		if err != nil {
			return s, fmt.Errorf("scenario %q: %w", id, err)
		}
		return s, nil
	}
	s, err := gamedata.LoadScenarioFrom(os.DirFS(filepath.Dir(file)), filepath.Base(file))
	if err != nil {
		return s, fmt.Errorf("scenario file: %w", err)
	}
	return s, nil
}

func openScript(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open script: %w", err)
	}
	return f, nil
}

// newLogger builds a text logger at the level named by HEXBAND_LOG_LEVEL.
func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if v := os.Getenv(envLogLevel); v != "" {
		if err := level.UnmarshalText([]byte(v)); err != nil {
			level = slog.LevelInfo
		}
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// setupOTelEnv maps Honeycomb credentials onto the standard OTEL variables
// unless an endpoint was configured explicitly.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_API_KEY")
	if apiKey == "" || telemetry.Configured() {
		return
	}
	dataset := os.Getenv("HONEYCOMB_DATASET")
	if dataset == "" {
		dataset = "hexband"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
