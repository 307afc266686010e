package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"time"

	dotenv "github.com/joho/godotenv"
	envconf "github.com/sethvargo/go-envconfig"

	"github.com/librescoot/tickfsm"
)

// Blinker states, dense slot identifiers per the table contract.
const (
	stateInit tickfsm.StateID = iota
	stateInactive
	stateActive
)

type AppConfig struct {
	TickInterval time.Duration `env:"BLINKER_TICK_INTERVAL, default=100ms"`
	HoldTicks    int           `env:"BLINKER_HOLD_TICKS, default=10"`
	Env          string        `env:"ENV, default=dev"`
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := dotenv.Load(); err != nil {
		log.Println("Warning! No .env file found")
	}

	var c AppConfig
	envconf.MustProcess(ctx, &c)

	logger := configureLogger(c)

	var (
		lamp bool // simulated LED
		held int  // ticks spent in the current phase
	)

	var m tickfsm.Machine
	if err := m.Init(stateInit,
		tickfsm.WithLogger(logger.With("component", "fsm")),
		tickfsm.WithTransitionHook(func(from, to tickfsm.StateID) {
			logger.Debug("transition", "from", from, "to", to)
		}),
	); err != nil {
		logger.Error("init failed", "error", err)
		os.Exit(1)
	}

	mustRegister(logger, m.Register(stateInit, func() tickfsm.StateID {
		// hardware bring-up would live here
		return stateInactive
	}))

	mustRegister(logger, m.Register(stateInactive,
		func() tickfsm.StateID {
			held++
			if held >= c.HoldTicks {
				return stateActive
			}
			return stateInactive
		},
		tickfsm.WithOnEntry(func() {
			lamp = false
			held = 0
			logger.Info("lamp off")
		}),
	))

	mustRegister(logger, m.Register(stateActive,
		func() tickfsm.StateID {
			held++
			if held >= c.HoldTicks {
				return stateInactive
			}
			return stateActive
		},
		tickfsm.WithOnEntry(func() {
			lamp = true
			held = 0
			logger.Info("lamp on")
		}),
		tickfsm.WithOnExit(func() {
			logger.Debug("leaving active", "lamp", lamp)
		}),
	))

	runner := tickfsm.NewRunner(&m, c.TickInterval)
	logger.Info("blinker running", "interval", c.TickInterval, "holdTicks", c.HoldTicks)

	if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("runner stopped", "error", err)
		os.Exit(1)
	}
	logger.Info("blinker stopped", "ticks", runner.Ticks(), "state", m.Current())
}

func mustRegister(logger *slog.Logger, err error) {
	if err != nil {
		logger.Error("register failed", "error", err)
		os.Exit(1)
	}
}

func configureLogger(c AppConfig) *slog.Logger {
	var logger *slog.Logger
	switch c.Env {
	case "dev":
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case "prod":
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		panic(fmt.Sprintf("incorrect env type: %s. possible values: dev, prod", c.Env))
	}
	return logger
}
