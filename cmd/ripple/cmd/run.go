package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/go-ripple/ripple/cmd/ripple/internal/config"
	"github.com/go-ripple/ripple/pkg/counter"
	"github.com/go-ripple/ripple/pkg/logging"
	"github.com/go-ripple/ripple/pkg/model"
)

func init() {
	RegisterCommand(&Command{
		Name:  "run",
		Short: "Run a counter and print every state change",
		Long: `Run constructs a counter model from ripple.yaml (or the defaults:
count 0, auto-increment on, one-second interval) and prints the canonical
rendering of every effective state change until interrupted.

Flags:
  --for <duration>   Stop automatically after the given duration`,
		Usage: "ripple run [--for <duration>]",
		Run:   runRun,
	})
}

func runRun(args []string) error {
	var limit time.Duration
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--for":
			if i+1 >= len(args) {
				return fmt.Errorf("--for requires a duration argument")
			}
			d, err := time.ParseDuration(args[i+1])
			if err != nil {
				return fmt.Errorf("invalid duration %q: %w", args[i+1], err)
			}
			limit = d
			i++
		default:
			return fmt.Errorf("unknown argument: %s", args[i])
		}
	}

	res, err := config.Resolve(".")
	if err != nil {
		return err
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(res.LogLevel).
		With().Timestamp().Logger()
	logging.SetZerolog(logger)

	c := counter.New(res.InitialState, model.ListenerFunc[counter.State](func(s counter.State) {
		fmt.Println(counter.RenderDescription(s))
	}))
	defer c.Dispose()

	fmt.Println(counter.RenderDescription(c.CurrentState()))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	var deadline <-chan time.Time
	if limit > 0 {
		timer := time.NewTimer(limit)
		defer timer.Stop()
		deadline = timer.C
	}

	select {
	case <-sig:
	case <-deadline:
	}

	c.StopAutoIncrementing()
	return nil
}
