/*
Inssortbench runs the insertion sort harness: exhaustive correctness sweeps
over sorted, reversed, random, duplicate-heavy and stability-probing inputs,
followed by empirical complexity probes.

Usage:

	inssortbench [flags]

Once all sweeps and probes have run, a report is printed to stdout and the
program exits with a non-zero status if any of them failed.

The flags are:

	-c, --config PATH
		Load configuration from the given file. The file must be in JSON or
		YAML format. If not given, built-in defaults are used.

	-s, --seed SEED
		Seed all random input generation with SEED. Overrides the config
		file. If 0 or unset, a seed is chosen from the clock.

	-n, --samples N
		Time N sorts at each size in every complexity probe. Overrides the
		config file.

	-b, --base N
		Use N as the base input size for every complexity probe. Overrides
		the config file.

	--no-complexity
		Run only the correctness sweeps.

	-q, --quiet
		Disable logging; only the final report is printed.
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/dekarrin/inssort"
	"github.com/dekarrin/inssort/config"
	"github.com/dekarrin/inssort/internal/suite"
	"github.com/spf13/pflag"
)

const (
	exitSuccess   = 0
	exitError     = 1
	exitPanic     = 2
	exitInterrupt = 3
)

var exitCode int

var (
	flagConf         = pflag.StringP("config", "c", "", "Path to configuration file")
	flagSeed         = pflag.Int64P("seed", "s", 0, "Seed for random input generation")
	flagSamples      = pflag.IntP("samples", "n", 0, "Number of timed sorts per size in each complexity probe")
	flagBase         = pflag.IntP("base", "b", 0, "Base input size for each complexity probe")
	flagNoComplexity = pflag.Bool("no-complexity", false, "Skip complexity probes")
	flagQuiet        = pflag.BoolP("quiet", "q", false, "Disable logging")
)

func main() {
	ctx, cancelMainContext := context.WithCancel(context.Background())
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt)
	defer func() {
		signal.Stop(signalChan)
		cancelMainContext()
	}()
	// listen for signals
	go func() {
		select {
		case <-signalChan: // first signal, cancel context
			cancelMainContext()
		case <-ctx.Done():
		}

		<-signalChan // second signal, hard exit
		os.Exit(exitInterrupt)
	}()

	defer func() {
		if panicErr := recover(); panicErr != nil {
			fmt.Fprintf(os.Stderr, "fatal panic: %v\n", panicErr)
			exitCode = exitPanic
		}
		os.Exit(exitCode)
	}()

	pflag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		exitCode = exitError
		return
	}

	logger, err := cfg.FillDefaults().Log.Create()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		exitCode = exitError
		return
	}

	s, err := suite.New(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		exitCode = exitError
		return
	}

	rep, err := s.Run(ctx)
	if errors.Is(err, inssort.ErrCanceled) {
		logger.InfoBreak()
		logger.Info("SIGINT received; run stopped")
		printReport(os.Stdout, rep)
		exitCode = exitInterrupt
		return
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		exitCode = exitError
		return
	}

	printReport(os.Stdout, rep)
	if !rep.Ok() {
		exitCode = exitError
	}
}

// loadConfig reads the config file if one was given and applies flag
// overrides on top of it.
func loadConfig() (config.Config, error) {
	var cfg config.Config
	if *flagConf != "" {
		var err error
		cfg, err = config.Load(*flagConf)
		if err != nil {
			return cfg, err
		}
	} else {
		cfg.Log.Enabled = true
	}

	if pflag.CommandLine.Changed("seed") {
		cfg.Seed = *flagSeed
	}
	if pflag.CommandLine.Changed("samples") || pflag.CommandLine.Changed("base") {
		if len(cfg.Probes) == 0 {
			cfg.Probes = []config.Probe{{}}
		}
		for i := range cfg.Probes {
			if pflag.CommandLine.Changed("samples") {
				cfg.Probes[i].Samples = *flagSamples
			}
			if pflag.CommandLine.Changed("base") {
				cfg.Probes[i].BaseSize = *flagBase
			}
		}
	}
	if *flagNoComplexity {
		cfg.SkipComplexity = true
	}
	if *flagQuiet {
		cfg.Log.Enabled = false
	}

	return cfg, nil
}
