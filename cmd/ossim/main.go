package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/viant/ossim"
	"github.com/viant/ossim/model"
)

const version = "0.1.0"

func main() {
	var (
		scenarioURL = flag.String("scenario", "", "scenario location (yaml or json)")
		configURL   = flag.String("config", "", "optional simulator config location")
		quantum     = flag.Int("quantum", 0, "override the scenario time quantum")
		noDeadlock  = flag.Bool("no-deadlock", false, "disable deadlock detection")
		traceFile   = flag.String("trace", "", "write OpenTelemetry spans to file")
		asJSON      = flag.Bool("json", false, "print the report as JSON")
		verbosity   = flag.Int("v", 0, "log verbosity")
	)
	flag.Parse()
	if *scenarioURL == "" {
		flag.Usage()
		os.Exit(2)
	}

	stdr.SetVerbosity(*verbosity)
	logger := stdr.New(log.New(os.Stderr, "", log.LstdFlags)).WithName("ossim")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, logger, *scenarioURL, *configURL, *quantum, *noDeadlock, *traceFile, *asJSON); err != nil {
		logger.Error(err, "simulation failed", "scenario", *scenarioURL)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger logr.Logger, scenarioURL, configURL string, quantum int, noDeadlock bool, traceFile string, asJSON bool) error {
	config := ossim.DefaultConfig()
	if configURL != "" {
		var err error
		if config, err = ossim.LoadConfig(ctx, nil, configURL); err != nil {
			return err
		}
	}
	if noDeadlock {
		config.Deadlock.Enabled = false
	}
	options := []ossim.Option{ossim.WithLogger(logger)}
	if traceFile != "" {
		options = append(options, ossim.WithTracing("ossim", version, traceFile))
	}
	srv, err := ossim.NewFromConfig(config, options...)
	if err != nil {
		return err
	}
	input, err := srv.LoadScenario(ctx, scenarioURL)
	if err != nil {
		return err
	}
	if quantum != 0 {
		input.Quantum = quantum
	}
	report, runErr := srv.Simulate(ctx, input)
	if report != nil {
		if err := output(srv, report, asJSON); err != nil {
			return err
		}
	}
	var configErr *model.ConfigurationError
	if errors.As(runErr, &configErr) {
		for _, issue := range configErr.Issues {
			fmt.Fprintln(os.Stderr, issue)
		}
	}
	return runErr
}

func output(srv *ossim.Service, report *model.Report, asJSON bool) error {
	if !asJSON {
		return srv.Render(os.Stdout, report)
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	_, err = fmt.Println(string(data))
	return err
}
