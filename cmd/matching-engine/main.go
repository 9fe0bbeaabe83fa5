package main

import (
	"context"
	"fmt"
	"os"
	"time"

	app "github.com/NassimBoussaid/Matching-Engine/internal/app/engine"
	orderbookv1 "github.com/NassimBoussaid/Matching-Engine/internal/domain/orderbook/v1"
	eventpublisher "github.com/NassimBoussaid/Matching-Engine/internal/usecase/event-publisher"
	"github.com/NassimBoussaid/Matching-Engine/internal/usecase/ingest"
	"github.com/NassimBoussaid/Matching-Engine/pkg/config"
	"github.com/NassimBoussaid/Matching-Engine/pkg/logger"
	"github.com/oklog/ulid/v2"
)

var cfg *config.Config
var log *logger.Logger

func init() {
	cfg = &config.Config{}
	if err := config.Load(cfg); err != nil {
		panic(err)
	}

	var opts []logger.Options
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLoggingLevel(logger.Level(cfg.LogLevel)))
	}

	l, err := logger.NewLogger(opts...)
	if err != nil {
		panic(err)
	}
	log = l
}

func main() {
	os.Exit(run())
}

func run() int {
	defer log.Sync()

	input := cfg.InputPath
	output := cfg.OutputPath

	// Positional arguments override env-provided paths.
	args := os.Args[1:]
	switch {
	case len(args) == 2:
		input, output = args[0], args[1]
	case len(args) == 0 && input != "" && output != "":
	default:
		fmt.Fprintf(os.Stderr, "Usage: %s <input_file> <output_file>\n", os.Args[0])
		return 1
	}

	runLog := log.WithFields(logger.Field{Key: "runID", Value: ulid.Make().String()})

	start := time.Now()

	reader := ingest.NewReader(runLog)
	orders, err := reader.ParseFile(input)
	if err != nil {
		runLog.Error(err, logger.Field{Key: "action", Value: "parse_input"})
		return 1
	}

	rejected := 0
	for i := range orders {
		if orders[i].Status == orderbookv1.StatusRejected {
			rejected++
		}
	}
	runLog.Info("Input parsed",
		logger.Field{Key: "input", Value: input},
		logger.Field{Key: "orders", Value: len(orders)},
		logger.Field{Key: "rejectedByValidation", Value: rejected},
	)

	eng := app.NewEngine(runLog)
	for i := range orders {
		eng.Process(orders[i])
	}
	results := eng.Drain()

	if err := ingest.NewWriter().WriteFile(output, results); err != nil {
		runLog.Error(err, logger.Field{Key: "action", Value: "write_output"})
		return 1
	}

	if cfg.KafkaConfig.PublishEnabled() {
		publisher := eventpublisher.NewPublisher(cfg.KafkaConfig, runLog)
		defer publisher.Close()

		if err := publisher.PublishEvents(context.Background(), results); err != nil {
			// The CSV output is already on disk; a publish failure is not fatal.
			runLog.Error(err, logger.Field{Key: "action", Value: "publish_events"})
		}
	}

	elapsed := time.Since(start)
	stats := eng.Stats()

	runLog.Info("Processing complete",
		logger.Field{Key: "output", Value: output},
		logger.Field{Key: "events", Value: len(results)},
		logger.Field{Key: "elapsedMs", Value: float64(elapsed.Microseconds()) / 1000.0},
		logger.Field{Key: "avgPerOrderMs", Value: averagePerOrder(elapsed, len(orders))},
		logger.Field{Key: "executed", Value: stats.Executed},
		logger.Field{Key: "partiallyExecuted", Value: stats.PartiallyExecuted},
		logger.Field{Key: "pending", Value: stats.Pending},
		logger.Field{Key: "canceled", Value: stats.Canceled},
		logger.Field{Key: "rejected", Value: stats.Rejected},
	)

	return 0
}

func averagePerOrder(elapsed time.Duration, orders int) float64 {
	if orders == 0 {
		return 0
	}
	return float64(elapsed.Microseconds()) / 1000.0 / float64(orders)
}
