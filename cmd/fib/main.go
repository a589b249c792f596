// Command fib times a memoized Fibonacci backed by the generation cache.
//
// Usage:
//
//	fib [-config file] [-capacity n] [-log-level level] [-dev] [-metrics] [n]
//
// n defaults to 1000.
package main

import (
	"flag"
	"fmt"
	"io"
	"math/big"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"go.uber.org/zap"

	"github.com/on-the-ground/genlru/config"
	"github.com/on-the-ground/genlru/log"
	"github.com/on-the-ground/genlru/lru"
	"github.com/on-the-ground/genlru/metrics"
	"github.com/on-the-ground/genlru/shared/timing"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "fib:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("fib", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a YAML config file")
	capacity := fs.Int("capacity", config.DefaultCapacity, "cache capacity (entries per generation)")
	level := fs.String("log-level", string(log.LogInfo), "log level: debug, info, warn or error")
	dev := fs.Bool("dev", false, "human-readable console logging")
	showMetrics := fs.Bool("metrics", false, "print cache metrics in Prometheus text format")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	// explicitly set flags and the positional argument win over the file
	overrides := map[string]any{}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "capacity":
			overrides[config.ConfigCacheCapacity] = *capacity
		case "log-level":
			overrides[config.ConfigLogLevel] = *level
		case "dev":
			overrides[config.ConfigLogDevelopment] = *dev
		}
	})
	if fs.NArg() > 0 {
		n, err := strconv.Atoi(fs.Arg(0))
		if err != nil {
			return fmt.Errorf("parse n: %w", err)
		}
		overrides[config.ConfigFibN] = n
	}
	if cfg, err = cfg.Apply(config.NewBindings(overrides)); err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	logger, err := log.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return err
	}
	defer log.Sync(logger)
	logger = logger.With(zap.String("run_id", uuid.NewString()))

	reg := prometheus.NewRegistry()
	recorder, err := metrics.NewPrometheus("genlru", reg)
	if err != nil {
		return err
	}

	fib, err := newFib(cfg.Cache.Capacity, lru.WithLogger(logger), lru.WithRecorder(recorder))
	if err != nil {
		return err
	}

	var result *big.Int
	elapsed := timing.Measure(func() {
		result, err = fib.Call(cfg.Fib.N)
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "%v secs\n", timing.Seconds(elapsed))
	fmt.Fprintf(stdout, "fib(%d) => %s\n", cfg.Fib.N, result)

	stats := fib.Cache().Stats()
	logger.Info("fib computed",
		zap.Int("n", cfg.Fib.N),
		zap.Int("capacity", cfg.Cache.Capacity),
		zap.Duration("elapsed", elapsed.Duration()),
		zap.Uint64("hits", stats.Hits),
		zap.Uint64("misses", stats.Misses),
		zap.Uint64("promotions", stats.Promotions),
		zap.Uint64("rotations", stats.Rotations),
		zap.Uint64("evictions", stats.Evictions),
	)

	if *showMetrics {
		return writeMetrics(stdout, reg)
	}
	return nil
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
