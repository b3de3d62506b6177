// Command benchmark runs every workload scenario against each price index
// backend and reports wall time, per-order latency percentiles, and heap
// growth.
package main

import (
	"fmt"
	"os"
	"runtime"
	"text/tabwriter"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/fatih/color"
	"github.com/rs/zerolog/log"

	appconfig "github.com/ofir-starkware/matching-engine-playground/config"
	"github.com/ofir-starkware/matching-engine-playground/pkg/backend"
	"github.com/ofir-starkware/matching-engine-playground/pkg/logging"
	"github.com/ofir-starkware/matching-engine-playground/pkg/workload"
)

type result struct {
	scenario  string
	backend   backend.Type
	elapsed   time.Duration
	p50       time.Duration
	p99       time.Duration
	heapDelta int64
	errors    int
}

func main() {
	cfg, err := appconfig.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logging.Setup(logging.Config{
		Level:  cfg.Engine.LogLevel,
		Pretty: cfg.Engine.LogFormat == "pretty",
	})

	wcfg, err := workload.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load workload config")
	}

	scenarios := workload.Scenarios()
	if cfg.Benchmark.Scenario != "" {
		s, ok := workload.ScenarioByName(cfg.Benchmark.Scenario)
		if !ok {
			log.Fatal().Str("scenario", cfg.Benchmark.Scenario).Msg("unknown scenario")
		}
		scenarios = []workload.Scenario{s}
	}

	log.Info().
		Int("orders", cfg.Benchmark.Orders).
		Int64("seed", cfg.Benchmark.Seed).
		Msg("starting benchmark run")

	var results []result
	for _, scenario := range scenarios {
		for _, t := range backend.Types() {
			r, err := run(scenario, t, wcfg, cfg.Benchmark.Orders, cfg.Benchmark.Seed)
			if err != nil {
				log.Fatal().Err(err).
					Str("scenario", scenario.Name).
					Str("backend", string(t)).
					Msg("benchmark run failed")
			}
			results = append(results, r)
			log.Info().
				Str("scenario", r.scenario).
				Str("backend", string(r.backend)).
				Dur("elapsed", r.elapsed).
				Msg("run complete")
		}
	}

	printResults(os.Stdout, results)
}

// run replays one generated stream through a fresh engine on the given
// backend. The same seed is used for every backend so they all see an
// identical stream.
func run(scenario workload.Scenario, t backend.Type, wcfg *workload.Config, n int, seed int64) (result, error) {
	gen := workload.NewGenerator(wcfg, seed)
	orders, err := scenario.Generate(gen, n)
	if err != nil {
		return result{}, fmt.Errorf("generating orders: %w", err)
	}

	engine, err := backend.NewMatchingEngine(t)
	if err != nil {
		return result{}, err
	}

	hist := hdrhistogram.New(1, int64(10*time.Second), 3)

	runtime.GC()
	var before runtime.MemStats
	runtime.ReadMemStats(&before)

	errCount := 0
	start := time.Now()
	for _, order := range orders {
		orderStart := time.Now()
		if err := engine.AddOrder(order); err != nil {
			errCount++
		}
		if err := hist.RecordValue(time.Since(orderStart).Nanoseconds()); err != nil {
			return result{}, fmt.Errorf("recording latency: %w", err)
		}
	}
	elapsed := time.Since(start)

	var after runtime.MemStats
	runtime.ReadMemStats(&after)

	return result{
		scenario:  scenario.Name,
		backend:   t,
		elapsed:   elapsed,
		p50:       time.Duration(hist.ValueAtQuantile(50)),
		p99:       time.Duration(hist.ValueAtQuantile(99)),
		heapDelta: int64(after.HeapAlloc) - int64(before.HeapAlloc),
		errors:    errCount,
	}, nil
}

func printResults(w *os.File, results []result) {
	cyan := color.New(color.FgCyan).SprintfFunc()
	green := color.New(color.FgGreen).SprintfFunc()

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
		cyan("Scenario"), cyan("Backend"), cyan("Time"),
		cyan("p50"), cyan("p99"), cyan("Heap"), cyan("Errors"))

	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%d\n",
			r.scenario,
			green("%s", r.backend),
			r.elapsed.Round(time.Millisecond),
			r.p50,
			r.p99,
			formatBytes(r.heapDelta),
			r.errors)
	}
	tw.Flush()
}

func formatBytes(n int64) string {
	const mb = 1024 * 1024
	if n < 0 {
		return fmt.Sprintf("-%dMB", -n/mb)
	}
	return fmt.Sprintf("%dMB", n/mb)
}
