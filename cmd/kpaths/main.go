// SPDX-License-Identifier: MIT

// Command kpaths loads a JSON adjacency graph and reports the k cheapest
// loopless paths for one or more source/target pairs.
//
// Usage:
//
//	kpaths -graph topology.json -source R1 -target R9 -k 5 -max-hops 6
//	kpaths -config kpaths.toml -pairs R1:R9,R2:R7
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/katalvlaran/kpaths/batch"
	"github.com/katalvlaran/kpaths/bfs"
	"github.com/katalvlaran/kpaths/core"
	"github.com/katalvlaran/kpaths/internal/config"
	"github.com/katalvlaran/kpaths/internal/logging"
	"github.com/katalvlaran/kpaths/ksp"
	"github.com/katalvlaran/kpaths/loader"
	"github.com/katalvlaran/kpaths/metrics"
	"github.com/katalvlaran/kpaths/report"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailed  = 1
	exitUsage   = 2
	shutdownMax = 5 * time.Second
)

var errNoQueries = errors.New("no queries: set -source and -target, or -pairs")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// flags holds the command-line values; zero values mean "not set".
type flags struct {
	configPath string
	graph      string
	source     string
	target     string
	pairs      string
	k          int
	maxHops    int
	out        string
}

// run is main without process globals, so tests can drive it.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	// 1) Flags and configuration.
	fs := flag.NewFlagSet("kpaths", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var f flags
	fs.StringVar(&f.configPath, "config", "", "Path to the TOML configuration file")
	fs.StringVar(&f.graph, "graph", "", "Path to the JSON adjacency graph")
	fs.StringVar(&f.source, "source", "", "Source node")
	fs.StringVar(&f.target, "target", "", "Target node")
	fs.StringVar(&f.pairs, "pairs", "", "Comma-separated SOURCE:TARGET list")
	fs.IntVar(&f.k, "k", 0, "Number of paths per query, at most 100000 (default from config)")
	fs.IntVar(&f.maxHops, "max-hops", -1, "Maximum edges per path (default from config)")
	fs.StringVar(&f.out, "out", "", "Report directory (default from config)")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	applyFlags(&cfg, f)
	if err = cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	runID := uuid.NewString()
	log := logging.New(cfg.Logging, stderr).With("run_id", runID)

	queries, err := buildQueries(f, cfg.Search)
	if err != nil {
		log.Error("invalid queries", "error", err)
		fs.Usage()
		return exitUsage
	}
	if cfg.Graph.Path == "" {
		log.Error("no graph: set -graph or [graph] path")
		return exitUsage
	}

	// 2) Graph.
	g, err := loader.LoadFile(cfg.Graph.Path)
	if err != nil {
		log.Error("graph load failed", "path", cfg.Graph.Path, "error", err)
		return exitFailed
	}
	st := g.Stats()
	log.Info("graph loaded",
		"path", cfg.Graph.Path,
		"vertices", st.VertexCount,
		"edges", st.EdgeCount,
		"sinks", st.SinkCount,
	)
	if st.NegativeEdges > 0 {
		log.Warn("graph has negative weights; result order is unspecified", "count", st.NegativeEdges)
	}

	// 3) Metrics.
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	rec := metrics.NewRecorder(reg)
	if cfg.Metrics.Addr != "" {
		srv := serveMetrics(cfg.Metrics.Addr, reg, log)
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), shutdownMax)
			defer cancel()
			_ = srv.Shutdown(sctx)
		}()
	}

	// 4) Searches.
	runner, err := batch.New(cfg.Workers.Size,
		batch.WithLogger(log),
		batch.WithSearchOptions(searchOptions(cfg.Search)...),
		batch.WithObserver(rec),
	)
	if err != nil {
		log.Error("worker pool", "error", err)
		return exitFailed
	}
	defer runner.Release()

	outcomes := runner.Run(ctx, g, queries)

	// 5) Reports.
	sink, err := buildSink(cfg.Output, runID, stdout)
	if err != nil {
		log.Error("report setup failed", "error", err)
		return exitFailed
	}

	code := exitOK
	for _, o := range outcomes {
		if o.Err != nil {
			log.Error("search failed", "query", o.Query.String(), "error", o.Err)
			code = exitFailed
			if o.Paths == nil {
				continue
			}
		}
		if o.Err == nil && len(o.Paths) == 0 {
			log.Info("no paths", "query", o.Query.String(), "reason", explainEmpty(g, o.Query))
		}
		if err = sink.Write(ctx, o.Query, o.Paths); err != nil {
			log.Error("report failed", "query", o.Query.String(), "error", err)
			code = exitFailed
		}
	}
	log.Info("run finished", "queries", len(queries), "exit_code", code)

	return code
}

// applyFlags overrides cfg with explicitly set flags.
func applyFlags(cfg *config.Config, f flags) {
	if f.graph != "" {
		cfg.Graph.Path = f.graph
	}
	if f.k != 0 {
		cfg.Search.K = f.k
	}
	if f.maxHops >= 0 {
		cfg.Search.MaxHops = f.maxHops
	}
	if f.out != "" {
		cfg.Output.Dir = f.out
	}
}

// buildQueries turns -source/-target and -pairs into queries.
func buildQueries(f flags, sc config.SearchConfig) ([]ksp.Query, error) {
	var qs []ksp.Query
	if f.source != "" || f.target != "" {
		if f.source == "" || f.target == "" {
			return nil, errors.New("-source and -target must be set together")
		}
		qs = append(qs, ksp.Query{Source: f.source, Target: f.target, K: sc.K, MaxHops: sc.MaxHops})
	}
	pairs, err := parsePairs(f.pairs, sc)
	if err != nil {
		return nil, err
	}
	qs = append(qs, pairs...)
	if len(qs) == 0 {
		return nil, errNoQueries
	}

	return qs, nil
}

// parsePairs parses "A:B,C:D".
func parsePairs(s string, sc config.SearchConfig) ([]ksp.Query, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var qs []ksp.Query
	for _, item := range strings.Split(s, ",") {
		src, dst, ok := strings.Cut(strings.TrimSpace(item), ":")
		src, dst = strings.TrimSpace(src), strings.TrimSpace(dst)
		if !ok || src == "" || dst == "" {
			return nil, fmt.Errorf("bad pair %q: want SOURCE:TARGET", item)
		}
		qs = append(qs, ksp.Query{Source: src, Target: dst, K: sc.K, MaxHops: sc.MaxHops})
	}

	return qs, nil
}

// searchOptions maps the search section onto engine options.
func searchOptions(sc config.SearchConfig) []ksp.Option {
	var opts []ksp.Option
	if sc.Timeout > 0 {
		opts = append(opts, ksp.WithTimeout(sc.Timeout))
	}
	if sc.MaxFrontier > 0 {
		opts = append(opts, ksp.WithMaxFrontier(sc.MaxFrontier))
	}
	if sc.BestEffort {
		opts = append(opts, ksp.WithBestEffort())
	}

	return opts
}

// buildSink assembles the configured renderers.
func buildSink(oc config.OutputConfig, runID string, stdout io.Writer) (report.Sink, error) {
	var sinks report.MultiSink
	format := strings.ToLower(oc.Format)

	if format == config.FormatText || format == config.FormatBoth {
		text, err := report.NewTextSink(stdout)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, text)
	}
	if format == config.FormatCSV || format == config.FormatBoth {
		dir := oc.Dir
		if oc.Dated {
			var err error
			if dir, err = report.DatedDir(dir, time.Now()); err != nil {
				return nil, err
			}
		}
		sinks = append(sinks, report.NewCSVSink(dir, runID))
	}

	return sinks, nil
}

// explainEmpty tells an unreachable target apart from a too-small hop budget.
func explainEmpty(g *core.Graph, q ksp.Query) string {
	if !g.HasVertex(q.Source) {
		return "source not in graph"
	}
	res, err := bfs.BFS(g, q.Source)
	if err != nil {
		return err.Error()
	}
	hops, ok := res.HopsTo(q.Target)
	if !ok {
		return "target unreachable"
	}

	return fmt.Sprintf("target needs at least %d hops, max_hops is %d", hops, q.MaxHops)
}

// serveMetrics exposes /metrics in the background.
func serveMetrics(addr string, reg *prometheus.Registry, log *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(reg))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		log.Info("metrics listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server", "error", err)
		}
	}()

	return srv
}
