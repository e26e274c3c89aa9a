package run

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/coverkit/cmcdc/internal/csrc"
	"github.com/coverkit/cmcdc/internal/mcdc"
	"github.com/coverkit/cmcdc/internal/report"
	"github.com/coverkit/cmcdc/scanner"
)

// Engine drives the extract-then-generate pipeline over C sources.
// The underlying extractor and generator are stateless, so one Engine
// may process many files concurrently.
type Engine struct {
	cfg       Config
	logger    *zap.Logger
	extractor *csrc.Extractor
	generator *mcdc.Generator
	cache     *resultCache
}

// New creates an engine. A nil logger disables diagnostics.
func New(logger *zap.Logger, cfg Config) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		cfg:       cfg,
		logger:    logger,
		extractor: csrc.NewExtractor(logger, csrc.WithMaxFileSize(cfg.MaxFileSize)),
		generator: mcdc.NewGenerator(logger),
		cache:     newResultCache(),
	}
}

// ProcessPaths expands files and directories, runs every matching C
// source through the pipeline with a bounded worker pool, and returns
// the tables ordered by file and line. Per-file failures are logged
// and skipped; the batch keeps going.
func (e *Engine) ProcessPaths(ctx context.Context, paths []string) ([]report.Table, error) {
	files, err := e.collectFiles(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	var bar *progressbar.ProgressBar
	if len(files) > 1 {
		bar = progressbar.NewOptions(len(files),
			progressbar.OptionSetDescription("analyzing"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	results := make([][]report.Table, len(files))
	sem := make(chan struct{}, runtime.NumCPU())
	var wg sync.WaitGroup

	for i, file := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(idx int, path string) {
			defer wg.Done()
			defer func() { <-sem }()

			tables, err := e.ProcessFile(ctx, path)
			if err != nil {
				e.logger.Error("error processing file", zap.String("file", path), zap.Error(err))
			} else {
				results[idx] = tables
			}
			if bar != nil {
				_ = bar.Add(1)
			}
		}(i, file)
	}
	wg.Wait()

	var tables []report.Table
	for _, r := range results {
		tables = append(tables, r...)
	}
	sort.SliceStable(tables, func(i, j int) bool {
		a, b := tables[i].Decision, tables[j].Decision
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		return a.Line < b.Line
	})
	return tables, nil
}

// ProcessFile extracts every decision from one C source and generates
// its MC/DC table. Decisions wider than the configured condition cap
// are skipped with a warning: the brute-force search is exponential in
// the leaf count.
func (e *Engine) ProcessFile(ctx context.Context, path string) ([]report.Table, error) {
	decisions, err := e.extractor.ExtractFile(ctx, path)
	if err != nil {
		return nil, err
	}

	tables := make([]report.Table, 0, len(decisions))
	for _, d := range decisions {
		if n := mcdc.LeafCount(mcdc.Parse(d.Expr)); n > e.cfg.MaxConditions {
			e.logger.Warn("decision exceeds condition limit, skipping",
				zap.String("file", d.Filename),
				zap.Int("line", d.Line),
				zap.Int("conditions", n),
				zap.Int("limit", e.cfg.MaxConditions))
			continue
		}
		res, ok := e.cache.get(d.Expr)
		if !ok {
			res = e.generator.Generate(d.Expr)
			e.cache.put(d.Expr, res)
		}
		tables = append(tables, report.Build(d, res))
	}
	return tables, nil
}

func (e *Engine) collectFiles(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing %s: %w", path, err)
		}
		if !info.IsDir() {
			if e.cfg.hasDesiredExtension(path) {
				files = append(files, path)
			}
			continue
		}

		sc := scanner.New(path, e.cfg.Extensions...)
		sc.Ignore(e.cfg.IgnorePaths...)
		found, err := sc.Scan()
		if err != nil {
			return nil, err
		}
		for _, f := range found {
			files = append(files, f.Path)
		}
	}
	return files, nil
}
