package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/coverkit/cmcdc/internal/report"
	"github.com/coverkit/cmcdc/internal/stub"
	"github.com/coverkit/cmcdc/run"
)

var (
	genFormat   string
	genOutput   string
	genStubPath string
	genIgnore   string
	genWatch    bool
)

var genCmd = &cobra.Command{
	Use:   "gen [paths...]",
	Short: "Generate MC/DC truth tables and test stubs for C sources",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}

		cfg, err := loadConfig()
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}
		if genFormat != "" {
			cfg.Format = genFormat
		}
		if genOutput != "" {
			cfg.Output = genOutput
		}
		if genStubPath != "" {
			cfg.StubPath = genStubPath
		}
		if genIgnore != "" {
			for _, glob := range strings.Split(genIgnore, ",") {
				cfg.IgnorePaths = append(cfg.IgnorePaths, strings.TrimSpace(glob))
			}
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		engine := run.New(logger, cfg)

		if genWatch {
			err := engine.Watch(ctx, args, func(path string, tables []report.Table) {
				_ = report.WriteText(os.Stdout, tables)
			})
			if err != nil && err != context.Canceled && err != context.DeadlineExceeded {
				logger.Fatal("Watch failed", zap.Error(err))
			}
			return
		}

		tables, err := engine.ProcessPaths(ctx, args)
		if err != nil {
			logger.Fatal("Error processing paths", zap.Error(err))
		}
		if err := writeReport(cfg, tables); err != nil {
			logger.Fatal("Error writing report", zap.Error(err))
		}
		if cfg.StubPath != "" {
			if err := writeStubs(cfg, tables); err != nil {
				logger.Fatal("Error writing stubs", zap.Error(err))
			}
		}
	},
}

func init() {
	genCmd.Flags().StringVarP(&genFormat, "format", "f", "", "report format: text, csv, xlsx or json")
	genCmd.Flags().StringVarP(&genOutput, "output", "o", "", "report output path (stdout for text, csv and json if empty)")
	genCmd.Flags().StringVar(&genStubPath, "stubs", "", "write C test stubs to this file")
	genCmd.Flags().StringVar(&genIgnore, "ignore-paths", "", "comma-separated list of path globs to ignore")
	genCmd.Flags().BoolVarP(&genWatch, "watch", "w", false, "watch paths and regenerate on change")
}

func loadConfig() (run.Config, error) {
	path := cfgFile
	if path == "" {
		if _, err := os.Stat(".cmcdc.yaml"); err == nil {
			path = ".cmcdc.yaml"
		}
	}
	return run.LoadConfig(path)
}

func writeReport(cfg run.Config, tables []report.Table) error {
	switch cfg.Format {
	case "", "text":
		return withOutput(cfg.Output, func(w *os.File) error {
			return report.WriteText(w, tables)
		})
	case "csv":
		return withOutput(cfg.Output, func(w *os.File) error {
			return report.WriteCSV(w, tables)
		})
	case "json":
		return withOutput(cfg.Output, func(w *os.File) error {
			d, err := json.MarshalIndent(tables, "", "  ")
			if err != nil {
				return err
			}
			_, err = w.Write(append(d, '\n'))
			return err
		})
	case "xlsx":
		out := cfg.Output
		if out == "" {
			out = "mcdc.xlsx"
		}
		return report.WriteXLSX(out, tables)
	default:
		return fmt.Errorf("unknown report format %q", cfg.Format)
	}
}

func withOutput(path string, write func(*os.File) error) error {
	if path == "" {
		return write(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return write(f)
}

func writeStubs(cfg run.Config, tables []report.Table) error {
	gen := stub.New()
	if cfg.StubTemplate != "" {
		text, err := os.ReadFile(cfg.StubTemplate)
		if err != nil {
			return err
		}
		gen, err = stub.NewWithTemplate(string(text))
		if err != nil {
			return err
		}
	}
	return withOutput(cfg.StubPath, func(w *os.File) error {
		return gen.Render(w, tables)
	})
}
