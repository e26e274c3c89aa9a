package run

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/coverkit/cmcdc/internal/report"
)

// debounce groups the burst of write events most editors emit for one
// save into a single regeneration.
const debounce = 100 * time.Millisecond

// Watch re-runs the pipeline for every C source written under the
// given paths until ctx is cancelled, invoking onChange with each
// file's fresh tables.
func (e *Engine) Watch(ctx context.Context, paths []string, onChange func(path string, tables []report.Table)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return err
		}
		if !info.IsDir() {
			if err := watcher.Add(filepath.Dir(path)); err != nil {
				return err
			}
			continue
		}
		err = filepath.Walk(path, func(p string, fi os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if fi.IsDir() {
				return watcher.Add(p)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	e.logger.Info("watching for changes", zap.Strings("paths", paths))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			e.handleFileEvent(ctx, event, onChange)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			e.logger.Error("watcher error", zap.Error(err))
		}
	}
}

func (e *Engine) handleFileEvent(ctx context.Context, event fsnotify.Event, onChange func(string, []report.Table)) {
	if event.Op&fsnotify.Write != fsnotify.Write {
		return
	}
	if !e.cfg.hasDesiredExtension(event.Name) {
		return
	}

	time.Sleep(debounce)
	tables, err := e.ProcessFile(ctx, event.Name)
	if err != nil {
		e.logger.Error("error reprocessing file", zap.String("file", event.Name), zap.Error(err))
		return
	}
	e.logger.Info("regenerated tables",
		zap.String("file", event.Name),
		zap.Int("decisions", len(tables)))
	onChange(event.Name, tables)
}
