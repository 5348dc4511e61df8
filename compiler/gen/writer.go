package gen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"

	"github.com/syssam/schemagen/compiler/load"
	"github.com/syssam/schemagen/schema"
)

// Writer loads schema files and writes the generated sources under the
// target directory of its config, one file per unit, in parallel.
type Writer struct {
	gen  *Generator
	log  *slog.Logger
	load func(path string) (*schema.Unit, error)

	// Metrics for performance monitoring
	mu      sync.Mutex
	metrics *WriterMetrics
}

// WriterMetrics tracks generation performance.
type WriterMetrics struct {
	FilesGenerated int
	TotalBytes     int64
}

// NewWriter creates a new batch writer.
func NewWriter(g *Generator) *Writer {
	return &Writer{
		gen:     g,
		log:     slog.New(slog.DiscardHandler),
		load:    load.Load,
		metrics: &WriterMetrics{},
	}
}

// WithLogger sets the logger reporting generated files.
func (w *Writer) WithLogger(l *slog.Logger) *Writer {
	if l != nil {
		w.log = l
	}
	return w
}

// Metrics returns a snapshot of the generation metrics.
func (w *Writer) Metrics() WriterMetrics {
	w.mu.Lock()
	defer w.mu.Unlock()
	return *w.metrics
}

func (w *Writer) target() (string, error) {
	dir := w.gen.Config().Target
	if dir == "" {
		return "", NewConfigError("Target", nil, "missing target directory in config")
	}
	return dir, nil
}

// GenerateAll generates the units of all paths. The first failure cancels
// the remaining work.
func (w *Writer) GenerateAll(ctx context.Context, paths []string) error {
	dir, err := w.target()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(w.gen.Config().workers())
	for _, p := range paths {
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				_, err := w.GenerateFile(p)
				return err
			}
		})
	}
	return eg.Wait()
}

// GenerateFile generates the unit of one schema file and returns the path of
// the written source.
func (w *Writer) GenerateFile(path string) (string, error) {
	dir, err := w.target()
	if err != nil {
		return "", err
	}
	u, err := w.load(path)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := w.gen.Generate(&buf, u); err != nil {
		return "", err
	}
	out := filepath.Join(dir, filepath.FromSlash(w.gen.Config().FileName(u)))
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return "", fmt.Errorf("create directory for %s: %w", u.Name, err)
	}
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", out, err)
	}
	w.mu.Lock()
	w.metrics.FilesGenerated++
	w.metrics.TotalBytes += int64(buf.Len())
	w.mu.Unlock()
	w.log.Debug("generated unit", "unit", u.QualifiedName(), "source", path, "output", out)
	return out, nil
}

// Watch regenerates the unit of a schema file each time the file is written,
// until ctx is cancelled. Failures are logged and do not stop the watch.
func (w *Writer) Watch(ctx context.Context, paths []string) error {
	if _, err := w.target(); err != nil {
		return err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer fw.Close()

	// Editors often replace files, so the parent directories are watched and
	// events are filtered by path.
	watched := make(map[string]string, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", p, err)
		}
		watched[abs] = p
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := fw.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		dirs[dir] = true
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			p, ok := watched[event.Name]
			if !ok || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if _, err := w.GenerateFile(p); err != nil {
				w.log.Error("generate unit", "source", p, "error", err)
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			if err != nil && !errors.Is(err, fsnotify.ErrEventOverflow) {
				return fmt.Errorf("watch: %w", err)
			}
		}
	}
}
