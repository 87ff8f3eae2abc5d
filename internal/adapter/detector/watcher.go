package detector

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/ankitkumarmail009-pixel/language-detection-application/internal/infrastructure/metrics"
	"github.com/ankitkumarmail009-pixel/language-detection-application/internal/langid"
)

// DefaultDebounce is how long the watcher waits after the last artifact
// write before reloading. Retraining writes three files back to back; the
// delay coalesces them into a single reload.
const DefaultDebounce = 500 * time.Millisecond

// Watcher reloads a Detector when model artifacts change on disk. A failed
// reload keeps the previous model serving.
type Watcher struct {
	detector *Detector
	log      *zap.Logger
	fs       *fsnotify.Watcher
	debounce time.Duration

	done chan struct{}
	wg   sync.WaitGroup
}

// NewWatcher creates a watcher on the detector's model directory. The
// directory is created if it does not exist yet so that a first training
// run is picked up too.
func NewWatcher(d *Detector, log *zap.Logger) (*Watcher, error) {
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create model directory: %w", err)
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fs.Add(d.dir); err != nil {
		_ = fs.Close()
		return nil, fmt.Errorf("watch %s: %w", d.dir, err)
	}

	return &Watcher{
		detector: d,
		log:      log,
		fs:       fs,
		debounce: DefaultDebounce,
		done:     make(chan struct{}),
	}, nil
}

// Start begins watching in a background goroutine
func (w *Watcher) Start() {
	w.wg.Add(1)
	go w.run()
	w.log.Info("Watching model directory for artifact changes", zap.String("dir", w.detector.dir))
}

// Stop ends watching and waits for the background goroutine to exit
func (w *Watcher) Stop() {
	close(w.done)
	_ = w.fs.Close()
	w.wg.Wait()
}

func (w *Watcher) run() {
	defer w.wg.Done()

	debounce := time.NewTimer(w.debounce)
	if !debounce.Stop() {
		<-debounce.C
	}
	pending := false

	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !isArtifact(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if pending && !debounce.Stop() {
				select {
				case <-debounce.C:
				default:
				}
			}
			debounce.Reset(w.debounce)
			pending = true

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn("Model watcher error", zap.Error(err))

		case <-debounce.C:
			pending = false
			w.reload()

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) reload() {
	if err := w.detector.Load(); err != nil {
		metrics.RecordModelReload(false)
		w.log.Error("Model reload failed, keeping previous model", zap.Error(err))
		return
	}
	metrics.RecordModelReload(true)
}

// isArtifact filters out temp files and unrelated writes in the model
// directory.
func isArtifact(name string) bool {
	switch filepath.Base(name) {
	case langid.VectorizerFile, langid.LabelsFile, langid.ClassifierFile:
		return true
	}
	return false
}
