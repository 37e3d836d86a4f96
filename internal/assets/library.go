package assets

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce coalesces bursts of directory events into one reindex.
const DefaultDebounce = 300 * time.Millisecond

// Options configures a Library.
type Options struct {
	Dir        string        // On-disk asset directory.
	Extensions []string      // Indexed extensions; DefaultExtensions when empty.
	URLPrefix  string        // Prefix of every asset URL.
	Ranges     Ranges        // Named subset bounds.
	Slots      Slots         // Slot → content key bindings.
	Debounce   time.Duration // Watch debounce window; DefaultDebounce when zero.
}

// Library owns the current Index of an asset directory. Each reload builds
// a fresh Index and swaps it in atomically; an Index already handed out is
// never changed.
type Library struct {
	opts    Options
	fsys    fs.FS
	logger  *zap.Logger
	current atomic.Pointer[Index]
	gen     atomic.Uint64
}

// NewLibrary creates a Library over the on-disk directory opts.Dir.
func NewLibrary(opts Options, logger *zap.Logger) *Library {
	return NewLibraryFS(os.DirFS(opts.Dir), opts, logger)
}

// NewLibraryFS creates a Library over an arbitrary filesystem whose root is
// the asset directory. Watch still needs opts.Dir to be a real directory.
func NewLibraryFS(fsys fs.FS, opts Options, logger *zap.Logger) *Library {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if len(opts.Extensions) == 0 {
		opts.Extensions = DefaultExtensions
	}
	if opts.Ranges == (Ranges{}) {
		opts.Ranges = DefaultRanges
	}
	if opts.Slots == nil {
		opts.Slots = DefaultSlots
	}
	return &Library{opts: opts, fsys: fsys, logger: logger}
}

// FS returns the filesystem images are read from.
func (l *Library) FS() fs.FS { return l.fsys }

// Options returns the library configuration.
func (l *Library) Options() Options { return l.opts }

// Current returns the latest Index. Before the first Reload it returns an
// empty Index, so lookups degrade to "missing" instead of failing.
func (l *Library) Current() *Index {
	if ix := l.current.Load(); ix != nil {
		return ix
	}
	return NewIndex(nil, l.opts.Ranges, l.opts.Slots)
}

// Reload rediscovers the directory and publishes a new Index.
func (l *Library) Reload() (*Index, error) {
	if _, err := fs.Stat(l.fsys, "."); err != nil {
		l.logger.Warn("asset directory unavailable, serving without images",
			zap.String("dir", l.opts.Dir), zap.Error(err))
	}

	entries, err := Discover(l.fsys, ".", l.opts.Extensions, l.opts.URLPrefix)
	if err != nil {
		return nil, err
	}

	ix := NewIndex(entries, l.opts.Ranges, l.opts.Slots)
	ix.Generation = l.gen.Add(1)
	l.current.Store(ix)

	for _, sh := range ix.Shadowed() {
		l.logger.Warn("image key already taken, file unreachable by slot",
			zap.String("key", sh.Key),
			zap.String("kept", sh.Winner),
			zap.String("shadowed", sh.Loser))
	}

	l.logger.Info("asset index built",
		zap.Uint64("generation", ix.Generation),
		zap.Int("images", ix.Len()),
		zap.Int("gallery", len(ix.Subsets.Gallery)))
	return ix, nil
}

// Watch reindexes whenever an image in the directory is created, removed,
// renamed or rewritten. It blocks until ctx is cancelled.
func (l *Library) Watch(ctx context.Context) error {
	if l.opts.Dir == "" {
		return errors.New("watching assets: no directory configured")
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(l.opts.Dir); err != nil {
		return fmt.Errorf("watching %s: %w", l.opts.Dir, err)
	}
	l.logger.Debug("watching asset directory", zap.String("dir", l.opts.Dir))

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !l.relevant(ev) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(l.opts.Debounce)
			} else {
				timer.Reset(l.opts.Debounce)
			}
			fire = timer.C

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			l.logger.Warn("asset watcher error", zap.Error(err))

		case <-fire:
			fire = nil
			if _, err := l.Reload(); err != nil {
				l.logger.Error("reindexing assets", zap.Error(err))
			}
		}
	}
}

// relevant filters out chmod-only events and files outside the extension set.
func (l *Library) relevant(ev fsnotify.Event) bool {
	if ev.Op == fsnotify.Chmod {
		return false
	}
	return hasExtension(ev.Name, l.opts.Extensions)
}
