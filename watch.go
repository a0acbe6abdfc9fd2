package spritecut

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// SheetWatcher reloads the source image whenever the file changes on disk.
// Decoding happens on the watcher goroutine; the editor picks up the newest
// sheet on its next tick, so older reloads that were never consumed are
// dropped.
type SheetWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	out     chan *Sheet
	done    chan struct{}
	logger  *zap.Logger
}

// WatchSheet starts watching path. The directory is watched rather than the
// file so editors that replace the file on save are still picked up.
func WatchSheet(path string, logger *zap.Logger) (*SheetWatcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, err
	}
	sw := &SheetWatcher{
		path:    abs,
		watcher: w,
		out:     make(chan *Sheet, 1),
		done:    make(chan struct{}),
		logger:  logger,
	}
	go sw.loop()
	return sw, nil
}

func (sw *SheetWatcher) loop() {
	defer close(sw.done)
	for {
		select {
		case ev, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != sw.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			sheet, err := LoadSheet(sw.path)
			if err != nil {
				// Writers often emit several events; a half-written file fails
				// to decode and the next event retries.
				sw.logger.Debug("image reload failed", zap.String("path", sw.path), zap.Error(err))
				continue
			}
			sw.logger.Info("image reloaded", zap.String("path", sw.path))
			sw.publish(sheet)
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			sw.logger.Warn("image watcher error", zap.Error(err))
		}
	}
}

// publish replaces any unconsumed sheet with s.
func (sw *SheetWatcher) publish(s *Sheet) {
	select {
	case <-sw.out:
	default:
	}
	sw.out <- s
}

// Poll returns the newest reloaded sheet without blocking, or nil.
func (sw *SheetWatcher) Poll() *Sheet {
	select {
	case s := <-sw.out:
		return s
	default:
		return nil
	}
}

// Close stops watching and waits for the watcher goroutine to exit.
func (sw *SheetWatcher) Close() error {
	err := sw.watcher.Close()
	<-sw.done
	return err
}
