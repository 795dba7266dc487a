package app

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"go.trai.ch/nuprune/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/nuprune/internal/core/domain"
	"go.trai.ch/nuprune/internal/core/ports"
	"go.trai.ch/zerr"
)

// centralCache is implemented by resolvers that cache central package files.
type centralCache interface {
	Invalidate()
	Fingerprint(ctx context.Context, file string) (string, error)
}

// changeSet accumulates debounced paths until the watch loop picks them up.
type changeSet struct {
	mu     sync.Mutex
	paths  []string
	signal chan struct{}
}

func newChangeSet() *changeSet {
	return &changeSet{signal: make(chan struct{}, 1)}
}

func (c *changeSet) add(paths []string) {
	c.mu.Lock()
	c.paths = append(c.paths, paths...)
	c.mu.Unlock()
	select {
	case c.signal <- struct{}{}:
	default:
	}
}

func (c *changeSet) take() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	paths := c.paths
	c.paths = nil
	slices.Sort(paths)
	return slices.Compact(paths)
}

// needsReload reports whether any changed path can alter the loaded model.
// Edits to source files only need the usage state to be recomputed.
func needsReload(paths []string) bool {
	return slices.ContainsFunc(paths, func(p string) bool {
		return !domain.IsSourceFile(p)
	})
}

// Watch analyzes the target, then re-analyzes it each time a relevant file
// below the solution directory changes, until ctx is done. Every run is
// reported through onResult. An error is returned only when watching
// cannot start.
func (a *App) Watch(ctx context.Context, req Request, onResult func(domain.Outcome)) error {
	if a.watchers == nil {
		return zerr.Wrap(domain.ErrInvalidRequest, "watch mode is not available")
	}

	s, err := a.configure(req)
	if err != nil {
		return domain.NewFailure(err, req.Target)
	}

	root := s.target
	if s.kind != kindDirectory {
		root = filepath.Dir(s.target)
	}

	w, err := a.watchers()
	if err != nil {
		return zerr.Wrap(err, "failed to create watcher")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := w.Start(ctx, root); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to start watcher"), "path", root)
	}
	defer func() { _ = w.Stop() }()

	changes := newChangeSet()
	debouncer := watcher.NewDebouncer(watcher.DefaultDebounceWindow, changes.add)
	events := w.Events()
	go func() {
		for event := range events {
			debouncer.Add(event.Path)
		}
	}()

	a.logger.Info("watching " + root + " for changes")
	extra := make(map[string]struct{})
	if outcome, ok := a.rerun(ctx, req, s, true, nil); ok {
		onResult(outcome)
	}
	a.watchCentralFiles(w, root, s, extra)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-changes.signal:
		}

		paths := changes.take()
		if len(paths) == 0 {
			continue
		}
		reload := needsReload(paths)
		a.logger.Info(fmt.Sprintf("%d file(s) changed, re-analyzing", len(paths)))
		for _, p := range paths {
			a.logger.Debug("changed " + p)
		}

		if outcome, ok := a.rerun(ctx, req, s, reload, paths); ok {
			onResult(outcome)
		}
		a.watchCentralFiles(w, root, s, extra)
	}
}

// watchCentralFiles adds the directories of central package files outside
// root to w. Directories already in watched are skipped.
func (a *App) watchCentralFiles(w ports.Watcher, root string, s *session, watched map[string]struct{}) {
	for _, central := range s.centrals {
		for _, file := range central.Files {
			dir := filepath.Dir(file)
			if _, ok := watched[dir]; ok || within(root, dir) {
				continue
			}
			watched[dir] = struct{}{}
			if err := w.Add(dir); err != nil {
				a.logger.Warn(fmt.Sprintf("cannot watch %s: %v", dir, err))
				continue
			}
			a.logger.Debug("watching " + dir + " for central package changes")
		}
	}
}

// within reports whether dir is root or below it.
func within(root, dir string) bool {
	rel, err := filepath.Rel(root, dir)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// centralsChanged reports whether a central package file used by the last
// run now resolves to a different fingerprint. A declaration file that the
// last run did not use counts as a change as soon as it shows up in changed.
func (a *App) centralsChanged(ctx context.Context, cache centralCache, s *session, changed []string) bool {
	for _, p := range changed {
		if !strings.EqualFold(filepath.Base(p), domain.CentralPackagesFile) {
			continue
		}
		if _, known := s.centrals[filepath.Clean(p)]; !known {
			return true
		}
	}
	for file, central := range s.centrals {
		fingerprint, err := cache.Fingerprint(ctx, file)
		if err != nil || fingerprint != central.Fingerprint {
			return true
		}
	}
	return false
}

// rerun analyzes s again. With reload set, the configuration and the solution
// are read from disk, and cached central package files are dropped when any
// of them changed; otherwise the loaded model is reset and only the sources
// are scanned again. It reports false when ctx ended during the run.
func (a *App) rerun(ctx context.Context, req Request, s *session, reload bool, changed []string) (outcome domain.Outcome, ok bool) {
	started := time.Now()
	path := s.target
	defer a.recoverPanic(&outcome, &path)
	ok = true

	if reload || s.solution == nil {
		if cache, isCache := a.central.(centralCache); isCache && a.centralsChanged(ctx, cache, s, changed) {
			a.logger.Debug("central package files changed")
			cache.Invalidate()
		}
		fresh, err := a.configure(req)
		if err != nil {
			s.solution = nil
			return fail(ctx, err, path), ctx.Err() == nil
		}
		*s = *fresh
	} else {
		s.solution.ResetUsageStatus()
		for _, p := range s.solution.Projects {
			p.SourceFiles = nil
		}
	}

	runCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if s.solution == nil {
		if err := a.prepare(runCtx, s); err != nil {
			s.solution = nil
			return fail(runCtx, err, path), ctx.Err() == nil
		}
	}

	result, err := a.run(runCtx, s, started)
	if err != nil {
		return fail(runCtx, err, path), ctx.Err() == nil
	}
	return domain.Succeeded(result), true
}
