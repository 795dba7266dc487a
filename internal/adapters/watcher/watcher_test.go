package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nuprune/internal/adapters/watcher"
	"go.trai.ch/nuprune/internal/core/ports"
	"go.trai.ch/nuprune/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestRelevant(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{path: "/repo/src/Api/Program.cs", want: true},
		{path: "/repo/src/Api/Views/Index.cshtml", want: true},
		{path: "/repo/src/Api/Api.csproj", want: true},
		{path: "/repo/App.slnx", want: true},
		{path: "/repo/Directory.Packages.props", want: true},
		{path: "/repo/directory.packages.props", want: true},
		{path: "/repo/build/Versions.props", want: true},
		{path: "/repo/nuprune.yaml", want: true},
		{path: "/repo/.nuprune.yaml", want: true},
		{path: "/repo/src/Api/Form1.Designer.cs", want: false},
		{path: "/repo/README.md", want: false},
		{path: "/repo/src/Api/appsettings.json", want: false},
	}

	for _, tt := range tests {
		t.Run(filepath.Base(tt.path), func(t *testing.T) {
			assert.Equal(t, tt.want, watcher.Relevant(tt.path))
		})
	}
}

func TestWatcher_ReportsRelevantChanges(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "src")
	require.NoError(t, os.MkdirAll(filepath.Join(src, "bin"), 0o755))

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	w, err := watcher.NewWatcher(log)
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx, root))

	events := make(chan ports.WatchEvent, 16)
	go func() {
		for ev := range w.Events() {
			events <- ev
		}
		close(events)
	}()

	require.NoError(t, os.WriteFile(filepath.Join(src, "notes.txt"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(src, "bin", "Api.cs"), []byte("x"), 0o600))
	target := filepath.Join(src, "Program.cs")
	require.NoError(t, os.WriteFile(target, []byte("namespace Api;"), 0o600))

	timeout := time.After(5 * time.Second)
	for {
		select {
		case ev, ok := <-events:
			require.True(t, ok, "event stream closed early")
			assert.NotEqual(t, filepath.Join(src, "notes.txt"), ev.Path)
			assert.NotEqual(t, filepath.Join(src, "bin", "Api.cs"), ev.Path)
			if ev.Path == target {
				return
			}
		case <-timeout:
			t.Fatal("timed out waiting for source change")
		}
	}
}

func TestWatcher_StopTwice(t *testing.T) {
	ctrl := gomock.NewController(t)
	w, err := watcher.NewWatcher(mocks.NewMockLogger(ctrl))
	require.NoError(t, err)

	require.NoError(t, w.Stop())
	assert.NoError(t, w.Stop())
}

func TestWatcher_AddWatchesDirectoryOutsideRoot(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "repo")
	require.NoError(t, os.MkdirAll(root, 0o755))

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	w, err := watcher.NewWatcher(log)
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx, root))
	require.NoError(t, w.Add(parent))

	events := make(chan ports.WatchEvent, 16)
	go func() {
		for ev := range w.Events() {
			events <- ev
		}
		close(events)
	}()

	target := filepath.Join(parent, "Directory.Packages.props")
	require.NoError(t, os.WriteFile(target, []byte("<Project />"), 0o600))

	timeout := time.After(5 * time.Second)
	for {
		select {
		case ev, ok := <-events:
			require.True(t, ok, "event stream closed early")
			if ev.Path == target {
				return
			}
		case <-timeout:
			t.Fatal("timed out waiting for change above root")
		}
	}
}

func TestWatcher_AddMissingDirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	w, err := watcher.NewWatcher(mocks.NewMockLogger(ctrl))
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	err = w.Add(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
