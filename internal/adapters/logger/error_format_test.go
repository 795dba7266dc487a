package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nuprune/internal/adapters/logger"
	"go.trai.ch/nuprune/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries_PlainError(t *testing.T) {
	entries := logger.CollectErrorEntriesExported(errors.New("permission denied"))

	require.Len(t, entries, 1)
	assert.Equal(t, "permission denied", entries[0].Message)
	assert.Nil(t, entries[0].Metadata)
}

func TestCollectErrorEntries_Nil(t *testing.T) {
	assert.Empty(t, logger.CollectErrorEntriesExported(nil))
}

func TestCollectErrorEntries_SentinelChain(t *testing.T) {
	err := zerr.With(zerr.Wrap(domain.ErrMalformedXML, "failed to parse project"), "path", "/repo/src/Api/Api.csproj")
	err = zerr.Wrap(err, "failed to load solution")

	entries := logger.CollectErrorEntriesExported(err)

	messages := make([]string, 0, len(entries))
	for _, e := range entries {
		messages = append(messages, e.Message)
	}
	assert.Equal(t, []string{"failed to load solution", "failed to parse project", domain.ErrMalformedXML.Error()}, messages)
	assert.Empty(t, entries[0].Metadata)
	assert.Equal(t, "/repo/src/Api/Api.csproj", entries[1].Metadata["path"])
}

func TestCollectErrorEntries_MetadataAccumulates(t *testing.T) {
	err := zerr.With(zerr.With(zerr.Wrap(domain.ErrNotFound, "central package file import"), "path", "/repo/Directory.Packages.props"), "import", "../Shared.props")

	entries := logger.CollectErrorEntriesExported(err)

	require.NotEmpty(t, entries)
	assert.Equal(t, "central package file import", entries[0].Message)
	assert.Equal(t, map[string]any{
		"path":   "/repo/Directory.Packages.props",
		"import": "../Shared.props",
	}, entries[0].Metadata)
}

func TestCollectErrorEntries_WrappedStandardError(t *testing.T) {
	err := zerr.With(zerr.Wrap(errors.New("unexpected EOF"), "failed to read solution file"), "path", "/repo/App.sln")

	entries := logger.CollectErrorEntriesExported(err)

	require.Len(t, entries, 2)
	assert.Equal(t, "failed to read solution file", entries[0].Message)
	assert.Equal(t, "/repo/App.sln", entries[0].Metadata["path"])
	assert.Equal(t, "unexpected EOF", entries[1].Message)
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "empty",
			entries: nil,
			want:    "",
		},
		{
			name:    "headline only",
			entries: []logger.ErrorEntry{{Message: "no projects found"}},
			want:    "Error: no projects found",
		},
		{
			name: "cause list",
			entries: []logger.ErrorEntry{
				{Message: "failed to load solution"},
				{Message: "failed to parse project"},
				{Message: "malformed XML"},
			},
			want: "Error: failed to load solution\n\n" +
				"  Caused by:\n" +
				"    → failed to parse project\n" +
				"    → malformed XML",
		},
		{
			name: "headline metadata sorted",
			entries: []logger.ErrorEntry{{
				Message:  "unknown package version",
				Metadata: map[string]any{"project": "/repo/Api.csproj", "package": "Serilog", "line": 12},
			}},
			want: "Error: unknown package version\n" +
				"       line: 12\n" +
				"       package: Serilog\n" +
				"       project: /repo/Api.csproj",
		},
		{
			name: "cause metadata",
			entries: []logger.ErrorEntry{
				{Message: "failed to resolve central packages"},
				{Message: "malformed XML", Metadata: map[string]any{"path": "/repo/Directory.Packages.props"}},
			},
			want: "Error: failed to resolve central packages\n\n" +
				"  Caused by:\n" +
				"    → malformed XML\n" +
				"      path: /repo/Directory.Packages.props",
		},
		{
			name: "multiline messages",
			entries: []logger.ErrorEntry{
				{Message: "analysis failed\nsee details"},
				{Message: "XML syntax error\nline 3: unexpected EOF"},
			},
			want: "Error: analysis failed\n" +
				"       see details\n\n" +
				"  Caused by:\n" +
				"    → XML syntax error\n" +
				"      line 3: unexpected EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntriesExported(tt.entries))
		})
	}
}

func TestErrorChainRendering(t *testing.T) {
	err := zerr.With(zerr.Wrap(domain.ErrNotFound, "project file does not exist"), "path", "/repo/src/Missing.csproj")
	err = zerr.Wrap(err, "failed to load solution")

	got := logger.FormatErrorEntriesExported(logger.CollectErrorEntriesExported(err))

	assert.Contains(t, got, "Error: failed to load solution\n\n  Caused by:\n    → project file does not exist\n      path: /repo/src/Missing.csproj")
	assert.Contains(t, got, "→ "+domain.ErrNotFound.Error())
}
