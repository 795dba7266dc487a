package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nuprune/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestNewPackageReference_Validation(t *testing.T) {
	_, err := domain.NewPackageReference("", "1.0.0", "/src/App/App.csproj")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidReference))

	_, err = domain.NewPackageReference("Serilog", "  ", "/src/App/App.csproj")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidReference))

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "Serilog", zErr.Metadata()["package"])

	ref, err := domain.NewPackageReference("Serilog", "3.1.1", "/src/App/App.csproj")
	require.NoError(t, err)
	assert.True(t, ref.IsDirect)
	assert.False(t, ref.IsUsed)
}

func TestPackageReference_Identity(t *testing.T) {
	a, err := domain.NewPackageReference("Newtonsoft.Json", "13.0.3", "/src/App/App.csproj")
	require.NoError(t, err)
	b, err := domain.NewPackageReference("NEWTONSOFT.JSON", "13.0.3", "/SRC/app/app.csproj")
	require.NoError(t, err)
	c, err := domain.NewPackageReference("Newtonsoft.Json", "12.0.1", "/src/App/App.csproj")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.Equal(t, a.PackageKey(), c.PackageKey())
}

func TestPackageReference_MarkAsUsed_Deduplicates(t *testing.T) {
	ref, err := domain.NewPackageReference("Serilog", "3.1.1", "/src/App/App.csproj")
	require.NoError(t, err)

	ref.MarkAsUsed("/src/App/Program.cs", "Serilog")
	ref.MarkAsUsed("/src/App/Program.cs", "Serilog")
	ref.MarkAsUsed("/src/App/program.cs", "serilog")

	assert.True(t, ref.IsUsed)
	assert.Equal(t, []string{"/src/App/Program.cs"}, ref.UsageLocations)
	assert.Equal(t, []string{"Serilog"}, ref.DetectedNamespaces)

	ref.MarkAsUsed("/src/App/Worker.cs", "Serilog.Events")
	assert.Len(t, ref.UsageLocations, 2)
	assert.Len(t, ref.DetectedNamespaces, 2)
}

func TestPackageReference_MarkAsUsed_EmptyValues(t *testing.T) {
	ref, err := domain.NewPackageReference("xunit", "2.4.2", "/src/Tests/Tests.csproj")
	require.NoError(t, err)

	ref.MarkAsUsed("", "")

	assert.True(t, ref.IsUsed)
	assert.Empty(t, ref.UsageLocations)
	assert.Empty(t, ref.DetectedNamespaces)
}

func TestPackageReference_ResetUsageStatus(t *testing.T) {
	ref, err := domain.NewPackageReference("Serilog", "3.1.1", "/src/App/App.csproj")
	require.NoError(t, err)
	ref.MarkAsUsed("/src/App/Program.cs", "Serilog")

	ref.ResetUsageStatus()

	assert.False(t, ref.IsUsed)
	assert.Empty(t, ref.UsageLocations)
	assert.Empty(t, ref.DetectedNamespaces)
}

func TestGlobalUsing_Key(t *testing.T) {
	a := domain.GlobalUsing{PackageID: "Xunit", ProjectPath: "/src/Tests/Tests.csproj"}
	b := domain.GlobalUsing{PackageID: "xunit", ProjectPath: `/src/tests\Tests.csproj`, Condition: "x"}

	assert.Equal(t, a.Key(), b.Key())
}
