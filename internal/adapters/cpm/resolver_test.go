package cpm_test

import (
	"context"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nuprune/internal/adapters/cpm"
	"go.trai.ch/nuprune/internal/adapters/fs"
	"go.trai.ch/nuprune/internal/core/domain"
	"go.trai.ch/nuprune/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newResolver(t *testing.T, files fstest.MapFS) (*cpm.Resolver, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	return cpm.NewResolver(fs.NewMapFSAdapter("/repo", files), fs.NewHasher(), log), log
}

func props(body string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte("<Project>\n" + body + "\n</Project>")}
}

const enabled = `<PropertyGroup><ManagePackageVersionsCentrally>true</ManagePackageVersionsCentrally></PropertyGroup>`

func TestResolver_Find(t *testing.T) {
	resolver, _ := newResolver(t, fstest.MapFS{
		"Directory.Packages.props":        props(enabled),
		"src/Api/Api.csproj":              {Data: []byte("<Project />")},
		"nested/Directory.Packages.props": props(enabled),
		"nested/Lib/Lib.csproj":           {Data: []byte("<Project />")},
	})

	file, ok := resolver.Find("/repo/src/Api")
	require.True(t, ok)
	assert.Equal(t, filepath.Join("/repo", "Directory.Packages.props"), file)

	file, ok = resolver.Find("/repo/nested/Lib")
	require.True(t, ok)
	assert.Equal(t, filepath.Join("/repo", "nested", "Directory.Packages.props"), file)
}

func TestResolver_Resolve_Disabled(t *testing.T) {
	t.Run("no file anywhere", func(t *testing.T) {
		resolver, _ := newResolver(t, fstest.MapFS{
			"src/Api/Api.csproj": {Data: []byte("<Project />")},
		})

		central, err := resolver.Resolve(context.Background(), "/repo/src/Api")
		require.NoError(t, err)
		assert.False(t, central.Enabled)
		assert.Zero(t, central.Len())
	})

	t.Run("flag false still exposes lookups", func(t *testing.T) {
		resolver, _ := newResolver(t, fstest.MapFS{
			"Directory.Packages.props": props(`
<PropertyGroup><ManagePackageVersionsCentrally>false</ManagePackageVersionsCentrally></PropertyGroup>
<ItemGroup><PackageVersion Include="Serilog" Version="3.1.1" /></ItemGroup>`),
		})

		central, err := resolver.Resolve(context.Background(), "/repo")
		require.NoError(t, err)
		assert.False(t, central.Enabled)
		assert.Nil(t, central.VersionMap())

		v, ok, err := resolver.LookupVersion(context.Background(), "/repo", "serilog")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "3.1.1", v)
	})
}

func TestResolver_Resolve_LastWriteWins(t *testing.T) {
	resolver, _ := newResolver(t, fstest.MapFS{
		"Directory.Packages.props": props(`
<Import Project="build\Shared.props" />
` + enabled + `
<ItemGroup>
  <PackageVersion Include="Newtonsoft.Json" Version="13.0.1" />
  <PackageVersion Include="Polly" Version="7.0.0" />
  <PackageVersion Include="POLLY" Version="8.2.0" />
</ItemGroup>`),
		"build/Shared.props": props(`
<ItemGroup>
  <PackageVersion Include="Newtonsoft.Json" Version="12.0.3" />
  <PackageVersion Include="Dapper" Version="2.1.24" />
</ItemGroup>`),
	})

	central, err := resolver.Resolve(context.Background(), "/repo")
	require.NoError(t, err)

	assert.True(t, central.Enabled)
	v, ok := central.Lookup("NEWTONSOFT.JSON")
	require.True(t, ok)
	assert.Equal(t, "13.0.1", v)

	v, ok = central.Lookup("polly")
	require.True(t, ok)
	assert.Equal(t, "8.2.0", v)

	v, ok = central.Lookup("Dapper")
	require.True(t, ok)
	assert.Equal(t, "2.1.24", v)

	assert.Equal(t, []string{
		filepath.Join("/repo", "build", "Shared.props"),
		filepath.Join("/repo", "Directory.Packages.props"),
	}, central.Files)
	assert.Equal(t, filepath.Join("/repo", "Directory.Packages.props"), central.File)
	assert.NotEmpty(t, central.Fingerprint)
}

func TestResolver_Resolve_NestedImportsDepthFirst(t *testing.T) {
	resolver, _ := newResolver(t, fstest.MapFS{
		"Directory.Packages.props": props(`
<Import Project="a.props" />
<Import Project="b.props" />`),
		"a.props": props(`
<Import Project="deep/c.props" />
<ItemGroup><PackageVersion Include="X" Version="a" /></ItemGroup>`),
		"deep/c.props": props(`
` + enabled + `
<ItemGroup><PackageVersion Include="X" Version="c" /><PackageVersion Include="Y" Version="c" /></ItemGroup>`),
		"b.props": props(`<ItemGroup><PackageVersion Include="Y" Version="b" /></ItemGroup>`),
	})

	central, err := resolver.Resolve(context.Background(), "/repo")
	require.NoError(t, err)

	assert.True(t, central.Enabled)
	x, _ := central.Lookup("X")
	y, _ := central.Lookup("Y")
	assert.Equal(t, "a", x)
	assert.Equal(t, "b", y)
	assert.Equal(t, []string{
		filepath.Join("/repo", "deep", "c.props"),
		filepath.Join("/repo", "a.props"),
		filepath.Join("/repo", "b.props"),
		filepath.Join("/repo", "Directory.Packages.props"),
	}, central.Files)
}

func TestResolver_Resolve_CycleTerminates(t *testing.T) {
	resolver, _ := newResolver(t, fstest.MapFS{
		"Directory.Packages.props": props(`
<Import Project="other.props" />
` + enabled + `
<ItemGroup><PackageVersion Include="A" Version="1.0.0" /></ItemGroup>`),
		"other.props": props(`
<Import Project="Directory.Packages.props" />
<Import Project="$(MSBuildThisFileDirectory)other.props" />
<ItemGroup><PackageVersion Include="B" Version="2.0.0" /></ItemGroup>`),
	})

	central, err := resolver.Resolve(context.Background(), "/repo")
	require.NoError(t, err)

	assert.Equal(t, 2, central.Len())
	assert.Equal(t, []string{"A", "B"}, central.IDs())
	assert.Len(t, central.Files, 2)
}

func TestResolver_Resolve_GetPathOfFileAbove(t *testing.T) {
	resolver, _ := newResolver(t, fstest.MapFS{
		"Directory.Packages.props": props(enabled + `
<ItemGroup><PackageVersion Include="Serilog" Version="3.0.0" /></ItemGroup>`),
		"src/Directory.Packages.props": props(`
<Import Project="$([MSBuild]::GetPathOfFileAbove(Directory.Packages.props, $(MSBuildThisFileDirectory)..))" />
<ItemGroup><PackageVersion Include="Polly" Version="8.2.0" /></ItemGroup>`),
		"src/Api/Api.csproj": {Data: []byte("<Project />")},
	})

	central, err := resolver.Resolve(context.Background(), "/repo/src/Api")
	require.NoError(t, err)

	assert.True(t, central.Enabled)
	assert.Equal(t, []string{"Polly", "Serilog"}, central.IDs())
	assert.Equal(t, filepath.Join("/repo", "src", "Directory.Packages.props"), central.File)
}

func TestResolver_Resolve_BlankVersionsExcluded(t *testing.T) {
	resolver, _ := newResolver(t, fstest.MapFS{
		"Directory.Packages.props": props(enabled + `
<ItemGroup>
  <PackageVersion Include="Missing" />
  <PackageVersion Include="Blank" Version="   " />
  <PackageVersion Include="Element"><Version>1.2.3</Version></PackageVersion>
</ItemGroup>`),
	})

	central, err := resolver.Resolve(context.Background(), "/repo")
	require.NoError(t, err)
	assert.Equal(t, []string{"Element"}, central.IDs())
}

func TestResolver_Resolve_MissingImportWarns(t *testing.T) {
	resolver, log := newResolver(t, fstest.MapFS{
		"Directory.Packages.props": props(`<Import Project="gone.props" />` + enabled),
	})
	log.EXPECT().Warn(gomock.Any()).Times(1)

	central, err := resolver.Resolve(context.Background(), "/repo")
	require.NoError(t, err)
	assert.True(t, central.Enabled)
}

func TestResolver_Resolve_MalformedFailsWholeResolution(t *testing.T) {
	resolver, _ := newResolver(t, fstest.MapFS{
		"Directory.Packages.props": props(`<Import Project="broken.props" />` + enabled),
		"broken.props":             {Data: []byte(`<Project><ItemGroup>`)},
	})

	_, err := resolver.Resolve(context.Background(), "/repo")
	require.ErrorIs(t, err, domain.ErrMalformedXML)
}

func TestResolver_Resolve_Cancelled(t *testing.T) {
	resolver, _ := newResolver(t, fstest.MapFS{
		"Directory.Packages.props": props(enabled),
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := resolver.Resolve(ctx, "/repo")
	require.ErrorIs(t, err, context.Canceled)
}

func TestResolver_Fingerprint_ChangesWithContent(t *testing.T) {
	first, _ := newResolver(t, fstest.MapFS{
		"Directory.Packages.props": props(enabled + `<ItemGroup><PackageVersion Include="A" Version="1" /></ItemGroup>`),
	})
	second, _ := newResolver(t, fstest.MapFS{
		"Directory.Packages.props": props(enabled + `<ItemGroup><PackageVersion Include="A" Version="2" /></ItemGroup>`),
	})

	a, err := first.Resolve(context.Background(), "/repo")
	require.NoError(t, err)
	b, err := second.Resolve(context.Background(), "/repo")
	require.NoError(t, err)
	assert.NotEqual(t, a.Fingerprint, b.Fingerprint)
}
