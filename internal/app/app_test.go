package app_test

import (
	"context"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nuprune/internal/adapters/config"
	"go.trai.ch/nuprune/internal/adapters/cpm"
	"go.trai.ch/nuprune/internal/adapters/fs"
	"go.trai.ch/nuprune/internal/adapters/msbuild"
	"go.trai.ch/nuprune/internal/adapters/namespaces"
	"go.trai.ch/nuprune/internal/adapters/scanner"
	"go.trai.ch/nuprune/internal/adapters/telemetry"
	"go.trai.ch/nuprune/internal/app"
	"go.trai.ch/nuprune/internal/core/domain"
	"go.trai.ch/nuprune/internal/core/ports"
	"go.trai.ch/nuprune/internal/core/ports/mocks"
	"go.trai.ch/nuprune/internal/engine/analyzer"
	"go.uber.org/mock/gomock"
)

const centralPackages = `<Project>
  <PropertyGroup>
    <ManagePackageVersionsCentrally>true</ManagePackageVersionsCentrally>
  </PropertyGroup>
  <ItemGroup>
    <PackageVersion Include="Newtonsoft.Json" Version="13.0.3" />
    <PackageVersion Include="Serilog" Version="3.1.1" />
    <PackageVersion Include="xunit" Version="2.9.0" />
  </ItemGroup>
</Project>`

const apiProject = `<Project Sdk="Microsoft.NET.Sdk">
  <PropertyGroup>
    <TargetFramework>net8.0</TargetFramework>
  </PropertyGroup>
  <ItemGroup>
    <PackageReference Include="Newtonsoft.Json" />
    <PackageReference Include="Serilog" />
  </ItemGroup>
</Project>`

const testsProject = `<Project Sdk="Microsoft.NET.Sdk">
  <PropertyGroup>
    <TargetFramework>net8.0</TargetFramework>
  </PropertyGroup>
  <ItemGroup>
    <PackageReference Include="xunit" />
    <PackageReference Include="Moq" Version="4.20.70" />
    <Using Include="Xunit" />
  </ItemGroup>
</Project>`

const solution = `<Solution>
  <Folder Name="/src/">
    <Project Path="src/Api/Api.csproj" />
  </Folder>
  <Folder Name="/tests/">
    <Project Path="tests/Api.Tests/Api.Tests.csproj" />
  </Folder>
</Solution>`

func repository() fstest.MapFS {
	return fstest.MapFS{
		"App.slnx":                            {Data: []byte(solution)},
		"Directory.Packages.props":            {Data: []byte(centralPackages)},
		"src/Api/Api.csproj":                  {Data: []byte(apiProject)},
		"src/Api/Program.cs":                  {Data: []byte("using Newtonsoft.Json;\n\nnamespace Api;\n\npublic class Program {}\n")},
		"src/Api/obj/Api.AssemblyInfo.cs":     {Data: []byte("using Serilog;\n")},
		"tests/Api.Tests/Api.Tests.csproj":    {Data: []byte(testsProject)},
		"tests/Api.Tests/ProgramTests.cs":     {Data: []byte("namespace Api.Tests;\n\npublic class ProgramTests {}\n")},
		"tests/Api.Tests/Usings.g.cs":         {Data: []byte("global using Moq;\n")},
		"docs/readme.txt":                     {Data: []byte("not a project")},
		"broken/Broken.csproj":                {Data: []byte("<Project><PropertyGroup>")},
		"single/Single.csproj":                {Data: []byte(apiProject)},
		"single/Single.cs":                    {Data: []byte("using Serilog;\nusing Newtonsoft.Json.Linq;\n")},
		"legacy/Legacy.csproj":                {Data: []byte(`<Project Sdk="Microsoft.NET.Sdk"><PropertyGroup><TargetFramework>net48</TargetFramework></PropertyGroup></Project>`)},
		"legacy/Legacy.cs":                    {Data: []byte("namespace Legacy;\n")},
		"configured/nuprune.yaml":             {Data: []byte("ignorePackages:\n  - Serilog\n")},
		"configured/Configured.csproj":        {Data: []byte(apiProject)},
		"configured/Configured.cs":            {Data: []byte("using Newtonsoft.Json;\n")},
		"configured/invalid/nuprune.yaml":     {Data: []byte("devDependencies: sometimes\n")},
		"configured/invalid/Invalid.csproj":   {Data: []byte(apiProject)},
		"configured/excluded/Excluded.csproj": {Data: []byte(apiProject)},
		"configured/excluded/Generated/Json.cs": {
			Data: []byte("using Newtonsoft.Json;\n"),
		},
	}
}

func newApp(t *testing.T, files fstest.MapFS) *app.App {
	t.Helper()
	return newAppWithCentral(t, files, func(c *cpm.Cache) ports.CentralPackageResolver { return c })
}

func newAppWithCentral(t *testing.T, files fstest.MapFS, central func(*cpm.Cache) ports.CentralPackageResolver) *app.App {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	fsys := fs.NewMapFSAdapter("/repo", files)
	walker := fs.NewWalker(fsys)
	scan, err := scanner.New(fsys, 0)
	require.NoError(t, err)

	tracer := telemetry.NewNoOpTracer()
	table := namespaces.NewDefault()

	return app.New(
		msbuild.NewLoader(fsys, walker, log),
		msbuild.NewExtractor(fsys),
		central(cpm.NewCache(cpm.NewResolver(fsys, fs.NewHasher(), log))),
		analyzer.New(scan, walker, table, tracer),
		table,
		config.NewLoader(fsys, log),
		fsys,
		log,
		tracer,
	)
}

func detailIDs(details []domain.PackageDetail) []string {
	out := make([]string, 0, len(details))
	for _, d := range details {
		out = append(out, d.ID)
	}
	return out
}

func TestAnalyze_Solution(t *testing.T) {
	a := newApp(t, repository())

	outcome := a.Analyze(context.Background(), app.Request{Target: "/repo/App.slnx"})
	require.True(t, outcome.OK(), "unexpected failure: %v", outcome.Failure)

	result := outcome.Result
	assert.Equal(t, "/repo/App.slnx", result.Target)
	assert.Equal(t, "App", result.Solution)
	assert.True(t, result.CentralManagement)
	assert.Equal(t, filepath.Join("/repo", "Directory.Packages.props"), result.CentralFile)

	require.Len(t, result.Projects, 2)
	api, tests := result.Projects[0], result.Projects[1]

	assert.Equal(t, "Api", api.Name)
	assert.Equal(t, []string{"Newtonsoft.Json"}, detailIDs(api.Used))
	assert.Equal(t, []string{"Serilog"}, detailIDs(api.Unused))
	assert.Equal(t, "3.1.1", api.Unused[0].Version)
	assert.Equal(t, 1, api.SourceFiles)

	assert.Equal(t, "Api.Tests", tests.Name)
	assert.Equal(t, []string{"xunit"}, detailIDs(tests.Used))
	assert.True(t, tests.Used[0].HasGlobalUsing)
	assert.Equal(t, []string{"Moq"}, detailIDs(tests.Unused))

	assert.Equal(t, domain.Summary{
		Projects:      2,
		Total:         4,
		Used:          2,
		Unused:        2,
		PercentUnused: 50,
	}, result.Summary)
	assert.True(t, result.HasUnused())
	assert.Positive(t, result.Elapsed)
}

func TestAnalyze_DirectoryPrefersSolution(t *testing.T) {
	a := newApp(t, repository())

	outcome := a.Analyze(context.Background(), app.Request{Target: "/repo"})
	require.True(t, outcome.OK(), "unexpected failure: %v", outcome.Failure)
	assert.Equal(t, "App", outcome.Result.Solution)
	assert.Len(t, outcome.Result.Projects, 2)
}

func TestAnalyze_SingleProject(t *testing.T) {
	a := newApp(t, repository())

	outcome := a.Analyze(context.Background(), app.Request{Target: "/repo/single/Single.csproj"})
	require.True(t, outcome.OK(), "unexpected failure: %v", outcome.Failure)

	require.Len(t, outcome.Result.Projects, 1)
	report := outcome.Result.Projects[0]
	assert.Equal(t, []string{"Newtonsoft.Json", "Serilog"}, detailIDs(report.Used))
	assert.Empty(t, report.Unused)
	assert.Equal(t, 0.0, outcome.Result.Summary.PercentUnused)
}

func TestAnalyze_RequestOptions(t *testing.T) {
	a := newApp(t, repository())

	outcome := a.Analyze(context.Background(), app.Request{
		Target:          "/repo/App.slnx",
		DevDependencies: domain.DevDependenciesIgnore,
		Parallelism:     1,
	})
	require.True(t, outcome.OK(), "unexpected failure: %v", outcome.Failure)

	tests := outcome.Result.Projects[1]
	assert.Empty(t, tests.Unused)
	assert.Equal(t, []string{"Moq"}, detailIDs(tests.Ignored))
	assert.Equal(t, 3, outcome.Result.Summary.Total)
	assert.Equal(t, 1, outcome.Result.Summary.Ignored)
}

func TestAnalyze_GlobalUsingPolicyOff(t *testing.T) {
	a := newApp(t, repository())
	off := false

	outcome := a.Analyze(context.Background(), app.Request{
		Target:                  "/repo/App.slnx",
		GlobalUsingCountsAsUsed: &off,
	})
	require.True(t, outcome.OK(), "unexpected failure: %v", outcome.Failure)
	assert.Equal(t, []string{"Moq", "xunit"}, detailIDs(outcome.Result.Projects[1].Unused))
}

func TestAnalyze_ConfigurationFile(t *testing.T) {
	a := newApp(t, repository())

	outcome := a.Analyze(context.Background(), app.Request{Target: "/repo/configured/Configured.csproj"})
	require.True(t, outcome.OK(), "unexpected failure: %v", outcome.Failure)

	report := outcome.Result.Projects[0]
	assert.Equal(t, []string{"Newtonsoft.Json"}, detailIDs(report.Used))
	assert.Equal(t, []string{"Serilog"}, detailIDs(report.Ignored))
	assert.Empty(t, report.Unused)
}

func TestAnalyze_ExplicitConfigPath(t *testing.T) {
	a := newApp(t, repository())

	outcome := a.Analyze(context.Background(), app.Request{
		Target:     "/repo/single/Single.csproj",
		ConfigPath: "/repo/configured/nuprune.yaml",
	})
	require.True(t, outcome.OK(), "unexpected failure: %v", outcome.Failure)
	assert.Equal(t, []string{"Serilog"}, detailIDs(outcome.Result.Projects[0].Ignored))
}

func TestAnalyze_ExcludePatterns(t *testing.T) {
	a := newApp(t, repository())

	outcome := a.Analyze(context.Background(), app.Request{
		Target:  "/repo/configured/excluded/Excluded.csproj",
		Exclude: []string{"Generated/**"},
	})
	require.True(t, outcome.OK(), "unexpected failure: %v", outcome.Failure)

	report := outcome.Result.Projects[0]
	assert.Equal(t, 0, report.SourceFiles)
	assert.Equal(t, []string{"Newtonsoft.Json"}, detailIDs(report.Unused))
	assert.Equal(t, []string{"Serilog"}, detailIDs(report.Ignored), "inherits the parent configuration")
}

func TestAnalyze_Failures(t *testing.T) {
	tests := []struct {
		name     string
		req      app.Request
		wantCode domain.FailureCode
	}{
		{
			name:     "empty target",
			req:      app.Request{},
			wantCode: domain.FailureValidation,
		},
		{
			name:     "negative timeout",
			req:      app.Request{Target: "/repo/App.slnx", Timeout: -time.Second},
			wantCode: domain.FailureValidation,
		},
		{
			name:     "negative parallelism",
			req:      app.Request{Target: "/repo/App.slnx", Parallelism: -1},
			wantCode: domain.FailureValidation,
		},
		{
			name:     "unknown dev dependency policy",
			req:      app.Request{Target: "/repo/App.slnx", DevDependencies: "sometimes"},
			wantCode: domain.FailureValidation,
		},
		{
			name:     "invalid exclude pattern",
			req:      app.Request{Target: "/repo/App.slnx", Exclude: []string{"src/[a"}},
			wantCode: domain.FailureValidation,
		},
		{
			name:     "missing target",
			req:      app.Request{Target: "/repo/Missing.sln"},
			wantCode: domain.FailureNotFound,
		},
		{
			name:     "unsupported target",
			req:      app.Request{Target: "/repo/docs/readme.txt"},
			wantCode: domain.FailureValidation,
		},
		{
			name:     "malformed project",
			req:      app.Request{Target: "/repo/broken/Broken.csproj"},
			wantCode: domain.FailureMalformed,
		},
		{
			name:     "no project for framework",
			req:      app.Request{Target: "/repo/legacy/Legacy.csproj", TargetFramework: "net8.0"},
			wantCode: domain.FailureValidation,
		},
		{
			name:     "invalid configuration",
			req:      app.Request{Target: "/repo/configured/invalid/Invalid.csproj"},
			wantCode: domain.FailureValidation,
		},
		{
			name:     "missing configuration",
			req:      app.Request{Target: "/repo/App.slnx", ConfigPath: "/repo/none.yaml"},
			wantCode: domain.FailureNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newApp(t, repository())

			outcome := a.Analyze(context.Background(), tt.req)
			require.False(t, outcome.OK())
			require.NotNil(t, outcome.Failure)
			assert.Nil(t, outcome.Result)
			assert.Equal(t, tt.wantCode, outcome.Failure.Code, "message: %s", outcome.Failure.Message)
			assert.NotEmpty(t, outcome.Failure.Message)
		})
	}
}

func TestAnalyze_FrameworkFilter(t *testing.T) {
	a := newApp(t, repository())

	outcome := a.Analyze(context.Background(), app.Request{Target: "/repo/legacy/Legacy.csproj", TargetFramework: "NET48"})
	require.True(t, outcome.OK(), "unexpected failure: %v", outcome.Failure)
	assert.Len(t, outcome.Result.Projects, 1)
}

func TestAnalyze_Cancelled(t *testing.T) {
	a := newApp(t, repository())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcome := a.Analyze(ctx, app.Request{Target: "/repo/App.slnx"})
	require.NotNil(t, outcome.Failure)
	assert.Equal(t, domain.FailureCancelled, outcome.Failure.Code)
	assert.Equal(t, domain.ExitCancelled, outcome.Failure.Code.ExitCode())
}

func TestAnalyze_FailureCarriesTargetPath(t *testing.T) {
	a := newApp(t, repository())

	outcome := a.Analyze(context.Background(), app.Request{Target: "/repo/broken/Broken.csproj"})
	require.NotNil(t, outcome.Failure)
	assert.Equal(t, "/repo/broken/Broken.csproj", outcome.Failure.Path)
	assert.ErrorIs(t, outcome.Failure, domain.ErrMalformedXML)
}

func TestAnalyze_RecoversPanics(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	cfg := mocks.NewMockConfigLoader(ctrl)
	cfg.EXPECT().Load("/repo").DoAndReturn(func(string) (*domain.Settings, error) {
		panic("boom")
	})

	fsys := fs.NewMapFSAdapter("/repo", repository())
	a := app.New(nil, nil, nil, nil, nil, cfg, fsys, log, telemetry.NewNoOpTracer())

	outcome := a.Analyze(context.Background(), app.Request{Target: "/repo"})
	require.NotNil(t, outcome.Failure)
	assert.Equal(t, domain.FailureInternal, outcome.Failure.Code)
	assert.Contains(t, outcome.Failure.Message, "panic: boom")
	assert.ErrorIs(t, outcome.Failure, domain.ErrAnalysisFailed)
}
