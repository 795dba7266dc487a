package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/nuprune/internal/core/domain"
)

func TestLayout_FileKinds(t *testing.T) {
	assert.True(t, domain.IsProjectFile("/src/Api/Api.csproj"))
	assert.True(t, domain.IsProjectFile("/src/Lib/Lib.FSPROJ"))
	assert.False(t, domain.IsProjectFile("/src/Api/Program.cs"))

	assert.True(t, domain.IsSolutionFile("Shop.sln"))
	assert.True(t, domain.IsSolutionFile("Shop.slnx"))

	assert.True(t, domain.IsSourceFile("Views/Index.cshtml"))
	assert.True(t, domain.IsSourceFile("Tools/build.fsx"))
	assert.False(t, domain.IsSourceFile("appsettings.json"))
}

func TestLayout_IsGeneratedFile(t *testing.T) {
	assert.True(t, domain.IsGeneratedFile("/src/Forms/Main.Designer.cs"))
	assert.True(t, domain.IsGeneratedFile("/src/Forms/main.designer.cs"))
	assert.True(t, domain.IsGeneratedFile("/src/obj/Api.AssemblyInfo.cs"))
	assert.True(t, domain.IsGeneratedFile("/src/Api/Client.g.cs"))
	assert.False(t, domain.IsGeneratedFile("/src/Api/Program.cs"))
}

func TestLayout_IsSkippedDirectory(t *testing.T) {
	assert.True(t, domain.IsSkippedDirectory("bin"))
	assert.True(t, domain.IsSkippedDirectory("OBJ"))
	assert.False(t, domain.IsSkippedDirectory("src"))
}

func TestPathKey_NormalisesSeparatorsAndCase(t *testing.T) {
	assert.Equal(t, domain.PathKey(`/src/Api\Api.csproj`), domain.PathKey("/SRC/api/./Api.csproj"))
	assert.NotEqual(t, domain.PathKey("/src/Api/Api.csproj"), domain.PathKey("/src/Core/Core.csproj"))
	assert.True(t, domain.Key{}.IsZero())
}
