package namespaces_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/nuprune/internal/adapters/namespaces"
	"go.trai.ch/nuprune/internal/core/domain"
)

func TestTable_Aliases(t *testing.T) {
	table := namespaces.NewDefault()

	tests := []struct {
		id   string
		want []string
	}{
		{id: "AutoMapper.Extensions.Microsoft.DependencyInjection", want: []string{"AutoMapper", "Microsoft.Extensions.DependencyInjection"}},
		{id: "microsoft.entityframeworkcore.sqlserver", want: []string{"Microsoft.EntityFrameworkCore"}},
		{id: "MSTest.TestFramework", want: []string{"Microsoft.VisualStudio.TestTools.UnitTesting"}},
		{id: "Swashbuckle.AspNetCore", want: []string{"Swashbuckle", "Microsoft.OpenApi"}},
		{id: "Swashbuckle.AspNetCore.Annotations", want: []string{"Swashbuckle"}},
		{id: "xunit.assert", want: []string{"Xunit"}},
		{id: "Newtonsoft.Json", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, table.Aliases(tt.id))
		})
	}
}

func TestTable_IsDevDependency(t *testing.T) {
	table := namespaces.NewDefault()

	for _, id := range []string{
		"xunit", "xunit.runner.visualstudio", "NUnit3TestAdapter", "coverlet.collector",
		"Microsoft.NET.Test.Sdk", "StyleCop.Analyzers", "Microsoft.SourceLink.GitHub",
		"Microsoft.CodeAnalysis.NetAnalyzers", "moq",
	} {
		assert.True(t, table.IsDevDependency(id), id)
	}

	for _, id := range []string{"Newtonsoft.Json", "Serilog", "Microsoft.EntityFrameworkCore"} {
		assert.False(t, table.IsDevDependency(id), id)
	}
}

func TestTable_AddAliasesMerges(t *testing.T) {
	table := namespaces.New()
	table.AddAliases("Acme.Client", "Acme")
	table.AddAliases("ACME.CLIENT", "acme", "Acme.Http", " ")
	table.AddAliases("Acme.*", "Acme.Core")
	table.AddAliases("", "Ignored")

	assert.Equal(t, []string{"Acme", "Acme.Http", "Acme.Core"}, table.Aliases("acme.client"))
	assert.Equal(t, []string{"Acme.Core"}, table.Aliases("Acme.Other"))
}

func TestWithSettings(t *testing.T) {
	base := namespaces.NewDefault()

	assert.Same(t, base, namespaces.WithSettings(base, nil))
	assert.Same(t, base, namespaces.WithSettings(base, &domain.Settings{}))

	resolver := namespaces.WithSettings(base, &domain.Settings{
		Namespaces:            map[string][]string{"Swashbuckle.AspNetCore": {"Acme.Swagger"}},
		DevDependencyPatterns: []string{"Acme.Testing*"},
	})

	assert.Equal(t, []string{"Swashbuckle", "Microsoft.OpenApi", "Acme.Swagger"}, resolver.Aliases("Swashbuckle.AspNetCore"))
	assert.True(t, resolver.IsDevDependency("Acme.Testing.Fixtures"))
	assert.True(t, resolver.IsDevDependency("xunit"))
	assert.False(t, resolver.IsDevDependency("Acme.Core"))
}
