package namespaces

// defaultAliases lists packages whose root namespaces differ from their ids.
var defaultAliases = map[string][]string{
	"AutoMapper.Extensions.Microsoft.DependencyInjection": {"AutoMapper", "Microsoft.Extensions.DependencyInjection"},
	"MediatR.Extensions.Microsoft.DependencyInjection":    {"MediatR", "Microsoft.Extensions.DependencyInjection"},
	"FluentValidation.AspNetCore":                         {"FluentValidation"},
	"FluentValidation.DependencyInjectionExtensions":      {"FluentValidation", "Microsoft.Extensions.DependencyInjection"},

	"Microsoft.EntityFrameworkCore.*":       {"Microsoft.EntityFrameworkCore"},
	"Npgsql.EntityFrameworkCore.PostgreSQL": {"Npgsql", "Microsoft.EntityFrameworkCore"},
	"Pomelo.EntityFrameworkCore.MySql":      {"Microsoft.EntityFrameworkCore"},

	"Microsoft.Extensions.Configuration.*":                 {"Microsoft.Extensions.Configuration"},
	"Microsoft.Extensions.Options.ConfigurationExtensions": {"Microsoft.Extensions.Options", "Microsoft.Extensions.DependencyInjection"},
	"Microsoft.Extensions.Http":                            {"Microsoft.Extensions.DependencyInjection", "System.Net.Http"},
	"Microsoft.AspNetCore.Mvc.NewtonsoftJson":              {"Microsoft.AspNetCore.Mvc", "Microsoft.Extensions.DependencyInjection"},
	"Microsoft.AspNetCore.Authentication.JwtBearer":        {"Microsoft.AspNetCore.Authentication", "Microsoft.IdentityModel.Tokens"},

	"Swashbuckle.AspNetCore":   {"Swashbuckle", "Microsoft.OpenApi"},
	"Swashbuckle.AspNetCore.*": {"Swashbuckle"},

	"Serilog.AspNetCore":         {"Serilog"},
	"Serilog.Extensions.*":       {"Serilog"},
	"Serilog.Sinks.*":            {"Serilog"},
	"Serilog.Enrichers.*":        {"Serilog"},
	"Serilog.Settings.*":         {"Serilog"},
	"NLog.Web.AspNetCore":        {"NLog"},
	"OpenTelemetry.Exporter.*":   {"OpenTelemetry"},
	"OpenTelemetry.Extensions.*": {"OpenTelemetry"},

	"xunit":                {"Xunit"},
	"xunit.*":              {"Xunit"},
	"MSTest.TestFramework": {"Microsoft.VisualStudio.TestTools.UnitTesting"},
	"MSTest.TestAdapter":   {"Microsoft.VisualStudio.TestTools.UnitTesting"},
	"MSTest":               {"Microsoft.VisualStudio.TestTools.UnitTesting"},
	"Castle.Core":          {"Castle"},

	"AWSSDK.*":              {"Amazon"},
	"WindowsAzure.Storage":  {"Microsoft.WindowsAzure.Storage"},
	"Grpc.AspNetCore":       {"Grpc"},
	"Grpc.Tools":            {"Grpc"},
	"Humanizer.Core":        {"Humanizer"},
	"FSharp.Core":           {"Microsoft.FSharp"},
	"System.Data.SqlClient": {"System.Data.SqlClient", "System.Data"},
}

// defaultDevPatterns lists test, analyzer, and build tooling packages.
var defaultDevPatterns = []string{
	"xunit",
	"xunit.*",
	"NUnit*",
	"MSTest*",
	"Microsoft.NET.Test.Sdk",
	"Microsoft.AspNetCore.Mvc.Testing",
	"coverlet.*",
	"ReportGenerator",
	"Moq",
	"NSubstitute",
	"FakeItEasy",
	"FluentAssertions",
	"Shouldly",
	"AutoFixture*",
	"Bogus",
	"BenchmarkDotNet",
	"*.Analyzers",
	"StyleCop.*",
	"Roslynator.*",
	"SonarAnalyzer.*",
	"Meziantou.Analyzer",
	"Microsoft.SourceLink.*",
	"Microsoft.CodeAnalysis.*Analyzers",
	"Nerdbank.GitVersioning",
	"GitVersion.MsBuild",
	"MinVer",
	"JetBrains.Annotations",
}
