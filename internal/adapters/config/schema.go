package config

import "go.trai.ch/nuprune/internal/core/domain"

// FileName is the name of the configuration file searched for.
const FileName = domain.ConfigFileName

// AltFileName is the hidden variant of FileName, used when FileName is absent.
const AltFileName = ".nuprune.yaml"

// File represents the structure of the nuprune.yaml configuration file.
type File struct {
	Exclude                 []string            `yaml:"exclude"`
	Timeout                 string              `yaml:"timeout"`
	Parallelism             int                 `yaml:"parallelism"`
	TargetFramework         string              `yaml:"targetFramework"`
	DevDependencies         string              `yaml:"devDependencies"`
	GlobalUsingCountsAsUsed *bool               `yaml:"globalUsingCountsAsUsed"`
	StrictPrefixes          *bool               `yaml:"strictPrefixes"`
	Namespaces              map[string][]string `yaml:"namespaces"`
	DevDependencyPatterns   []string            `yaml:"devDependencyPatterns"`
	IgnorePackages          []string            `yaml:"ignorePackages"`
}
