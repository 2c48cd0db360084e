package config

// Pkgrfile represents the structure of the pkgr.yaml configuration file.
type Pkgrfile struct {
	Project            string      `yaml:"project"`
	DependencyBehavior string      `yaml:"dependencyBehavior"`
	IncludePrerelease  bool        `yaml:"includePrerelease"`
	IncludeUnlisted    bool        `yaml:"includeUnlisted"`
	Sources            []SourceDTO `yaml:"sources"`
}

// SourceDTO represents a package source in the configuration.
type SourceDTO struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Path     string `yaml:"path"`
	Bucket   string `yaml:"bucket"`
	Prefix   string `yaml:"prefix"`
	Region   string `yaml:"region"`
	Endpoint string `yaml:"endpoint"`
}
