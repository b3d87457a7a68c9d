package types

// ExtensionGroup is the entry-point group extensions register under.
const ExtensionGroup = "mediad.ext"

// HostProject is the distribution name of the media server itself.
const HostProject = "mediad"

// DistributionManifest is the on-disk package.yaml of an installed
// distribution.
type DistributionManifest struct {
	Name        string              `yaml:"name"`
	Version     string              `yaml:"version"`
	Requires    []string            `yaml:"requires"`
	Extras      map[string][]string `yaml:"extras"`
	EntryPoints map[string][]string `yaml:"entry_points"`
}

type Distribution struct {
	ProjectName string
	Version     string
	Location    string
	Requires    []string
	Extras      map[string][]string
}

type EntryPoint struct {
	Group       string
	Name        string
	ProjectName string
}

// Requirement is a parsed requirement string such as "pykka>=1.1".
type Requirement struct {
	Name      string
	Specifier string
}
