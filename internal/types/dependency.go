package types

// DependencyFact describes one probed dependency. An empty Version means
// the dependency was not found; Path and Detail are then ignored.
type DependencyFact struct {
	Name     string
	Version  string
	Path     string
	Detail   string
	Children []DependencyFact
}

// Found reports whether the probe detected the dependency.
func (f DependencyFact) Found() bool {
	return f.Version != ""
}

// NotFound returns a fact for an absent dependency.
func NotFound(name string) DependencyFact {
	return DependencyFact{Name: name}
}
