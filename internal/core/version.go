package core

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"

	"mediad/internal/types"
)

// versionCache memoizes parsed PEP 440 versions and specifiers while a
// requirement tree is expanded; shared projects are parsed once.
type versionCache struct {
	pep  map[string]pep440.Version
	spec map[string]pep440.Specifiers
}

func newVersionCache() *versionCache {
	return &versionCache{
		pep:  map[string]pep440.Version{},
		spec: map[string]pep440.Specifiers{},
	}
}

// pepVersion returns a parsed PEP 440 version, caching the result.
func (c *versionCache) pepVersion(value string) (pep440.Version, error) {
	if parsed, ok := c.pep[value]; ok {
		return parsed, nil
	}
	parsed, err := pep440.Parse(value)
	if err != nil {
		return pep440.Version{}, err
	}
	c.pep[value] = parsed
	return parsed, nil
}

// pepSpec returns parsed PEP 440 specifiers, caching the result.
func (c *versionCache) pepSpec(value string) (pep440.Specifiers, error) {
	if parsed, ok := c.spec[value]; ok {
		return parsed, nil
	}
	parsed, err := pep440.NewSpecifiers(value)
	if err != nil {
		return pep440.Specifiers{}, err
	}
	c.spec[value] = parsed
	return parsed, nil
}

// checkRequirement verifies that an installed version satisfies the
// requirement's specifier. A requirement without specifier accepts any
// version.
func (c *versionCache) checkRequirement(req types.Requirement, installed string) error {
	if req.Specifier == "" {
		return nil
	}
	spec, err := c.pepSpec(req.Specifier)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid specifier for %s: %s", req.Name, req.Specifier)).
			WithCause(err)
	}
	version, err := c.pepVersion(installed)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid version for %s: %s", req.Name, installed)).
			WithCause(err)
	}
	if !spec.Check(version) {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("version conflict: %s %s does not satisfy %s", req.Name, installed, req.Specifier))
	}
	return nil
}
