package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"mediad/internal/shared"
	"mediad/internal/types"
)

// nameTerminators are the characters that end the project name in a
// requirement string such as "pykka[extra] (>=1.1); python_version>'3'".
const nameTerminators = "<>=!~[;( \t"

// ParseRequirement splits a raw requirement string into its project name
// and PEP 440 specifier. Extras and environment markers are dropped.
func ParseRequirement(raw string) (types.Requirement, error) {
	raw = strings.TrimSpace(raw)
	if marker := strings.Index(raw, ";"); marker >= 0 {
		raw = strings.TrimSpace(raw[:marker])
	}
	if raw == "" {
		return types.Requirement{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("empty requirement")
	}
	end := strings.IndexAny(raw, nameTerminators)
	if end < 0 {
		return types.Requirement{Name: raw}, nil
	}
	name := raw[:end]
	rest := strings.TrimSpace(raw[end:])
	if strings.HasPrefix(rest, "[") {
		closing := strings.Index(rest, "]")
		if closing < 0 {
			return types.Requirement{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid requirement: %s", raw))
		}
		rest = strings.TrimSpace(rest[closing+1:])
	}
	rest = strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(rest, "("), ")"))
	if name == "" {
		return types.Requirement{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid requirement: %s", raw))
	}
	return types.Requirement{Name: name, Specifier: rest}, nil
}

// requirementKey is the name used to detect the same project across
// differently spelled requirements.
func requirementKey(name string) string {
	return shared.NormalizeProjectName(name)
}
