package core

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"mediad/internal/types"
)

// Probe inspects one dependency. Absence is reported as a fact without a
// version, never as an error.
type Probe func(ctx context.Context) (types.DependencyFact, error)

const detailHeader = "  Detailed information: "

// Collect runs every probe in order. The first failing probe aborts the
// whole collection.
func Collect(ctx context.Context, probes []Probe) ([]types.DependencyFact, error) {
	facts := make([]types.DependencyFact, 0, len(probes))
	for i, probe := range probes {
		fact, err := probe(ctx)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeOf(err)).
				WithMsg(fmt.Sprintf("probe %d failed: %s", i, errorMessage(err))).
				WithCause(err)
		}
		assert.NotEmpty(ctx, fact.Name, "dependency name must be set")
		log.Ctx(ctx).Debug().Str("dependency", fact.Name).Bool("found", fact.Found()).Msg("probe collected")
		facts = append(facts, fact)
	}
	return facts, nil
}

// Render formats facts as an indented, newline-joined report.
func Render(facts []types.DependencyFact) string {
	blocks := make([]string, 0, len(facts))
	for _, fact := range facts {
		blocks = append(blocks, renderFact(fact))
	}
	return strings.Join(blocks, "\n")
}

// FormatDependencyList collects and renders probes in one pass.
func FormatDependencyList(ctx context.Context, probes []Probe) (string, error) {
	facts, err := Collect(ctx, probes)
	if err != nil {
		return "", err
	}
	return Render(facts), nil
}

func renderFact(fact types.DependencyFact) string {
	if !fact.Found() {
		return fmt.Sprintf("%s: not found", fact.Name)
	}
	lines := []string{fmt.Sprintf("%s: %s from %s", fact.Name, fact.Version, locationDir(fact.Path))}
	if fact.Detail != "" {
		lines = append(lines, detailHeader, Indent(fact.Detail, 4, false))
	}
	for _, child := range fact.Children {
		lines = append(lines, Indent(renderFact(child), 2, true))
	}
	return strings.Join(lines, "\n")
}

// locationDir returns the directory portion of path. A bare file name has
// no directory portion and yields "".
func locationDir(path string) string {
	if path == "" {
		return "none"
	}
	if !strings.ContainsRune(path, filepath.Separator) {
		return ""
	}
	return filepath.Dir(path)
}

func errorMessage(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}
