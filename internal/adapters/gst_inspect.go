package adapters

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"mediad/internal/ports"
	"mediad/internal/shared"
	"mediad/internal/types"
)

const DefaultGstInspect = "gst-inspect-1.0"

// GstInspectAdapter reads the GStreamer plugin registry through the
// gst-inspect tool.
type GstInspectAdapter struct {
	Binary   string
	lookPath func(file string) (string, error)
	run      func(ctx context.Context, path string, args ...string) ([]byte, error)
}

func NewGstInspectAdapter(binary string) GstInspectAdapter {
	if strings.TrimSpace(binary) == "" {
		binary = DefaultGstInspect
	}
	return GstInspectAdapter{
		Binary:   binary,
		lookPath: exec.LookPath,
		run:      runCommand,
	}
}

func (a GstInspectAdapter) Path() (string, error) {
	path, err := a.lookPath(a.Binary)
	if errors.Is(err, fs.ErrNotExist) {
		// An explicit path that does not exist is as absent as a bare name
		// missing from PATH.
		return "", fmt.Errorf("%s: %w: %w", a.Binary, exec.ErrNotFound, err)
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", a.Binary, err)
	}
	return path, nil
}

func (a GstInspectAdapter) Version(ctx context.Context) (types.GStreamerVersion, error) {
	output, err := a.inspect(ctx, "--version")
	if err != nil {
		return types.GStreamerVersion{}, err
	}
	inspector, library := parseVersionOutput(string(output))
	if library == "" {
		return types.GStreamerVersion{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("unexpected %s --version output", a.Binary))
	}
	return types.GStreamerVersion{Library: library, Inspector: inspector}, nil
}

func (a GstInspectAdapter) Elements(ctx context.Context) ([]string, error) {
	output, err := a.inspect(ctx)
	if err != nil {
		return nil, err
	}
	return parseElementList(string(output)), nil
}

func (a GstInspectAdapter) inspect(ctx context.Context, args ...string) ([]byte, error) {
	path, err := a.Path()
	if err != nil {
		return nil, err
	}
	output, err := a.run(ctx, path, args...)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("%s failed", a.Binary)).
			WithCause(shared.CommandError(output, err))
	}
	return output, nil
}

func runCommand(ctx context.Context, path string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, path, args...)
	return cmd.CombinedOutput()
}

// parseVersionOutput reads
//
//	gst-inspect-1.0 version 1.22.0
//	GStreamer 1.22.0
func parseVersionOutput(output string) (string, string) {
	var inspector, library string
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		switch {
		case len(fields) == 3 && fields[1] == "version":
			inspector = fields[2]
		case len(fields) == 2 && fields[0] == "GStreamer":
			library = fields[1]
		}
	}
	return inspector, library
}

// parseElementList reads the "plugin:  element: description" lines of a
// bare gst-inspect run.
func parseElementList(output string) []string {
	var elements []string
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "Total count:") {
			continue
		}
		parts := strings.SplitN(line, ": ", 3)
		if len(parts) < 3 {
			continue
		}
		name := strings.TrimSpace(parts[1])
		if name == "" {
			continue
		}
		elements = append(elements, name)
	}
	return elements
}

var _ ports.ElementRegistryPort = GstInspectAdapter{}
