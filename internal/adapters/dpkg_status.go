package adapters

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	debversion "github.com/knqyf263/go-deb-version"

	"mediad/internal/ports"
	"mediad/internal/types"
)

const DefaultDpkgStatus = "/var/lib/dpkg/status"

// DpkgStatusAdapter answers package lookups from the dpkg status database.
type DpkgStatusAdapter struct {
	Path string
}

func NewDpkgStatusAdapter(path string) DpkgStatusAdapter {
	if strings.TrimSpace(path) == "" {
		path = DefaultDpkgStatus
	}
	return DpkgStatusAdapter{Path: path}
}

// Lookup returns the highest installed version of name. Systems without
// a dpkg database report every package as absent.
func (a DpkgStatusAdapter) Lookup(name string) (types.SystemPackage, bool, error) {
	file, err := os.Open(a.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return types.SystemPackage{}, false, nil
	}
	if err != nil {
		return types.SystemPackage{}, false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read dpkg status").
			WithCause(err)
	}
	defer file.Close()

	var (
		best       types.SystemPackage
		bestParsed debversion.Version
		found      bool
	)
	consider := func(stanza map[string]string) error {
		if stanza["Package"] != name || !isInstalled(stanza["Status"]) {
			return nil
		}
		raw := stanza["Version"]
		parsed, err := debversion.NewVersion(raw)
		if err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid dpkg version for %s: %s", name, raw)).
				WithCause(err)
		}
		if found && !parsed.GreaterThan(bestParsed) {
			return nil
		}
		best = types.SystemPackage{
			Name:     name,
			Version:  raw,
			Upstream: upstreamVersion(raw),
			Status:   stanza["Status"],
		}
		bestParsed = parsed
		found = true
		return nil
	}

	stanza := map[string]string{}
	var lastKey string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			if err := consider(stanza); err != nil {
				return types.SystemPackage{}, false, err
			}
			stanza = map[string]string{}
			lastKey = ""
			continue
		}
		if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
			if lastKey != "" {
				stanza[lastKey] += "\n" + strings.TrimSpace(line)
			}
			continue
		}
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}
		lastKey = strings.TrimSpace(parts[0])
		stanza[lastKey] = strings.TrimSpace(parts[1])
	}
	if err := scanner.Err(); err != nil {
		return types.SystemPackage{}, false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read dpkg status").
			WithCause(err)
	}
	if err := consider(stanza); err != nil {
		return types.SystemPackage{}, false, err
	}
	return best, found, nil
}

func isInstalled(status string) bool {
	fields := strings.Fields(status)
	return len(fields) == 3 && fields[2] == "installed"
}

// upstreamVersion strips the epoch and Debian revision, so
// "1:1.22.0-2+deb12u1" becomes "1.22.0".
func upstreamVersion(raw string) string {
	value := raw
	if idx := strings.Index(value, ":"); idx >= 0 {
		value = value[idx+1:]
	}
	if idx := strings.LastIndex(value, "-"); idx >= 0 {
		value = value[:idx]
	}
	return value
}

var _ ports.SystemPackagePort = DpkgStatusAdapter{}
