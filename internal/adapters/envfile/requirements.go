package envfile

import (
	"bufio"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/zbowling/depwise/internal/core/domain"
	"go.trai.ch/zerr"
)

var archiveSuffixes = []string{
	".whl", ".tar.gz", ".zip", ".tar.bz2", ".tar", ".egg", ".tar.xz",
}

// ParseRequirementsFile parses a requirements.txt, following -r includes
// relative to the file's directory. Includes that form a cycle are an error.
func ParseRequirementsFile(path string) ([]domain.Dependency, error) {
	return parseRequirementsFile(path, nil)
}

func parseRequirementsFile(path string, visited []string) ([]domain.Dependency, error) {
	if slices.Contains(visited, path) {
		return nil, zerr.With(domain.ErrRequirementsCycle, "file", path)
	}
	visited = append(visited, path)

	f, err := os.Open(path)
	if err != nil {
		return nil, zerr.With(domain.ErrDependencyFileReadFailed, "file", path)
	}
	defer f.Close()

	var deps []domain.Dependency
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := stripComment(scanner.Text())
		if line == "" {
			continue
		}

		if include, ok := strings.CutPrefix(line, "-r "); ok {
			included, err := parseRequirementsFile(
				filepath.Join(filepath.Dir(path), strings.TrimSpace(include)),
				visited,
			)
			if err != nil {
				return nil, err
			}
			deps = append(deps, included...)
			continue
		}
		if strings.HasPrefix(line, "-") {
			// Other pip options carry no dependency information.
			continue
		}

		dep, err := parseRequirementLine(line)
		if err != nil {
			return nil, err
		}
		deps = append(deps, dep)
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.With(domain.ErrDependencyFileReadFailed, "file", path)
	}

	return deps, nil
}

// parseRequirementLine classifies a single non-option line: a PEP 508
// requirement, a direct URL, or a local archive path.
func parseRequirementLine(line string) (domain.Dependency, error) {
	dep, err := ParseRequirement(line)
	if err == nil {
		return dep, nil
	}

	if hasURLScheme(line) {
		return domain.Dependency{Kind: domain.DependencyURL, Raw: line}, nil
	}
	if looksLikePath(line) {
		return domain.Dependency{Kind: domain.DependencyPath, Raw: line}, nil
	}

	return domain.Dependency{}, err
}

func hasURLScheme(line string) bool {
	for _, scheme := range []string{"http:", "https:", "ftp:", "file:"} {
		if strings.HasPrefix(line, scheme) {
			return true
		}
	}
	return false
}

func looksLikePath(line string) bool {
	if strings.HasPrefix(line, "/") || strings.HasPrefix(line, ".") {
		return true
	}
	for _, suffix := range archiveSuffixes {
		if strings.HasSuffix(line, suffix) {
			return true
		}
	}
	return false
}

// stripComment trims a line and removes a trailing comment. A "#" only starts
// a comment at the beginning of the line or after whitespace, so URL
// fragments survive.
func stripComment(line string) string {
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, "#") {
		return ""
	}
	for i := 1; i < len(line); i++ {
		if line[i] == '#' && (line[i-1] == ' ' || line[i-1] == '\t') {
			return strings.TrimSpace(line[:i])
		}
	}
	return line
}
