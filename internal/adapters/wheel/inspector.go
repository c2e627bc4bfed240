package wheel

import (
	"archive/zip"
	"bufio"
	"errors"
	"io"
	"net/textproto"
	"sort"
	"strings"

	"github.com/zbowling/depwise/internal/adapters/envfile"
	"github.com/zbowling/depwise/internal/core/domain"
	"github.com/zbowling/depwise/internal/core/ports"
	"go.trai.ch/zerr"
)

// Inspector implements ports.PackageInspector for wheel archives. A wheel
// is a zip file carrying a <name>-<version>.dist-info directory with the
// core metadata next to the packaged sources.
type Inspector struct {
	scanner ports.ImportScanner
}

// NewInspector creates a new Inspector.
func NewInspector(scanner ports.ImportScanner) *Inspector {
	return &Inspector{scanner: scanner}
}

// Inspect reads name, version, Requires-Dist declarations, top-level
// names and the imports of every bundled python source.
func (in *Inspector) Inspect(path string) (*domain.PackageInfo, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, errors.Join(zerr.With(domain.ErrPackageOpenFailed, "file", path), err)
	}
	defer func() { _ = r.Close() }()

	info := &domain.PackageInfo{}
	metadataFound := false

	for _, f := range r.File {
		dir, base := splitEntry(f.Name)

		switch {
		case strings.HasSuffix(dir, domain.DistInfoSuffix) && base == domain.MetadataFileName:
			if err := in.readMetadata(f, info); err != nil {
				return nil, err
			}
			metadataFound = true

		case strings.HasSuffix(dir, domain.DistInfoSuffix) && base == domain.TopLevelFileName:
			if err := in.readTopLevel(f, info); err != nil {
				return nil, err
			}

		case strings.HasSuffix(base, domain.PythonSourceSuffix) && !strings.Contains(f.Name, domain.DistInfoSuffix):
			src, err := readEntry(f)
			if err != nil {
				return nil, errors.Join(zerr.With(domain.ErrPackageOpenFailed, "entry", f.Name), err)
			}
			info.Imports = append(info.Imports, in.scanner.ScanSource(f.Name, src)...)
		}
	}

	if !metadataFound {
		return nil, zerr.With(domain.ErrPackageMetadataMissing, "file", path)
	}

	if len(info.TopLevel) == 0 {
		info.TopLevel = bundledTopLevel(r.File)
	}

	sort.SliceStable(info.Imports, func(i, j int) bool {
		if info.Imports[i].File != info.Imports[j].File {
			return info.Imports[i].File < info.Imports[j].File
		}
		return info.Imports[i].Line < info.Imports[j].Line
	})

	return info, nil
}

// readMetadata parses the RFC 822 style core metadata: Name, Version and
// the repeated Requires-Dist fields.
func (in *Inspector) readMetadata(f *zip.File, info *domain.PackageInfo) error {
	rc, err := f.Open()
	if err != nil {
		return errors.Join(zerr.With(domain.ErrPackageOpenFailed, "entry", f.Name), err)
	}
	defer func() { _ = rc.Close() }()

	header, err := textproto.NewReader(bufio.NewReader(rc)).ReadMIMEHeader()
	if err != nil && !errors.Is(err, io.EOF) {
		return errors.Join(zerr.With(domain.ErrPackageMetadataMissing, "entry", f.Name), err)
	}

	info.Name = header.Get("Name")
	info.Version = header.Get("Version")

	for _, raw := range header.Values("Requires-Dist") {
		dep, err := envfile.ParseRequirement(raw)
		if err != nil {
			return err
		}
		info.Requires = append(info.Requires, dep)
	}
	return nil
}

func (in *Inspector) readTopLevel(f *zip.File, info *domain.PackageInfo) error {
	data, err := readEntry(f)
	if err != nil {
		return errors.Join(zerr.With(domain.ErrPackageOpenFailed, "entry", f.Name), err)
	}
	for _, line := range strings.Split(string(data), "\n") {
		if name := strings.TrimSpace(line); name != "" {
			info.TopLevel = append(info.TopLevel, name)
		}
	}
	return nil
}

// bundledTopLevel derives top-level names from the archive layout when the
// wheel ships no top_level.txt: root packages with an importable marker
// and root-level modules.
func bundledTopLevel(files []*zip.File) []string {
	seen := map[string]struct{}{}
	var names []string
	add := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	for _, f := range files {
		if strings.Contains(f.Name, domain.DistInfoSuffix) {
			continue
		}
		parts := strings.Split(f.Name, "/")
		if len(parts) == 1 && strings.HasSuffix(parts[0], domain.PythonSourceSuffix) {
			add(strings.TrimSuffix(parts[0], domain.PythonSourceSuffix))
		}
		if len(parts) == 2 && parts[1] == domain.PackageMarkerName {
			add(parts[0])
		}
	}

	sort.Strings(names)
	return names
}

func splitEntry(name string) (dir, base string) {
	idx := strings.LastIndex(name, "/")
	if idx < 0 {
		return "", name
	}
	return name[:idx], name[idx+1:]
}

func readEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return io.ReadAll(rc)
}
