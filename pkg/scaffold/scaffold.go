package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"path"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"text/template"

	"github.com/spf13/afero"
	"golang.org/x/mod/modfile"

	"github.com/fluxehub/AdventOfCode2025/pkg/errors"
	"github.com/fluxehub/AdventOfCode2025/pkg/logging"
)

const (
	// DaysDir is the directory holding day packages, relative to the root
	DaysDir = "days"

	// BootstrapFile is the generated file importing every day package
	BootstrapFile = "days.go"

	// MaxDay is the last puzzle day of an event
	MaxDay = 25
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var (
	templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))
	dayDir    = regexp.MustCompile(`^day(\d+)$`)
)

// ParseDay accepts "7", "day7" or "day07" and returns the day number
func ParseDay(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(strings.ToLower(s), "day"))
	if err != nil || n < 1 || n > MaxDay {
		return 0, errors.Newf(errors.ErrInvalidInput, "invalid day %q", s)
	}
	return n, nil
}

// Name returns the package name of a day
func Name(day int) string {
	return fmt.Sprintf("day%02d", day)
}

// NewDay creates days/dayNN/dayNN.go under root and regenerates the
// bootstrap file. It returns the path of the new file.
func NewDay(fs afero.Fs, root string, day int) (string, error) {
	log := logging.GetLogger("scaffold")
	name := Name(day)
	target := filepath.Join(root, DaysDir, name, name+".go")

	exists, err := afero.Exists(fs, target)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInternal, "failed to check %s", target)
	}
	if exists {
		return "", errors.Newf(errors.ErrAlreadyExists, "%s already exists", target).
			WithDetail("path", target)
	}

	src, err := render("day.go.tmpl", map[string]interface{}{"Name": name, "Day": day})
	if err != nil {
		return "", err
	}
	if err := fs.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrInternal, "failed to create %s", filepath.Dir(target))
	}
	if err := afero.WriteFile(fs, target, src, 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrInternal, "failed to write %s", target)
	}
	log.Info().Str("path", target).Msg("Created day")

	if _, err := Generate(fs, root); err != nil {
		return "", err
	}
	return target, nil
}

// Generate writes days/days.go with a blank import of every day package
// found under root. It returns the imported day numbers in order.
func Generate(fs afero.Fs, root string) ([]int, error) {
	modulePath, err := ModulePath(fs, root)
	if err != nil {
		return nil, err
	}

	days, err := ScanDays(fs, root)
	if err != nil {
		return nil, err
	}

	imports := make([]string, 0, len(days))
	for _, day := range days {
		imports = append(imports, path.Join(modulePath, DaysDir, Name(day)))
	}

	src, err := render("days.go.tmpl", map[string]interface{}{"Imports": imports})
	if err != nil {
		return nil, err
	}

	target := filepath.Join(root, DaysDir, BootstrapFile)
	if err := fs.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "failed to create %s", filepath.Dir(target))
	}
	if err := afero.WriteFile(fs, target, src, 0644); err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "failed to write %s", target)
	}

	log := logging.GetLogger("scaffold")
	log.Debug().
		Str("path", target).
		Ints("days", days).
		Msg("Generated bootstrap file")
	return days, nil
}

// ScanDays lists the day numbers of the dayNN directories under root/days
// that contain at least one Go file.
func ScanDays(fs afero.Fs, root string) ([]int, error) {
	dir := filepath.Join(root, DaysDir)
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrNotFound, "failed to read %s", dir)
	}

	var days []int
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		m := dayDir.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		goFiles, err := afero.Glob(fs, filepath.Join(dir, entry.Name(), "*.go"))
		if err != nil || len(goFiles) == 0 {
			continue
		}
		n, _ := strconv.Atoi(m[1])
		days = append(days, n)
	}
	slices.Sort(days)
	return days, nil
}

// ModulePath reads the module path from root/go.mod
func ModulePath(fs afero.Fs, root string) (string, error) {
	gomod := filepath.Join(root, "go.mod")
	data, err := afero.ReadFile(fs, gomod)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrNotFound, "failed to read %s", gomod)
	}
	modulePath := modfile.ModulePath(data)
	if modulePath == "" {
		return "", errors.Newf(errors.ErrInvalidInput, "%s has no module directive", gomod)
	}
	return modulePath, nil
}

func render(name string, data interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "failed to render %s", name)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "generated %s does not parse", name)
	}
	return src, nil
}
