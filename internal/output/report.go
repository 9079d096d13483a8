package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/rpgo/patrimoine/internal/domain"
	"gopkg.in/yaml.v3"
)

// GenerateReport renders report with the named formatter into dir and
// returns the written file.
func GenerateReport(report *Report, format, dir string) (string, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return "", fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	return WriteFormatted(f, report, dir, extensionFor(f.Name()))
}

func extensionFor(name string) string {
	switch {
	case strings.HasPrefix(name, "console"):
		return "txt"
	case strings.Contains(name, "csv"):
		return "csv"
	default:
		return name
	}
}

// SaveConfiguration writes a scenario as YAML, in the layout LoadFromFile
// reads.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
