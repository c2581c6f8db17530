package output

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/rgehrsitz/ley73/internal/domain"
)

// Formatter renders an analysis in one output format
type Formatter interface {
	Name() string
	Format(analysis *domain.Analysis) ([]byte, error)
}

// FormatterFunc adapts a plain function to the Formatter interface
type FormatterFunc struct {
	ID string
	F  func(analysis *domain.Analysis) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

func (f FormatterFunc) Format(analysis *domain.Analysis) ([]byte, error) {
	return f.F(analysis)
}

var formatters = map[string]Formatter{
	"console":      ConsoleVerboseFormatter{},
	"console-lite": ConsoleFormatter{},
	"csv":          CSVSummarizer{},
	"detailed-csv": CSVDetailed{},
	"json":         JSONFormatter{},
	"html":         HTMLFormatter{},
}

var formatAliases = map[string]string{
	"verbose":         "console",
	"console-verbose": "console",
	"lite":            "console-lite",
	"csv-detailed":    "detailed-csv",
}

// GetFormatterByName resolves a formatter by name or alias; nil when unknown
func GetFormatterByName(name string) Formatter {
	if target, ok := formatAliases[name]; ok {
		name = target
	}
	return formatters[name]
}

// AvailableFormatterNames lists the registered formatter names in sorted order
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(formatters))
	for name := range formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases lists the accepted aliases in sorted order
func AvailableFormatAliases() []string {
	aliases := make([]string, 0, len(formatAliases))
	for alias := range formatAliases {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	return aliases
}

// WriteFormatted renders the analysis and writes it to a timestamped file in
// the working directory, returning the file name.
func WriteFormatted(f Formatter, analysis *domain.Analysis, ext string) (string, error) {
	data, err := f.Format(analysis)
	if err != nil {
		return "", fmt.Errorf("format %s: %w", f.Name(), err)
	}
	filename := fmt.Sprintf("pension_report_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", filename, err)
	}
	return filename, nil
}
