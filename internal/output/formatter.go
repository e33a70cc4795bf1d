package output

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
)

// Formatter renders a weekly report into bytes.
type Formatter interface {
	Name() string
	Format(report Report) ([]byte, error)
}

// FormatterFunc adapts a plain function to Formatter.
type FormatterFunc struct {
	ID string
	F  func(report Report) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

func (f FormatterFunc) Format(report Report) ([]byte, error) { return f.F(report) }

var formatters = map[string]Formatter{
	"simple":   SimpleFormatter,
	"detailed": DetailedFormatter,
	"csv":      CSVFormatter{},
	"json":     JSONFormatter{},
	"html":     HTMLFormatter{},
}

var formatAliases = map[string]string{
	"text":    "simple",
	"share":   "simple",
	"summary": "detailed",
	"verbose": "detailed",
}

// NormalizeFormatName lowercases a format name and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := formatAliases[n]; ok {
		return canonical
	}
	return n
}

// GetFormatterByName returns the formatter registered under name or one of its
// aliases, or nil.
func GetFormatterByName(name string) Formatter {
	return formatters[NormalizeFormatName(name)]
}

// AvailableFormatterNames returns the canonical formatter names, sorted.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(formatters))
	for n := range formatters {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the accepted aliases, sorted.
func AvailableFormatAliases() []string {
	aliases := make([]string, 0, len(formatAliases))
	for a := range formatAliases {
		aliases = append(aliases, a)
	}
	sort.Strings(aliases)
	return aliases
}

// WriteFormatted renders the report and writes it to a file in the current
// directory named after report.Now, returning the file name.
func WriteFormatted(f Formatter, report Report, ext string) (string, error) {
	data, err := f.Format(report)
	if err != nil {
		return "", err
	}
	stamp := report.Now
	if stamp.IsZero() {
		stamp = time.Now()
	}
	filename := fmt.Sprintf("shiftpay_report_%s.%s", stamp.Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return filename, nil
}
