package cli

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/pflag"
)

type outputFormat string

const (
	outputText outputFormat = "text"
	outputJSON outputFormat = "json"
)

var _ pflag.Value = (*outputFormat)(nil)

func (o *outputFormat) String() string { return string(*o) }

func (o *outputFormat) Set(s string) error {
	switch outputFormat(strings.ToLower(s)) {
	case outputText:
		*o = outputText
	case outputJSON:
		*o = outputJSON
	default:
		return fmt.Errorf("unknown output format %q (want text or json)", s)
	}

	return nil
}

func (o *outputFormat) Type() string { return "format" }

// writeJSON encodes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

// finite returns d as a pointer, or nil for an infinite distance, so JSON
// output can carry null for unreachable vertices.
func finite(d float64) *float64 {
	if math.IsInf(d, 0) {
		return nil
	}

	return &d
}

// formatDistance renders a distance for text output.
func formatDistance(d float64) string {
	if math.IsInf(d, 1) {
		return "unreachable"
	}

	return strconv.FormatFloat(d, 'g', -1, 64)
}

func joinPath(p []string) string {
	return strings.Join(p, " -> ")
}
