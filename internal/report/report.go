// Package report renders skill reports for people rather than services.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github-skill-analyzer/internal/analysis"
)

// Format names an output encoding.
type Format string

const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// ParseFormat validates a user supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatJSON, FormatYAML, FormatMarkdown:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want json, yaml or markdown)", s)
	}
}

// Comparison bundles two reports with their comparison for rendering.
type Comparison struct {
	Primary    *analysis.Result    `json:"primary" yaml:"primary"`
	Other      *analysis.Result    `json:"other" yaml:"other"`
	Comparison analysis.Comparison `json:"comparison" yaml:"comparison"`
}

// Render writes result to w in format.
func Render(w io.Writer, result *analysis.Result, format Format) error {
	switch format {
	case FormatJSON:
		return encodeJSON(w, result)
	case FormatYAML:
		return encodeYAML(w, result)
	case FormatMarkdown:
		return writeMarkdown(w, result)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// RenderComparison writes both reports followed by their comparison.
func RenderComparison(w io.Writer, cmp Comparison, format Format) error {
	switch format {
	case FormatJSON:
		return encodeJSON(w, cmp)
	case FormatYAML:
		return encodeYAML(w, cmp)
	case FormatMarkdown:
		if err := writeMarkdown(w, cmp.Primary); err != nil {
			return err
		}
		if err := writeMarkdown(w, cmp.Other); err != nil {
			return err
		}
		return writeComparisonMarkdown(w, cmp)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
