package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/multimediallc/aoc-2023/internal/app"
)

type OutputFormat string

const (
	FormatDefault OutputFormat = "default"
	FormatOneLine OutputFormat = "one-line"
	FormatJSON    OutputFormat = "json"
	FormatYAML    OutputFormat = "yaml"
)

var allowedFormats = []string{string(FormatDefault), string(FormatOneLine), string(FormatJSON), string(FormatYAML)}

func validateFormat(format string) (OutputFormat, error) {
	if !slices.Contains(allowedFormats, format) {
		return "", fmt.Errorf("invalid format %s. Must be one of %s", format, strings.Join(allowedFormats, ", "))
	}
	return OutputFormat(format), nil
}

func writeOutput(w io.Writer, out *app.OutputData, format OutputFormat) error {
	switch format {
	case FormatJSON:
		jsonBytes, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(jsonBytes))
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	case FormatOneLine:
		for _, r := range out.Results {
			if _, err := fmt.Fprintf(w, "%d.%d %d\n", r.Day, r.Part, r.Answer); err != nil {
				return err
			}
		}
		return nil
	default:
		printResults(w, out.Results)
		return nil
	}
}

// printResults prints "Part N: <label> = <answer>", with a day header when more than one day is shown
func printResults(w io.Writer, results []app.Result) {
	multiDay := len(results) > 0 && slices.ContainsFunc(results, func(r app.Result) bool {
		return r.Day != results[0].Day
	})
	lastDay := 0
	for _, r := range results {
		if multiDay && r.Day != lastDay {
			if lastDay != 0 {
				_, _ = fmt.Fprintln(w)
			}
			_, _ = fmt.Fprintf(w, "--- Day %d: %s ---\n", r.Day, r.Title)
			lastDay = r.Day
		}
		_, _ = fmt.Fprintf(w, "Part %d: %s = %d\n", r.Part, r.Label, r.Answer)
	}
}
