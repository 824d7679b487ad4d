package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/multimediallc/aoc-2023/internal/app"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		name        string
		format      string
		expected    OutputFormat
		expectError bool
	}{
		{name: "default format", format: "default", expected: FormatDefault},
		{name: "one-line format", format: "one-line", expected: FormatOneLine},
		{name: "json format", format: "json", expected: FormatJSON},
		{name: "yaml format", format: "yaml", expected: FormatYAML},
		{name: "invalid format", format: "xml", expectError: true},
		{name: "empty format", format: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validateFormat(tt.format)
			if tt.expectError {
				if err == nil {
					t.Errorf("validateFormat(%q) expected error, got nil", tt.format)
				}
				return
			}
			if err != nil {
				t.Errorf("validateFormat(%q) unexpected error: %v", tt.format, err)
				return
			}
			if got != tt.expected {
				t.Errorf("validateFormat(%q) = %v, want %v", tt.format, got, tt.expected)
			}
		})
	}
}

var sampleOutput = &app.OutputData{
	Results: []app.Result{
		{Day: 5, Title: "If You Give A Seed A Fertilizer", Part: 1, Label: "Lowest location number", Answer: 35},
		{Day: 5, Title: "If You Give A Seed A Fertilizer", Part: 2, Label: "Lowest location number", Answer: 46},
		{Day: 9, Title: "Mirage Maintenance", Part: 1, Label: "Sum of extrapolated values", Answer: 114},
	},
	Skipped: []int{1},
}

func TestWriteOutputText(t *testing.T) {
	tests := []struct {
		name     string
		format   OutputFormat
		out      *app.OutputData
		expected string
	}{
		{
			name:   "single day has no header",
			format: FormatDefault,
			out:    &app.OutputData{Results: sampleOutput.Results[:2]},
			expected: "Part 1: Lowest location number = 35\n" +
				"Part 2: Lowest location number = 46\n",
		},
		{
			name:   "several days get headers",
			format: FormatDefault,
			out:    sampleOutput,
			expected: "--- Day 5: If You Give A Seed A Fertilizer ---\n" +
				"Part 1: Lowest location number = 35\n" +
				"Part 2: Lowest location number = 46\n" +
				"\n" +
				"--- Day 9: Mirage Maintenance ---\n" +
				"Part 1: Sum of extrapolated values = 114\n",
		},
		{
			name:     "one-line",
			format:   FormatOneLine,
			out:      sampleOutput,
			expected: "5.1 35\n5.2 46\n9.1 114\n",
		},
		{
			name:     "no results",
			format:   FormatDefault,
			out:      &app.OutputData{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := writeOutput(&buf, tt.out, tt.format); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if buf.String() != tt.expected {
				t.Errorf("got:\n%s\nwant:\n%s", buf.String(), tt.expected)
			}
		})
	}
}

func TestWriteOutputStructured(t *testing.T) {
	var jsonBuf bytes.Buffer
	if err := writeOutput(&jsonBuf, sampleOutput, FormatJSON); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var fromJSON app.OutputData
	if err := json.Unmarshal(jsonBuf.Bytes(), &fromJSON); err != nil {
		t.Fatalf("invalid json output: %v", err)
	}
	if len(fromJSON.Results) != 3 || fromJSON.Results[2].Answer != 114 || fromJSON.Skipped[0] != 1 {
		t.Errorf("unexpected json output: %s", jsonBuf.String())
	}

	var yamlBuf bytes.Buffer
	if err := writeOutput(&yamlBuf, sampleOutput, FormatYAML); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var fromYAML app.OutputData
	if err := yaml.Unmarshal(yamlBuf.Bytes(), &fromYAML); err != nil {
		t.Fatalf("invalid yaml output: %v", err)
	}
	if len(fromYAML.Results) != 3 || fromYAML.Results[0].Label != "Lowest location number" {
		t.Errorf("unexpected yaml output: %s", yamlBuf.String())
	}
}
