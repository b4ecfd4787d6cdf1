package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/agbru/readnum/internal/ui"
)

func TestFormatResultLine(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		raw       string
		formatted string
		verbose   bool
		expected  string
	}{
		{"plain", "1234567", "1,234,567", false, "1,234,567"},
		{"verbose echoes raw input", "1234567", "1,234,567", true, "1234567 => 1,234,567"},
		{"verbose shortform", "12345.6", "12.346k", true, "12345.6 => 12.346k"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := FormatResultLine(tt.raw, tt.formatted, tt.verbose)
			if got != tt.expected {
				t.Errorf("FormatResultLine(%q, %q, %v) = %q; want %q",
					tt.raw, tt.formatted, tt.verbose, got, tt.expected)
			}
		})
	}
}

func TestDisplayResult(t *testing.T) {
	ui.InitTheme(true)

	tests := []struct {
		name     string
		config   OutputConfig
		contains []string
		excludes []string
	}{
		{
			name:     "normal mode",
			config:   OutputConfig{},
			contains: []string{"1,234,567"},
			excludes: []string{"=>"},
		},
		{
			name:     "verbose mode",
			config:   OutputConfig{Verbose: true},
			contains: []string{"1234567", "=>", "1,234,567"},
		},
		{
			name:     "quiet mode",
			config:   OutputConfig{Quiet: true, Verbose: true},
			contains: []string{"1,234,567"},
			excludes: []string{"=>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			DisplayResult(&buf, "1234567", "1,234,567", tt.config)
			output := buf.String()
			for _, s := range tt.contains {
				if !strings.Contains(output, s) {
					t.Errorf("Expected output to contain %q, got:\n%s", s, output)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(output, s) {
					t.Errorf("Expected output to not contain %q, got:\n%s", s, output)
				}
			}
		})
	}
}

func TestWriteResultsToFile(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()

	summary := RunSummary{Total: 2, Failed: 0, Duration: 100 * time.Millisecond}
	lines := []string{"1,234,567", "12.3M"}

	testCases := []struct {
		name       string
		outputFile string
		checkFunc  func(t *testing.T, filePath string)
	}{
		{
			name:       "Write results with header",
			outputFile: filepath.Join(tmpDir, "results.txt"),
			checkFunc: func(t *testing.T, filePath string) {
				content, err := os.ReadFile(filePath)
				if err != nil {
					t.Fatalf("Failed to read output file: %v", err)
				}
				contentStr := string(content)
				for _, want := range []string{"# Formatted Values", "# Values: 2", "# Failed: 0", "1,234,567", "12.3M"} {
					if !strings.Contains(contentStr, want) {
						t.Errorf("File should contain %q, got:\n%s", want, contentStr)
					}
				}
			},
		},
		{
			name:       "Empty output file (no write)",
			outputFile: "",
			checkFunc:  nil, // No file should be created
		},
		{
			name:       "Create nested directory",
			outputFile: filepath.Join(tmpDir, "nested", "dir", "results.txt"),
			checkFunc: func(t *testing.T, filePath string) {
				if _, err := os.Stat(filePath); err != nil {
					t.Errorf("File should exist in nested directory: %v", err)
				}
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			config := OutputConfig{OutputFile: tc.outputFile}

			err := WriteResultsToFile(lines, summary, config)
			if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
			if tc.outputFile != "" && tc.checkFunc != nil {
				tc.checkFunc(t, tc.outputFile)
			}
		})
	}
}

func TestDisplayRunSummary(t *testing.T) {
	ui.InitTheme(true)

	t.Run("clean run", func(t *testing.T) {
		var buf bytes.Buffer
		DisplayRunSummary(&buf, RunSummary{Total: 5, Failed: 0, Duration: 2 * time.Millisecond})
		output := buf.String()
		for _, want := range []string{"Run summary", "5", "0", "2ms"} {
			if !strings.Contains(output, want) {
				t.Errorf("Expected summary to contain %q, got:\n%s", want, output)
			}
		}
	})

	t.Run("run with failures", func(t *testing.T) {
		var buf bytes.Buffer
		DisplayRunSummary(&buf, RunSummary{Total: 5, Failed: 2, Duration: time.Second})
		if !strings.Contains(buf.String(), "2") {
			t.Errorf("Expected summary to report failures, got:\n%s", buf.String())
		}
	})
}

func TestPadRight(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input    string
		length   int
		expected string
	}{
		{"ab", 3, "ab   "},
		{"ab", 0, "ab"},
		{"ab", -1, "ab"},
	}
	for _, tt := range tests {
		if got := padRight(tt.input, tt.length); got != tt.expected {
			t.Errorf("padRight(%q, %d) = %q; want %q", tt.input, tt.length, got, tt.expected)
		}
	}
}
