package app

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/readnum/internal/errors"
)

func newTestApp(t *testing.T, args ...string) (*Application, *bytes.Buffer) {
	t.Helper()
	errBuf := &bytes.Buffer{}
	a, err := New(append([]string{"readnum"}, args...), errBuf)
	if err != nil {
		t.Fatalf("New returned error: %v\nstderr: %s", err, errBuf.String())
	}
	return a, errBuf
}

func TestNew_ParsesArguments(t *testing.T) {
	a, _ := newTestApp(t, "-precision", "2", "-s", "1234567")

	if a.Config.Precision != 2 {
		t.Errorf("expected precision 2, got %d", a.Config.Precision)
	}
	if !a.Config.Shortform {
		t.Error("expected shortform to be enabled")
	}
	if len(a.Config.Values) != 1 || a.Config.Values[0] != "1234567" {
		t.Errorf("expected positional value %q, got %v", "1234567", a.Config.Values)
	}
}

func TestNew_HelpFlag(t *testing.T) {
	errBuf := &bytes.Buffer{}
	_, err := New([]string{"readnum", "--help"}, errBuf)
	if err == nil {
		t.Fatal("expected error for --help")
	}
	if !IsHelpError(err) {
		t.Errorf("expected help error, got %v", err)
	}
	if !strings.Contains(errBuf.String(), "Usage:") {
		t.Error("expected usage text on the error writer")
	}
}

func TestIsHelpError(t *testing.T) {
	if !IsHelpError(flag.ErrHelp) {
		t.Error("flag.ErrHelp should be a help error")
	}
	if IsHelpError(fmt.Errorf("boom")) {
		t.Error("arbitrary errors are not help errors")
	}
	if IsHelpError(nil) {
		t.Error("nil is not a help error")
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	errBuf := &bytes.Buffer{}
	_, err := New([]string{"readnum", "-precision", "2", "-sig-figs", "3"}, errBuf)
	if err == nil {
		t.Fatal("expected error for mutually exclusive precision flags")
	}
}

func TestRun_FormatsPositionalValues(t *testing.T) {
	a, errBuf := newTestApp(t, "-q", "1234567", "0.5")

	out := &bytes.Buffer{}
	code := a.Run(context.Background(), out)

	if code != apperrors.ExitSuccess {
		t.Fatalf("expected exit %d, got %d\nstderr: %s", apperrors.ExitSuccess, code, errBuf.String())
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 output lines, got %d:\n%s", len(lines), out.String())
	}
	if lines[0] != "1,234,567" {
		t.Errorf("line 1 = %q; want %q", lines[0], "1,234,567")
	}
	if lines[1] != "0.5" {
		t.Errorf("line 2 = %q; want %q", lines[1], "0.5")
	}
}

func TestRun_ShortformFlag(t *testing.T) {
	a, _ := newTestApp(t, "-q", "-s", "12345678")

	out := &bytes.Buffer{}
	if code := a.Run(context.Background(), out); code != apperrors.ExitSuccess {
		t.Fatalf("expected success, got exit %d", code)
	}
	if got := strings.TrimSpace(out.String()); got != "12M" {
		t.Errorf("output = %q; want %q", got, "12M")
	}
}

func TestRun_InvalidValueExitCode(t *testing.T) {
	a, _ := newTestApp(t, "-q", "not-a-number")

	out := &bytes.Buffer{}
	if code := a.Run(context.Background(), out); code != apperrors.ExitErrorInput {
		t.Errorf("expected exit %d for invalid value, got %d", apperrors.ExitErrorInput, code)
	}
}

func TestRun_InputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values.txt")
	content := "# comment\n1000\n\n2500.5\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	a, _ := newTestApp(t, "-q", "-i", path)
	out := &bytes.Buffer{}
	if code := a.Run(context.Background(), out); code != apperrors.ExitSuccess {
		t.Fatalf("expected success, got exit %d", code)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 output lines, got %d:\n%s", len(lines), out.String())
	}
	if lines[0] != "1,000" || lines[1] != "2,500.5" {
		t.Errorf("unexpected output lines: %v", lines)
	}
}

func TestRun_MissingInputFile(t *testing.T) {
	a, errBuf := newTestApp(t, "-i", filepath.Join(t.TempDir(), "absent.txt"))

	out := &bytes.Buffer{}
	if code := a.Run(context.Background(), out); code != apperrors.ExitErrorInput {
		t.Errorf("expected exit %d, got %d", apperrors.ExitErrorInput, code)
	}
	if !strings.Contains(errBuf.String(), "Error:") {
		t.Error("expected error message on stderr")
	}
}

func TestRun_OutputFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out", "formatted.txt")
	a, _ := newTestApp(t, "-q", "-o", outPath, "1234567")

	out := &bytes.Buffer{}
	if code := a.Run(context.Background(), out); code != apperrors.ExitSuccess {
		t.Fatalf("expected success, got exit %d", code)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("expected output file to exist: %v", err)
	}
	if !strings.Contains(string(data), "1,234,567") {
		t.Errorf("output file missing formatted value:\n%s", data)
	}
}

func TestRun_Timeout(t *testing.T) {
	a, _ := newTestApp(t, "-q", "1")
	a.Config.Timeout = time.Nanosecond

	// Let the deadline pass before the batch starts.
	time.Sleep(time.Millisecond)

	out := &bytes.Buffer{}
	code := a.Run(context.Background(), out)
	if code != apperrors.ExitErrorTimeout && code != apperrors.ExitSuccess {
		t.Errorf("expected timeout or success exit, got %d", code)
	}
}

func TestRun_Completion(t *testing.T) {
	a, _ := newTestApp(t, "-completion", "bash")

	out := &bytes.Buffer{}
	if code := a.Run(context.Background(), out); code != apperrors.ExitSuccess {
		t.Fatalf("expected success, got exit %d", code)
	}
	if !strings.Contains(out.String(), "_readnum_completions") {
		t.Error("expected bash completion function in output")
	}
}

func TestRun_VerboseShowsRawValues(t *testing.T) {
	a, _ := newTestApp(t, "-v", "1234567")

	out := &bytes.Buffer{}
	if code := a.Run(context.Background(), out); code != apperrors.ExitSuccess {
		t.Fatalf("expected success, got exit %d", code)
	}
	if !strings.Contains(out.String(), "=>") {
		t.Errorf("expected verbose raw => formatted lines, got:\n%s", out.String())
	}
}
