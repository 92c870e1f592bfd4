package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv returns an Environment capturing stdout and stderr.
func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &Environment{Stdout: &stdout, Stderr: &stderr}, &stdout, &stderr
}

func TestRun_Version(t *testing.T) {
	env, stdout, _ := testEnv()

	if code := run([]string{"version"}, env); code != ExitSuccess {
		t.Fatalf("run(version) = %d, want %d", code, ExitSuccess)
	}
	if !strings.Contains(stdout.String(), "md2bgg") {
		t.Errorf("version output = %q, want program name", stdout.String())
	}
}

func TestRun_Help(t *testing.T) {
	env, stdout, _ := testEnv()

	if code := run([]string{"help"}, env); code != ExitSuccess {
		t.Fatalf("run(help) = %d, want %d", code, ExitSuccess)
	}
	if !strings.Contains(stdout.String(), "Usage: md2bgg") {
		t.Errorf("help output = %q, want usage text", stdout.String())
	}
}

func TestRun_NoArgs(t *testing.T) {
	env, _, stderr := testEnv()

	if code := run(nil, env); code != ExitUsage {
		t.Fatalf("run() = %d, want %d", code, ExitUsage)
	}
	if !strings.Contains(stderr.String(), "Usage") {
		t.Errorf("stderr = %q, want usage text", stderr.String())
	}
}

func TestRun_SingleFileToStdout(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "report.md")
	content := "# Report\n\nWe played [Torres](https://boardgamegeek.com/boardgame/88)."
	if err := os.WriteFile(input, []byte(content), 0o600); err != nil {
		t.Fatalf("writing input: %v", err)
	}

	env, stdout, _ := testEnv()
	if code := run([]string{input}, env); code != ExitSuccess {
		t.Fatalf("run() = %d, want %d", code, ExitSuccess)
	}

	expected := "[size=24]Report[/size]\n\nWe played [boardgame=88]Torres[/boardgame].\n"
	if stdout.String() != expected {
		t.Errorf("stdout:\ngot:  %q\nwant: %q", stdout.String(), expected)
	}
}

func TestRun_ExplicitConvertCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "note.md")
	if err := os.WriteFile(input, []byte("*hi*"), 0o600); err != nil {
		t.Fatalf("writing input: %v", err)
	}

	env, stdout, _ := testEnv()
	if code := run([]string{"convert", input}, env); code != ExitSuccess {
		t.Fatalf("run(convert) = %d, want %d", code, ExitSuccess)
	}
	if stdout.String() != "[i]hi[/i]\n" {
		t.Errorf("stdout = %q, want %q", stdout.String(), "[i]hi[/i]\n")
	}
}

func TestRun_ClassicDialectFlag(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "note.md")
	if err := os.WriteFile(input, []byte("~~gone~~"), 0o600); err != nil {
		t.Fatalf("writing input: %v", err)
	}

	env, stdout, _ := testEnv()
	if code := run([]string{input, "--dialect", "classic"}, env); code != ExitSuccess {
		t.Fatalf("run() = %d, want %d", code, ExitSuccess)
	}
	if stdout.String() != "~~gone~~\n" {
		t.Errorf("stdout = %q, want %q", stdout.String(), "~~gone~~\n")
	}
}

func TestRun_InvalidDialect(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "note.md")
	if err := os.WriteFile(input, []byte("hi"), 0o600); err != nil {
		t.Fatalf("writing input: %v", err)
	}

	env, _, stderr := testEnv()
	if code := run([]string{input, "--dialect", "gfm"}, env); code != ExitUsage {
		t.Fatalf("run() = %d, want %d", code, ExitUsage)
	}
	if !strings.Contains(stderr.String(), "invalid dialect") {
		t.Errorf("stderr = %q, want dialect error", stderr.String())
	}
}

func TestRun_UnsupportedHeading(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "note.md")
	if err := os.WriteFile(input, []byte("### deep"), 0o600); err != nil {
		t.Fatalf("writing input: %v", err)
	}

	env, _, stderr := testEnv()
	if code := run([]string{input}, env); code != ExitUsage {
		t.Fatalf("run() = %d, want %d", code, ExitUsage)
	}
	if !strings.Contains(stderr.String(), "hint:") {
		t.Errorf("stderr = %q, want a hint", stderr.String())
	}
}

func TestRun_OutputFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "note.md")
	output := filepath.Join(dir, "note.bgg")
	if err := os.WriteFile(input, []byte("**bold**"), 0o600); err != nil {
		t.Fatalf("writing input: %v", err)
	}

	env, _, stderr := testEnv()
	if code := run([]string{input, "-o", output}, env); code != ExitSuccess {
		t.Fatalf("run() = %d, want %d (stderr: %s)", code, ExitSuccess, stderr.String())
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if string(data) != "[b]bold[/b]\n" {
		t.Errorf("output file = %q, want %q", string(data), "[b]bold[/b]\n")
	}
}

func TestRun_BatchDirectory(t *testing.T) {
	dir := t.TempDir()
	inDir := filepath.Join(dir, "in")
	outDir := filepath.Join(dir, "out")
	if err := os.MkdirAll(inDir, 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for name, content := range map[string]string{
		"a.md": "# A",
		"b.md": "*b*",
	} {
		if err := os.WriteFile(filepath.Join(inDir, name), []byte(content), 0o600); err != nil {
			t.Fatalf("writing input: %v", err)
		}
	}

	env, stdout, stderr := testEnv()
	if code := run([]string{inDir, "-o", outDir, "-w", "2"}, env); code != ExitSuccess {
		t.Fatalf("run() = %d, want %d (stderr: %s)", code, ExitSuccess, stderr.String())
	}

	if !strings.Contains(stdout.String(), "2 succeeded, 0 failed") {
		t.Errorf("stdout = %q, want summary line", stdout.String())
	}

	aData, err := os.ReadFile(filepath.Join(outDir, "a.bgg"))
	if err != nil {
		t.Fatalf("reading a.bgg: %v", err)
	}
	if string(aData) != "[size=24]A[/size]\n" {
		t.Errorf("a.bgg = %q, want %q", string(aData), "[size=24]A[/size]\n")
	}
	bData, err := os.ReadFile(filepath.Join(outDir, "b.bgg"))
	if err != nil {
		t.Fatalf("reading b.bgg: %v", err)
	}
	if string(bData) != "[i]b[/i]\n" {
		t.Errorf("b.bgg = %q, want %q", string(bData), "[i]b[/i]\n")
	}
}

func TestRun_BatchPartialFailure(t *testing.T) {
	dir := t.TempDir()
	inDir := filepath.Join(dir, "in")
	if err := os.MkdirAll(inDir, 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(inDir, "ok.md"), []byte("fine"), 0o600); err != nil {
		t.Fatalf("writing input: %v", err)
	}
	if err := os.WriteFile(filepath.Join(inDir, "bad.md"), []byte("### too deep"), 0o600); err != nil {
		t.Fatalf("writing input: %v", err)
	}

	env, _, stderr := testEnv()
	code := run([]string{inDir, "-o", filepath.Join(dir, "out")}, env)
	if code == ExitSuccess {
		t.Fatal("run() = ExitSuccess, want failure")
	}
	if !strings.Contains(stderr.String(), "FAILED") {
		t.Errorf("stderr = %q, want FAILED line", stderr.String())
	}
}

func TestRun_MultipleFilesNeedDirectory(t *testing.T) {
	dir := t.TempDir()
	inDir := filepath.Join(dir, "in")
	if err := os.MkdirAll(inDir, 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for _, name := range []string{"a.md", "b.md"} {
		if err := os.WriteFile(filepath.Join(inDir, name), []byte("x"), 0o600); err != nil {
			t.Fatalf("writing input: %v", err)
		}
	}

	env, _, _ := testEnv()
	code := run([]string{inDir, "-o", filepath.Join(dir, "single.bgg")}, env)
	if code != ExitUsage {
		t.Fatalf("run() = %d, want %d", code, ExitUsage)
	}
}

func TestRun_ConfigDialect(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "note.md")
	if err := os.WriteFile(input, []byte("~~gone~~"), 0o600); err != nil {
		t.Fatalf("writing input: %v", err)
	}
	configPath := filepath.Join(dir, "bgg.yaml")
	if err := os.WriteFile(configPath, []byte("dialect:\n  name: classic\n"), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	env, stdout, stderr := testEnv()
	if code := run([]string{input, "-c", configPath}, env); code != ExitSuccess {
		t.Fatalf("run() = %d, want %d (stderr: %s)", code, ExitSuccess, stderr.String())
	}
	if stdout.String() != "~~gone~~\n" {
		t.Errorf("stdout = %q, want classic dialect output", stdout.String())
	}
}

func TestRun_MissingInput(t *testing.T) {
	env, _, _ := testEnv()

	code := run([]string{filepath.Join(t.TempDir(), "missing.md")}, env)
	if code != ExitIO && code != ExitGeneral {
		t.Fatalf("run() = %d, want I/O failure", code)
	}
}
