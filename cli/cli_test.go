package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"

	"github.com/ardnew/calc/cli/cmd"
)

func TestMain(m *testing.M) {
	// Keep the user's configuration out of the tests.
	dir, err := os.MkdirTemp("", "calc-cli-test-*")
	if err != nil {
		panic(err)
	}

	os.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	os.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	os.Setenv("HOME", dir)

	code := m.Run()

	os.RemoveAll(dir)
	os.Exit(code)
}

// execute runs the CLI with args and returns what it wrote to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	exit := func(code int) { t.Fatalf("unexpected exit(%d): %s", code, stderr.String()) }

	err := run(t.Context(), exit, []kong.Option{kong.Writers(&stdout, &stderr)}, args...)

	return stdout.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestRun_Eval(t *testing.T) {
	out, err := execute(t, "eval", "x = 2 + 3", "x * 4", "y + 1", "a = b = 1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := "5.0\n20.0\n1.0\nCHYBA\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestRun_DefaultCommandReadsSource(t *testing.T) {
	path := writeFile(t, "input.txt", "1 + 2 * 3\r\n(1 + 2\n(1 + 2) * 3")

	out, err := execute(t, "--source", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := "7.0\nCHYBA\n9.0\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestRun_SourcesShareEnvironment(t *testing.T) {
	first := writeFile(t, "first.txt", "r = 3\n")
	second := writeFile(t, "second.txt", "r * r\n")

	out, err := execute(t, "run", "-s", first, "-s", second, "-s", first)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := "3.0\n9.0\n"; out != want {
		t.Errorf("output = %q, want %q (duplicate source must be read once)", out, want)
	}
}

func TestRun_Halt(t *testing.T) {
	path := writeFile(t, "input.txt", "1\n1 +\n2\n")

	out, err := execute(t, "run", "--halt", "--source", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := "1.0\nCHYBA\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestRun_Init(t *testing.T) {
	if _, err := execute(t, "--log-format", "json", "init", "--force"); err != nil {
		t.Fatalf("init: %v", err)
	}

	buf, err := os.ReadFile(configPath(baseConfig))
	if err != nil {
		t.Fatalf("config not written: %v", err)
	}

	for _, want := range []string{"log-level: warn", "log-format: json"} {
		if !strings.Contains(string(buf), want) {
			t.Errorf("config missing %q:\n%s", want, buf)
		}
	}

	_, err = execute(t, "init")
	if !errors.Is(err, cmd.ErrFileExists) {
		t.Errorf("second init error = %v, want %v", err, cmd.ErrFileExists)
	}

	// The written file is read back as configuration.
	out, err := execute(t, "eval", "6 / 4")
	if err != nil {
		t.Fatalf("eval with config: %v", err)
	}
	if out != "1.5\n" {
		t.Errorf("output = %q", out)
	}

	if err := os.Remove(configPath(baseConfig)); err != nil {
		t.Fatal(err)
	}
}
