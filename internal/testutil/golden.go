// Package testutil provides shared test helpers for golden file testing.
package testutil

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"
)

// Update is a flag that, when set, regenerates golden files from current output.
// Usage: go test ./... -update
var Update = flag.Bool("update", false, "update golden files")

// Golden file names inside an archive.
const (
	InputFile = "input.cs"
	WantFile  = "want.cs"
)

// TransformFunc rewrites input. header holds the "key: value" lines of the
// archive comment.
type TransformFunc func(t *testing.T, header map[string]string, input string) string

// RunGolden runs one txtar golden case: it applies fn to the input.cs file
// and compares the result with want.cs.
func RunGolden(t *testing.T, path string, fn TransformFunc) {
	t.Helper()

	archive, err := txtar.ParseFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}

	input, ok := file(archive, InputFile)
	if !ok {
		t.Fatalf("%s has no %s section", path, InputFile)
	}

	actual := fn(t, Header(string(archive.Comment)), input)

	if *Update {
		setFile(archive, WantFile, actual)
		if err := os.WriteFile(path, txtar.Format(archive), 0o644); err != nil {
			t.Fatalf("failed to update golden file %s: %v", path, err)
		}
		t.Logf("updated golden file: %s", path)
		return
	}

	expected, ok := file(archive, WantFile)
	if !ok {
		t.Fatalf("%s has no %s section; run with -update", path, WantFile)
	}
	if actual != expected {
		t.Errorf("output mismatch for %s:\n--- expected\n%q\n--- actual\n%q", path, expected, actual)
	}
}

// RunGoldenDir runs RunGolden as a subtest for every .txtar file in dir.
func RunGoldenDir(t *testing.T, dir string, fn TransformFunc) {
	t.Helper()

	paths, err := filepath.Glob(filepath.Join(dir, "*.txtar"))
	if err != nil {
		t.Fatalf("failed to list %s: %v", dir, err)
	}
	if len(paths) == 0 {
		t.Fatalf("no golden files in %s", dir)
	}

	for _, path := range paths {
		t.Run(strings.TrimSuffix(filepath.Base(path), ".txtar"), func(t *testing.T) {
			RunGolden(t, path, fn)
		})
	}
}

// Header parses "key: value" lines. Blank lines and lines starting with #
// are skipped.
func Header(comment string) map[string]string {
	header := make(map[string]string)
	for _, line := range strings.Split(comment, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, _ := strings.Cut(line, ":")
		header[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return header
}

func file(archive *txtar.Archive, name string) (string, bool) {
	for _, f := range archive.Files {
		if f.Name == name {
			return string(f.Data), true
		}
	}
	return "", false
}

func setFile(archive *txtar.Archive, name, data string) {
	for i := range archive.Files {
		if archive.Files[i].Name == name {
			archive.Files[i].Data = []byte(data)
			return
		}
	}
	archive.Files = append(archive.Files, txtar.File{Name: name, Data: []byte(data)})
}
