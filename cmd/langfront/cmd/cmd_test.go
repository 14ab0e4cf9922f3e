package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadSourceFromEval(t *testing.T) {
	got, err := readSource("int32 x;", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "int32 x;" {
		t.Errorf("got %q, want %q", got, "int32 x;")
	}
}

func TestReadSourceFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "source.lf")
	if err := os.WriteFile(path, []byte("int32 x;"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	got, err := readSource("", []string{path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "int32 x;" {
		t.Errorf("got %q, want %q", got, "int32 x;")
	}
}

func TestReadSourceMissingFile(t *testing.T) {
	if _, err := readSource("", []string{"/nonexistent/path.lf"}); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestRunLexReportsLexError(t *testing.T) {
	lexEval = "@"
	t.Cleanup(func() { lexEval = "" })

	if err := runLex(lexCmd, nil); err == nil {
		t.Fatal("expected a lex error for an unrecognized character")
	}
}

func TestRunParseReportsParseError(t *testing.T) {
	parseEval = "int32 +;"
	t.Cleanup(func() { parseEval = "" })

	if err := runParse(parseCmd, nil); err == nil {
		t.Fatal("expected a parse error for malformed source")
	}
}

func TestRunParsePrintsReprintedSource(t *testing.T) {
	parseEval = "int32 x = 1;"
	parseDumpAST = false
	t.Cleanup(func() {
		parseEval = ""
	})

	var buf bytes.Buffer
	stdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w
	err := runParse(parseCmd, nil)
	w.Close()
	os.Stdout = stdout
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	buf.ReadFrom(r)

	if !strings.Contains(buf.String(), "int32 x = 1;") {
		t.Errorf("expected output to contain reprinted source, got %q", buf.String())
	}
}
