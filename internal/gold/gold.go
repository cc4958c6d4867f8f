// Package gold implements golden files.
package gold

import (
	"bytes"
	"flag"
	"os"
	"path"
	"path/filepath"
	"testing"
)

const defaultDir = "_golden"

// Update reports whether golden files update is requested.
//
// Call Init() in TestMain to propagate.
var Update bool

// Init should be called in TestMain.
func Init() {
	flag.BoolVar(&Update, "update", false, "update golden files")
}

// Path returns path to golden file.
func Path(elems ...string) string {
	return filepath.Join(
		append([]string{defaultDir}, elems...)...,
	)
}

// ReadFile reads golden file.
func ReadFile(t testing.TB, elems ...string) []byte {
	t.Helper()

	p := Path(elems...)
	data, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("golden file %s: %+v", path.Join(elems...), err)
	}

	return data
}

// Str checks s against the golden file, updating it when requested.
func Str(t testing.TB, s string, elems ...string) {
	t.Helper()

	if Update {
		p := Path(elems...)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatalf("golden dir: %+v", err)
		}
		if err := os.WriteFile(p, []byte(s), 0o644); err != nil {
			t.Fatalf("golden write: %+v", err)
		}
	}

	expected := ReadFile(t, elems...)
	if !bytes.Equal(expected, []byte(s)) {
		t.Errorf("golden file %s mismatch:\nwant:\n%s\ngot:\n%s",
			path.Join(elems...), expected, s,
		)
	}
}
