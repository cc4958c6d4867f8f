package gold_test

import (
	"os"
	"testing"

	"github.com/go-faster/jalali/internal/gold"
)

func TestStr(t *testing.T) {
	gold.Str(t, "Hello, world!\n", "hello.txt")
}

func TestMain(m *testing.M) {
	// Explicitly registering flags for golden files.
	gold.Init()

	os.Exit(m.Run())
}
