package tempdir

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestWithRemovesDirOnSuccess(t *testing.T) {
	var captured string

	err := With("savant-test-*", func(dir string) error {
		captured = dir

		return os.WriteFile(filepath.Join(dir, "scratch.bin"), []byte("x"), 0o600)
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if _, err := os.Stat(captured); !os.IsNotExist(err) {
		t.Errorf("expected %s to be removed, stat err = %v", captured, err)
	}
}

func TestWithRemovesDirOnError(t *testing.T) {
	sentinel := errors.New("boom")

	var captured string

	err := With("savant-test-*", func(dir string) error {
		captured = dir
		return sentinel
	})

	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got: %v", err)
	}

	if _, err := os.Stat(captured); !os.IsNotExist(err) {
		t.Errorf("expected %s to be removed, stat err = %v", captured, err)
	}
}

func TestWithRemovesDirOnPanic(t *testing.T) {
	var captured string

	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected panic to propagate")
			}
		}()

		_ = With("savant-test-*", func(dir string) error {
			captured = dir
			panic("rasterizer blew up")
		})
	}()

	if _, err := os.Stat(captured); !os.IsNotExist(err) {
		t.Errorf("expected %s to be removed, stat err = %v", captured, err)
	}
}
