package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
)

func TestLoadShortImageLeavesRemainderZeroed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "image.bin")
	if err := os.WriteFile(path, []byte{0xA9, 0x05, 0x00}, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	mem, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if mem.Read8(0) != 0xA9 || mem.Read8(1) != 0x05 || mem.Read8(2) != 0x00 {
		t.Fatalf("image bytes not loaded at offset 0")
	}
	if mem.Read8(3) != 0 {
		t.Errorf("byte past the short image = 0x%02X, want 0", mem.Read8(3))
	}
}

func TestLoadMissingFileIsWrappedError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.bin"))
	if err == nil {
		t.Fatal("Load of a missing path returned no error")
	}
	if errors.Cause(err) == err {
		t.Errorf("Load returned an unwrapped error: %v", err)
	}
}

func TestLoadTruncatesOversizedImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "big.bin")
	data := make([]byte, 70000)
	for i := range data {
		data[i] = 0xEA
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	mem, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if mem.Read8(0xFFFF) != 0xEA {
		t.Errorf("last byte of address space = 0x%02X, want 0xEA", mem.Read8(0xFFFF))
	}
}
