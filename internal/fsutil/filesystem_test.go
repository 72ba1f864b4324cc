package fsutil

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestOSFileSystem_CreateOpenExists(t *testing.T) {
	fsys := OSFileSystem{}
	dir := filepath.Join(t.TempDir(), "plots", "2014-12-01")

	if err := fsys.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if !fsys.Exists(dir) {
		t.Fatal("expected directory to exist")
	}

	path := filepath.Join(dir, "series.csv")
	w, err := fsys.Create(path)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := io.WriteString(w, "time,value\n"); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	f, err := fsys.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if string(data) != "time,value\n" {
		t.Errorf("got %q", data)
	}

	if fsys.Exists(filepath.Join(dir, "missing.csv")) {
		t.Error("expected missing file to not exist")
	}
}

func TestMemoryFileSystem_AddAndOpen(t *testing.T) {
	mfs := NewMemoryFileSystem()
	mfs.AddFile("/data/anemo.csv", "time,u,v\n")

	f, err := mfs.Open("/data/anemo.csv")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	data, _ := io.ReadAll(f)
	if string(data) != "time,u,v\n" {
		t.Errorf("got %q", data)
	}

	info, err := f.Stat()
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Name() != "anemo.csv" || info.Size() != 9 {
		t.Errorf("unexpected file info: name=%s size=%d", info.Name(), info.Size())
	}

	if _, err := mfs.Open("/data/missing.csv"); !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestMemoryFileSystem_CreateVisibleOnClose(t *testing.T) {
	mfs := NewMemoryFileSystem()

	w, err := mfs.Create("/out/plot.png")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := w.Write([]byte("png")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if data, _ := mfs.Contents("/out/plot.png"); len(data) != 0 {
		t.Errorf("content visible before Close: %q", data)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	data, ok := mfs.Contents("/out/plot.png")
	if !ok || string(data) != "png" {
		t.Errorf("Contents = %q, %v", data, ok)
	}
}

func TestMemoryFileSystem_MkdirAllAndNames(t *testing.T) {
	mfs := NewMemoryFileSystem()
	if err := mfs.MkdirAll("/plots/profile/20260101_000000", 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	for _, dir := range []string{"/plots", "/plots/profile", "/plots/profile/20260101_000000"} {
		if !mfs.Exists(dir) {
			t.Errorf("expected %s to exist", dir)
		}
	}

	mfs.AddFile("/plots/a.png", "a")
	mfs.AddFile("/plots/b.png", "b")
	mfs.AddFile("/data/c.txt", "c")
	names := mfs.Names("/plots/")
	sort.Strings(names)
	if len(names) != 2 || names[0] != "/plots/a.png" || names[1] != "/plots/b.png" {
		t.Errorf("Names = %v", names)
	}
}
