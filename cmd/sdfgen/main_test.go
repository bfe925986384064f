package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeRasterFile(t *testing.T, rows []string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "raster.txt")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	for _, row := range rows {
		if _, err := f.WriteString(row + "\n"); err != nil {
			t.Fatal(err)
		}
	}
	return path
}

func TestReadRasterParsesInteriorMarkers(t *testing.T) {
	path := writeRasterFile(t, []string{
		"...",
		".#.",
		"...",
	})
	grid, err := readRaster(path)
	if err != nil {
		t.Fatal(err)
	}
	if grid.Width() != 3 || grid.Height() != 3 {
		t.Fatalf("got %dx%d, want 3x3", grid.Width(), grid.Height())
	}
	if !grid.At(1, 1) {
		t.Error("(1,1) should be interior")
	}
	if grid.At(0, 0) {
		t.Error("(0,0) should be exterior")
	}
}

func TestReadRasterRejectsRaggedRows(t *testing.T) {
	path := writeRasterFile(t, []string{
		"...",
		"..",
	})
	if _, err := readRaster(path); err == nil {
		t.Error("expected error for ragged rows")
	}
}

func TestReadRasterMissingFile(t *testing.T) {
	if _, err := readRaster(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}
