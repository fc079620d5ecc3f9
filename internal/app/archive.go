package app

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"tyrepage/internal/output"
)

// writeArchive packs the written files into one zip next to them.
// Members are stored by base name in sorted order so the archive is
// byte-stable across reruns of the same batch.
func writeArchive(outDir string, files []string) (string, error) {
	archivePath := filepath.Join(outDir, output.ArchiveName)

	sorted := append([]string{}, files...)
	sort.Strings(sorted)

	f, err := os.Create(archivePath)
	if err != nil {
		return archivePath, fmt.Errorf("create archive %s: %w", archivePath, err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, file := range sorted {
		data, err := os.ReadFile(file)
		if err != nil {
			zw.Close()
			return archivePath, fmt.Errorf("read %s for archive: %w", file, err)
		}
		w, err := zw.Create(filepath.Base(file))
		if err != nil {
			zw.Close()
			return archivePath, fmt.Errorf("add %s to archive: %w", file, err)
		}
		if _, err := w.Write(data); err != nil {
			zw.Close()
			return archivePath, fmt.Errorf("write %s to archive: %w", file, err)
		}
	}
	if err := zw.Close(); err != nil {
		return archivePath, fmt.Errorf("finalise archive %s: %w", archivePath, err)
	}
	return archivePath, nil
}
