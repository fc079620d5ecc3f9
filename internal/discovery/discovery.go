// Package discovery resolves file and directory arguments into the list
// of scannable input files.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Scannable input extensions: plain text, spreadsheets exported as CSV,
// and markdown notes.
var extensions = map[string]struct{}{
	".txt": {},
	".csv": {},
	".md":  {},
}

type Result struct {
	Files    []string
	Warnings []string
}

// Discover expands each input into scannable files. A direct file
// argument is taken as is whatever its extension; directories are walked
// recursively, hidden directories skipped, collecting known extensions.
func Discover(inputs []string) (Result, error) {
	if len(inputs) == 0 {
		return Result{}, fmt.Errorf("no input paths given")
	}
	set := map[string]struct{}{}
	warnings := []string{}

	for _, in := range inputs {
		if strings.TrimSpace(in) == "" {
			continue
		}
		st, err := os.Stat(in)
		if err != nil {
			return Result{}, fmt.Errorf("invalid input path %s: %w", in, err)
		}
		if !st.IsDir() {
			set[in] = struct{}{}
			continue
		}
		found, warns, err := scanDir(in)
		if err != nil {
			return Result{}, err
		}
		warnings = append(warnings, warns...)
		for _, p := range found {
			set[p] = struct{}{}
		}
	}

	files := make([]string, 0, len(set))
	for p := range set {
		files = append(files, p)
	}
	sort.Strings(files)
	if len(files) == 0 {
		return Result{}, fmt.Errorf("no scannable files found")
	}
	return Result{Files: files, Warnings: warnings}, nil
}

func scanDir(root string) ([]string, []string, error) {
	out := []string{}
	warnings := []string{}

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if _, ok := extensions[strings.ToLower(filepath.Ext(path))]; !ok {
			return nil
		}
		if _, readErr := os.Stat(path); readErr != nil {
			warnings = append(warnings, fmt.Sprintf("skipped unreadable file: %s", path))
			return nil
		}
		out = append(out, path)
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("scan directory %s: %w", root, err)
	}
	return out, warnings, nil
}
