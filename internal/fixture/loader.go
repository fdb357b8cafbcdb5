package fixture

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// LoadFile reads, validates and decodes one fixture file.
func LoadFile(path string) (*File, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %s", path)
		}
		if os.IsPermission(err) {
			return nil, fmt.Errorf("permission denied: %s", path)
		}
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("file is empty: %s", path)
	}
	return Parse(data, path)
}

// Parse validates and decodes fixture content. path is used in messages
// only. When the content is invalid the error is a *ValidationResult listing
// every problem.
func Parse(data []byte, path string) (*File, error) {
	expanded := []byte(ExpandEnvVars(string(data)))

	result := &ValidationResult{File: path}
	if err := checkSchema(expanded, result); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if !result.IsValid() {
		return nil, result
	}

	var f File
	if err := yaml.Unmarshal(expanded, &f); err != nil {
		return nil, fmt.Errorf("%s: parsing YAML: %w", path, err)
	}
	f.Path = path

	if res := Validate(&f); !res.IsValid() {
		return nil, res
	}
	return &f, nil
}

// LoadAll expands patterns and loads every matching file in path order.
func LoadAll(patterns []string) ([]*File, error) {
	paths, err := Expand(patterns)
	if err != nil {
		return nil, err
	}
	files := make([]*File, 0, len(paths))
	for _, p := range paths {
		f, err := LoadFile(p)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

// Expand resolves file paths, directories and doublestar globs to a sorted,
// duplicate-free list of files. A directory stands for every YAML file below
// it. A pattern that matches nothing is an error.
func Expand(patterns []string) ([]string, error) {
	var out []string
	for _, pattern := range patterns {
		if info, err := os.Stat(pattern); err == nil {
			if !info.IsDir() {
				out = append(out, filepath.Clean(pattern))
				continue
			}
			pattern = filepath.Join(pattern, "**", "*.{yaml,yml}")
		}

		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", pattern)
		}
		out = append(out, matches...)
	}
	slices.Sort(out)
	return slices.Compact(out), nil
}
