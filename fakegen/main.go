// fakegen generates test fakes for Go types.
// To use it, install it with `go install github.com/toejough/impfake/fakegen@latest` and add a
// `//go:generate fakegen <Type>` comment next to the code that needs a fake. By default the fake is named
// Fake<Type> and written to generated_Fake<Type>.go (generated_Fake<Type>_test.go from a test file) in the same
// package. Add `--name <FakeName>` to choose the name and `--kind <kind>` to override the classification.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/toejough/impfake/fakegen/run"
	load "github.com/toejough/impfake/fakegen/run/2_load"
)

// main is the entry point of the fakegen tool.
func main() {
	if os.Args == nil {
		return
	}

	err := execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func execute() error {
	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	loader, err := load.NewLoader(dir, load.DefaultCacheSize)
	if err != nil {
		return fmt.Errorf("failed to create package loader: %w", err)
	}

	return run.Run(os.Args, os.Getenv, &realFileSystem{}, &realPackageLoader{loader: loader}, os.Stdout)
}

// realFileSystem implements run.FileSystem using the os package.
type realFileSystem struct{}

// Getwd returns the working directory.
func (fs *realFileSystem) Getwd() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	return dir, nil
}

// Glob returns the names of all files matching pattern.
func (fs *realFileSystem) Glob(pattern string) ([]string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("glob failed for pattern %s: %w", pattern, err)
	}

	return matches, nil
}

// MkdirAll creates path and any missing parents.
func (fs *realFileSystem) MkdirAll(path string, perm os.FileMode) error {
	err := os.MkdirAll(path, perm)
	if err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}

	return nil
}

// ReadFile reads the file named by name and returns the contents.
func (fs *realFileSystem) ReadFile(name string) ([]byte, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", name, err)
	}

	return data, nil
}

// WriteFile writes data to the file named by name.
func (fs *realFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	err := os.WriteFile(name, data, perm)
	if err != nil {
		return fmt.Errorf("failed to write file %s: %w", name, err)
	}

	return nil
}

// realPackageLoader implements run.PackageLoader with a caching DST loader.
type realPackageLoader struct {
	loader *load.Loader
}

// Load loads a package by import path.
func (pl *realPackageLoader) Load(importPath string) (*load.Package, error) {
	pkg, err := pl.loader.Load(importPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load package %q: %w", importPath, err)
	}

	return pkg, nil
}
