package run_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"

	load "github.com/toejough/impfake/fakegen/run/2_load"
)

const appDir = "/app"

var errDiskFull = errors.New("disk full")

// MockFileSystem keeps files in memory. Relative names resolve against cwd.
type MockFileSystem struct {
	cwd       string
	files     map[string][]byte
	dirs      map[string]bool
	writeHook func(name string, data []byte) error
}

func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		cwd:   appDir,
		files: map[string][]byte{appDir + "/go.mod": []byte("module example.com/app\n\ngo 1.25\n")},
		dirs:  make(map[string]bool),
	}
}

func (m *MockFileSystem) Getwd() (string, error) {
	return m.cwd, nil
}

func (m *MockFileSystem) Glob(pattern string) ([]string, error) {
	var matches []string

	for name := range m.files {
		ok, err := filepath.Match(pattern, name)
		if err != nil {
			return nil, fmt.Errorf("bad pattern: %w", err)
		}

		if ok {
			matches = append(matches, name)
		}
	}

	sort.Strings(matches)

	return matches, nil
}

func (m *MockFileSystem) MkdirAll(path string, _ os.FileMode) error {
	m.dirs[m.abs(path)] = true

	return nil
}

func (m *MockFileSystem) ReadFile(name string) ([]byte, error) {
	if content, ok := m.files[m.abs(name)]; ok {
		return content, nil
	}

	return nil, os.ErrNotExist
}

func (m *MockFileSystem) WriteFile(name string, data []byte, _ os.FileMode) error {
	if m.writeHook != nil {
		return m.writeHook(name, data)
	}

	m.files[m.abs(name)] = data

	return nil
}

func (m *MockFileSystem) abs(name string) string {
	if filepath.IsAbs(name) {
		return name
	}

	return filepath.Join(m.cwd, name)
}

// MockPackageLoader serves packages parsed from in-memory sources.
type MockPackageLoader struct {
	packages map[string]*load.Package
	err      error
}

func NewMockPackageLoader() *MockPackageLoader {
	return &MockPackageLoader{packages: make(map[string]*load.Package)}
}

// AddPackageFromSource registers src under importPath. "." is the local package, example.com/app.
func (m *MockPackageLoader) AddPackageFromSource(t *testing.T, importPath, src string) {
	t.Helper()

	path := importPath
	if importPath == "." {
		path = "example.com/app"
	}

	pkg, err := load.ParseSource(path, map[string]string{"source.go": src})
	if err != nil {
		t.Fatalf("failed to parse source for %s: %v", importPath, err)
	}

	pkg.Local = importPath == "."
	m.packages[importPath] = pkg
}

// AddPackageInDir registers src under importPath as if it were parsed from dir/source.go, and writes that file to
// mockFS so the cache can sign it.
func (m *MockPackageLoader) AddPackageInDir(t *testing.T, mockFS *MockFileSystem, importPath, dir, src string) {
	t.Helper()

	m.AddPackageFromSource(t, importPath, src)
	m.packages[importPath].Dir = dir
	mockFS.files[filepath.Join(dir, "source.go")] = []byte(src)
}

func (m *MockPackageLoader) Load(importPath string) (*load.Package, error) {
	if m.err != nil {
		return nil, m.err
	}

	pkg, ok := m.packages[importPath]
	if !ok {
		return nil, fmt.Errorf("package %q not found", importPath)
	}

	return pkg, nil
}

func envWith(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

var envWithPkgName = envWith(map[string]string{"GOPACKAGE": "app", "GOFILE": "source.go"})

// setup registers src as both the local package and /app/source.go.
func setup(t *testing.T, src string) (*MockFileSystem, *MockPackageLoader) {
	t.Helper()

	mockFS := NewMockFileSystem()
	mockFS.files[appDir+"/source.go"] = []byte(src)

	mockPkgLoader := NewMockPackageLoader()
	mockPkgLoader.AddPackageFromSource(t, ".", src)

	return mockFS, mockPkgLoader
}

// generated returns the content of a file written under /app, failing the test when it is missing.
func generated(t *testing.T, mockFS *MockFileSystem, filename string) string {
	t.Helper()

	content, ok := mockFS.files[filepath.Join(appDir, filename)]
	if !ok {
		t.Fatalf("Expected %s to be created", filename)
	}

	return string(content)
}
