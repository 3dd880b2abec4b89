// Package load parses Go packages into DST files, keeping comments attached to nodes so directives can be read.
package load

import (
	"errors"
	"fmt"
	"go/build"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/mod/modfile"
)

// DefaultCacheSize bounds the number of parsed packages a Loader keeps.
const DefaultCacheSize = 64

// Package is a parsed Go package.
type Package struct {
	Dir        string
	ImportPath string
	// Name is the package clause of the package's non-test files (or of its test files when it has no others).
	Name string
	// Local is true for the package in the working directory; its test files are included.
	Local bool
	Files []*dst.File
	Fset  *token.FileSet
}

// Loader loads packages by import path relative to a working directory, caching parsed results.
type Loader struct {
	workDir string
	cache   *lru.Cache[string, *Package]
}

// NewLoader returns a Loader resolving packages from workDir.
func NewLoader(workDir string, cacheSize int) (*Loader, error) {
	cache, err := lru.New[string, *Package](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create package cache: %w", err)
	}

	return &Loader{workDir: workDir, cache: cache}, nil
}

// Load loads a package by import path. "." is the working directory package, test files included.
func (l *Loader) Load(importPath string) (*Package, error) {
	if pkg, ok := l.cache.Get(importPath); ok {
		return pkg, nil
	}

	pkg, err := l.load(importPath)
	if err != nil {
		return nil, err
	}

	l.cache.Add(importPath, pkg)

	return pkg, nil
}

func (l *Loader) load(importPath string) (*Package, error) {
	if importPath == "." {
		pkg, err := ParseDir(l.workDir, true)
		if err != nil {
			return nil, err
		}

		pkg.Local = true

		modulePath, err := ModuleImportPath(l.workDir)
		if err == nil {
			pkg.ImportPath = modulePath
		}

		return pkg, nil
	}

	dir := ResolveLocalPackagePath(l.workDir, importPath)
	resolvedPath := importPath

	if dir == importPath {
		found, err := build.Import(importPath, l.workDir, build.FindOnly)
		if err != nil {
			return nil, fmt.Errorf("failed to find package %q: %w", importPath, err)
		}

		dir = found.Dir
	} else if modulePath, err := ModuleImportPath(dir); err == nil {
		resolvedPath = modulePath
	}

	pkg, err := ParseDir(dir, false)
	if err != nil {
		return nil, err
	}

	pkg.ImportPath = resolvedPath

	return pkg, nil
}

// FindModuleRoot walks up from dir to the nearest directory containing go.mod.
func FindModuleRoot(dir string) (string, error) {
	curr := dir

	for {
		info, err := os.Stat(filepath.Join(curr, "go.mod"))
		if err == nil && !info.IsDir() {
			return curr, nil
		}

		parent := filepath.Dir(curr)
		if parent == curr {
			return "", fmt.Errorf("%w: above %s", errModuleNotFound, dir)
		}

		curr = parent
	}
}

// ModuleImportPath computes the import path of the package in dir from the enclosing go.mod.
func ModuleImportPath(dir string) (string, error) {
	root, err := FindModuleRoot(dir)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(filepath.Join(root, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}

	modulePath := modfile.ModulePath(data)
	if modulePath == "" {
		return "", fmt.Errorf("%w: %s has no module directive", errModuleNotFound, root)
	}

	rel, err := filepath.Rel(root, dir)
	if err != nil {
		return "", fmt.Errorf("failed to relate %s to module root: %w", dir, err)
	}

	if rel == "." {
		return modulePath, nil
	}

	return modulePath + "/" + filepath.ToSlash(rel), nil
}

// ParseDir parses the .go files in dir. Test files are included only when includeTests is set.
// Files that fail to parse are skipped.
func ParseDir(dir string, includeTests bool) (*Package, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	fset := token.NewFileSet()
	dec := decorator.NewDecorator(fset)
	files := make([]*dst.File, 0, len(entries))

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") {
			continue
		}

		if !includeTests && strings.HasSuffix(name, "_test.go") {
			continue
		}

		file, err := dec.ParseFile(filepath.Join(dir, name), nil, 0)
		if err != nil {
			continue
		}

		files = append(files, file)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no parseable .go files in %s", errNoPackagesFound, dir)
	}

	return &Package{Dir: dir, Name: packageName(dec, files), Files: files, Fset: fset}, nil
}

// ParseSource parses in-memory sources (file name to content) as one package with the given import path.
// Files are parsed in name order.
func ParseSource(importPath string, sources map[string]string) (*Package, error) {
	names := make([]string, 0, len(sources))
	for name := range sources {
		names = append(names, name)
	}

	sort.Strings(names)

	fset := token.NewFileSet()
	dec := decorator.NewDecorator(fset)
	files := make([]*dst.File, 0, len(names))

	for _, name := range names {
		file, err := dec.ParseFile(name, sources[name], 0)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}

		files = append(files, file)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no sources for %s", errNoPackagesFound, importPath)
	}

	return &Package{ImportPath: importPath, Name: packageName(dec, files), Files: files, Fset: fset}, nil
}

// ResolveLocalPackagePath checks if importPath is a simple name matching a subdirectory of workDir that contains
// .go files, so that a local package can shadow a standard library package of the same name. It returns the
// subdirectory when it does and importPath unchanged otherwise.
func ResolveLocalPackagePath(workDir, importPath string) string {
	if importPath == "." || strings.Contains(importPath, "/") {
		return importPath
	}

	localDir := filepath.Join(workDir, importPath)

	entries, err := os.ReadDir(localDir)
	if err != nil {
		return importPath
	}

	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".go") {
			return localDir
		}
	}

	return importPath
}

// unexported variables.
var (
	errModuleNotFound  = errors.New("no go.mod found")
	errNoPackagesFound = errors.New("no packages found")
)

// packageName prefers the package clause of a non-test file.
func packageName(dec *decorator.Decorator, files []*dst.File) string {
	for _, file := range files {
		if !strings.HasSuffix(dec.Filenames[file], "_test.go") {
			return file.Name.Name
		}
	}

	return files[0].Name.Name
}
