package detect_test

import (
	"fmt"
	"testing"

	load "github.com/toejough/impfake/fakegen/run/2_load"
	detect "github.com/toejough/impfake/fakegen/run/3_detect"
)

// mapLoader serves packages parsed from in-memory sources.
type mapLoader struct {
	packages map[string]*load.Package
}

func (m *mapLoader) Load(importPath string) (*load.Package, error) {
	pkg, ok := m.packages[importPath]
	if !ok {
		return nil, fmt.Errorf("package %q not found", importPath)
	}

	return pkg, nil
}

// localPackage parses src as the working-directory package example.com/shop/store.
func localPackage(t *testing.T, src string) *load.Package {
	t.Helper()

	pkg, err := load.ParseSource("example.com/shop/store", map[string]string{"store.go": src})
	if err != nil {
		t.Fatalf("failed to parse source: %v", err)
	}

	pkg.Local = true

	return pkg
}

// externalPackage parses src as a non-local package with the given import path.
func externalPackage(t *testing.T, importPath, src string) *load.Package {
	t.Helper()

	pkg, err := load.ParseSource(importPath, map[string]string{"ext.go": src})
	if err != nil {
		t.Fatalf("failed to parse source: %v", err)
	}

	return pkg
}

func extract(t *testing.T, src, name string, loader *mapLoader) (*detect.TargetDeclaration, error) {
	t.Helper()

	if loader == nil {
		loader = &mapLoader{}
	}

	return detect.Extract(localPackage(t, src), name, loader, detect.Options{})
}

func memberNames(decl *detect.TargetDeclaration) []string {
	names := make([]string, len(decl.Members))
	for i, member := range decl.Members {
		names[i] = member.Name
	}

	return names
}

func member(decl *detect.TargetDeclaration, name string) (detect.MemberDescriptor, bool) {
	for _, m := range decl.Members {
		if m.Name == name {
			return m, true
		}
	}

	return detect.MemberDescriptor{}, false
}
