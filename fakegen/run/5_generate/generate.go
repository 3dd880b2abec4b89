// Package generate renders the Go source of a fake from a resolved plan.
package generate

import (
	"bytes"
	"fmt"

	"golang.org/x/tools/imports"

	resolve "github.com/toejough/impfake/fakegen/run/4_resolve"
)

// GeneratorInfo describes the file being generated.
type GeneratorInfo struct {
	// PkgName is the package clause of the generated file.
	PkgName string
	// FakeName is the name of the generated type.
	FakeName string
}

// Code renders, formats, and import-prunes the fake described by plan.
func Code(plan *resolve.Plan, info GeneratorInfo) (string, error) {
	decl := plan.Target
	names := namesFor(info.FakeName)

	importSet := newImportSet()
	importSet.reserve(info.PkgName)

	tf := newTypeFormatter(decl, importSet)
	shape := adapt(decl, names, tf)
	table := buildTable(plan, shape, tf)
	methods := buildMethods(plan, shape, tf)

	if tf.err != nil {
		return "", fmt.Errorf("failed to render fake %s for %s: %w", info.FakeName, decl.Name, tf.err)
	}

	registry := NewTemplateRegistry()

	var body bytes.Buffer

	registry.WriteFakeStruct(&body, shape)
	registry.WriteOverrides(&body, table)
	registry.WriteConstructor(&body, shape)
	registry.WriteAssertions(&body, shape)

	for _, method := range methods {
		registry.WriteMethod(&body, method)
	}

	var src bytes.Buffer

	registry.WriteHeader(&src, struct {
		PkgName string
		Imports []importSpec
	}{PkgName: info.PkgName, Imports: importSet.specs()})

	src.Write(body.Bytes())

	formatted, err := imports.Process("", src.Bytes(), &imports.Options{Comments: true, TabIndent: true, TabWidth: 8})
	if err != nil {
		return "", fmt.Errorf("failed to format fake %s: %w\n%s", info.FakeName, err, src.String())
	}

	return string(formatted), nil
}
