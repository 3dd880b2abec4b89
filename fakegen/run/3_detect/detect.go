// Package detect locates a target type, classifies it, and extracts the members its fake must synthesize.
package detect

import (
	"fmt"
	"strings"

	"github.com/dave/dst"

	astutil "github.com/toejough/impfake/fakegen/run/0_util"
	load "github.com/toejough/impfake/fakegen/run/2_load"
)

// ReceiverName is the receiver of every generated method. Parameters with this name are renamed.
const ReceiverName = "fake"

// RuntimeAlias is the import name of the runtime package in generated files.
const RuntimeAlias = "_impfake"

// PackageLoader loads parsed packages by import path.
type PackageLoader interface {
	Load(importPath string) (*load.Package, error)
}

// Options adjusts extraction.
type Options struct {
	// Kind forces a classification. KindAuto defers to the kind directive, then to the declaration's shape.
	Kind TargetKind
	// OutputPackage is the package clause of the generated file. Empty means the target package itself.
	OutputPackage string
}

// Extract finds the type named name in pkg (or a package it dot-imports) and extracts its declaration.
//
//nolint:cyclop,funlen // Linear pipeline of extraction steps
func Extract(pkg *load.Package, name string, loader PackageLoader, opts Options) (*TargetDeclaration, error) {
	ext := &extractor{
		loader:    loader,
		outputPkg: opts.OutputPackage,
		visited:   map[string]bool{},
		clauses:   &importClauses{loader: loader, byPath: map[string]string{}},
	}
	if ext.outputPkg == "" && pkg.Local {
		ext.outputPkg = pkg.Name
	}

	site, err := ext.findType(pkg, name)
	if err != nil {
		return nil, err
	}

	ext.site = site

	typeDirectives, err := directivesOf(site.gen, site.spec)
	if err != nil {
		return nil, fmt.Errorf("type %s: %w", name, err)
	}

	kind := opts.Kind
	if kind == KindAuto {
		kind = typeDirectives.kind
	}

	ext.decl = &TargetDeclaration{
		Name: name,
		Scope: Scope{
			PkgName:  site.origin.PkgName,
			PkgPath:  site.origin.PkgPath,
			Local:    site.origin.Local,
			Exported: astutil.IsExported(name),
		},
		TypeParams: site.spec.TypeParams,
		Origin:     site.origin,
	}

	if site.spec.Assign {
		return nil, unsupported(name, "type aliases have no method set of their own; fake the aliased type instead")
	}

	if !ext.decl.Scope.Local && !ext.decl.Scope.Exported {
		return nil, unsupported(name, "unexported type in package %s cannot be referenced from package %s",
			site.origin.PkgName, ext.outputPkg)
	}

	ext.methods = ext.collectMethods()

	ext.decl.Kind, err = ext.classify(kind)
	if err != nil {
		return nil, err
	}

	members, err := ext.members()
	if err != nil {
		return nil, err
	}

	members, err = ext.addHooks(members)
	if err != nil {
		return nil, err
	}

	markProperties(members)

	ext.decl.Members = members

	err = ext.checkReservedNames()
	if err != nil {
		return nil, err
	}

	return ext.decl, nil
}

// FindImportPath finds the import path for a package referenced as alias from files.
func FindImportPath(files []*dst.File, alias string, loader PackageLoader) (string, error) {
	for _, file := range files {
		path := ImportPathFor(alias, file.Imports)
		if path != "" {
			return path, nil
		}
	}

	// Imports whose last path element differs from the package clause, e.g. gopkg.in/yaml.v3.
	for _, file := range files {
		for _, imp := range file.Imports {
			path := strings.Trim(imp.Path.Value, `"`)

			pkg, err := loader.Load(path)
			if err == nil && pkg.Name == alias {
				return path, nil
			}
		}
	}

	pkg, err := loader.Load(alias)
	if err == nil {
		if pkg.ImportPath != "" {
			return pkg.ImportPath, nil
		}

		return alias, nil
	}

	return "", fmt.Errorf("%w: package %s is not imported or loadable", ErrSymbolNotFound, alias)
}

// ImportPathFor returns the path of the import that files refer to as alias, or "" when there is none.
// Unaliased imports are matched on the last element of their path.
func ImportPathFor(alias string, imports []*dst.ImportSpec) string {
	for _, imp := range imports {
		path := strings.Trim(imp.Path.Value, `"`)

		name := ImportName(path)
		if imp.Name != nil {
			name = imp.Name.Name
		}

		if name == alias {
			return path
		}
	}

	return ""
}

// ImportName guesses the package name of an unaliased import from its path: the last element, skipping a major
// version suffix ("/v2") and dropping a gopkg.in version (".v3").
func ImportName(path string) string {
	elems := strings.Split(path, "/")
	name := elems[len(elems)-1]

	if len(elems) > 1 && isMajorVersion(name) {
		name = elems[len(elems)-2]
	}

	if base, version, found := strings.Cut(name, "."); found && isMajorVersion(version) {
		name = base
	}

	return name
}

func isMajorVersion(elem string) bool {
	if len(elem) < 2 || elem[0] != 'v' {
		return false
	}

	for _, r := range elem[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// source is a file of a loaded package, with the origin its signatures are read under.
type source struct {
	pkg    *load.Package
	origin Origin
}

// typeSite locates a type declaration.
type typeSite struct {
	source

	gen  *dst.GenDecl
	spec *dst.TypeSpec
}

// interfaceSite is an interface type whose methods are being flattened.
type interfaceSite struct {
	source

	name  string
	iface *dst.InterfaceType
}

// concreteMethod is a method declared on the target type.
type concreteMethod struct {
	decl    *dst.FuncDecl
	pointer bool
	origin  Origin
}

type extractor struct {
	loader    PackageLoader
	clauses   *importClauses
	outputPkg string
	site      typeSite
	decl      *TargetDeclaration
	methods   []concreteMethod
	// contract is the interface a contract target resolves to.
	contract *interfaceSite
	visited  map[string]bool
}

// classify decides the target's kind, honoring a forced kind when it is compatible with the declaration.
//
//nolint:cyclop,funlen // One branch per declaration shape
func (ext *extractor) classify(forced TargetKind) (TargetKind, error) {
	name := ext.site.spec.Name.Name

	switch typed := ext.site.spec.Type.(type) {
	case *dst.InterfaceType:
		ext.contract = &interfaceSite{source: ext.site.source, name: name, iface: typed}
	case *dst.FuncType:
		return KindAuto, unsupported(name, "function types have no method set to fake")
	case *dst.ChanType:
		return KindAuto, unsupported(name, "channel types have no method set to fake")
	case *dst.StarExpr:
		return KindAuto, unsupported(name, "pointer types cannot be embedded in a fake")
	case *dst.Ident, *dst.SelectorExpr:
		// A type defined from an interface type is itself an interface.
		iface, err := ext.resolveInterface(typed, ext.site.source)
		if err != nil {
			return KindAuto, err
		}

		ext.contract = iface
	}

	if ext.contract != nil {
		if forced != KindAuto && forced != KindContract {
			return KindAuto, unsupported(name, "interfaces can only be faked as %s, not %s", KindContract, forced)
		}

		return KindContract, nil
	}

	_, isStruct := ext.site.spec.Type.(*dst.StructType)

	switch forced {
	case KindContract:
		return KindAuto, unsupported(name, "only interfaces can be faked as %s", KindContract)
	case KindOpenBase:
		if !isStruct {
			return KindAuto, unsupported(name, "only structs can be faked as %s", KindOpenBase)
		}

		return forced, nil
	case KindClosedConcrete, KindPlainValue, KindEquatableValue:
		return forced, nil
	case KindAuto:
	}

	if isStruct {
		contracts, err := ext.embeddedContracts()
		if err != nil {
			return KindAuto, err
		}

		if len(contracts) > 0 {
			return KindOpenBase, nil
		}
	}

	if _, ok := ext.equalMethod(); ok {
		return KindEquatableValue, nil
	}

	for _, method := range ext.methods {
		if method.pointer {
			return KindClosedConcrete, nil
		}
	}

	return KindPlainValue, nil
}

// collectMethods gathers the methods declared on the target in its own package.
func (ext *extractor) collectMethods() []concreteMethod {
	var methods []concreteMethod

	for _, file := range ext.site.pkg.Files {
		if file.Name.Name != ext.site.origin.PkgName {
			continue
		}

		origin := ext.originOf(ext.site.pkg, file)

		for _, decl := range file.Decls {
			funcDecl, ok := decl.(*dst.FuncDecl)
			if !ok || funcDecl.Recv == nil || len(funcDecl.Recv.List) != 1 {
				continue
			}

			recvName, pointer := receiverTypeName(funcDecl.Recv.List[0].Type)
			if recvName != ext.site.spec.Name.Name {
				continue
			}

			methods = append(methods, concreteMethod{decl: funcDecl, pointer: pointer, origin: origin})
		}
	}

	return methods
}

// findType looks for the named type in pkg, then in packages pkg dot-imports.
func (ext *extractor) findType(pkg *load.Package, name string) (typeSite, error) {
	site, ok := ext.lookupType(pkg, "", name)
	if ok {
		return site, nil
	}

	for _, file := range pkg.Files {
		for _, imp := range file.Imports {
			if imp.Name == nil || imp.Name.Name != "." {
				continue
			}

			dotPkg, err := ext.loader.Load(strings.Trim(imp.Path.Value, `"`))
			if err != nil {
				continue
			}

			site, ok = ext.lookupType(dotPkg, "", name)
			if ok {
				return site, nil
			}
		}
	}

	return typeSite{}, fmt.Errorf("%w: type %s in package %s", ErrSymbolNotFound, name, pkg.Name)
}

// lookupType finds a type declaration in pkg, optionally restricted to files of one package clause.
func (ext *extractor) lookupType(pkg *load.Package, clause, name string) (typeSite, bool) {
	for _, file := range pkg.Files {
		if clause != "" && file.Name.Name != clause {
			continue
		}

		for _, decl := range file.Decls {
			genDecl, ok := decl.(*dst.GenDecl)
			if !ok {
				continue
			}

			for _, spec := range genDecl.Specs {
				typeSpec, ok := spec.(*dst.TypeSpec)
				if !ok || typeSpec.Name.Name != name {
					continue
				}

				return typeSite{
					source: source{pkg: pkg, origin: ext.originOf(pkg, file)},
					gen:    genDecl,
					spec:   typeSpec,
				}, true
			}
		}
	}

	return typeSite{}, false
}

func (ext *extractor) originOf(pkg *load.Package, file *dst.File) Origin {
	return Origin{
		PkgName: file.Name.Name,
		PkgPath: pkg.ImportPath,
		Local:   pkg.Local && file.Name.Name == ext.outputPkg,
		Imports: file.Imports,
		clauses: ext.clauses,
	}
}

// importClauses memoizes the package clauses of loaded imports by import path. An import that fails to load has
// an empty clause.
type importClauses struct {
	loader PackageLoader
	byPath map[string]string
}

// lookup finds the unaliased import among imports whose package clause is name.
func (c *importClauses) lookup(name string, imports []*dst.ImportSpec) string {
	for _, imp := range imports {
		if imp.Name != nil {
			continue
		}

		path := strings.Trim(imp.Path.Value, `"`)

		clause, ok := c.byPath[path]
		if !ok {
			pkg, err := c.loader.Load(path)
			if err == nil {
				clause = pkg.Name
			}

			c.byPath[path] = clause
		}

		if clause == name {
			return path
		}
	}

	return ""
}

// resolveInterface returns the interface expr names, or nil when it names something else.
//
//nolint:cyclop // One branch per reference form
func (ext *extractor) resolveInterface(expr dst.Expr, src source) (*interfaceSite, error) {
	switch typed := expr.(type) {
	case *dst.Ident:
		if typed.Name == "error" {
			return errorInterface(src.origin), nil
		}

		if astutil.IsBuiltinType(typed.Name) || src.pkg == nil {
			return nil, nil
		}

		site, ok := ext.lookupType(src.pkg, src.origin.PkgName, typed.Name)
		if !ok {
			return nil, nil
		}

		return ext.interfaceOf(site)
	case *dst.SelectorExpr:
		pkgIdent, ok := typed.X.(*dst.Ident)
		if !ok {
			return nil, nil
		}

		path := src.origin.ImportPath(pkgIdent.Name)
		if path == "" {
			return nil, fmt.Errorf("%w: package %s referenced by %s.%s", ErrSymbolNotFound,
				pkgIdent.Name, pkgIdent.Name, typed.Sel.Name)
		}

		pkg, err := ext.loader.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}

		site, ok := ext.lookupType(pkg, "", typed.Sel.Name)
		if !ok {
			return nil, fmt.Errorf("%w: type %s in package %s", ErrSymbolNotFound, typed.Sel.Name, path)
		}

		return ext.interfaceOf(site)
	case *dst.IndexExpr, *dst.IndexListExpr:
		inner, err := ext.resolveInterface(genericBase(typed), src)
		if err != nil || inner == nil {
			return nil, err
		}

		return nil, unsupported(ext.site.spec.Name.Name, "instantiated generic interface %s cannot be flattened",
			astutil.StringifyExpr(expr))
	default:
		return nil, nil
	}
}

func (ext *extractor) interfaceOf(site typeSite) (*interfaceSite, error) {
	switch typed := site.spec.Type.(type) {
	case *dst.InterfaceType:
		return &interfaceSite{source: site.source, name: site.spec.Name.Name, iface: typed}, nil
	case *dst.Ident, *dst.SelectorExpr:
		return ext.resolveInterface(typed, site.source)
	default:
		return nil, nil
	}
}

// errorInterface is the predeclared error interface.
func errorInterface(origin Origin) *interfaceSite {
	method := &dst.Field{
		Names: []*dst.Ident{dst.NewIdent("Error")},
		Type: &dst.FuncType{
			Params:  &dst.FieldList{},
			Results: &dst.FieldList{List: []*dst.Field{{Type: dst.NewIdent("string")}}},
		},
	}

	return &interfaceSite{
		source: source{origin: Origin{PkgName: origin.PkgName, PkgPath: origin.PkgPath, Local: true}},
		name:   "error",
		iface:  &dst.InterfaceType{Methods: &dst.FieldList{List: []*dst.Field{method}}},
	}
}

func genericBase(expr dst.Expr) dst.Expr {
	switch typed := expr.(type) {
	case *dst.IndexExpr:
		return typed.X
	case *dst.IndexListExpr:
		return typed.X
	default:
		return expr
	}
}

// receiverTypeName strips pointers and type arguments from a receiver type.
func receiverTypeName(expr dst.Expr) (string, bool) {
	pointer := false

	if star, ok := expr.(*dst.StarExpr); ok {
		pointer = true
		expr = star.X
	}

	ident, ok := genericBase(expr).(*dst.Ident)
	if !ok {
		return "", pointer
	}

	return ident.Name, pointer
}
