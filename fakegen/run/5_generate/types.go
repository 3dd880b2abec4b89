package generate

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"go/types"
	"strings"

	"github.com/dave/dst"
	goastutil "golang.org/x/tools/go/ast/astutil"

	astutil "github.com/toejough/impfake/fakegen/run/0_util"
	detect "github.com/toejough/impfake/fakegen/run/3_detect"
)

// typeFormatter renders type expressions and default values as they must be written in the generated file,
// qualifying names that come from other packages and recording the imports that requires.
type typeFormatter struct {
	imports *importSet
	// typeParams are the target's type parameter names, valid unqualified in targetPath.
	typeParams map[string]bool
	targetPath string
	err        error
}

func newTypeFormatter(decl *detect.TargetDeclaration, imports *importSet) *typeFormatter {
	typeParams := make(map[string]bool)
	for _, name := range decl.TypeParamNames() {
		typeParams[name] = true
	}

	return &typeFormatter{imports: imports, typeParams: typeParams, targetPath: decl.Origin.PkgPath}
}

// format renders expr as written under origin.
func (tf *typeFormatter) format(expr dst.Expr, origin detect.Origin) string {
	return tf.printer(origin).Expr(expr)
}

// formatDefault renders a default-value expression written under origin.
func (tf *typeFormatter) formatDefault(expr string, origin detect.Origin) string {
	parsed, err := parser.ParseExpr(expr)
	if err != nil {
		tf.fail(fmt.Errorf("%w: default %q: %w", detect.ErrInvalidDirective, expr, err))

		return expr
	}

	rewritten := goastutil.Apply(parsed, func(cursor *goastutil.Cursor) bool {
		return tf.qualifyDefaultNode(cursor, origin)
	}, nil)

	var buf bytes.Buffer

	err = format.Node(&buf, token.NewFileSet(), rewritten)
	if err != nil {
		tf.fail(fmt.Errorf("failed to print default %q: %w", expr, err))

		return expr
	}

	return buf.String()
}

// qualifyDefaultNode rewrites package references in a default expression. Selector field names and composite
// literal keys are left alone.
func (tf *typeFormatter) qualifyDefaultNode(cursor *goastutil.Cursor, origin detect.Origin) bool {
	switch node := cursor.Node().(type) {
	case *ast.SelectorExpr:
		pkgIdent, ok := node.X.(*ast.Ident)
		if !ok {
			return true
		}

		path := origin.ImportPath(pkgIdent.Name)
		if path == "" {
			return true
		}

		alias := tf.imports.add(path, pkgIdent.Name)
		cursor.Replace(&ast.SelectorExpr{X: ast.NewIdent(alias), Sel: ast.NewIdent(node.Sel.Name)})

		return false
	case *ast.Ident:
		if _, isSelector := cursor.Parent().(*ast.SelectorExpr); isSelector && cursor.Name() == "Sel" {
			return true
		}

		if _, isKeyValue := cursor.Parent().(*ast.KeyValueExpr); isKeyValue && cursor.Name() == "Key" {
			return true
		}

		if _, isField := cursor.Parent().(*ast.Field); isField && cursor.Name() == "Names" {
			return true
		}

		if origin.Local || types.Universe.Lookup(node.Name) != nil {
			return true
		}

		cursor.Replace(&ast.SelectorExpr{X: ast.NewIdent(tf.qualifier(origin, node.Name)), Sel: node})

		return false
	default:
		return true
	}
}

// printer qualifies identifiers for origin.
func (tf *typeFormatter) printer(origin detect.Origin) astutil.Printer {
	return astutil.Printer{
		Ident: func(name string) string {
			if astutil.IsBuiltinType(name) || origin.Local {
				return name
			}

			if tf.typeParams[name] && origin.PkgPath == tf.targetPath {
				return name
			}

			return tf.qualifier(origin, name) + "." + name
		},
		Selector: func(pkg, name string) string {
			path := origin.ImportPath(pkg)
			if path == "" {
				tf.fail(fmt.Errorf("%w: package %s referenced as %s.%s", detect.ErrSymbolNotFound, pkg, pkg, name))

				return pkg + "." + name
			}

			return tf.imports.add(path, pkg) + "." + name
		},
	}
}

// qualifier returns the import name for origin's package, failing for names that package does not export.
func (tf *typeFormatter) qualifier(origin detect.Origin, name string) string {
	if !astutil.IsExported(name) {
		tf.fail(&detect.UnsupportedTargetShapeError{
			Target: name,
			Reason: fmt.Sprintf("unexported identifier of package %s cannot be referenced from the fake's package",
				origin.PkgName),
		})
	}

	if origin.PkgPath == "" {
		tf.fail(fmt.Errorf("%w: import path of package %s is unknown", detect.ErrSymbolNotFound, origin.PkgName))
	}

	return tf.imports.add(origin.PkgPath, origin.PkgName)
}

func (tf *typeFormatter) fail(err error) {
	if tf.err == nil {
		tf.err = err
	}
}

// typeParamsDecl renders "[K comparable, V any]", or "" for a non-generic target.
func (tf *typeFormatter) typeParamsDecl(decl *detect.TargetDeclaration) string {
	if decl.TypeParams == nil || len(decl.TypeParams.List) == 0 {
		return ""
	}

	parts := make([]string, 0, len(decl.TypeParams.List))

	for _, field := range decl.TypeParams.List {
		names := make([]string, len(field.Names))
		for i, name := range field.Names {
			names[i] = name.Name
		}

		parts = append(parts, strings.Join(names, ", ")+" "+tf.format(field.Type, decl.Origin))
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// typeParamsUse renders "[K, V]", or "" for a non-generic target.
func typeParamsUse(decl *detect.TargetDeclaration) string {
	names := decl.TypeParamNames()
	if len(names) == 0 {
		return ""
	}

	return "[" + strings.Join(names, ", ") + "]"
}
