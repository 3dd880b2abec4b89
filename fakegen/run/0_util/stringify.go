// Package astutil provides shared helpers for rendering DST type expressions and Go identifiers.
package astutil

import (
	"fmt"
	"go/token"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dave/dst"
)

// Printer renders DST type expressions as Go source. The hooks let callers rewrite bare identifiers and
// package-qualified selectors (for example to add or rename a package qualifier); nil hooks print verbatim.
type Printer struct {
	// Ident rewrites a bare identifier such as "Widget" or "int".
	Ident func(name string) string
	// Selector rewrites a qualified identifier such as "io.Reader", given "io" and "Reader".
	Selector func(pkg, name string) string
}

// Expr renders expr.
//
//nolint:cyclop,funlen // Type-switch dispatcher over DST expression kinds
func (p Printer) Expr(expr dst.Expr) string {
	if expr == nil {
		return ""
	}

	switch typed := expr.(type) {
	case *dst.Ident:
		if p.Ident != nil {
			return p.Ident(typed.Name)
		}

		return typed.Name
	case *dst.BasicLit:
		return typed.Value
	case *dst.SelectorExpr:
		pkgIdent, ok := typed.X.(*dst.Ident)
		if ok && p.Selector != nil {
			return p.Selector(pkgIdent.Name, typed.Sel.Name)
		}

		return p.Expr(typed.X) + "." + typed.Sel.Name
	case *dst.StarExpr:
		return "*" + p.Expr(typed.X)
	case *dst.ArrayType:
		return "[" + p.Expr(typed.Len) + "]" + p.Expr(typed.Elt)
	case *dst.MapType:
		return "map[" + p.Expr(typed.Key) + "]" + p.Expr(typed.Value)
	case *dst.ChanType:
		return p.chanType(typed)
	case *dst.FuncType:
		return "func" + p.Signature(typed)
	case *dst.InterfaceType:
		return p.interfaceType(typed)
	case *dst.StructType:
		return p.structType(typed)
	case *dst.Ellipsis:
		return "..." + p.Expr(typed.Elt)
	case *dst.IndexExpr:
		return p.Expr(typed.X) + "[" + p.Expr(typed.Index) + "]"
	case *dst.IndexListExpr:
		indices := make([]string, len(typed.Indices))
		for i, idx := range typed.Indices {
			indices[i] = p.Expr(idx)
		}

		return p.Expr(typed.X) + "[" + strings.Join(indices, ", ") + "]"
	case *dst.ParenExpr:
		return "(" + p.Expr(typed.X) + ")"
	case *dst.UnaryExpr:
		return typed.Op.String() + p.Expr(typed.X)
	case *dst.BinaryExpr:
		return p.Expr(typed.X) + " " + typed.Op.String() + " " + p.Expr(typed.Y)
	default:
		return fmt.Sprintf("%T", expr)
	}
}

// Signature renders the parameter and result lists of funcType without the func keyword and without names,
// e.g. "(int, ...string) (bool, error)".
func (p Printer) Signature(funcType *dst.FuncType) string {
	var buf strings.Builder

	buf.WriteString("(")

	if funcType.Params != nil {
		buf.WriteString(strings.Join(ExpandFieldListTypes(funcType.Params.List, p.Expr), ", "))
	}

	buf.WriteString(")")

	if funcType.Results == nil || len(funcType.Results.List) == 0 {
		return buf.String()
	}

	results := ExpandFieldListTypes(funcType.Results.List, p.Expr)

	buf.WriteString(" ")

	if len(results) == 1 {
		buf.WriteString(results[0])

		return buf.String()
	}

	buf.WriteString("(" + strings.Join(results, ", ") + ")")

	return buf.String()
}

func (p Printer) chanType(chanType *dst.ChanType) string {
	switch chanType.Dir {
	case dst.SEND:
		return "chan<- " + p.Expr(chanType.Value)
	case dst.RECV:
		return "<-chan " + p.Expr(chanType.Value)
	default:
		return "chan " + p.Expr(chanType.Value)
	}
}

func (p Printer) interfaceType(interfaceType *dst.InterfaceType) string {
	if interfaceType.Methods == nil || len(interfaceType.Methods.List) == 0 {
		return "interface{}"
	}

	elems := make([]string, 0, len(interfaceType.Methods.List))

	for _, method := range interfaceType.Methods.List {
		funcType, isMethod := method.Type.(*dst.FuncType)
		if isMethod && len(method.Names) > 0 {
			elems = append(elems, method.Names[0].Name+p.Signature(funcType))

			continue
		}

		elems = append(elems, p.Expr(method.Type))
	}

	return "interface{ " + strings.Join(elems, "; ") + " }"
}

func (p Printer) structType(structType *dst.StructType) string {
	if structType.Fields == nil || len(structType.Fields.List) == 0 {
		return "struct{}"
	}

	fields := make([]string, 0, len(structType.Fields.List))

	for _, field := range structType.Fields.List {
		var fieldStr strings.Builder

		if len(field.Names) > 0 {
			names := make([]string, len(field.Names))
			for i, name := range field.Names {
				names[i] = name.Name
			}

			fieldStr.WriteString(strings.Join(names, ", ") + " ")
		}

		fieldStr.WriteString(p.Expr(field.Type))

		if field.Tag != nil {
			fieldStr.WriteString(" " + field.Tag.Value)
		}

		fields = append(fields, fieldStr.String())
	}

	return "struct{ " + strings.Join(fields, "; ") + " }"
}

// ExpandFieldListTypes expands a field list into individual type strings.
// For fields with multiple names (e.g., "a, b int"), outputs the type once per name.
// For unnamed fields, outputs the type once.
func ExpandFieldListTypes(fields []*dst.Field, typeFormatter func(dst.Expr) string) []string {
	var parts []string

	for _, f := range fields {
		typeStr := typeFormatter(f.Type)

		count := len(f.Names)
		if count == 0 {
			count = 1
		}

		for range count {
			parts = append(parts, typeStr)
		}
	}

	return parts
}

// IsBuiltinType reports whether name is a predeclared Go type or constraint.
func IsBuiltinType(name string) bool {
	switch name {
	case "bool", "byte", "complex64", "complex128", "error", "float32", "float64",
		"int", "int8", "int16", "int32", "int64", "rune", "string",
		"uint", "uint8", "uint16", "uint32", "uint64", "uintptr",
		"any", "comparable":
		return true
	default:
		return false
	}
}

// IsExported reports whether name starts with an upper-case letter.
func IsExported(name string) bool {
	return token.IsExported(name)
}

// LowerFirst returns name with its first rune lower-cased.
func LowerFirst(name string) string {
	first, size := utf8.DecodeRuneInString(name)
	if size == 0 {
		return name
	}

	return string(unicode.ToLower(first)) + name[size:]
}

// StringifyExpr renders expr verbatim.
func StringifyExpr(expr dst.Expr) string {
	return Printer{}.Expr(expr)
}

// UpperFirst returns name with its first rune upper-cased.
func UpperFirst(name string) string {
	first, size := utf8.DecodeRuneInString(name)
	if size == 0 {
		return name
	}

	return string(unicode.ToUpper(first)) + name[size:]
}
