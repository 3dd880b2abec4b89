package detect

import (
	"fmt"
	"strings"

	"github.com/dave/dst"
)

// TargetKind classifies a target declaration. It decides the shape of the generated fake.
type TargetKind int

// TargetKind values.
const (
	// KindAuto asks Extract to classify the declaration itself.
	KindAuto TargetKind = iota
	// KindContract is an interface; every method is synthesized.
	KindContract
	// KindOpenBase is a struct embedding interfaces; interface methods it does not define are synthesized.
	KindOpenBase
	// KindClosedConcrete is a type with pointer-receiver methods; only hooks and open members are synthesized.
	KindClosedConcrete
	// KindPlainValue is a type with value-receiver methods only.
	KindPlainValue
	// KindEquatableValue is a plain value that declares Equal.
	KindEquatableValue
)

// ParseTargetKind parses the names accepted by --kind, the config file, and the kind directive.
// The empty string parses as KindAuto.
func ParseTargetKind(name string) (TargetKind, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return KindAuto, nil
	}

	for kind, kindName := range kindNames {
		if kindName == name {
			return kind, nil
		}
	}

	return KindAuto, fmt.Errorf("%w: unknown kind %q (want contract, open, closed, value, or equatable)",
		ErrInvalidDirective, name)
}

// IsValue reports whether fakes of this kind embed the target by value and use value receivers.
func (k TargetKind) IsValue() bool {
	return k == KindPlainValue || k == KindEquatableValue
}

// String returns the name used by --kind.
func (k TargetKind) String() string {
	name, ok := kindNames[k]
	if !ok {
		return fmt.Sprintf("TargetKind(%d)", int(k))
	}

	return name
}

// MemberKind classifies a synthesized member.
type MemberKind int

// MemberKind values.
const (
	MemberMethod MemberKind = iota
	MemberProperty
	MemberObjectHook
)

func (k MemberKind) String() string {
	switch k {
	case MemberMethod:
		return "method"
	case MemberProperty:
		return "property"
	case MemberObjectHook:
		return "hook"
	default:
		return fmt.Sprintf("MemberKind(%d)", int(k))
	}
}

// Hook identifies one of the object-protocol members every fake carries.
type Hook int

// Hook values, in the order hooks are appended to a member list.
const (
	HookNone Hook = iota
	HookString
	HookHash
	HookEquals
	HookClose
)

// MethodName is the Go method a hook is realized as.
func (h Hook) MethodName() string {
	switch h {
	case HookString:
		return "String"
	case HookHash:
		return "Hash"
	case HookEquals:
		return "Equals"
	case HookClose:
		return "Close"
	case HookNone:
		return ""
	default:
		return ""
	}
}

// Origin records where a signature was written, so its type names can be qualified from the generated file.
type Origin struct {
	PkgName string
	PkgPath string
	// Local is true when the declaring file is in the same package as the generated file.
	Local   bool
	Imports []*dst.ImportSpec

	clauses *importClauses
}

// ImportPath returns the path of the import the declaring file refers to as name, or "" when there is none.
// An unaliased import whose package clause differs from its last path element, such as github.com/mattn/go-isatty
// declaring package isatty, is found by loading it.
func (o Origin) ImportPath(name string) string {
	path := ImportPathFor(name, o.Imports)
	if path != "" || o.clauses == nil {
		return path
	}

	return o.clauses.lookup(name, o.Imports)
}

// Param is a parameter or result of a member.
type Param struct {
	Name string
	// Type is the element type for a variadic parameter.
	Type     dst.Expr
	Variadic bool
	// Default is a Go expression supplied when the parameter is omitted; empty when there is none.
	Default string
}

// MemberDescriptor describes one member of the generated fake that dispatches through the override table.
type MemberDescriptor struct {
	Name    string
	Kind    MemberKind
	Hook    Hook
	Params  []Param
	Results []Param
	// Group is the overload group; members of one group must differ in call shape.
	Group string
	// OverloadID names the member's override slot.
	OverloadID string
	// Open is set for concrete methods explicitly opened for override.
	Open   bool
	Origin Origin
}

// DefaultCount returns the number of trailing parameters that have defaults.
func (m MemberDescriptor) DefaultCount() int {
	count := 0

	for i := len(m.Params) - 1; i >= 0 && m.Params[i].Default != ""; i-- {
		count++
	}

	return count
}

// Contract is an interface embedded in an open base.
type Contract struct {
	// Field is the name of the embedded field.
	Field  string
	Type   dst.Expr
	Origin Origin
}

// Scope is the package that declares the target.
type Scope struct {
	PkgName string
	PkgPath string
	// Local is true when the generated file is in the declaring package.
	Local    bool
	Exported bool
}

// TargetDeclaration is the extracted member surface of a target type.
type TargetDeclaration struct {
	Name       string
	Kind       TargetKind
	Scope      Scope
	TypeParams *dst.FieldList
	Contracts  []Contract
	Members    []MemberDescriptor
	Origin     Origin
}

// TypeParamNames lists the target's type parameter names in declaration order.
func (d *TargetDeclaration) TypeParamNames() []string {
	if d.TypeParams == nil {
		return nil
	}

	var names []string

	for _, field := range d.TypeParams.List {
		for _, name := range field.Names {
			names = append(names, name.Name)
		}
	}

	return names
}

// unexported variables.
var (
	//nolint:gochecknoglobals // Lookup table for kind names
	kindNames = map[TargetKind]string{
		KindContract:       "contract",
		KindOpenBase:       "open",
		KindClosedConcrete: "closed",
		KindPlainValue:     "value",
		KindEquatableValue: "equatable",
	}
)
