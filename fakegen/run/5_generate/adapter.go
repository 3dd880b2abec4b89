package generate

import (
	"fmt"

	"github.com/dave/dst"

	astutil "github.com/toejough/impfake/fakegen/run/0_util"
	detect "github.com/toejough/impfake/fakegen/run/3_detect"
)

// fakeShape is the kind-dependent part of a fake: what it embeds, how it is constructed, and which contracts it
// is asserted against.
type fakeShape struct {
	FakeName       string
	OverridesName  string
	CtorName       string
	KindName       string
	TargetType     string
	TypeParamsDecl string
	TypeParamsUse  string
	// Embed is the embedded target field, empty for contracts.
	Embed           string
	PointerReceiver bool
	CtorParams      string
	CtorResult      string
	CtorBody        []string
	Assertions      []string
	AssertValue     string
}

// adapt decides the fake's shape from the target's kind.
//
//nolint:funlen // One block per kind
func adapt(decl *detect.TargetDeclaration, names fakeNames, tf *typeFormatter) fakeShape {
	shape := fakeShape{
		FakeName:        names.fake,
		OverridesName:   names.overrides,
		CtorName:        names.ctor,
		KindName:        decl.Kind.String(),
		TargetType:      tf.format(selfType(decl), decl.Origin),
		TypeParamsDecl:  tf.typeParamsDecl(decl),
		TypeParamsUse:   typeParamsUse(decl),
		PointerReceiver: !decl.Kind.IsValue(),
	}

	fakeType := names.fake + shape.TypeParamsUse
	generic := shape.TypeParamsUse != ""

	switch decl.Kind {
	case detect.KindContract:
		shape.CtorResult = "*" + fakeType
		shape.CtorBody = []string{fmt.Sprintf("return &%s{}", fakeType)}

		if !generic {
			shape.Assertions = []string{shape.TargetType}
		}
	case detect.KindOpenBase:
		shape.Embed = shape.TargetType
		shape.CtorParams = "base " + shape.TargetType
		shape.CtorResult = "*" + fakeType
		shape.CtorBody = []string{fmt.Sprintf("fake := &%s{%s: base}", fakeType, decl.Name)}

		for _, contract := range decl.Contracts {
			shape.CtorBody = append(shape.CtorBody, fmt.Sprintf("fake.%s.%s = fake", decl.Name, contract.Field))

			if !generic {
				shape.Assertions = append(shape.Assertions, tf.format(contract.Type, contract.Origin))
			}
		}

		shape.CtorBody = append(shape.CtorBody, "", "return fake")
	case detect.KindClosedConcrete:
		shape.Embed = "*" + shape.TargetType
		shape.CtorParams = "base *" + shape.TargetType
		shape.CtorResult = "*" + fakeType
		shape.CtorBody = []string{
			"if base == nil {",
			fmt.Sprintf("base = new(%s)", shape.TargetType),
			"}",
			"",
			fmt.Sprintf("return &%s{%s: base}", fakeType, decl.Name),
		}
	case detect.KindPlainValue, detect.KindEquatableValue, detect.KindAuto:
		shape.Embed = shape.TargetType
		shape.CtorParams = "value " + shape.TargetType
		shape.CtorResult = fakeType
		shape.CtorBody = []string{fmt.Sprintf("return %s{%s: value}", fakeType, decl.Name)}
	}

	shape.AssertValue = fmt.Sprintf("(*%s)(nil)", fakeType)

	return shape
}

// fakeNames are the identifiers a fake declares.
type fakeNames struct {
	fake      string
	overrides string
	ctor      string
}

// namesFor derives the overrides and constructor names from the fake's name. An unexported fake gets an unexported
// constructor.
func namesFor(fake string) fakeNames {
	ctor := "New" + fake
	if !astutil.IsExported(fake) {
		ctor = "new" + astutil.UpperFirst(fake)
	}

	return fakeNames{fake: fake, overrides: fake + "Overrides", ctor: ctor}
}

// selfType is the target type with its own type parameters applied.
func selfType(decl *detect.TargetDeclaration) dst.Expr {
	names := decl.TypeParamNames()
	self := dst.NewIdent(decl.Name)

	switch len(names) {
	case 0:
		return self
	case 1:
		return &dst.IndexExpr{X: self, Index: dst.NewIdent(names[0])}
	default:
		indices := make([]dst.Expr, len(names))
		for i, name := range names {
			indices[i] = dst.NewIdent(name)
		}

		return &dst.IndexListExpr{X: self, Indices: indices}
	}
}
