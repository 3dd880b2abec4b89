// Package resolve expands default-valued parameters into arity variants and checks that overloads stay distinct.
package resolve

import (
	"fmt"
	"strings"

	detect "github.com/toejough/impfake/fakegen/run/3_detect"
)

// Variant is a shorter call shape of a member, taking only its first Arity parameters.
type Variant struct {
	Name  string
	Arity int
}

// Overload is a member together with its arity variants, longest first.
type Overload struct {
	Member   detect.MemberDescriptor
	Variants []Variant
}

// Plan is the resolved dispatch surface of a fake.
type Plan struct {
	Target    *detect.TargetDeclaration
	Overloads []Overload
}

// Resolve computes every member's call shapes and rejects shapes that collide.
//
// A member with d trailing defaults has d+1 call shapes: its full parameter list and one per omitted suffix. Two
// members in the same overload group may not share a shape's parameter type sequence, and a variant method may not
// reuse the name of another method of the fake.
func Resolve(decl *detect.TargetDeclaration) (*Plan, error) {
	plan := &Plan{Target: decl}
	taken := reservedNames(decl)
	shapes := make(map[string]shapeOwner)

	for _, member := range decl.Members {
		overload := Overload{Member: member}
		keys := member.ParamTypeKeys()

		for arity := len(member.Params); arity >= len(member.Params)-member.DefaultCount(); arity-- {
			shape := member.Group + "(" + strings.Join(keys[:arity], ", ") + ")"

			owner, seen := shapes[shape]
			if seen && owner.member.Name != member.Name {
				return nil, &detect.AmbiguousOverloadError{
					Name:   member.Group,
					First:  describeShape(owner.member, owner.arity),
					Second: describeShape(member, arity),
				}
			}

			shapes[shape] = shapeOwner{member: member, arity: arity}

			if arity == len(member.Params) {
				continue
			}

			name := VariantName(member.Name, arity)
			if existing, clash := taken[name]; clash {
				return nil, &detect.AmbiguousOverloadError{
					Name:   name,
					First:  existing,
					Second: describeShape(member, arity),
				}
			}

			taken[name] = describeShape(member, arity)
			overload.Variants = append(overload.Variants, Variant{Name: name, Arity: arity})
		}

		plan.Overloads = append(plan.Overloads, overload)
	}

	return plan, nil
}

// VariantName names the method that calls member with only its first arity parameters.
func VariantName(member string, arity int) string {
	return fmt.Sprintf("%sArity%d", member, arity)
}

type shapeOwner struct {
	member detect.MemberDescriptor
	arity  int
}

// describeShape renders a call shape such as "Format(int)" for error messages.
func describeShape(member detect.MemberDescriptor, arity int) string {
	if arity == len(member.Params) {
		return member.Describe()
	}

	truncated := member
	truncated.Params = member.Params[:arity]

	return fmt.Sprintf("%s [defaults omitted]", truncated.Describe())
}

// reservedNames maps every name already declared on the fake to a description of its declaration.
func reservedNames(decl *detect.TargetDeclaration) map[string]string {
	taken := map[string]string{detect.OverridesField: "the override table field " + detect.OverridesField}

	if decl.Kind != detect.KindContract {
		taken[decl.Name] = "the embedded " + decl.Name + " field"
	}

	for _, member := range decl.Members {
		taken[member.Name] = member.Describe()
	}

	return taken
}
