package generate

import (
	"fmt"
	"strings"

	detect "github.com/toejough/impfake/fakegen/run/3_detect"
	resolve "github.com/toejough/impfake/fakegen/run/4_resolve"
)

// methodData feeds the method template for a member or one of its arity variants.
type methodData struct {
	Doc        string
	Receiver   string
	RecvName   string
	Name       string
	Params     string
	Results    string
	HasResults bool
	Slot       string
	Member     string
	FakeName   string
	Runtime    string
	Args       string
}

// buildMethods emits the dispatching methods: each member, then its arity variants.
func buildMethods(plan *resolve.Plan, shape fakeShape, tf *typeFormatter) []methodData {
	receiver := detect.ReceiverName + " " + shape.FakeName + shape.TypeParamsUse
	if shape.PointerReceiver {
		receiver = detect.ReceiverName + " *" + shape.FakeName + shape.TypeParamsUse
	}

	var methods []methodData

	for _, overload := range plan.Overloads {
		member := overload.Member
		results := resultList(member.Results, member.Origin, tf)
		base := methodData{
			Receiver:   receiver,
			RecvName:   detect.ReceiverName,
			Results:    results,
			HasResults: results != "",
			Slot:       member.OverloadID,
			Member:     member.Name,
			FakeName:   shape.FakeName,
			Runtime:    detect.RuntimeAlias,
		}

		full := base
		full.Name = member.Name
		full.Doc = memberDoc(member)
		full.Params = paramList(member.Params, member.Origin, tf)
		full.Args = argList(member.Params)
		methods = append(methods, full)

		for _, variant := range overload.Variants {
			short := base
			short.Name = variant.Name
			short.Params = paramList(member.Params[:variant.Arity], member.Origin, tf)
			short.Args, short.Doc = variantCall(member, variant, tf)
			methods = append(methods, short)
		}
	}

	return methods
}

// argList forwards every parameter, spreading a variadic one.
func argList(params []detect.Param) string {
	args := make([]string, len(params))

	for i, param := range params {
		args[i] = param.Name
		if param.Variadic {
			args[i] += "..."
		}
	}

	return strings.Join(args, ", ")
}

// memberDoc describes what a member dispatches to.
func memberDoc(member detect.MemberDescriptor) string {
	switch member.Kind {
	case detect.MemberProperty:
		return fmt.Sprintf("%s accesses a property through Overrides.%s.", member.Name, member.OverloadID)
	case detect.MemberObjectHook:
		return fmt.Sprintf("%s is the %s hook; it calls Overrides.%s.", member.Name, hookLabel(member.Hook),
			member.OverloadID)
	case detect.MemberMethod:
		return fmt.Sprintf("%s calls Overrides.%s.", member.Name, member.OverloadID)
	default:
		return fmt.Sprintf("%s calls Overrides.%s.", member.Name, member.OverloadID)
	}
}

func hookLabel(hook detect.Hook) string {
	switch hook {
	case detect.HookString:
		return "string conversion"
	case detect.HookHash:
		return "hash"
	case detect.HookEquals:
		return "equality"
	case detect.HookClose:
		return "disposal"
	case detect.HookNone:
		return "object"
	default:
		return "object"
	}
}

// variantCall renders the arguments of an arity variant (supplied parameters, then defaults) and its doc line.
func variantCall(member detect.MemberDescriptor, variant resolve.Variant, tf *typeFormatter) (string, string) {
	args := make([]string, 0, len(member.Params))
	defaulted := make([]string, 0, len(member.Params)-variant.Arity)

	for i, param := range member.Params {
		if i < variant.Arity {
			args = append(args, param.Name)

			continue
		}

		value := tf.formatDefault(param.Default, member.Origin)
		args = append(args, value)
		defaulted = append(defaulted, param.Name+" = "+value)
	}

	doc := fmt.Sprintf("%s calls Overrides.%s with %s.", variant.Name, member.OverloadID,
		strings.Join(defaulted, ", "))

	return strings.Join(args, ", "), doc
}
