package generate

import (
	"strings"

	detect "github.com/toejough/impfake/fakegen/run/3_detect"
	resolve "github.com/toejough/impfake/fakegen/run/4_resolve"
)

// overridesData feeds the override table template.
type overridesData struct {
	FakeName       string
	OverridesName  string
	TypeParamsDecl string
	Slots          []slotData
}

// slotData is one func field of the override table.
type slotData struct {
	Name    string
	Params  string
	Results string
}

// buildTable lays out one slot per overload identity, in member order.
func buildTable(plan *resolve.Plan, shape fakeShape, tf *typeFormatter) overridesData {
	table := overridesData{
		FakeName:       shape.FakeName,
		OverridesName:  shape.OverridesName,
		TypeParamsDecl: shape.TypeParamsDecl,
	}

	for _, overload := range plan.Overloads {
		member := overload.Member
		table.Slots = append(table.Slots, slotData{
			Name:    member.OverloadID,
			Params:  paramList(member.Params, member.Origin, tf),
			Results: resultList(member.Results, member.Origin, tf),
		})
	}

	return table
}

// paramList renders "key string, opts ...Option".
func paramList(params []detect.Param, origin detect.Origin, tf *typeFormatter) string {
	parts := make([]string, len(params))

	for i, param := range params {
		typ := tf.format(param.Type, origin)
		if param.Variadic {
			typ = "..." + typ
		}

		parts[i] = param.Name + " " + typ
	}

	return strings.Join(parts, ", ")
}

// resultList renders "", " T", or " (A, B)".
func resultList(results []detect.Param, origin detect.Origin, tf *typeFormatter) string {
	switch len(results) {
	case 0:
		return ""
	case 1:
		return " " + tf.format(results[0].Type, origin)
	default:
		parts := make([]string, len(results))
		for i, result := range results {
			parts[i] = tf.format(result.Type, origin)
		}

		return " (" + strings.Join(parts, ", ") + ")"
	}
}
