package detect

import (
	"fmt"
	"strings"

	"github.com/dave/dst"

	astutil "github.com/toejough/impfake/fakegen/run/0_util"
)

// Describe renders the member's declared signature for error messages, e.g. "Format(int, bool) string".
func (m MemberDescriptor) Describe() string {
	return m.Name + m.signature(astutil.Printer{})
}

// ParamTypeKeys returns one comparable key per parameter. Keys are fully qualified by import path, so identical
// types written in different files compare equal; a variadic parameter's key starts with "...".
func (m MemberDescriptor) ParamTypeKeys() []string {
	printer := keyPrinter(m.Origin)
	keys := make([]string, len(m.Params))

	for i, param := range m.Params {
		keys[i] = printer.Expr(param.Type)
		if param.Variadic {
			keys[i] = "..." + keys[i]
		}
	}

	return keys
}

// signatureKey identifies the member's full signature independent of parameter names.
func (m MemberDescriptor) signatureKey() string {
	return m.signature(keyPrinter(m.Origin))
}

func (m MemberDescriptor) signature(printer astutil.Printer) string {
	params := make([]string, len(m.Params))

	for i, param := range m.Params {
		params[i] = printer.Expr(param.Type)
		if param.Variadic {
			params[i] = "..." + params[i]
		}
	}

	results := make([]string, len(m.Results))
	for i, result := range m.Results {
		results[i] = printer.Expr(result.Type)
	}

	sig := "(" + strings.Join(params, ", ") + ")"

	switch len(results) {
	case 0:
		return sig
	case 1:
		return sig + " " + results[0]
	default:
		return sig + " (" + strings.Join(results, ", ") + ")"
	}
}

// keyPrinter qualifies every non-builtin name by the import path it resolves to under origin.
func keyPrinter(origin Origin) astutil.Printer {
	return astutil.Printer{
		Ident: func(name string) string {
			if astutil.IsBuiltinType(name) {
				return name
			}

			return origin.PkgPath + "." + name
		},
		Selector: func(pkg, name string) string {
			path := origin.ImportPath(pkg)
			if path == "" {
				path = pkg
			}

			return path + "." + name
		},
	}
}

// members builds the synthesized member list for the classified target, before hooks.
//
//nolint:cyclop // One branch per target kind
func (ext *extractor) members() ([]MemberDescriptor, error) {
	var members []MemberDescriptor

	switch ext.decl.Kind {
	case KindContract:
		return ext.flatten(ext.contract)
	case KindOpenBase:
		contracts, err := ext.embeddedContracts()
		if err != nil {
			return nil, err
		}

		for _, contract := range contracts {
			abstract, err := ext.flatten(contract.site)
			if err != nil {
				return nil, err
			}

			for _, member := range abstract {
				if _, defined := ext.ownMethod(member.Name); defined {
					continue
				}

				members, err = mergeMember(members, member)
				if err != nil {
					return nil, err
				}
			}

			ext.decl.Contracts = append(ext.decl.Contracts, contract.Contract)
		}
	case KindEquatableValue:
		equal, err := ext.equalMember()
		if err != nil {
			return nil, err
		}

		members = append(members, equal)
	case KindClosedConcrete, KindPlainValue, KindAuto:
	}

	return ext.openMembers(members)
}

// openMembers appends the target's methods marked //impfake:open.
func (ext *extractor) openMembers(members []MemberDescriptor) ([]MemberDescriptor, error) {
	for _, method := range ext.methods {
		name := method.decl.Name.Name

		dirs, err := directivesOf(method.decl)
		if err != nil {
			return nil, fmt.Errorf("method %s: %w", name, err)
		}

		if !dirs.open || indexOfMember(members, name) >= 0 {
			continue
		}

		if !method.origin.Local && !astutil.IsExported(name) {
			return nil, unsupported(ext.decl.Name, "open method %s is unexported in package %s",
				name, method.origin.PkgName)
		}

		member, err := buildMember(name, method.decl.Type, method.origin, method.decl)
		if err != nil {
			return nil, err
		}

		members = append(members, member)
	}

	return members, nil
}

// embeddedContract is an interface embedded in an open base struct.
type embeddedContract struct {
	Contract

	site *interfaceSite
}

// embeddedContracts lists the struct's embedded interface fields in declaration order.
func (ext *extractor) embeddedContracts() ([]embeddedContract, error) {
	structType, ok := ext.site.spec.Type.(*dst.StructType)
	if !ok || structType.Fields == nil {
		return nil, nil
	}

	var contracts []embeddedContract

	for _, field := range structType.Fields.List {
		if len(field.Names) > 0 {
			continue
		}

		site, err := ext.resolveInterface(field.Type, ext.site.source)
		if err != nil {
			return nil, err
		}

		if site == nil {
			continue
		}

		fieldName := embeddedFieldName(field.Type)
		if !ext.site.origin.Local && !astutil.IsExported(fieldName) {
			return nil, unsupported(ext.site.spec.Name.Name,
				"embedded contract field %s is unexported, so the fake cannot assign itself to it", fieldName)
		}

		contracts = append(contracts, embeddedContract{
			Contract: Contract{Field: fieldName, Type: field.Type, Origin: ext.site.origin},
			site:     site,
		})
	}

	return contracts, nil
}

// equalMember returns the declared Equal method, or the canonical Equal(other T) bool.
func (ext *extractor) equalMember() (MemberDescriptor, error) {
	method, ok := ext.equalMethod()
	if ok {
		return buildMember("Equal", method.decl.Type, method.origin, method.decl)
	}

	return MemberDescriptor{
		Name:       "Equal",
		Kind:       MemberMethod,
		Params:     []Param{{Name: "other", Type: ext.selfType()}},
		Results:    []Param{{Type: dst.NewIdent("bool")}},
		Group:      "Equal",
		OverloadID: "Equal",
		Origin:     ext.decl.Origin,
	}, nil
}

// equalMethod finds Equal(other T) bool or Equal(other *T) bool on the target.
func (ext *extractor) equalMethod() (concreteMethod, bool) {
	method, ok := ext.ownMethod("Equal")
	if !ok {
		return concreteMethod{}, false
	}

	funcType := method.decl.Type

	params := paramsOf(funcType.Params)
	results := paramsOf(funcType.Results)

	if len(params) != 1 || len(results) != 1 || params[0].Variadic {
		return concreteMethod{}, false
	}

	if result, ok := results[0].Type.(*dst.Ident); !ok || result.Name != "bool" {
		return concreteMethod{}, false
	}

	paramName, _ := receiverTypeName(params[0].Type)

	return method, paramName == ext.site.spec.Name.Name
}

func (ext *extractor) ownMethod(name string) (concreteMethod, bool) {
	for _, method := range ext.methods {
		if method.decl.Name.Name == name {
			return method, true
		}
	}

	return concreteMethod{}, false
}

// selfType is the target type as written inside its own package, with type parameters applied.
func (ext *extractor) selfType() dst.Expr {
	names := ext.decl.TypeParamNames()
	self := dst.NewIdent(ext.decl.Name)

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

// flatten collects an interface's methods, expanding embedded interfaces.
//
//nolint:cyclop,funlen // Handles methods, embedded interfaces, and type-set elements
func (ext *extractor) flatten(site *interfaceSite) ([]MemberDescriptor, error) {
	key := site.origin.PkgPath + "." + site.name
	if ext.visited[key] {
		return nil, nil
	}

	ext.visited[key] = true

	var members []MemberDescriptor

	if site.iface.Methods == nil {
		return nil, nil
	}

	for _, field := range site.iface.Methods.List {
		funcType, isMethod := field.Type.(*dst.FuncType)
		if isMethod && len(field.Names) > 0 {
			name := field.Names[0].Name
			if !site.origin.Local && !astutil.IsExported(name) {
				return nil, unsupported(ext.decl.Name, "method %s of %s is unexported in package %s",
					name, site.name, site.origin.PkgName)
			}

			member, err := buildMember(name, funcType, site.origin, field)
			if err != nil {
				return nil, err
			}

			members, err = mergeMember(members, member)
			if err != nil {
				return nil, err
			}

			continue
		}

		switch typed := field.Type.(type) {
		case *dst.UnaryExpr, *dst.BinaryExpr:
			return nil, unsupported(ext.decl.Name, "interface %s has a type set and can only be a constraint", site.name)
		case *dst.Ident:
			if typed.Name == "any" {
				continue
			}

			if typed.Name == "comparable" {
				return nil, unsupported(ext.decl.Name, "interface %s embeds comparable and can only be a constraint",
					site.name)
			}
		}

		inner, err := ext.resolveInterface(field.Type, site.source)
		if err != nil {
			return nil, err
		}

		if inner == nil {
			return nil, unsupported(ext.decl.Name, "interface %s has a type set (%s) and can only be a constraint",
				site.name, astutil.StringifyExpr(field.Type))
		}

		embedded, err := ext.flatten(inner)
		if err != nil {
			return nil, err
		}

		for _, member := range embedded {
			members, err = mergeMember(members, member)
			if err != nil {
				return nil, err
			}
		}
	}

	return members, nil
}

// addHooks tags members that realize an object-protocol hook and appends the hooks that are missing.
// A missing hook adopts the signature of a method the target declares with the same name.
func (ext *extractor) addHooks(members []MemberDescriptor) ([]MemberDescriptor, error) {
	for _, hook := range []Hook{HookString, HookHash, HookEquals, HookClose} {
		name := hook.MethodName()

		if index := indexOfMember(members, name); index >= 0 {
			members[index].Kind = MemberObjectHook
			members[index].Hook = hook

			continue
		}

		member := canonicalHook(hook, ext.decl.Origin)

		if method, ok := ext.ownMethod(name); ok {
			declared, err := buildMember(name, method.decl.Type, method.origin, method.decl)
			if err != nil {
				return nil, err
			}

			member = declared
		}

		member.Kind = MemberObjectHook
		member.Hook = hook
		members = append(members, member)
	}

	return members, nil
}

// checkReservedNames rejects members the generated type could not declare.
func (ext *extractor) checkReservedNames() error {
	for _, member := range ext.decl.Members {
		if member.Name == OverridesField {
			return unsupported(ext.decl.Name, "member %s collides with the override table field", member.Name)
		}

		if ext.decl.Kind != KindContract && member.Name == ext.decl.Name {
			return unsupported(ext.decl.Name, "member %s collides with the embedded %s field", member.Name, ext.decl.Name)
		}
	}

	return nil
}

// OverridesField is the name of the override table field on every fake.
const OverridesField = "Overrides"

// buildMember builds a method member from a signature and the node carrying its directives.
func buildMember(name string, funcType *dst.FuncType, origin Origin, node dst.Node) (MemberDescriptor, error) {
	dirs, err := directivesOf(node)
	if err != nil {
		return MemberDescriptor{}, fmt.Errorf("method %s: %w", name, err)
	}

	params := paramsOf(funcType.Params)

	err = applyDefaults(name, params, dirs.defaults)
	if err != nil {
		return MemberDescriptor{}, err
	}

	sanitizeParamNames(params)

	results := paramsOf(funcType.Results)
	for i := range results {
		results[i].Name = ""
	}

	group := dirs.group
	if group == "" {
		group = name
	}

	return MemberDescriptor{
		Name:       name,
		Kind:       MemberMethod,
		Params:     params,
		Results:    results,
		Group:      group,
		OverloadID: name,
		Open:       dirs.open,
		Origin:     origin,
	}, nil
}

// canonicalHook builds a hook with its standard signature.
func canonicalHook(hook Hook, origin Origin) MemberDescriptor {
	var params []Param

	var result string

	switch hook {
	case HookString:
		result = "string"
	case HookHash:
		result = "uint64"
	case HookEquals:
		params = []Param{{Name: "other", Type: dst.NewIdent("any")}}
		result = "bool"
	case HookClose, HookNone:
		result = "error"
	}

	name := hook.MethodName()

	return MemberDescriptor{
		Name:       name,
		Kind:       MemberObjectHook,
		Hook:       hook,
		Params:     params,
		Results:    []Param{{Type: dst.NewIdent(result)}},
		Group:      name,
		OverloadID: name,
		Origin:     origin,
	}
}

func embeddedFieldName(expr dst.Expr) string {
	switch typed := genericBase(expr).(type) {
	case *dst.Ident:
		return typed.Name
	case *dst.SelectorExpr:
		return typed.Sel.Name
	case *dst.StarExpr:
		return embeddedFieldName(typed.X)
	default:
		return astutil.StringifyExpr(expr)
	}
}

func indexOfMember(members []MemberDescriptor, name string) int {
	for i, member := range members {
		if member.Name == name {
			return i
		}
	}

	return -1
}

// markProperties tags getter/setter pairs X() T and SetX(T) as properties.
func markProperties(members []MemberDescriptor) {
	for getterIndex, getter := range members {
		if getter.Kind != MemberMethod || len(getter.Params) != 0 || len(getter.Results) != 1 {
			continue
		}

		setterIndex := indexOfMember(members, "Set"+getter.Name)
		if setterIndex < 0 {
			continue
		}

		setter := members[setterIndex]
		if setter.Kind != MemberMethod || len(setter.Params) != 1 || len(setter.Results) != 0 ||
			setter.Params[0].Variadic {
			continue
		}

		getterType := keyPrinter(getter.Origin).Expr(getter.Results[0].Type)
		if setter.ParamTypeKeys()[0] != getterType {
			continue
		}

		members[getterIndex].Kind = MemberProperty
		members[setterIndex].Kind = MemberProperty
	}
}

// mergeMember appends member unless one with the same name exists. Same name with a different signature is
// ambiguous.
func mergeMember(members []MemberDescriptor, member MemberDescriptor) ([]MemberDescriptor, error) {
	index := indexOfMember(members, member.Name)
	if index < 0 {
		return append(members, member), nil
	}

	existing := members[index]
	if existing.signatureKey() == member.signatureKey() {
		return members, nil
	}

	return nil, &AmbiguousOverloadError{Name: member.Name, First: existing.Describe(), Second: member.Describe()}
}

func paramsOf(fields *dst.FieldList) []Param {
	if fields == nil {
		return nil
	}

	var params []Param

	for _, field := range fields.List {
		typ := field.Type
		variadic := false

		if ellipsis, ok := typ.(*dst.Ellipsis); ok {
			typ = ellipsis.Elt
			variadic = true
		}

		if len(field.Names) == 0 {
			params = append(params, Param{Type: typ, Variadic: variadic})

			continue
		}

		for _, name := range field.Names {
			params = append(params, Param{Name: name.Name, Type: typ, Variadic: variadic})
		}
	}

	return params
}

// sanitizeParamNames names unnamed and blank parameters argN (1-based) and renames parameters that would shadow
// the receiver or the runtime import.
func sanitizeParamNames(params []Param) {
	used := make(map[string]bool, len(params))

	for _, param := range params {
		if usableParamName(param.Name) {
			used[param.Name] = true
		}
	}

	for i := range params {
		if usableParamName(params[i].Name) {
			continue
		}

		name := fmt.Sprintf("arg%d", i+1)
		for used[name] {
			name += "_"
		}

		used[name] = true
		params[i].Name = name
	}
}

func usableParamName(name string) bool {
	return name != "" && name != "_" && name != ReceiverName && name != RuntimeAlias
}
