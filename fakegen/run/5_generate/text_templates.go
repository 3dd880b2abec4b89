package generate

import (
	"bytes"
	"fmt"
	"text/template"
)

// TemplateRegistry holds all parsed text templates for fake generation.
// Create a registry using NewTemplateRegistry() to initialize all templates.
type TemplateRegistry struct {
	headerTmpl      *template.Template
	fakeStructTmpl  *template.Template
	overridesTmpl   *template.Template
	constructorTmpl *template.Template
	assertionsTmpl  *template.Template
	methodTmpl      *template.Template
}

// NewTemplateRegistry creates and initializes a new template registry with all templates parsed.
// Templates are hardcoded constants, so parsing cannot fail at runtime.
func NewTemplateRegistry() *TemplateRegistry {
	registry := &TemplateRegistry{}

	parseTemplateList([]struct {
		target  **template.Template
		name    string
		content string
	}{
		{&registry.headerTmpl, "header", tmplHeader},
		{&registry.fakeStructTmpl, "fakeStruct", tmplFakeStruct},
		{&registry.overridesTmpl, "overrides", tmplOverrides},
		{&registry.constructorTmpl, "constructor", tmplConstructor},
		{&registry.assertionsTmpl, "assertions", tmplAssertions},
		{&registry.methodTmpl, "method", tmplMethod},
	})

	return registry
}

// WriteAssertions writes the compile-time contract assertions.
func (r *TemplateRegistry) WriteAssertions(buf *bytes.Buffer, data any) {
	execute(r.assertionsTmpl, buf, data)
}

// WriteConstructor writes the fake's constructor.
func (r *TemplateRegistry) WriteConstructor(buf *bytes.Buffer, data any) {
	execute(r.constructorTmpl, buf, data)
}

// WriteFakeStruct writes the fake type declaration.
func (r *TemplateRegistry) WriteFakeStruct(buf *bytes.Buffer, data any) {
	execute(r.fakeStructTmpl, buf, data)
}

// WriteHeader writes the generated-code banner, package clause, and imports.
func (r *TemplateRegistry) WriteHeader(buf *bytes.Buffer, data any) {
	execute(r.headerTmpl, buf, data)
}

// WriteMethod writes one dispatching method.
func (r *TemplateRegistry) WriteMethod(buf *bytes.Buffer, data any) {
	execute(r.methodTmpl, buf, data)
}

// WriteOverrides writes the override table type.
func (r *TemplateRegistry) WriteOverrides(buf *bytes.Buffer, data any) {
	execute(r.overridesTmpl, buf, data)
}

// unexported constants.
const (
	tmplAssertions = `{{range .Assertions}}
var _ {{.}} = {{$.AssertValue}}
{{end}}`
	tmplConstructor = `
// {{.CtorName}} returns a {{.FakeName}} with every override unset.
func {{.CtorName}}{{.TypeParamsDecl}}({{.CtorParams}}) {{.CtorResult}} {
{{- range .CtorBody}}
	{{.}}
{{- end}}
}
`
	tmplFakeStruct = `
// {{.FakeName}} is a test double for {{.TargetType}} ({{.KindName}}).
// Assign fields of Overrides to give its members behavior; a member whose field is nil panics with
// *impfake.NotConfiguredError when called.
type {{.FakeName}}{{.TypeParamsDecl}} struct {
{{- if .Embed}}
	{{.Embed}}
{{- end}}
	Overrides {{.OverridesName}}{{.TypeParamsUse}}
}
`
	tmplHeader = `// Code generated by fakegen. DO NOT EDIT.

package {{.PkgName}}

import (
{{- range .Imports}}
	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{- end}}
)
`
	tmplMethod = `
// {{.Doc}}
func ({{.Receiver}}) {{.Name}}({{.Params}}){{.Results}} {
	if {{.RecvName}}.Overrides.{{.Slot}} == nil {
		{{.Runtime}}.NotConfigured("{{.FakeName}}", "{{.Member}}")
	}

	{{if .HasResults}}return {{end}}{{.RecvName}}.Overrides.{{.Slot}}({{.Args}})
}
`
	tmplOverrides = `
// {{.OverridesName}} holds one override per synthesized member of {{.FakeName}}. Unset overrides are nil.
type {{.OverridesName}}{{.TypeParamsDecl}} struct {
{{- range .Slots}}
	{{.Name}} func({{.Params}}){{.Results}}
{{- end}}
}
`
)

func execute(tmpl *template.Template, buf *bytes.Buffer, data any) {
	err := tmpl.Execute(buf, data)
	if err != nil {
		panic(fmt.Sprintf("failed to execute %s template: %v", tmpl.Name(), err))
	}
}

// parseTemplate is a helper function that parses a template using template.Must().
// Templates are hardcoded constants, so parsing cannot fail at runtime.
func parseTemplate(name, content string) *template.Template {
	return template.Must(template.New(name).Parse(content))
}

// parseTemplateList parses a list of templates and assigns them to their targets.
func parseTemplateList(templates []struct {
	target  **template.Template
	name    string
	content string
},
) {
	for _, def := range templates {
		*def.target = parseTemplate(def.name, def.content)
	}
}
