package templates

// TemplateRegistry provides a centralized way to access all templates
type TemplateRegistry struct {
	templates map[string]string
}

// NewTemplateRegistry creates a new template registry with all templates
func NewTemplateRegistry() *TemplateRegistry {
	registry := &TemplateRegistry{
		templates: make(map[string]string),
	}

	registry.registerMemberTemplates()
	registry.registerMacroTemplates()

	return registry
}

// Get retrieves a template by name
func (tr *TemplateRegistry) Get(name string) (string, bool) {
	template, exists := tr.templates[name]
	return template, exists
}

// MustGet retrieves a template by name, panics if not found
func (tr *TemplateRegistry) MustGet(name string) string {
	template, exists := tr.templates[name]
	if !exists {
		panic("template not found: " + name)
	}
	return template
}

// Names returns the registered template names
func (tr *TemplateRegistry) Names() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	return names
}

// registerMemberTemplates registers the per-method templates. Every member
// renders on a single line so it can sit inside a macro continuation.
func (tr *TemplateRegistry) registerMemberTemplates() {
	// Member whose return type carried no template clause. The defaulted
	// template parameter defers instantiation until the member is used.
	tr.templates["forwarding-member"] = `template <typename = void> {{.ReturnType}} {{.Name}}({{declareParams .Params}}){{if .Const}} const{{end}}{{range .Qualifiers}} {{.}}{{end}} { return {{.Delegate}}.{{.Name}}({{forwardArgs .Params}}); }`

	// Member template: the clause is repeated and its arguments are passed on
	// explicitly since they may not be deducible from the call.
	tr.templates["forwarding-member-template"] = `{{.Clause}} {{.ReturnType}} {{.Name}}({{declareParams .Params}}){{if .Const}} const{{end}}{{range .Qualifiers}} {{.}}{{end}} { return {{.Delegate}}.template {{.Name}}<{{join .TemplateArgs ", "}}>({{forwardArgs .Params}}); }`
}

// registerMacroTemplates registers the header layout
func (tr *TemplateRegistry) registerMacroTemplates() {
	tr.templates["forwarding-macro"] = `// Code generated by fwdgen. DO NOT EDIT.

#ifndef {{.Guard}}
#define {{.Guard}}

{{.Includes}}
#define {{.Name}}({{.Delegate}}) \
public: \
{{range .Members}}    {{.}} \
{{end}}private:

#endif // {{.Guard}}
`
}

// Global template registry instance
var DefaultTemplateRegistry = NewTemplateRegistry()
