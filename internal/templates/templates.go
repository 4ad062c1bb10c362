// Package templates holds the embedded text templates used for generated files.
package templates

import (
	"embed"
	"fmt"
	"text/template"
)

const (
	// AssetModule renders the generated asset map module.
	AssetModule = "assets.ts.tmpl"
	// ConfigScaffold renders a starter assetgen.yaml.
	ConfigScaffold = "assetgen.yaml.tmpl"
)

//go:embed *.tmpl
var templatesFS embed.FS

// Get returns the content of the specified template file.
func Get(name string) (string, error) {
	content, err := templatesFS.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("template %s not found: %w", name, err)
	}
	return string(content), nil
}

// Parse loads the named template and parses it with funcMap, which may be nil.
func Parse(name string, funcMap template.FuncMap) (*template.Template, error) {
	content, err := Get(name)
	if err != nil {
		return nil, err
	}
	t, err := template.New(name).Funcs(funcMap).Parse(content)
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", name, err)
	}
	return t, nil
}
