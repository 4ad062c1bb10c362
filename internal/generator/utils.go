package generator

import (
	"bytes"
	"text/template"

	"github.com/assetgen/assetgen/internal/templates"
)

// executeTemplate loads a template, parses it with the provided funcMap, and
// returns the rendered text. Nothing is written to disk here so that a failed
// render never truncates an existing output file.
func executeTemplate(tmplName string, data interface{}, funcMap template.FuncMap) ([]byte, error) {
	// If funcMap is nil, use empty map
	if funcMap == nil {
		funcMap = template.FuncMap{}
	}

	t, err := templates.Parse(tmplName, funcMap)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
