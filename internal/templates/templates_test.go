package templates

import (
	"strings"
	"testing"
	"text/template"
)

func TestGet(t *testing.T) {
	for _, name := range []string{AssetModule, ConfigScaffold} {
		content, err := Get(name)
		if err != nil {
			t.Fatalf("Get(%q) failed: %v", name, err)
		}
		if strings.TrimSpace(content) == "" {
			t.Errorf("Get(%q) returned empty content", name)
		}
	}
}

func TestGet_Missing(t *testing.T) {
	_, err := Get("nope.tmpl")
	if err == nil || !strings.Contains(err.Error(), "template nope.tmpl not found") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParse_AssetModuleNeedsLiteral(t *testing.T) {
	if _, err := Parse(AssetModule, nil); err == nil {
		t.Fatal("expected parse error without the literal function")
	}

	funcs := template.FuncMap{"literal": func(any) string { return "{}" }}
	if _, err := Parse(AssetModule, funcs); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
}
