package generator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"text/template"

	"github.com/assetgen/assetgen/internal/assetmap"
	"github.com/assetgen/assetgen/internal/config"
)

// indentUnit matches the layout of a two-space indented JSON document.
const indentUnit = "  "

// GetFuncMap returns the template functions used by the asset module template.
// "literal" renders an asset tree as an object literal whose leaves follow mode.
func GetFuncMap(mode config.Mode) template.FuncMap {
	return template.FuncMap{
		"literal": func(tree *assetmap.Branch) (string, error) {
			return Literal(tree, mode)
		},
	}
}

// Literal renders tree as an object literal. Keys appear in the tree's
// insertion order; an empty branch renders as "{}".
func Literal(tree *assetmap.Branch, mode config.Mode) (string, error) {
	leaf, err := leafRenderer(mode)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	writeBranch(&b, tree, 0, leaf)
	return b.String(), nil
}

func leafRenderer(mode config.Mode) (func(ref string) string, error) {
	switch mode {
	case config.ModeStatic:
		return quote, nil
	case config.ModeURL:
		return func(ref string) string {
			return "new URL(" + quote(escapePath(ref)) + ", import.meta.url).href"
		}, nil
	default:
		return nil, fmt.Errorf("unsupported mode %q", mode)
	}
}

func writeBranch(b *strings.Builder, br *assetmap.Branch, depth int, leaf func(string) string) {
	if br.Len() == 0 {
		b.WriteString("{}")
		return
	}

	b.WriteString("{\n")
	i := 0
	br.Each(func(key string, n assetmap.Node) {
		b.WriteString(strings.Repeat(indentUnit, depth+1))
		b.WriteString(quote(key))
		b.WriteString(": ")
		switch v := n.(type) {
		case *assetmap.Leaf:
			b.WriteString(leaf(v.Ref))
		case *assetmap.Branch:
			writeBranch(b, v, depth+1, leaf)
		}
		if i < br.Len()-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
		i++
	})
	b.WriteString(strings.Repeat(indentUnit, depth))
	b.WriteByte('}')
}

// escapePath percent-encodes ref as a URL path so that characters such as
// '#', '?' and '%' stay part of the resolved path.
func escapePath(ref string) string {
	return (&url.URL{Path: ref}).EscapedPath()
}

// quote returns s as a double-quoted JSON string, which is also a valid
// JavaScript string literal. HTML characters are left as-is.
func quote(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encoding a string cannot fail.
	_ = enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}
