package assetmap

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// extPattern matches the final extension segment of a filename. A trailing
// dot with nothing after it is not an extension.
var extPattern = regexp.MustCompile(`\.[^.]+$`)

// Normalizer derives identifier-safe keys from asset filenames.
type Normalizer struct {
	// SplitWhitespace also treats spaces, tabs and other whitespace as
	// segment delimiters, for asset folders that contain spaced names.
	SplitWhitespace bool
}

// ToKey normalizes a filename with the default delimiters (-, _ and @).
//
//	ToKey("hero-banner.png")  == "HeroBanner"
//	ToKey("icon_set@2x.svg")  == "IconSet2x"
func ToKey(name string) string {
	return Normalizer{}.Key(name)
}

// Key strips the extension of name, splits the rest on delimiter characters,
// upper-cases the first character of every segment and joins the segments.
// An empty result is returned as-is.
func (n Normalizer) Key(name string) string {
	base := extPattern.ReplaceAllString(name, "")

	segments := strings.FieldsFunc(base, n.isDelimiter)

	var b strings.Builder
	b.Grow(len(base))
	for _, seg := range segments {
		b.WriteString(capitalize(seg))
	}
	return b.String()
}

func (n Normalizer) isDelimiter(r rune) bool {
	switch r {
	case '-', '_', '@':
		return true
	}
	return n.SplitWhitespace && unicode.IsSpace(r)
}

// capitalize upper-cases the first rune of s and leaves the rest unchanged.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
