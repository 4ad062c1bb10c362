package assetmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "hyphenated", in: "hero-banner.png", want: "HeroBanner"},
		{name: "underscore and at", in: "icon_set@2x.svg", want: "IconSet2x"},
		{name: "single segment", in: "logo.svg", want: "Logo"},
		{name: "rest of segment untouched", in: "myIcon-smallBadge.webp", want: "MyIconSmallBadge"},
		{name: "leading delimiter", in: "-arrow.png", want: "Arrow"},
		{name: "repeated delimiters", in: "a--b__c.png", want: "ABC"},
		{name: "only final extension stripped", in: "archive.min.svg", want: "Archive.min"},
		{name: "no extension", in: "README", want: "README"},
		{name: "trailing dot kept", in: "odd.", want: "Odd."},
		{name: "dotfile is empty", in: ".png", want: ""},
		{name: "empty", in: "", want: ""},
		{name: "only delimiters", in: "-_@.svg", want: ""},
		{name: "spaces not split by default", in: "my icon.png", want: "My icon"},
		{name: "non-ascii first rune", in: "élan-vital.png", want: "ÉlanVital"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToKey(tt.in))
		})
	}
}

func TestNormalizer_SplitWhitespace(t *testing.T) {
	n := Normalizer{SplitWhitespace: true}

	assert.Equal(t, "MyIcon", n.Key("my icon.png"))
	assert.Equal(t, "HeroBannerWide", n.Key("hero banner\twide.jpg"))
	assert.Equal(t, "IconSet2x", n.Key("icon_set@2x.svg"))
}

func TestToKey_Collisions(t *testing.T) {
	// Different sources, same key: the walker is responsible for the policy.
	assert.Equal(t, ToKey("a-b.png"), ToKey("a_b.png"))
	assert.Equal(t, "AB", ToKey("a@b.svg"))
}
