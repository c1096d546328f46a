package format

import (
	"strings"
	"testing"

	"github.com/antchfx/xmlquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	for _, tc := range []struct {
		name    string
		input   string
		format  Format
		version Version
	}{
		{name: "atom 1.0 feed", input: `<feed xmlns="http://www.w3.org/2005/Atom"/>`, format: Atom, version: V10},
		{name: "atom 1.0 entry", input: `<a:entry xmlns:a="http://www.w3.org/2005/Atom"/>`, format: Atom, version: V10},
		{name: "atom 0.3 feed", input: `<feed version="0.3" xmlns="http://purl.org/atom/ns#"/>`, format: Atom, version: V03},
		{name: "rss 2.0", input: `<rss version="2.0"><channel/></rss>`, format: Rss, version: V20},
		{name: "rss 0.92", input: `<rss version="0.92"><channel/></rss>`, format: Rss, version: V092},
		{name: "rss 0.91", input: `<rss version="0.91"><channel/></rss>`, format: Rss, version: V091},
		{name: "rss without version", input: `<rss><channel/></rss>`, format: Rss, version: V20},
		{name: "rss unreadable version", input: `<rss version="two"><channel/></rss>`, format: Rss},
		{
			name:    "rss 1.0",
			input:   `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#" xmlns="http://purl.org/rss/1.0/"><channel/></rdf:RDF>`,
			format:  Rss,
			version: V10,
		},
		{
			name:    "rss 0.9",
			input:   `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#" xmlns="http://my.netscape.com/rdf/simple/0.9/"><channel/></rdf:RDF>`,
			format:  Rss,
			version: V09,
		},
		{
			name:    "rss 1.0 declared on channel",
			input:   `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"><channel xmlns="http://purl.org/rss/1.0/"/></rdf:RDF>`,
			format:  Rss,
			version: V10,
		},
		{
			name:    "rss 0.9 declared on prefixed channel",
			input:   `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"><!-- c --><n:channel xmlns:n="http://my.netscape.com/rdf/simple/0.9/"/></rdf:RDF>`,
			format:  Rss,
			version: V09,
		},
		{
			name:  "empty rdf",
			input: `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"></rdf:RDF>`,
		},
		{
			name:  "bare rdf",
			input: `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"><x/></rdf:RDF>`,
		},
		{name: "opml 1.1", input: `<opml version="1.1"><body/></opml>`, format: Opml, version: V11},
		{name: "opml 2.0", input: `<opml version="2.0"><body/></opml>`, format: Opml, version: V20},
		{name: "rsd 1.0", input: `<rsd version="1.0" xmlns="http://archipelago.phrasewise.com/rsd"/>`, format: Rsd, version: V10},
		{name: "rsd 0.6", input: `<rsd version="0.6"/>`, format: Rsd, version: V06},
		{name: "apml", input: `<APML version="0.6" xmlns="http://www.apml.org/apml-0.6"/>`, format: Apml, version: V06},
		{name: "blogml", input: `<blog xmlns="http://www.blogml.com/2006/09/BlogML"/>`, format: BlogML, version: V20},
		{name: "app service", input: `<service xmlns="http://www.w3.org/2007/app"/>`, format: AtomServiceDocument, version: V10},
		{name: "app categories", input: `<app:categories xmlns:app="http://www.w3.org/2007/app"/>`, format: AtomCategoryDocument, version: V10},
		{name: "unrelated", input: `<html><body/></html>`},
		{name: "feed without namespace", input: `<feed/>`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := xmlquery.Parse(strings.NewReader(tc.input))
			require.NoError(t, err)
			a := assert.New(t)
			f, v := Detect(doc)
			a.Equal(tc.format, f)
			a.Equal(tc.version, v)

			f, v, err = DetectReader(strings.NewReader(tc.input))
			a.NoError(err)
			a.Equal(tc.format, f)
			a.Equal(tc.version, v)
		})
	}
}

func TestDetectReaderStopsAtRoot(t *testing.T) {
	// everything after the root start element is malformed
	f, v, err := DetectReader(strings.NewReader(`<?xml version="1.0"?><!-- c --><rss version="0.91"><channel><<<`))
	assert.NoError(t, err)
	assert.Equal(t, Rss, f)
	assert.Equal(t, V091, v)

	f, _, err = DetectReader(strings.NewReader(``))
	assert.NoError(t, err)
	assert.Equal(t, None, f)

	_, _, err = DetectReader(strings.NewReader(`<<`))
	assert.Error(t, err)
}

func TestDetectEmpty(t *testing.T) {
	f, v := Detect(nil)
	assert.Equal(t, None, f)
	assert.True(t, v.IsZero())
}

func TestParseVersion(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Version
		ok   bool
	}{
		{in: "2.0", want: V20, ok: true},
		{in: "0.91", want: V091, ok: true},
		{in: "0.9", want: V09, ok: true},
		{in: " 1 ", want: V(1, 0), ok: true},
		{in: "1.0.3", want: V10, ok: true},
		{in: ""},
		{in: "x.1"},
		{in: "1.x"},
	} {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParseVersion(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
	assert.Equal(t, "0.91", V091.String())
	assert.Equal(t, "", Version{}.String())
}

func TestFormatText(t *testing.T) {
	for _, f := range []Format{Atom, Rss, Opml, BlogML, Apml, Rsd, AtomServiceDocument, AtomCategoryDocument} {
		t.Run(f.String(), func(t *testing.T) {
			a := assert.New(t)
			a.True(f.Valid())
			b, err := f.MarshalText()
			a.NoError(err)
			var got Format
			a.NoError(got.UnmarshalText(b))
			a.Equal(f, got)
		})
	}
	var f Format
	assert.NoError(t, f.UnmarshalText([]byte("rss")))
	assert.Equal(t, Rss, f)
	assert.Error(t, f.UnmarshalText([]byte("gopher")))
	assert.False(t, None.Valid())
	assert.False(t, Format(99).Valid())
	assert.Equal(t, "Format(99)", Format(99).String())
}
