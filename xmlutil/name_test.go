package xmlutil

import (
	"encoding/xml"
	"fmt"
	"strings"
	"testing"

	"github.com/antchfx/xmlquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXMLName(t *testing.T) {
	for _, tc := range []struct {
		local  string
		spaces []string
		want   xml.Name
	}{
		{local: "foo", want: xml.Name{Local: "foo"}},
		{local: "foo", spaces: []string{"bar"}, want: xml.Name{Local: "foo", Space: "bar"}},
		{local: "foo", spaces: []string{"bar", "baz"}, want: xml.Name{Local: "foo", Space: "bar"}},
		{want: xml.Name{}},
	} {
		t.Run(fmt.Sprintf("%v", tc.want), func(t *testing.T) { assert.New(t).Equal(tc.want, XMLName(tc.local, tc.spaces...)) })
	}
}

func TestNodeName(t *testing.T) {
	doc, err := xmlquery.Parse(strings.NewReader(`<feed xmlns="http://www.w3.org/2005/Atom"><title>x</title></feed>`))
	require.NoError(t, err)
	root := DocumentElement(doc)
	a := assert.New(t)
	a.Equal(XMLName("feed", NSAtom10), NodeName(root))
	a.Equal(XMLName("title", NSAtom10), NodeName(Child(root, XMLName("title", NSAtom10))))
	a.Equal(xml.Name{}, NodeName(nil))
}

func TestIsDeclaration(t *testing.T) {
	for _, tc := range []struct {
		name xml.Name
		want bool
	}{
		{name: XMLName("xmlns"), want: true},
		{name: XMLName("atom", "xmlns"), want: true},
		{name: XMLName("href")},
		{name: XMLName("lang", NSXML)},
	} {
		t.Run(fmt.Sprintf("%v", tc.name), func(t *testing.T) { assert.New(t).Equal(tc.want, IsDeclaration(tc.name)) })
	}
}
