package xmlutil

import (
	"strings"
	"testing"

	"github.com/antchfx/xmlquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const navDoc = `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#" xmlns="http://purl.org/rss/1.0/" xml:base="http://example.com/a/">
  <channel rdf:about="http://example.com/">
    <title> Channel </title>
    <link>http://example.com/</link>
  </channel>
  <item rdf:about="1" xml:base="b/"><title>One</title></item>
  <item rdf:about="2"><title>Two</title></item>
</rdf:RDF>`

func parseNav(t *testing.T) *xmlquery.Node {
	doc, err := xmlquery.Parse(strings.NewReader(navDoc))
	require.NoError(t, err)
	return doc
}

func TestSelectPath(t *testing.T) {
	doc := parseNav(t)
	a := assert.New(t)

	channel := SelectPath(doc, XMLName("RDF", NSRDF), XMLName("channel", NSRss10))
	require.NotNil(t, channel)
	a.Equal("Channel", Text(Child(channel, XMLName("title", NSRss10))))

	about, ok := AttrValue(channel, XMLName("about", NSRDF))
	a.True(ok)
	a.Equal("http://example.com/", about)

	a.Len(SelectAllPath(doc, XMLName("RDF", NSRDF), XMLName("item", NSRss10)), 2)
	a.Nil(SelectPath(doc, XMLName("RDF", NSRDF), XMLName("channel")))
	a.Nil(SelectPath(doc, XMLName("rss")))

	// starting from a nested node still selects from the top of the tree
	a.Equal(channel, SelectPath(channel, XMLName("RDF", NSRDF), XMLName("channel", NSRss10)))
}

func TestChildren(t *testing.T) {
	doc := parseNav(t)
	root := DocumentElement(doc)
	a := assert.New(t)

	a.Equal("RDF", root.Data)
	a.Len(Children(root, XMLName("item", NSRss10)), 2)
	a.Len(Elements(root), 3)
	a.Empty(Children(root, XMLName("item")))

	v, ok := ChildText(Child(root, XMLName("channel", NSRss10)), XMLName("link", NSRss10))
	a.True(ok)
	a.Equal("http://example.com/", v)

	_, ok = ChildText(root, XMLName("missing", NSRss10))
	a.False(ok)
	a.Contains(InnerXML(Child(root, XMLName("item", NSRss10))), "One")
}

func TestBase(t *testing.T) {
	doc := parseNav(t)
	items := SelectAllPath(doc, XMLName("RDF", NSRDF), XMLName("item", NSRss10))
	require.Len(t, items, 2)
	a := assert.New(t)

	base, ok := Base(items[0])
	a.True(ok)
	a.Equal("http://example.com/a/b/", base.String())

	base, ok = Base(items[1])
	a.True(ok)
	a.Equal("http://example.com/a/", base.String())

	_, ok = Base(nil)
	a.False(ok)
}

func TestExprCache(t *testing.T) {
	p := Path(XMLName("feed", NSAtom10))
	assert.Same(t, Expr(p), Expr(p))
}
