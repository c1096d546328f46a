package rss

import (
	"encoding/xml"
	"net/url"
	"time"

	"github.com/andaru/syndication/coerce"
	"github.com/andaru/syndication/fill"
	"github.com/andaru/syndication/format"
	"github.com/andaru/syndication/xmlutil"
	"github.com/antchfx/xmlquery"
)

// dialect holds the rules of one RSS revision
type dialect struct {
	rdf bool
	// ns is the namespace of the RSS elements
	ns      string
	channel fill.Table[*Channel]
	// siblings is applied to rdf:RDF in the RDF revisions
	siblings fill.Table[*Channel]
}

var dialects = map[format.Version]*dialect{
	format.V09:  rdfDialect(xmlutil.NSRss090, false),
	format.V091: userland(format.V091),
	format.V092: userland(format.V092),
	format.V10:  rdfDialect(xmlutil.NSRss10, true),
	format.V20:  userland(format.V20),
}

func local(ns string) func(string) xml.Name {
	return func(s string) xml.Name { return xmlutil.XMLName(s, ns) }
}

var name = local("")

var rdfAbout = xmlutil.XMLName("about", xmlutil.NSRDF)

// userland returns the rules of RSS 0.91, 0.92 and 2.0, which share the
// unqualified <rss><channel> layout.
func userland(v format.Version) *dialect {
	channel := fill.Table[*Channel]{
		fill.Elem(name("title"), fill.String(func(ch *Channel, s string) { ch.Title = s })),
		fill.Elem(name("link"), fill.URI(func(ch *Channel, u *url.URL) { ch.Link = u })),
		fill.Elem(name("description"), fill.String(func(ch *Channel, s string) { ch.Description = s })),
		fill.Elem(name("language"), fill.String(func(ch *Channel, s string) { ch.Language = s })),
		fill.Elem(name("copyright"), fill.String(func(ch *Channel, s string) { ch.Copyright = s })),
		fill.Elem(name("managingEditor"), fill.String(func(ch *Channel, s string) { ch.ManagingEditor = s })),
		fill.Elem(name("webMaster"), fill.String(func(ch *Channel, s string) { ch.WebMaster = s })),
		fill.Elem(name("pubDate"), fill.Time(coerce.RFC822, func(ch *Channel, t time.Time) { ch.PubDate = t })),
		fill.Elem(name("lastBuildDate"), fill.Time(coerce.RFC822, func(ch *Channel, t time.Time) { ch.LastBuildDate = t })),
		fill.Elem(name("docs"), fill.URI(func(ch *Channel, u *url.URL) { ch.Docs = u })),
		fill.Elem(name("rating"), fill.String(func(ch *Channel, s string) { ch.Rating = s })),
		fill.Child(name("image"), image(name, v != format.V20)),
		fill.Child(name("textInput"), textInput(name, false)),
		skipDays(name),
	}
	item := fill.Table[*Item]{
		fill.Elem(name("title"), fill.String(func(it *Item, s string) { it.Title = s })),
		fill.Elem(name("link"), fill.URI(func(it *Item, u *url.URL) { it.Link = u })),
		fill.Elem(name("description"), fill.String(func(it *Item, s string) { it.Description = s })),
	}
	if v == format.V091 {
		channel = append(channel, skipHours(name, 1))
		channel = append(channel, fill.Each(name("item"), items(item)))
		return &dialect{channel: channel}
	}

	channel = append(channel,
		fill.Child(name("cloud"), cloud),
		fill.Each(name("category"), func(ch *Channel, n *xmlquery.Node, c *fill.Context) {
			ch.Categories = append(ch.Categories, category(n))
		}),
	)
	item = append(item,
		fill.Child(name("source"), source),
		fill.Each(name("enclosure"), enclosure),
		fill.Each(name("category"), func(it *Item, n *xmlquery.Node, c *fill.Context) {
			it.Categories = append(it.Categories, category(n))
		}),
	)
	if v == format.V092 {
		channel = append(channel, skipHours(name, 1))
		channel = append(channel, fill.Each(name("item"), items(item)))
		return &dialect{channel: channel}
	}

	channel = append(channel,
		skipHours(name, 0),
		fill.Elem(name("generator"), fill.String(func(ch *Channel, s string) { ch.Generator = s })),
		fill.Elem(name("ttl"), fill.Int(func(ch *Channel, ttl int) { ch.TTL = ttl })),
	)
	item = append(item,
		fill.Elem(name("author"), fill.String(func(it *Item, s string) { it.Author = s })),
		fill.Elem(name("comments"), fill.URI(func(it *Item, u *url.URL) { it.Comments = u })),
		fill.Child(name("guid"), guid),
		fill.Elem(name("pubDate"), fill.Time(coerce.RFC822, func(it *Item, t time.Time) { it.PubDate = t })),
	)
	channel = append(channel, fill.Each(name("item"), items(item)))
	return &dialect{channel: channel}
}

// rdfDialect returns the rules of the RDF revisions, whose elements are
// in namespace ns. RSS 1.0 adds rdf:about identifiers and item
// descriptions to RSS 0.9.
func rdfDialect(ns string, v10 bool) *dialect {
	name := local(ns)
	channel := fill.Table[*Channel]{
		fill.Elem(name("title"), fill.String(func(ch *Channel, s string) { ch.Title = s })),
		fill.Elem(name("link"), fill.URI(func(ch *Channel, u *url.URL) { ch.Link = u })),
		fill.Elem(name("description"), fill.String(func(ch *Channel, s string) { ch.Description = s })),
	}
	item := fill.Table[*Item]{
		fill.Elem(name("title"), fill.String(func(it *Item, s string) { it.Title = s })),
		fill.Elem(name("link"), fill.URI(func(it *Item, u *url.URL) { it.Link = u })),
	}
	if v10 {
		channel = append(channel, fill.Attr(rdfAbout, fill.URI(func(ch *Channel, u *url.URL) { ch.About = u })))
		item = append(item,
			fill.Attr(rdfAbout, fill.URI(func(it *Item, u *url.URL) { it.About = u })),
			fill.Elem(name("description"), fill.String(func(it *Item, s string) { it.Description = s })),
		)
	}
	return &dialect{
		rdf:     true,
		ns:      ns,
		channel: channel,
		siblings: fill.Table[*Channel]{
			fill.Child(name("image"), image(name, false)),
			fill.Child(name("textinput"), textInput(name, v10)),
			fill.Each(name("item"), items(item)),
		},
	}
}

func items(tbl fill.Table[*Item]) fill.NodeFunc[*Channel] {
	return func(ch *Channel, n *xmlquery.Node, c *fill.Context) {
		it := &Item{}
		tbl.Apply(it, n, c)
		c.Extend(it, n)
		ch.Items = append(ch.Items, it)
	}
}

func image(name func(string) xml.Name, clamped bool) fill.NodeFunc[*Channel] {
	tbl := fill.Table[*Image]{
		fill.Attr(rdfAbout, fill.URI(func(img *Image, u *url.URL) { img.About = u })),
		fill.Elem(name("url"), fill.URI(func(img *Image, u *url.URL) { img.URL = u })),
		fill.Elem(name("title"), fill.String(func(img *Image, s string) { img.Title = s })),
		fill.Elem(name("link"), fill.URI(func(img *Image, u *url.URL) { img.Link = u })),
		fill.Elem(name("width"), fill.Int(func(img *Image, v int) { img.Width = v })),
		fill.Elem(name("height"), fill.Int(func(img *Image, v int) { img.Height = v })),
		fill.Elem(name("description"), fill.String(func(img *Image, s string) { img.Description = s })),
	}
	return func(ch *Channel, n *xmlquery.Node, c *fill.Context) {
		img := &Image{}
		tbl.Apply(img, n, c)
		if clamped {
			clamp(img)
		}
		ch.Image = img
	}
}

func textInput(name func(string) xml.Name, about bool) fill.NodeFunc[*Channel] {
	tbl := fill.Table[*TextInput]{
		fill.Elem(name("title"), fill.String(func(ti *TextInput, s string) { ti.Title = s })),
		fill.Elem(name("description"), fill.String(func(ti *TextInput, s string) { ti.Description = s })),
		fill.Elem(name("name"), fill.String(func(ti *TextInput, s string) { ti.Name = s })),
		fill.Elem(name("link"), fill.URI(func(ti *TextInput, u *url.URL) { ti.Link = u })),
	}
	if about {
		tbl = append(tbl, fill.Attr(rdfAbout, fill.URI(func(ti *TextInput, u *url.URL) { ti.About = u })))
	}
	return func(ch *Channel, n *xmlquery.Node, c *fill.Context) {
		ti := &TextInput{}
		tbl.Apply(ti, n, c)
		ch.TextInput = ti
	}
}

var cloudTable = fill.Table[*Cloud]{
	fill.Attr(name("domain"), fill.String(func(cl *Cloud, s string) { cl.Domain = s })),
	fill.Attr(name("port"), fill.Int(func(cl *Cloud, v int) { cl.Port = v })),
	fill.Attr(name("path"), fill.String(func(cl *Cloud, s string) { cl.Path = s })),
	fill.Attr(name("registerProcedure"), fill.String(func(cl *Cloud, s string) { cl.RegisterProcedure = s })),
	fill.Attr(name("protocol"), fill.String(func(cl *Cloud, s string) { cl.Protocol = s })),
}

func cloud(ch *Channel, n *xmlquery.Node, c *fill.Context) {
	ch.Cloud = &Cloud{}
	cloudTable.Apply(ch.Cloud, n, c)
}

func category(n *xmlquery.Node) Category {
	domain, _ := xmlutil.AttrValue(n, name("domain"))
	return Category{Domain: domain, Value: xmlutil.Text(n)}
}

var enclosureTable = fill.Table[*Enclosure]{
	fill.Attr(name("url"), fill.URI(func(e *Enclosure, u *url.URL) { e.URL = u })),
	fill.Attr(name("length"), fill.Int64(func(e *Enclosure, v int64) { e.Length = v })),
	fill.Attr(name("type"), fill.String(func(e *Enclosure, s string) { e.Type = s })),
}

func enclosure(it *Item, n *xmlquery.Node, c *fill.Context) {
	e := Enclosure{}
	enclosureTable.Apply(&e, n, c)
	it.Enclosures = append(it.Enclosures, e)
}

func source(it *Item, n *xmlquery.Node, c *fill.Context) {
	it.Source = &Source{Title: xmlutil.Text(n)}
	if v, ok := xmlutil.AttrValue(n, name("url")); ok {
		it.Source.URL, _ = c.URI(n, v)
	}
}

func guid(it *Item, n *xmlquery.Node, c *fill.Context) {
	it.Guid = &Guid{Value: xmlutil.Text(n), IsPermaLink: true}
	if v, ok := xmlutil.AttrValue(n, name("isPermaLink")); ok {
		if b, valid := coerce.Bool(v); valid {
			it.Guid.IsPermaLink = b
		} else {
			c.Skip(n, v, "malformed isPermaLink")
		}
	}
}
