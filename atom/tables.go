package atom

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

// dialect holds the rules of one Atom version
type dialect struct {
	ns    string
	feed  fill.Table[*Feed]
	entry fill.Table[*Entry]
}

var dialects = map[format.Version]*dialect{
	format.V03: atom03(),
	format.V10: atom10(),
}

func attr(local string) xml.Name { return xml.Name{Local: local} }

type textReader func(*xmlquery.Node, *fill.Context) *Text

func text[T any](read textReader, set func(T, *Text)) fill.NodeFunc[T] {
	return func(t T, n *xmlquery.Node, c *fill.Context) {
		if v := read(n, c); v != nil {
			set(t, v)
		}
	}
}

func person[T any](tbl fill.Table[*Person], add func(T, Person)) fill.NodeFunc[T] {
	return func(t T, n *xmlquery.Node, c *fill.Context) {
		p := Person{}
		tbl.Apply(&p, n, c)
		add(t, p)
	}
}

var linkTable = fill.Table[*Link]{
	fill.Attr(attr("href"), fill.URI(func(l *Link, u *url.URL) { l.Href = u })),
	fill.Attr(attr("rel"), fill.String(func(l *Link, s string) { l.Rel = s })),
	fill.Attr(attr("type"), fill.String(func(l *Link, s string) { l.Type = s })),
	fill.Attr(attr("hreflang"), fill.String(func(l *Link, s string) { l.HrefLang = s })),
	fill.Attr(attr("title"), fill.String(func(l *Link, s string) { l.Title = s })),
	fill.Attr(attr("length"), fill.Int64(func(l *Link, v int64) { l.Length = v })),
}

func link[T any](add func(T, Link)) fill.NodeFunc[T] {
	return func(t T, n *xmlquery.Node, c *fill.Context) {
		l := Link{}
		linkTable.Apply(&l, n, c)
		add(t, l)
	}
}

var categoryTable = fill.Table[*Category]{
	fill.Attr(attr("term"), fill.String(func(cat *Category, s string) { cat.Term = s })),
	fill.Attr(attr("scheme"), fill.URI(func(cat *Category, u *url.URL) { cat.Scheme = u })),
	fill.Attr(attr("label"), fill.String(func(cat *Category, s string) { cat.Label = s })),
}

func category[T any](add func(T, Category)) fill.NodeFunc[T] {
	return func(t T, n *xmlquery.Node, c *fill.Context) {
		cat := Category{}
		categoryTable.Apply(&cat, n, c)
		add(t, cat)
	}
}

// generator reads a generator whose URI is in the attribute uriAttr
func generator[T any](uriAttr string, set func(T, *Generator)) fill.NodeFunc[T] {
	tbl := fill.Table[*Generator]{
		fill.Attr(attr(uriAttr), fill.URI(func(g *Generator, u *url.URL) { g.URI = u })),
		fill.Attr(attr("version"), fill.String(func(g *Generator, s string) { g.Version = s })),
	}
	return func(t T, n *xmlquery.Node, c *fill.Context) {
		g := &Generator{Value: xmlutil.Text(n)}
		tbl.Apply(g, n, c)
		set(t, g)
	}
}

func entries(v format.Version, tbl fill.Table[*Entry]) fill.NodeFunc[*Feed] {
	return func(f *Feed, n *xmlquery.Node, c *fill.Context) {
		e := &Entry{Version: v}
		tbl.Apply(e, n, c)
		c.Extend(e, n)
		f.Entries = append(f.Entries, e)
	}
}

func atom10() *dialect {
	name := func(local string) xml.Name { return xmlutil.XMLName(local, xmlutil.NSAtom10) }
	date := coerce.RFC3339
	persons := fill.Table[*Person]{
		fill.Elem(name("name"), fill.String(func(p *Person, s string) { p.Name = s })),
		fill.Elem(name("uri"), fill.URI(func(p *Person, u *url.URL) { p.URI = u })),
		fill.Elem(name("email"), fill.String(func(p *Person, s string) { p.Email = s })),
	}

	source := fill.Table[*Source]{
		fill.Elem(name("id"), fill.String(func(s *Source, v string) { s.ID = v })),
		fill.Child(name("title"), text(text10, func(s *Source, t *Text) { s.Title = t })),
		fill.Child(name("subtitle"), text(text10, func(s *Source, t *Text) { s.Subtitle = t })),
		fill.Child(name("rights"), text(text10, func(s *Source, t *Text) { s.Rights = t })),
		fill.Elem(name("updated"), fill.Time(date, func(s *Source, t time.Time) { s.Updated = t })),
		fill.Each(name("author"), person(persons, func(s *Source, p Person) { s.Authors = append(s.Authors, p) })),
		fill.Each(name("contributor"), person(persons, func(s *Source, p Person) { s.Contributors = append(s.Contributors, p) })),
		fill.Each(name("category"), category(func(s *Source, cat Category) { s.Categories = append(s.Categories, cat) })),
		fill.Each(name("link"), link(func(s *Source, l Link) { s.Links = append(s.Links, l) })),
		fill.Child(name("generator"), generator("uri", func(s *Source, g *Generator) { s.Generator = g })),
		fill.Elem(name("icon"), fill.URI(func(s *Source, u *url.URL) { s.Icon = u })),
		fill.Elem(name("logo"), fill.URI(func(s *Source, u *url.URL) { s.Logo = u })),
	}

	entry := fill.Table[*Entry]{
		fill.Elem(name("id"), fill.String(func(e *Entry, s string) { e.ID = s })),
		fill.Child(name("title"), text(text10, func(e *Entry, t *Text) { e.Title = t })),
		fill.Child(name("summary"), text(text10, func(e *Entry, t *Text) { e.Summary = t })),
		fill.Child(name("rights"), text(text10, func(e *Entry, t *Text) { e.Rights = t })),
		fill.Elem(name("updated"), fill.Time(date, func(e *Entry, t time.Time) { e.Updated = t })),
		fill.Elem(name("published"), fill.Time(date, func(e *Entry, t time.Time) { e.Published = t })),
		fill.Each(name("author"), person(persons, func(e *Entry, p Person) { e.Authors = append(e.Authors, p) })),
		fill.Each(name("contributor"), person(persons, func(e *Entry, p Person) { e.Contributors = append(e.Contributors, p) })),
		fill.Each(name("category"), category(func(e *Entry, cat Category) { e.Categories = append(e.Categories, cat) })),
		fill.Each(name("link"), link(func(e *Entry, l Link) { e.Links = append(e.Links, l) })),
		fill.Child(name("content"), content10),
		fill.Child(name("source"), func(e *Entry, n *xmlquery.Node, c *fill.Context) {
			e.Source = &Source{}
			source.Apply(e.Source, n, c)
		}),
	}

	feed := fill.Table[*Feed]{
		fill.Elem(name("id"), fill.String(func(f *Feed, s string) { f.ID = s })),
		fill.Child(name("title"), text(text10, func(f *Feed, t *Text) { f.Title = t })),
		fill.Child(name("subtitle"), text(text10, func(f *Feed, t *Text) { f.Subtitle = t })),
		fill.Child(name("rights"), text(text10, func(f *Feed, t *Text) { f.Rights = t })),
		fill.Elem(name("updated"), fill.Time(date, func(f *Feed, t time.Time) { f.Updated = t })),
		fill.Each(name("author"), person(persons, func(f *Feed, p Person) { f.Authors = append(f.Authors, p) })),
		fill.Each(name("contributor"), person(persons, func(f *Feed, p Person) { f.Contributors = append(f.Contributors, p) })),
		fill.Each(name("category"), category(func(f *Feed, cat Category) { f.Categories = append(f.Categories, cat) })),
		fill.Each(name("link"), link(func(f *Feed, l Link) { f.Links = append(f.Links, l) })),
		fill.Child(name("generator"), generator("uri", func(f *Feed, g *Generator) { f.Generator = g })),
		fill.Elem(name("icon"), fill.URI(func(f *Feed, u *url.URL) { f.Icon = u })),
		fill.Elem(name("logo"), fill.URI(func(f *Feed, u *url.URL) { f.Logo = u })),
		fill.Each(name("entry"), entries(format.V10, entry)),
	}
	return &dialect{ns: xmlutil.NSAtom10, feed: feed, entry: entry}
}

func atom03() *dialect {
	name := func(local string) xml.Name { return xmlutil.XMLName(local, xmlutil.NSAtom03) }
	date := coerce.RFC3339
	persons := fill.Table[*Person]{
		fill.Elem(name("name"), fill.String(func(p *Person, s string) { p.Name = s })),
		fill.Elem(name("url"), fill.URI(func(p *Person, u *url.URL) { p.URI = u })),
		fill.Elem(name("email"), fill.String(func(p *Person, s string) { p.Email = s })),
	}

	entry := fill.Table[*Entry]{
		fill.Elem(name("id"), fill.String(func(e *Entry, s string) { e.ID = s })),
		fill.Child(name("title"), text(text03, func(e *Entry, t *Text) { e.Title = t })),
		fill.Child(name("summary"), text(text03, func(e *Entry, t *Text) { e.Summary = t })),
		fill.Elem(name("modified"), fill.Time(date, func(e *Entry, t time.Time) { e.Updated = t })),
		fill.Elem(name("issued"), fill.Time(date, func(e *Entry, t time.Time) { e.Published = t })),
		fill.Elem(name("created"), fill.Time(date, func(e *Entry, t time.Time) { e.Created = t })),
		fill.Each(name("author"), person(persons, func(e *Entry, p Person) { e.Authors = append(e.Authors, p) })),
		fill.Each(name("contributor"), person(persons, func(e *Entry, p Person) { e.Contributors = append(e.Contributors, p) })),
		fill.Each(name("link"), link(func(e *Entry, l Link) { e.Links = append(e.Links, l) })),
		fill.Child(name("content"), content03),
	}

	feed := fill.Table[*Feed]{
		fill.Elem(name("id"), fill.String(func(f *Feed, s string) { f.ID = s })),
		fill.Child(name("title"), text(text03, func(f *Feed, t *Text) { f.Title = t })),
		fill.Child(name("tagline"), text(text03, func(f *Feed, t *Text) { f.Subtitle = t })),
		fill.Child(name("copyright"), text(text03, func(f *Feed, t *Text) { f.Rights = t })),
		fill.Elem(name("modified"), fill.Time(date, func(f *Feed, t time.Time) { f.Updated = t })),
		fill.Each(name("author"), person(persons, func(f *Feed, p Person) { f.Authors = append(f.Authors, p) })),
		fill.Each(name("contributor"), person(persons, func(f *Feed, p Person) { f.Contributors = append(f.Contributors, p) })),
		fill.Each(name("link"), link(func(f *Feed, l Link) { f.Links = append(f.Links, l) })),
		fill.Child(name("generator"), generator("url", func(f *Feed, g *Generator) { f.Generator = g })),
		fill.Each(name("entry"), entries(format.V03, entry)),
	}
	return &dialect{ns: xmlutil.NSAtom03, feed: feed, entry: entry}
}
