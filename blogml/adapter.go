package blogml

import (
	"encoding/base64"
	"encoding/xml"
	"net/url"
	"time"

	"github.com/andaru/syndication/coerce"
	"github.com/andaru/syndication/extension"
	"github.com/andaru/syndication/fill"
	"github.com/andaru/syndication/format"
	"github.com/andaru/syndication/settings"
	"github.com/andaru/syndication/xmlutil"
	"github.com/antchfx/xmlquery"
)

func name(local string) xml.Name { return xmlutil.XMLName(local, xmlutil.NSBlogML) }

func attr(local string) xml.Name { return xml.Name{Local: local} }

var postTypes = map[string]PostType{
	"normal":  PostNormal,
	"article": PostArticle,
}

// readText reads BlogML text content, decoding base64 content.
func readText(n *xmlquery.Node, c *fill.Context) *Text {
	typ := ContentText
	if v, ok := xmlutil.AttrValue(n, attr("type")); ok {
		typ = coerce.Fold(v)
	}
	switch typ {
	case ContentText, ContentHTML:
		return &Text{Type: typ, Content: xmlutil.Text(n)}
	case ContentXHTML:
		return &Text{Type: typ, Content: xmlutil.InnerXML(n)}
	case ContentBase64:
		b, err := base64.StdEncoding.DecodeString(xmlutil.Text(n))
		if err != nil {
			c.Skip(n, typ, "malformed base64 content")
			return nil
		}
		return &Text{Type: ContentText, Content: string(b)}
	}
	c.Skip(n, typ, "unknown content type")
	return nil
}

func text[T any](set func(T, *Text)) fill.NodeFunc[T] {
	return func(t T, n *xmlquery.Node, c *fill.Context) {
		if v := readText(n, c); v != nil {
			set(t, v)
		}
	}
}

var nodeTable = fill.Table[*Node]{
	fill.Attr(attr("id"), fill.String(func(nd *Node, s string) { nd.ID = s })),
	fill.Attr(attr("date-created"), fill.Time(coerce.RFC3339, func(nd *Node, t time.Time) { nd.Created = t })),
	fill.Attr(attr("date-modified"), fill.Time(coerce.RFC3339, func(nd *Node, t time.Time) { nd.Modified = t })),
	fill.Attr(attr("approved"), fill.Bool(func(nd *Node, b bool) { nd.Approved = b })),
	fill.Child(name("title"), text(func(nd *Node, t *Text) { nd.Title = t })),
}

var authorTable = fill.Table[*Author]{
	fill.Attr(attr("email"), fill.String(func(a *Author, s string) { a.Email = s })),
}

var categoryTable = fill.Table[*Category]{
	fill.Attr(attr("description"), fill.String(func(cat *Category, s string) { cat.Description = s })),
	fill.Attr(attr("parentref"), fill.String(func(cat *Category, s string) { cat.ParentRef = s })),
}

var commentTable = fill.Table[*Comment]{
	fill.Attr(attr("user-name"), fill.String(func(cm *Comment, s string) { cm.UserName = s })),
	fill.Attr(attr("user-email"), fill.String(func(cm *Comment, s string) { cm.UserEmail = s })),
	fill.Attr(attr("user-url"), fill.URI(func(cm *Comment, u *url.URL) { cm.UserURL = u })),
	fill.Child(name("content"), text(func(cm *Comment, t *Text) { cm.Content = t })),
}

var trackbackTable = fill.Table[*Trackback]{
	fill.Attr(attr("url"), fill.URI(func(tb *Trackback, u *url.URL) { tb.URL = u })),
}

var attachmentTable = fill.Table[*Attachment]{
	fill.Attr(attr("url"), fill.URI(func(at *Attachment, u *url.URL) { at.URL = u })),
	fill.Attr(attr("external-uri"), fill.URI(func(at *Attachment, u *url.URL) { at.ExternalURI = u })),
	fill.Attr(attr("mime-type"), fill.String(func(at *Attachment, s string) { at.MimeType = s })),
	fill.Attr(attr("size"), fill.Int64(func(at *Attachment, v int64) { at.Size = v })),
	fill.Attr(attr("embedded"), fill.Bool(func(at *Attachment, b bool) { at.Embedded = b })),
}

func attachment(p *Post, n *xmlquery.Node, c *fill.Context) {
	at := Attachment{}
	attachmentTable.Apply(&at, n, c)
	if at.Embedded {
		s := xmlutil.Text(n)
		if b, err := base64.StdEncoding.DecodeString(s); err == nil {
			at.Data = b
		} else {
			c.Skip(n, s, "malformed embedded attachment")
		}
	}
	p.Attachments = append(p.Attachments, at)
}

// ref returns a NodeFunc appending the ref attribute of an element
func ref(add func(*Post, string)) fill.NodeFunc[*Post] {
	return func(p *Post, n *xmlquery.Node, _ *fill.Context) {
		if v, ok := xmlutil.AttrValue(n, attr("ref")); ok {
			add(p, v)
		}
	}
}

var postTable = fill.Table[*Post]{
	fill.Attr(attr("post-url"), fill.URI(func(p *Post, u *url.URL) { p.URL = u })),
	fill.Attr(attr("type"), fill.Enum(postTypes, func(p *Post, pt PostType) { p.Type = pt })),
	fill.Attr(attr("hasexcerpt"), fill.Bool(func(p *Post, b bool) { p.HasExcerpt = b })),
	fill.Attr(attr("views"), fill.Int(func(p *Post, v int) { p.Views = v })),
	fill.Child(name("content"), text(func(p *Post, t *Text) { p.Content = t })),
	fill.Child(name("post-name"), text(func(p *Post, t *Text) { p.PostName = t })),
	fill.Child(name("excerpt"), text(func(p *Post, t *Text) { p.Excerpt = t })),
	fill.Within(name("authors"), name("author"), ref(func(p *Post, id string) { p.AuthorRefs = append(p.AuthorRefs, id) })),
	fill.Within(name("categories"), name("category"), ref(func(p *Post, id string) { p.CategoryRefs = append(p.CategoryRefs, id) })),
	fill.Within(name("comments"), name("comment"), func(p *Post, n *xmlquery.Node, c *fill.Context) {
		cm := Comment{}
		nodeTable.Apply(&cm.Node, n, c)
		commentTable.Apply(&cm, n, c)
		p.Comments = append(p.Comments, cm)
	}),
	fill.Within(name("trackbacks"), name("trackback"), func(p *Post, n *xmlquery.Node, c *fill.Context) {
		tb := Trackback{}
		nodeTable.Apply(&tb.Node, n, c)
		trackbackTable.Apply(&tb, n, c)
		p.Trackbacks = append(p.Trackbacks, tb)
	}),
	fill.Within(name("attachments"), name("attachment"), attachment),
}

var documentTable = fill.Table[*Document]{
	fill.Attr(attr("root-url"), fill.URI(func(d *Document, u *url.URL) { d.RootURL = u })),
	fill.Attr(attr("date-created"), fill.Time(coerce.RFC3339, func(d *Document, t time.Time) { d.Created = t })),
	fill.Child(name("title"), text(func(d *Document, t *Text) { d.Title = t })),
	fill.Child(name("sub-title"), text(func(d *Document, t *Text) { d.SubTitle = t })),
	fill.Within(name("authors"), name("author"), func(d *Document, n *xmlquery.Node, c *fill.Context) {
		a := Author{}
		nodeTable.Apply(&a.Node, n, c)
		authorTable.Apply(&a, n, c)
		d.Authors = append(d.Authors, a)
	}),
	fill.Within(name("extended-properties"), name("property"), func(d *Document, n *xmlquery.Node, _ *fill.Context) {
		key, ok := xmlutil.AttrValue(n, attr("name"))
		if !ok {
			return
		}
		if d.ExtendedProperties == nil {
			d.ExtendedProperties = map[string]string{}
		}
		d.ExtendedProperties[key], _ = xmlutil.AttrValue(n, attr("value"))
	}),
	fill.Within(name("categories"), name("category"), func(d *Document, n *xmlquery.Node, c *fill.Context) {
		cat := Category{}
		nodeTable.Apply(&cat.Node, n, c)
		categoryTable.Apply(&cat, n, c)
		d.Categories = append(d.Categories, cat)
	}),
	fill.Within(name("posts"), name("post"), func(d *Document, n *xmlquery.Node, c *fill.Context) {
		p := &Post{}
		nodeTable.Apply(&p.Node, n, c)
		postTable.Apply(p, n, c)
		c.Extend(p, n)
		d.Posts = append(d.Posts, p)
	}),
}

// Adapter fills a Document from a BlogML document.
type Adapter struct {
	src *fill.Source
}

// NewAdapter returns an Adapter for doc, a parsed BlogML 2.0 document.
// Extensions are looked up in reg.
func NewAdapter(doc *xmlquery.Node, s settings.Load, reg *extension.Registry) (*Adapter, error) {
	src, err := fill.NewSource("blogml.NewAdapter", doc, s, reg, xmlutil.NSBlogML)
	if err != nil {
		return nil, err
	}
	if src.Version() != format.V20 {
		return nil, src.Unsupported(format.BlogML)
	}
	return &Adapter{src: src}, nil
}

// Versions returns the BlogML versions an Adapter can fill from.
func Versions() []format.Version { return []format.Version{format.V20} }

// Version returns the BlogML version of the adapter's document.
func (a *Adapter) Version() format.Version { return a.src.Version() }

// Extensions returns the adapter used to discover extensions.
func (a *Adapter) Extensions() *extension.Adapter { return a.src.Extensions() }

// Fill populates target, which must be a *Document.
func (a *Adapter) Fill(target format.Resource) error {
	d, ok := target.(*Document)
	if !ok || d == nil {
		return fill.WrongTarget("blogml.Adapter.Fill", target)
	}
	root := a.src.Select(name("blog"))
	if root == nil {
		return nil
	}
	c := a.src.Context(root)
	documentTable.Apply(d, root, c)
	c.Extend(d, root)
	return nil
}
