package atom

import (
	"encoding/base64"
	"encoding/xml"
	"strings"

	"github.com/andaru/syndication/coerce"
	"github.com/andaru/syndication/fill"
	"github.com/andaru/syndication/xmlutil"
	"github.com/antchfx/xmlquery"
)

var (
	attrType = xml.Name{Local: "type"}
	attrMode = xml.Name{Local: "mode"}
	attrSrc  = xml.Name{Local: "src"}
	xhtmlDiv = xmlutil.XMLName("div", xmlutil.NSXHTML)
)

// Atom 0.3 media types with a text construct equivalent
const (
	mimeText  = "text/plain"
	mimeHTML  = "text/html"
	mimeXHTML = "application/xhtml+xml"
)

// wrap returns the xhtml:div holding the markup of n. The div itself
// is unwrapped first when n already holds one.
func wrap(n *xmlquery.Node) string {
	if div := xmlutil.Child(n, xhtmlDiv); div != nil {
		n = div
	}
	return `<div xmlns="` + xmlutil.NSXHTML + `">` + xmlutil.InnerXML(n) + `</div>`
}

// text10 reads an Atom 1.0 text construct.
func text10(n *xmlquery.Node, c *fill.Context) *Text {
	typ, _ := xmlutil.AttrValue(n, attrType)
	switch coerce.Fold(typ) {
	case "", TypeText:
		return &Text{Type: TypeText, Content: xmlutil.Text(n)}
	case TypeHTML:
		return &Text{Type: TypeHTML, Content: xmlutil.Text(n)}
	case TypeXHTML:
		return &Text{Type: TypeXHTML, Content: wrap(n)}
	}
	c.Skip(n, typ, "unknown text construct type")
	return nil
}

// text03 reads an Atom 0.3 text construct, whose type attribute is a
// media type and whose mode attribute says how the content is encoded.
func text03(n *xmlquery.Node, c *fill.Context) *Text {
	typ := mimeText
	if v, ok := xmlutil.AttrValue(n, attrType); ok {
		typ = coerce.Fold(v)
	}
	kind := TypeText
	if typ == mimeHTML {
		kind = TypeHTML
	}
	mode, _ := xmlutil.AttrValue(n, attrMode)
	switch coerce.Fold(mode) {
	case "escaped":
		return &Text{Type: kind, Content: xmlutil.Text(n)}
	case "base64":
		b, err := base64.StdEncoding.DecodeString(xmlutil.Text(n))
		if err != nil {
			c.Skip(n, mode, "malformed base64 content")
			return nil
		}
		return &Text{Type: kind, Content: string(b)}
	case "", "xml":
		if typ == mimeXHTML || len(xmlutil.Elements(n)) > 0 {
			return &Text{Type: TypeXHTML, Content: wrap(n)}
		}
		return &Text{Type: kind, Content: xmlutil.Text(n)}
	}
	c.Skip(n, mode, "unknown content mode")
	return nil
}

func isXML(mediaType string) bool {
	return strings.HasSuffix(mediaType, "+xml") || strings.HasSuffix(mediaType, "/xml")
}

// content10 reads Atom 1.0 entry content.
func content10(e *Entry, n *xmlquery.Node, c *fill.Context) {
	ct := &Content{Type: TypeText}
	if v, ok := xmlutil.AttrValue(n, attrType); ok {
		ct.Type = strings.TrimSpace(v)
	}
	if v, ok := xmlutil.AttrValue(n, attrSrc); ok {
		if ct.Src, ok = c.URI(n, v); !ok {
			c.Skip(n, v, "malformed content src")
			return
		}
		e.Content = ct
		return
	}
	switch typ := coerce.Fold(ct.Type); {
	case typ == TypeXHTML:
		ct.Content = wrap(n)
	case isXML(typ):
		ct.Content = xmlutil.InnerXML(n)
	default:
		ct.Content = xmlutil.Text(n)
	}
	e.Content = ct
}

// content03 reads Atom 0.3 entry content. Media types other than text,
// HTML and XHTML are kept as the content type.
func content03(e *Entry, n *xmlquery.Node, c *fill.Context) {
	t := text03(n, c)
	if t == nil {
		return
	}
	ct := &Content{Type: t.Type, Content: t.Content}
	if v, ok := xmlutil.AttrValue(n, attrType); ok {
		switch typ := coerce.Fold(v); typ {
		case mimeText, mimeHTML, mimeXHTML:
		default:
			ct.Type = typ
		}
	}
	e.Content = ct
}

// ReadText reads an Atom 1.0 text construct. It is used by dialects
// which embed Atom elements.
func ReadText(n *xmlquery.Node, c *fill.Context) *Text { return text10(n, c) }

// ReadCategory reads an Atom 1.0 category.
func ReadCategory(n *xmlquery.Node, c *fill.Context) Category {
	cat := Category{}
	categoryTable.Apply(&cat, n, c)
	return cat
}
