package format

import (
	"encoding/xml"
	"io"

	"github.com/andaru/syndication/xmlutil"
	"github.com/antchfx/xmlquery"
	"github.com/pkg/errors"
	"golang.org/x/net/html/charset"
)

// Detect returns the dialect of the document n belongs to. n may be the
// document node or any node within it; only the root element, its
// declarations and the names of its element children are inspected.
func Detect(n *xmlquery.Node) (Format, Version) {
	root := xmlutil.DocumentElement(n)
	if root == nil {
		return None, Version{}
	}
	var children []xml.Name
	for _, c := range xmlutil.Elements(root) {
		children = append(children, xmlutil.NodeName(c))
	}
	return detect(xmlutil.NodeName(root), xmlutil.Attrs(root), children)
}

// DetectReader returns the dialect of the XML document read from r. It
// reads no further than the root start element, or the first child of
// an RDF root declaring no RSS namespace. A document without any
// element yields None and no error; malformed XML before the root
// element is returned as an error.
func DetectReader(r io.Reader) (Format, Version, error) {
	d := xml.NewDecoder(r)
	d.CharsetReader = charset.NewReaderLabel
	for {
		token, err := d.Token()
		if err == io.EOF {
			return None, Version{}, nil
		}
		if err != nil {
			return None, Version{}, errors.Wrap(err, "format: reading root element")
		}
		if se, ok := token.(xml.StartElement); ok {
			f, v := detect(se.Name, se.Attr, nil)
			if f == None && se.Name == xmlutil.XMLName("RDF", xmlutil.NSRDF) {
				// the RSS namespace may be declared on the first child
				return detectRDFChild(d, se.Attr)
			}
			return f, v, nil
		}
	}
}

// detectRDFChild reads up to the first child of an RDF root and
// detects the RSS revision from its name.
func detectRDFChild(d *xml.Decoder, attrs []xml.Attr) (Format, Version, error) {
	for {
		token, err := d.Token()
		if err == io.EOF {
			return None, Version{}, nil
		}
		if err != nil {
			return None, Version{}, errors.Wrap(err, "format: reading RDF child element")
		}
		switch t := token.(type) {
		case xml.StartElement:
			f, v := detectRDF(attrs, []xml.Name{t.Name})
			return f, v, nil
		case xml.EndElement:
			return None, Version{}, nil
		}
	}
}

// detect is the shared detection algorithm. children may be nil when
// only the root start element is available.
func detect(root xml.Name, attrs []xml.Attr, children []xml.Name) (Format, Version) {
	version := func(fallback Version) Version {
		for _, a := range attrs {
			if a.Name.Space == "" && a.Name.Local == "version" {
				if v, ok := ParseVersion(a.Value); ok {
					return v
				}
				// present but unreadable: the format is known, the version is not
				return Version{}
			}
		}
		return fallback
	}

	switch {
	case root == xmlutil.XMLName("feed", xmlutil.NSAtom10), root == xmlutil.XMLName("entry", xmlutil.NSAtom10):
		return Atom, V10
	case root == xmlutil.XMLName("feed", xmlutil.NSAtom03), root == xmlutil.XMLName("entry", xmlutil.NSAtom03):
		return Atom, V03
	case root == xmlutil.XMLName("service", xmlutil.NSApp):
		return AtomServiceDocument, V10
	case root == xmlutil.XMLName("categories", xmlutil.NSApp):
		return AtomCategoryDocument, V10
	case root == xmlutil.XMLName("blog", xmlutil.NSBlogML):
		return BlogML, V20
	case root.Local == "APML" && (root.Space == xmlutil.NSApml || root.Space == ""):
		return Apml, version(V06)
	case root == xmlutil.XMLName("RDF", xmlutil.NSRDF):
		return detectRDF(attrs, children)
	case root.Local == "rss" && root.Space == "":
		return Rss, version(V20)
	case root.Local == "opml" && root.Space == "":
		return Opml, version(V20)
	case root.Local == "rsd" && (root.Space == xmlutil.NSRsd || root.Space == ""):
		return Rsd, version(V10)
	}
	return None, Version{}
}

// detectRDF distinguishes RSS 1.0 from RSS 0.9 by the namespaces
// declared on the RDF root, then by the namespace of its children.
func detectRDF(attrs []xml.Attr, children []xml.Name) (Format, Version) {
	declared := xmlutil.NewPrefixMap(attrs...)
	switch {
	case declared.Declares(xmlutil.NSRss10):
		return Rss, V10
	case declared.Declares(xmlutil.NSRss090):
		return Rss, V09
	}
	for _, c := range children {
		switch c.Space {
		case xmlutil.NSRss10:
			return Rss, V10
		case xmlutil.NSRss090:
			return Rss, V09
		}
	}
	return None, Version{}
}
