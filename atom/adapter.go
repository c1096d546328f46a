package atom

import (
	"sort"

	"github.com/andaru/syndication/extension"
	"github.com/andaru/syndication/fill"
	"github.com/andaru/syndication/format"
	"github.com/andaru/syndication/settings"
	"github.com/andaru/syndication/xmlutil"
	"github.com/antchfx/xmlquery"
)

// Adapter fills a Feed or an Entry from an Atom document.
type Adapter struct {
	src *fill.Source
	d   *dialect
}

// NewAdapter returns an Adapter for doc, a parsed Atom 1.0 or 0.3 feed
// or entry document. Extensions are looked up in reg.
func NewAdapter(doc *xmlquery.Node, s settings.Load, reg *extension.Registry) (*Adapter, error) {
	src, err := fill.NewSource("atom.NewAdapter", doc, s, reg, xmlutil.NSAtom10, xmlutil.NSAtom03)
	if err != nil {
		return nil, err
	}
	d, ok := dialects[src.Version()]
	if !ok {
		return nil, src.Unsupported(format.Atom)
	}
	return &Adapter{src: src, d: d}, nil
}

// Versions returns the Atom versions an Adapter can fill from.
func Versions() []format.Version {
	vs := make([]format.Version, 0, len(dialects))
	for v := range dialects {
		vs = append(vs, v)
	}
	sort.Slice(vs, func(i, j int) bool { return vs[i].Less(vs[j]) })
	return vs
}

// Version returns the Atom version of the adapter's document.
func (a *Adapter) Version() format.Version { return a.src.Version() }

// Extensions returns the adapter used to discover extensions.
func (a *Adapter) Extensions() *extension.Adapter { return a.src.Extensions() }

// Fill populates target, a *Feed from a feed document or an *Entry from
// an entry document. A document whose root does not match the target
// leaves it untouched.
func (a *Adapter) Fill(target format.Resource) error {
	switch t := target.(type) {
	case *Feed:
		if t != nil {
			a.fillFeed(t)
			return nil
		}
	case *Entry:
		if t != nil {
			a.fillEntry(t)
			return nil
		}
	}
	return fill.WrongTarget("atom.Adapter.Fill", target)
}

func (a *Adapter) fillFeed(f *Feed) {
	root := a.src.Select(xmlutil.XMLName("feed", a.d.ns))
	if root == nil {
		return
	}
	c := a.src.Context(root)
	f.Version = a.src.Version()
	a.d.feed.Apply(f, root, c)
	c.Extend(f, root)
}

func (a *Adapter) fillEntry(e *Entry) {
	root := a.src.Select(xmlutil.XMLName("entry", a.d.ns))
	if root == nil {
		return
	}
	c := a.src.Context(root)
	e.Version = a.src.Version()
	a.d.entry.Apply(e, root, c)
	c.Extend(e, root)
}
