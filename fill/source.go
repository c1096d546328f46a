package fill

import (
	"encoding/xml"
	"fmt"

	"github.com/andaru/syndication/extension"
	"github.com/andaru/syndication/format"
	"github.com/andaru/syndication/settings"
	"github.com/andaru/syndication/synerr"
	"github.com/andaru/syndication/xmlutil"
	"github.com/antchfx/xmlquery"
	"github.com/pkg/errors"
)

// Source is the read-only state of a dialect adapter: the document, the
// load settings and the extension adapter for the dialect's native
// namespaces.
type Source struct {
	doc      *xmlquery.Node
	settings settings.Load
	ext      *extension.Adapter
	version  format.Version
}

// NewSource returns the Source for an adapter constructed by op. The
// dialect version is sniffed from doc.
func NewSource(op string, doc *xmlquery.Node, s settings.Load, reg *extension.Registry, native ...string) (*Source, error) {
	if doc == nil {
		return nil, errors.WithStack(synerr.Precondition(op, synerr.WithMessage("document must not be nil")))
	}
	if err := s.Validate(); err != nil {
		return nil, errors.WithStack(synerr.Precondition(op, synerr.WithMessage(err.Error())))
	}
	ext, err := extension.NewAdapter(reg, s, native...)
	if err != nil {
		return nil, err
	}
	_, v := format.Detect(doc)
	return &Source{doc: doc, settings: s, ext: ext, version: v}, nil
}

// Version returns the version sniffed from the document.
func (s *Source) Version() format.Version { return s.version }

// Settings returns the load settings.
func (s *Source) Settings() settings.Load { return s.settings }

// Extensions returns the extension adapter.
func (s *Source) Extensions() *extension.Adapter { return s.ext }

// Select returns the element reached by following names from the
// document root, or nil.
func (s *Source) Select(names ...xml.Name) *xmlquery.Node {
	return xmlutil.SelectPath(s.doc, names...)
}

// Context returns a fill Context for the dialect root element root.
func (s *Source) Context(root *xmlquery.Node) *Context {
	return NewContext(s.settings, s.ext, root)
}

// Unsupported returns the error for a dialect version without rules.
func (s *Source) Unsupported(f format.Format) error {
	return errors.WithStack(synerr.UnsupportedVersion(f.String(), s.version.String()))
}

// WrongTarget returns the error for a nil target or a target of a type
// the adapter constructed by op cannot fill.
func WrongTarget(op string, target any) error {
	msg := "target must not be nil"
	if target != nil {
		msg = fmt.Sprintf("cannot fill target of type %T", target)
	}
	return errors.WithStack(synerr.Precondition(op, synerr.WithMessage(msg)))
}
