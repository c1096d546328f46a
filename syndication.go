package syndication

import (
	"io"
	"reflect"

	"github.com/andaru/syndication/apml"
	"github.com/andaru/syndication/app"
	"github.com/andaru/syndication/atom"
	"github.com/andaru/syndication/blogml"
	"github.com/andaru/syndication/extension"
	"github.com/andaru/syndication/extension/standard"
	"github.com/andaru/syndication/format"
	"github.com/andaru/syndication/opml"
	"github.com/andaru/syndication/rsd"
	"github.com/andaru/syndication/rss"
	"github.com/andaru/syndication/settings"
	"github.com/andaru/syndication/synerr"
	"github.com/andaru/syndication/xmlutil"
	"github.com/antchfx/xmlquery"
	"github.com/pkg/errors"
)

// Resource is implemented by every value object a ResourceAdapter can
// fill.
type Resource = format.Resource

// filler is the part of a dialect adapter the dispatcher uses
type filler interface {
	Fill(target format.Resource) error
}

type opener func(doc *xmlquery.Node, s settings.Load, reg *extension.Registry) (filler, error)

// open adapts a dialect adapter constructor to an opener
func open[A filler](f func(*xmlquery.Node, settings.Load, *extension.Registry) (A, error)) opener {
	return func(doc *xmlquery.Node, s settings.Load, reg *extension.Registry) (filler, error) {
		a, err := f(doc, s, reg)
		if err != nil {
			return nil, err
		}
		return a, nil
	}
}

type dialect struct {
	versions func() []format.Version
	open     opener
	// empty returns a new target for documents of the format
	empty func() Resource
}

var dialects = map[format.Format]dialect{
	format.Atom:                 {atom.Versions, open(atom.NewAdapter), func() Resource { return &atom.Feed{} }},
	format.Rss:                  {rss.Versions, open(rss.NewAdapter), func() Resource { return &rss.Feed{} }},
	format.Opml:                 {opml.Versions, open(opml.NewAdapter), func() Resource { return &opml.Document{} }},
	format.BlogML:               {blogml.Versions, open(blogml.NewAdapter), func() Resource { return &blogml.Document{} }},
	format.Apml:                 {apml.Versions, open(apml.NewAdapter), func() Resource { return &apml.Document{} }},
	format.Rsd:                  {rsd.Versions, open(rsd.NewAdapter), func() Resource { return &rsd.Document{} }},
	format.AtomServiceDocument:  {app.Versions, open(app.NewAdapter), func() Resource { return &app.ServiceDocument{} }},
	format.AtomCategoryDocument: {app.Versions, open(app.NewAdapter), func() Resource { return &app.CategoryDocument{} }},
}

// Supported returns every format and version pair a ResourceAdapter can
// fill, ordered by format then version.
func Supported() []format.Key {
	var keys []format.Key
	for f := format.None + 1; f.Valid(); f++ {
		for _, v := range dialects[f].versions() {
			keys = append(keys, format.Key{Format: f, Version: v})
		}
	}
	return keys
}

// New returns an empty target for documents of format f, or nil if f
// is not a supported format. Atom documents yield an *atom.Feed.
func New(f format.Format) Resource {
	if d, ok := dialects[f]; ok {
		return d.empty()
	}
	return nil
}

// Parse reads an XML document into the navigable tree adapters fill
// from. Documents in encodings other than UTF-8 are converted.
func Parse(r io.Reader) (*xmlquery.Node, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "syndication: parsing document")
	}
	return doc, nil
}

// Detect returns the format and version of the document read from r,
// reading no further than its root element.
func Detect(r io.Reader) (format.Format, format.Version, error) {
	return format.DetectReader(r)
}

// ResourceAdapter fills value objects from one parsed document. It holds
// no mutable state and may be used from several goroutines at once.
type ResourceAdapter struct {
	doc      *xmlquery.Node
	settings settings.Load
	reg      *extension.Registry
}

// NewResourceAdapter returns a ResourceAdapter for doc, loading with
// settings s.
func NewResourceAdapter(doc *xmlquery.Node, s settings.Load, opts ...Option) (*ResourceAdapter, error) {
	if doc == nil {
		return nil, errors.WithStack(synerr.Precondition("NewResourceAdapter", synerr.WithMessage("document must not be nil")))
	}
	if err := s.Validate(); err != nil {
		return nil, errors.WithStack(synerr.Precondition("NewResourceAdapter", synerr.WithMessage(err.Error())))
	}
	ra := &ResourceAdapter{doc: doc, settings: s}
	for _, opt := range opts {
		opt(ra)
	}
	if ra.reg == nil {
		ra.reg = standard.NewRegistry()
	}
	return ra, nil
}

// Detect returns the format and version of the adapter's document.
func (ra *ResourceAdapter) Detect() (format.Format, format.Version) { return format.Detect(ra.doc) }

// Fill populates target from the document, which must be of format f.
// The target is left untouched when the document is of another format
// or of a version no adapter fills.
func (ra *ResourceAdapter) Fill(target Resource, f format.Format) error {
	const op = "ResourceAdapter.Fill"
	d, ok := dialects[f]
	if !ok {
		return errors.WithStack(synerr.Precondition(op, synerr.WithFormat(f.String()), synerr.WithMessage("format must name a dialect")))
	}
	if isNil(target) {
		return errors.WithStack(synerr.Precondition(op, synerr.WithMessage("target must not be nil")))
	}
	detected, v := ra.Detect()
	if detected != f {
		return errors.WithStack(synerr.FormatMismatch(f.String(), detected.String(), synerr.WithOp(op)))
	}
	if !contains(d.versions(), v) {
		return errors.WithStack(synerr.UnsupportedVersion(f.String(), v.String(), synerr.WithOp(op)))
	}
	a, err := d.open(ra.doc, ra.settings, ra.reg)
	if err != nil {
		return err
	}
	return a.Fill(target)
}

// Load fills and returns a new target for the detected format of the
// document. An Atom entry document yields an *atom.Entry.
func (ra *ResourceAdapter) Load() (Resource, error) {
	f, _ := ra.Detect()
	target := New(f)
	if f == format.Atom && xmlutil.DocumentElement(ra.doc).Data == "entry" {
		target = &atom.Entry{}
	}
	if target == nil {
		return nil, errors.WithStack(synerr.Precondition("ResourceAdapter.Load", synerr.WithMessage("unrecognized document")))
	}
	if err := ra.Fill(target, f); err != nil {
		return nil, err
	}
	return target, nil
}

// Load parses the document read from r and fills target from it. The
// document must be of the target's format.
func Load(r io.Reader, target Resource, s settings.Load, opts ...Option) error {
	if isNil(target) {
		return errors.WithStack(synerr.Precondition("Load", synerr.WithMessage("target must not be nil")))
	}
	doc, err := Parse(r)
	if err != nil {
		return err
	}
	ra, err := NewResourceAdapter(doc, s, opts...)
	if err != nil {
		return err
	}
	return ra.Fill(target, target.Format())
}

func isNil(target Resource) bool {
	if target == nil {
		return true
	}
	v := reflect.ValueOf(target)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

func contains(vs []format.Version, v format.Version) bool {
	for _, w := range vs {
		if w == v {
			return true
		}
	}
	return false
}
