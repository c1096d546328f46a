package extension

import (
	"encoding/xml"
	"reflect"

	"github.com/andaru/syndication/xmlutil"
	"github.com/antchfx/xmlquery"
)

// Identity describes an extension type.
type Identity struct {
	// Prefix is the preferred XML namespace prefix
	Prefix string
	// Namespace is the XML namespace URI the extension handles
	Namespace string
	// Version of the extension vocabulary
	Version string
	// Documentation locates the vocabulary reference
	Documentation string
	// Name is a display name
	Name        string
	Description string
}

// Extension is a handler for the elements and attributes of one foreign
// XML namespace.
type Extension interface {
	// Identity returns the extension type's identity. It must not
	// depend on the state of the instance.
	Identity() Identity
	// Load populates the extension from the attributes and children of
	// n belonging to its namespace, returning true if at least one
	// field was recognized. ns holds the namespace declarations in
	// scope.
	Load(n *xmlquery.Node, ns xmlutil.PrefixMap) (bool, error)
	// WriteTo writes the extension's elements to e.
	WriteTo(e *xml.Encoder) error
}

// Aliased is implemented by extensions known under more than one
// namespace URI.
type Aliased interface {
	Aliases() []string
}

// Factory creates instances of an extension type.
type Factory interface {
	Identity() Identity
	// Matches reports whether the extension handles namespace.
	Matches(namespace string) bool
	// New returns a new, empty instance.
	New() Extension
}

type prototype struct {
	id      Identity
	spaces  []string
	typ     reflect.Type
	pointer bool
}

// Prototype returns a Factory creating instances of proto's concrete
// type. proto is usually a nil pointer or zero value of that type.
func Prototype(proto Extension) Factory {
	p := &prototype{id: proto.Identity(), spaces: []string{proto.Identity().Namespace}, typ: reflect.TypeOf(proto)}
	if a, ok := proto.(Aliased); ok {
		p.spaces = append(p.spaces, a.Aliases()...)
	}
	if p.typ.Kind() == reflect.Ptr {
		p.typ, p.pointer = p.typ.Elem(), true
	}
	return p
}

func (p *prototype) Identity() Identity { return p.id }

func (p *prototype) Matches(namespace string) bool {
	for _, ns := range p.spaces {
		if ns == namespace {
			return true
		}
	}
	return false
}

func (p *prototype) New() Extension {
	v := reflect.New(p.typ)
	if p.pointer {
		return v.Interface().(Extension)
	}
	return v.Elem().Interface().(Extension)
}

// typeOf returns the key identifying an extension's type
func typeOf(e Extension) reflect.Type { return reflect.TypeOf(e) }
