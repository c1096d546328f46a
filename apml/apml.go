// Package apml fills Attention Profiling Markup Language 0.6 documents.
package apml

import (
	"time"

	"github.com/andaru/syndication/extension"
	"github.com/andaru/syndication/format"
)

// Document is an APML document.
type Document struct {
	extension.Host

	Version format.Version
	Head    Head
	// DefaultProfile names the profile applications should use when
	// they have no preference
	DefaultProfile string
	Profiles       []*Profile
	Applications   []Application
}

func (*Document) Format() format.Format { return format.Apml }

// Head holds the document metadata.
type Head struct {
	Title       string
	Generator   string
	UserEmail   string
	DateCreated time.Time
}

// Profile is a named set of attention data.
type Profile struct {
	Name     string
	Implicit Data
	Explicit Data
}

// Data holds the concepts and sources of one kind of attention data.
type Data struct {
	Concepts []Concept
	Sources  []Source
}

// Concept is a weighted keyword. Value lies in [-1, 1].
type Concept struct {
	Key     string
	Value   float64
	From    string
	Updated time.Time
}

// Author is a weighted author of a Source.
type Author Concept

// Source is a weighted feed or site.
type Source struct {
	Key     string
	Name    string
	Value   float64
	Type    string
	From    string
	Updated time.Time
	Authors []Author
}

// Application holds data private to a named application, kept as the
// raw XML of its children.
type Application struct {
	Name string
	Data string
}
