// Package opml fills OPML 1.0, 1.1 and 2.0 outline documents.
package opml

import (
	"net/url"
	"time"

	"github.com/andaru/syndication/extension"
	"github.com/andaru/syndication/format"
)

// Document is an OPML document.
type Document struct {
	extension.Host

	Version  format.Version
	Head     Head
	Outlines []*Outline
}

func (*Document) Format() format.Format { return format.Opml }

// Head holds the document metadata.
type Head struct {
	Title        string
	DateCreated  time.Time
	DateModified time.Time
	OwnerName    string
	OwnerEmail   string
	OwnerID      *url.URL
	Docs         *url.URL
	// ExpansionState lists the line numbers of expanded outlines
	ExpansionState  []int
	VertScrollState int
	WindowTop       int
	WindowLeft      int
	WindowBottom    int
	WindowRight     int
}

// Outline is an outline element and its children.
type Outline struct {
	extension.Host

	Text         string
	Type         string
	IsComment    bool
	IsBreakpoint bool
	Created      time.Time
	Categories   []string
	Description  string
	HTMLURL      *url.URL
	XMLURL       *url.URL
	URL          *url.URL
	Language     string
	Title        string
	Version      string
	// Attributes holds unqualified attributes with no field, by name
	Attributes map[string]string
	Outlines   []*Outline
}
