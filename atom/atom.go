// Package atom fills Atom 1.0 and Atom 0.3 feed and entry documents.
//
// Atom 0.3 documents are filled into the Atom 1.0 model: tagline becomes
// the subtitle, copyright the rights, modified the updated time, issued
// the published time and a person's url its URI. Entries keep the 0.3
// created time.
package atom

import (
	"net/url"
	"time"

	"github.com/andaru/syndication/extension"
	"github.com/andaru/syndication/format"
)

// Text construct types.
const (
	TypeText  = "text"
	TypeHTML  = "html"
	TypeXHTML = "xhtml"
)

// Text is an Atom text construct. The content of an xhtml construct is
// the serialized xhtml:div holding the markup.
type Text struct {
	Type    string
	Content string
}

type Person struct {
	Name  string
	URI   *url.URL
	Email string
}

type Link struct {
	Href     *url.URL
	Rel      string
	Type     string
	HrefLang string
	Title    string
	Length   int64
}

type Category struct {
	Term   string
	Scheme *url.URL
	Label  string
}

type Generator struct {
	Value   string
	URI     *url.URL
	Version string
}

// Content is the content of an entry. Src is set for out of line
// content, which has no Content.
type Content struct {
	Type    string
	Src     *url.URL
	Content string
}

// Source holds the metadata of the feed an entry was copied from.
type Source struct {
	ID           string
	Title        *Text
	Subtitle     *Text
	Rights       *Text
	Updated      time.Time
	Authors      []Person
	Contributors []Person
	Categories   []Category
	Links        []Link
	Generator    *Generator
	Icon         *url.URL
	Logo         *url.URL
}

// Feed is an Atom feed document.
type Feed struct {
	extension.Host

	// Version is the Atom version the feed was filled from
	Version      format.Version
	ID           string
	Title        *Text
	Subtitle     *Text
	Rights       *Text
	Updated      time.Time
	Authors      []Person
	Contributors []Person
	Categories   []Category
	Links        []Link
	Generator    *Generator
	Icon         *url.URL
	Logo         *url.URL
	Entries      []*Entry
}

func (*Feed) Format() format.Format { return format.Atom }

// Entry is an Atom entry, standalone or within a feed.
type Entry struct {
	extension.Host

	Version   format.Version
	ID        string
	Title     *Text
	Summary   *Text
	Rights    *Text
	Updated   time.Time
	Published time.Time
	// Created is only found in Atom 0.3
	Created      time.Time
	Authors      []Person
	Contributors []Person
	Categories   []Category
	Links        []Link
	Content      *Content
	Source       *Source
}

func (*Entry) Format() format.Format { return format.Atom }
