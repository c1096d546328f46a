// Package rss fills RSS feeds: RSS 2.0, the Userland 0.91 and 0.92
// revisions, and the RDF based RSS 0.9 and 1.0.
package rss

import (
	"net/url"
	"time"

	"github.com/andaru/syndication/extension"
	"github.com/andaru/syndication/format"
)

// Feed is an RSS document.
type Feed struct {
	// Version is the RSS revision the feed was filled from
	Version format.Version
	Channel Channel
}

func (*Feed) Format() format.Format { return format.Rss }

// Channel is the channel of a feed. In the RDF revisions the image,
// text input and items are siblings of the channel element; they are
// gathered here all the same.
type Channel struct {
	extension.Host

	// About is the rdf:about of RSS 1.0 channels
	About          *url.URL
	Title          string
	Link           *url.URL
	Description    string
	Language       string
	Copyright      string
	ManagingEditor string
	WebMaster      string
	PubDate        time.Time
	LastBuildDate  time.Time
	Categories     []Category
	Generator      string
	Docs           *url.URL
	Cloud          *Cloud
	TTL            int
	Image          *Image
	Rating         string
	TextInput      *TextInput
	// SkipHours holds distinct hours of the day, 0-23, in document order
	SkipHours []int
	SkipDays  []time.Weekday
	Items     []*Item
}

type Category struct {
	Domain string
	Value  string
}

// Cloud describes a cloud change notification service.
type Cloud struct {
	Domain            string
	Port              int
	Path              string
	RegisterProcedure string
	Protocol          string
}

type Image struct {
	About       *url.URL
	URL         *url.URL
	Title       string
	Link        *url.URL
	Width       int
	Height      int
	Description string
}

type TextInput struct {
	About       *url.URL
	Title       string
	Description string
	Name        string
	Link        *url.URL
}

type Item struct {
	extension.Host

	About       *url.URL
	Title       string
	Link        *url.URL
	Description string
	Author      string
	Categories  []Category
	Comments    *url.URL
	Enclosures  []Enclosure
	Guid        *Guid
	PubDate     time.Time
	Source      *Source
}

type Enclosure struct {
	URL    *url.URL
	Length int64
	Type   string
}

// Guid is the globally unique identifier of an item.
type Guid struct {
	Value string
	// IsPermaLink is true unless the guid says otherwise
	IsPermaLink bool
}

// Source names the channel an item came from.
type Source struct {
	URL   *url.URL
	Title string
}
