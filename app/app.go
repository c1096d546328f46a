// Package app fills Atom Publishing Protocol 1.0 service and category
// documents.
package app

import (
	"net/url"

	"github.com/andaru/syndication/atom"
	"github.com/andaru/syndication/extension"
	"github.com/andaru/syndication/format"
)

// ServiceDocument lists the collections a publishing service offers.
type ServiceDocument struct {
	extension.Host

	Version    format.Version
	Workspaces []*Workspace
}

func (*ServiceDocument) Format() format.Format { return format.AtomServiceDocument }

// Workspace groups collections.
type Workspace struct {
	extension.Host

	Title       *atom.Text
	Collections []*Collection
}

// Collection is a set of resources members can be published to.
type Collection struct {
	extension.Host

	Href  *url.URL
	Title *atom.Text
	// Accepts lists the media ranges accepted for new members. An
	// empty range means the collection accepts no new members.
	Accepts    []string
	Categories []*Categories
}

// Categories is a list of categories, given inline or by reference.
type Categories struct {
	Href       *url.URL
	Fixed      bool
	Scheme     *url.URL
	Categories []atom.Category
}

// CategoryDocument is a standalone category list.
type CategoryDocument struct {
	extension.Host

	Version format.Version
	Categories
}

func (*CategoryDocument) Format() format.Format { return format.AtomCategoryDocument }
