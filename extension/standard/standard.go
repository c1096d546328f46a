// Package standard provides the registry of built-in extensions.
package standard

import (
	"github.com/andaru/syndication/extension"
	"github.com/andaru/syndication/extension/feedhistory"
	"github.com/andaru/syndication/extension/feedrank"
	"github.com/andaru/syndication/extension/itunes"
	"github.com/andaru/syndication/extension/pheed"
	"github.com/andaru/syndication/extension/pubcontrol"
	"github.com/andaru/syndication/extension/slash"
)

// Factories returns factories for every built-in extension.
func Factories() []extension.Factory {
	return []extension.Factory{
		extension.Prototype((*itunes.Extension)(nil)),
		extension.Prototype((*feedhistory.Extension)(nil)),
		extension.Prototype((*pubcontrol.Extension)(nil)),
		extension.Prototype((*pheed.Extension)(nil)),
		extension.Prototype((*slash.Extension)(nil)),
		extension.Prototype((*feedrank.Extension)(nil)),
	}
}

// NewRegistry returns a new Registry holding the built-in extensions.
func NewRegistry() *extension.Registry {
	return extension.NewRegistry(Factories()...)
}
