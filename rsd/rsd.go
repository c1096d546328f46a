// Package rsd fills Really Simple Discovery 0.6 and 1.0 documents.
package rsd

import (
	"net/url"

	"github.com/andaru/syndication/extension"
	"github.com/andaru/syndication/format"
)

// Document describes the editing APIs of a weblog.
type Document struct {
	extension.Host

	Version    format.Version
	EngineName string
	EngineLink *url.URL
	Homepage   *url.URL
	APIs       []API
}

func (*Document) Format() format.Format { return format.Rsd }

// API is one editing interface offered by the weblog engine.
type API struct {
	Name      string
	Preferred bool
	APILink   *url.URL
	BlogID    string
	Settings  Settings
}

// Settings documents an API.
type Settings struct {
	Docs  *url.URL
	Notes string
	// Settings maps setting names to values
	Settings map[string]string
}
