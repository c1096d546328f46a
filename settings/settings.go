// Package settings holds the policy applied while loading a syndication
// resource.
package settings

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Load holds the settings of a single fill operation. Adapters receive
// it by value and never modify it.
type Load struct {
	// RetrievalLimit caps the number of repeating child items (entries,
	// items, outlines and the like) materialized per collection. Zero
	// means unlimited.
	RetrievalLimit int `yaml:"retrieval_limit"`
	// AutoDetectExtensions enables discovery of every registered
	// extension. When false, only SupportedExtensions are considered.
	AutoDetectExtensions bool `yaml:"auto_detect_extensions"`
	// SupportedExtensions lists the extension namespace URIs honoured
	// when AutoDetectExtensions is off.
	SupportedExtensions []string `yaml:"supported_extensions,omitempty"`
	// ResolveRelativeURIs resolves relative URIs against the xml:base in
	// scope, or BaseURI when none is declared.
	ResolveRelativeURIs bool   `yaml:"resolve_relative_uris"`
	BaseURI             string `yaml:"base_uri,omitempty"`
}

// Default returns the settings used when none are supplied: unlimited
// retrieval and automatic extension discovery.
func Default() Load { return Load{AutoDetectExtensions: true} }

// Limit returns n capped by the retrieval limit.
func (l Load) Limit(n int) int {
	if l.RetrievalLimit > 0 && n > l.RetrievalLimit {
		return l.RetrievalLimit
	}
	return n
}

// Supports reports whether extensions in namespace may be loaded.
func (l Load) Supports(namespace string) bool {
	if l.AutoDetectExtensions {
		return true
	}
	for _, ns := range l.SupportedExtensions {
		if ns == namespace {
			return true
		}
	}
	return false
}

// Validate returns an error if l holds values no adapter can honour.
func (l Load) Validate() error {
	if l.RetrievalLimit < 0 {
		return errors.Errorf("retrieval limit must be non-negative, got %d", l.RetrievalLimit)
	}
	return nil
}

// file mirrors Load with optional fields, so absent keys keep their
// defaults.
type file struct {
	RetrievalLimit       *int     `yaml:"retrieval_limit"`
	AutoDetectExtensions *bool    `yaml:"auto_detect_extensions"`
	SupportedExtensions  []string `yaml:"supported_extensions"`
	ResolveRelativeURIs  *bool    `yaml:"resolve_relative_uris"`
	BaseURI              string   `yaml:"base_uri"`
}

// Decode reads YAML settings from r, applying defaults for absent keys.
func Decode(r io.Reader) (Load, error) {
	var f file
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && err != io.EOF {
		return Load{}, errors.Wrap(err, "failed to parse settings")
	}
	l := Default()
	if f.RetrievalLimit != nil {
		l.RetrievalLimit = *f.RetrievalLimit
	}
	if f.AutoDetectExtensions != nil {
		l.AutoDetectExtensions = *f.AutoDetectExtensions
	}
	if f.ResolveRelativeURIs != nil {
		l.ResolveRelativeURIs = *f.ResolveRelativeURIs
	}
	l.SupportedExtensions = f.SupportedExtensions
	l.BaseURI = f.BaseURI
	if err := l.Validate(); err != nil {
		return Load{}, err
	}
	return l, nil
}

// LoadFile reads YAML settings from the file at path.
func LoadFile(path string) (Load, error) {
	fh, err := os.Open(path)
	if err != nil {
		return Load{}, errors.Wrap(err, "failed to open settings")
	}
	defer fh.Close()
	l, err := Decode(fh)
	return l, errors.Wrapf(err, "invalid settings %s", path)
}
