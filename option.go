package syndication

import "github.com/andaru/syndication/extension"

// Option is a constructor option function for the ResourceAdapter type.
type Option func(*ResourceAdapter)

// WithRegistry sets the registry extensions are looked up in. A nil
// registry is ignored.
func WithRegistry(reg *extension.Registry) Option {
	return func(ra *ResourceAdapter) {
		if reg != nil {
			ra.reg = reg
		}
	}
}
