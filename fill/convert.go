package fill

import (
	"net/url"
	"time"

	"github.com/andaru/syndication/coerce"
	"github.com/antchfx/xmlquery"
)

// String applies text unchanged.
func String[T any](set func(T, string)) TextFunc[T] {
	return func(t T, s string, _ *xmlquery.Node, _ *Context) { set(t, s) }
}

// Time applies text parsed as a date-time by parse.
func Time[T any](parse func(string) (time.Time, bool), set func(T, time.Time)) TextFunc[T] {
	return func(t T, s string, n *xmlquery.Node, c *Context) {
		if v, ok := parse(s); ok {
			set(t, v)
			return
		}
		c.Skip(n, s, "malformed date")
	}
}

// URI applies text parsed as a URI reference.
func URI[T any](set func(T, *url.URL)) TextFunc[T] {
	return func(t T, s string, n *xmlquery.Node, c *Context) {
		if v, ok := c.URI(n, s); ok {
			set(t, v)
			return
		}
		c.Skip(n, s, "malformed URI")
	}
}

// Int applies text parsed as an integer.
func Int[T any](set func(T, int)) TextFunc[T] {
	return func(t T, s string, n *xmlquery.Node, c *Context) {
		if v, ok := coerce.Int(s); ok {
			set(t, v)
			return
		}
		c.Skip(n, s, "malformed integer")
	}
}

// Int64 applies text parsed as a 64-bit integer.
func Int64[T any](set func(T, int64)) TextFunc[T] {
	return func(t T, s string, n *xmlquery.Node, c *Context) {
		if v, ok := coerce.Int64(s); ok {
			set(t, v)
			return
		}
		c.Skip(n, s, "malformed integer")
	}
}

// Float applies text parsed as a floating point number.
func Float[T any](set func(T, float64)) TextFunc[T] {
	return func(t T, s string, n *xmlquery.Node, c *Context) {
		if v, ok := coerce.Float(s); ok {
			set(t, v)
			return
		}
		c.Skip(n, s, "malformed number")
	}
}

// Bool applies text parsed as a boolean.
func Bool[T any](set func(T, bool)) TextFunc[T] {
	return func(t T, s string, n *xmlquery.Node, c *Context) {
		if v, ok := coerce.Bool(s); ok {
			set(t, v)
			return
		}
		c.Skip(n, s, "malformed boolean")
	}
}

// Enum applies text looked up among names without regard to case.
func Enum[T, E any](names map[string]E, set func(T, E)) TextFunc[T] {
	folded := coerce.NewNames(names)
	return func(t T, s string, n *xmlquery.Node, c *Context) {
		if v, ok := folded.Lookup(s); ok {
			set(t, v)
			return
		}
		c.Skip(n, s, "unknown value")
	}
}
