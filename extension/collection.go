package extension

// Collection is the ordered set of extensions attached to a value
// object. It holds at most one extension of each type.
type Collection struct {
	items []Extension
}

// Add attaches e, returning false if e is nil or an extension of the
// same type is already attached.
func (c *Collection) Add(e Extension) bool {
	if e == nil || c.Contains(e) {
		return false
	}
	c.items = append(c.items, e)
	return true
}

// Contains reports whether an extension of the same type as e is
// attached.
func (c *Collection) Contains(e Extension) bool {
	t := typeOf(e)
	for _, it := range c.items {
		if typeOf(it) == t {
			return true
		}
	}
	return false
}

// Remove detaches the extension of the same type as e.
func (c *Collection) Remove(e Extension) bool {
	t := typeOf(e)
	for i, it := range c.items {
		if typeOf(it) == t {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Find returns the first attached extension handling namespace.
func (c *Collection) Find(namespace string) Extension {
	for _, it := range c.items {
		if it.Identity().Namespace == namespace {
			return it
		}
	}
	return nil
}

// All returns the attached extensions in attachment order.
func (c *Collection) All() []Extension {
	return append([]Extension(nil), c.items...)
}

func (c *Collection) Len() int { return len(c.items) }

// HasExtensions reports whether any extension is attached.
func (c *Collection) HasExtensions() bool { return len(c.items) > 0 }

// Get returns the attached extension of type T.
func Get[T Extension](c *Collection) (T, bool) {
	for _, it := range c.items {
		if v, ok := it.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Extensible is implemented by value objects able to carry extensions.
type Extensible interface {
	Extensions() *Collection
}

// Host implements Extensible when embedded in a value object.
type Host struct {
	ext Collection
}

// Extensions returns the host's extension collection.
func (h *Host) Extensions() *Collection { return &h.ext }

// HasExtensions reports whether any extension is attached to the host.
func (h *Host) HasExtensions() bool { return h.ext.HasExtensions() }
