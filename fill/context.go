package fill

import (
	"net/url"

	"github.com/andaru/syndication/coerce"
	"github.com/andaru/syndication/extension"
	"github.com/andaru/syndication/settings"
	"github.com/andaru/syndication/xmlutil"
	"github.com/antchfx/xmlquery"
	"github.com/golang/glog"
)

// Context carries the state shared by every rule of a single fill.
type Context struct {
	Settings settings.Load
	// Namespaces holds the declarations in scope at the dialect root
	Namespaces xmlutil.PrefixMap
	// Extensions discovers extensions; nil disables discovery
	Extensions *extension.Adapter
}

// NewContext returns the Context for filling from root.
func NewContext(s settings.Load, ext *extension.Adapter, root *xmlquery.Node) *Context {
	return &Context{Settings: s, Namespaces: xmlutil.InScope(root), Extensions: ext}
}

// Limit returns nodes truncated to the retrieval limit.
func (c *Context) Limit(nodes []*xmlquery.Node) []*xmlquery.Node {
	if n := c.Settings.Limit(len(nodes)); n < len(nodes) {
		glog.V(2).Infof("retrieval limit %d: skipping %d <%s> elements", n, len(nodes)-n, nodes[n].Data)
		return nodes[:n]
	}
	return nodes
}

// Extend attaches the extensions found on n to target.
func (c *Context) Extend(target extension.Extensible, n *xmlquery.Node) {
	if c.Extensions == nil || n == nil {
		return
	}
	if err := c.Extensions.Fill(target, n, c.Namespaces); err != nil {
		glog.V(1).Infof("extensions of <%s>: %v", n.Data, err)
	}
}

// URI converts s, found at n, to a URI. Relative references are
// resolved when the settings ask for it, against the xml:base in scope
// at n or else the configured base URI.
func (c *Context) URI(n *xmlquery.Node, s string) (*url.URL, bool) {
	u, ok := coerce.URI(s)
	if !ok || u.IsAbs() || !c.Settings.ResolveRelativeURIs {
		return u, ok
	}
	if base, found := xmlutil.Base(n); found {
		return base.ResolveReference(u), true
	}
	if base, found := coerce.URI(c.Settings.BaseURI); found {
		return base.ResolveReference(u), true
	}
	return u, true
}

// Skip logs a value which could not be converted.
func (c *Context) Skip(n *xmlquery.Node, value, reason string) {
	if n == nil {
		return
	}
	glog.V(1).Infof("skipping <%s> value %q: %s", n.Data, value, reason)
}
