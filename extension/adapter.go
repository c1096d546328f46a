package extension

import (
	"fmt"
	"sync/atomic"

	"github.com/andaru/syndication/settings"
	"github.com/andaru/syndication/synerr"
	"github.com/andaru/syndication/xmlutil"
	"github.com/antchfx/xmlquery"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Adapter discovers and loads the extensions used by the elements of a
// dialect.
type Adapter struct {
	registry *Registry
	settings settings.Load
	native   map[string]bool
	failures atomic.Int64
}

// NewAdapter returns an Adapter resolving namespaces against reg.
// native lists the namespaces belonging to the dialect itself; they
// are never treated as extensions. The xml namespace is always native.
func NewAdapter(reg *Registry, s settings.Load, native ...string) (*Adapter, error) {
	if reg == nil {
		return nil, errors.WithStack(synerr.Precondition("extension.NewAdapter", synerr.WithMessage("registry must not be nil")))
	}
	a := &Adapter{registry: reg, settings: s, native: map[string]bool{xmlutil.NSXML: true}}
	for _, ns := range native {
		a.native[ns] = true
	}
	return a, nil
}

// Failures returns the number of extension loads which failed.
func (a *Adapter) Failures() int64 { return a.failures.Load() }

// Native reports whether namespace belongs to the dialect.
func (a *Adapter) Native(namespace string) bool { return a.native[namespace] }

// Fill attaches to target the extensions found on n.
func (a *Adapter) Fill(target Extensible, n *xmlquery.Node, ns xmlutil.PrefixMap) error {
	if target == nil || n == nil {
		return errors.WithStack(synerr.Precondition("Adapter.Fill", synerr.WithMessage("target and node must not be nil")))
	}
	if ns == nil {
		ns = xmlutil.InScope(n)
	}
	for _, space := range a.foreign(n) {
		for _, f := range a.registry.Lookup(space) {
			ext := f.New()
			if target.Extensions().Contains(ext) {
				continue
			}
			if a.load(ext, n, ns) {
				target.Extensions().Add(ext)
			}
		}
	}
	return nil
}

// foreign returns the distinct foreign namespaces used by the
// attributes and then the element children of n, in document order.
func (a *Adapter) foreign(n *xmlquery.Node) (spaces []string) {
	seen := map[string]bool{}
	consider := func(space string) {
		if space == "" || seen[space] || a.native[space] {
			return
		}
		seen[space] = true
		if a.settings.Supports(space) {
			spaces = append(spaces, space)
		}
	}
	for _, attr := range n.Attr {
		if !xmlutil.IsDeclaration(attr.Name) {
			consider(attr.NamespaceURI)
		}
	}
	for _, c := range xmlutil.Elements(n) {
		consider(c.NamespaceURI)
	}
	return spaces
}

func (a *Adapter) load(ext Extension, n *xmlquery.Node, ns xmlutil.PrefixMap) (ok bool) {
	id := ext.Identity()
	defer func() {
		if r := recover(); r != nil {
			a.fail(id, fmt.Errorf("panic: %v", r))
			ok = false
		}
	}()
	ok, err := ext.Load(n, ns)
	if err != nil {
		a.fail(id, err)
		return false
	}
	return ok
}

func (a *Adapter) fail(id Identity, err error) {
	a.failures.Add(1)
	glog.Warningf("%v", synerr.ExtensionFailed(id.Namespace, synerr.WithOp(id.Name+".Load"), synerr.WithMessage(err.Error())))
}
