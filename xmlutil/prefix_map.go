package xmlutil

import (
	"encoding/xml"
	"sort"

	"github.com/antchfx/xmlquery"
)

// PrefixMap is a prefix to namespace URI map. The default namespace,
// if declared, is held under the empty prefix.
type PrefixMap map[string]string

// NewPrefixMap returns a PrefixMap, containing the namespace declarations
// found in the passed XML attributes
func NewPrefixMap(attrs ...xml.Attr) PrefixMap {
	pmap := PrefixMap{}
	for _, attr := range attrs {
		switch {
		case attr.Name.Space == attrXMLNS:
			pmap[attr.Name.Local] = attr.Value
		case attr.Name.Space == "" && attr.Name.Local == attrXMLNS:
			pmap[""] = attr.Value
		}
	}
	return pmap
}

// InScope returns the namespace declarations in scope at n. Declarations
// on inner elements shadow those made by their ancestors.
func InScope(n *xmlquery.Node) PrefixMap {
	var chain []*xmlquery.Node
	for it := n; it != nil; it = it.Parent {
		if it.Type == xmlquery.ElementNode {
			chain = append(chain, it)
		}
	}
	pmap := PrefixMap{prefixXML: NSXML}
	for i := len(chain) - 1; i >= 0; i-- {
		for k, v := range NewPrefixMap(Attrs(chain[i])...) {
			pmap[k] = v
		}
	}
	return pmap
}

// Attr returns the prefix map contents as a series of xmlns:<prefix>=<nsuri> attributes,
// sorted lexically by prefix. The implicit xml prefix is never returned.
func (m PrefixMap) Attr() (a []xml.Attr) {
	for k, v := range m {
		switch k {
		case prefixXML:
			continue
		case "":
			a = append(a, xml.Attr{Name: xml.Name{Local: attrXMLNS}, Value: v})
		default:
			a = append(a, xml.Attr{Name: xml.Name{Space: attrXMLNS, Local: k}, Value: v})
		}
	}
	if len(a) > 0 {
		// sort lexically by prefix
		sort.Slice(a, func(i int, j int) bool { return a[i].Name.Local < a[j].Name.Local })
	}
	return a
}

// Namespace returns the namespace URI for the given prefix
func (m PrefixMap) Namespace(prefix string) string { return m[prefix] }

// Prefix returns any prefixes found for the namespace URI, sorted lexically.
func (m PrefixMap) Prefix(nsURI string) (pfxes []string) {
	for k, v := range m {
		if nsURI == v {
			pfxes = append(pfxes, k)
		}
	}
	sort.Strings(pfxes)
	return pfxes
}

// Declares reports whether any prefix is bound to nsURI.
func (m PrefixMap) Declares(nsURI string) bool {
	for _, v := range m {
		if v == nsURI {
			return true
		}
	}
	return false
}
