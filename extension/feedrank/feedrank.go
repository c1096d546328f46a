// Package feedrank implements the Atom Feed Rank extension, which
// attaches numeric rankings under named schemes to feeds and entries.
package feedrank

import (
	"encoding/xml"
	"net/url"
	"strconv"

	"github.com/andaru/syndication/coerce"
	"github.com/andaru/syndication/extension"
	"github.com/andaru/syndication/xmlutil"
	"github.com/antchfx/xmlquery"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Namespace is the Feed Rank namespace URI.
const Namespace = "http://purl.org/atompub/rank/1.0"

// Rank is a single re:rank value.
type Rank struct {
	// Scheme identifies the ranking scheme
	Scheme *url.URL
	Domain string
	Label  string
	Value  float64
}

// Scheme is a re:scheme declaration on a feed.
type Scheme struct {
	Name        *url.URL
	Label       string
	Significant bool
	Min, Max    float64
}

// Extension holds the ranks of a feed or entry.
type Extension struct {
	Ranks   []Rank
	Schemes []Scheme
}

func (*Extension) Identity() extension.Identity {
	return extension.Identity{
		Prefix:        "re",
		Namespace:     Namespace,
		Version:       "1.0",
		Documentation: Namespace,
		Name:          "Feed Rank",
		Description:   "ranked values for feeds and entries",
	}
}

func (x *Extension) Load(n *xmlquery.Node, _ xmlutil.PrefixMap) (bool, error) {
	x.Ranks, x.Schemes = nil, nil
	for _, c := range extension.Children(n, "rank", Namespace) {
		s := xmlutil.Text(c)
		v, ok := coerce.Float(s)
		if !ok {
			glog.V(1).Infof("feedrank: skipping malformed rank %q", s)
			continue
		}
		r := Rank{Value: v}
		if s, ok := extension.AttrValue(c, "scheme", ""); ok {
			r.Scheme = schemeURI(s)
		}
		r.Domain, _ = extension.AttrValue(c, "domain", "")
		r.Label, _ = extension.AttrValue(c, "label", "")
		x.Ranks = append(x.Ranks, r)
	}
	for _, c := range extension.Children(n, "scheme", Namespace) {
		sc := Scheme{}
		if s, ok := extension.AttrValue(c, "name", ""); ok {
			sc.Name = schemeURI(s)
		}
		sc.Label, _ = extension.AttrValue(c, "label", "")
		if s, ok := extension.AttrValue(c, "significance", ""); ok {
			sc.Significant = coerce.Fold(s) == "high"
		}
		sc.Min = bound(c, "min")
		sc.Max = bound(c, "max")
		x.Schemes = append(x.Schemes, sc)
	}
	return len(x.Ranks) > 0 || len(x.Schemes) > 0, nil
}

func schemeURI(s string) *url.URL {
	u, ok := coerce.URI(s)
	if !ok {
		glog.V(1).Infof("feedrank: skipping malformed scheme %q", s)
	}
	return u
}

func bound(n *xmlquery.Node, local string) float64 {
	s, ok := extension.AttrValue(n, local, "")
	if !ok {
		return 0
	}
	v, ok := coerce.Float(s)
	if !ok {
		glog.V(1).Infof("feedrank: skipping malformed scheme %s %q", local, s)
	}
	return v
}

func attrs(pairs ...string) (out []xml.Attr) {
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] != "" {
			out = append(out, xml.Attr{Name: xml.Name{Local: pairs[i]}, Value: pairs[i+1]})
		}
	}
	return out
}

func uriString(u *url.URL) string {
	if u == nil {
		return ""
	}
	return u.String()
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

func (x *Extension) WriteTo(e *xml.Encoder) error {
	for _, sc := range x.Schemes {
		significance := ""
		if sc.Significant {
			significance = "high"
		}
		a := attrs("name", uriString(sc.Name), "label", sc.Label, "significance", significance)
		if sc.Min != 0 || sc.Max != 0 {
			a = append(a, attrs("min", formatFloat(sc.Min), "max", formatFloat(sc.Max))...)
		}
		if err := extension.WriteEmpty(e, xmlutil.XMLName("scheme", Namespace), a...); err != nil {
			return errors.WithStack(err)
		}
	}
	for _, r := range x.Ranks {
		start := xml.StartElement{
			Name: xmlutil.XMLName("rank", Namespace),
			Attr: attrs("scheme", uriString(r.Scheme), "domain", r.Domain, "label", r.Label),
		}
		if err := e.EncodeElement(formatFloat(r.Value), start); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}
