// Package slash implements the Slash RSS module used by Slashcode
// sites.
package slash

import (
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/andaru/syndication/coerce"
	"github.com/andaru/syndication/extension"
	"github.com/andaru/syndication/xmlutil"
	"github.com/antchfx/xmlquery"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Namespace is the Slash module namespace URI.
const Namespace = "http://purl.org/rss/1.0/modules/slash/"

type Extension struct {
	Section    string
	Department string
	Comments   int
	// HitParade holds comment counts at each threshold
	HitParade []int
}

func (*Extension) Identity() extension.Identity {
	return extension.Identity{
		Prefix:        "slash",
		Namespace:     Namespace,
		Version:       "1.0",
		Documentation: "http://web.resource.org/rss/1.0/modules/slash/",
		Name:          "Slash",
		Description:   "section, department and comment counts",
	}
}

func (x *Extension) Load(n *xmlquery.Node, _ xmlutil.PrefixMap) (bool, error) {
	found := false
	if s, ok := extension.ChildText(n, "section", Namespace); ok {
		found, x.Section = true, s
	}
	if s, ok := extension.ChildText(n, "department", Namespace); ok {
		found, x.Department = true, s
	}
	if s, ok := extension.ChildText(n, "comments", Namespace); ok {
		found = true
		if v, valid := coerce.Int(s); valid {
			x.Comments = v
		} else {
			glog.V(1).Infof("slash: skipping malformed comments %q", s)
		}
	}
	if s, ok := extension.ChildText(n, "hit_parade", Namespace); ok {
		found = true
		x.HitParade = nil
		for _, p := range strings.Split(s, ",") {
			if v, ok := coerce.Int(p); ok {
				x.HitParade = append(x.HitParade, v)
			}
		}
	}
	return found, nil
}

func (x *Extension) WriteTo(e *xml.Encoder) error {
	parade := make([]string, 0, len(x.HitParade))
	for _, v := range x.HitParade {
		parade = append(parade, strconv.Itoa(v))
	}
	var comments string
	if x.Comments > 0 {
		comments = strconv.Itoa(x.Comments)
	}
	for _, t := range [...]struct{ local, value string }{
		{"section", x.Section},
		{"department", x.Department},
		{"comments", comments},
		{"hit_parade", strings.Join(parade, ",")},
	} {
		if err := extension.WriteText(e, xmlutil.XMLName(t.local, Namespace), t.value); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}
