// Package pubcontrol implements the Atom Publishing Protocol elements
// that appear on Atom entries: app:edited and app:control.
package pubcontrol

import (
	"encoding/xml"
	"time"

	"github.com/andaru/syndication/coerce"
	"github.com/andaru/syndication/extension"
	"github.com/andaru/syndication/xmlutil"
	"github.com/antchfx/xmlquery"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Namespace is the Atom Publishing Protocol namespace URI.
const Namespace = xmlutil.NSApp

// Extension holds the publishing state of an entry.
type Extension struct {
	// Edited is the time the entry was last edited
	Edited time.Time
	// Draft is true for entries not to be publicly visible
	Draft bool
}

func (*Extension) Identity() extension.Identity {
	return extension.Identity{
		Prefix:        "app",
		Namespace:     Namespace,
		Version:       "1.0",
		Documentation: "https://www.rfc-editor.org/rfc/rfc5023#section-13",
		Name:          "Atom Publishing Control",
		Description:   "entry edit time and draft status",
	}
}

func (x *Extension) Load(n *xmlquery.Node, _ xmlutil.PrefixMap) (bool, error) {
	found := false
	if s, ok := extension.ChildText(n, "edited", Namespace); ok {
		found = true
		if t, valid := coerce.RFC3339(s); valid {
			x.Edited = t
		} else {
			glog.V(1).Infof("pubcontrol: skipping malformed edited %q", s)
		}
	}
	if c := extension.Child(n, "control", Namespace); c != nil {
		found = true
		if s, ok := extension.ChildText(c, "draft", Namespace); ok {
			if b, valid := coerce.Bool(s); valid {
				x.Draft = b
			} else {
				glog.V(1).Infof("pubcontrol: skipping malformed draft %q", s)
			}
		}
	}
	return found, nil
}

func (x *Extension) WriteTo(e *xml.Encoder) error {
	if !x.Edited.IsZero() {
		if err := extension.WriteText(e, xmlutil.XMLName("edited", Namespace), x.Edited.Format(time.RFC3339)); err != nil {
			return errors.WithStack(err)
		}
	}
	if !x.Draft {
		return nil
	}
	control := xml.StartElement{Name: xmlutil.XMLName("control", Namespace)}
	if err := e.EncodeToken(control); err != nil {
		return errors.WithStack(err)
	}
	if err := extension.WriteText(e, xmlutil.XMLName("draft", Namespace), "yes"); err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(e.EncodeToken(control.End()))
}
