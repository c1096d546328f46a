// Package feedhistory implements the Feed Paging and Archiving
// extension (RFC 5005) markers for complete and archive feeds.
package feedhistory

import (
	"encoding/xml"

	"github.com/andaru/syndication/extension"
	"github.com/andaru/syndication/xmlutil"
	"github.com/antchfx/xmlquery"
	"github.com/pkg/errors"
)

// Namespace is the Feed History namespace URI.
const Namespace = "http://purl.org/syndication/history/1.0"

// Extension records whether a feed is complete or an archive document.
type Extension struct {
	Complete bool
	Archive  bool
}

func (*Extension) Identity() extension.Identity {
	return extension.Identity{
		Prefix:        "fh",
		Namespace:     Namespace,
		Version:       "1.0",
		Documentation: "https://www.rfc-editor.org/rfc/rfc5005",
		Name:          "Feed History",
		Description:   "complete and archived feed markers",
	}
}

func (x *Extension) Load(n *xmlquery.Node, _ xmlutil.PrefixMap) (bool, error) {
	x.Complete = extension.Child(n, "complete", Namespace) != nil
	x.Archive = extension.Child(n, "archive", Namespace) != nil
	return x.Complete || x.Archive, nil
}

func (x *Extension) WriteTo(e *xml.Encoder) error {
	if x.Complete {
		if err := extension.WriteEmpty(e, xmlutil.XMLName("complete", Namespace)); err != nil {
			return errors.WithStack(err)
		}
	}
	if x.Archive {
		if err := extension.WriteEmpty(e, xmlutil.XMLName("archive", Namespace)); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}
