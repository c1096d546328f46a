// Package pheed implements the Pheed photo extension for RSS items.
package pheed

import (
	"encoding/xml"
	"net/url"

	"github.com/andaru/syndication/coerce"
	"github.com/andaru/syndication/extension"
	"github.com/andaru/syndication/xmlutil"
	"github.com/antchfx/xmlquery"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Namespace is the Pheed namespace URI.
const Namespace = "http://www.pheed.com/pheed/"

type Extension struct {
	Thumbnail   *url.URL
	ImageSource *url.URL
}

func (*Extension) Identity() extension.Identity {
	return extension.Identity{
		Prefix:        "photo",
		Namespace:     Namespace,
		Version:       "1.0",
		Documentation: "http://www.pheed.com/pheed/",
		Name:          "Pheed",
		Description:   "photo thumbnails and image sources",
	}
}

func (x *Extension) Load(n *xmlquery.Node, _ xmlutil.PrefixMap) (bool, error) {
	x.Thumbnail = loadURI(n, "thumbnail")
	x.ImageSource = loadURI(n, "imgsrc")
	return x.Thumbnail != nil || x.ImageSource != nil, nil
}

func loadURI(n *xmlquery.Node, local string) *url.URL {
	s, ok := extension.ChildText(n, local, Namespace)
	if !ok {
		return nil
	}
	u, valid := coerce.URI(s)
	if !valid {
		glog.V(1).Infof("pheed: skipping malformed %s %q", local, s)
	}
	return u
}

func (x *Extension) WriteTo(e *xml.Encoder) error {
	for _, t := range [...]struct {
		local string
		u     *url.URL
	}{{"thumbnail", x.Thumbnail}, {"imgsrc", x.ImageSource}} {
		if t.u == nil {
			continue
		}
		if err := extension.WriteText(e, xmlutil.XMLName(t.local, Namespace), t.u.String()); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}
