// Package itunes implements the iTunes podcasting extension, used on
// RSS channels and items.
package itunes

import (
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/andaru/syndication/coerce"
	"github.com/andaru/syndication/extension"
	"github.com/andaru/syndication/xmlutil"
	"github.com/antchfx/xmlquery"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

const (
	// Namespace is the iTunes podcast namespace URI.
	Namespace = "http://www.itunes.com/dtds/podcast-1.0.dtd"
	// legacyNamespace is the mixed case URI found in older podcasts
	legacyNamespace = "http://www.itunes.com/DTDs/PodCast-1.0.dtd"
)

var spaces = []string{Namespace, legacyNamespace}

// Explicit is the parental advisory of a podcast or episode.
type Explicit int

const (
	Unspecified Explicit = iota
	Yes
	No
	Clean
)

var explicitNames = coerce.NewNames(map[string]Explicit{
	"yes":   Yes,
	"true":  Yes,
	"no":    No,
	"false": No,
	"clean": Clean,
})

func (x Explicit) String() string {
	switch x {
	case Yes:
		return "yes"
	case No:
		return "no"
	case Clean:
		return "clean"
	}
	return ""
}

// Category is an iTunes category, possibly with subcategories.
type Category struct {
	Text          string
	Subcategories []Category
}

// Owner identifies the podcast owner.
type Owner struct {
	Name  string
	Email string
}

// Extension holds the iTunes elements of a channel or item.
type Extension struct {
	Author     string
	Block      bool
	Categories []Category
	Image      *url.URL
	Duration   time.Duration
	Explicit   Explicit
	Keywords   []string
	NewFeedURL *url.URL
	Owner      *Owner
	Subtitle   string
	Summary    string
}

func (*Extension) Identity() extension.Identity {
	return extension.Identity{
		Prefix:        "itunes",
		Namespace:     Namespace,
		Version:       "1.0",
		Documentation: "https://help.apple.com/itc/podcasts_connect/#/itcb54353390",
		Name:          "iTunes",
		Description:   "podcast metadata for the iTunes directory",
	}
}

func (*Extension) Aliases() []string { return []string{legacyNamespace} }

func (x *Extension) Load(n *xmlquery.Node, _ xmlutil.PrefixMap) (bool, error) {
	found := false
	text := func(local string) (string, bool) {
		s, ok := extension.ChildText(n, local, spaces...)
		found = found || ok
		return s, ok
	}
	if s, ok := text("author"); ok {
		x.Author = s
	}
	if s, ok := text("block"); ok {
		x.Block = coerce.Fold(s) == "yes"
	}
	if s, ok := text("subtitle"); ok {
		x.Subtitle = s
	}
	if s, ok := text("summary"); ok {
		x.Summary = s
	}
	if s, ok := text("keywords"); ok {
		x.Keywords = keywords(s)
	}
	if s, ok := text("explicit"); ok {
		if v, valid := explicitNames.Lookup(s); valid {
			x.Explicit = v
		} else {
			glog.V(1).Infof("itunes: skipping malformed explicit %q", s)
		}
	}
	if s, ok := text("duration"); ok {
		if d, valid := ParseDuration(s); valid {
			x.Duration = d
		} else {
			glog.V(1).Infof("itunes: skipping malformed duration %q", s)
		}
	}
	if s, ok := text("new-feed-url"); ok {
		if u, valid := coerce.URI(s); valid {
			x.NewFeedURL = u
		} else {
			glog.V(1).Infof("itunes: skipping malformed new-feed-url %q", s)
		}
	}
	if c := extension.Child(n, "image", spaces...); c != nil {
		found = true
		if href, ok := extension.AttrValue(c, "href", ""); ok {
			if u, valid := coerce.URI(href); valid {
				x.Image = u
			} else {
				glog.V(1).Infof("itunes: skipping malformed image href %q", href)
			}
		}
	}
	if c := extension.Child(n, "owner", spaces...); c != nil {
		found = true
		x.Owner = &Owner{}
		x.Owner.Name, _ = extension.ChildText(c, "name", spaces...)
		x.Owner.Email, _ = extension.ChildText(c, "email", spaces...)
	}
	if cs := categories(n); len(cs) > 0 {
		found = true
		x.Categories = cs
	}
	return found, nil
}

func categories(n *xmlquery.Node) (cs []Category) {
	for _, c := range extension.Children(n, "category", spaces...) {
		text, _ := extension.AttrValue(c, "text", "")
		cs = append(cs, Category{Text: text, Subcategories: categories(c)})
	}
	return cs
}

func keywords(s string) (kw []string) {
	for _, k := range strings.Split(s, ",") {
		if k = strings.TrimSpace(k); k != "" {
			kw = append(kw, k)
		}
	}
	return kw
}

// ParseDuration parses an episode duration given as seconds, MM:SS or
// HH:MM:SS.
func ParseDuration(s string) (time.Duration, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) > 3 {
		return 0, false
	}
	var d time.Duration
	for _, p := range parts {
		v, ok := coerce.Int(p)
		if !ok || v < 0 {
			return 0, false
		}
		d = d*60 + time.Duration(v)
	}
	return d * time.Second, true
}

// FormatDuration formats d as H:MM:SS.
func FormatDuration(d time.Duration) string {
	s := int64(d / time.Second)
	return fmt.Sprintf("%d:%02d:%02d", s/3600, s/60%60, s%60)
}

func name(local string) xml.Name { return xmlutil.XMLName(local, Namespace) }

func (x *Extension) WriteTo(e *xml.Encoder) error {
	texts := []struct{ local, value string }{
		{"author", x.Author},
		{"subtitle", x.Subtitle},
		{"summary", x.Summary},
		{"keywords", strings.Join(x.Keywords, ",")},
		{"explicit", x.Explicit.String()},
	}
	if x.Block {
		texts = append(texts, struct{ local, value string }{"block", "yes"})
	}
	if x.Duration > 0 {
		texts = append(texts, struct{ local, value string }{"duration", FormatDuration(x.Duration)})
	}
	if x.NewFeedURL != nil {
		texts = append(texts, struct{ local, value string }{"new-feed-url", x.NewFeedURL.String()})
	}
	for _, t := range texts {
		if err := extension.WriteText(e, name(t.local), t.value); err != nil {
			return errors.WithStack(err)
		}
	}
	if x.Image != nil {
		if err := extension.WriteEmpty(e, name("image"), xml.Attr{Name: xml.Name{Local: "href"}, Value: x.Image.String()}); err != nil {
			return errors.WithStack(err)
		}
	}
	if x.Owner != nil {
		start := xml.StartElement{Name: name("owner")}
		if err := e.EncodeToken(start); err != nil {
			return errors.WithStack(err)
		}
		if err := extension.WriteText(e, name("name"), x.Owner.Name); err != nil {
			return errors.WithStack(err)
		}
		if err := extension.WriteText(e, name("email"), x.Owner.Email); err != nil {
			return errors.WithStack(err)
		}
		if err := e.EncodeToken(start.End()); err != nil {
			return errors.WithStack(err)
		}
	}
	return errors.WithStack(writeCategories(e, x.Categories))
}

func writeCategories(e *xml.Encoder, cs []Category) error {
	for _, c := range cs {
		start := xml.StartElement{Name: name("category"), Attr: []xml.Attr{{Name: xml.Name{Local: "text"}, Value: c.Text}}}
		if err := e.EncodeToken(start); err != nil {
			return err
		}
		if err := writeCategories(e, c.Subcategories); err != nil {
			return err
		}
		if err := e.EncodeToken(start.End()); err != nil {
			return err
		}
	}
	return nil
}
