package rss

import (
	"encoding/xml"
	"time"

	"github.com/andaru/syndication/coerce"
	"github.com/andaru/syndication/fill"
	"github.com/andaru/syndication/xmlutil"
	"github.com/antchfx/xmlquery"
	"github.com/golang/glog"
)

// documented image size maxima of RSS 0.91 and 0.92
const (
	maxImageWidth  = 144
	maxImageHeight = 400
)

func clamp(img *Image) {
	if img.Width > maxImageWidth {
		glog.V(1).Infof("rss: clamping image width %d to %d", img.Width, maxImageWidth)
		img.Width = maxImageWidth
	}
	if img.Height > maxImageHeight {
		glog.V(1).Infof("rss: clamping image height %d to %d", img.Height, maxImageHeight)
		img.Height = maxImageHeight
	}
}

// skipHours reads <skipHours><hour>. first is the number the dialect
// gives to the first hour of the day; hours are stored from 0.
// Out of range and repeated hours are dropped.
func skipHours(name func(string) xml.Name, first int) fill.Rule[*Channel] {
	return fill.Child(name("skipHours"), func(ch *Channel, n *xmlquery.Node, c *fill.Context) {
		seen := map[int]bool{}
		for _, h := range xmlutil.Children(n, name("hour")) {
			s := xmlutil.Text(h)
			v, ok := coerce.Int(s)
			if !ok {
				c.Skip(h, s, "malformed hour")
				continue
			}
			v -= first
			switch {
			case v < 0 || v > 23:
				c.Skip(h, s, "hour out of range")
			case seen[v]:
				c.Skip(h, s, "repeated hour")
			default:
				seen[v] = true
				ch.SkipHours = append(ch.SkipHours, v)
			}
		}
	})
}

var weekdays = coerce.NewNames(map[string]time.Weekday{
	"Sunday":    time.Sunday,
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
})

// skipDays reads <skipDays><day>, matching day names without regard to
// case. Unknown and repeated days are dropped.
func skipDays(name func(string) xml.Name) fill.Rule[*Channel] {
	return fill.Child(name("skipDays"), func(ch *Channel, n *xmlquery.Node, c *fill.Context) {
		seen := map[time.Weekday]bool{}
		for _, d := range xmlutil.Children(n, name("day")) {
			s := xmlutil.Text(d)
			day, ok := weekdays.Lookup(s)
			switch {
			case !ok:
				c.Skip(d, s, "unknown day")
			case seen[day]:
				c.Skip(d, s, "repeated day")
			default:
				seen[day] = true
				ch.SkipDays = append(ch.SkipDays, day)
			}
		}
	})
}
