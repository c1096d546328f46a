package rss

import (
	"strings"
	"testing"
	"time"

	"github.com/andaru/syndication/extension"
	"github.com/andaru/syndication/extension/itunes"
	"github.com/andaru/syndication/extension/slash"
	"github.com/andaru/syndication/extension/standard"
	"github.com/andaru/syndication/format"
	"github.com/andaru/syndication/settings"
	"github.com/andaru/syndication/synerr"
	"github.com/antchfx/xmlquery"
	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rss20 = `<?xml version="1.0"?>
<rss version="2.0" xmlns:itunes="http://www.itunes.com/dtds/podcast-1.0.dtd" xmlns:slash="http://purl.org/rss/1.0/modules/slash/" xmlns:x="urn:x">
  <channel>
    <title>Liftoff News</title>
    <link>http://liftoff.msfc.nasa.gov/</link>
    <description>Liftoff to Space Exploration.</description>
    <language>en-us</language>
    <pubDate>Tue, 10 Jun 2003 04:00:00 GMT</pubDate>
    <lastBuildDate>not a date</lastBuildDate>
    <docs>http://blogs.law.harvard.edu/tech/rss</docs>
    <generator>Weblog Editor 2.0</generator>
    <managingEditor>editor@example.com</managingEditor>
    <webMaster>webmaster@example.com</webMaster>
    <ttl>60</ttl>
    <category domain="http://www.dmoz.org">Science</category>
    <cloud domain="rpc.sys.com" port="80" path="/RPC2" registerProcedure="pingMe" protocol="soap"/>
    <image><url>http://example.com/logo.png</url><title>Logo</title><link>http://example.com/</link><width>200</width><height>500</height></image>
    <skipHours><hour>0</hour><hour>23</hour><hour>24</hour><hour>0</hour></skipHours>
    <skipDays><day>saturday</day><day>Sunday</day><day>SATURDAY</day><day>Someday</day></skipDays>
    <itunes:author>NASA</itunes:author>
    <item>
      <title>Star City</title>
      <link>http://liftoff.msfc.nasa.gov/news/2003/news-starcity.asp</link>
      <description>How do Americans get ready to work with Russians aboard the ISS?</description>
      <pubDate>Tue, 03 Jun 2003 09:39:21 GMT</pubDate>
      <guid>http://liftoff.msfc.nasa.gov/2003/06/03.html#item573</guid>
      <author>jane@example.com</author>
      <comments>http://example.com/comments/573</comments>
      <source url="http://example.com/source.xml">Source</source>
      <enclosure url="http://example.com/a.mp3" length="12216320" type="audio/mpeg"/>
      <enclosure url="http://example.com/b.mp3" length="bad" type="audio/mpeg"/>
      <category>Space</category>
      <slash:comments>7</slash:comments>
      <x:unknown>ignored</x:unknown>
      <itunes:duration>7:04</itunes:duration>
    </item>
    <item>
      <description>Untitled.</description>
      <guid isPermaLink="false">urn:item:2</guid>
    </item>
  </channel>
</rss>`

func parse(t *testing.T, doc string) *xmlquery.Node {
	t.Helper()
	n, err := xmlquery.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	return n
}

func fillFeed(t *testing.T, doc string, s settings.Load) *Feed {
	t.Helper()
	a, err := NewAdapter(parse(t, doc), s, standard.NewRegistry())
	require.NoError(t, err)
	f := &Feed{}
	require.NoError(t, a.Fill(f))
	return f
}

func TestFillRSS20(t *testing.T) {
	a := assert.New(t)
	f := fillFeed(t, rss20, settings.Default())
	ch := f.Channel

	a.Equal(format.V20, f.Version)
	a.Equal("Liftoff News", ch.Title)
	a.Equal("http://liftoff.msfc.nasa.gov/", ch.Link.String())
	a.Equal("en-us", ch.Language)
	a.Equal(time.Date(2003, 6, 10, 4, 0, 0, 0, time.UTC), ch.PubDate.UTC())
	a.True(ch.LastBuildDate.IsZero(), "malformed date skipped")
	a.Equal("Weblog Editor 2.0", ch.Generator)
	a.Equal(60, ch.TTL)
	a.Equal([]Category{{Domain: "http://www.dmoz.org", Value: "Science"}}, ch.Categories)
	a.Equal(&Cloud{Domain: "rpc.sys.com", Port: 80, Path: "/RPC2", RegisterProcedure: "pingMe", Protocol: "soap"}, ch.Cloud)
	if a.NotNil(ch.Image) {
		a.Equal(200, ch.Image.Width, "2.0 images are not clamped")
		a.Equal(500, ch.Image.Height)
	}
	a.Equal([]int{0, 23}, ch.SkipHours)
	a.Equal([]time.Weekday{time.Saturday, time.Sunday}, ch.SkipDays)

	ext, ok := extension.Get[*itunes.Extension](ch.Extensions())
	if a.True(ok) {
		a.Equal("NASA", ext.Author)
	}

	if !a.Len(ch.Items, 2) {
		return
	}
	it := ch.Items[0]
	a.Equal("Star City", it.Title)
	a.Equal("jane@example.com", it.Author)
	a.Equal("http://example.com/comments/573", it.Comments.String())
	a.Equal(&Guid{Value: "http://liftoff.msfc.nasa.gov/2003/06/03.html#item573", IsPermaLink: true}, it.Guid)
	a.Equal("Source", it.Source.Title)
	a.Equal("http://example.com/source.xml", it.Source.URL.String())
	if a.Len(it.Enclosures, 2) {
		a.Equal(int64(12216320), it.Enclosures[0].Length)
		a.Zero(it.Enclosures[1].Length)
		a.Equal("audio/mpeg", it.Enclosures[1].Type)
	}
	a.Equal([]Category{{Value: "Space"}}, it.Categories)

	// two registered namespaces and one unknown
	a.Equal(2, it.Extensions().Len())
	sl, ok := extension.Get[*slash.Extension](it.Extensions())
	if a.True(ok) {
		a.Equal(7, sl.Comments)
	}
	tunes, ok := extension.Get[*itunes.Extension](it.Extensions())
	if a.True(ok) {
		a.Equal(7*time.Minute+4*time.Second, tunes.Duration)
	}

	a.Equal(&Guid{Value: "urn:item:2"}, ch.Items[1].Guid)
	a.False(ch.Items[1].HasExtensions())
}

func TestFillRSS20AgainstGofeed(t *testing.T) {
	a := assert.New(t)
	f := fillFeed(t, rss20, settings.Default())
	ref, err := gofeed.NewParser().ParseString(rss20)
	require.NoError(t, err)

	a.Equal(ref.Title, f.Channel.Title)
	a.Equal(ref.Link, f.Channel.Link.String())
	a.Equal(ref.Description, f.Channel.Description)
	a.Equal(ref.Language, f.Channel.Language)
	a.Equal(ref.Generator, f.Channel.Generator)
	require.Len(t, f.Channel.Items, len(ref.Items))
	for i, it := range ref.Items {
		a.Equal(it.Title, f.Channel.Items[i].Title)
		a.Equal(it.Description, f.Channel.Items[i].Description)
		a.Equal(it.GUID, f.Channel.Items[i].Guid.Value)
		if it.PublishedParsed != nil {
			a.True(it.PublishedParsed.Equal(f.Channel.Items[i].PubDate))
		}
	}
}

func TestFillBasicChannel(t *testing.T) {
	a := assert.New(t)
	f := fillFeed(t, `<rss version="2.0"><channel><title>T</title><link>http://e.com</link><description>D</description></channel></rss>`, settings.Default())
	a.Equal(format.V20, f.Version)
	a.Equal("T", f.Channel.Title)
	a.Equal("http://e.com", f.Channel.Link.String())
	a.Equal("D", f.Channel.Description)
	a.Empty(f.Channel.Items)
}

func TestFillSkipHours(t *testing.T) {
	for _, tc := range []struct {
		version string
		hours   string
		want    []int
	}{
		{version: "0.92", hours: "<hour>25</hour><hour>5</hour><hour>5</hour>", want: []int{4}},
		{version: "0.91", hours: "<hour>1</hour><hour>24</hour><hour>0</hour>", want: []int{0, 23}},
		{version: "2.0", hours: "<hour>0</hour><hour>24</hour><hour>x</hour>", want: []int{0}},
	} {
		t.Run(tc.version, func(t *testing.T) {
			f := fillFeed(t, `<rss version="`+tc.version+`"><channel><title>T</title><skipHours>`+tc.hours+`</skipHours></channel></rss>`, settings.Default())
			assert.Equal(t, tc.want, f.Channel.SkipHours)
		})
	}
}

func TestFillRSS091(t *testing.T) {
	a := assert.New(t)
	f := fillFeed(t, `<rss version="0.91"><channel>
  <title>Old</title>
  <cloud domain="ignored"/>
  <image><url>http://e.com/i.gif</url><width>300</width><height>401</height></image>
  <textInput><title>Search</title><name>q</name><link>http://e.com/search</link></textInput>
  <item><title>A</title><link>http://e.com/a</link><author>ignored</author><guid>ignored</guid><enclosure url="http://e.com/x"/></item>
</channel></rss>`, settings.Default())

	a.Equal(format.V091, f.Version)
	a.Nil(f.Channel.Cloud)
	if a.NotNil(f.Channel.Image) {
		a.Equal(144, f.Channel.Image.Width)
		a.Equal(400, f.Channel.Image.Height)
	}
	if a.NotNil(f.Channel.TextInput) {
		a.Equal("q", f.Channel.TextInput.Name)
	}
	if a.Len(f.Channel.Items, 1) {
		it := f.Channel.Items[0]
		a.Equal("A", it.Title)
		a.Empty(it.Author)
		a.Nil(it.Guid)
		a.Empty(it.Enclosures)
	}
}

func TestFillRSS092(t *testing.T) {
	a := assert.New(t)
	f := fillFeed(t, `<rss version="0.92"><channel>
  <title>Mid</title>
  <image><width>100</width><height>1000</height></image>
  <item><title>A</title><pubDate>Tue, 03 Jun 2003 09:39:21 GMT</pubDate><guid>ignored</guid><enclosure url="http://e.com/x" length="1" type="audio/mpeg"/><category domain="d">c</category></item>
</channel></rss>`, settings.Default())

	a.Equal(format.V092, f.Version)
	a.Equal(100, f.Channel.Image.Width)
	a.Equal(400, f.Channel.Image.Height)
	if a.Len(f.Channel.Items, 1) {
		it := f.Channel.Items[0]
		a.True(it.PubDate.IsZero())
		a.Nil(it.Guid)
		a.Len(it.Enclosures, 1)
		a.Equal([]Category{{Domain: "d", Value: "c"}}, it.Categories)
	}
}

const rss10 = `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#" xmlns="http://purl.org/rss/1.0/" xmlns:slash="http://purl.org/rss/1.0/modules/slash/">
  <channel rdf:about="http://www.xml.com/xml/news.rss">
    <title>XML.com</title>
    <link>http://xml.com/pub</link>
    <description>XML.com features a rich mix of information.</description>
    <image rdf:resource="http://xml.com/universal/images/xml_tiny.gif" />
    <items><rdf:Seq><rdf:li resource="http://xml.com/pub/2000/08/09/xslt/xslt.html" /></rdf:Seq></items>
  </channel>
  <image rdf:about="http://xml.com/universal/images/xml_tiny.gif">
    <title>XML.com</title>
    <link>http://www.xml.com</link>
    <url>http://xml.com/universal/images/xml_tiny.gif</url>
  </image>
  <item rdf:about="http://xml.com/pub/2000/08/09/xslt/xslt.html">
    <title>Processing Inclusions with XSLT</title>
    <link>http://xml.com/pub/2000/08/09/xslt/xslt.html</link>
    <description>Processing document inclusions.</description>
    <slash:section>xslt</slash:section>
  </item>
  <item rdf:about="http://xml.com/pub/2000/08/09/rdfdb/index.html">
    <title>Putting RDF to Work</title>
    <link>http://xml.com/pub/2000/08/09/rdfdb/index.html</link>
  </item>
  <textinput rdf:about="http://search.xml.com">
    <title>Search XML.com</title>
    <name>s</name>
    <link>http://search.xml.com</link>
  </textinput>
</rdf:RDF>`

func TestFillRSS10(t *testing.T) {
	a := assert.New(t)
	f := fillFeed(t, rss10, settings.Default())
	ch := f.Channel

	a.Equal(format.V10, f.Version)
	a.Equal("http://www.xml.com/xml/news.rss", ch.About.String())
	a.Equal("XML.com", ch.Title)
	if a.NotNil(ch.Image) {
		a.Equal("http://xml.com/universal/images/xml_tiny.gif", ch.Image.About.String())
		a.Equal("http://xml.com/universal/images/xml_tiny.gif", ch.Image.URL.String())
	}
	if a.NotNil(ch.TextInput) {
		a.Equal("http://search.xml.com", ch.TextInput.About.String())
		a.Equal("s", ch.TextInput.Name)
	}
	if a.Len(ch.Items, 2) {
		a.Equal("Processing Inclusions with XSLT", ch.Items[0].Title)
		a.Equal("Processing document inclusions.", ch.Items[0].Description)
		a.Equal("http://xml.com/pub/2000/08/09/rdfdb/index.html", ch.Items[1].About.String())
		sl, ok := extension.Get[*slash.Extension](ch.Items[0].Extensions())
		if a.True(ok) {
			a.Equal("xslt", sl.Section)
		}
	}

	ref, err := gofeed.NewParser().ParseString(rss10)
	require.NoError(t, err)
	a.Equal(ref.Title, ch.Title)
	a.Len(ch.Items, len(ref.Items))
}

func TestFillRSS09(t *testing.T) {
	a := assert.New(t)
	f := fillFeed(t, `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#" xmlns="http://my.netscape.com/rdf/simple/0.9/">
  <channel><title>Mozilla Dot Org</title><link>http://www.mozilla.org</link><description>the Mozilla Organization web site</description></channel>
  <image><title>Mozilla</title><url>http://www.mozilla.org/images/moz.gif</url><link>http://www.mozilla.org</link></image>
  <item><title>New Status Updates</title><link>http://www.mozilla.org/status/</link><description>not in 0.9</description></item>
  <item><title>Bugzilla Reorganized</title><link>http://www.mozilla.org/bugs/</link></item>
</rdf:RDF>`, settings.Default())

	a.Equal(format.V09, f.Version)
	a.Equal("Mozilla Dot Org", f.Channel.Title)
	a.Equal("http://www.mozilla.org/images/moz.gif", f.Channel.Image.URL.String())
	if a.Len(f.Channel.Items, 2) {
		a.Empty(f.Channel.Items[0].Description)
		a.Equal("Bugzilla Reorganized", f.Channel.Items[1].Title)
	}
}

func TestFillRetrievalLimit(t *testing.T) {
	var b strings.Builder
	b.WriteString(`<rss version="2.0"><channel><title>T</title>`)
	for _, title := range []string{"a", "b", "c", "d", "e"} {
		b.WriteString(`<item><title>` + title + `</title></item>`)
	}
	b.WriteString(`</channel></rss>`)

	for _, tc := range []struct {
		limit int
		want  []string
	}{
		{limit: 0, want: []string{"a", "b", "c", "d", "e"}},
		{limit: 1, want: []string{"a"}},
		{limit: 3, want: []string{"a", "b", "c"}},
		{limit: 5, want: []string{"a", "b", "c", "d", "e"}},
		{limit: 9, want: []string{"a", "b", "c", "d", "e"}},
	} {
		t.Run(tc.want[len(tc.want)-1], func(t *testing.T) {
			f := fillFeed(t, b.String(), settings.Load{RetrievalLimit: tc.limit})
			var got []string
			for _, it := range f.Channel.Items {
				got = append(got, it.Title)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFillIdempotent(t *testing.T) {
	for _, doc := range []string{rss20, rss10} {
		first := fillFeed(t, doc, settings.Default())
		second := fillFeed(t, doc, settings.Default())
		assert.Equal(t, first, second)
	}
}

type other struct{}

func (other) Format() format.Format { return format.Atom }

func TestAdapterErrors(t *testing.T) {
	a := assert.New(t)
	reg := standard.NewRegistry()

	_, err := NewAdapter(nil, settings.Default(), reg)
	a.True(synerr.Is(err, synerr.KindPrecondition), "%v", err)

	_, err = NewAdapter(parse(t, `<rss/>`), settings.Default(), nil)
	a.True(synerr.Is(err, synerr.KindPrecondition), "%v", err)

	_, err = NewAdapter(parse(t, `<rss/>`), settings.Load{RetrievalLimit: -1}, reg)
	a.True(synerr.Is(err, synerr.KindPrecondition), "%v", err)

	_, err = NewAdapter(parse(t, `<rss version="3.0"><channel/></rss>`), settings.Default(), reg)
	a.True(synerr.Is(err, synerr.KindUnsupportedVersion), "%v", err)

	ad, err := NewAdapter(parse(t, `<rss><channel><title>T</title></channel></rss>`), settings.Default(), reg)
	require.NoError(t, err)
	a.Equal(format.V20, ad.Version())
	a.True(synerr.Is(ad.Fill(nil), synerr.KindPrecondition))
	a.True(synerr.Is(ad.Fill((*Feed)(nil)), synerr.KindPrecondition))
	a.True(synerr.Is(ad.Fill(other{}), synerr.KindPrecondition))
}

func TestFillWithoutChannel(t *testing.T) {
	f := &Feed{Channel: Channel{Title: "preset"}}
	a, err := NewAdapter(parse(t, `<rss version="2.0"/>`), settings.Default(), standard.NewRegistry())
	require.NoError(t, err)
	require.NoError(t, a.Fill(f))
	assert.Equal(t, &Feed{Channel: Channel{Title: "preset"}}, f)
}

func TestVersions(t *testing.T) {
	assert.Equal(t, []format.Version{format.V09, format.V091, format.V092, format.V10, format.V20}, Versions())
}
