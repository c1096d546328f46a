package xmlutil

// Namespace URIs of the syndication dialects and of the XML infrastructure
// they share.
const (
	NSAtom10 = "http://www.w3.org/2005/Atom"
	NSAtom03 = "http://purl.org/atom/ns#"
	NSApp    = "http://www.w3.org/2007/app"
	NSRDF    = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	NSRss10  = "http://purl.org/rss/1.0/"
	NSRss090 = "http://my.netscape.com/rdf/simple/0.9/"
	NSBlogML = "http://www.blogml.com/2006/09/BlogML"
	NSApml   = "http://www.apml.org/apml-0.6"
	NSRsd    = "http://archipelago.phrasewise.com/rsd"
	NSXHTML  = "http://www.w3.org/1999/xhtml"
	NSXML    = "http://www.w3.org/XML/1998/namespace"
)

const (
	prefixXML   = "xml"
	attrXMLNS   = "xmlns"
	attrXMLBase = "base"
)
