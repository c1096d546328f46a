/*
Package syndication reads web syndication documents into value objects.

A document is parsed once into a navigable tree (see Parse) and handed to
a ResourceAdapter, which sniffs its dialect and fills a target value
object with the dialect adapter registered for that format and version:

	doc, err := syndication.Parse(r)
	if err != nil {
		return err
	}
	ra, err := syndication.NewResourceAdapter(doc, settings.Default())
	if err != nil {
		return err
	}
	feed := &rss.Feed{}
	err = ra.Fill(feed, format.Rss)

Atom 0.3 and 1.0, RSS 0.9 through 2.0, OPML, BlogML, APML, RSD and Atom
Publishing Protocol service and category documents are supported. See
Supported for the full list of format and version pairs.

Malformed field values never fail a fill: they are skipped and logged
with glog at verbosity 1. Errors are reserved for caller mistakes and for
documents whose format or version cannot be filled, and are of type
*synerr.Error.

Namespaced elements outside a dialect are loaded by extensions found in
an extension.Registry. The built-in extensions of package
extension/standard are used unless WithRegistry supplies another.
*/
package syndication
