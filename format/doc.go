/*
Package format identifies syndication dialects.

A document's dialect is the pair of a Format and a Version. Detect and
DetectReader sniff the pair from the root element alone: its expanded
name, its version attribute and the namespaces it declares. No more of
the document than the root start element is ever consulted by
DetectReader, so it is suitable for inspecting large or streamed input
before committing to a full parse.

Detection never fails on content: a document that matches no dialect
yields (None, Version{}).
*/
package format
