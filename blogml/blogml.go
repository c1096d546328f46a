// Package blogml fills BlogML 2.0 blog archives.
package blogml

import (
	"net/url"
	"time"

	"github.com/andaru/syndication/extension"
	"github.com/andaru/syndication/format"
)

// Content types of BlogML text.
const (
	ContentText   = "text"
	ContentHTML   = "html"
	ContentXHTML  = "xhtml"
	ContentBase64 = "base64"
)

// Text is BlogML text content. Base64 content is decoded and reported
// as text.
type Text struct {
	Type    string
	Content string
}

// Node holds the attributes common to most BlogML elements.
type Node struct {
	ID       string
	Title    *Text
	Created  time.Time
	Modified time.Time
	Approved bool
}

// Document is a BlogML blog.
type Document struct {
	extension.Host

	RootURL            *url.URL
	Created            time.Time
	Title              *Text
	SubTitle           *Text
	Authors            []Author
	ExtendedProperties map[string]string
	Categories         []Category
	Posts              []*Post
}

func (*Document) Format() format.Format { return format.BlogML }

type Author struct {
	Node
	Email string
}

type Category struct {
	Node
	Description string
	// ParentRef is the ID of the parent category
	ParentRef string
}

// PostType is the kind of a post.
type PostType int

const (
	PostNormal PostType = iota
	PostArticle
)

type Post struct {
	extension.Host
	Node

	URL        *url.URL
	Type       PostType
	HasExcerpt bool
	Views      int
	Content    *Text
	PostName   *Text
	Excerpt    *Text
	// AuthorRefs and CategoryRefs hold the IDs of the post's authors
	// and categories
	AuthorRefs   []string
	CategoryRefs []string
	Comments     []Comment
	Trackbacks   []Trackback
	Attachments  []Attachment
}

type Comment struct {
	Node
	UserName  string
	UserEmail string
	UserURL   *url.URL
	Content   *Text
}

type Trackback struct {
	Node
	URL *url.URL
}

// Attachment is a file attached to a post. Embedded attachments carry
// their decoded data.
type Attachment struct {
	URL         *url.URL
	ExternalURI *url.URL
	MimeType    string
	Size        int64
	Embedded    bool
	Data        []byte
}
