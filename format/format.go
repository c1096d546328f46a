package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/andaru/syndication/coerce"
	"github.com/pkg/errors"
)

// Format identifies a syndication dialect.
type Format int

const (
	// None indicates an unrecognized document
	None Format = iota
	// Atom is the Atom Syndication Format (feed and entry documents)
	Atom
	// Rss is the RSS family, including RDF-wrapped RSS 0.9 and 1.0
	Rss
	// Opml is the Outline Processor Markup Language
	Opml
	// BlogML is the BlogML blog content format
	BlogML
	// Apml is the Attention Profiling Markup Language
	Apml
	// Rsd is Really Simple Discovery
	Rsd
	// AtomServiceDocument is an Atom Publishing Protocol service document
	AtomServiceDocument
	// AtomCategoryDocument is an Atom Publishing Protocol category document
	AtomCategoryDocument
)

var formatNames = [...]string{
	None:                 "None",
	Atom:                 "Atom",
	Rss:                  "Rss",
	Opml:                 "Opml",
	BlogML:               "BlogML",
	Apml:                 "Apml",
	Rsd:                  "Rsd",
	AtomServiceDocument:  "AtomServiceDocument",
	AtomCategoryDocument: "AtomCategoryDocument",
}

func (f Format) String() string {
	if f < None || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// Valid reports whether f names a dialect. None is not valid.
func (f Format) Valid() bool { return f > None && int(f) < len(formatNames) }

func (f Format) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

var formatsByName = func() coerce.Names[Format] {
	names := make(map[string]Format, len(formatNames))
	for i, name := range formatNames {
		names[name] = Format(i)
	}
	return coerce.NewNames(names)
}()

func (f *Format) UnmarshalText(b []byte) error {
	v, ok := formatsByName.Lookup(string(b))
	if !ok {
		return errors.Errorf("unknown format %q", b)
	}
	*f = v
	return nil
}

// Version is a dotted numeric dialect version. Minor numbers are kept as
// written, so RSS 0.9 is {0, 9} and RSS 0.91 is {0, 91}.
type Version struct {
	Major, Minor int
}

// V returns the version major.minor
func V(major, minor int) Version { return Version{Major: major, Minor: minor} }

// ParseVersion parses a version such as "2.0" or "0.91". Components past
// the minor number are ignored.
func ParseVersion(s string) (Version, bool) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) == 0 || parts[0] == "" {
		return Version{}, false
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil || major < 0 {
		return Version{}, false
	}
	v := Version{Major: major}
	if len(parts) > 1 {
		minor, err := strconv.Atoi(parts[1])
		if err != nil || minor < 0 {
			return Version{}, false
		}
		v.Minor = minor
	}
	return v, true
}

// IsZero reports whether v is the null version.
func (v Version) IsZero() bool { return v == Version{} }

// Less reports whether v precedes w.
func (v Version) Less(w Version) bool {
	if v.Major != w.Major {
		return v.Major < w.Major
	}
	return v.Minor < w.Minor
}

func (v Version) String() string {
	if v.IsZero() {
		return ""
	}
	return strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor)
}

// Well known dialect versions.
var (
	V03  = V(0, 3)
	V06  = V(0, 6)
	V09  = V(0, 9)
	V091 = V(0, 91)
	V092 = V(0, 92)
	V10  = V(1, 0)
	V11  = V(1, 1)
	V20  = V(2, 0)
)

// Key names a dialect: a Format at a Version.
type Key struct {
	Format  Format
	Version Version
}

func (k Key) String() string {
	if k.Version.IsZero() {
		return k.Format.String()
	}
	return k.Format.String() + " " + k.Version.String()
}

// Resource is implemented by the top-level value objects filled from a
// document of some Format.
type Resource interface {
	Format() Format
}
