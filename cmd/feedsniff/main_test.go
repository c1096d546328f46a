package main

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/andaru/syndication/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSniff(t *testing.T) {
	for _, tc := range []struct {
		name string
		doc  string
		want string
	}{
		{"rss", `<rss version="2.0"><channel><title>T</title><item/><item/></channel></rss>`, "Rss 2.0 channel, 2 items"},
		{"atom entry", `<entry xmlns="http://www.w3.org/2005/Atom"><title>E</title></entry>`, "Atom 1.0 entry"},
		{"opml", `<opml version="1.1"><head/><body><outline text="a"/></body></opml>`, "Opml 1.1 1 outlines"},
		{"rsd", `<rsd><service><apis><api name="x"/></apis></service></rsd>`, "Rsd 1.0 1 apis"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, "doc.xml", tc.doc)
			var out bytes.Buffer
			require.NoError(t, sniff(&out, path, mustSettings(t, options{}), false))
			assert.Equal(t, path+": "+tc.want+"\n", out.String())
		})
	}
}

func TestSniffDump(t *testing.T) {
	path := writeFile(t, "doc.xml", `<rss version="2.0"><channel><title>Dumped</title></channel></rss>`)
	var out bytes.Buffer
	require.NoError(t, sniff(&out, path, mustSettings(t, options{}), true))
	assert.Contains(t, out.String(), `Title: (string) (len=6) "Dumped"`)
}

func TestSniffErrors(t *testing.T) {
	a := assert.New(t)
	s := mustSettings(t, options{})
	var out bytes.Buffer
	a.Error(sniff(&out, filepath.Join(t.TempDir(), "missing.xml"), s, false))
	a.Error(sniff(&out, writeFile(t, "bad.xml", `<rss`), s, false))
	a.Error(sniff(&out, writeFile(t, "html.xml", `<html/>`), s, false))
	a.Empty(out.String())
}

func TestLoadSettings(t *testing.T) {
	a := assert.New(t)
	path := writeFile(t, "settings.yaml", "retrieval_limit: 3\nresolve_relative_uris: true\n")

	s := mustSettings(t, options{Settings: path, Limit: 7, NoExtensions: true})
	a.Equal(7, s.RetrievalLimit)
	a.True(s.ResolveRelativeURIs)
	a.False(s.AutoDetectExtensions)

	_, err := loadSettings(options{Limit: -1})
	a.Error(err)
	_, err = loadSettings(options{Settings: filepath.Join(t.TempDir(), "none.yaml")})
	a.Error(err)
}

func mustSettings(t *testing.T, opts options) settings.Load {
	t.Helper()
	s, err := loadSettings(opts)
	require.NoError(t, err)
	return s
}

func TestSetupLogging(t *testing.T) {
	a := assert.New(t)
	v, toStderr := flag.Lookup("v"), flag.Lookup("logtostderr")
	require.NotNil(t, v)
	require.NotNil(t, toStderr)
	oldV, oldToStderr := v.Value.String(), toStderr.Value.String()
	defer func() {
		_ = flag.Set("v", oldV)
		_ = flag.Set("logtostderr", oldToStderr)
	}()

	require.NoError(t, setupLogging(2))
	a.Equal("2", v.Value.String())
	a.Equal("true", toStderr.Value.String())
	require.NoError(t, setupLogging(0))
	a.Equal("0", v.Value.String())
}
