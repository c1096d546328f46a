// Command feedsniff detects the format of syndication documents and
// fills them into value objects.
//
//	feedsniff [--settings FILE] [--limit N] [--no-extensions] [--dump] FILE...
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/andaru/syndication"
	"github.com/andaru/syndication/apml"
	"github.com/andaru/syndication/app"
	"github.com/andaru/syndication/atom"
	"github.com/andaru/syndication/blogml"
	"github.com/andaru/syndication/format"
	"github.com/andaru/syndication/opml"
	"github.com/andaru/syndication/rsd"
	"github.com/andaru/syndication/rss"
	"github.com/andaru/syndication/settings"
	"github.com/davecgh/go-spew/spew"
	"github.com/golang/glog"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

type options struct {
	Settings     string `long:"settings" description:"YAML load settings file"`
	Limit        int    `long:"limit" description:"Retrieval limit for repeating items (0 is unlimited)"`
	NoExtensions bool   `long:"no-extensions" description:"Do not load extensions"`
	Dump         bool   `long:"dump" description:"Dump each filled document"`
	Verbosity    int    `short:"v" long:"verbosity" description:"glog verbosity; 1 logs skipped values"`

	Args struct {
		Files []string `positional-arg-name:"FILE" required:"1"`
	} `positional-args:"yes"`
}

func main() {
	var opts options
	if _, err := flags.NewParser(&opts, flags.Default).Parse(); err != nil {
		if fe, ok := err.(*flags.Error); ok && fe.Type == flags.ErrHelp {
			return
		}
		os.Exit(2)
	}
	if err := setupLogging(opts.Verbosity); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer glog.Flush()

	s, err := loadSettings(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	status := 0
	for _, path := range opts.Args.Files {
		if err := sniff(os.Stdout, path, s, opts.Dump); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			status = 1
		}
	}
	glog.Flush()
	os.Exit(status)
}

// setupLogging sends glog output to stderr at the given verbosity.
func setupLogging(verbosity int) error {
	if err := flag.Set("logtostderr", "true"); err != nil {
		return errors.Wrap(err, "setting glog logtostderr")
	}
	if err := flag.Set("v", strconv.Itoa(verbosity)); err != nil {
		return errors.Wrap(err, "setting glog verbosity")
	}
	return nil
}

func loadSettings(opts options) (settings.Load, error) {
	s := settings.Default()
	if opts.Settings != "" {
		var err error
		if s, err = settings.LoadFile(opts.Settings); err != nil {
			return s, err
		}
	}
	if opts.Limit != 0 {
		s.RetrievalLimit = opts.Limit
	}
	if opts.NoExtensions {
		s.AutoDetectExtensions = false
		s.SupportedExtensions = nil
	}
	return s, s.Validate()
}

func sniff(w io.Writer, path string, s settings.Load, dump bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := syndication.Parse(f)
	if err != nil {
		return err
	}
	ra, err := syndication.NewResourceAdapter(doc, s)
	if err != nil {
		return err
	}
	fm, v := ra.Detect()
	r, err := ra.Load()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s: %s %s\n", path, format.Key{Format: fm, Version: v}, describe(r))
	if dump {
		spew.Fdump(w, r)
	}
	return nil
}

// describe summarizes the collections of r
func describe(r syndication.Resource) string {
	switch d := r.(type) {
	case *atom.Feed:
		return fmt.Sprintf("feed, %d entries", len(d.Entries))
	case *atom.Entry:
		return "entry"
	case *rss.Feed:
		return fmt.Sprintf("channel, %d items", len(d.Channel.Items))
	case *opml.Document:
		return fmt.Sprintf("%d outlines", len(d.Outlines))
	case *blogml.Document:
		return fmt.Sprintf("%d posts", len(d.Posts))
	case *apml.Document:
		return fmt.Sprintf("%d profiles", len(d.Profiles))
	case *rsd.Document:
		return fmt.Sprintf("%d apis", len(d.APIs))
	case *app.ServiceDocument:
		return fmt.Sprintf("%d workspaces", len(d.Workspaces))
	case *app.CategoryDocument:
		return fmt.Sprintf("%d categories", len(d.Categories.Categories))
	}
	return fmt.Sprintf("%T", r)
}
