package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/ddvk/ppl/catalog"
	"github.com/ddvk/ppl/config"
	"github.com/ddvk/ppl/element"
	"github.com/ddvk/ppl/ppl"
	"github.com/ddvk/ppl/store"
	log "github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

func printDocument(w io.Writer, doc *ppl.Document, withAttributes bool) error {
	date := "-"
	if !doc.Saved.Date.IsZero() {
		date = doc.Saved.Date.Format("2006-01-02 15:04:05")
	}
	fmt.Fprintf(w, "Saved: %s by %s on %s\n", date, orDash(doc.Saved.User), orDash(doc.Saved.Workstation))
	fmt.Fprintf(w, "Version: %d load case: %d\n", doc.FormatVersion, doc.SelectedLoadCase)
	err := element.Walk(doc.Root, func(e *element.Element, depth int) error {
		indent := strings.Repeat("\t", depth)
		fmt.Fprintf(w, "%s%s %s %q\n", indent, e.TypeTag(), e.ID(), e.DisplayName())
		if !withAttributes {
			return nil
		}
		for _, a := range e.Attributes() {
			fmt.Fprintf(w, "%s\t\t%s (%s): %s\n", indent, a.DisplayName(), a.Type, a.Text())
		}
		return nil
	})
	if err != nil {
		return err
	}
	printCounts(w, element.Count(doc.Root))
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func printCounts(w io.Writer, counts map[element.Kind]int) {
	kinds := make([]element.Kind, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	for _, k := range kinds {
		fmt.Fprintf(w, "%-24s %d\n", k.Tag(), counts[k])
	}
}

func fromStore(ctx context.Context, configPath, key string) (*ppl.Document, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	st, err := store.Open(ctx, cfg.Output)
	if err != nil {
		return nil, err
	}
	_, rc, err := st.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	defer rc.Close()
	return ppl.Read(rc)
}

func queryCatalog(ctx context.Context, w io.Writer, path, find string) error {
	c, err := catalog.Open(path)
	if err != nil {
		return err
	}
	defer c.Close()

	if find == "" {
		docs, err := c.Documents(ctx)
		if err != nil {
			return err
		}
		for _, d := range docs {
			fmt.Fprintf(w, "%s\t%s\t%s\n", d.Key, d.RootKind.Tag(), d.SavedAt.Format("2006-01-02 15:04:05"))
		}
		counts, err := c.CountByKind(ctx)
		if err != nil {
			return err
		}
		printCounts(w, counts)
		return nil
	}

	name, value, ok := strings.Cut(find, "=")
	if !ok {
		return fmt.Errorf("-find wants NAME=VALUE, got %q", find)
	}
	found, err := c.FindByAttribute(ctx, name, value)
	if err != nil {
		return err
	}
	keys := make([]string, 0, len(found))
	for k := range found {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		for _, id := range found[k] {
			fmt.Fprintf(w, "%s\t%s\n", k, id)
		}
	}
	return nil
}

func run(ctx context.Context, out io.Writer, args []string) error {
	fs := flag.NewFlagSet("pplinfo", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprint(out, `pplinfo prints PPL documents and queries the element catalog.

Usage:
  pplinfo [options] FILE.ppl
  pplinfo -key KEY [-config pplgen.yaml]
  pplinfo -catalog catalog.db [-find "Pole Number=17"]

Options:
`)
		fs.PrintDefaults()
	}
	configPath := fs.String("config", config.FileName, "configuration naming the store")
	key := fs.String("key", "", "read this object from the configured store")
	catalogPath := fs.String("catalog", "", "query this catalog instead of a document")
	find := fs.String("find", "", "NAME=VALUE attribute to look up in the catalog")
	attrs := fs.Bool("a", false, "print attributes")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *catalogPath != "" {
		return queryCatalog(ctx, out, *catalogPath, *find)
	}

	var doc *ppl.Document
	var err error
	switch {
	case *key != "":
		doc, err = fromStore(ctx, *configPath, *key)
	case fs.NArg() > 0:
		doc, err = ppl.Open(fs.Arg(0))
	default:
		fs.Usage()
		return nil
	}
	if err != nil {
		return err
	}
	return printDocument(out, doc, *attrs)
}

func main() {
	prefixed := &prefixed.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
		ForceFormatting: true,
	}
	log.SetFormatter(prefixed)
	log.SetOutput(os.Stderr)
	if lvl, err := log.ParseLevel(os.Getenv("PPL_LOG_LEVEL")); err == nil {
		log.SetLevel(lvl)
	}
	err := run(context.Background(), os.Stdout, os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}
}
