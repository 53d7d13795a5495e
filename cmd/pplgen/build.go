package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ddvk/ppl/catalog"
	"github.com/ddvk/ppl/config"
	"github.com/ddvk/ppl/hcldef"
	"github.com/ddvk/ppl/metrics"
	"github.com/ddvk/ppl/store"
	log "github.com/sirupsen/logrus"
)

// publisher turns definition files into stored documents.
type publisher struct {
	cfg     config.Config
	root    string
	store   store.Store
	catalog *catalog.Catalog
	rec     metrics.Recorder
}

// key names the object for a definition file: its path relative to root
// with the extension replaced by .ppl.
func (p *publisher) key(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	rel, err := filepath.Rel(p.root, abs)
	if err != nil || strings.HasPrefix(rel, "..") {
		rel = filepath.Base(path)
	}
	rel = strings.TrimSuffix(filepath.ToSlash(rel), filepath.Ext(rel))
	return p.cfg.Output.Prefix + rel + ".ppl"
}

// publish builds every file and reports how many failed.
func (p *publisher) publish(ctx context.Context, files []string) int {
	failed := 0
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return failed + 1
		}
		if err := p.publishFile(ctx, f); err != nil {
			log.WithError(err).Errorf("%s", f)
			failed++
		}
	}
	return failed
}

func (p *publisher) publishFile(ctx context.Context, path string) error {
	key := p.key(path)
	s, err := hcldef.Load(ctx, path)
	if errors.Is(err, fs.ErrNotExist) {
		return p.unpublish(ctx, key)
	}
	if err != nil {
		return err
	}

	doc := s.Document()
	doc.Recorder = p.rec
	if s.FormatVersion == 0 {
		doc.FormatVersion = p.cfg.Document.FormatVersion
	}
	if s.SelectedLoadCase == 0 {
		doc.SelectedLoadCase = p.cfg.Document.SelectedLoadCase
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	info, err := p.store.Put(ctx, key, &buf, store.PutOptions{
		ContentType: store.ContentType,
		Metadata: map[string]string{
			"source":      filepath.ToSlash(path),
			"root":        doc.Root.TypeTag(),
			"user":        doc.Saved.User,
			"workstation": doc.Saved.Workstation,
		},
		Overwrite: p.cfg.Output.Overwrite,
	})
	if err != nil {
		return fmt.Errorf("store %s: %w", key, err)
	}
	if p.catalog != nil {
		if err := p.catalog.Index(ctx, key, doc); err != nil {
			return fmt.Errorf("catalog %s: %w", key, err)
		}
	}
	log.WithField("key", key).Infof("published %s (%d bytes)", s.Name, info.Size)
	return nil
}

// unpublish removes the document of a definition that no longer exists.
func (p *publisher) unpublish(ctx context.Context, key string) error {
	existed, err := p.store.Delete(ctx, key)
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	if p.catalog != nil {
		if _, err := p.catalog.Remove(ctx, key); err != nil {
			return fmt.Errorf("catalog %s: %w", key, err)
		}
	}
	if existed {
		log.WithField("key", key).Info("removed")
	}
	return nil
}

func workingDir() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}
