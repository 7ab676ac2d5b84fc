// Package yaml reads and writes document manifests.
//
// A manifest lists documents to register:
//
//	documents:
//	  - title: User Guide
//	    markdown: /content/guide.md
//	    page: /guide
//	    color: "#ff8800"
package yaml

import (
	"errors"
	"io"

	"github.com/fwojciec/dochub"
	"gopkg.in/yaml.v3"
)

type manifest struct {
	Documents []entry `yaml:"documents"`
}

type entry struct {
	ID       string `yaml:"id,omitempty"`
	Title    string `yaml:"title"`
	Markdown string `yaml:"markdown"`
	Page     string `yaml:"page,omitempty"`
	Color    string `yaml:"color,omitempty"`
	Format   string `yaml:"format,omitempty"`
}

// ReadManifest decodes and validates a manifest. Documents keep manifest order.
func ReadManifest(r io.Reader) ([]*dochub.Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m manifest
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, dochub.Errorf(dochub.EINVALID, "invalid manifest: %v", err)
	}

	docs := make([]*dochub.Document, 0, len(m.Documents))
	seen := make(map[string]int, len(m.Documents))
	for i, e := range m.Documents {
		doc := &dochub.Document{
			ID:           e.ID,
			Title:        e.Title,
			MarkdownPath: e.Markdown,
			PagePath:     e.Page,
			Color:        e.Color,
			Format:       e.Format,
		}
		if doc.ID == "" {
			doc.ID = dochub.DocumentID(doc.Title)
		}
		if err := doc.Validate(); err != nil {
			return nil, dochub.Errorf(dochub.EINVALID, "manifest entry %d: %s", i+1, dochub.ErrorMessage(err))
		}
		if prev, ok := seen[doc.ID]; ok {
			return nil, dochub.Errorf(dochub.EINVALID, "manifest entry %d: id %q already used by entry %d", i+1, doc.ID, prev)
		}
		seen[doc.ID] = i + 1
		docs = append(docs, doc)
	}

	return docs, nil
}

// WriteManifest encodes docs in the format ReadManifest accepts.
func WriteManifest(w io.Writer, docs []*dochub.Document) error {
	m := manifest{Documents: make([]entry, 0, len(docs))}
	for _, d := range docs {
		m.Documents = append(m.Documents, entry{
			ID:       d.ID,
			Title:    d.Title,
			Markdown: d.MarkdownPath,
			Page:     d.PagePath,
			Color:    d.Color,
			Format:   d.Format,
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return err
	}
	return enc.Close()
}
