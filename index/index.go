// Package index provides the in-memory section index over a fixed set of
// registered documents.
package index

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/dochub"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Ensure Index implements dochub.SearchService at compile time.
var _ dochub.SearchService = (*Index)(nil)

// Index holds the sections of all documents. It is built once, on first use,
// and is read-only afterwards.
type Index struct {
	documents   []*dochub.Document
	fetcher     dochub.Fetcher
	converter   dochub.Converter
	logger      *slog.Logger
	concurrency int

	group singleflight.Group
	ready atomic.Bool

	mu       sync.RWMutex
	sections []*dochub.Section
	byDoc    map[string][]*dochub.Section
	hashes   map[string]string
}

// Option configures an Index.
type Option func(*Index)

// WithConverter sets the converter used for HTML documents. Without one,
// HTML documents contribute no sections.
func WithConverter(c dochub.Converter) Option {
	return func(idx *Index) {
		idx.converter = c
	}
}

// WithLogger sets the logger used to report build progress and failures.
func WithLogger(l *slog.Logger) Option {
	return func(idx *Index) {
		idx.logger = l
	}
}

// WithConcurrency limits the number of documents fetched at once.
// Defaults to fetching all documents concurrently.
func WithConcurrency(n int) Option {
	return func(idx *Index) {
		idx.concurrency = n
	}
}

// New creates an Index over documents, in registration order.
func New(documents []*dochub.Document, fetcher dochub.Fetcher, opts ...Option) *Index {
	idx := &Index{
		documents: documents,
		fetcher:   fetcher,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(idx)
	}
	return idx
}

// Documents returns the indexed documents in registration order.
func (idx *Index) Documents() []*dochub.Document {
	return idx.documents
}

// Ready reports whether the index has been built.
func (idx *Index) Ready() bool {
	return idx.ready.Load()
}

// EnsureIndex builds the index unless it is ready. Concurrent callers wait
// for the same build. The build is not tied to the caller: when ctx ends
// first, EnsureIndex returns ctx.Err() and the build carries on.
func (idx *Index) EnsureIndex(ctx context.Context) error {
	if idx.ready.Load() {
		return nil
	}

	ch := idx.group.DoChan("build", func() (any, error) {
		if idx.ready.Load() {
			return nil, nil
		}
		idx.build(context.WithoutCancel(ctx))
		return nil, nil
	})

	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// build fetches and parses every document. A document that fails to load
// contributes no sections.
func (idx *Index) build(ctx context.Context) {
	begin := time.Now()
	perDoc := make([][]*dochub.Section, len(idx.documents))
	hashes := make([]string, len(idx.documents))

	var g errgroup.Group
	if idx.concurrency > 0 {
		g.SetLimit(idx.concurrency)
	}
	for i, doc := range idx.documents {
		g.Go(func() error {
			sections, hash, err := idx.load(ctx, doc)
			if err != nil {
				idx.logger.Warn("document not indexed",
					"document", doc.ID,
					"location", doc.MarkdownPath,
					"err", err,
				)
				return nil
			}
			perDoc[i] = sections
			hashes[i] = hash
			return nil
		})
	}
	_ = g.Wait()

	var all []*dochub.Section
	byDoc := make(map[string][]*dochub.Section, len(idx.documents))
	byHash := make(map[string]string, len(idx.documents))
	for i, doc := range idx.documents {
		all = append(all, perDoc[i]...)
		byDoc[doc.ID] = perDoc[i]
		if hashes[i] != "" {
			byHash[doc.ID] = hashes[i]
		}
	}

	idx.mu.Lock()
	idx.sections = all
	idx.byDoc = byDoc
	idx.hashes = byHash
	idx.mu.Unlock()
	idx.ready.Store(true)

	idx.logger.Info("index built",
		"documents", len(idx.documents),
		"sections", len(all),
		"duration", time.Since(begin),
	)
}

func (idx *Index) load(ctx context.Context, doc *dochub.Document) ([]*dochub.Section, string, error) {
	source, err := idx.fetcher.Fetch(ctx, doc.MarkdownPath)
	if err != nil {
		return nil, "", fmt.Errorf("fetch: %w", err)
	}

	if doc.IsHTML() {
		if idx.converter == nil {
			return nil, "", dochub.Errorf(dochub.EINVALID, "no converter for HTML document %q", doc.ID)
		}
		source, err = idx.converter.Convert(source)
		if err != nil {
			return nil, "", fmt.Errorf("convert: %w", err)
		}
	}

	sections := dochub.ParseSections(source, doc)
	hash := HashContent(source)
	idx.logger.Debug("document indexed",
		"document", doc.ID,
		"bytes", len(source),
		"sections", len(sections),
		"hash", hash,
	)
	return sections, hash, nil
}

// HashContent returns the hex xxHash of content.
func HashContent(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}

// Sections returns all indexed sections. It is empty until the index is ready.
func (idx *Index) Sections() []*dochub.Section {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.sections
}

// FindSections returns the sections of one document in document order. A
// document that failed to load has none. Returns ENOTFOUND for an unknown ID.
func (idx *Index) FindSections(ctx context.Context, documentID string) ([]*dochub.Section, error) {
	known := false
	for _, doc := range idx.documents {
		if doc.ID == documentID {
			known = true
			break
		}
	}
	if !known {
		return nil, dochub.Errorf(dochub.ENOTFOUND, "document %q not indexed", documentID)
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.byDoc[documentID], nil
}

// Hash returns the content hash of a loaded document, or "" when the
// document did not load.
func (idx *Index) Hash(id string) string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.hashes[id]
}

// Search ranks the indexed sections against query. It does not build the
// index; an index that is not ready has no results.
func (idx *Index) Search(ctx context.Context, query string) ([]*dochub.SearchResult, error) {
	return dochub.Search(idx.Sections(), query), nil
}
