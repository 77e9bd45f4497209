package finances

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// AppDocumentKey is the storage key holding the serialized app document.
const AppDocumentKey = "app"

// Snapshot is a point-in-time read of the store: the document committed by
// the last update, whether loading has run, and the month key computed once
// at load time. A session spanning a month boundary keeps the key it started
// with.
//
// The document inside a snapshot is immutable until the next update; callers
// must treat it as read-only.
type Snapshot struct {
	Document        Document
	Ready           bool
	CurrentMonthKey MonthKey
}

// Store is the single source of truth for the app document. It mediates all
// reads and writes, mirrors the document to durable storage, and notifies
// subscribers after every commit.
//
// There is exactly one writer path: Update. Construct one Store per
// application (or per test) with Open and pass it around; there is no
// package-level instance.
type Store struct {
	mu       sync.RWMutex
	storage  Storage
	log      zerolog.Logger
	now      func() time.Time
	doc      Document
	ready    bool
	monthKey MonthKey

	nextListener int
	listeners    map[int]func()
}

// Option customizes a Store at construction.
type Option func(*Store)

// WithClock replaces the wall clock, used for metadata stamping and the
// current month key. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger sets the logger used to trace silent recoveries (malformed
// document fallback, persistence failures). The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) { s.log = log }
}

// Open constructs a Store backed by storage and loads the persisted document.
// Loading is total: a missing, malformed or wrong-version document is
// replaced by DefaultDocument and the failure is only traced, never surfaced.
func Open(storage Storage, opts ...Option) *Store {
	s := &Store{
		storage:   storage,
		log:       zerolog.Nop(),
		now:       time.Now,
		listeners: make(map[int]func()),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.load()
	return s
}

func (s *Store) load() {
	doc := DefaultDocument()
	raw, ok, err := s.storage.Read(AppDocumentKey)
	switch {
	case err != nil:
		s.log.Debug().Err(err).Msg("could not read app document, starting from defaults")
	case ok:
		decoded, err := DecodeDocument([]byte(raw))
		if err != nil {
			s.log.Debug().Err(err).Msg("discarding persisted app document, starting from defaults")
		} else {
			doc = decoded
		}
	}

	s.mu.Lock()
	s.doc = doc
	s.ready = true
	s.monthKey = MonthKeyOf(s.now())
	s.mu.Unlock()
}

// Snapshot returns the current in-memory document.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{Document: s.doc, Ready: s.ready, CurrentMonthKey: s.monthKey}
}

// Update applies a pure transform to the current document and commits the
// result as the new snapshot. The document metadata is overwritten
// unconditionally, so a transform cannot forge the version or timestamp. The
// committed document is persisted best-effort: a storage failure keeps the
// in-memory document correct for the rest of the session and is only traced.
// Subscribers are notified synchronously before Update returns.
func (s *Store) Update(transform func(Document) Document) {
	s.mu.Lock()
	next := transform(s.doc.clone())
	next.Meta = Meta{Version: SchemaVersion, UpdatedAt: s.now().UTC()}
	s.doc = next
	listeners := make([]func(), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.persistLocked()
	s.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// persistLocked writes the current document to storage. Callers hold mu.
func (s *Store) persistLocked() {
	data, err := EncodeDocument(s.doc)
	if err == nil {
		err = s.storage.Write(AppDocumentKey, string(data))
	}
	if err != nil {
		// Changes stay usable in memory but will not survive a reload.
		s.log.Debug().Err(err).Msg("could not persist app document")
	}
}

// Reset replaces the whole document with defaults. This is the only way the
// document is ever destroyed.
func (s *Store) Reset() {
	s.Update(func(Document) Document { return DefaultDocument() })
}

// Subscribe registers a listener invoked after every committed update. The
// returned function unregisters it.
func (s *Store) Subscribe(fn func()) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextListener
	s.nextListener++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}
