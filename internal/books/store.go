package books

import (
	"cmp"
	"slices"
	"sync"
	"time"
)

// Snapshot is a consistent copy of the collection at one point in time.
type Snapshot struct {
	Books     []Book
	Version   uint64
	UpdatedAt time.Time
}

// Store owns the ordered book collection. All lookups are linear scans.
type Store struct {
	mu        sync.RWMutex
	books     []Book
	version   uint64
	updatedAt time.Time

	subMu   sync.Mutex
	subs    map[int]func(Snapshot)
	nextSub int
}

// NewStore returns a store holding a copy of seed, in order.
func NewStore(seed []Book) *Store {
	return &Store{
		books:     slices.Clone(seed),
		updatedAt: time.Now(),
	}
}

// List returns a copy of the collection in its current order.
func (s *Store) List() []Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.books)
}

// Len returns the number of books currently held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.books)
}

// Snapshot returns the books together with the version they belong to.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Version counts successful mutations since construction.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Get returns the book with id, or false when there is none.
func (s *Store) Get(id int) (Book, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexLocked(id); i >= 0 {
		return s.books[i], true
	}
	return Book{}, false
}

// Exists reports whether a book with id is present.
func (s *Store) Exists(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexLocked(id) >= 0
}

// NextID is the largest live id plus one, or 1 for an empty collection.
// It is derived on every call so deleted ids never shadow live ones.
func (s *Store) NextID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nextIDLocked()
}

// Add appends a new book with the next id and returns it.
func (s *Store) Add(f Fields) Book {
	s.mu.Lock()
	b := Book{
		ID:          s.nextIDLocked(),
		Name:        f.Name,
		Author:      f.Author,
		Pages:       f.Pages,
		PublishDate: f.PublishDate,
	}
	s.books = append(s.books, b)
	snap := s.bumpLocked()
	s.mu.Unlock()

	s.notify(snap)
	return b
}

// Update merges the supplied fields into the book with p.ID, keeping its
// position. It returns false and changes nothing when the id is unknown.
func (s *Store) Update(p Patch) (Book, bool) {
	s.mu.Lock()
	i := s.indexLocked(p.ID)
	if i < 0 {
		s.mu.Unlock()
		return Book{}, false
	}
	updated := p.apply(s.books[i])
	s.books[i] = updated
	snap := s.bumpLocked()
	s.mu.Unlock()

	s.notify(snap)
	return updated, true
}

// Delete removes the book with id. Deleting an unknown id is a no-op.
func (s *Store) Delete(id int) bool {
	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	s.books = slices.Delete(s.books, i, i+1)
	snap := s.bumpLocked()
	s.mu.Unlock()

	s.notify(snap)
	return true
}

// Subscribe registers fn to receive a snapshot after every mutation. The
// callback runs on the mutating goroutine after the lock is released. The
// returned func removes the subscription.
func (s *Store) Subscribe(fn func(Snapshot)) (cancel func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	if s.subs == nil {
		s.subs = make(map[int]func(Snapshot))
	}
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) notify(snap Snapshot) {
	s.subMu.Lock()
	fns := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

func (s *Store) bumpLocked() Snapshot {
	s.version++
	s.updatedAt = time.Now()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Books:     slices.Clone(s.books),
		Version:   s.version,
		UpdatedAt: s.updatedAt,
	}
}

func (s *Store) indexLocked(id int) int {
	return slices.IndexFunc(s.books, func(b Book) bool { return b.ID == id })
}

func (s *Store) nextIDLocked() int {
	if len(s.books) == 0 {
		return 1
	}
	return slices.MaxFunc(s.books, func(a, b Book) int { return cmp.Compare(a.ID, b.ID) }).ID + 1
}
