package tfidf

import "fmt"

// Snapshot is the persistable form of a built model. It shares the
// model's backing arrays; treat it as read-only.
type Snapshot struct {
	Fingerprint uint64
	CorpusSize  int
	Terms       []string
	IDF         []float64
	Vectors     [][]float32
}

// Snapshot captures the model for persistence.
func (m *Model) Snapshot() *Snapshot {
	return &Snapshot{
		Fingerprint: m.fingerprint,
		CorpusSize:  m.corpusSize,
		Terms:       m.terms,
		IDF:         m.idf,
		Vectors:     m.vectors,
	}
}

// CompatibleWith reports whether the snapshot can serve a corpus with the
// given fingerprint and size. Any mismatch means the snapshot belongs to
// a different corpus and must be rebuilt from scratch.
func (s *Snapshot) CompatibleWith(fingerprint uint64, corpusSize int) bool {
	return s != nil && s.Fingerprint == fingerprint && s.CorpusSize == corpusSize
}

// FromSnapshot reconstitutes a ready model without re-tokenizing the
// corpus. The snapshot's internal shape is validated; a malformed
// snapshot yields ErrInvalidSnapshot.
func FromSnapshot(s *Snapshot) (*Model, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil snapshot", ErrInvalidSnapshot)
	}
	if len(s.Terms) != len(s.IDF) {
		return nil, fmt.Errorf("%w: %d terms but %d idf weights", ErrInvalidSnapshot, len(s.Terms), len(s.IDF))
	}
	if len(s.Vectors) != s.CorpusSize {
		return nil, fmt.Errorf("%w: %d vectors for corpus size %d", ErrInvalidSnapshot, len(s.Vectors), s.CorpusSize)
	}
	for i, row := range s.Vectors {
		if len(row) != len(s.Terms) {
			return nil, fmt.Errorf("%w: vector %d has %d columns, want %d", ErrInvalidSnapshot, i, len(row), len(s.Terms))
		}
	}

	index := make(map[string]int, len(s.Terms))
	for i, term := range s.Terms {
		index[term] = i
	}

	return &Model{
		fingerprint: s.Fingerprint,
		corpusSize:  s.CorpusSize,
		terms:       s.Terms,
		index:       index,
		idf:         s.IDF,
		vectors:     s.Vectors,
	}, nil
}
