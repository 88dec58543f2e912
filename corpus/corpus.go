package corpus

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/Sanjay1766/OptiSearch-AI/core"
)

// Corpus is an immutable ordered collection of internship records with
// precomputed lookup views. Positions in the roaring sets are indices into
// the record slice.
type Corpus struct {
	records     []core.Internship
	fingerprint uint64
	locations   []string
	categories  []string

	// Posting sets keyed by trimmed lowercased value.
	byCategory map[string]*roaring.Bitmap
	byLocation map[string]*roaring.Bitmap

	// First occurrence wins when ids repeat.
	byID map[core.ID]int

	logger *slog.Logger
}

// Option configures a Corpus.
type Option func(*Corpus) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Corpus) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// New builds a Corpus over records. The slice is retained; callers must not
// modify it afterwards. Records that fail validation are kept with a logged
// warning, so a partially malformed dataset still serves searches.
func New(records []core.Internship, opts ...Option) (*Corpus, error) {
	c := &Corpus{
		records:    records,
		byCategory: make(map[string]*roaring.Bitmap),
		byLocation: make(map[string]*roaring.Bitmap),
		byID:       make(map[core.ID]int, len(records)),
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	c.fingerprint = core.Fingerprint(records)

	seenLocation := make(map[string]struct{})
	seenCategory := make(map[string]struct{})
	for i := range records {
		r := &records[i]

		if err := core.ValidateInternship(r); err != nil {
			c.logger.Warn("keeping invalid record", "position", i, "id", int64(r.Id), "err", err)
		}

		if _, ok := c.byID[r.Id]; !ok {
			c.byID[r.Id] = i
		}

		if r.Location != "" {
			if _, ok := seenLocation[r.Location]; !ok {
				seenLocation[r.Location] = struct{}{}
				c.locations = append(c.locations, r.Location)
			}
			addPosting(c.byLocation, r.Location, uint32(i))
		}
		if r.Category != "" {
			if _, ok := seenCategory[r.Category]; !ok {
				seenCategory[r.Category] = struct{}{}
				c.categories = append(c.categories, r.Category)
			}
			addPosting(c.byCategory, r.Category, uint32(i))
		}
	}

	return c, nil
}

func addPosting(sets map[string]*roaring.Bitmap, value string, position uint32) {
	key := postingKey(value)
	bm, ok := sets[key]
	if !ok {
		bm = roaring.New()
		sets[key] = bm
	}
	bm.Add(position)
}

// Len returns the number of records.
func (c *Corpus) Len() int {
	return len(c.records)
}

// Records returns the backing record slice. Callers must not modify it.
func (c *Corpus) Records() []core.Internship {
	return c.records
}

// At returns a pointer to the record at position i.
func (c *Corpus) At(i int) *core.Internship {
	return &c.records[i]
}

// PositionOf returns the position of the record with the given id.
func (c *Corpus) PositionOf(id core.ID) (int, bool) {
	i, ok := c.byID[id]
	return i, ok
}

// Fingerprint returns the cached content fingerprint of the records.
func (c *Corpus) Fingerprint() uint64 {
	return c.fingerprint
}

// Locations returns the distinct location values in first-appearance order.
func (c *Corpus) Locations() []string {
	return slices.Clone(c.locations)
}

// Categories returns the distinct category values in first-appearance order.
func (c *Corpus) Categories() []string {
	return slices.Clone(c.categories)
}

// CategorySet returns the posting set of record positions for a category,
// matched case-insensitively and ignoring surrounding whitespace, or nil
// when the category is unknown. The returned bitmap is shared; callers
// must not modify it.
func (c *Corpus) CategorySet(category string) *roaring.Bitmap {
	return c.byCategory[postingKey(category)]
}

// LocationSet returns the posting set of record positions for a location,
// matched case-insensitively and ignoring surrounding whitespace, or nil
// when the location is unknown. The returned bitmap is shared; callers
// must not modify it.
func (c *Corpus) LocationSet(location string) *roaring.Bitmap {
	return c.byLocation[postingKey(location)]
}

// postingKey normalizes a category or location value for set lookup.
func postingKey(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
