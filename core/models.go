package core

import (
	"encoding/binary"
	"math"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for an internship posting.
// IDs come from the source dataset and stay stable across reloads.
type ID int64

// Internship represents a single internship posting.
// Missing or malformed source fields are zero values; a record is never
// rejected at load time.
type Internship struct {
	Id             ID
	Title          string
	Company        string
	Description    string
	SkillsRequired string // Comma-separated skill list as published
	Category       string
	Location       string // Place name, resolved against the place registry
	Latitude       float64
	Longitude      float64
	Stipend        string // Free-form, e.g. "INR 10000/month"
	DurationMonths int
}

// SearchText returns the text used for vectorization: title, company,
// description, skills and category joined with single spaces.
func (i *Internship) SearchText() string {
	return strings.Join([]string{
		i.Title, i.Company, i.Description, i.SkillsRequired, i.Category,
	}, " ")
}

// SearchResult represents a search result with the full posting and relevance score.
type SearchResult struct {
	Internship *Internship
	Score      float64
}

// Fingerprint computes a deterministic content hash over records using BLAKE2b.
// Any change to record content or order produces a different fingerprint.
// Strings are length-prefixed and numerics fixed-width so field boundaries
// cannot alias.
func Fingerprint(records []Internship) uint64 {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	var num [8]byte

	writeString := func(s string) {
		binary.LittleEndian.PutUint64(num[:], uint64(len(s)))
		h.Write(num[:])
		h.Write([]byte(s))
	}
	writeFloat := func(f float64) {
		binary.LittleEndian.PutUint64(num[:], math.Float64bits(f))
		h.Write(num[:])
	}

	for idx := range records {
		r := &records[idx]
		binary.LittleEndian.PutUint64(num[:], uint64(r.Id))
		h.Write(num[:])
		writeString(r.Title)
		writeString(r.Company)
		writeString(r.Description)
		writeString(r.SkillsRequired)
		writeString(r.Category)
		writeString(r.Location)
		writeString(r.Stipend)
		binary.LittleEndian.PutUint64(num[:], uint64(r.DurationMonths))
		h.Write(num[:])
		writeFloat(r.Latitude)
		writeFloat(r.Longitude)
	}

	sum := h.Sum(nil)
	return binary.LittleEndian.Uint64(sum)
}
