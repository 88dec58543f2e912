// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package storage

import (
	"fmt"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"

	"github.com/Sanjay1766/OptiSearch-AI/tfidf"
)

// MarshalSnapshot serializes a model snapshot to bytes.
func MarshalSnapshot(snapshot *tfidf.Snapshot) []byte {
	buf := make([]byte, snapshotMUS.Size(*snapshot))
	snapshotMUS.Marshal(*snapshot, buf)
	return buf
}

// UnmarshalSnapshot deserializes a model snapshot from bytes.
func UnmarshalSnapshot(data []byte) (*tfidf.Snapshot, error) {
	snapshot, _, err := snapshotMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &snapshot, nil
}

var snapshotMUS = snapshotSer{}

// snapshotSer encodes a snapshot as MUS: varint fingerprint and counts,
// length-prefixed terms, then raw fixed-width idf and vector cells.
// Every slice length is validated against the remaining buffer before
// allocation so corrupt data fails instead of exhausting memory.
type snapshotSer struct{}

func (snapshotSer) Marshal(v tfidf.Snapshot, bs []byte) (n int) {
	n = varint.Uint64.Marshal(v.Fingerprint, bs)
	n += varint.PositiveInt.Marshal(v.CorpusSize, bs[n:])
	n += varint.PositiveInt.Marshal(len(v.Terms), bs[n:])
	for _, term := range v.Terms {
		n += ord.String.Marshal(term, bs[n:])
	}
	n += varint.PositiveInt.Marshal(len(v.IDF), bs[n:])
	for _, w := range v.IDF {
		n += raw.Float64.Marshal(w, bs[n:])
	}
	n += varint.PositiveInt.Marshal(len(v.Vectors), bs[n:])
	for _, row := range v.Vectors {
		n += varint.PositiveInt.Marshal(len(row), bs[n:])
		for _, cell := range row {
			n += raw.Float32.Marshal(cell, bs[n:])
		}
	}
	return n
}

func (snapshotSer) Unmarshal(bs []byte) (v tfidf.Snapshot, n int, err error) {
	v.Fingerprint, n, err = varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.CorpusSize, n1, err = varint.PositiveInt.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}

	var count int
	count, n1, err = varint.PositiveInt.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	if count > len(bs[n:]) {
		err = ErrTruncatedData
		return
	}
	v.Terms = make([]string, count)
	for i := range v.Terms {
		v.Terms[i], n1, err = ord.String.Unmarshal(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}

	count, n1, err = varint.PositiveInt.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	if count > len(bs[n:]) {
		err = ErrTruncatedData
		return
	}
	v.IDF = make([]float64, count)
	for i := range v.IDF {
		v.IDF[i], n1, err = raw.Float64.Unmarshal(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}

	count, n1, err = varint.PositiveInt.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	if count > len(bs[n:]) {
		err = ErrTruncatedData
		return
	}
	v.Vectors = make([][]float32, count)
	for i := range v.Vectors {
		var cols int
		cols, n1, err = varint.PositiveInt.Unmarshal(bs[n:])
		n += n1
		if err != nil {
			return
		}
		if cols > len(bs[n:]) {
			err = ErrTruncatedData
			return
		}
		row := make([]float32, cols)
		for j := range row {
			row[j], n1, err = raw.Float32.Unmarshal(bs[n:])
			n += n1
			if err != nil {
				return
			}
		}
		v.Vectors[i] = row
	}
	return
}

func (snapshotSer) Size(v tfidf.Snapshot) (size int) {
	size = varint.Uint64.Size(v.Fingerprint)
	size += varint.PositiveInt.Size(v.CorpusSize)
	size += varint.PositiveInt.Size(len(v.Terms))
	for _, term := range v.Terms {
		size += ord.String.Size(term)
	}
	size += varint.PositiveInt.Size(len(v.IDF))
	size += len(v.IDF) * raw.Float64.Size(0)
	size += varint.PositiveInt.Size(len(v.Vectors))
	for _, row := range v.Vectors {
		size += varint.PositiveInt.Size(len(row))
		size += len(row) * raw.Float32.Size(0)
	}
	return size
}
