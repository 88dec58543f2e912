package badger

import (
	"encoding/binary"
)

// snapshotPrefix namespaces model snapshot keys.
const snapshotPrefix = "vecsnap"

// makeSnapshotKey generates a composite key for a model snapshot.
// Format: prefix:fingerprint
func makeSnapshotKey(fingerprint uint64) []byte {
	prefix := snapshotPrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8 // 8 bytes for fingerprint
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], fingerprint)
	return buf
}
