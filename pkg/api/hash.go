package api

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// ContentHash returns a deterministic BLAKE3 hash of the note's folder, name
// and body. The pipeline records it per polished copy so unchanged notes are
// skipped on later runs. Timestamps are excluded: only content matters.
func (n Note) ContentHash() string {
	h := blake3.New()

	h.Write([]byte(n.Folder))
	h.Write([]byte{0})

	h.Write([]byte(n.Name))
	h.Write([]byte{0})

	h.Write([]byte(n.Body))

	sum := h.Sum(nil)
	return hex.EncodeToString(sum)
}
