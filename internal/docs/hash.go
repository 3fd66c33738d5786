package docs

import (
	"crypto/sha256"
	"encoding/hex"
)

func hashBytes(b []byte) string {
	h := sha256.Sum256(b)
	return hex.EncodeToString(h[:])
}

// ComputeHash returns a deterministic hash of the registry's ids and contents.
// It changes whenever a document is added, removed, renamed or edited.
func (r *Registry) ComputeHash() string {
	h := sha256.New()
	for _, d := range r.Documents() {
		h.Write([]byte(d.ID))
		h.Write([]byte{0})
		h.Write([]byte(d.ContentHash))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}
