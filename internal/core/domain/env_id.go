package domain

import (
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint computes a short stable identity for an environment.
//
// Names are sorted within each bucket before hashing so that the fingerprint
// depends only on what is importable, not on directory-scan order. Two
// environments with identical contents always produce the same fingerprint.
func Fingerprint(d *ImportDump) string {
	h := xxhash.New()

	for _, cat := range Categories() {
		names := append([]string(nil), d.Bucket(cat)...)
		sort.Strings(names)

		_, _ = h.WriteString(string(cat))
		_, _ = h.Write([]byte{0})
		for _, name := range names {
			_, _ = h.WriteString(name)
			_, _ = h.Write([]byte{0})
		}
	}

	return fmt.Sprintf("%016x", h.Sum64())
}
