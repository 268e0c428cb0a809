package transcript

import (
	"encoding/hex"
	"fmt"
	"time"

	"lukechampine.com/blake3"
)

// Fingerprint derives a stable identity for a piece of media from its
// path, size, and modification time. Sessions compare fingerprints to
// detect a media file changing underneath a saved transcript.
func Fingerprint(path string, size int64, modTime time.Time) string {
	h := blake3.New(16, nil)
	fmt.Fprintf(h, "%s\x00%d\x00%d", path, size, modTime.UnixNano())
	return hex.EncodeToString(h.Sum(nil))
}
