package internal

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// characters illegal in file names on common filesystems
const illegalFilenameChars = `\/*?:"<>|`

// SanitizeThreadID maps an arbitrary thread identifier to a safe on-disk
// file name. Illegal characters are stripped, spaces become underscores.
// If the result is empty or consists only of dots, a deterministic
// fallback name derived from a hash of the original input is returned, so
// every thread id still maps to exactly one file name.
func SanitizeThreadID(threadID string) string {
	var b strings.Builder
	b.Grow(len(threadID))
	for _, r := range threadID {
		switch {
		case strings.ContainsRune(illegalFilenameChars, r):
			// stripped
		case r == ' ':
			b.WriteByte('_')
		default:
			b.WriteRune(r)
		}
	}

	sanitized := b.String()
	if sanitized == "" || strings.Trim(sanitized, ".") == "" {
		return fmt.Sprintf("invalid_thread_%d", hashThreadID(threadID))
	}
	return sanitized
}

// hashThreadID returns a stable FNV-1a hash of the thread id
func hashThreadID(threadID string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(threadID))
	return h.Sum64()
}
