package db

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"
	"strings"
)

var slugUnsafe = regexp.MustCompile(`[^a-z0-9]+`)

// MakeSlug derives a URL-safe public slug from a profile name: lower-cased,
// with every run of non-alphanumeric characters collapsed to a single hyphen,
// plus a random 4-hex-digit suffix. Uniqueness is probabilistic, not
// guaranteed. An empty or fully unsafe name falls back to "profile".
func MakeSlug(name string) string {
	cleaned := strings.ToLower(name)
	cleaned = slugUnsafe.ReplaceAllString(cleaned, "-")
	cleaned = strings.Trim(cleaned, "-")
	if cleaned == "" {
		cleaned = "profile"
	}

	suffix := make([]byte, 2)
	_, _ = rand.Read(suffix)
	return cleaned + "-" + hex.EncodeToString(suffix)
}

// ResolveSlug applies the slug precedence for a save: an explicit slug on the
// incoming snapshot always wins, otherwise the record keeps its existing slug,
// otherwise a new one is generated from the profile name.
func ResolveSlug(snapshotSlug, existingSlug, profileName string) string {
	if snapshotSlug != "" {
		return snapshotSlug
	}
	if existingSlug != "" {
		return existingSlug
	}
	return MakeSlug(profileName)
}
