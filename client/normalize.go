package client

import "strings"

// NormalizeImageURL resolves a stored image reference into a directly
// renderable URL. References come in three shapes: a server-hosted
// "uploads/..." path, a bundled "json/..." seed asset, or an already
// usable URL. Always returns a string, never fails.
func NormalizeImageURL(ref, baseURL string) string {
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "uploads/") {
		return strings.TrimRight(baseURL, "/") + "/" + ref
	}
	// Bundled seed images live under the static asset root.
	if len(ref) >= 5 && strings.EqualFold(ref[:5], "json/") {
		return "/" + ref[5:]
	}
	return ref
}
