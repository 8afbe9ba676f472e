// Package uri builds absolute URLs for endpoints and navigation targets.
package uri

import (
	"fmt"
	"net/url"
	"strings"
)

// NormalizeBase tidies a user-supplied base address: whitespace is trimmed,
// the scheme is lowercased (http:// is assumed when none is given) and
// trailing slashes are dropped. Only http and https are accepted.
func NormalizeBase(base string) (string, error) {
	base = strings.TrimSpace(base)
	if base == "" {
		return "", fmt.Errorf("base address is empty")
	}
	if i := strings.Index(base, "://"); i >= 0 {
		scheme := strings.ToLower(base[:i])
		if scheme != "http" && scheme != "https" {
			return "", fmt.Errorf("invalid base address %q: unsupported scheme %q", base, base[:i])
		}
		base = scheme + base[i:]
	} else {
		base = "http://" + base
	}
	base = strings.TrimRight(base, "/")

	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid base address %q: %w", base, err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("invalid base address %q: missing host", base)
	}
	return base, nil
}

// Resolve joins a normalized base address with a root-relative location such as
// "/delete-note" or "/tags". Each path segment is escaped; slashes are kept.
func Resolve(base, location string) string {
	cleanPath := strings.TrimPrefix(location, "/")
	if cleanPath == "" {
		return base + "/"
	}

	parts := strings.Split(cleanPath, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}

	return base + "/" + strings.Join(parts, "/")
}
