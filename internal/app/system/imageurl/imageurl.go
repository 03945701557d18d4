// Package imageurl resolves CMS image references to CDN URLs.
//
// The CMS stores images as asset references like
// "image-abc123def-1200x800-jpg". The CDN serves them at
// <base>/<id>-<dims>.<format>, with resizing controlled by query
// parameters. Site-relative paths and absolute URLs pass through
// untouched so older documents keep working.
package imageurl

import (
	"fmt"
	"strings"
)

// DefaultBaseURL is the production CDN prefix, overridable in config.
const DefaultBaseURL = "https://cdn.sanity.io/images/q2w6jxdi/production"

// Builder turns image references into URLs against a fixed CDN base.
type Builder struct {
	baseURL string
}

// New creates a Builder. An empty baseURL falls back to DefaultBaseURL.
func New(baseURL string) *Builder {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Builder{baseURL: strings.TrimRight(baseURL, "/")}
}

// URL resolves a reference to a full image URL at its original size.
// Unresolvable references yield "", which templates treat as "show the
// placeholder".
func (b *Builder) URL(ref string) string {
	return b.resolve(ref, "")
}

// Sized resolves a reference to a URL cropped to the given dimensions.
func (b *Builder) Sized(ref string, width, height int) string {
	return b.resolve(ref, fmt.Sprintf("?w=%d&h=%d&fit=crop&auto=format", width, height))
}

func (b *Builder) resolve(ref, params string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}

	// Absolute URLs and site-relative paths pass through
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	if strings.HasPrefix(ref, "/") {
		return ref
	}

	file, ok := assetFile(ref)
	if !ok {
		return ""
	}
	return b.baseURL + "/" + file + params
}

// assetFile converts "image-<id>-<dims>-<format>" into "<id>-<dims>.<format>".
func assetFile(ref string) (string, bool) {
	rest, ok := strings.CutPrefix(ref, "image-")
	if !ok {
		return "", false
	}
	i := strings.LastIndexByte(rest, '-')
	if i <= 0 || i == len(rest)-1 {
		return "", false
	}
	return rest[:i] + "." + rest[i+1:], true
}
