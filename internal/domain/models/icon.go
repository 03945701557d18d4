// internal/domain/models/icon.go
package models

import "strings"

// IconKind discriminates the historical shapes of a service icon.
type IconKind int

const (
	IconNone IconKind = iota
	IconEmoji
	IconImageRef
	IconPath
)

// Icon is the decoded form of a service icon. The CMS stored icons three
// different ways over time: an emoji string, a site-relative image path
// ("/visa-assistance.webp"), or an image asset reference. DecodeIcon
// resolves the shape once at the data-access boundary; views switch on
// Kind instead of re-sniffing the raw value.
type Icon struct {
	Kind  IconKind
	Value string // emoji text, image path, or asset reference id
}

// DecodeIcon classifies a raw icon value from the CMS. An asset reference
// id (if any) wins over the flat string value, matching how the CMS
// prefers the uploaded image with the emoji as fallback.
func DecodeIcon(assetRef, raw string) Icon {
	if assetRef != "" {
		return Icon{Kind: IconImageRef, Value: assetRef}
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Icon{Kind: IconNone}
	}
	if strings.HasPrefix(raw, "/") {
		return Icon{Kind: IconPath, Value: raw}
	}
	return Icon{Kind: IconEmoji, Value: raw}
}

// IsZero reports whether no icon is set.
func (i Icon) IsZero() bool { return i.Kind == IconNone }
