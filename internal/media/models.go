package media

import "fmt"

// Category identifies one of the two media kinds the repository accepts.
// It determines both the expected multipart field name and the storage
// folder/prefix an upload lands in.
type Category int

const (
	CategoryMusic Category = iota
	CategoryVideo
)

// Categories lists every known category in a fixed order.
var Categories = []Category{CategoryMusic, CategoryVideo}

// Field returns the multipart form field name bound to the category.
func (c Category) Field() string {
	switch c {
	case CategoryMusic:
		return "music"
	case CategoryVideo:
		return "video"
	default:
		return "unknown"
	}
}

// Prefix returns the storage folder (local) or object key prefix (remote)
// for the category. The video folder name is plural, the field name is not.
func (c Category) Prefix() string {
	switch c {
	case CategoryMusic:
		return "music"
	case CategoryVideo:
		return "videos"
	default:
		return "unknown"
	}
}

func (c Category) String() string {
	return c.Field()
}

// ParseCategory maps a multipart field name back to its category. An
// unmapped name is a configuration error, not client input.
func ParseCategory(field string) (Category, error) {
	for _, c := range Categories {
		if c.Field() == field {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, field)
}

// Item is one stored upload as exposed to clients: the stored name plus a
// retrieval URL. The service holds no record beyond what the backend lists.
type Item struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Listing is the combined per-category enumeration returned by /api/files.
// The JSON keys mirror the storage prefixes.
type Listing struct {
	Music  []Item `json:"music"`
	Videos []Item `json:"videos"`
}
