package domain

import (
	"encoding/json"
	"time"
)

// Link types as they appear in a link field's sys block.
const (
	LinkTypeAsset = "Asset"
	LinkTypeEntry = "Entry"
)

// Sys carries the source-assigned identity and timestamps of an entry or asset.
type Sys struct {
	ID        string    `json:"id"`
	Type      string    `json:"type,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// Link is a typed reference to an asset or entry, resolved via Includes.
type Link struct {
	Sys LinkSys `json:"sys"`
}

type LinkSys struct {
	Type     string `json:"type"`
	LinkType string `json:"linkType"`
	ID       string `json:"id"`
}

// Entry is a single record from the content source. Fields is kept raw and
// decoded into a typed struct per content type (see fields.go).
type Entry struct {
	Sys    Sys             `json:"sys"`
	Fields json.RawMessage `json:"fields"`
}

// AssetFields describes the file behind an asset link.
type AssetFields struct {
	Title string    `json:"title"`
	File  AssetFile `json:"file"`
}

type AssetFile struct {
	URL         string `json:"url"`
	ContentType string `json:"contentType"`
}

// Asset is a binary resource descriptor referenced from entry fields.
type Asset struct {
	Sys    Sys         `json:"sys"`
	Fields AssetFields `json:"fields"`
}

// Includes is the side table shipped with a query response. Every link in the
// response's entries resolves to exactly one object here; a miss means the
// content source returned inconsistent data.
type Includes struct {
	Assets  []Asset `json:"Asset"`
	Entries []Entry `json:"Entry"`
}

// Asset resolves an asset link by id. The lookup is by id equality, never by
// position.
func (inc Includes) Asset(id string) (*Asset, error) {
	for i := range inc.Assets {
		if inc.Assets[i].Sys.ID == id {
			return &inc.Assets[i], nil
		}
	}
	return nil, Resolution("includes.Asset", id)
}

// Entry resolves an entry link by id.
func (inc Includes) Entry(id string) (*Entry, error) {
	for i := range inc.Entries {
		if inc.Entries[i].Sys.ID == id {
			return &inc.Entries[i], nil
		}
	}
	return nil, Resolution("includes.Entry", id)
}

// Collection is one page of a content source query together with its
// resolved link targets.
type Collection struct {
	Total    int      `json:"total"`
	Skip     int      `json:"skip"`
	Limit    int      `json:"limit"`
	Items    []Entry  `json:"items"`
	Includes Includes `json:"includes"`
}

// ContentQuery describes a filtered, sorted, paginated read against the
// content source. A zero Limit leaves the source's default page size in
// effect.
type ContentQuery struct {
	ContentType string
	Order       string
	Skip        int
	Limit       int

	// SysID narrows the query to a single entry id.
	SysID string
	// SearchWord is a free-text match across all fields.
	SearchWord string
	// FieldEquals filters on a nested field path, e.g.
	// "fields.category.sys.id" -> category entry id.
	FieldEquals map[string]string
	// LinksToEntry keeps only entries referencing the given entry id.
	LinksToEntry string
	// CreatedFrom/CreatedBefore bound sys.createdAt as a half-open range
	// [CreatedFrom, CreatedBefore).
	CreatedFrom   time.Time
	CreatedBefore time.Time
}
