package domain

import (
	"encoding/json"
	"fmt"
)

// Content type identifiers used in queries.
const (
	ContentTypeBlog         = "blog"
	ContentTypeBlogCategory = "blogCategory"
	ContentTypeBlogSeries   = "blogSeries"
	ContentTypeNews         = "news"
	ContentTypePortfolio    = "portfolio"
	ContentTypeRoadmap      = "roadmap"
)

// Each content type gets its own field struct and parser instead of a bag of
// untyped values. Parsers fail fast on payloads missing required fields so a
// malformed entry is reported at the boundary, not as a nil dereference later.

// BlogFields are the typed fields of a blog entry. Category and Thumbnail are
// required; Author and Series are optional references.
type BlogFields struct {
	Title     string        `json:"title"`
	Category  *Link         `json:"category"`
	Thumbnail *Link         `json:"thumbnail"`
	Author    *Link         `json:"author"`
	Series    *Link         `json:"series"`
	Body      *RichTextNode `json:"body"`
}

func ParseBlogFields(e Entry) (*BlogFields, error) {
	var f BlogFields
	if err := json.Unmarshal(e.Fields, &f); err != nil {
		return nil, fmt.Errorf("parse blog fields of %s: %w", e.Sys.ID, err)
	}
	if f.Title == "" {
		return nil, fmt.Errorf("blog entry %s has no title", e.Sys.ID)
	}
	return &f, nil
}

// CategoryFields describe a blog category. CategoryID is the stable external
// identifier downstream callers key on; the entry's sys.id changes when the
// category is recreated.
type CategoryFields struct {
	CategoryName string `json:"categoryName"`
	CategoryID   string `json:"categoryId"`
	Color        string `json:"color"`
	Priority     int    `json:"priority"`
}

func ParseCategoryFields(e Entry) (*CategoryFields, error) {
	var f CategoryFields
	if err := json.Unmarshal(e.Fields, &f); err != nil {
		return nil, fmt.Errorf("parse category fields of %s: %w", e.Sys.ID, err)
	}
	if f.CategoryName == "" || f.CategoryID == "" {
		return nil, fmt.Errorf("category entry %s missing categoryName or categoryId", e.Sys.ID)
	}
	return &f, nil
}

type AuthorFields struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Avatar      *Link  `json:"avatar"`
}

func ParseAuthorFields(e Entry) (*AuthorFields, error) {
	var f AuthorFields
	if err := json.Unmarshal(e.Fields, &f); err != nil {
		return nil, fmt.Errorf("parse author fields of %s: %w", e.Sys.ID, err)
	}
	if f.Name == "" {
		return nil, fmt.Errorf("author entry %s has no name", e.Sys.ID)
	}
	return &f, nil
}

type NewsFields struct {
	Text  string `json:"text"`
	Date  string `json:"date"`
	Image *Link  `json:"image"`
}

func ParseNewsFields(e Entry) (*NewsFields, error) {
	var f NewsFields
	if err := json.Unmarshal(e.Fields, &f); err != nil {
		return nil, fmt.Errorf("parse news fields of %s: %w", e.Sys.ID, err)
	}
	if f.Text == "" {
		return nil, fmt.Errorf("news entry %s has no text", e.Sys.ID)
	}
	return &f, nil
}

type PortfolioFields struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
	GitHub      string `json:"github"`
	CreatedYear int    `json:"created_year"`
	Image       *Link  `json:"image"`
}

func ParsePortfolioFields(e Entry) (*PortfolioFields, error) {
	var f PortfolioFields
	if err := json.Unmarshal(e.Fields, &f); err != nil {
		return nil, fmt.Errorf("parse portfolio fields of %s: %w", e.Sys.ID, err)
	}
	if f.Title == "" {
		return nil, fmt.Errorf("portfolio entry %s has no title", e.Sys.ID)
	}
	return &f, nil
}

// Roadmap states. Entries with any other state are dropped.
const (
	RoadmapStateSchedule = "schedule"
	RoadmapStateDevelop  = "develop"
	RoadmapStateMerge    = "merge"
)

type RoadmapFields struct {
	Content   string   `json:"content"`
	State     []string `json:"state"`
	Completed bool     `json:"completed"`
}

func ParseRoadmapFields(e Entry) (*RoadmapFields, error) {
	var f RoadmapFields
	if err := json.Unmarshal(e.Fields, &f); err != nil {
		return nil, fmt.Errorf("parse roadmap fields of %s: %w", e.Sys.ID, err)
	}
	if f.Content == "" {
		return nil, fmt.Errorf("roadmap entry %s has no content", e.Sys.ID)
	}
	return &f, nil
}

type SeriesFields struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func ParseSeriesFields(e Entry) (*SeriesFields, error) {
	var f SeriesFields
	if err := json.Unmarshal(e.Fields, &f); err != nil {
		return nil, fmt.Errorf("parse series fields of %s: %w", e.Sys.ID, err)
	}
	if f.Title == "" {
		return nil, fmt.Errorf("series entry %s has no title", e.Sys.ID)
	}
	return &f, nil
}
