package domain

// Date layouts used in view models. Timestamps keep the content source's
// original zone offset; only the representation changes.
const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

// LgtmField names a counter column of an LGTM record.
type LgtmField string

const (
	LgtmGood LgtmField = "good"
	LgtmBad  LgtmField = "bad"
)

// Valid reports whether f names a real counter field.
func (f LgtmField) Valid() bool {
	return f == LgtmGood || f == LgtmBad
}

// Tag is a blog category badge. CategoryID is the stable external identifier;
// ID is the source's internal entry id.
type Tag struct {
	ID         string `json:"id"`
	CategoryID string `json:"category_id"`
	Label      string `json:"label"`
	Color      string `json:"color"`
}

// BlogCard is the list representation of a blog article.
type BlogCard struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	CreatedAt string  `json:"created_at"`
	Tag       *Tag    `json:"tag"`
	Thumbnail *string `json:"thumbnail"`
}

// Author is a resolved blog author.
type Author struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Avatar      *string `json:"avatar"`
}

// BlogDetail is the full article view: the card fields plus body, author,
// vote counts, and table of contents.
type BlogDetail struct {
	BlogCard
	UpdatedAt string           `json:"updated_at"`
	Body      *RichTextNode    `json:"body"`
	Author    *Author          `json:"author"`
	Good      int              `json:"good"`
	Bad       int              `json:"bad"`
	Index     []BlogIndexEntry `json:"index"`
}

// Page is 1-based pagination metadata.
type Page struct {
	Current    int `json:"current"`
	TotalCount int `json:"total_count"`
}

// BlogContents is one page of blog cards.
type BlogContents struct {
	Contents []BlogCard `json:"contents"`
	Page     Page       `json:"page"`
}

// LgtmCount is the per-article like/dislike record.
type LgtmCount struct {
	Good int `json:"good" db:"good"`
	Bad  int `json:"bad" db:"bad"`
}

// MonthlyArchive is the article count for one yyyy-MM month.
type MonthlyArchive struct {
	Month string `json:"month" db:"month"`
	Count int    `json:"count" db:"count"`
}

// TagArchive is the article count and share for one category.
type TagArchive struct {
	CategoryID string `json:"category_id" db:"category_id"`
	Count      int    `json:"count" db:"count"`
	Percent    int    `json:"percent" db:"percent"`
}

// BlogSummary is the GET /blog payload: the category badges plus the
// precomputed archive aggregates.
type BlogSummary struct {
	Tags    []Tag            `json:"tags"`
	Monthly []MonthlyArchive `json:"monthly"`
	Archive []TagArchive     `json:"archive"`
}

// Series is a blog series with its member article cards.
type Series struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Contents    []BlogCard `json:"contents"`
}

// NewsItem is one news feed row.
type NewsItem struct {
	ID    string     `json:"id"`
	Text  string     `json:"text"`
	Date  string     `json:"date"`
	Image *NewsImage `json:"image"`
}

type NewsImage struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// PortfolioWork is one portfolio item.
type PortfolioWork struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Image       *string `json:"image"`
	Link        *string `json:"link"`
	GitHub      *string `json:"github"`
	Year        int     `json:"year"`
}

// RoadmapItem is one roadmap row grouped under a state.
type RoadmapItem struct {
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
}

// Roadmap groups roadmap items by state.
type Roadmap struct {
	Schedule []RoadmapItem `json:"schedule"`
	Develop  []RoadmapItem `json:"develop"`
	Merge    []RoadmapItem `json:"merge"`
}

// BlogEvent is published to the message broker when a content webhook fires.
type BlogEvent struct {
	Action     string `json:"action"`
	EntryID    string `json:"entry_id,omitempty"`
	Month      string `json:"month,omitempty"`
	CategoryID string `json:"category_id,omitempty"`
}

// Notification is a message relayed to the chat side channel. Op names the
// originating operation when the notification reports an error.
type Notification struct {
	Name    string
	Message string
	Op      string
}

// NotifyChannel selects the chat channel a notification goes to.
type NotifyChannel string

const (
	NotifyServer     NotifyChannel = "SERVER"
	NotifyContentful NotifyChannel = "CONTENTFUL"
	NotifySentry     NotifyChannel = "SENTRY"
)
