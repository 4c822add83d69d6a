package domain

// Rich text node types we act on. Everything else passes through untouched.
const (
	NodeTypeDocument  = "document"
	NodeTypeText      = "text"
	NodeTypeHyperlink = "hyperlink"
)

var headingNodeTypes = map[string]struct{}{
	"heading-1": {},
	"heading-2": {},
	"heading-3": {},
	"heading-4": {},
	"heading-5": {},
	"heading-6": {},
}

// RichTextNode is one node of a rich text document tree. The shape mirrors
// the content source's serialization so a body field decodes directly.
type RichTextNode struct {
	NodeType string          `json:"nodeType"`
	Value    string          `json:"value,omitempty"`
	Content  []*RichTextNode `json:"content,omitempty"`
	Data     *RichTextData   `json:"data,omitempty"`
}

// RichTextData holds node payload: the target URI for hyperlink nodes, plus
// the Open Graph metadata attached to them when a detail view is built.
type RichTextData struct {
	URI string            `json:"uri,omitempty"`
	OGP map[string]string `json:"ogp,omitempty"`
}

// BlogIndexEntry is one table-of-contents row extracted from a document.
type BlogIndexEntry struct {
	Label string `json:"label"`
	Type  string `json:"type"`
	Index int    `json:"index"`
}

// BlogIndexFromDocument walks the document's top-level blocks and extracts a
// table of contents from heading nodes. The index numbers the filtered
// headings, not the original block positions. The two-character type code is
// formed from the first and last character of the node type, so "heading-2"
// becomes "h2".
func BlogIndexFromDocument(doc *RichTextNode) []BlogIndexEntry {
	index := make([]BlogIndexEntry, 0)
	if doc == nil {
		return index
	}
	for _, node := range doc.Content {
		if node == nil {
			continue
		}
		if _, ok := headingNodeTypes[node.NodeType]; !ok {
			continue
		}
		t := node.NodeType
		index = append(index, BlogIndexEntry{
			Label: firstTextValue(node),
			Type:  string(t[0]) + string(t[len(t)-1]),
			Index: len(index),
		})
	}
	return index
}

func firstTextValue(node *RichTextNode) string {
	if len(node.Content) == 0 || node.Content[0] == nil {
		return ""
	}
	return node.Content[0].Value
}

// Hyperlinks collects every hyperlink node in the tree, depth first. Callers
// mutate the returned nodes in place to attach Open Graph metadata.
func Hyperlinks(doc *RichTextNode) []*RichTextNode {
	var links []*RichTextNode
	var walk func(n *RichTextNode)
	walk = func(n *RichTextNode) {
		if n == nil {
			return
		}
		if n.NodeType == NodeTypeHyperlink && n.Data != nil && n.Data.URI != "" {
			links = append(links, n)
		}
		for _, child := range n.Content {
			walk(child)
		}
	}
	walk(doc)
	return links
}
