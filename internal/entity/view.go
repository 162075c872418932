package entity

// Breadcrumb is one navigable prefix of the current path. The last crumb of a
// trail describes the current location and is rendered as plain text.
type Breadcrumb struct {
	Label   string
	Target  string
	Current bool
}

// ListingEntry is one row of a directory view.
type ListingEntry struct {
	Name   string
	Type   NodeType
	Target string
}

func (e ListingEntry) IsDir() bool {
	return e.Type == NodeDirectory
}

// Listing is a display-ready directory view: children already sorted,
// breadcrumb trail already derived.
type Listing struct {
	Path        string
	Entries     []ListingEntry
	Breadcrumbs []Breadcrumb
}

// Document is a rendered markdown file.
type Document struct {
	Path        string
	Title       string
	HTML        string
	Hash        string // content hash of the rendered markup, used as ETag
	Breadcrumbs []Breadcrumb
}
