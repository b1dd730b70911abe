package entities

// PageInfo is a point-in-time view of the page, used for failure diagnostics
type PageInfo struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Preview string `json:"preview,omitempty"` // start of the document
}
