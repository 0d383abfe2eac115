package domain

// Link is a titled URL kept in the enlaces table
type Link struct {
	ID    int64  `json:"id"`
	Title string `json:"titulo"`
	URL   string `json:"url"`
}
