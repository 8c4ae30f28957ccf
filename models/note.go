package models

// Note is a user-authored study note. Content is either plain text or a
// serialized rich-text document.
type Note struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Created string `json:"created,omitempty"`
	Pinned  bool   `json:"pinned,omitempty"`
}
