package models

// Card is the front/back pair reviewed in a session and returned by the
// generation service.
type Card struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// StoredFlashcard represents an individual flashcard kept in the user's
// flashcard collection.
type StoredFlashcard struct {
	ID      string `json:"id"`
	Front   string `json:"front"`
	Back    string `json:"back"`
	Created string `json:"created,omitempty"`
	Pinned  bool   `json:"pinned,omitempty"`
}

// Card returns the reviewable face pair of the flashcard.
func (f StoredFlashcard) Card() Card {
	return Card{Front: f.Front, Back: f.Back}
}
