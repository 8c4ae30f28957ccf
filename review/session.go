// Package review runs flashcard review sessions: a single card that can be
// flipped, and a repetition loop over a deck that retires remembered cards
// and recycles the ones marked for repeat until the deck is exhausted.
package review

import (
	"fmt"
	"math"
	"strings"

	"github.com/andrewpaige1/flashlearn-api/models"
)

// Mode is the state of a session.
type Mode int

const (
	Normal     Mode = iota // Single card shown, flip only.
	Repetitive             // Advancing through the deck.
)

func (m Mode) String() string {
	switch m {
	case Normal:
		return "normal"
	case Repetitive:
		return "repetitive"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "normal":
		*m = Normal
	case "repetitive":
		*m = Repetitive
	default:
		return fmt.Errorf("review: unknown mode %q", text)
	}
	return nil
}

// Faces shown when a card side is blank.
const (
	DefaultFront = "No front content"
	DefaultBack  = "No back content"
)

// Session is the state of one review. The deck is fixed for the lifetime of
// the session. A Session is not safe for concurrent use.
type Session struct {
	deck     []models.Card
	fallback models.Card

	mode       Mode
	index      int
	flipped    bool
	recycling  bool
	repeat     []int
	remembered map[int]struct{}
	progress   int

	// OnComplete, if set, is called each time the deck is exhausted.
	OnComplete func()
}

// NewSession creates a session in Normal mode. fallback is the card shown
// when there is no deck, and supplies the front face for deck cards whose
// front is blank.
func NewSession(deck []models.Card, fallback models.Card) *Session {
	if strings.TrimSpace(fallback.Front) == "" {
		fallback.Front = DefaultFront
	}
	if strings.TrimSpace(fallback.Back) == "" {
		fallback.Back = DefaultBack
	}
	return &Session{
		deck:       append([]models.Card(nil), deck...),
		fallback:   fallback,
		remembered: make(map[int]struct{}),
	}
}

func (s *Session) hasDeck() bool { return len(s.deck) > 0 }

func (s *Session) Mode() Mode      { return s.mode }
func (s *Session) Index() int      { return s.index }
func (s *Session) Flipped() bool   { return s.flipped }
func (s *Session) DeckSize() int   { return len(s.deck) }
func (s *Session) Remembered() int { return len(s.remembered) }

// RepeatQueue returns a copy of the indices waiting for another pass.
func (s *Session) RepeatQueue() []int {
	return append([]int(nil), s.repeat...)
}

// Flip toggles the visible face.
func (s *Session) Flip() {
	s.flipped = !s.flipped
}

// Start enters Repetitive mode from the first card. It is a no-op without a
// deck.
func (s *Session) Start() {
	if !s.hasDeck() {
		return
	}
	s.reset()
	s.progress = 0
	s.mode = Repetitive
}

// MarkRemembered retires the current card and advances. It reports whether
// the deck was completed.
func (s *Session) MarkRemembered() bool {
	if !s.hasDeck() || s.mode != Repetitive {
		return false
	}
	s.remembered[s.index] = struct{}{}
	s.progress = int(math.Round(float64(len(s.remembered)) / float64(len(s.deck)) * 100))
	return s.advance()
}

// MarkRepeat queues the current card for another pass and advances. It
// reports whether the deck was completed.
func (s *Session) MarkRepeat() bool {
	if !s.hasDeck() || s.mode != Repetitive {
		return false
	}
	s.repeat = append(s.repeat, s.index)
	return s.advance()
}

// advance walks the deck once in order, then serves the repeat queue in the
// order cards were marked, skipping any that have since been remembered.
func (s *Session) advance() bool {
	if next := s.index + 1; !s.recycling && next < len(s.deck) {
		s.index = next
		s.flipped = false
		return false
	}

	s.recycling = true
	pending := make([]int, 0, len(s.repeat))
	for _, idx := range s.repeat {
		if _, ok := s.remembered[idx]; !ok {
			pending = append(pending, idx)
		}
	}

	if len(pending) == 0 {
		s.reset()
		if s.OnComplete != nil {
			s.OnComplete()
		}
		return true
	}

	s.index = pending[0]
	s.repeat = pending[1:]
	s.flipped = false
	return false
}

func (s *Session) reset() {
	s.mode = Normal
	s.index = 0
	s.flipped = false
	s.recycling = false
	s.repeat = nil
	s.remembered = make(map[int]struct{})
}

// Progress is the share of the deck marked remembered, as a rounded
// percentage. It is updated on every MarkRemembered and keeps its last value
// after the deck completes, until the next Start.
func (s *Session) Progress() int {
	return s.progress
}

// Current returns the card on display with blank faces resolved.
func (s *Session) Current() models.Card {
	if !s.hasDeck() || s.index >= len(s.deck) {
		return s.fallback
	}
	card := s.deck[s.index]
	if strings.TrimSpace(card.Front) == "" {
		card.Front = s.fallback.Front
	}
	if strings.TrimSpace(card.Back) == "" {
		card.Back = DefaultBack
	}
	return card
}

// Face returns the text currently visible.
func (s *Session) Face() string {
	card := s.Current()
	if s.flipped {
		return card.Back
	}
	return card.Front
}
