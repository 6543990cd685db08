package model

// Gem is the category a quest strengthens.
type Gem string

const (
	GemMind Gem = "mind"
	GemBody Gem = "body"
	GemSoul Gem = "soul"

	// GemNone stands for a category that could not be read from a request.
	// No quest carries it.
	GemNone Gem = ""
)

type Quest struct {
	ID          int
	Name        string
	Description string
	Category    Gem
}

// Known reports whether g is one of the catalog categories.
func (g Gem) Known() bool {
	switch g {
	case GemMind, GemBody, GemSoul:
		return true
	}
	return false
}
