package world

import (
	"errors"
	"fmt"
)

// Item is a draggable object the player has to stow.
type Item struct {
	ID    string `koanf:"id"`
	Emoji string `koanf:"emoji"`
	Label string `koanf:"label"`
}

// ErrBadCatalog is returned when an item catalog cannot be used for a round.
var ErrBadCatalog = errors.New("bad item catalog")

// DefaultItems is the stock catalog: wrench, helmet, manual, bottle.
func DefaultItems() []Item {
	return []Item{
		{ID: "itm-0", Emoji: "🔧", Label: "Chave"},
		{ID: "itm-1", Emoji: "🪖", Label: "Capacete"},
		{ID: "itm-2", Emoji: "📘", Label: "Manual"},
		{ID: "itm-3", Emoji: "🧴", Label: "Garrafa"},
	}
}

// ValidateItems checks that a catalog is non-empty and that ids are unique.
func ValidateItems(items []Item) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: no items", ErrBadCatalog)
	}
	seen := make(map[string]bool, len(items))
	for i, it := range items {
		if it.ID == "" {
			return fmt.Errorf("%w: item %d has no id", ErrBadCatalog, i)
		}
		if seen[it.ID] {
			return fmt.Errorf("%w: duplicate id %q", ErrBadCatalog, it.ID)
		}
		seen[it.ID] = true
	}
	return nil
}

// FindItem returns the catalog entry with the given id.
func FindItem(items []Item, id string) (Item, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}
