package model

// Item is one entry of the editable list.
// ID is assigned once and never changes; Content is free text.
type Item struct {
	ID      string `json:"id" yaml:"id"`
	Content string `json:"content" yaml:"content"`
}

// DefaultSeed is the list a session starts with when no seed is supplied.
func DefaultSeed() []Item {
	return []Item{
		{ID: "item-1", Content: "Item 1"},
		{ID: "item-2", Content: "Item 2"},
		{ID: "item-3", Content: "Item 3"},
		{ID: "item-4", Content: "Item 4"},
	}
}
