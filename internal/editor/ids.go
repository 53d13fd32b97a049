package editor

import (
	"fmt"

	"github.com/google/uuid"
)

// IDSource hands out candidate IDs. The Editor skips candidates it has already seen.
type IDSource interface {
	NextID() string
}

// Sequential yields item-1, item-2, ... matching the default seed's IDs.
type Sequential struct {
	n int
}

func (s *Sequential) NextID() string {
	s.n++
	return fmt.Sprintf("item-%d", s.n)
}

// UUIDv7 yields time-ordered UUIDs.
type UUIDv7 struct{}

func (UUIDv7) NextID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// NewIDSource maps a config name to a source.
func NewIDSource(name string) (IDSource, error) {
	switch name {
	case "", "sequential", "seq":
		return &Sequential{}, nil
	case "uuid", "uuidv7":
		return UUIDv7{}, nil
	}
	return nil, fmt.Errorf("unknown id scheme %q (want sequential|uuid)", name)
}
