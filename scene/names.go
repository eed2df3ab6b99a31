package scene

import (
	"context"
	"fmt"

	"github.com/bimkit/contact"
)

// NameSource resolves human-readable element names, typically from the
// model's property sets. Implementations are best-effort: lookups are
// display-only and a failure never affects the analysis.
type NameSource interface {
	ElementName(ctx context.Context, id contact.ElementID) (string, error)
}

// StaticNames is a NameSource over a fixed table.
type StaticNames map[contact.ElementID]string

func (s StaticNames) ElementName(_ context.Context, id contact.ElementID) (string, error) {
	if n, ok := s[id]; ok && n != "" {
		return n, nil
	}
	return "", fmt.Errorf("scene: no name for element %s", id)
}

// ElementName resolves a display name through src, falling back to
// "Element <id>" when src is nil, fails or returns an empty name.
func ElementName(ctx context.Context, src NameSource, id contact.ElementID) string {
	if src != nil {
		if n, err := src.ElementName(ctx, id); err == nil && n != "" {
			return n
		}
	}
	return fmt.Sprintf("Element %s", id)
}

// ResolveNames fills in the Name of every element.
func ResolveNames(ctx context.Context, elems []*contact.Element, src NameSource) {
	for _, e := range elems {
		e.Name = ElementName(ctx, src, e.ID)
	}
}
