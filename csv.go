package contact

import (
	"encoding/csv"
	"io"
	"strconv"
)

// NameFunc resolves a display name for an element. A nil NameFunc or an
// empty result falls back to "Element <id>".
type NameFunc func(id ElementID) string

var csvHeader = []string{
	"type",
	"element1Id", "element1Name",
	"element2Id", "element2Name",
	"measurementType", "measurementValue", "unit",
}

// WriteCSV serializes a connection set in the export schema downstream
// tooling relies on: one row per connection with the element pair, the
// contact type and its measurement. Units are m² for areas, m for
// lengths and N/A for point contacts.
func WriteCSV(w io.Writer, set *ConnectionSet, name NameFunc) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, c := range set.All() {
		mt, mv, unit := "N/A", "N/A", "N/A"
		switch c.Type {
		case TypeLine:
			mt = "length"
			mv = strconv.FormatFloat(c.Measure.Length, 'f', 6, 64)
			unit = "m"
		case TypeSurface:
			mt = "area"
			mv = strconv.FormatFloat(c.Measure.Area, 'f', 6, 64)
			unit = "m²"
		}
		row := []string{
			c.Type.String(),
			c.Key.A.String(), displayName(c.Key.A, name),
			c.Key.B.String(), displayName(c.Key.B, name),
			mt, mv, unit,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func displayName(id ElementID, name NameFunc) string {
	if name != nil {
		if n := name(id); n != "" {
			return n
		}
	}
	return "Element " + id.String()
}
