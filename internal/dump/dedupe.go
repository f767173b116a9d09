package dump

import (
	"fmt"

	"intelliwheels/internal/models"
)

// Deduper suppresses repeated catalog records: the first record seen for a
// (make, model, year) key wins and every later one is dropped.
type Deduper struct {
	seen map[string]struct{}
}

func NewDeduper() *Deduper {
	return &Deduper{seen: make(map[string]struct{})}
}

// Admit reports whether the record's key has not been seen before, recording
// it as seen.
func (d *Deduper) Admit(car models.Car) bool {
	key := fmt.Sprintf("%s|%s|%d", car.Make, car.Model, car.Year)
	if _, ok := d.seen[key]; ok {
		return false
	}
	d.seen[key] = struct{}{}
	return true
}
