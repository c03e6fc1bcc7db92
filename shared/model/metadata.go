package model

import "time"

type Metadata struct {
	CreatedAt  time.Time `db:"created_at"`
	ModifiedAt time.Time `db:"modified_at"`
}

// Touch stamps both timestamps for a new row.
func (m *Metadata) Touch(now time.Time) {
	m.CreatedAt = now
	m.ModifiedAt = now
}
