package model

import "github.com/google/uuid"

// assignID fills an empty primary key. Keys are generated in Go rather than by
// uuid_generate_v4() so the same models work on Postgres and SQLite.
func assignID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}
