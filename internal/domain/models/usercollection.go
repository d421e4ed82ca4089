package models

import "time"

// UserCollection is a named grouping of mod ids owned by a user.
//
// The schema exists for forward compatibility with the browser frontend; no
// endpoint reads or writes it yet, so the only runtime touch point is index
// setup. ModIDs is ordered and duplicates are not prevented.
type UserCollection struct {
	ID        string    `bson:"_id" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Name      string    `bson:"name" json:"name"`
	ModIDs    []string  `bson:"mod_ids" json:"mod_ids"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
