package entity

import "time"

// User opérateur de l'entrepôt (table utilisateurs). Email unique.
type User struct {
	ID        int64
	Name      string
	Email     string
	Role      string
	Active    bool
	CreatedAt time.Time
}
