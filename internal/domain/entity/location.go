package entity

// Statuts d'emplacement.
const (
	LocationStatusAvailable = "Disponible"
	LocationStatusFull      = "Complet"
)

// Location représente un emplacement de stockage (table emplacements).
// MaxCapacity nil = capacité illimitée.
type Location struct {
	ID           int64
	Code         string
	Zone         string
	MaxCapacity  *int64
	UsedCapacity int64
	Status       string
}
