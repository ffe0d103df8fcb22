package domain

import "errors"

// Erreurs métier (sans dépendances externes). Les couches supérieures les
// enrichissent avec fmt.Errorf("%w: ...") pour nommer le champ fautif.
var (
	ErrNotFound          = errors.New("ressource introuvable")
	ErrInvalidInput      = errors.New("entrée invalide")
	ErrInvalidQuantity   = errors.New("quantité invalide")
	ErrInsufficientStock = errors.New("stock insuffisant")
	ErrLocationMismatch  = errors.New("référence absente de l'emplacement demandé")
	ErrInvalidTransfer   = errors.New("emplacements source et destination identiques")
	ErrMissingLocation   = errors.New("emplacement requis")
	ErrDuplicate         = errors.New("ressource dupliquée")
)
