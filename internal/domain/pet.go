package domain

// Care actions a player can perform on their familiar.
const (
	ActionFeed     = "feed"
	ActionMaintain = "maintain"
	ActionPlay     = "play"
)

// Pet stats live in [0,100]. LastActionAt is unix seconds of the most recent
// care action (or adoption); decay is always computed against it.
type Pet struct {
	ID           string `db:"id" json:"id"`
	OwnerID      string `db:"owner_id" json:"ownerId"`
	SpeciesID    string `db:"species_id" json:"speciesId"`
	Name         string `db:"name" json:"name"`
	Energy       int    `db:"energy" json:"energy"`
	Tension      int    `db:"tension" json:"tension"`
	Maintenance  int    `db:"maintenance" json:"maintenance"`
	LastActionAt int64  `db:"last_action_at" json:"lastActionAt"`
	CreatedAt    string `db:"created_at" json:"createdAt"`
}

// PetView joins species display fields for the client.
type PetView struct {
	Pet
	SpeciesName string `db:"species_name" json:"speciesName"`
	Element     string `db:"element" json:"element"`
	SpritePath  string `db:"sprite_path" json:"spritePath"`
}

type Species struct {
	ID         string `db:"id" json:"id"`
	Name       string `db:"name" json:"name"`
	Element    string `db:"element" json:"element"`
	SpritePath string `db:"sprite_path" json:"spritePath"`
}
