package domain

// Item types; at most one entry per type may be equipped per owner.
const (
	ItemCosmetic = "cosmetic"
	ItemFood     = "food"
	ItemToy      = "toy"
	ItemTool     = "tool"
)

type Item struct {
	ID          string `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Type        string `db:"item_type" json:"type"`
	Price       int    `db:"price" json:"price"`
	Description string `db:"description" json:"description"`
	SpritePath  string `db:"sprite_path" json:"spritePath"`
}

type InventoryEntry struct {
	ID       string `db:"id" json:"id"`
	OwnerID  string `db:"owner_id" json:"-"`
	ItemID   string `db:"item_id" json:"itemId"`
	Quantity int    `db:"quantity" json:"quantity"`
	Equipped bool   `db:"equipped" json:"equipped"`
}

// InventoryRow is an entry joined with its catalog item for listing.
type InventoryRow struct {
	ID         string `db:"id" json:"id"`
	ItemID     string `db:"item_id" json:"itemId"`
	Name       string `db:"name" json:"name"`
	Type       string `db:"item_type" json:"type"`
	Quantity   int    `db:"quantity" json:"quantity"`
	Equipped   bool   `db:"equipped" json:"equipped"`
	SpritePath string `db:"sprite_path" json:"spritePath"`
}
