package repos

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"familiar/internal/domain"
)

type InventoryRepo struct{ db *sqlx.DB }

func NewInventoryRepo(db *sqlx.DB) *InventoryRepo { return &InventoryRepo{db: db} }

// ListByOwner returns the user's inventory joined with the item catalog.
func (r *InventoryRepo) ListByOwner(ownerID string) ([]domain.InventoryRow, error) {
	rows := []domain.InventoryRow{}
	err := r.db.Select(&rows, `
		SELECT inv.id, inv.item_id, i.name, i.item_type, inv.quantity, inv.equipped, i.sprite_path
		FROM inventory inv
		JOIN items i ON i.id = inv.item_id
		WHERE inv.owner_id = ?
		ORDER BY i.item_type, i.name`, ownerID)
	return rows, err
}

// Purchase debits the buyer and credits the inventory entry as one
// transaction. The debit is guarded by gears >= price; zero rows affected
// means the balance was too low (possibly raced by another purchase) and the
// whole unit rolls back with ErrInsufficientGears.
func (r *InventoryRepo) Purchase(ownerID, itemID string, price int) (int, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(`
		UPDATE users SET gears = gears - ?
		WHERE id = ? AND gears >= ?`, price, ownerID, price)
	if err != nil {
		return 0, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return 0, domain.ErrInsufficientGears
	}

	if _, err := tx.Exec(`
		INSERT INTO inventory(id,owner_id,item_id,quantity,equipped)
		VALUES(?,?,?,1,0)
		ON CONFLICT(owner_id,item_id) DO UPDATE SET quantity = quantity + 1`,
		uuid.NewString(), ownerID, itemID); err != nil {
		return 0, err
	}

	var remaining int
	if err := tx.Get(&remaining, `SELECT gears FROM users WHERE id=?`, ownerID); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return remaining, nil
}

// SetEquipped flips the equipped flag on an entry the user owns. Equipping
// unequips every other entry of the same item type in the same transaction so
// no durable state ever shows two equipped entries per type.
func (r *InventoryRepo) SetEquipped(ownerID, inventoryID string, equipped bool) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var itemType string
	err = tx.Get(&itemType, `
		SELECT i.item_type
		FROM inventory inv
		JOIN items i ON i.id = inv.item_id
		WHERE inv.id = ? AND inv.owner_id = ?`, inventoryID, ownerID)
	if err == sql.ErrNoRows {
		return domain.ErrEntryNotFound
	}
	if err != nil {
		return err
	}

	if equipped {
		if _, err := tx.Exec(`
			UPDATE inventory SET equipped = 0
			WHERE owner_id = ? AND id <> ?
			  AND item_id IN (SELECT id FROM items WHERE item_type = ?)`,
			ownerID, inventoryID, itemType); err != nil {
			return err
		}
	}

	flag := 0
	if equipped {
		flag = 1
	}
	if _, err := tx.Exec(`UPDATE inventory SET equipped = ? WHERE id = ?`, flag, inventoryID); err != nil {
		return err
	}

	return tx.Commit()
}
