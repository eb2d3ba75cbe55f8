package repos

import (
	"familiar/internal/domain"

	"github.com/jmoiron/sqlx"
)

type CatalogRepo struct{ db *sqlx.DB }

func NewCatalogRepo(db *sqlx.DB) *CatalogRepo { return &CatalogRepo{db: db} }

func (r *CatalogRepo) ListSpecies() ([]domain.Species, error) {
	var out []domain.Species
	err := r.db.Select(&out, `SELECT id,name,element,sprite_path FROM species ORDER BY name`)
	return out, err
}

func (r *CatalogRepo) SpeciesExists(id string) (bool, error) {
	var n int
	if err := r.db.Get(&n, `SELECT COUNT(*) FROM species WHERE id=?`, id); err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListItems returns the shop catalog, cheapest first.
func (r *CatalogRepo) ListItems() ([]domain.Item, error) {
	var out []domain.Item
	err := r.db.Select(&out, `SELECT id,name,item_type,price,description,sprite_path FROM items ORDER BY price`)
	return out, err
}

// ItemByID returns sql.ErrNoRows when the item is not in the catalog.
func (r *CatalogRepo) ItemByID(id string) (*domain.Item, error) {
	var it domain.Item
	err := r.db.Get(&it, `SELECT id,name,item_type,price,description,sprite_path FROM items WHERE id=?`, id)
	if err != nil {
		return nil, err
	}
	return &it, nil
}
