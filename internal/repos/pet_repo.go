package repos

import (
	"familiar/internal/domain"

	"github.com/jmoiron/sqlx"
)

type PetRepo struct{ db *sqlx.DB }

func NewPetRepo(db *sqlx.DB) *PetRepo { return &PetRepo{db: db} }

const petViewQuery = `
  SELECT p.id, p.owner_id, p.species_id, p.name,
         p.energy, p.tension, p.maintenance, p.last_action_at, p.created_at,
         s.name AS species_name, s.element, s.sprite_path
  FROM pets p
  JOIN species s ON s.id = p.species_id
  WHERE p.owner_id = ?`

// ViewByOwner returns sql.ErrNoRows when the user has not adopted yet.
func (r *PetRepo) ViewByOwner(ownerID string) (*domain.PetView, error) {
	var v domain.PetView
	if err := r.db.Get(&v, petViewQuery, ownerID); err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *PetRepo) Create(p *domain.Pet) error {
	_, err := r.db.Exec(`
		INSERT INTO pets(id,owner_id,species_id,name,energy,tension,maintenance,last_action_at)
		VALUES(?,?,?,?,?,?,?,?)`,
		p.ID, p.OwnerID, p.SpeciesID, p.Name, p.Energy, p.Tension, p.Maintenance, p.LastActionAt)
	return err
}

// SaveStats persists a decay pass. last_action_at is deliberately left
// untouched so re-reads keep computing decay from the same baseline.
func (r *PetRepo) SaveStats(petID string, energy, tension, maintenance int) error {
	_, err := r.db.Exec(`
		UPDATE pets SET energy=?, tension=?, maintenance=? WHERE id=?`,
		energy, tension, maintenance, petID)
	return err
}

// Care runs fn against the owner's pet inside a single transaction and
// persists the stats and last_action_at fn returns. The transaction is the
// per-pet serialization point for racing care actions.
func (r *PetRepo) Care(ownerID string, fn func(p domain.Pet) domain.Pet) (*domain.Pet, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	var p domain.Pet
	if err := tx.Get(&p, `
		SELECT id, owner_id, species_id, name, energy, tension, maintenance, last_action_at, created_at
		FROM pets WHERE owner_id = ?`, ownerID); err != nil {
		return nil, err
	}

	updated := fn(p)
	if _, err := tx.Exec(`
		UPDATE pets SET energy=?, tension=?, maintenance=?, last_action_at=? WHERE id=?`,
		updated.Energy, updated.Tension, updated.Maintenance, updated.LastActionAt, updated.ID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &updated, nil
}
