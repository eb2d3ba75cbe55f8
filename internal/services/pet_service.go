package services

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"familiar/internal/domain"
	"familiar/internal/repos"
)

type PetService struct {
	Pets    *repos.PetRepo
	Catalog *repos.CatalogRepo
	Now     func() time.Time // test hook; defaults to time.Now
}

func NewPetService(pets *repos.PetRepo, catalog *repos.CatalogRepo) *PetService {
	return &PetService{Pets: pets, Catalog: catalog, Now: time.Now}
}

func (s *PetService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Get returns the user's pet with decay reconciled. A nonzero decay is
// persisted; the action timestamp is not advanced by a read.
func (s *PetService) Get(ownerID string) (*domain.PetView, error) {
	v, err := s.Pets.ViewByOwner(ownerID)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNoPet
	}
	if err != nil {
		return nil, err
	}

	stats := Stats{Energy: v.Energy, Tension: v.Tension, Maintenance: v.Maintenance}
	stats, amount := Decayed(stats, time.Unix(v.LastActionAt, 0), s.now())
	if amount > 0 {
		if err := s.Pets.SaveStats(v.ID, stats.Energy, stats.Tension, stats.Maintenance); err != nil {
			return nil, err
		}
		v.Energy, v.Tension, v.Maintenance = stats.Energy, stats.Tension, stats.Maintenance
	}
	return v, nil
}

func (s *PetService) Adopt(ownerID, name, speciesID string) (*domain.PetView, error) {
	if _, err := s.Pets.ViewByOwner(ownerID); err == nil {
		return nil, domain.ErrAlreadyHasPet
	} else if err != sql.ErrNoRows {
		return nil, err
	}

	ok, err := s.Catalog.SpeciesExists(speciesID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidSpecies
	}

	p := &domain.Pet{
		ID:           uuid.NewString(),
		OwnerID:      ownerID,
		SpeciesID:    speciesID,
		Name:         name,
		Energy:       StatMax,
		Tension:      StatMax,
		Maintenance:  StatMax,
		LastActionAt: s.now().Unix(),
	}
	if err := s.Pets.Create(p); err != nil {
		return nil, err
	}
	return s.Pets.ViewByOwner(ownerID)
}

// CareResult reports which stat a care action raised and its new value.
type CareResult struct {
	Stat     string `json:"stat"`
	Value    int    `json:"value"`
	Increase int    `json:"statIncrease"`
}

// Care applies accrued decay against the previous action timestamp, then
// boosts the action's target stat and advances the timestamp. Decay first,
// boost second, timestamp last: the order is what keeps decay anchored to the
// action that preceded this one.
func (s *PetService) Care(ownerID, action string) (*CareResult, error) {
	now := s.now()
	var res CareResult

	_, err := s.Pets.Care(ownerID, func(p domain.Pet) domain.Pet {
		stats := Stats{Energy: p.Energy, Tension: p.Tension, Maintenance: p.Maintenance}
		stats, _ = Decayed(stats, time.Unix(p.LastActionAt, 0), now)

		switch action {
		case domain.ActionFeed:
			stats.Energy = clampStat(stats.Energy + CareBoost)
			res = CareResult{Stat: "energy", Value: stats.Energy, Increase: CareBoost}
		case domain.ActionMaintain:
			stats.Maintenance = clampStat(stats.Maintenance + CareBoost)
			res = CareResult{Stat: "maintenance", Value: stats.Maintenance, Increase: CareBoost}
		case domain.ActionPlay:
			stats.Tension = clampStat(stats.Tension + CareBoost)
			res = CareResult{Stat: "tension", Value: stats.Tension, Increase: CareBoost}
		}

		p.Energy, p.Tension, p.Maintenance = stats.Energy, stats.Tension, stats.Maintenance
		p.LastActionAt = now.Unix()
		return p
	})
	if err == sql.ErrNoRows {
		return nil, domain.ErrNoPet
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *PetService) ListSpecies() ([]domain.Species, error) {
	return s.Catalog.ListSpecies()
}
