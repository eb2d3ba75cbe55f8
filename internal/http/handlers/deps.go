package handlers

import (
	"familiar/internal/config"
	"familiar/internal/repos"
	"familiar/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	HomeHandler *HomeHandler
	PetHandler  *PetHandler
	ShopHandler *ShopHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	petRepo := repos.NewPetRepo(db)
	catalogRepo := repos.NewCatalogRepo(db)
	invRepo := repos.NewInventoryRepo(db)

	petSvc := services.NewPetService(petRepo, catalogRepo)
	shopSvc := services.NewShopService(catalogRepo, invRepo)

	return &Deps{
		HomeHandler: &HomeHandler{Pets: petSvc, Shop: shopSvc},
		PetHandler:  &PetHandler{Pets: petSvc},
		ShopHandler: &ShopHandler{Shop: shopSvc},
	}
}
