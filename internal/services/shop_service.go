package services

import (
	"database/sql"

	"familiar/internal/domain"
	"familiar/internal/repos"
)

type ShopService struct {
	Catalog *repos.CatalogRepo
	Inv     *repos.InventoryRepo
}

func NewShopService(catalog *repos.CatalogRepo, inv *repos.InventoryRepo) *ShopService {
	return &ShopService{Catalog: catalog, Inv: inv}
}

func (s *ShopService) Items() ([]domain.Item, error) {
	return s.Catalog.ListItems()
}

// Purchase exchanges gears for one unit of the item. Debit and inventory
// credit commit or roll back together; returns the post-purchase balance.
func (s *ShopService) Purchase(userID, itemID string) (int, error) {
	item, err := s.Catalog.ItemByID(itemID)
	if err == sql.ErrNoRows {
		return 0, domain.ErrItemNotFound
	}
	if err != nil {
		return 0, err
	}
	return s.Inv.Purchase(userID, item.ID, item.Price)
}

func (s *ShopService) Inventory(userID string) ([]domain.InventoryRow, error) {
	return s.Inv.ListByOwner(userID)
}

// Equip sets the equipped flag on an entry the user owns, displacing any
// other equipped entry of the same item type.
func (s *ShopService) Equip(userID, inventoryID string, equipped bool) error {
	return s.Inv.SetEquipped(userID, inventoryID, equipped)
}
