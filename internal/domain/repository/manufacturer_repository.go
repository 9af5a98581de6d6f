package repository

import "hangar/internal/domain/entity"

// ManufacturerFilter narrows a manufacturer listing.
type ManufacturerFilter struct {
	Search  string // Case-insensitive substring match on name.
	Country string
}

// ManufacturerRepository is the manufacturer instantiation of the catalog contract.
type ManufacturerRepository interface {
	CatalogRepository[entity.Manufacturer, ManufacturerFilter]
}
