package repositories

import "github.com/srmorales/npi-sourcing/pkg/domain/entities"

// SupplierRepository provides access to registered suppliers
type SupplierRepository interface {
	// AddSupplier registers a supplier. Names are unique lookup keys;
	// a collision returns ErrDuplicateName.
	AddSupplier(supplier *entities.Supplier) error
	GetSupplier(id string) (*entities.Supplier, error)
	// FindSupplier scans suppliers by attribute and returns the first
	// match in insertion order. Supported fields: id, name, profile levels.
	FindSupplier(field, value string) (*entities.Supplier, error)
	GetAllSuppliers() ([]*entities.Supplier, error)
}
