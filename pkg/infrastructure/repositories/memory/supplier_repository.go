package memory

import (
	"fmt"
	"strconv"

	"github.com/srmorales/npi-sourcing/pkg/domain/entities"
	"github.com/srmorales/npi-sourcing/pkg/domain/repositories"
)

// SupplierRepository provides in-memory supplier storage
type SupplierRepository struct {
	suppliers []*entities.Supplier
	byID      map[string]int
	byName    map[string]int
}

// NewSupplierRepository creates a new in-memory supplier repository
func NewSupplierRepository() *SupplierRepository {
	return &SupplierRepository{
		byID:   make(map[string]int),
		byName: make(map[string]int),
	}
}

// Verify interface compliance
var _ repositories.SupplierRepository = (*SupplierRepository)(nil)

// AddSupplier registers a supplier. Names and ids must be unique.
func (r *SupplierRepository) AddSupplier(supplier *entities.Supplier) error {
	if _, exists := r.byName[supplier.Name]; exists {
		return fmt.Errorf("supplier %s: %w", supplier.Name, repositories.ErrDuplicateName)
	}
	if _, exists := r.byID[supplier.ID]; exists {
		return fmt.Errorf("supplier id %s: %w", supplier.ID, repositories.ErrDuplicateName)
	}
	r.byID[supplier.ID] = len(r.suppliers)
	r.byName[supplier.Name] = len(r.suppliers)
	r.suppliers = append(r.suppliers, supplier)
	return nil
}

// GetSupplier returns the supplier registered under an id
func (r *SupplierRepository) GetSupplier(id string) (*entities.Supplier, error) {
	index, exists := r.byID[id]
	if !exists {
		return nil, fmt.Errorf("supplier %s: %w", id, repositories.ErrNotFound)
	}
	return r.suppliers[index], nil
}

// FindSupplier scans suppliers by attribute and returns the first match in
// insertion order. Multiple suppliers may share a field value; the contract
// is deliberately first-match.
func (r *SupplierRepository) FindSupplier(field, value string) (*entities.Supplier, error) {
	for _, s := range r.suppliers {
		if supplierFieldMatches(s, field, value) {
			return s, nil
		}
	}
	return nil, fmt.Errorf("supplier with %s=%s: %w", field, value, repositories.ErrNotFound)
}

// GetAllSuppliers returns all suppliers in insertion order
func (r *SupplierRepository) GetAllSuppliers() ([]*entities.Supplier, error) {
	out := make([]*entities.Supplier, len(r.suppliers))
	copy(out, r.suppliers)
	return out, nil
}

func supplierFieldMatches(s *entities.Supplier, field, value string) bool {
	switch field {
	case "id":
		return s.ID == value
	case "name":
		return s.Name == value
	case "price":
		return s.Profile.Price.String() == value
	case "delivery":
		return s.Profile.Delivery.String() == value
	case "punctuality":
		return s.Profile.Punctuality.String() == value
	case "quotation":
		return s.Profile.Quotation.String() == value
	case "new":
		return strconv.FormatBool(s.NewSupplier) == value
	default:
		return false
	}
}
