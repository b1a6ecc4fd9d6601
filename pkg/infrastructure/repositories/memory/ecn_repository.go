package memory

import (
	"fmt"

	"github.com/srmorales/npi-sourcing/pkg/domain/entities"
	"github.com/srmorales/npi-sourcing/pkg/domain/repositories"
)

// ECNRepository provides in-memory ECN storage
type ECNRepository struct {
	ecns      []*entities.ECN
	byID      map[string]int
	byProject map[string][]int
}

// NewECNRepository creates a new in-memory ECN repository
func NewECNRepository() *ECNRepository {
	return &ECNRepository{
		byID:      make(map[string]int),
		byProject: make(map[string][]int),
	}
}

// Verify interface compliance
var _ repositories.ECNRepository = (*ECNRepository)(nil)

// AddECN registers an ECN and indexes it by project
func (r *ECNRepository) AddECN(ecn *entities.ECN) error {
	if _, exists := r.byID[ecn.ID]; exists {
		return fmt.Errorf("ecn %s: %w", ecn.ID, repositories.ErrDuplicateName)
	}
	r.byID[ecn.ID] = len(r.ecns)
	r.byProject[ecn.ProjectName] = append(r.byProject[ecn.ProjectName], len(r.ecns))
	r.ecns = append(r.ecns, ecn)
	return nil
}

// GetECN returns the ECN registered under an id
func (r *ECNRepository) GetECN(id string) (*entities.ECN, error) {
	index, exists := r.byID[id]
	if !exists {
		return nil, fmt.Errorf("ecn %s: %w", id, repositories.ErrNotFound)
	}
	return r.ecns[index], nil
}

// GetProjectECNs returns the ECNs bound to a project, in insertion order
func (r *ECNRepository) GetProjectECNs(projectName string) ([]*entities.ECN, error) {
	indexes := r.byProject[projectName]
	out := make([]*entities.ECN, 0, len(indexes))
	for _, i := range indexes {
		out = append(out, r.ecns[i])
	}
	return out, nil
}

// GetAllECNs returns all ECNs in insertion order
func (r *ECNRepository) GetAllECNs() ([]*entities.ECN, error) {
	out := make([]*entities.ECN, len(r.ecns))
	copy(out, r.ecns)
	return out, nil
}
