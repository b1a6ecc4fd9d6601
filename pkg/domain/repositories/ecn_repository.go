package repositories

import "github.com/srmorales/npi-sourcing/pkg/domain/entities"

// ECNRepository provides access to registered engineering change notifications
type ECNRepository interface {
	AddECN(ecn *entities.ECN) error
	GetECN(id string) (*entities.ECN, error)
	// GetProjectECNs returns the ECNs bound to a project, in insertion order.
	GetProjectECNs(projectName string) ([]*entities.ECN, error)
	GetAllECNs() ([]*entities.ECN, error)
}
