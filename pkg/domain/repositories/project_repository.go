package repositories

import "github.com/srmorales/npi-sourcing/pkg/domain/entities"

// ProjectRepository provides access to registered NPI projects
type ProjectRepository interface {
	AddProject(project *entities.Project) error
	GetProject(name string) (*entities.Project, error)
	GetAllProjects() ([]*entities.Project, error)
}
