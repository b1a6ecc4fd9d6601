package memory

import (
	"fmt"

	"github.com/srmorales/npi-sourcing/pkg/domain/entities"
	"github.com/srmorales/npi-sourcing/pkg/domain/repositories"
)

// ProjectRepository provides in-memory project storage
type ProjectRepository struct {
	projects []*entities.Project
	byName   map[string]int
}

// NewProjectRepository creates a new in-memory project repository
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{
		byName: make(map[string]int),
	}
}

// Verify interface compliance
var _ repositories.ProjectRepository = (*ProjectRepository)(nil)

// AddProject registers a project by name
func (r *ProjectRepository) AddProject(project *entities.Project) error {
	if _, exists := r.byName[project.Name]; exists {
		return fmt.Errorf("project %s: %w", project.Name, repositories.ErrDuplicateName)
	}
	r.byName[project.Name] = len(r.projects)
	r.projects = append(r.projects, project)
	return nil
}

// GetProject returns the project registered under a name
func (r *ProjectRepository) GetProject(name string) (*entities.Project, error) {
	index, exists := r.byName[name]
	if !exists {
		return nil, fmt.Errorf("project %s: %w", name, repositories.ErrNotFound)
	}
	return r.projects[index], nil
}

// GetAllProjects returns all projects in insertion order
func (r *ProjectRepository) GetAllProjects() ([]*entities.Project, error) {
	out := make([]*entities.Project, len(r.projects))
	copy(out, r.projects)
	return out, nil
}
