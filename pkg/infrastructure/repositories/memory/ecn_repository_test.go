package memory

import (
	"testing"

	"github.com/srmorales/npi-sourcing/pkg/domain/entities"
	"github.com/srmorales/npi-sourcing/pkg/domain/repositories"
	"github.com/stretchr/testify/require"
)

func newECN(t *testing.T, id, project string) *entities.ECN {
	t.Helper()
	part, err := entities.NewPart("PN-1", entities.LowComplexity, 100)
	require.NoError(t, err)
	ecn, err := entities.NewECN(id, project, testDate(), []*entities.Part{part})
	require.NoError(t, err)
	return ecn
}

func TestECNRepository_ProjectOrdering(t *testing.T) {
	repo := NewECNRepository()

	require.NoError(t, repo.AddECN(newECN(t, "ECN-0001", "falcon")))
	require.NoError(t, repo.AddECN(newECN(t, "ECN-0002", "eagle")))
	require.NoError(t, repo.AddECN(newECN(t, "ECN-0003", "falcon")))

	ecns, err := repo.GetProjectECNs("falcon")
	require.NoError(t, err)
	require.Len(t, ecns, 2)
	require.Equal(t, "ECN-0001", ecns[0].ID)
	require.Equal(t, "ECN-0003", ecns[1].ID)

	none, err := repo.GetProjectECNs("ghost")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestECNRepository_GetByID(t *testing.T) {
	repo := NewECNRepository()
	ecn := newECN(t, "ECN-0001", "falcon")
	require.NoError(t, repo.AddECN(ecn))

	got, err := repo.GetECN("ECN-0001")
	require.NoError(t, err)
	require.Same(t, ecn, got)

	_, err = repo.GetECN("ECN-9999")
	require.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestProjectRepository(t *testing.T) {
	repo := NewProjectRepository()

	project, err := entities.NewProject("falcon",
		testDate(), testDate().AddDate(0, 1, 0), testDate().AddDate(0, 2, 0), testDate().AddDate(0, 4, 0))
	require.NoError(t, err)
	require.NoError(t, repo.AddProject(project))

	got, err := repo.GetProject("falcon")
	require.NoError(t, err)
	require.Same(t, project, got)

	_, err = repo.GetProject("ghost")
	require.ErrorIs(t, err, repositories.ErrNotFound)

	duplicate, err := entities.NewProject("falcon",
		testDate(), testDate().AddDate(0, 1, 0), testDate().AddDate(0, 2, 0), testDate().AddDate(0, 4, 0))
	require.NoError(t, err)
	require.ErrorIs(t, repo.AddProject(duplicate), repositories.ErrDuplicateName)
}
