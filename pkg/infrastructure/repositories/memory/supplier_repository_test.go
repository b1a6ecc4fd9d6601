package memory

import (
	"testing"

	"github.com/srmorales/npi-sourcing/pkg/domain/entities"
	"github.com/srmorales/npi-sourcing/pkg/domain/repositories"
	"github.com/stretchr/testify/require"
)

func newSupplier(t *testing.T, id, name string, profile entities.Profile) *entities.Supplier {
	t.Helper()
	s, err := entities.NewSupplier(id, name, profile, false)
	require.NoError(t, err)
	return s
}

func TestSupplierRepository_DuplicateName(t *testing.T) {
	repo := NewSupplierRepository()

	require.NoError(t, repo.AddSupplier(newSupplier(t, "SUP00001", "Acme", entities.DefaultProfile())))

	err := repo.AddSupplier(newSupplier(t, "SUP00002", "Acme", entities.DefaultProfile()))
	require.ErrorIs(t, err, repositories.ErrDuplicateName)

	// The failed registration must not be visible.
	all, err := repo.GetAllSuppliers()
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestSupplierRepository_FindFirstMatch(t *testing.T) {
	repo := NewSupplierRepository()

	fast := entities.DefaultProfile()
	fast.Delivery = entities.HighProfile

	require.NoError(t, repo.AddSupplier(newSupplier(t, "SUP00001", "Acme", fast)))
	require.NoError(t, repo.AddSupplier(newSupplier(t, "SUP00002", "Brimstone", fast)))

	got, err := repo.FindSupplier("delivery", "high")
	require.NoError(t, err)
	require.Equal(t, "SUP00001", got.ID, "first match in insertion order wins")

	got, err = repo.FindSupplier("name", "Brimstone")
	require.NoError(t, err)
	require.Equal(t, "SUP00002", got.ID)

	_, err = repo.FindSupplier("name", "Nonesuch")
	require.ErrorIs(t, err, repositories.ErrNotFound)

	_, err = repo.FindSupplier("bogus-field", "x")
	require.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestProjectRepository_Lookup(t *testing.T) {
	repo := NewProjectRepository()

	_, err := repo.GetProject("Aurora")
	require.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestECNRepository_ProjectIndex(t *testing.T) {
	repo := NewECNRepository()

	part, err := entities.NewPart("PN-1", entities.LowComplexity, 10)
	require.NoError(t, err)

	for _, id := range []string{"ECN-1", "ECN-2"} {
		ecn, err := entities.NewECN(id, "Aurora", testDate(), []*entities.Part{part})
		require.NoError(t, err)
		require.NoError(t, repo.AddECN(ecn))
	}
	other, err := entities.NewECN("ECN-3", "Borealis", testDate(), []*entities.Part{part})
	require.NoError(t, err)
	require.NoError(t, repo.AddECN(other))

	ecns, err := repo.GetProjectECNs("Aurora")
	require.NoError(t, err)
	require.Len(t, ecns, 2)
	require.Equal(t, "ECN-1", ecns[0].ID)
	require.Equal(t, "ECN-2", ecns[1].ID)

	none, err := repo.GetProjectECNs("Nonesuch")
	require.NoError(t, err)
	require.Empty(t, none)
}
