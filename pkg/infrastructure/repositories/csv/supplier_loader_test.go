package csv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srmorales/npi-sourcing/pkg/domain/entities"
)

func writeRoster(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "suppliers.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadSuppliers(t *testing.T) {
	path := writeRoster(t, `name,price,delivery,punctuality,quotation,new
Acme Piping,low,regular,high,regular,false
Fresh Metals,regular,high,regular,low,true
`)

	specs, err := NewLoader().LoadSuppliers(path)
	require.NoError(t, err)
	require.Len(t, specs, 2)

	assert.Equal(t, "Acme Piping", specs[0].Name)
	assert.Equal(t, entities.LowProfile, specs[0].Profile.Price)
	assert.Equal(t, entities.HighProfile, specs[0].Profile.Punctuality)
	assert.False(t, specs[0].NewSupplier)

	assert.Equal(t, "Fresh Metals", specs[1].Name)
	assert.Equal(t, entities.HighProfile, specs[1].Profile.Delivery)
	assert.True(t, specs[1].NewSupplier)
}

func TestLoadSuppliersErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "missing data rows",
			content: "name,price,delivery,punctuality,quotation,new\n",
		},
		{
			name:    "wrong header",
			content: "supplier,price,delivery,punctuality,quotation,new\nAcme,low,low,low,low,false\n",
		},
		{
			name:    "bad profile level",
			content: "name,price,delivery,punctuality,quotation,new\nAcme,cheap,low,low,low,false\n",
		},
		{
			name:    "bad new flag",
			content: "name,price,delivery,punctuality,quotation,new\nAcme,low,low,low,low,maybe\n",
		},
		{
			name:    "empty name",
			content: "name,price,delivery,punctuality,quotation,new\n ,low,low,low,low,false\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoader().LoadSuppliers(writeRoster(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadSuppliersMissingFile(t *testing.T) {
	_, err := NewLoader().LoadSuppliers(filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}
