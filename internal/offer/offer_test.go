package offer

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solarops/internal/domain"
)

func TestRemoveDiacritics(t *testing.T) {
	assert.Equal(t, "Instalatii stradale", RemoveDiacritics("Instalații stradale"))
	assert.Equal(t, "OFERTA", RemoveDiacritics("OFERTĂ"))
	assert.Equal(t, "Imbinare", RemoveDiacritics("Îmbinare"))
	assert.Equal(t, "plain ascii", RemoveDiacritics("plain ascii"))
}

func TestCommercialOfferPDF(t *testing.T) {
	capacity := 8.5
	project := &domain.Project{
		ID:         uuid.New(),
		Name:       "Casa Popescu",
		ClientName: "Ion Popescu",
		Location:   "Strada Soarelui 5, Cluj",
		CapacityKW: &capacity,
		Status:     domain.ProjectPlanned,
	}
	materials := []domain.ProjectMaterialDetail{
		{
			ProjectMaterial: domain.ProjectMaterial{
				QuantityPlanned: 10,
				UnitPrice:       850,
			},
			MaterialName: "Panou fotovoltaic 450W",
			MaterialUnit: "buc",
		},
	}

	data, err := CommercialOfferPDF(project, materials)

	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestCommercialOfferPDF_NoMaterials(t *testing.T) {
	project := &domain.Project{
		ID:         uuid.New(),
		Name:       "Casa Ionescu",
		ClientName: "Maria Ionescu",
		Status:     domain.ProjectInProgress,
	}

	data, err := CommercialOfferPDF(project, nil)

	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}
