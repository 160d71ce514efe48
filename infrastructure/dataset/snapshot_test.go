package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/agency-dashboard/internal/domain"
)

func TestBuild_Embedded(t *testing.T) {
	raw, err := Embedded()
	require.NoError(t, err)

	snapshot, err := Build(raw)
	require.NoError(t, err)

	assert.Equal(t, domain.Agency{ID: "northstar", Name: "Northstar Media"}, snapshot.Agency)
	assert.Equal(t, map[domain.Level]int{
		domain.LevelClient:   3,
		domain.LevelCampaign: 4,
		domain.LevelAdGroup:  5,
		domain.LevelPackage:  4,
		domain.LevelDeal:     4,
		domain.LevelCreative: 4,
		domain.LevelGeo:      7,
	}, snapshot.Count())
	assert.Equal(t, 7, snapshot.Records()["geo"])
	assert.Equal(t, 5, snapshot.Records()["adGroup"])

	t.Run("Clientes ficam agrupados sob a agência", func(t *testing.T) {
		for _, c := range snapshot.Clients {
			assert.Equal(t, "northstar", c.ParentID())
		}
	})

	t.Run("Janelas de propensão convertidas na ordem fixa", func(t *testing.T) {
		adGroup := snapshot.AdGroups[0]
		for i, window := range adGroup.PropensityWindows {
			assert.Equal(t, domain.PropensityWindowDays[i], window.Days)
		}
	})

	t.Run("Métricas por formato", func(t *testing.T) {
		for _, c := range snapshot.Creatives {
			if c.IsVideo() {
				assert.NotNil(t, c.VTR, c.ID)
				assert.Nil(t, c.CTR, c.ID)
			} else {
				assert.NotNil(t, c.CTR, c.ID)
			}
		}
	})
}

func TestBuild_InvalidRaw(t *testing.T) {
	raw := fixture()
	raw.AdGroups[0].ClientID = "other"

	snapshot, err := Build(raw)
	assert.Nil(t, snapshot)

	var integrityErr *IntegrityError
	assert.ErrorAs(t, err, &integrityErr)
}

func TestDecode(t *testing.T) {
	t.Run("JSON inválido", func(t *testing.T) {
		_, err := Decode(strings.NewReader("{"))
		assert.ErrorContains(t, err, "dataset: decode")
	})

	t.Run("Arquivo em disco", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "snapshot.json")
		require.NoError(t, os.WriteFile(path, seed, 0o600))

		raw, err := FromFile(path)
		require.NoError(t, err)
		assert.Len(t, raw.Clients, 3)
		assert.Equal(t, "kayak", raw.Clients[0].ID)
	})

	t.Run("Arquivo inexistente", func(t *testing.T) {
		_, err := FromFile(filepath.Join(t.TempDir(), "missing.json"))
		assert.ErrorContains(t, err, "dataset: open")
	})
}
