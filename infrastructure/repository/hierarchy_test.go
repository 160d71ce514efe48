package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/agency-dashboard/infrastructure/dataset"
	"github.com/vfg2006/agency-dashboard/internal/domain"
	"github.com/vfg2006/agency-dashboard/internal/index"
)

func embeddedSnapshot(t *testing.T) *dataset.Snapshot {
	t.Helper()
	raw, err := dataset.Embedded()
	require.NoError(t, err)
	snapshot, err := dataset.Build(raw)
	require.NoError(t, err)
	return snapshot
}

func entitiesOf[T domain.Entity](items []T) []domain.Entity {
	out := make([]domain.Entity, 0, len(items))
	for _, item := range items {
		out = append(out, item)
	}
	return out
}

func TestHierarchyRepository(t *testing.T) {
	snapshot := embeddedSnapshot(t)
	repo, err := NewHierarchyRepository(snapshot)
	require.NoError(t, err)

	collections := map[domain.Level][]domain.Entity{
		domain.LevelClient:   entitiesOf(snapshot.Clients),
		domain.LevelCampaign: entitiesOf(snapshot.Campaigns),
		domain.LevelAdGroup:  entitiesOf(snapshot.AdGroups),
		domain.LevelPackage:  entitiesOf(snapshot.Packages),
		domain.LevelDeal:     entitiesOf(snapshot.Deals),
		domain.LevelCreative: entitiesOf(snapshot.Creatives),
		domain.LevelGeo:      entitiesOf(snapshot.Geos),
	}

	t.Run("Completude dos índices", func(t *testing.T) {
		for level, items := range collections {
			for _, e := range items {
				got, ok := repo.Lookup(level, e.EntityID())
				require.True(t, ok, "%s %s", level, e.EntityID())
				assert.Same(t, e, got)
				assert.Contains(t, repo.Children(level, e.ParentID()), e)
			}
			assert.Equal(t, len(items), repo.Count(level))
		}
	})

	t.Run("Conservação do agrupamento", func(t *testing.T) {
		for level, items := range collections {
			parents := map[string]struct{}{}
			for _, e := range items {
				parents[e.ParentID()] = struct{}{}
			}
			total := 0
			for parent := range parents {
				total += len(repo.Children(level, parent))
			}
			assert.Equal(t, len(items), total, level.String())
		}
	})

	t.Run("Integridade referencial: todo pai existe", func(t *testing.T) {
		for _, level := range domain.Levels()[1:] {
			for _, e := range collections[level] {
				_, ok := repo.Lookup(level-1, e.ParentID())
				assert.True(t, ok, "%s %s", level, e.EntityID())
			}
		}
	})

	t.Run("Filhos na ordem original", func(t *testing.T) {
		children := repo.Children(domain.LevelAdGroup, "kayak-c1")
		require.Len(t, children, 2)
		assert.Equal(t, "kayak-c1-ag1", children[0].EntityID())
		assert.Equal(t, "kayak-c1-ag2", children[1].EntityID())
	})

	t.Run("Clientes pertencem à agência", func(t *testing.T) {
		assert.Len(t, repo.Children(domain.LevelClient, repo.Agency().ID), 3)
		assert.Equal(t, "Northstar Media", repo.Agency().Name)
	})

	t.Run("Pai sem filhos é válido", func(t *testing.T) {
		assert.Empty(t, repo.Children(domain.LevelPackage, "kayak-c1-ag2"))
	})

	t.Run("Nível ou id inválido", func(t *testing.T) {
		_, ok := repo.Lookup(domain.LevelManager, "northstar")
		assert.False(t, ok)
		_, ok = repo.Lookup(domain.LevelClient, "")
		assert.False(t, ok)
		_, ok = repo.Lookup(domain.LevelClient, "ghost-client")
		assert.False(t, ok)
		assert.Empty(t, repo.Children(domain.Level(42), "x"))
		assert.Zero(t, repo.Count(domain.LevelManager))
	})

	t.Run("Acessores tipados", func(t *testing.T) {
		assert.Len(t, repo.Clients(), 3)
		assert.Len(t, repo.Campaigns(), 4)
		assert.Len(t, repo.CampaignsOf("kayak"), 2)
	})
}

func TestNewHierarchyRepository_Errors(t *testing.T) {
	tests := []struct {
		name     string
		snapshot *dataset.Snapshot
		err      error
	}{
		{
			name: "Id repetido falha a construção",
			snapshot: &dataset.Snapshot{
				Agency: domain.Agency{ID: "a"},
				Clients: []*domain.Client{
					{ID: "c1", AgencyID: "a"},
					{ID: "c1", AgencyID: "a"},
				},
			},
			err: index.ErrDuplicateID,
		},
		{
			name: "Campanha órfã",
			snapshot: &dataset.Snapshot{
				Agency:    domain.Agency{ID: "a"},
				Clients:   []*domain.Client{{ID: "c1", AgencyID: "a"}},
				Campaigns: []*domain.Campaign{{ID: "cp1", ClientID: "ghost"}},
			},
			err: ErrOrphanRecord,
		},
		{
			name: "Cliente fora da agência",
			snapshot: &dataset.Snapshot{
				Agency:  domain.Agency{ID: "a"},
				Clients: []*domain.Client{{ID: "c1", AgencyID: "b"}},
			},
			err: ErrOrphanRecord,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, err := NewHierarchyRepository(tt.snapshot)
			assert.Nil(t, repo)
			assert.ErrorIs(t, err, tt.err)
		})
	}

	t.Run("Snapshot vazio", func(t *testing.T) {
		repo, err := NewHierarchyRepository(&dataset.Snapshot{Agency: domain.Agency{ID: "a"}})
		require.NoError(t, err)
		assert.Empty(t, repo.Clients())
	})
}
