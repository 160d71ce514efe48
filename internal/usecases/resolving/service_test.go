package resolving

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/agency-dashboard/infrastructure/dataset"
	"github.com/vfg2006/agency-dashboard/infrastructure/repository"
	"github.com/vfg2006/agency-dashboard/internal/domain"
)

const geoLeaf = "/manager/kayak/kayak-c1/kayak-c1-ag1/kayak-c1-ag1-p1/kayak-c1-ag1-p1-d1/kayak-c1-ag1-p1-d1-cr1/kayak-c1-ag1-p1-d1-cr1-g1"

func newRepository(t *testing.T) repository.HierarchyRepository {
	t.Helper()
	raw, err := dataset.Embedded()
	require.NoError(t, err)
	snapshot, err := dataset.Build(raw)
	require.NoError(t, err)
	repo, err := repository.NewHierarchyRepository(snapshot)
	require.NoError(t, err)
	return repo
}

func TestService_Resolve(t *testing.T) {
	resolver := NewService(newRepository(t), 0)

	tests := []struct {
		name     string
		path     string
		validate func(t *testing.T, r *Resolution)
	}{
		{
			name: "Raiz lista os clientes",
			path: "/manager",
			validate: func(t *testing.T, r *Resolution) {
				assert.True(t, r.Valid())
				assert.Equal(t, 0, r.Depth())
				assert.Nil(t, r.Current())
				assert.Equal(t, domain.LevelClient, r.ChildLevel)
				assert.Len(t, r.Children, 3)
			},
		},
		{
			name: "Três níveis resolvidos",
			path: "/manager/kayak/kayak-c1/kayak-c1-ag1",
			validate: func(t *testing.T, r *Resolution) {
				require.True(t, r.Valid())
				assert.Equal(t, 3, r.Depth())
				assert.Equal(t, "Frequent Flyers", r.Current().Label())
				chain := r.Chain()
				require.Len(t, chain, 3)
				assert.Equal(t, "Kayak", chain[0].Label())
				assert.Equal(t, "Summer Getaways", chain[1].Label())
				assert.Equal(t, domain.LevelPackage, r.ChildLevel)
				assert.Len(t, r.Children, 2)
			},
		},
		{
			name: "Ad group sem pacotes resolve com lista vazia",
			path: "/manager/kayak/kayak-c1/kayak-c1-ag2",
			validate: func(t *testing.T, r *Resolution) {
				assert.True(t, r.Valid())
				assert.NotNil(t, r.Children)
				assert.Empty(t, r.Children)
			},
		},
		{
			name: "Cliente desconhecido falha na profundidade 1",
			path: "/manager/ghost-client",
			validate: func(t *testing.T, r *Resolution) {
				assert.False(t, r.Valid())
				assert.Equal(t, 1, r.InvalidAt)
				assert.Nil(t, r.Current())
				assert.Nil(t, r.Children)
				assert.Empty(t, r.ValidPrefix())
			},
		},
		{
			name: "Segmentos após o inválido não são consultados",
			path: "/manager/kayak/ghost/kayak-c1-ag1",
			validate: func(t *testing.T, r *Resolution) {
				assert.Equal(t, 2, r.InvalidAt)
				assert.True(t, r.Segments[0].Resolved())
				assert.False(t, r.Segments[1].Resolved())
				assert.False(t, r.Segments[2].Resolved())
				assert.Equal(t, "kayak-c1-ag1", r.Segments[2].ID)
				assert.Equal(t, domain.Path{"kayak"}, r.ValidPrefix())
			},
		},
		{
			name: "Registro existente mas de outro pai é inválido",
			path: "/manager/kayak/hilton-c1",
			validate: func(t *testing.T, r *Resolution) {
				assert.Equal(t, 2, r.InvalidAt)
			},
		},
		{
			name: "Segmento vazio invalida o caminho",
			path: "/manager/kayak//kayak-c1-ag1",
			validate: func(t *testing.T, r *Resolution) {
				assert.Equal(t, 3, r.Depth())
				assert.Equal(t, 2, r.InvalidAt)
			},
		},
		{
			name: "Folha geo não tem filhos",
			path: geoLeaf,
			validate: func(t *testing.T, r *Resolution) {
				require.True(t, r.Valid())
				assert.True(t, r.IsLeaf())
				assert.Equal(t, "New York", r.Current().Label())
				assert.Nil(t, r.Children)
			},
		},
		{
			name: "Segmento além da folha é inválido",
			path: geoLeaf + "/extra",
			validate: func(t *testing.T, r *Resolution) {
				assert.Equal(t, 8, r.InvalidAt)
				assert.False(t, r.IsLeaf())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, resolver.Resolve(domain.ParsePath(tt.path)))
		})
	}
}

func TestService_PrefixMonotonicity(t *testing.T) {
	resolver := NewService(newRepository(t), 0)

	paths := []string{
		geoLeaf,
		"/manager/kayak/kayak-c1/kayak-c1-ag2",
		"/manager/kayak/ghost/kayak-c1-ag1",
		"/manager/hilton/hilton-c1/hilton-c1-ag1/hilton-c1-ag1-p1/hilton-c1-ag1-p1-d1",
	}

	for _, raw := range paths {
		path := domain.ParsePath(raw)
		for n := path.Depth(); n > 0; n-- {
			// se um caminho resolve, todos os seus prefixos resolvem
			if resolver.Resolve(path.Prefix(n)).Valid() {
				assert.True(t, resolver.Resolve(path.Prefix(n-1)).Valid(), "%s prefix %d", raw, n-1)
			}
		}
	}
}

func TestService_Cache(t *testing.T) {
	resolver := NewService(newRepository(t), 8)
	path := domain.ParsePath("/manager/kayak/kayak-c1")

	first := resolver.Resolve(path)
	second := resolver.Resolve(domain.ParsePath("/manager/kayak/kayak-c1/"))

	assert.Same(t, first, second)

	uncached := NewService(newRepository(t), 0)
	assert.NotSame(t, uncached.Resolve(path), uncached.Resolve(path))
	assert.Equal(t, uncached.Resolve(path).Chain()[1].EntityID(), first.Chain()[1].EntityID())
}

func TestResolution_At(t *testing.T) {
	resolver := NewService(newRepository(t), 0)
	r := resolver.Resolve(domain.ParsePath("/manager/kayak/kayak-c1"))

	campaign, ok := r.At(domain.LevelCampaign)
	require.True(t, ok)
	assert.Equal(t, "kayak-c1", campaign.EntityID())

	_, ok = r.At(domain.LevelAdGroup)
	assert.False(t, ok)
	_, ok = r.At(domain.LevelManager)
	assert.False(t, ok)
}
