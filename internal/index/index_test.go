package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	id     string
	parent string
}

func idOf(i *item) string     { return i.id }
func parentOf(i *item) string { return i.parent }

func TestBuild(t *testing.T) {
	a := &item{id: "a", parent: "p1"}
	b := &item{id: "b", parent: "p2"}
	c := &item{id: "c", parent: "p1"}
	d := &item{id: "d", parent: "p3"}
	items := []*item{a, b, c, d}

	idx, err := Build(items, idOf, parentOf)
	require.NoError(t, err)

	t.Run("Completude do índice de id", func(t *testing.T) {
		for _, it := range items {
			got, ok := idx.Get(it.id)
			require.True(t, ok)
			assert.Same(t, it, got)
			assert.Contains(t, idx.Children(it.parent), it)
		}
		assert.Equal(t, 4, idx.Len())
	})

	t.Run("Ordem relativa preservada no grupo", func(t *testing.T) {
		assert.Equal(t, []*item{a, c}, idx.Children("p1"))
	})

	t.Run("Grupo unitário existe", func(t *testing.T) {
		assert.Equal(t, []*item{d}, idx.Children("p3"))
		assert.Equal(t, 1, idx.GroupLen("p3"))
	})

	t.Run("Conservação do agrupamento", func(t *testing.T) {
		total := 0
		for _, key := range idx.ParentKeys() {
			total += len(idx.Children(key))
		}
		assert.Equal(t, len(items), total)
		assert.Equal(t, []string{"p1", "p2", "p3"}, idx.ParentKeys())
	})

	t.Run("Pai sem filhos retorna lista vazia", func(t *testing.T) {
		assert.Empty(t, idx.Children("unknown"))
		assert.False(t, idx.Has("unknown"))
	})

	t.Run("Children devolve uma cópia", func(t *testing.T) {
		children := idx.Children("p1")
		children[0] = d
		assert.Same(t, a, idx.Children("p1")[0])
	})

	t.Run("All mantém a ordem de entrada", func(t *testing.T) {
		assert.Equal(t, items, idx.All())
	})
}

func TestBuild_Empty(t *testing.T) {
	idx, err := Build([]*item{}, idOf, parentOf)
	require.NoError(t, err)
	assert.Equal(t, 0, idx.Len())
	assert.Empty(t, idx.ParentKeys())

	idx, err = Build[*item](nil, idOf, parentOf)
	require.NoError(t, err)
	assert.Equal(t, 0, idx.Len())
}

func TestBuild_DuplicateID(t *testing.T) {
	items := []*item{
		{id: "a", parent: "p1"},
		{id: "a", parent: "p2"},
	}

	idx, err := Build(items, idOf, parentOf)
	assert.Nil(t, idx)
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.Contains(t, err.Error(), `"a"`)
}
