// Package index constrói as estruturas de consulta de uma coleção plana:
// id -> registro e id do pai -> lista ordenada de filhos.
package index

import (
	"errors"
	"fmt"
)

var ErrDuplicateID = errors.New("index: duplicate id")

// Index é imutável depois de construído
type Index[T any] struct {
	items    []T
	byID     map[string]T
	byParent map[string][]T
	parents  []string
}

// Build indexa items. A ordem relativa original é preservada em cada grupo e
// todo registro pertence a exatamente um grupo do pai. Um id repetido faz a
// construção falhar.
func Build[T any](items []T, idOf func(T) string, parentOf func(T) string) (*Index[T], error) {
	idx := &Index[T]{
		items:    make([]T, 0, len(items)),
		byID:     make(map[string]T, len(items)),
		byParent: make(map[string][]T),
	}

	for position, item := range items {
		id := idOf(item)
		if _, exists := idx.byID[id]; exists {
			return nil, fmt.Errorf("%w: %q at position %d", ErrDuplicateID, id, position)
		}
		idx.byID[id] = item
		idx.items = append(idx.items, item)

		parent := parentOf(item)
		if _, exists := idx.byParent[parent]; !exists {
			idx.parents = append(idx.parents, parent)
		}
		idx.byParent[parent] = append(idx.byParent[parent], item)
	}

	return idx, nil
}

// Get retorna o registro com o id informado
func (i *Index[T]) Get(id string) (T, bool) {
	item, ok := i.byID[id]
	return item, ok
}

// Children retorna os registros do grupo parentID na ordem original.
// Um pai sem filhos retorna uma lista vazia.
func (i *Index[T]) Children(parentID string) []T {
	children := i.byParent[parentID]
	out := make([]T, len(children))
	copy(out, children)
	return out
}

// Has informa se o id existe
func (i *Index[T]) Has(id string) bool {
	_, ok := i.byID[id]
	return ok
}

// Len retorna o total de registros
func (i *Index[T]) Len() int {
	return len(i.items)
}

// All retorna todos os registros na ordem de entrada
func (i *Index[T]) All() []T {
	out := make([]T, len(i.items))
	copy(out, i.items)
	return out
}

// ParentKeys retorna as chaves de grupo na ordem em que apareceram
func (i *Index[T]) ParentKeys() []string {
	out := make([]string, len(i.parents))
	copy(out, i.parents)
	return out
}

// GroupLen retorna o tamanho do grupo parentID
func (i *Index[T]) GroupLen(parentID string) int {
	return len(i.byParent[parentID])
}
