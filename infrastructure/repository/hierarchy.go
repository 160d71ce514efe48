package repository

import (
	"errors"
	"fmt"

	"github.com/vfg2006/agency-dashboard/infrastructure/dataset"
	"github.com/vfg2006/agency-dashboard/internal/domain"
	"github.com/vfg2006/agency-dashboard/internal/index"
)

var ErrOrphanRecord = errors.New("repository: parent key does not resolve")

// HierarchyRepository expõe a hierarquia imutável da agência. É construído
// uma vez na inicialização e injetado em quem precisa dele.
type HierarchyRepository interface {
	Agency() domain.Agency
	Lookup(level domain.Level, id string) (domain.Entity, bool)
	Children(level domain.Level, parentID string) []domain.Entity
	Count(level domain.Level) int
	Clients() []*domain.Client
	Campaigns() []*domain.Campaign
	CampaignsOf(clientID string) []*domain.Campaign
}

// levelIndex apaga o tipo concreto de cada índice
type levelIndex interface {
	lookup(id string) (domain.Entity, bool)
	has(id string) bool
	children(parentID string) []domain.Entity
	parentKeys() []string
	len() int
}

type entityIndex[T domain.Entity] struct {
	idx *index.Index[T]
}

func (e entityIndex[T]) lookup(id string) (domain.Entity, bool) {
	item, ok := e.idx.Get(id)
	if !ok {
		return nil, false
	}
	return item, true
}

func (e entityIndex[T]) children(parentID string) []domain.Entity {
	items := e.idx.Children(parentID)
	out := make([]domain.Entity, 0, len(items))
	for _, item := range items {
		out = append(out, item)
	}
	return out
}

func (e entityIndex[T]) has(id string) bool   { return e.idx.Has(id) }
func (e entityIndex[T]) parentKeys() []string { return e.idx.ParentKeys() }
func (e entityIndex[T]) len() int             { return e.idx.Len() }

func buildIndex[T domain.Entity](level domain.Level, items []T) (*index.Index[T], error) {
	idx, err := index.Build(items,
		func(item T) string { return item.EntityID() },
		func(item T) string { return item.ParentID() },
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", level, err)
	}
	return idx, nil
}

type hierarchyRepository struct {
	agency    domain.Agency
	clients   *index.Index[*domain.Client]
	campaigns *index.Index[*domain.Campaign]
	levels    map[domain.Level]levelIndex
}

// NewHierarchyRepository indexa as sete coleções do snapshot. Falha se algum
// id se repetir ou se alguma chave de pai não existir no nível acima.
func NewHierarchyRepository(snapshot *dataset.Snapshot) (HierarchyRepository, error) {
	clients, err := buildIndex(domain.LevelClient, snapshot.Clients)
	if err != nil {
		return nil, err
	}
	campaigns, err := buildIndex(domain.LevelCampaign, snapshot.Campaigns)
	if err != nil {
		return nil, err
	}
	adGroups, err := buildIndex(domain.LevelAdGroup, snapshot.AdGroups)
	if err != nil {
		return nil, err
	}
	packages, err := buildIndex(domain.LevelPackage, snapshot.Packages)
	if err != nil {
		return nil, err
	}
	deals, err := buildIndex(domain.LevelDeal, snapshot.Deals)
	if err != nil {
		return nil, err
	}
	creatives, err := buildIndex(domain.LevelCreative, snapshot.Creatives)
	if err != nil {
		return nil, err
	}
	geos, err := buildIndex(domain.LevelGeo, snapshot.Geos)
	if err != nil {
		return nil, err
	}

	r := &hierarchyRepository{
		agency:    snapshot.Agency,
		clients:   clients,
		campaigns: campaigns,
		levels: map[domain.Level]levelIndex{
			domain.LevelClient:   entityIndex[*domain.Client]{clients},
			domain.LevelCampaign: entityIndex[*domain.Campaign]{campaigns},
			domain.LevelAdGroup:  entityIndex[*domain.AdGroup]{adGroups},
			domain.LevelPackage:  entityIndex[*domain.Package]{packages},
			domain.LevelDeal:     entityIndex[*domain.Deal]{deals},
			domain.LevelCreative: entityIndex[*domain.Creative]{creatives},
			domain.LevelGeo:      entityIndex[*domain.Geo]{geos},
		},
	}

	if err := r.checkParents(); err != nil {
		return nil, err
	}

	return r, nil
}

// checkParents garante que todo grupo de filhos aponta para um pai existente
func (r *hierarchyRepository) checkParents() error {
	for _, level := range domain.Levels() {
		for _, key := range r.levels[level].parentKeys() {
			if level == domain.LevelClient {
				if key != r.agency.ID {
					return fmt.Errorf("%w: client parent %q is not the agency %q", ErrOrphanRecord, key, r.agency.ID)
				}
				continue
			}
			if !r.levels[level-1].has(key) {
				return fmt.Errorf("%w: %s parent %q not found in %s", ErrOrphanRecord, level, key, level-1)
			}
		}
	}
	return nil
}

func (r *hierarchyRepository) Agency() domain.Agency {
	return r.agency
}

// Lookup retorna o registro do nível informado. A raiz não é um registro.
func (r *hierarchyRepository) Lookup(level domain.Level, id string) (domain.Entity, bool) {
	idx, ok := r.levels[level]
	if !ok || id == "" {
		return nil, false
	}
	return idx.lookup(id)
}

// Children retorna os registros do nível level cujo pai é parentID, na ordem
// original. Para clientes o pai é a agência.
func (r *hierarchyRepository) Children(level domain.Level, parentID string) []domain.Entity {
	idx, ok := r.levels[level]
	if !ok {
		return []domain.Entity{}
	}
	return idx.children(parentID)
}

func (r *hierarchyRepository) Count(level domain.Level) int {
	idx, ok := r.levels[level]
	if !ok {
		return 0
	}
	return idx.len()
}

func (r *hierarchyRepository) Clients() []*domain.Client {
	return r.clients.All()
}

func (r *hierarchyRepository) Campaigns() []*domain.Campaign {
	return r.campaigns.All()
}

func (r *hierarchyRepository) CampaignsOf(clientID string) []*domain.Campaign {
	return r.campaigns.Children(clientID)
}
