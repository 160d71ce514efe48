// Package resolving resolve um caminho de ids nos registros da hierarquia.
package resolving

import (
	"strconv"

	"github.com/jellydator/ttlcache/v3"
	"github.com/vfg2006/agency-dashboard/infrastructure/repository"
	"github.com/vfg2006/agency-dashboard/internal/domain"
	"github.com/vfg2006/agency-dashboard/pkg/metrics"
)

// Resolver mapeia um caminho para seus registros ou para o ponto onde ele
// deixa de ser válido. Não existe caminho de erro além de "não encontrado".
type Resolver interface {
	Resolve(path domain.Path) *Resolution
}

type Service struct {
	repo  repository.HierarchyRepository
	cache *ttlcache.Cache[string, *Resolution]
}

// NewService cria o resolver. As resoluções são memorizadas por caminho em um
// cache limitado a cacheSize entradas, sem expiração, já que os dados não
// mudam; cacheSize 0 desliga a memorização.
func NewService(repo repository.HierarchyRepository, cacheSize uint64) *Service {
	s := &Service{repo: repo}
	if cacheSize > 0 {
		s.cache = ttlcache.New(
			ttlcache.WithCapacity[string, *Resolution](cacheSize),
			ttlcache.WithDisableTouchOnHit[string, *Resolution](),
		)
	}
	return s
}

func (s *Service) Resolve(path domain.Path) *Resolution {
	key := path.String()

	if s.cache != nil {
		if cached := s.cache.Get(key); cached != nil {
			metrics.ResolverCache.WithLabelValues("hit").Inc()
			return cached.Value()
		}
		metrics.ResolverCache.WithLabelValues("miss").Inc()
	}

	resolution := s.resolve(path)

	outcome := "resolved"
	if !resolution.Valid() {
		outcome = "invalid"
	}
	metrics.Resolutions.WithLabelValues(outcome, strconv.Itoa(path.Depth())).Inc()

	if s.cache != nil {
		s.cache.Set(key, resolution, ttlcache.NoTTL)
	}

	return resolution
}

// resolve consulta cada segmento no índice do seu nível. Ao primeiro segmento
// vazio, desconhecido, fora da profundidade máxima ou que não é filho do
// anterior, marca InvalidAt e não consulta os seguintes.
func (s *Service) resolve(path domain.Path) *Resolution {
	agency := s.repo.Agency()
	resolution := &Resolution{
		Path:     path.Prefix(path.Depth()),
		Agency:   agency,
		Segments: make([]Segment, path.Depth()),
	}

	parentID := agency.ID
	for i, id := range path {
		level := domain.Level(i + 1)
		resolution.Segments[i] = Segment{ID: id, Level: level}

		if resolution.InvalidAt != 0 {
			continue
		}

		if i >= domain.MaxDepth || id == "" {
			resolution.InvalidAt = i + 1
			continue
		}

		entity, ok := s.repo.Lookup(level, id)
		if !ok || entity.ParentID() != parentID {
			resolution.InvalidAt = i + 1
			continue
		}

		resolution.Segments[i].Entity = entity
		parentID = id
	}

	if !resolution.Valid() {
		return resolution
	}

	if childLevel, ok := path.Level().Child(); ok {
		resolution.ChildLevel = childLevel
		resolution.Children = s.repo.Children(childLevel, parentID)
	}

	return resolution
}
