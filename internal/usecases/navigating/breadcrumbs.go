// Package navigating monta o breadcrumb de uma resolução e controla a
// posição do usuário na hierarquia.
package navigating

import (
	"github.com/vfg2006/agency-dashboard/internal/domain"
	"github.com/vfg2006/agency-dashboard/internal/usecases/resolving"
)

// Breadcrumbs retorna a raiz seguida de um item por segmento do caminho.
// O último item nunca é navegável, assim como qualquer item no segmento
// inválido ou depois dele. Segmentos não resolvidos usam o próprio id como rótulo.
func Breadcrumbs(resolution *resolving.Resolution, rootLabel string) []domain.Crumb {
	if rootLabel == "" {
		rootLabel = resolution.Agency.Name
	}

	depth := resolution.Depth()
	crumbs := make([]domain.Crumb, 0, depth+1)

	root := domain.Crumb{Label: rootLabel, Level: domain.LevelManager}
	if depth > 0 {
		root.Path = domain.ManagerRoot
	}
	crumbs = append(crumbs, root)

	for i, segment := range resolution.Segments {
		crumb := domain.Crumb{Label: segment.ID, Level: segment.Level}
		if segment.Resolved() {
			crumb.Label = segment.Entity.Label()
		}

		last := i == depth-1
		if !last && segment.Resolved() {
			crumb.Path = resolution.Path.Prefix(i + 1).URL()
		}
		crumbs = append(crumbs, crumb)
	}

	return crumbs
}

// UpPath é o destino de "voltar um nível": o pai do caminho atual, ou o
// ancestral válido mais profundo quando o caminho é inválido. Na raiz não
// existe destino.
func UpPath(resolution *resolving.Resolution) (domain.Path, bool) {
	if resolution.Depth() == 0 {
		return nil, false
	}
	if !resolution.Valid() {
		return resolution.ValidPrefix(), true
	}
	return resolution.Path.Parent()
}
