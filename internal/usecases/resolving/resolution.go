package resolving

import (
	"github.com/vfg2006/agency-dashboard/internal/domain"
)

// Segment é um segmento do caminho e o registro que ele resolveu.
// Entity é nil quando o segmento não resolveu ou nem chegou a ser consultado.
type Segment struct {
	ID     string
	Level  domain.Level
	Entity domain.Entity
}

// Resolved informa se o segmento foi encontrado
func (s Segment) Resolved() bool {
	return s.Entity != nil
}

// Resolution é o resultado imutável de resolver um caminho. Instâncias são
// compartilhadas pelo cache do resolver e não devem ser modificadas.
type Resolution struct {
	Path     domain.Path
	Agency   domain.Agency
	Segments []Segment

	// InvalidAt é a profundidade (a partir de 1) do primeiro segmento que
	// não resolveu; 0 quando o caminho inteiro é válido.
	InvalidAt int

	// ChildLevel e Children descrevem o próximo nível; Children é nil quando
	// o caminho é inválido ou termina na folha (geo).
	ChildLevel domain.Level
	Children   []domain.Entity
}

// Valid informa se todos os segmentos resolveram
func (r *Resolution) Valid() bool {
	return r.InvalidAt == 0
}

// Depth é a profundidade do caminho pedido
func (r *Resolution) Depth() int {
	return len(r.Segments)
}

// IsLeaf informa se o caminho válido termina em uma geo
func (r *Resolution) IsLeaf() bool {
	return r.Valid() && r.Depth() == domain.MaxDepth
}

// Current retorna o registro do próprio nível; nil na raiz ou se inválido
func (r *Resolution) Current() domain.Entity {
	if !r.Valid() || len(r.Segments) == 0 {
		return nil
	}
	return r.Segments[len(r.Segments)-1].Entity
}

// At retorna o registro resolvido no nível informado
func (r *Resolution) At(level domain.Level) (domain.Entity, bool) {
	i := int(level) - 1
	if i < 0 || i >= len(r.Segments) || !r.Segments[i].Resolved() {
		return nil, false
	}
	return r.Segments[i].Entity, true
}

// Chain retorna os registros resolvidos, do cliente até o mais profundo
func (r *Resolution) Chain() []domain.Entity {
	chain := make([]domain.Entity, 0, len(r.Segments))
	for _, s := range r.Segments {
		if !s.Resolved() {
			break
		}
		chain = append(chain, s.Entity)
	}
	return chain
}

// ValidPrefix é o maior prefixo do caminho que resolveu
func (r *Resolution) ValidPrefix() domain.Path {
	if r.Valid() {
		return r.Path.Prefix(len(r.Path))
	}
	return r.Path.Prefix(r.InvalidAt - 1)
}
