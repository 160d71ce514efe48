package navigating

import (
	"fmt"

	"github.com/vfg2006/agency-dashboard/internal/domain"
	"github.com/vfg2006/agency-dashboard/internal/usecases/resolving"
)

// Controller é dono do caminho atual de uma sessão de navegação e do
// histórico de entradas visitadas. Não é seguro para uso concorrente; cada
// sessão tem o seu.
//
// Back segue o histórico (volta para onde o usuário estava antes do último
// movimento), enquanto Up sobe exatamente um nível da hierarquia.
type Controller struct {
	resolver  resolving.Resolver
	rootLabel string
	current   *resolving.Resolution
	history   []domain.Path
}

func NewController(resolver resolving.Resolver, rootLabel string, start domain.Path) *Controller {
	return &Controller{
		resolver:  resolver,
		rootLabel: rootLabel,
		current:   resolver.Resolve(start),
	}
}

// Current retorna a resolução do caminho atual
func (c *Controller) Current() *resolving.Resolution {
	return c.current
}

func (c *Controller) Path() domain.Path {
	return c.current.Path
}

func (c *Controller) Breadcrumbs() []domain.Crumb {
	return Breadcrumbs(c.current, c.rootLabel)
}

// HistoryLen retorna quantas entradas Back ainda pode desfazer
func (c *Controller) HistoryLen() int {
	return len(c.history)
}

// Descend acrescenta um segmento ao caminho. Só é permitido a partir de um
// caminho totalmente resolvido e que não seja a folha, e o id precisa ser
// um dos filhos listados.
func (c *Controller) Descend(id string) error {
	if !c.current.Valid() {
		return ErrNotResolved
	}
	if c.current.Children == nil {
		return ErrAtLeaf
	}

	for _, child := range c.current.Children {
		if child.EntityID() == id {
			c.move(c.current.Path.Append(id))
			return nil
		}
	}

	return fmt.Errorf("%w: %q", ErrUnknownChild, id)
}

// Activate é o callback de linha da tabela: recebe o registro inteiro
func (c *Controller) Activate(row domain.Entity) error {
	if row == nil {
		return fmt.Errorf("%w: nil row", ErrWrongLevel)
	}
	if c.current.Valid() && c.current.Children != nil && row.Level() != c.current.ChildLevel {
		return fmt.Errorf("%w: got %s, want %s", ErrWrongLevel, row.Level(), c.current.ChildLevel)
	}
	return c.Descend(row.EntityID())
}

// JumpTo substitui o caminho inteiro. Qualquer profundidade é aceita,
// inclusive caminhos inválidos (deep links).
func (c *Controller) JumpTo(path domain.Path) {
	c.move(path)
}

// JumpToCrumb salta para o caminho absoluto do item do breadcrumb
func (c *Controller) JumpToCrumb(crumb domain.Crumb) error {
	if !crumb.Navigable() {
		return ErrNotNavigable
	}
	c.move(domain.ParsePath(crumb.Path))
	return nil
}

// Up salta para o nível pai derivado da resolução atual
func (c *Controller) Up() error {
	parent, ok := UpPath(c.current)
	if !ok {
		return ErrAtRoot
	}
	c.move(parent)
	return nil
}

// Back desfaz o último movimento, qualquer que tenha sido
func (c *Controller) Back() error {
	if len(c.history) == 0 {
		return ErrNoHistory
	}
	previous := c.history[len(c.history)-1]
	c.history = c.history[:len(c.history)-1]
	c.current = c.resolver.Resolve(previous)
	return nil
}

// move não registra histórico quando o destino é a posição atual
func (c *Controller) move(path domain.Path) {
	if path.Equal(c.current.Path) {
		return
	}
	c.history = append(c.history, c.current.Path)
	c.current = c.resolver.Resolve(path)
}
