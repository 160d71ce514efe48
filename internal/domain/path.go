package domain

import (
	"net/url"
	"strings"
)

// ManagerRoot é o prefixo de URL da visão hierárquica
const ManagerRoot = "/manager"

// Path é a tupla ordenada de ids que representa a posição do usuário na
// hierarquia: clientId, campaignId, adGroupId, packageId, dealId, creativeId, geoId.
// Um segmento só existe se todos os anteriores existirem.
type Path []string

// ParsePath converte uma URL do manager em Path. Segmentos vazios no meio do
// caminho são preservados para que o resolver possa marcá-los como inválidos;
// uma única barra final é ignorada.
func ParsePath(raw string) Path {
	rest := strings.TrimPrefix(raw, ManagerRoot)
	rest = strings.TrimPrefix(rest, "/")
	rest = strings.TrimSuffix(rest, "/")
	if rest == "" {
		return Path{}
	}

	segments := strings.Split(rest, "/")
	path := make(Path, 0, len(segments))
	for _, segment := range segments {
		if unescaped, err := url.PathUnescape(segment); err == nil {
			segment = unescaped
		}
		path = append(path, segment)
	}
	return path
}

// Depth retorna o número de segmentos do caminho
func (p Path) Depth() int {
	return len(p)
}

// Level retorna o nível do último segmento
func (p Path) Level() Level {
	return Level(len(p))
}

// Leaf retorna o id do último segmento, ou "" na raiz
func (p Path) Leaf() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Append retorna um novo caminho com um segmento a mais
func (p Path) Append(id string) Path {
	next := make(Path, len(p), len(p)+1)
	copy(next, p)
	return append(next, id)
}

// Prefix retorna os n primeiros segmentos
func (p Path) Prefix(n int) Path {
	if n < 0 {
		n = 0
	}
	if n > len(p) {
		n = len(p)
	}
	prefix := make(Path, n)
	copy(prefix, p[:n])
	return prefix
}

// Parent retorna o caminho sem o último segmento
func (p Path) Parent() (Path, bool) {
	if len(p) == 0 {
		return Path{}, false
	}
	return p.Prefix(len(p) - 1), true
}

// Equal compara dois caminhos segmento a segmento
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// URL monta o caminho absoluto /manager/...
func (p Path) URL() string {
	return p.URLWithRoot(ManagerRoot)
}

// URLWithRoot monta o caminho absoluto a partir de outro prefixo (ex: /v1/manager)
func (p Path) URLWithRoot(root string) string {
	var b strings.Builder
	b.WriteString(root)
	for _, segment := range p {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(segment))
	}
	return b.String()
}

// String é usado como chave de cache
func (p Path) String() string {
	return p.URL()
}
