// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// Level identifica a profundidade de um registro na hierarquia da agência.
// A profundidade 0 é a raiz do manager (a própria agência).
type Level int

const (
	LevelManager Level = iota
	LevelClient
	LevelCampaign
	LevelAdGroup
	LevelPackage
	LevelDeal
	LevelCreative
	LevelGeo
)

// MaxDepth é a profundidade máxima de um caminho (geo é a folha)
const MaxDepth = int(LevelGeo)

var levelNames = map[Level]string{
	LevelManager:  "manager",
	LevelClient:   "client",
	LevelCampaign: "campaign",
	LevelAdGroup:  "adGroup",
	LevelPackage:  "package",
	LevelDeal:     "deal",
	LevelCreative: "creative",
	LevelGeo:      "geo",
}

var levelTitles = map[Level]string{
	LevelManager:  "Manager",
	LevelClient:   "Client",
	LevelCampaign: "Campaign",
	LevelAdGroup:  "Ad Group",
	LevelPackage:  "Package",
	LevelDeal:     "Deal",
	LevelCreative: "Creative",
	LevelGeo:      "Geo",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "unknown"
}

// Title retorna o nome legível do nível
func (l Level) Title() string {
	if title, ok := levelTitles[l]; ok {
		return title
	}
	return "Unknown"
}

// Valid informa se o nível pertence à hierarquia
func (l Level) Valid() bool {
	return l >= LevelManager && l <= LevelGeo
}

// Child retorna o nível imediatamente abaixo. Geo não possui filhos.
func (l Level) Child() (Level, bool) {
	if l < LevelManager || l >= LevelGeo {
		return l, false
	}
	return l + 1, true
}

// Levels lista os níveis de entidade (sem a raiz), do mais raso ao mais profundo
func Levels() []Level {
	return []Level{LevelClient, LevelCampaign, LevelAdGroup, LevelPackage, LevelDeal, LevelCreative, LevelGeo}
}

// Entity é o contrato comum dos sete tipos de registro da hierarquia.
// Cada registro conhece apenas a chave do pai direto; ancestrais mais
// distantes são obtidos pelo resolver.
type Entity interface {
	EntityID() string
	ParentID() string
	Label() string
	Level() Level
}

// Agency é a raiz implícita da hierarquia
type Agency struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Metrics agrupa as métricas de desempenho de mídia
type Metrics struct {
	Spend       float64 `json:"spend"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Conversions int64   `json:"conversions"`
	Revenue     float64 `json:"revenue"`
}

// CTR retorna a taxa de cliques em porcentagem
func (m Metrics) CTR() float64 {
	if m.Impressions == 0 {
		return 0
	}
	return float64(m.Clicks) / float64(m.Impressions) * 100
}

// ROAS retorna o retorno sobre o investimento em mídia
func (m Metrics) ROAS() float64 {
	if m.Spend == 0 {
		return 0
	}
	return m.Revenue / m.Spend
}

// Add soma duas métricas
func (m Metrics) Add(other Metrics) Metrics {
	return Metrics{
		Spend:       m.Spend + other.Spend,
		Impressions: m.Impressions + other.Impressions,
		Clicks:      m.Clicks + other.Clicks,
		Conversions: m.Conversions + other.Conversions,
		Revenue:     m.Revenue + other.Revenue,
	}
}
