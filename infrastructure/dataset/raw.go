// Package dataset fornece as sete coleções planas da hierarquia da agência,
// valida a integridade referencial e as converte em entidades de domínio.
package dataset

import (
	"bytes"
	_ "embed"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/agency-dashboard/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:embed seed.json
var seed []byte

// Raw é o formato de origem. Os registros filhos carregam cópias
// (desnormalizadas) dos ids de ancestrais, conferidas por Validate.
type Raw struct {
	Agency    domain.Agency `json:"agency"`
	Clients   []RawClient   `json:"clients"`
	Campaigns []RawCampaign `json:"campaigns"`
	AdGroups  []RawAdGroup  `json:"adGroups"`
	Packages  []RawPackage  `json:"packages"`
	Deals     []RawDeal     `json:"deals"`
	Creatives []RawCreative `json:"creatives"`
	Geos      []RawGeo      `json:"geos"`
}

type RawClient struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Vertical string         `json:"vertical"`
	Metrics  domain.Metrics `json:"metrics"`
}

type RawCampaign struct {
	ID        string         `json:"id"`
	ClientID  string         `json:"clientId"`
	Name      string         `json:"name"`
	Objective string         `json:"objective"`
	Status    string         `json:"status"`
	Budget    float64        `json:"budget"`
	Spent     float64        `json:"spent"`
	Pacing    float64        `json:"pacing"`
	Metrics   domain.Metrics `json:"metrics"`
}

type RawPropensityWindow struct {
	Days  int     `json:"days"`
	Score float64 `json:"score"`
	Reach int64   `json:"reach"`
}

type RawAdGroup struct {
	ID                string                `json:"id"`
	CampaignID        string                `json:"campaignId"`
	ClientID          string                `json:"clientId"`
	Name              string                `json:"name"`
	Audience          string                `json:"audience"`
	AudienceSize      int64                 `json:"audienceSize"`
	PropensityWindows []RawPropensityWindow `json:"propensityWindows"`
	Metrics           domain.Metrics        `json:"metrics"`
}

type RawPackage struct {
	ID          string  `json:"id"`
	AdGroupID   string  `json:"adGroupId"`
	CampaignID  string  `json:"campaignId"`
	ClientID    string  `json:"clientId"`
	Name        string  `json:"name"`
	Publisher   string  `json:"publisher"`
	CPM         float64 `json:"cpm"`
	Impressions int64   `json:"impressions"`
	Spend       float64 `json:"spend"`
}

type RawDeal struct {
	ID                string  `json:"id"`
	PackageID         string  `json:"packageId"`
	Name              string  `json:"name"`
	Type              string  `json:"type"`
	CPM               float64 `json:"cpm"`
	ImpressionsBought int64   `json:"impressionsBought"`
}

type RawCreative struct {
	ID             string   `json:"id"`
	DealID         string   `json:"dealId"`
	Name           string   `json:"name"`
	Format         string   `json:"format"`
	Size           string   `json:"size,omitempty"`
	Impressions    int64    `json:"impressions"`
	Spend          float64  `json:"spend"`
	VTR            *float64 `json:"vtr,omitempty"`
	CompletionRate *float64 `json:"completionRate,omitempty"`
	CTR            *float64 `json:"ctr,omitempty"`
}

type RawGeo struct {
	ID          string `json:"id"`
	CreativeID  string `json:"creativeId"`
	ClientID    string `json:"clientId"`
	DMACode     int    `json:"dmaCode"`
	DMAName     string `json:"dmaName"`
	Impressions int64  `json:"impressions"`
}

// Decode lê um Raw em JSON
func Decode(r io.Reader) (*Raw, error) {
	raw := &Raw{}
	if err := json.NewDecoder(r).Decode(raw); err != nil {
		return nil, errors.Wrap(err, "dataset: decode")
	}
	return raw, nil
}

// Embedded retorna o snapshot embutido no binário
func Embedded() (*Raw, error) {
	return Decode(bytes.NewReader(seed))
}

// FromFile lê um snapshot JSON do disco
func FromFile(path string) (*Raw, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset: open %s", path)
	}
	defer f.Close()

	return Decode(f)
}
