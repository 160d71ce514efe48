package dataset

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/agency-dashboard/infrastructure/database/postgres"
)

// Tabelas do snapshot no Postgres
const (
	AgencyTable            = "agency"
	ClientsTable           = "clients"
	CampaignsTable         = "campaigns"
	AdGroupsTable          = "ad_groups"
	PropensityWindowsTable = "ad_group_propensity_windows"
	PackagesTable          = "packages"
	DealsTable             = "deals"
	CreativesTable         = "creatives"
	GeosTable              = "geos"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// scanner abstrai *sql.Row e *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

// PostgresSource lê o snapshot inteiro uma única vez, na inicialização
type PostgresSource struct {
	conn *postgres.Connection
}

func NewPostgresSource(conn *postgres.Connection) *PostgresSource {
	return &PostgresSource{conn: conn}
}

// Load lê as sete tabelas dentro de uma única transação somente leitura
func (s *PostgresSource) Load(ctx context.Context) (*Raw, error) {
	var raw *Raw
	err := s.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		var err error
		raw, err = LoadFrom(ctx, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// LoadFrom monta o Raw a partir de qualquer Queryer
func LoadFrom(ctx context.Context, q postgres.Queryer) (*Raw, error) {
	raw := &Raw{}

	agencySQL, agencyArgs, err := agencyQuery().ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "dataset: build agency query")
	}
	if err := q.QueryRowContext(ctx, agencySQL, agencyArgs...).Scan(&raw.Agency.ID, &raw.Agency.Name); err != nil {
		return nil, errors.Wrap(err, "dataset: read agency")
	}

	if raw.Clients, err = queryAll(ctx, q, clientsQuery(), scanClient); err != nil {
		return nil, errors.Wrap(err, "dataset: read clients")
	}
	if raw.Campaigns, err = queryAll(ctx, q, campaignsQuery(), scanCampaign); err != nil {
		return nil, errors.Wrap(err, "dataset: read campaigns")
	}
	if raw.AdGroups, err = queryAll(ctx, q, adGroupsQuery(), scanAdGroup); err != nil {
		return nil, errors.Wrap(err, "dataset: read ad groups")
	}

	windows, err := queryAll(ctx, q, propensityWindowsQuery(), scanPropensityWindow)
	if err != nil {
		return nil, errors.Wrap(err, "dataset: read propensity windows")
	}
	attachWindows(raw.AdGroups, windows)

	if raw.Packages, err = queryAll(ctx, q, packagesQuery(), scanPackage); err != nil {
		return nil, errors.Wrap(err, "dataset: read packages")
	}
	if raw.Deals, err = queryAll(ctx, q, dealsQuery(), scanDeal); err != nil {
		return nil, errors.Wrap(err, "dataset: read deals")
	}
	if raw.Creatives, err = queryAll(ctx, q, creativesQuery(), scanCreative); err != nil {
		return nil, errors.Wrap(err, "dataset: read creatives")
	}
	if raw.Geos, err = queryAll(ctx, q, geosQuery(), scanGeo); err != nil {
		return nil, errors.Wrap(err, "dataset: read geos")
	}

	return raw, nil
}

// A ordem de cada tabela define a ordem das linhas nas tabelas de drill-down
func agencyQuery() squirrel.SelectBuilder {
	return psql.Select("id", "name").From(AgencyTable).Limit(1)
}

func clientsQuery() squirrel.SelectBuilder {
	return psql.
		Select("id", "name", "vertical", "spend", "impressions", "clicks", "conversions", "revenue").
		From(ClientsTable).
		OrderBy("position ASC", "id ASC")
}

func campaignsQuery() squirrel.SelectBuilder {
	return psql.
		Select("id", "client_id", "name", "objective", "status", "budget", "spent", "pacing",
			"spend", "impressions", "clicks", "conversions", "revenue").
		From(CampaignsTable).
		OrderBy("position ASC", "id ASC")
}

func adGroupsQuery() squirrel.SelectBuilder {
	return psql.
		Select("id", "campaign_id", "client_id", "name", "audience", "audience_size",
			"spend", "impressions", "clicks", "conversions", "revenue").
		From(AdGroupsTable).
		OrderBy("position ASC", "id ASC")
}

func propensityWindowsQuery() squirrel.SelectBuilder {
	return psql.
		Select("ad_group_id", "days", "score", "reach").
		From(PropensityWindowsTable).
		OrderBy("ad_group_id ASC", "days ASC")
}

func packagesQuery() squirrel.SelectBuilder {
	return psql.
		Select("id", "ad_group_id", "campaign_id", "client_id", "name", "publisher", "cpm", "impressions", "spend").
		From(PackagesTable).
		OrderBy("position ASC", "id ASC")
}

func dealsQuery() squirrel.SelectBuilder {
	return psql.
		Select("id", "package_id", "name", "type", "cpm", "impressions_bought").
		From(DealsTable).
		OrderBy("position ASC", "id ASC")
}

func creativesQuery() squirrel.SelectBuilder {
	return psql.
		Select("id", "deal_id", "name", "format", "COALESCE(size, '')", "impressions", "spend", "vtr", "completion_rate", "ctr").
		From(CreativesTable).
		OrderBy("position ASC", "id ASC")
}

func geosQuery() squirrel.SelectBuilder {
	return psql.
		Select("id", "creative_id", "client_id", "dma_code", "dma_name", "impressions").
		From(GeosTable).
		OrderBy("position ASC", "id ASC")
}

func queryAll[T any](ctx context.Context, q postgres.Queryer, builder squirrel.SelectBuilder, scan func(scanner) (T, error)) ([]T, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}

	return out, rows.Err()
}

func scanClient(row scanner) (RawClient, error) {
	c := RawClient{}
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Vertical,
		&c.Metrics.Spend,
		&c.Metrics.Impressions,
		&c.Metrics.Clicks,
		&c.Metrics.Conversions,
		&c.Metrics.Revenue,
	)
	return c, err
}

func scanCampaign(row scanner) (RawCampaign, error) {
	c := RawCampaign{}
	err := row.Scan(
		&c.ID,
		&c.ClientID,
		&c.Name,
		&c.Objective,
		&c.Status,
		&c.Budget,
		&c.Spent,
		&c.Pacing,
		&c.Metrics.Spend,
		&c.Metrics.Impressions,
		&c.Metrics.Clicks,
		&c.Metrics.Conversions,
		&c.Metrics.Revenue,
	)
	return c, err
}

func scanAdGroup(row scanner) (RawAdGroup, error) {
	a := RawAdGroup{}
	err := row.Scan(
		&a.ID,
		&a.CampaignID,
		&a.ClientID,
		&a.Name,
		&a.Audience,
		&a.AudienceSize,
		&a.Metrics.Spend,
		&a.Metrics.Impressions,
		&a.Metrics.Clicks,
		&a.Metrics.Conversions,
		&a.Metrics.Revenue,
	)
	return a, err
}

type adGroupWindow struct {
	AdGroupID string
	Window    RawPropensityWindow
}

func scanPropensityWindow(row scanner) (adGroupWindow, error) {
	w := adGroupWindow{}
	err := row.Scan(&w.AdGroupID, &w.Window.Days, &w.Window.Score, &w.Window.Reach)
	return w, err
}

// attachWindows distribui as janelas lidas para seus ad groups. Janelas de um
// ad group inexistente são ignoradas aqui; Validate acusa a falta delas.
func attachWindows(adGroups []RawAdGroup, windows []adGroupWindow) {
	positions := make(map[string]int, len(adGroups))
	for i, a := range adGroups {
		positions[a.ID] = i
	}
	for _, w := range windows {
		if i, ok := positions[w.AdGroupID]; ok {
			adGroups[i].PropensityWindows = append(adGroups[i].PropensityWindows, w.Window)
		}
	}
}

func scanPackage(row scanner) (RawPackage, error) {
	p := RawPackage{}
	err := row.Scan(
		&p.ID,
		&p.AdGroupID,
		&p.CampaignID,
		&p.ClientID,
		&p.Name,
		&p.Publisher,
		&p.CPM,
		&p.Impressions,
		&p.Spend,
	)
	return p, err
}

func scanDeal(row scanner) (RawDeal, error) {
	d := RawDeal{}
	err := row.Scan(&d.ID, &d.PackageID, &d.Name, &d.Type, &d.CPM, &d.ImpressionsBought)
	return d, err
}

func scanCreative(row scanner) (RawCreative, error) {
	c := RawCreative{}
	var vtr, completionRate, ctr sql.NullFloat64
	if err := row.Scan(
		&c.ID,
		&c.DealID,
		&c.Name,
		&c.Format,
		&c.Size,
		&c.Impressions,
		&c.Spend,
		&vtr,
		&completionRate,
		&ctr,
	); err != nil {
		return c, err
	}

	c.VTR = nullableFloat(vtr)
	c.CompletionRate = nullableFloat(completionRate)
	c.CTR = nullableFloat(ctr)
	return c, nil
}

func scanGeo(row scanner) (RawGeo, error) {
	g := RawGeo{}
	err := row.Scan(&g.ID, &g.CreativeID, &g.ClientID, &g.DMACode, &g.DMAName, &g.Impressions)
	return g, err
}

func nullableFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	value := v.Float64
	return &value
}
