// Package migration cria o schema do snapshot no Postgres e carrega um Raw nele.
// O resultado é lido de volta por dataset.PostgresSource.
package migration

import (
	"context"
	"database/sql"
	_ "embed"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/agency-dashboard/infrastructure/database/postgres"
	"github.com/vfg2006/agency-dashboard/infrastructure/dataset"
)

//go:embed schema.sql
var schema string

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// ordem de remoção: dos filhos para a raiz
var tablesChildFirst = []string{
	dataset.GeosTable,
	dataset.CreativesTable,
	dataset.DealsTable,
	dataset.PackagesTable,
	dataset.PropensityWindowsTable,
	dataset.AdGroupsTable,
	dataset.CampaignsTable,
	dataset.ClientsTable,
	dataset.AgencyTable,
}

// Schema retorna o DDL embutido
func Schema() string {
	return schema
}

// Run cria o schema e substitui o conteúdo das tabelas por raw em uma única transação.
// raw é validado antes de qualquer escrita.
func Run(ctx context.Context, conn *postgres.Connection, raw *dataset.Raw) error {
	if err := dataset.Validate(raw); err != nil {
		return err
	}

	startTime := time.Now()
	err := conn.RunInWriteTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, Schema()); err != nil {
			return errors.Wrap(err, "migration: create schema")
		}
		return Seed(ctx, tx, raw)
	})
	if err != nil {
		return err
	}

	logrus.WithField("elapsed", time.Since(startTime).String()).Info("Seed concluído")
	return nil
}

// Seed apaga as tabelas e insere raw. Uma instrução por tabela; coleções vazias são puladas.
func Seed(ctx context.Context, exec postgres.Execer, raw *dataset.Raw) error {
	for _, table := range tablesChildFirst {
		if err := execBuilder(ctx, exec, psql.Delete(table)); err != nil {
			return errors.Wrapf(err, "migration: clear %s", table)
		}
	}

	for _, stmt := range statements(raw) {
		if err := execBuilder(ctx, exec, stmt.builder); err != nil {
			return errors.Wrapf(err, "migration: insert %s", stmt.table)
		}
		logrus.WithFields(logrus.Fields{
			"table": stmt.table,
			"rows":  stmt.rows,
		}).Debug("Tabela carregada")
	}

	return nil
}

type statement struct {
	table   string
	rows    int
	builder squirrel.InsertBuilder
}

// statements monta os inserts na ordem de dependência (da raiz para os filhos)
func statements(raw *dataset.Raw) []statement {
	var out []statement
	add := func(table string, rows int, builder squirrel.InsertBuilder) {
		if rows > 0 {
			out = append(out, statement{table: table, rows: rows, builder: builder})
		}
	}

	add(dataset.AgencyTable, 1, psql.Insert(dataset.AgencyTable).
		Columns("id", "name").
		Values(raw.Agency.ID, raw.Agency.Name))

	clients := psql.Insert(dataset.ClientsTable).
		Columns("id", "position", "name", "vertical", "spend", "impressions", "clicks", "conversions", "revenue")
	for i, c := range raw.Clients {
		m := c.Metrics
		clients = clients.Values(c.ID, i, c.Name, c.Vertical, m.Spend, m.Impressions, m.Clicks, m.Conversions, m.Revenue)
	}
	add(dataset.ClientsTable, len(raw.Clients), clients)

	campaigns := psql.Insert(dataset.CampaignsTable).
		Columns("id", "position", "client_id", "name", "objective", "status", "budget", "spent", "pacing",
			"spend", "impressions", "clicks", "conversions", "revenue")
	for i, c := range raw.Campaigns {
		m := c.Metrics
		campaigns = campaigns.Values(c.ID, i, c.ClientID, c.Name, c.Objective, c.Status, c.Budget, c.Spent, c.Pacing,
			m.Spend, m.Impressions, m.Clicks, m.Conversions, m.Revenue)
	}
	add(dataset.CampaignsTable, len(raw.Campaigns), campaigns)

	adGroups := psql.Insert(dataset.AdGroupsTable).
		Columns("id", "position", "campaign_id", "client_id", "name", "audience", "audience_size",
			"spend", "impressions", "clicks", "conversions", "revenue")
	windows := psql.Insert(dataset.PropensityWindowsTable).
		Columns("ad_group_id", "days", "score", "reach")
	windowCount := 0
	for i, a := range raw.AdGroups {
		m := a.Metrics
		adGroups = adGroups.Values(a.ID, i, a.CampaignID, a.ClientID, a.Name, a.Audience, a.AudienceSize,
			m.Spend, m.Impressions, m.Clicks, m.Conversions, m.Revenue)
		for _, w := range a.PropensityWindows {
			windows = windows.Values(a.ID, w.Days, w.Score, w.Reach)
			windowCount++
		}
	}
	add(dataset.AdGroupsTable, len(raw.AdGroups), adGroups)
	add(dataset.PropensityWindowsTable, windowCount, windows)

	packages := psql.Insert(dataset.PackagesTable).
		Columns("id", "position", "ad_group_id", "campaign_id", "client_id", "name", "publisher", "cpm", "impressions", "spend")
	for i, p := range raw.Packages {
		packages = packages.Values(p.ID, i, p.AdGroupID, p.CampaignID, p.ClientID, p.Name, p.Publisher, p.CPM, p.Impressions, p.Spend)
	}
	add(dataset.PackagesTable, len(raw.Packages), packages)

	deals := psql.Insert(dataset.DealsTable).
		Columns("id", "position", "package_id", "name", "type", "cpm", "impressions_bought")
	for i, d := range raw.Deals {
		deals = deals.Values(d.ID, i, d.PackageID, d.Name, d.Type, d.CPM, d.ImpressionsBought)
	}
	add(dataset.DealsTable, len(raw.Deals), deals)

	creatives := psql.Insert(dataset.CreativesTable).
		Columns("id", "position", "deal_id", "name", "format", "size", "impressions", "spend", "vtr", "completion_rate", "ctr")
	for i, c := range raw.Creatives {
		creatives = creatives.Values(c.ID, i, c.DealID, c.Name, c.Format, nullableString(c.Size), c.Impressions, c.Spend,
			c.VTR, c.CompletionRate, c.CTR)
	}
	add(dataset.CreativesTable, len(raw.Creatives), creatives)

	geos := psql.Insert(dataset.GeosTable).
		Columns("id", "position", "creative_id", "client_id", "dma_code", "dma_name", "impressions")
	for i, g := range raw.Geos {
		geos = geos.Values(g.ID, i, g.CreativeID, g.ClientID, g.DMACode, g.DMAName, g.Impressions)
	}
	add(dataset.GeosTable, len(raw.Geos), geos)

	return out
}

type sqlizer interface {
	ToSql() (string, []interface{}, error)
}

func execBuilder(ctx context.Context, exec postgres.Execer, builder sqlizer) error {
	query, args, err := builder.ToSql()
	if err != nil {
		return err
	}
	_, err = exec.ExecContext(ctx, query, args...)
	return err
}

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
