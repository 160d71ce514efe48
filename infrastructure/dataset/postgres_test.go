package dataset

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRow copia valores fixos para os destinos de Scan
type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.values) {
		return errors.New("column count mismatch")
	}
	for i, d := range dest {
		switch target := d.(type) {
		case *string:
			*target = r.values[i].(string)
		case *int:
			*target = r.values[i].(int)
		case *int64:
			*target = r.values[i].(int64)
		case *float64:
			*target = r.values[i].(float64)
		case *sql.NullFloat64:
			if r.values[i] == nil {
				*target = sql.NullFloat64{}
			} else {
				*target = sql.NullFloat64{Float64: r.values[i].(float64), Valid: true}
			}
		default:
			return errors.New("unsupported destination")
		}
	}
	return nil
}

func TestQueries(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{
			name:  "Agência",
			query: mustSQL(t, agencyQuery().ToSql),
			want:  "SELECT id, name FROM agency LIMIT 1",
		},
		{
			name:  "Pacotes carregam ancestrais desnormalizados",
			query: mustSQL(t, packagesQuery().ToSql),
			want:  "SELECT id, ad_group_id, campaign_id, client_id, name, publisher, cpm, impressions, spend FROM packages ORDER BY position ASC, id ASC",
		},
		{
			name:  "Janelas ordenadas por dias",
			query: mustSQL(t, propensityWindowsQuery().ToSql),
			want:  "SELECT ad_group_id, days, score, reach FROM ad_group_propensity_windows ORDER BY ad_group_id ASC, days ASC",
		},
		{
			name:  "Geos",
			query: mustSQL(t, geosQuery().ToSql),
			want:  "SELECT id, creative_id, client_id, dma_code, dma_name, impressions FROM geos ORDER BY position ASC, id ASC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.query)
		})
	}
}

func mustSQL(t *testing.T, toSQL func() (string, []interface{}, error)) string {
	t.Helper()
	query, _, err := toSQL()
	require.NoError(t, err)
	return query
}

func TestScanCreative(t *testing.T) {
	t.Run("CTV com colunas de vídeo preenchidas", func(t *testing.T) {
		row := fakeRow{values: []any{"cr1", "d1", "Spot", "CTV", "", int64(100), 10.0, 95.0, 90.0, nil}}

		creative, err := scanCreative(row)
		require.NoError(t, err)
		require.NotNil(t, creative.VTR)
		assert.Equal(t, 95.0, *creative.VTR)
		assert.Equal(t, 90.0, *creative.CompletionRate)
		assert.Nil(t, creative.CTR)
	})

	t.Run("Display com ctr", func(t *testing.T) {
		row := fakeRow{values: []any{"cr2", "d1", "Banner", "Display", "300x250", int64(100), 1.0, nil, nil, 0.2}}

		creative, err := scanCreative(row)
		require.NoError(t, err)
		assert.Nil(t, creative.VTR)
		assert.Equal(t, "300x250", creative.Size)
		assert.Equal(t, 0.2, *creative.CTR)
	})

	t.Run("Erro de scan", func(t *testing.T) {
		_, err := scanCreative(fakeRow{err: sql.ErrNoRows})
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestAttachWindows(t *testing.T) {
	adGroups := []RawAdGroup{{ID: "ag1"}, {ID: "ag2"}}
	rows := []adGroupWindow{
		{AdGroupID: "ag1", Window: RawPropensityWindow{Days: 10}},
		{AdGroupID: "ag2", Window: RawPropensityWindow{Days: 10}},
		{AdGroupID: "ag1", Window: RawPropensityWindow{Days: 30}},
		{AdGroupID: "ghost", Window: RawPropensityWindow{Days: 10}},
	}

	attachWindows(adGroups, rows)

	assert.Equal(t, []RawPropensityWindow{{Days: 10}, {Days: 30}}, adGroups[0].PropensityWindows)
	assert.Len(t, adGroups[1].PropensityWindows, 1)
}
