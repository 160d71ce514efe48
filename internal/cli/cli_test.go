package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/agency-dashboard/internal/domain"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DATASET_SOURCE", "embedded")

	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))

	err := cmd.Execute()
	return out.String(), err
}

func TestValidateCmd(t *testing.T) {
	t.Run("Dataset embutido é válido", func(t *testing.T) {
		out, err := execute(t, "", "validate")
		require.NoError(t, err)
		assert.Contains(t, out, `Dataset "Northstar Media" is valid`)
		assert.Contains(t, out, "Ad Group")
		assert.Contains(t, out, "Geo")
	})

	t.Run("Arquivo com referência quebrada lista as violações", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.json")
		require.NoError(t, os.WriteFile(path, []byte(`{
			"agency": {"id": "a", "name": "A"},
			"clients": [{"id": "c1", "name": "C1"}],
			"campaigns": [{"id": "x1", "clientId": "ghost", "name": "X1"}]
		}`), 0o600))

		out, err := execute(t, "", "validate", "--file", path)
		require.Error(t, err)
		assert.Contains(t, out, "x1")
	})
}

func TestShowCmd(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
		want    []string
	}{
		{
			name: "Raiz lista os clientes",
			args: []string{"show"},
			want: []string{"[Northstar Media]", "Clients", "Kayak"},
		},
		{
			name: "Ad group sem pacotes mostra a mensagem de vazio",
			args: []string{"show", "/manager/kayak/kayak-c1/kayak-c1-ag2"},
			want: []string{"0:Northstar Media > 1:Kayak > 2:Summer Getaways > [Weekend Planners]", "No packages for this ad group"},
		},
		{
			name: "Caminho relativo é aceito",
			args: []string{"show", "kayak/kayak-c2"},
			want: []string{"[Fall Deals]"},
		},
		{
			name:    "Cliente fantasma",
			args:    []string{"show", "/manager/ghost-client"},
			wantErr: ErrPathNotFound,
			want:    []string{"[ghost-client]", "Not found", "Nearest valid ancestor: /manager"},
		},
		{
			name: "Saída JSON",
			args: []string{"show", "/manager/kayak", "--json"},
			want: []string{`"path": "/manager/kayak"`, `"child_level": "campaign"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "", tt.args...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			for _, want := range tt.want {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestBrowseCmd(t *testing.T) {
	script := strings.Join([]string{
		"open 1",
		"where",
		"up",
		"back",
		"where",
		"open kayak-c2",
		"where",
		"crumb 0",
		"where",
		"open 99",
		"dance",
		"quit",
	}, "\n")

	out, err := execute(t, script, "browse")
	require.NoError(t, err)

	assert.Equal(t, []string{"/manager/kayak", "/manager/kayak", "/manager/kayak/kayak-c2", "/manager"}, wherePaths(out))
	assert.Contains(t, out, "row not found")
	assert.Contains(t, out, "error: dance: unknown command")
}

func TestBrowseCmd_Leaf(t *testing.T) {
	leaf := "/manager/kayak/kayak-c1/kayak-c1-ag1/kayak-c1-ag1-p1/kayak-c1-ag1-p1-d1/kayak-c1-ag1-p1-d1-cr1/kayak-c1-ag1-p1-d1-cr1-g1"

	out, err := execute(t, "open 1\nup\nwhere\n", "browse", leaf)
	require.NoError(t, err)
	assert.Contains(t, out, "[New York]")
	assert.Contains(t, out, "error: ")
	assert.Equal(t, []string{"/manager/kayak/kayak-c1/kayak-c1-ag1/kayak-c1-ag1-p1/kayak-c1-ag1-p1-d1/kayak-c1-ag1-p1-d1-cr1"}, wherePaths(out))
}

// wherePaths extrai as linhas impressas pelo comando where
func wherePaths(out string) []string {
	var paths []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimPrefix(line, "> ")
		if strings.HasPrefix(line, domain.ManagerRoot) && !strings.Contains(line, " ") {
			paths = append(paths, line)
		}
	}
	return paths
}

func TestFormatBreadcrumbs(t *testing.T) {
	tests := []struct {
		name   string
		crumbs []domain.Crumb
		want   string
	}{
		{
			name:   "Raiz",
			crumbs: []domain.Crumb{{Label: "Northstar Media"}},
			want:   "[Northstar Media]",
		},
		{
			name: "Ancestrais numerados",
			crumbs: []domain.Crumb{
				{Label: "Northstar Media", Path: "/manager"},
				{Label: "Kayak", Path: "/manager/kayak"},
				{Label: "Summer Getaways"},
			},
			want: "0:Northstar Media > 1:Kayak > [Summer Getaways]",
		},
		{
			name: "Segmentos não resolvidos",
			crumbs: []domain.Crumb{
				{Label: "Northstar Media", Path: "/manager"},
				{Label: "ghost"},
				{Label: "x"},
			},
			want: "0:Northstar Media > ghost? > [x]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatBreadcrumbs(tt.crumbs))
		})
	}
}
