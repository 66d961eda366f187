package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/handiism/fpscrape/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	results := []model.CategoryResult{
		{
			{Name: "Patrick Mahomes", Team: "Texas Tech", Position: "QB", Rank: "1", PhotoFile: "Texas Tech_QB_1_Patrick Mahomes.png"},
			{Name: "Josh Allen", Team: "Wyoming", Position: "QB", Rank: "2"},
		},
		{},
		{
			{Name: "Harrison Butker", Team: "Georgia Tech", Position: "K", Rank: ""},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, results))

	want := "Position,ECR,Name,Team,Photo\r\n" +
		"QB,1,Patrick Mahomes,Texas Tech,Texas Tech_QB_1_Patrick Mahomes.png\r\n" +
		"QB,2,Josh Allen,Wyoming,\r\n" +
		"K,,Harrison Butker,Georgia Tech,\r\n"
	assert.Equal(t, want, buf.String())
}

func TestWrite_QuotesDelimiter(t *testing.T) {
	results := []model.CategoryResult{
		{{Name: "Smith, Jr.", Team: "Miami (FL)", Position: "WR", Rank: "30"}},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, results))

	assert.Contains(t, buf.String(), `WR,30,"Smith, Jr.",Miami (FL),`)
}

func TestWriteCSV_Truncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "players.csv")
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte("old data\n"), 100), 0644))

	err := WriteCSV(path, []model.CategoryResult{{{Name: "A", Position: "TE", Rank: "3", Team: "B"}}})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Position,ECR,Name,Team,Photo\r\nTE,3,A,B,\r\n", string(data))
}

func TestWriteCSV_BadPath(t *testing.T) {
	err := WriteCSV(filepath.Join(t.TempDir(), "missing", "players.csv"), []model.CategoryResult{{}})
	assert.Error(t, err)
}
