package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhotoFileName(t *testing.T) {
	tests := []struct {
		name                       string
		team, position, rank, nick string
		want                       string
	}{
		{"full record", "Texas Tech", "QB", "1", "Patrick Mahomes", "Texas Tech_QB_1_Patrick Mahomes.png"},
		{"no rank", "Alabama", "WR", "", "DeVonta Smith", "Alabama_WR__DeVonta Smith.png"},
		{"no team", "", "K", "12", "Justin Tucker", "_K_12_Justin Tucker.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PhotoFileName(tt.team, tt.position, tt.rank, tt.nick)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, PhotoFileName(tt.team, tt.position, tt.rank, tt.nick), "must be deterministic")
		})
	}
}

func TestPlayerRecord_Row(t *testing.T) {
	rec := PlayerRecord{
		Name:      "Patrick Mahomes",
		Team:      "Texas Tech",
		Position:  "QB",
		Rank:      "1",
		PhotoFile: "Texas Tech_QB_1_Patrick Mahomes.png",
	}

	assert.Equal(t,
		[]string{"QB", "1", "Patrick Mahomes", "Texas Tech", "Texas Tech_QB_1_Patrick Mahomes.png"},
		rec.Row().Strings(),
	)
	assert.True(t, rec.HasPhoto())
	assert.Len(t, ExportHeader, len(rec.Row().Strings()))
}

func TestPlayerRecord_NoPhoto(t *testing.T) {
	rec := PlayerRecord{Name: "A", Position: "RB"}

	assert.False(t, rec.HasPhoto())
	assert.Equal(t, "", rec.Row().PhotoFile)
}

func TestCategoryResult_Equal(t *testing.T) {
	a := CategoryResult{{Name: "A", Position: "QB"}, {Name: "B", Position: "QB"}}
	b := CategoryResult{{Name: "A", Position: "QB"}, {Name: "B", Position: "QB"}}
	reordered := CategoryResult{{Name: "B", Position: "QB"}, {Name: "A", Position: "QB"}}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(reordered))
	assert.False(t, a.Equal(a[:1]))
	assert.True(t, CategoryResult{}.Equal(nil))
}
