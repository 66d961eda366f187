package fantasypros

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseURL = "https://www.fantasypros.com"

func TestParseListing(t *testing.T) {
	tests := []struct {
		name string
		html string
		want []string
	}{
		{
			name: "placeholder href skipped",
			html: `<html><body>
				<a class="player-name" href="/nfl/players/a.php">A</a>
				<a class="player-name" href="#">B</a>
			</body></html>`,
			want: []string{baseURL + "/nfl/players/a.php"},
		},
		{
			name: "missing href skipped",
			html: `<a class="player-name">No link</a><a class="player-name" href="/nfl/players/b.php">B</a>`,
			want: []string{baseURL + "/nfl/players/b.php"},
		},
		{
			name: "document order kept and duplicates not removed",
			html: `<table>
				<tr><td><a class="player-name" href="/nfl/players/c.php">C</a></td></tr>
				<tr><td><a class="player-name" href="/nfl/players/a.php">A</a></td></tr>
				<tr><td><a class="player-name" href="/nfl/players/c.php">C</a></td></tr>
			</table>`,
			want: []string{
				baseURL + "/nfl/players/c.php",
				baseURL + "/nfl/players/a.php",
				baseURL + "/nfl/players/c.php",
			},
		},
		{
			name: "other anchors ignored",
			html: `<a href="/nfl/news.php">News</a><a class="team-name" href="/nfl/teams/kc.php">KC</a>`,
			want: nil,
		},
		{
			name: "href concatenated without normalization",
			html: `<a class="player-name" href="nfl/players/d.php?x=1">D</a>`,
			want: []string{baseURL + "nfl/players/d.php?x=1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseListing(tt.html, baseURL)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

const mahomesPage = `<html><body>
<div class="primary-heading-subheading">
	<h1>
		Patrick Mahomes
	</h1>
	<h2> QB </h2>
</div>
<img class="side-nav-player-photo-radius-8" src="https://images.fantasypros.com/players/mahomes.png">
<div class="bio">
	<span class="bio-detail">Age: 29</span>
	<span class="bio-detail">College: Texas Tech</span>
	<span class="bio-detail">College: Somewhere Else</span>
</div>
<div class="clearfix detail"><span class="label">Week ECR</span><span class="pull-right"> #1 </span></div>
<div class="clearfix detail"><span class="pull-right">#9</span></div>
</body></html>`

func TestParsePlayerPage_Complete(t *testing.T) {
	page, err := ParsePlayerPage(mahomesPage)
	require.NoError(t, err)

	assert.Equal(t, &PlayerPage{
		Name:     "Patrick Mahomes",
		Position: "QB",
		Team:     "Texas Tech",
		Rank:     "1",
		PhotoURL: "https://images.fantasypros.com/players/mahomes.png",
	}, page)
}

func TestParsePlayerPage_NotAProfile(t *testing.T) {
	tests := []struct {
		name string
		html string
	}{
		{"no heading block", `<html><body><h1>Team page</h1><img class="side-nav-player-photo-radius-8" src="x.png"></body></html>`},
		{"heading without h2", `<div class="primary-heading-subheading"><h1>Name</h1></div>`},
		{"blank name", `<div class="primary-heading-subheading"><h1>  </h1><h2>QB</h2></div>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := ParsePlayerPage(tt.html)
			assert.Nil(t, page)
			assert.True(t, errors.Is(err, ErrNotPlayerPage), "got %v", err)
		})
	}
}

func TestParsePlayerPage_MissingPhoto(t *testing.T) {
	tests := []struct {
		name string
		html string
	}{
		{"no image", `<div class="primary-heading-subheading"><h1>A</h1><h2>RB</h2></div>`},
		{"image without src", `<div class="primary-heading-subheading"><h1>A</h1><h2>RB</h2></div><img class="side-nav-player-photo-radius-8">`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePlayerPage(tt.html)
			assert.ErrorIs(t, err, ErrMissingPhoto)
		})
	}
}

func TestParsePlayerPage_College(t *testing.T) {
	tests := []struct {
		name string
		bio  string
		want string
	}{
		{"no bio spans", ``, ""},
		{"no college span", `<span class="bio-detail">Height: 6'2"</span>`, ""},
		{"first college wins", `<span class="bio-detail">College: LSU</span><span class="bio-detail">College: Ohio State</span>`, "LSU"},
		{"prefix must lead", `<span class="bio-detail">Former College: LSU</span>`, ""},
		{"label without space kept", `<span class="bio-detail">College:LSU</span>`, "College:LSU"},
		{"surrounding whitespace trimmed", `<span class="bio-detail">College:   Notre Dame  </span>`, "Notre Dame"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := `<div class="primary-heading-subheading"><h1>A</h1><h2>WR</h2></div>` +
				`<img class="side-nav-player-photo-radius-8" src="a.png">` + tt.bio

			page, err := ParsePlayerPage(html)
			require.NoError(t, err)
			assert.Equal(t, tt.want, page.Team)
		})
	}
}

func TestParsePlayerPage_Rank(t *testing.T) {
	tests := []struct {
		name   string
		detail string
		want   string
	}{
		{"no detail block", ``, ""},
		{"detail block without rank", `<div class="clearfix detail"><span>Week ECR</span></div>`, ""},
		{"rank only in second block", `<div class="clearfix detail"></div><div class="clearfix detail"><span class="pull-right">#4</span></div>`, ""},
		{"all hashes removed", `<div class="clearfix detail"><span class="pull-right">##12#</span></div>`, "12"},
		{"no hash", `<div class="clearfix detail"><span class="pull-right"> 7 </span></div>`, "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := `<div class="primary-heading-subheading"><h1>A</h1><h2>TE</h2></div>` +
				`<img class="side-nav-player-photo-radius-8" src="a.png">` + tt.detail

			page, err := ParsePlayerPage(html)
			require.NoError(t, err)
			assert.Equal(t, tt.want, page.Rank)
		})
	}
}
