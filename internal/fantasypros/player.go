package fantasypros

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	// ErrNotPlayerPage is returned when a page lacks the profile heading block.
	//
	// Listing pages link to a few pages (team pages, news) that are not
	// player profiles; these are skipped rather than treated as failures.
	ErrNotPlayerPage = errors.New("not a player profile page")

	// ErrMissingPhoto is returned when a profile page has no photo source.
	ErrMissingPhoto = errors.New("player photo not found")
)

// Selectors for the fixed profile page markup.
const (
	headingSelector = "div.primary-heading-subheading"
	bioSelector     = "span.bio-detail"
	detailSelector  = "div.clearfix.detail"
	rankSelector    = "span.pull-right"
	photoSelector   = "img.side-nav-player-photo-radius-8"

	collegePrefix = "College:"
)

// PlayerPage holds the fields read from one player profile page.
// All text fields are trimmed.
type PlayerPage struct {
	Name     string
	Position string
	Team     string
	Rank     string
	PhotoURL string
}

// ParsePlayerPage extracts player info from a FantasyPros profile page HTML.
//
// This method performs the following steps:
//  1. Finds the heading block; its h1 is the name and its h2 the position
//  2. Reads the team from the first "College:" bio detail
//  3. Reads the rank from the first detail block's pull-right span
//  4. Reads the photo URL from the profile thumbnail
//
// Returns ErrNotPlayerPage if the heading block, its h1 or its h2 is
// missing or blank, and ErrMissingPhoto if the thumbnail or its src
// attribute is missing. Team and rank are optional and default to "".
func ParsePlayerPage(htmlContent string) (*PlayerPage, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse player HTML: %w", err)
	}
	return ExtractPlayer(doc)
}

// ExtractPlayer is ParsePlayerPage for an already parsed document.
func ExtractPlayer(doc *goquery.Document) (*PlayerPage, error) {
	heading := doc.Find(headingSelector).First()
	if heading.Length() == 0 {
		return nil, ErrNotPlayerPage
	}

	name := strings.TrimSpace(heading.Find("h1").First().Text())
	position := strings.TrimSpace(heading.Find("h2").First().Text())
	if name == "" || position == "" {
		return nil, ErrNotPlayerPage
	}

	photoURL, ok := doc.Find(photoSelector).First().Attr("src")
	if !ok {
		return nil, ErrMissingPhoto
	}

	return &PlayerPage{
		Name:     name,
		Position: position,
		Team:     extractCollege(doc),
		Rank:     extractRank(doc),
		PhotoURL: photoURL,
	}, nil
}

// extractCollege returns the first "College:" bio detail without its label.
func extractCollege(doc *goquery.Document) string {
	var college string
	doc.Find(bioSelector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := s.Text()
		if !strings.HasPrefix(text, collegePrefix) {
			return true
		}
		college = strings.TrimSpace(strings.TrimPrefix(text, collegePrefix+" "))
		return false
	})
	return college
}

// extractRank returns the expert consensus rank shown as "#N" in the first
// detail block, or "" when the block or its rank span is absent.
func extractRank(doc *goquery.Document) string {
	rank := doc.Find(detailSelector).First().Find(rankSelector).First()
	if rank.Length() == 0 {
		return ""
	}
	return strings.TrimSpace(strings.ReplaceAll(rank.Text(), "#", ""))
}
