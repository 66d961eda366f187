package fantasypros

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PlayerLinkSelector matches the player-name anchors of a matchup listing.
const PlayerLinkSelector = "a.player-name"

// ParseListing extracts player profile URLs from a matchup listing page.
//
// Every anchor matching PlayerLinkSelector contributes one URL, in document
// order, built by concatenating baseURL and the anchor's href:
//
//	<a class="player-name" href="/nfl/players/a.php">  -> baseURL + "/nfl/players/a.php"
//	<a class="player-name" href="#">                   -> skipped
//	<a class="player-name">                            -> skipped
//
// The href is not normalized and duplicates are kept.
func ParseListing(htmlContent, baseURL string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse listing HTML: %w", err)
	}
	return ListingLinks(doc, baseURL), nil
}

// ListingLinks is ParseListing for an already parsed document.
func ListingLinks(doc *goquery.Document, baseURL string) []string {
	var links []string
	doc.Find(PlayerLinkSelector).Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok || href == "#" {
			return
		}
		links = append(links, baseURL+href)
	})
	return links
}
