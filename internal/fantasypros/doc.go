// Package fantasypros parses FantasyPros matchup listings and player
// profile pages.
//
// The package handles two page types:
//
//  1. Matchup listing pages, which link to every player of one position
//  2. Player profile pages, which carry the name, position, college, rank
//     and photo of one player
//
// # Listing Pages
//
//	links, err := fantasypros.ParseListing(listingHTML, "https://www.fantasypros.com")
//	for _, link := range links {
//	    fmt.Println(link) // e.g. "https://www.fantasypros.com/nfl/players/patrick-mahomes.php"
//	}
//
// # Profile Pages
//
//	page, err := fantasypros.ParsePlayerPage(profileHTML)
//	if errors.Is(err, fantasypros.ErrNotPlayerPage) {
//	    // not a profile, skip it
//	}
//	fmt.Printf("%s (%s) #%s\n", page.Name, page.Position, page.Rank)
//
// Both parsers work on fixed CSS classes of the site markup and use goquery
// for the lookups.
package fantasypros
