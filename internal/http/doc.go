// Package http provides the HTTP client used to fetch FantasyPros pages and
// player photos.
//
// # Basic Usage
//
//	client := http.NewClient("fpscrape")
//
//	// Fetch and parse a profile page
//	doc, err := client.GetDocument(ctx, "https://www.fantasypros.com/nfl/players/patrick-mahomes.php")
//
//	// Download a photo with progress callback
//	client.DownloadFile(ctx, photoURL, "images/photo.png", func(written, total int64) {
//	    fmt.Printf("%d bytes\n", written)
//	})
//
// Every non-200 response is returned as an error. There is no retry: callers
// decide whether a failed fetch is fatal.
package http
