// Package scrape provides the pipeline that turns FantasyPros matchup
// listings into player records.
//
// # Manager
//
// The Manager coordinates a run:
//
//  1. Fetch each category listing page
//  2. Extract the player profile links
//  3. Fetch and parse every profile, one after another
//  4. Download each player's photo
//  5. Collect the per-category results
//  6. Export them as CSV
//
// # Basic Usage
//
//	manager := scrape.NewManager(settings, func(event scrape.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	results := manager.Run(ctx, settings.CategoryURLs)
//	if _, err := manager.Export(settings.OutputPath, results); err != nil {
//	    log.Fatal(err)
//	}
//
// # Concurrency
//
// Every category runs on its own worker, bounded by
// settings.MaxConcurrentCategories. Workers share nothing: each hands its
// result to the collecting loop in Run, which sees them in completion order.
// The progress callback is called from several workers at once and must be
// safe for concurrent use.
//
// # Failures
//
// A failed profile page or photo never drops its category, and a failed
// category never stops the run. Only Export reports errors to the caller.
package scrape
