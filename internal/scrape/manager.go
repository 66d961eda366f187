package scrape

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/handiism/fpscrape/internal/config"
	"github.com/handiism/fpscrape/internal/export"
	"github.com/handiism/fpscrape/internal/fantasypros"
	"github.com/handiism/fpscrape/internal/http"
	ioutils "github.com/handiism/fpscrape/internal/io"
	"github.com/handiism/fpscrape/internal/model"
	"golang.org/x/sync/errgroup"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a scrape progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Progress is a snapshot of the counters of a run.
type Progress struct {
	CategoriesDone  int32
	CategoriesTotal int32
	Players         int32
	Photos          int32
	BytesReceived   int64
}

// Manager coordinates a scrape run.
type Manager struct {
	settings     *config.Settings
	httpClient   *http.Client
	imageService *ioutils.ImageService

	categoriesDone  int32
	categoriesTotal int32
	players         int32
	photos          int32
	receivedBytes   int64

	onProgress func(ProgressEvent)
}

// categoryOutcome is what a category worker hands to the collecting loop.
type categoryOutcome struct {
	url    string
	result model.CategoryResult
	err    error
}

// NewManager creates a new scrape Manager.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent)) *Manager {
	return &Manager{
		settings:     settings,
		httpClient:   http.NewClient(settings.UserAgent),
		imageService: ioutils.NewImageService(),
		onProgress:   onProgress,
	}
}

// Run scrapes every category and returns the collected results.
//
// Each category runs on its own worker, at most MaxConcurrentCategories at a
// time. Results are collected in completion order. A category that fails is
// reported and left out; it never stops the others. A result equal to one
// already collected is dropped.
func (m *Manager) Run(ctx context.Context, categoryURLs []string) []model.CategoryResult {
	atomic.StoreInt32(&m.categoriesTotal, int32(len(categoryURLs)))

	if err := ioutils.EnsureDir(m.settings.ImagesPath); err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error creating images directory: %v", err), Level: LevelWarning})
	}

	var g errgroup.Group
	g.SetLimit(max(m.settings.MaxConcurrentCategories, 1))

	// Buffered so workers never wait on the collector.
	outcomes := make(chan categoryOutcome, len(categoryURLs))

	go func() {
		for _, categoryURL := range categoryURLs {
			categoryURL := categoryURL
			g.Go(func() error {
				result, err := m.runCategory(ctx, categoryURL)
				outcomes <- categoryOutcome{url: categoryURL, result: result, err: err}
				return nil
			})
		}
	}()

	var collected []model.CategoryResult
	for range categoryURLs {
		outcome := <-outcomes
		atomic.AddInt32(&m.categoriesDone, 1)

		if outcome.err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error scraping %s: %v", outcome.url, outcome.err), Level: LevelError})
			continue
		}

		if containsResult(collected, outcome.result) {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Skipping duplicate result from %s", outcome.url), Level: LevelVerbose})
			continue
		}

		collected = append(collected, outcome.result)
		m.progress(ProgressEvent{Message: fmt.Sprintf("Finished %s (%d players)", outcome.url, len(outcome.result)), Level: LevelSuccess})
	}

	g.Wait()
	return collected
}

// runCategory runs ScrapeCategory, turning a panic into an error.
func (m *Manager) runCategory(ctx context.Context, categoryURL string) (result model.CategoryResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = nil, fmt.Errorf("panic: %v", r)
		}
	}()
	return m.ScrapeCategory(ctx, categoryURL)
}

// ScrapeCategory scrapes one listing page and every player it links to.
//
// Players are scraped one after another. A player page that cannot be
// fetched or parsed is skipped. The returned error is non-nil only when the
// listing page itself could not be fetched or parsed.
func (m *Manager) ScrapeCategory(ctx context.Context, categoryURL string) (model.CategoryResult, error) {
	m.progress(ProgressEvent{Message: fmt.Sprintf("Fetching listing: %s", categoryURL), Level: LevelInfo})

	doc, err := m.httpClient.GetDocument(ctx, categoryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch listing: %w", err)
	}

	links := fantasypros.ListingLinks(doc, m.settings.BaseURL)
	m.progress(ProgressEvent{Message: fmt.Sprintf("Found %d players on %s", len(links), categoryURL), Level: LevelVerbose})

	result := model.CategoryResult{}
	for _, link := range links {
		record, ok := m.ScrapePlayer(ctx, link)
		if !ok {
			continue
		}
		result = append(result, record)
	}

	return result, nil
}

// ScrapePlayer fetches and parses one profile page and downloads its photo.
//
// The second return value is false when the page could not be fetched, is
// not a player profile, or has no photo. A failed photo download still
// yields a record, with an empty PhotoFile.
func (m *Manager) ScrapePlayer(ctx context.Context, playerURL string) (model.PlayerRecord, bool) {
	doc, err := m.httpClient.GetDocument(ctx, playerURL)
	if err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error fetching %s: %v", playerURL, err), Level: LevelWarning})
		return model.PlayerRecord{}, false
	}

	page, err := fantasypros.ExtractPlayer(doc)
	if err != nil {
		level := LevelWarning
		if errors.Is(err, fantasypros.ErrNotPlayerPage) {
			level = LevelVerbose
		}
		m.progress(ProgressEvent{Message: fmt.Sprintf("Skipping %s: %v", playerURL, err), Level: level})
		return model.PlayerRecord{}, false
	}

	record := model.PlayerRecord{
		Name:     page.Name,
		Team:     page.Team,
		Position: page.Position,
		Rank:     page.Rank,
	}

	filename := model.PhotoFileName(record.Team, record.Position, record.Rank, record.Name)
	if file, ok := m.FetchImage(ctx, page.PhotoURL, filename); ok {
		record.PhotoFile = file
	}

	atomic.AddInt32(&m.players, 1)
	m.progress(ProgressEvent{Message: fmt.Sprintf("Scraped %s (%s)", record.Name, record.Position), Level: LevelVerbose})
	return record, true
}

// FetchImage downloads a photo into the images directory under filename.
//
// It returns the filename and true on success. Any failure is reported as a
// warning and yields false; it is never passed on to the caller.
func (m *Manager) FetchImage(ctx context.Context, photoURL, filename string) (string, bool) {
	destPath := filepath.Join(m.settings.ImagesPath, filename)

	err := m.httpClient.DownloadFile(ctx, photoURL, destPath, m.countBytes())
	if err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error downloading photo %s: %v", filename, err), Level: LevelWarning})
		return "", false
	}

	if m.settings.PhotoResize {
		m.resizePhoto(ctx, destPath)
	}

	atomic.AddInt32(&m.photos, 1)
	return filename, true
}

// resizePhoto shrinks a saved photo in place. On failure the original stays.
func (m *Manager) resizePhoto(ctx context.Context, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	size := m.settings.PhotoMaxSize
	resized, err := m.imageService.ResizeImage(ctx, data, size, size)
	if err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Keeping original photo %s: %v", filepath.Base(path), err), Level: LevelVerbose})
		return
	}

	if err := ioutils.WriteFile(ctx, path, resized); err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error saving resized photo: %v", err), Level: LevelWarning})
	}
}

// countBytes returns a download callback adding to the received byte count.
func (m *Manager) countBytes() func(written, total int64) {
	var last int64
	return func(written, _ int64) {
		atomic.AddInt64(&m.receivedBytes, written-last)
		last = written
	}
}

// Export writes the collected results to path.
//
// An empty run writes nothing and returns false. Otherwise the file is
// created or truncated and true is returned.
func (m *Manager) Export(path string, results []model.CategoryResult) (bool, error) {
	if len(results) == 0 {
		m.progress(ProgressEvent{Message: "No data collected, nothing exported", Level: LevelWarning})
		return false, nil
	}

	if err := export.WriteCSV(path, results); err != nil {
		return false, err
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Wrote %s", path), Level: LevelSuccess})
	return true, nil
}

// Progress returns current run counters.
func (m *Manager) Progress() Progress {
	return Progress{
		CategoriesDone:  atomic.LoadInt32(&m.categoriesDone),
		CategoriesTotal: atomic.LoadInt32(&m.categoriesTotal),
		Players:         atomic.LoadInt32(&m.players),
		Photos:          atomic.LoadInt32(&m.photos),
		BytesReceived:   atomic.LoadInt64(&m.receivedBytes),
	}
}

func containsResult(collected []model.CategoryResult, result model.CategoryResult) bool {
	for _, c := range collected {
		if c.Equal(result) {
			return true
		}
	}
	return false
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
