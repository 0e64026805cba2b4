// Package harvest turns a company seed URL into the labeled text segments
// the scoring core consumes. It crawls the homepage, discovers ATS boards,
// job links and career subpages, scrapes them in parallel, and merges the
// extracted text per source label.
package harvest

import (
	"context"
	"log"
	"net/url"
	"strings"
	"sync"

	"golang.org/x/net/publicsuffix"
	"golang.org/x/sync/errgroup"

	"github.com/dutchdutchdutch/signalscore/internal/crawl"
	"github.com/dutchdutchdutch/signalscore/internal/sources"
)

const (
	// DefaultMaxSatellites bounds how many discovered pages are scraped
	// per harvest, the seed page excluded.
	DefaultMaxSatellites = 5

	// maxConcurrentFetches bounds parallel satellite fetches.
	maxConcurrentFetches = 4

	// minJobLinks is the discovery floor below which the deeper career
	// subpage crawl kicks in.
	minJobLinks = 3

	// maxCareerSubpages bounds the deeper crawl.
	maxCareerSubpages = 5
)

// Target is one URL scheduled for scraping, with the label its text will
// merge into unless content-based detection reassigns it.
type Target struct {
	URL        string
	Label      sources.Label
	Reclassify bool
}

// SourceRecord describes one page that contributed text to the harvest.
type SourceRecord struct {
	URL   string        `json:"url"`
	Label sources.Label `json:"source_type"`
}

// Result is the harvested input for scoring.
type Result struct {
	CompanyName string
	RootDomain  string
	SeedURL     string
	Segments    map[sources.Label]string
	Sources     []SourceRecord
}

// Harvester crawls and assembles scoring input.
type Harvester struct {
	opts          *crawl.Options
	maxSatellites int
	verbose       bool
}

// New builds a harvester. A nil opts uses crawl defaults.
func New(opts *crawl.Options, maxSatellites int) *Harvester {
	if opts == nil {
		opts = crawl.DefaultOptions()
	}
	if maxSatellites <= 0 {
		maxSatellites = DefaultMaxSatellites
	}
	return &Harvester{opts: opts, maxSatellites: maxSatellites, verbose: opts.Verbose}
}

// Harvest crawls outward from a seed URL and returns the labeled segment
// map. Individual page failures are logged and skipped; the harvest fails
// only when the seed URL itself is unusable.
func (h *Harvester) Harvest(ctx context.Context, seedURL string) (*Result, error) {
	rootDomain, companyName, err := Identity(seedURL)
	if err != nil {
		return nil, err
	}

	result := &Result{
		CompanyName: companyName,
		RootDomain:  rootDomain,
		SeedURL:     seedURL,
		Segments:    make(map[sources.Label]string),
	}

	seed, err := crawl.Fetch(ctx, seedURL, h.opts)
	if err != nil {
		return nil, &Error{Message: "seed fetch failed", Cause: err}
	}

	if seed.Text != "" {
		result.Segments[sources.Homepage] = seed.Text
		result.Sources = append(result.Sources, SourceRecord{URL: seedURL, Label: sources.Homepage})
	}

	var targets []Target

	// ATS boards are high-confidence job sources.
	for _, link := range crawl.ExtractATSLinks(seed.HTML) {
		targets = append(targets, Target{URL: link, Label: sources.JobPostingVerified, Reclassify: true})
	}

	jobLinks, err := crawl.FindJobLinks(seed.HTML, seedURL)
	if err != nil {
		jobLinks = nil
	}

	// Too few leads from the homepage: follow career-looking subpages one
	// level down and mine those for job links.
	if len(jobLinks) < minJobLinks {
		jobLinks = h.expandJobLinks(ctx, seed.HTML, seedURL, jobLinks)
	}

	seen := map[string]bool{seedURL: true}
	for _, t := range targets {
		seen[t.URL] = true
	}
	for _, link := range jobLinks {
		if !seen[link] {
			seen[link] = true
			targets = append(targets, Target{URL: link, Label: sources.JobPosting, Reclassify: true})
		}
	}

	if len(targets) > h.maxSatellites {
		targets = targets[:h.maxSatellites]
	}

	h.scrapeInto(ctx, targets, result)
	return result, nil
}

// HarvestURLs scrapes caller-supplied evidence URLs, labeling each by
// content-based detection. Used for manual rescoring.
func (h *Harvester) HarvestURLs(ctx context.Context, urls []string) (*Result, error) {
	if len(urls) == 0 {
		return nil, &Error{Message: "no evidence URLs provided"}
	}

	result := &Result{Segments: make(map[sources.Label]string)}

	var targets []Target
	seen := make(map[string]bool, len(urls))
	for _, u := range urls {
		if !seen[u] {
			seen[u] = true
			targets = append(targets, Target{URL: u, Label: sources.ManualRescore, Reclassify: true})
		}
	}

	h.scrapeInto(ctx, targets, result)
	return result, nil
}

// expandJobLinks runs the deeper crawl: scrape career subpages and collect
// their job links.
func (h *Harvester) expandJobLinks(ctx context.Context, homepageHTML, seedURL string, existing []string) []string {
	subpages, err := crawl.CareerSubpages(homepageHTML, seedURL)
	if err != nil || len(subpages) == 0 {
		return existing
	}
	if len(subpages) > maxCareerSubpages {
		subpages = subpages[:maxCareerSubpages]
	}
	if h.verbose {
		log.Printf("[HARVEST] Expanding job search over %d career subpages", len(subpages))
	}

	var mu sync.Mutex
	merged := append([]string(nil), existing...)
	seen := make(map[string]bool, len(existing))
	for _, link := range existing {
		seen[link] = true
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)
	for _, subpage := range subpages {
		g.Go(func() error {
			page, err := crawl.Fetch(gctx, subpage, h.opts)
			if err != nil {
				return nil
			}
			links, err := crawl.FindJobLinks(page.HTML, subpage)
			if err != nil {
				return nil
			}
			mu.Lock()
			defer mu.Unlock()
			for _, link := range links {
				if !seen[link] {
					seen[link] = true
					merged = append(merged, link)
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	if len(merged) > crawl.MaxJobLinks {
		merged = merged[:crawl.MaxJobLinks]
	}
	return merged
}

// scrapeInto fetches targets in parallel and merges their text into the
// result segments. Fetch failures are skipped.
func (h *Harvester) scrapeInto(ctx context.Context, targets []Target, result *Result) {
	type scraped struct {
		target Target
		text   string
	}

	pages := make([]*scraped, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)
	for i, target := range targets {
		g.Go(func() error {
			page, err := crawl.Fetch(gctx, target.URL, h.opts)
			if err != nil || page.Text == "" {
				if h.verbose {
					log.Printf("[HARVEST] Skipping %s: %v", target.URL, err)
				}
				return nil
			}
			pages[i] = &scraped{target: target, text: page.Text}
			return nil
		})
	}
	_ = g.Wait()

	// Merge in schedule order so repeated harvests produce identical
	// segment maps.
	for _, p := range pages {
		if p == nil {
			continue
		}
		label := p.target.Label
		if p.target.Reclassify {
			// A PM posting on an ATS board should score as a product
			// role, not a generic verified posting. Keep the scheduled
			// label when detection is inconclusive.
			if detected := sources.Detect(p.target.URL, p.text); detected != sources.ManualRescore {
				label = detected
			}
		}
		mergeSegment(result.Segments, label, p.text)
		result.Sources = append(result.Sources, SourceRecord{URL: p.target.URL, Label: label})
	}
}

func mergeSegment(segments map[sources.Label]string, label sources.Label, text string) {
	if existing, ok := segments[label]; ok {
		segments[label] = existing + "\n" + text
	} else {
		segments[label] = text
	}
}

// Identity derives the company's root domain and display name from any of
// its URLs. Subdomains and paths collapse onto the registrable domain:
// careers.acme.co.uk/jobs identifies Acme at acme.co.uk.
func Identity(rawURL string) (rootDomain, companyName string, err error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return "", "", &Error{Message: "invalid seed URL: " + rawURL, Cause: err}
	}

	host := strings.ToLower(parsed.Hostname())
	rootDomain, err = publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		// Bare hosts like "localhost" have no public suffix.
		rootDomain = host
	}

	name := strings.SplitN(rootDomain, ".", 2)[0]
	if name == "" {
		return "", "", &Error{Message: "cannot derive company name from " + rawURL}
	}
	companyName = strings.ToUpper(name[:1]) + name[1:]
	return rootDomain, companyName, nil
}
