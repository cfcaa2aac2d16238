package scrape

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/autoweb/autoweb/internal/browser"
	"github.com/autoweb/autoweb/internal/common/clock"
	"github.com/autoweb/autoweb/internal/registry"
	"github.com/autoweb/autoweb/internal/services/results"
	"github.com/autoweb/autoweb/pkg/config"
	"github.com/autoweb/autoweb/pkg/models"
)

const defaultTableSelector = "table"

type Link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

type Table struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// Scraper pulls structured data out of the page an instance currently
// has open, optionally navigating to a fresh URL first.
type Scraper interface {
	Table(ctx context.Context, instanceID, pageURL, selector string) (*Table, error)
	Links(ctx context.Context, instanceID, pageURL string) ([]Link, error)
}

type ScrapeService struct {
	reg registry.SessionRegistry
	log results.ResultLog
	cfg config.BrowserConfig
	now clock.NowFunc
	l   *zap.SugaredLogger
}

func NewScrapeService(
	reg registry.SessionRegistry,
	log results.ResultLog,
	cfg config.BrowserConfig,
	now clock.NowFunc,
	l *zap.Logger,
) *ScrapeService {
	return &ScrapeService{
		reg: reg,
		log: log,
		cfg: cfg,
		now: now,
		l:   l.Sugar(),
	}
}

func (s *ScrapeService) Table(ctx context.Context, instanceID, pageURL, selector string) (*Table, error) {
	if selector == "" {
		selector = defaultTableSelector
	}

	var table *Table
	err := s.execute(ctx, instanceID, pageURL, "Scrape table",
		func(doc *goquery.Document) (string, error) {
			sel := doc.Find(selector).First()
			if sel.Length() == 0 {
				return "", models.NewNotFoundError(errors.Errorf("no table matches selector %q", selector))
			}
			table = parseTable(sel)
			return fmt.Sprintf("%d rows", len(table.Rows)), nil
		})
	return table, err
}

func (s *ScrapeService) Links(ctx context.Context, instanceID, pageURL string) ([]Link, error) {
	var links []Link
	err := s.execute(ctx, instanceID, pageURL, "Scrape links",
		func(doc *goquery.Document) (string, error) {
			links = parseLinks(doc)
			return fmt.Sprintf("%d links", len(links)), nil
		})
	return links, err
}

// execute loads the page source (after an optional navigation), parses
// it and hands the document to fn, logging the outcome as one scrape
// result.
func (s *ScrapeService) execute(
	ctx context.Context,
	instanceID, pageURL, name string,
	fn func(doc *goquery.Document) (string, error),
) error {
	if pageURL != "" {
		if err := validateURL(pageURL); err != nil {
			return err
		}
		name = fmt.Sprintf("%s at %s", name, pageURL)
	}

	sess, err := s.reg.Get(instanceID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.ActionTimeout())
	defer cancel()

	start := time.Now()
	detail, err := s.scrape(ctx, sess.Driver(), pageURL, fn)

	res := models.Result{
		Name:       name,
		Type:       models.ActionScrape,
		InstanceID: instanceID,
		Duration:   time.Since(start).Seconds(),
		Timestamp:  s.now(),
	}
	if err != nil {
		res.Status = models.StatusError
		res.Detail = err.Error()
		s.log.Record(res)
		s.l.Warnw("scrape failed", zap.String("instance_id", instanceID), zap.Error(err))
		return scrapeError(err)
	}

	res.Status = models.StatusSuccess
	res.Detail = detail
	s.log.Record(res)
	return nil
}

func (s *ScrapeService) scrape(
	ctx context.Context,
	drv browser.Driver,
	pageURL string,
	fn func(doc *goquery.Document) (string, error),
) (string, error) {
	if pageURL != "" {
		if err := drv.Navigate(ctx, pageURL); err != nil {
			return "", err
		}
	}

	src, err := drv.PageSource(ctx)
	if err != nil {
		return "", err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		return "", errors.Wrap(err, "failed to parse page source")
	}

	return fn(doc)
}

func parseTable(sel *goquery.Selection) *Table {
	table := &Table{}

	sel.Find("th").Each(func(_ int, th *goquery.Selection) {
		table.Headers = append(table.Headers, strings.TrimSpace(th.Text()))
	})

	sel.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var row []string
		tr.Find("td").Each(func(_ int, td *goquery.Selection) {
			row = append(row, strings.TrimSpace(td.Text()))
		})
		if len(row) > 0 {
			table.Rows = append(table.Rows, row)
		}
	})

	// headerless tables promote the first row
	if len(table.Headers) == 0 && len(table.Rows) > 0 {
		table.Headers = table.Rows[0]
		table.Rows = table.Rows[1:]
	}
	return table
}

func parseLinks(doc *goquery.Document) []Link {
	links := []Link{}
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href := strings.TrimSpace(a.AttrOr("href", ""))
		if href == "" || strings.HasPrefix(href, "javascript:") {
			return
		}
		text := strings.TrimSpace(a.Text())
		if text == "" {
			text = href
		}
		links = append(links, Link{Text: text, Href: href})
	})
	return links
}

func scrapeError(err error) error {
	var e models.ErrorWithCode
	if errors.As(err, &e) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return models.NewTimeoutError(err)
	}
	return models.NewDriverError(err)
}

func validateURL(raw string) error {
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		return models.NewBadRequestError(errors.Errorf("invalid url %q", raw))
	}
	return nil
}
