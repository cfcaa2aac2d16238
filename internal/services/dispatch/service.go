package dispatch

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/autoweb/autoweb/internal/browser"
	"github.com/autoweb/autoweb/internal/common/clock"
	"github.com/autoweb/autoweb/internal/registry"
	"github.com/autoweb/autoweb/internal/services/results"
	"github.com/autoweb/autoweb/pkg/config"
	"github.com/autoweb/autoweb/pkg/engines"
	"github.com/autoweb/autoweb/pkg/models"
)

type Config interface {
	config.BrowserConfig
	config.StorageConfig
}

// Dispatcher routes one command to the browser instance it names and
// appends the outcome to the result log. Validation and lookup failures
// are rejected up front and never logged, only attempted browser work
// produces a result.
type Dispatcher interface {
	Navigate(ctx context.Context, instanceID, pageURL string) error
	Search(ctx context.Context, instanceID, engine, query string) error
	FillForm(ctx context.Context, instanceID, formURL string, fields map[string]string) error
	Extract(ctx context.Context, instanceID string, selectors map[string]string) (map[string]string, error)
	Screenshot(ctx context.Context, instanceID, filename string) (string, string, error)
	Click(ctx context.Context, instanceID, selector string) error
	Scroll(ctx context.Context, instanceID, direction string) error
	PageSource(ctx context.Context, instanceID string) (string, error)
}

type DispatchService struct {
	reg     registry.SessionRegistry
	log     results.ResultLog
	catalog engines.EnginesCatalog
	fs      afero.Fs
	cfg     Config
	now     clock.NowFunc
	l       *zap.SugaredLogger
}

func NewDispatchService(
	reg registry.SessionRegistry,
	log results.ResultLog,
	catalog engines.EnginesCatalog,
	fs afero.Fs,
	cfg Config,
	now clock.NowFunc,
	l *zap.Logger,
) *DispatchService {
	return &DispatchService{
		reg:     reg,
		log:     log,
		catalog: catalog,
		fs:      fs,
		cfg:     cfg,
		now:     now,
		l:       l.Sugar(),
	}
}

func (s *DispatchService) Navigate(ctx context.Context, instanceID, pageURL string) error {
	if err := validateURL(pageURL); err != nil {
		return err
	}

	_, err := s.execute(ctx, instanceID, models.ActionNavigation, fmt.Sprintf("Navigate to %s", pageURL),
		func(ctx context.Context, drv browser.Driver) (string, error) {
			return pageURL, drv.Navigate(ctx, pageURL)
		})
	return err
}

func (s *DispatchService) Search(ctx context.Context, instanceID, engine, query string) error {
	if query == "" {
		return models.NewBadRequestError(errors.New("query is required"))
	}
	eng, ok := s.catalog.Lookup(engine)
	if !ok {
		return models.NewBadRequestError(
			errors.Errorf("unknown search engine %q, supported: %s", engine, strings.Join(s.catalog.Names(), ", ")))
	}

	_, err := s.execute(ctx, instanceID, models.ActionSearch, fmt.Sprintf("Search %q", query),
		func(ctx context.Context, drv browser.Driver) (string, error) {
			return eng.URL, drv.Search(ctx, eng.URL, eng.QueryInput, query)
		})
	return err
}

func (s *DispatchService) FillForm(ctx context.Context, instanceID, formURL string, fields map[string]string) error {
	if err := validateURL(formURL); err != nil {
		return err
	}
	if len(fields) == 0 {
		return models.NewBadRequestError(errors.New("form_data is required"))
	}

	_, err := s.execute(ctx, instanceID, models.ActionFormFill, fmt.Sprintf("Fill form at %s", formURL),
		func(ctx context.Context, drv browser.Driver) (string, error) {
			if err := drv.Navigate(ctx, formURL); err != nil {
				return "", err
			}
			return fmt.Sprintf("%d fields filled", len(fields)), drv.FillForm(ctx, fields)
		})
	return err
}

func (s *DispatchService) Extract(ctx context.Context, instanceID string, selectors map[string]string) (map[string]string, error) {
	if len(selectors) == 0 {
		return nil, models.NewBadRequestError(errors.New("selectors are required"))
	}

	var data map[string]string
	_, err := s.execute(ctx, instanceID, models.ActionExtract, "Extract data",
		func(ctx context.Context, drv browser.Driver) (string, error) {
			var err error
			data, err = drv.Extract(ctx, selectors)
			return fmt.Sprintf("%d values extracted", len(data)), err
		})
	return data, err
}

func (s *DispatchService) Screenshot(ctx context.Context, instanceID, filename string) (string, string, error) {
	filename, err := screenshotFilename(filename, s.now())
	if err != nil {
		return "", "", err
	}
	path := filepath.Join(s.cfg.ScreenshotDir(), filename)

	detail, err := s.execute(ctx, instanceID, models.ActionScreenshot, fmt.Sprintf("Screenshot %s", filename),
		func(ctx context.Context, drv browser.Driver) (string, error) {
			img, err := drv.Screenshot(ctx)
			if err != nil {
				return "", err
			}
			if err := s.fs.MkdirAll(s.cfg.ScreenshotDir(), 0o755); err != nil {
				return "", models.NewInternalServerError(err)
			}
			if err := afero.WriteFile(s.fs, path, img, 0o644); err != nil {
				return "", models.NewInternalServerError(err)
			}
			return path, nil
		})
	if err != nil {
		return "", "", err
	}
	return filename, detail, nil
}

func (s *DispatchService) Click(ctx context.Context, instanceID, selector string) error {
	if selector == "" {
		return models.NewBadRequestError(errors.New("selector is required"))
	}

	_, err := s.execute(ctx, instanceID, models.ActionClick, fmt.Sprintf("Click %s", selector),
		func(ctx context.Context, drv browser.Driver) (string, error) {
			return selector, drv.Click(ctx, selector)
		})
	return err
}

func (s *DispatchService) Scroll(ctx context.Context, instanceID, direction string) error {
	if direction == "" {
		direction = browser.ScrollDown
	}
	if direction != browser.ScrollUp && direction != browser.ScrollDown {
		return models.NewBadRequestError(errors.Errorf("invalid scroll direction %q", direction))
	}

	_, err := s.execute(ctx, instanceID, models.ActionScroll, fmt.Sprintf("Scroll %s", direction),
		func(ctx context.Context, drv browser.Driver) (string, error) {
			return direction, drv.Scroll(ctx, direction)
		})
	return err
}

func (s *DispatchService) PageSource(ctx context.Context, instanceID string) (string, error) {
	var src string
	_, err := s.execute(ctx, instanceID, models.ActionSource, "Get page source",
		func(ctx context.Context, drv browser.Driver) (string, error) {
			var err error
			src, err = drv.PageSource(ctx)
			return fmt.Sprintf("%d bytes", len(src)), err
		})
	return src, err
}

func (s *DispatchService) execute(
	ctx context.Context,
	instanceID string,
	typ models.ActionType,
	name string,
	fn func(context.Context, browser.Driver) (string, error),
) (string, error) {
	sess, err := s.reg.Get(instanceID)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.ActionTimeout())
	defer cancel()

	start := time.Now()
	detail, err := fn(ctx, sess.Driver())

	res := models.Result{
		Name:       name,
		Type:       typ,
		InstanceID: instanceID,
		Duration:   time.Since(start).Seconds(),
		Timestamp:  s.now(),
	}
	if err != nil {
		res.Status = models.StatusError
		res.Detail = err.Error()
		s.log.Record(res)
		s.l.Warnw("action failed",
			zap.String("instance_id", instanceID), zap.String("action", name), zap.Error(err))
		return "", driverError(err)
	}

	res.Status = models.StatusSuccess
	res.Detail = detail
	s.log.Record(res)
	return detail, nil
}

// driverError maps a failed browser call onto the HTTP error taxonomy,
// coded errors pass through untouched.
func driverError(err error) error {
	var e models.ErrorWithCode
	if errors.As(err, &e) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return models.NewTimeoutError(err)
	}
	if errors.Is(err, context.Canceled) {
		return models.NewCancelledError(err)
	}
	return models.NewDriverError(err)
}

func validateURL(raw string) error {
	if raw == "" {
		return models.NewBadRequestError(errors.New("url is required"))
	}
	u, err := url.Parse(raw)
	if err != nil {
		return models.NewBadRequestError(errors.Wrapf(err, "invalid url %q", raw))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return models.NewBadRequestError(errors.Errorf("unsupported url scheme %q", u.Scheme))
	}
	return nil
}

func screenshotFilename(filename string, ts time.Time) (string, error) {
	if filename == "" {
		return fmt.Sprintf("screenshot_%s.png", ts.Format("20060102_150405")), nil
	}
	if filename != filepath.Base(filename) {
		return "", models.NewBadRequestError(errors.Errorf("invalid filename %q", filename))
	}
	if !strings.HasSuffix(filename, ".png") {
		filename += ".png"
	}
	return filename, nil
}
