package testsuite

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/autoweb/autoweb/internal/browser"
	"github.com/autoweb/autoweb/internal/common/clock"
	"github.com/autoweb/autoweb/internal/services/results"
	"github.com/autoweb/autoweb/pkg/config"
	"github.com/autoweb/autoweb/pkg/engines"
	"github.com/autoweb/autoweb/pkg/models"
)

const (
	SuiteBasic    = "basic"
	SuiteAdvanced = "advanced"
	SuiteAll      = "all"

	pageLoadBudget = 10 * time.Second

	formPageURL = "https://httpbin.org/forms/post"
	probeURL    = "https://example.com"
)

// Runner executes self-check suites against a throwaway browser
// session. Only one run may be active at a time.
type Runner interface {
	Run(suite string) error
	Stop()
	Running() bool
}

type testCase struct {
	name string
	run  func(ctx context.Context, drv browser.Driver) (string, error)
}

type SuiteRunner struct {
	factory browser.Factory
	log     results.ResultLog
	catalog engines.EnginesCatalog
	cfg     config.BrowserConfig
	now     clock.NowFunc
	l       *zap.SugaredLogger

	mtx     sync.Mutex
	running bool
	cancel  context.CancelFunc
}

func NewSuiteRunner(
	factory browser.Factory,
	log results.ResultLog,
	catalog engines.EnginesCatalog,
	cfg config.BrowserConfig,
	now clock.NowFunc,
	l *zap.Logger,
) *SuiteRunner {
	return &SuiteRunner{
		factory: factory,
		log:     log,
		catalog: catalog,
		cfg:     cfg,
		now:     now,
		l:       l.Sugar(),
	}
}

func (r *SuiteRunner) Run(suite string) error {
	cases, err := r.cases(suite)
	if err != nil {
		return err
	}

	r.mtx.Lock()
	if r.running {
		r.mtx.Unlock()
		return models.NewConflictError(errors.New("a test run is already in progress"))
	}
	ctx, cancel := context.WithCancel(context.Background())
	r.running = true
	r.cancel = cancel
	r.mtx.Unlock()

	r.l.Infow("test run started", zap.String("suite", suite), zap.Int("cases", len(cases)))
	go r.runSuite(ctx, suite, cases)
	return nil
}

func (r *SuiteRunner) Stop() {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	if r.cancel != nil {
		r.cancel()
	}
}

func (r *SuiteRunner) Running() bool {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return r.running
}

func (r *SuiteRunner) runSuite(ctx context.Context, suite string, cases []testCase) {
	defer r.finish()

	launchCtx, cancel := context.WithTimeout(ctx, r.cfg.CreateTimeout())
	drv, err := r.factory.Launch(launchCtx, browser.Options{Headless: true})
	cancel()
	if err != nil {
		r.record(fmt.Sprintf("%s suite", suite), time.Now(), errors.Wrap(err, "failed to launch test browser"), "")
		return
	}
	defer func() {
		if err := drv.Close(context.Background()); err != nil {
			r.l.Warnw("failed to close test browser", zap.Error(err))
		}
	}()

	for _, tc := range cases {
		if ctx.Err() != nil {
			r.l.Infow("test run stopped", zap.String("suite", suite))
			return
		}

		caseCtx, cancel := context.WithTimeout(ctx, r.cfg.ActionTimeout())
		start := time.Now()
		detail, err := tc.run(caseCtx, drv)
		cancel()

		r.record(tc.name, start, err, detail)
	}

	r.l.Infow("test run finished", zap.String("suite", suite))
}

func (r *SuiteRunner) finish() {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.running = false
	r.cancel = nil
}

func (r *SuiteRunner) record(name string, start time.Time, err error, detail string) {
	res := models.Result{
		Name:      name,
		Type:      models.ActionTest,
		Status:    models.StatusSuccess,
		Detail:    detail,
		Duration:  time.Since(start).Seconds(),
		Timestamp: r.now(),
	}
	if err != nil {
		res.Status = models.StatusError
		res.Detail = err.Error()
	}
	r.log.Record(res)
}

func (r *SuiteRunner) cases(suite string) ([]testCase, error) {
	switch suite {
	case "", SuiteBasic:
		return r.basicCases(), nil
	case SuiteAdvanced:
		return r.advancedCases(), nil
	case SuiteAll:
		return append(r.basicCases(), r.advancedCases()...), nil
	}
	return nil, models.NewBadRequestError(errors.Errorf("unknown test suite %q", suite))
}

func (r *SuiteRunner) basicCases() []testCase {
	return []testCase{
		{name: "search", run: r.searchCase},
		{name: "form_submission", run: formSubmissionCase},
		{name: "navigation", run: navigationCase},
	}
}

func (r *SuiteRunner) advancedCases() []testCase {
	return []testCase{
		{name: "element_visibility", run: elementVisibilityCase},
		{name: "page_load_time", run: pageLoadTimeCase},
		{name: "page_source", run: pageSourceCase},
	}
}

func (r *SuiteRunner) searchCase(ctx context.Context, drv browser.Driver) (string, error) {
	eng, ok := r.catalog.Lookup("")
	if !ok {
		return "", errors.New("no default search engine configured")
	}
	if err := drv.Search(ctx, eng.URL, eng.QueryInput, "browser automation smoke test"); err != nil {
		return "", err
	}
	src, err := drv.PageSource(ctx)
	if err != nil {
		return "", err
	}
	if len(src) == 0 {
		return "", errors.New("empty results page")
	}
	return eng.URL, nil
}

func formSubmissionCase(ctx context.Context, drv browser.Driver) (string, error) {
	if err := drv.Navigate(ctx, formPageURL); err != nil {
		return "", err
	}
	fields := map[string]string{
		"custname":  "Test User",
		"custtel":   "123-456-7890",
		"custemail": "test@example.com",
		"comments":  "automated smoke test",
	}
	if err := drv.FillForm(ctx, fields); err != nil {
		return "", err
	}
	if err := drv.Click(ctx, `button[type="submit"],input[type="submit"]`); err != nil {
		return "", err
	}
	return fmt.Sprintf("%d fields submitted", len(fields)), nil
}

func navigationCase(ctx context.Context, drv browser.Driver) (string, error) {
	pages := []string{"https://www.python.org", "https://www.python.org/downloads/"}
	for _, page := range pages {
		if err := drv.Navigate(ctx, page); err != nil {
			return "", err
		}
	}
	return fmt.Sprintf("%d pages visited", len(pages)), nil
}

func elementVisibilityCase(ctx context.Context, drv browser.Driver) (string, error) {
	if err := drv.Navigate(ctx, probeURL); err != nil {
		return "", err
	}
	data, err := drv.Extract(ctx, map[string]string{"heading": "h1"})
	if err != nil {
		return "", err
	}
	if data["heading"] == "" {
		return "", errors.New("page heading is not visible")
	}
	return data["heading"], nil
}

func pageLoadTimeCase(ctx context.Context, drv browser.Driver) (string, error) {
	start := time.Now()
	if err := drv.Navigate(ctx, probeURL); err != nil {
		return "", err
	}
	elapsed := time.Since(start)
	if elapsed > pageLoadBudget {
		return "", errors.Errorf("page load took %v, budget is %v", elapsed, pageLoadBudget)
	}
	return fmt.Sprintf("loaded in %v", elapsed), nil
}

func pageSourceCase(ctx context.Context, drv browser.Driver) (string, error) {
	if err := drv.Navigate(ctx, probeURL); err != nil {
		return "", err
	}
	src, err := drv.PageSource(ctx)
	if err != nil {
		return "", err
	}
	if len(src) == 0 {
		return "", errors.New("empty page source")
	}
	return fmt.Sprintf("%d bytes", len(src)), nil
}
