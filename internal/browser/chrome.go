package browser

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/chromedp/chromedp/kb"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/autoweb/autoweb/pkg/config"
)

const launchProbeTimeout = 30 * time.Second

// ChromeFactory launches one headless Chrome process per session via
// chromedp. Sessions are fully isolated from each other: each one gets
// its own allocator, so a crashed browser never takes down a neighbour.
type ChromeFactory struct {
	cfg config.BrowserConfig
	l   *zap.SugaredLogger
}

func NewChromeFactory(cfg config.BrowserConfig, l *zap.Logger) *ChromeFactory {
	return &ChromeFactory{
		cfg: cfg,
		l:   l.Sugar(),
	}
}

func (f *ChromeFactory) Launch(ctx context.Context, opts Options) (Driver, error) {
	allocOpts := f.buildAllocatorOptions(opts)

	// The allocator must outlive the create request, sessions are
	// closed explicitly.
	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), allocOpts...)
	tabCtx, tabCancel := chromedp.NewContext(allocCtx)

	d := &ChromeDriver{
		ctx:         tabCtx,
		cancel:      tabCancel,
		allocCancel: allocCancel,
		l:           f.l,
	}

	// Probe the browser before handing the driver out.
	probeCtx, cancel := combineContext(tabCtx, ctx)
	defer cancel()
	probeCtx, cancelProbe := context.WithTimeout(probeCtx, launchProbeTimeout)
	defer cancelProbe()

	if err := chromedp.Run(probeCtx,
		maskAutomation(),
		chromedp.Navigate("about:blank"),
	); err != nil {
		d.release()
		return nil, errors.Wrap(err, "browser failed to start or respond")
	}

	return d, nil
}

func (f *ChromeFactory) buildAllocatorOptions(opts Options) []chromedp.ExecAllocatorOption {
	// Copy the defaults, Launch may run concurrently and append must not
	// share the backing array.
	allocOpts := make([]chromedp.ExecAllocatorOption, 0, len(chromedp.DefaultExecAllocatorOptions)+16)
	allocOpts = append(allocOpts, chromedp.DefaultExecAllocatorOptions[:]...)

	allocOpts = append(allocOpts,
		// A false bool flag is dropped from the command line, this
		// removes the default that advertises automation.
		chromedp.Flag("enable-automation", false),
		chromedp.Flag("headless", opts.Headless),
		chromedp.Flag("ignore-certificate-errors", f.cfg.IgnoreTLSErrors()),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-gpu", opts.Headless),
	)

	for _, arg := range f.cfg.ChromeArgs() {
		parts := strings.SplitN(arg, "=", 2)
		flagName := strings.TrimPrefix(parts[0], "--")

		if len(parts) == 2 {
			allocOpts = append(allocOpts, chromedp.Flag(flagName, parts[1]))
		} else {
			allocOpts = append(allocOpts, chromedp.Flag(flagName, true))
		}
	}

	// Flags required when running inside containers
	if runtime.GOOS == "linux" {
		allocOpts = append(allocOpts,
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.Flag("disable-setuid-sandbox", true),
		)
	}

	return allocOpts
}

// maskAutomation clears navigator.webdriver in every new document,
// complementing the disable-blink-features=AutomationControlled flag.
func maskAutomation() chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		_, err := page.AddScriptToEvaluateOnNewDocument(
			"Object.defineProperty(navigator, 'webdriver', {get: () => undefined})",
		).Do(ctx)
		return err
	})
}

// ChromeDriver drives one Chrome tab over CDP.
type ChromeDriver struct {
	ctx         context.Context
	cancel      context.CancelFunc
	allocCancel context.CancelFunc
	l           *zap.SugaredLogger
}

var _ Driver = (*ChromeDriver)(nil)

func (d *ChromeDriver) Navigate(ctx context.Context, url string) error {
	d.l.Debugw("navigating", zap.String("url", url))
	err := d.run(ctx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
	)
	return errors.Wrapf(err, "failed to navigate to %s", url)
}

func (d *ChromeDriver) Search(ctx context.Context, pageURL, queryInput, query string) error {
	d.l.Debugw("searching", zap.String("url", pageURL), zap.String("query", query))
	err := d.run(ctx,
		chromedp.Navigate(pageURL),
		chromedp.WaitVisible(queryInput, chromedp.ByQuery),
		chromedp.SendKeys(queryInput, query+kb.Enter, chromedp.ByQuery),
		chromedp.WaitReady("body", chromedp.ByQuery),
	)
	return errors.Wrap(err, "search failed")
}

func (d *ChromeDriver) FillForm(ctx context.Context, fields map[string]string) error {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var tasks chromedp.Tasks
	for _, name := range names {
		sel := fmt.Sprintf(`[name=%q]`, name)
		tasks = append(tasks,
			chromedp.WaitVisible(sel, chromedp.ByQuery),
			chromedp.Clear(sel, chromedp.ByQuery),
			chromedp.SendKeys(sel, fields[name], chromedp.ByQuery),
		)
	}

	return errors.Wrap(d.run(ctx, tasks), "failed to fill form")
}

func (d *ChromeDriver) Extract(ctx context.Context, selectors map[string]string) (map[string]string, error) {
	keys := make([]string, 0, len(selectors))
	for key := range selectors {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	data := make(map[string]string, len(selectors))
	values := make([]string, len(keys))

	var tasks chromedp.Tasks
	for i, key := range keys {
		tasks = append(tasks, chromedp.Text(selectors[key], &values[i], chromedp.ByQuery))
	}

	if err := d.run(ctx, tasks); err != nil {
		return nil, errors.Wrap(err, "failed to extract data")
	}

	for i, key := range keys {
		data[key] = values[i]
	}
	return data, nil
}

func (d *ChromeDriver) Screenshot(ctx context.Context) ([]byte, error) {
	var buf []byte
	if err := d.run(ctx, chromedp.FullScreenshot(&buf, 90)); err != nil {
		return nil, errors.Wrap(err, "failed to capture screenshot")
	}
	return buf, nil
}

func (d *ChromeDriver) Click(ctx context.Context, selector string) error {
	err := d.run(ctx,
		chromedp.WaitVisible(selector, chromedp.ByQuery),
		chromedp.Click(selector, chromedp.ByQuery),
	)
	return errors.Wrapf(err, "failed to click %s", selector)
}

func (d *ChromeDriver) Scroll(ctx context.Context, direction string) error {
	script := `window.scrollTo(0, document.body.scrollHeight);`
	if direction == ScrollUp {
		script = `window.scrollTo(0, 0);`
	}
	err := d.run(ctx, chromedp.Evaluate(script, nil))
	return errors.Wrapf(err, "failed to scroll %s", direction)
}

func (d *ChromeDriver) PageSource(ctx context.Context) (string, error) {
	var html string
	if err := d.run(ctx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return "", errors.Wrap(err, "failed to get page source")
	}
	return html, nil
}

func (d *ChromeDriver) Close(_ context.Context) error {
	// Cancel gracefully first so Chrome gets a chance to exit cleanly.
	err := chromedp.Cancel(detach(d.ctx))
	d.release()
	return errors.Wrap(err, "failed to close browser")
}

func (d *ChromeDriver) release() {
	d.cancel()
	d.allocCancel()
}

// run executes chromedp actions respecting both the session lifetime
// and the incoming request context.
func (d *ChromeDriver) run(ctx context.Context, actions ...chromedp.Action) error {
	runCtx, cancel := combineContext(d.ctx, ctx)
	defer cancel()
	return chromedp.Run(runCtx, actions...)
}
