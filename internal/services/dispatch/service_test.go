package dispatch_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zaptest"

	"github.com/autoweb/autoweb/internal/browser"
	"github.com/autoweb/autoweb/internal/registry"
	"github.com/autoweb/autoweb/internal/services/dispatch"
	"github.com/autoweb/autoweb/internal/services/results"
	"github.com/autoweb/autoweb/mocks"
	"github.com/autoweb/autoweb/pkg/engines"
	"github.com/autoweb/autoweb/pkg/models"
)

type dispatchCfg struct{}

func (dispatchCfg) Headless() bool               { return true }
func (dispatchCfg) ChromeArgs() []string         { return nil }
func (dispatchCfg) IgnoreTLSErrors() bool        { return false }
func (dispatchCfg) CreateTimeout() time.Duration { return time.Minute }
func (dispatchCfg) ActionTimeout() time.Duration { return time.Second }
func (dispatchCfg) ScreenshotDir() string        { return "shots" }
func (dispatchCfg) ResultsDir() string           { return "results" }

type fixture struct {
	svc *dispatch.DispatchService
	reg *mocks.SessionRegistry
	drv *mocks.Driver
	log *results.MemoryResultLog
	fs  afero.Fs
}

func setup(t *testing.T) *fixture {
	broker := new(mocks.EventBroker)
	broker.EXPECT().Publish(mock.Anything).Maybe()

	f := &fixture{
		reg: new(mocks.SessionRegistry),
		drv: new(mocks.Driver),
		log: results.NewMemoryResultLog(0, broker, zaptest.NewLogger(t)),
		fs:  afero.NewMemMapFs(),
	}

	catalog, err := engines.NewYamlEnginesCatalog([]byte(engines.DefaultCatalogYAML))
	NewWithT(t).Expect(err).ToNot(HaveOccurred())

	now := func() time.Time { return time.UnixMilli(123) }
	f.svc = dispatch.NewDispatchService(f.reg, f.log, catalog, f.fs, dispatchCfg{}, now, zaptest.NewLogger(t))
	return f
}

func (f *fixture) expectSession(id string) {
	sess := registry.NewSession(id, true, f.drv, time.UnixMilli(100))
	f.reg.EXPECT().Get(id).Return(sess, nil)
}

func (f *fixture) expectNoSession(id string) {
	f.reg.EXPECT().Get(id).Return(nil, models.NewNotFoundError(errors.Errorf("instance %s doesn't exist", id)))
}

func errCode(g Gomega, err error) int {
	var e models.ErrorWithCode
	g.Expect(errors.As(err, &e)).To(BeTrue())
	return e.Code()
}

func TestDispatchService_Navigate(t *testing.T) {
	g := NewWithT(t)
	f := setup(t)
	f.expectSession("inst-1")

	expDeadline := time.Now().Add(time.Second)
	f.drv.EXPECT().Navigate(mock.Anything, "https://example.com").
		Run(func(ctx context.Context, _ string) {
			dl, ok := ctx.Deadline()
			g.Expect(ok).To(BeTrue())
			g.Expect(dl).To(BeTemporally("~", expDeadline, 100*time.Millisecond))
		}).
		Return(nil).Once()

	g.Expect(f.svc.Navigate(context.TODO(), "inst-1", "https://example.com")).To(Succeed())

	list := f.log.List()
	g.Expect(list).To(HaveLen(1))
	g.Expect(list[0].Type).To(Equal(models.ActionNavigation))
	g.Expect(list[0].Status).To(Equal(models.StatusSuccess))
	g.Expect(list[0].InstanceID).To(Equal("inst-1"))
	g.Expect(list[0].Timestamp).To(Equal(time.UnixMilli(123)))

	f.drv.AssertExpectations(t)
}

func TestDispatchService_Navigate_BadURL(t *testing.T) {
	for _, u := range []string{"", "ftp://example.com", "not a url at all\x7f"} {
		t.Run(u, func(t *testing.T) {
			g := NewWithT(t)
			f := setup(t)

			err := f.svc.Navigate(context.TODO(), "inst-1", u)
			g.Expect(errCode(g, err)).To(Equal(http.StatusBadRequest))
			// rejected before touching the registry or the log
			g.Expect(f.log.List()).To(BeEmpty())
			f.reg.AssertExpectations(t)
		})
	}
}

func TestDispatchService_Navigate_UnknownInstance(t *testing.T) {
	g := NewWithT(t)
	f := setup(t)
	f.expectNoSession("ghost")

	err := f.svc.Navigate(context.TODO(), "ghost", "https://example.com")
	g.Expect(errCode(g, err)).To(Equal(http.StatusNotFound))
	g.Expect(f.log.List()).To(BeEmpty())
}

func TestDispatchService_Navigate_DriverError(t *testing.T) {
	g := NewWithT(t)
	f := setup(t)
	f.expectSession("inst-1")
	f.drv.EXPECT().Navigate(mock.Anything, "https://example.com").Return(errors.New("net::ERR_NAME_NOT_RESOLVED")).Once()

	err := f.svc.Navigate(context.TODO(), "inst-1", "https://example.com")
	g.Expect(errCode(g, err)).To(Equal(http.StatusBadGateway))

	list := f.log.List()
	g.Expect(list).To(HaveLen(1))
	g.Expect(list[0].Status).To(Equal(models.StatusError))
	g.Expect(list[0].Detail).To(ContainSubstring("ERR_NAME_NOT_RESOLVED"))
}

func TestDispatchService_Navigate_Timeout(t *testing.T) {
	g := NewWithT(t)
	f := setup(t)
	f.expectSession("inst-1")
	f.drv.EXPECT().Navigate(mock.Anything, "https://example.com").
		Return(errors.Wrap(context.DeadlineExceeded, "chromedp")).Once()

	err := f.svc.Navigate(context.TODO(), "inst-1", "https://example.com")
	g.Expect(errCode(g, err)).To(Equal(http.StatusGatewayTimeout))
}

func TestDispatchService_Search(t *testing.T) {
	g := NewWithT(t)
	f := setup(t)
	f.expectSession("inst-1")
	f.drv.EXPECT().
		Search(mock.Anything, "https://www.bing.com", "input[name='q']", "golang").
		Return(nil).Once()

	g.Expect(f.svc.Search(context.TODO(), "inst-1", "Bing", "golang")).To(Succeed())

	list := f.log.List()
	g.Expect(list).To(HaveLen(1))
	g.Expect(list[0].Type).To(Equal(models.ActionSearch))

	f.drv.AssertExpectations(t)
}

func TestDispatchService_Search_DefaultEngine(t *testing.T) {
	g := NewWithT(t)
	f := setup(t)
	f.expectSession("inst-1")
	f.drv.EXPECT().
		Search(mock.Anything, "https://www.google.com", mock.Anything, "golang").
		Return(nil).Once()

	g.Expect(f.svc.Search(context.TODO(), "inst-1", "", "golang")).To(Succeed())
	f.drv.AssertExpectations(t)
}

func TestDispatchService_Search_Invalid(t *testing.T) {
	g := NewWithT(t)
	f := setup(t)

	err := f.svc.Search(context.TODO(), "inst-1", "altavista", "golang")
	g.Expect(errCode(g, err)).To(Equal(http.StatusBadRequest))
	g.Expect(err.Error()).To(ContainSubstring("altavista"))

	err = f.svc.Search(context.TODO(), "inst-1", "google", "")
	g.Expect(errCode(g, err)).To(Equal(http.StatusBadRequest))

	g.Expect(f.log.List()).To(BeEmpty())
}

func TestDispatchService_FillForm(t *testing.T) {
	g := NewWithT(t)
	f := setup(t)
	f.expectSession("inst-1")

	fields := map[string]string{"email": "a@b.c", "name": "tester"}
	f.drv.EXPECT().Navigate(mock.Anything, "https://example.com/form").Return(nil).Once()
	f.drv.EXPECT().FillForm(mock.Anything, fields).Return(nil).Once()

	g.Expect(f.svc.FillForm(context.TODO(), "inst-1", "https://example.com/form", fields)).To(Succeed())

	list := f.log.List()
	g.Expect(list).To(HaveLen(1))
	g.Expect(list[0].Type).To(Equal(models.ActionFormFill))
	g.Expect(list[0].Detail).To(Equal("2 fields filled"))

	f.drv.AssertExpectations(t)
}

func TestDispatchService_FillForm_NoFields(t *testing.T) {
	g := NewWithT(t)
	f := setup(t)

	err := f.svc.FillForm(context.TODO(), "inst-1", "https://example.com/form", nil)
	g.Expect(errCode(g, err)).To(Equal(http.StatusBadRequest))
}

func TestDispatchService_Extract(t *testing.T) {
	g := NewWithT(t)
	f := setup(t)
	f.expectSession("inst-1")

	selectors := map[string]string{"title": "h1"}
	f.drv.EXPECT().Extract(mock.Anything, selectors).Return(map[string]string{"title": "Hello"}, nil).Once()

	data, err := f.svc.Extract(context.TODO(), "inst-1", selectors)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(data).To(Equal(map[string]string{"title": "Hello"}))

	f.drv.AssertExpectations(t)
}

func TestDispatchService_Screenshot(t *testing.T) {
	g := NewWithT(t)
	f := setup(t)
	f.expectSession("inst-1")
	f.drv.EXPECT().Screenshot(mock.Anything).Return([]byte("png-bytes"), nil).Once()

	filename, path, err := f.svc.Screenshot(context.TODO(), "inst-1", "login-page")
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(filename).To(Equal("login-page.png"))
	g.Expect(path).To(Equal("shots/login-page.png"))

	saved, err := afero.ReadFile(f.fs, path)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(saved).To(Equal([]byte("png-bytes")))
}

func TestDispatchService_Screenshot_GeneratedName(t *testing.T) {
	g := NewWithT(t)
	f := setup(t)
	f.expectSession("inst-1")
	f.drv.EXPECT().Screenshot(mock.Anything).Return([]byte("png"), nil).Once()

	filename, _, err := f.svc.Screenshot(context.TODO(), "inst-1", "")
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(filename).To(MatchRegexp(`^screenshot_\d{8}_\d{6}\.png$`))
}

func TestDispatchService_Screenshot_BadFilename(t *testing.T) {
	g := NewWithT(t)
	f := setup(t)

	_, _, err := f.svc.Screenshot(context.TODO(), "inst-1", "../escape.png")
	g.Expect(errCode(g, err)).To(Equal(http.StatusBadRequest))
}

func TestDispatchService_Click_NoSelector(t *testing.T) {
	g := NewWithT(t)
	f := setup(t)

	err := f.svc.Click(context.TODO(), "inst-1", "")
	g.Expect(errCode(g, err)).To(Equal(http.StatusBadRequest))
}

func TestDispatchService_Scroll(t *testing.T) {
	g := NewWithT(t)
	f := setup(t)
	f.expectSession("inst-1")
	f.drv.EXPECT().Scroll(mock.Anything, browser.ScrollDown).Return(nil).Once()

	// empty direction defaults to down
	g.Expect(f.svc.Scroll(context.TODO(), "inst-1", "")).To(Succeed())

	err := f.svc.Scroll(context.TODO(), "inst-1", "sideways")
	g.Expect(errCode(g, err)).To(Equal(http.StatusBadRequest))

	f.drv.AssertExpectations(t)
}

func TestDispatchService_PageSource(t *testing.T) {
	g := NewWithT(t)
	f := setup(t)
	f.expectSession("inst-1")
	f.drv.EXPECT().PageSource(mock.Anything).Return("<html></html>", nil).Once()

	src, err := f.svc.PageSource(context.TODO(), "inst-1")
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(src).To(Equal("<html></html>"))
}

func TestDispatchService_ResultCountInvariant(t *testing.T) {
	g := NewWithT(t)
	f := setup(t)
	f.expectSession("inst-1")
	f.drv.EXPECT().Navigate(mock.Anything, mock.Anything).Return(nil).Twice()
	f.drv.EXPECT().Click(mock.Anything, "#go").Return(errors.New("test err")).Once()

	g.Expect(f.svc.Navigate(context.TODO(), "inst-1", "https://example.com")).To(Succeed())
	g.Expect(f.svc.Navigate(context.TODO(), "inst-1", "https://example.org")).To(Succeed())
	g.Expect(f.svc.Navigate(context.TODO(), "inst-1", "bogus")).ToNot(Succeed())
	g.Expect(f.svc.Click(context.TODO(), "inst-1", "#go")).ToNot(Succeed())

	// three dispatched actions reached the browser, the invalid one did not
	g.Expect(f.log.List()).To(HaveLen(3))
	g.Expect(f.log.Stats().Successful).To(Equal(2))
}
