package testsuite_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zaptest"

	"github.com/autoweb/autoweb/internal/services/results"
	"github.com/autoweb/autoweb/internal/services/testsuite"
	"github.com/autoweb/autoweb/mocks"
	"github.com/autoweb/autoweb/pkg/engines"
	"github.com/autoweb/autoweb/pkg/models"
)

type browserCfg struct{}

func (browserCfg) Headless() bool               { return true }
func (browserCfg) ChromeArgs() []string         { return nil }
func (browserCfg) IgnoreTLSErrors() bool        { return false }
func (browserCfg) CreateTimeout() time.Duration { return time.Second }
func (browserCfg) ActionTimeout() time.Duration { return time.Second }

type fixture struct {
	runner  *testsuite.SuiteRunner
	factory *mocks.Factory
	drv     *mocks.Driver
	log     *results.MemoryResultLog
}

func setup(t *testing.T) *fixture {
	broker := new(mocks.EventBroker)
	broker.EXPECT().Publish(mock.Anything).Maybe()

	f := &fixture{
		factory: new(mocks.Factory),
		drv:     new(mocks.Driver),
		log:     results.NewMemoryResultLog(0, broker, zaptest.NewLogger(t)),
	}

	catalog, err := engines.NewYamlEnginesCatalog([]byte(engines.DefaultCatalogYAML))
	NewWithT(t).Expect(err).ToNot(HaveOccurred())

	f.runner = testsuite.NewSuiteRunner(f.factory, f.log, catalog, browserCfg{}, time.Now, zaptest.NewLogger(t))
	return f
}

func (f *fixture) happyDriver() {
	f.drv.EXPECT().Search(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	f.drv.EXPECT().Navigate(mock.Anything, mock.Anything).Return(nil).Maybe()
	f.drv.EXPECT().FillForm(mock.Anything, mock.Anything).Return(nil).Maybe()
	f.drv.EXPECT().Click(mock.Anything, mock.Anything).Return(nil).Maybe()
	f.drv.EXPECT().Extract(mock.Anything, mock.Anything).Return(map[string]string{"heading": "Example Domain"}, nil).Maybe()
	f.drv.EXPECT().PageSource(mock.Anything).Return("<html></html>", nil).Maybe()
	f.drv.EXPECT().Close(mock.Anything).Return(nil).Once()
}

func TestSuiteRunner_RunBasic(t *testing.T) {
	g := NewWithT(t)
	f := setup(t)
	f.factory.EXPECT().Launch(mock.Anything, mock.Anything).Return(f.drv, nil).Once()
	f.happyDriver()

	g.Expect(f.runner.Run(testsuite.SuiteBasic)).To(Succeed())

	g.Eventually(f.runner.Running, 5*time.Second).Should(BeFalse())
	g.Eventually(func() int { return len(f.log.List()) }, 5*time.Second).Should(Equal(3))

	for _, res := range f.log.List() {
		g.Expect(res.Type).To(Equal(models.ActionTest))
		g.Expect(res.Status).To(Equal(models.StatusSuccess))
	}
	f.drv.AssertExpectations(t)
}

func TestSuiteRunner_RunAll(t *testing.T) {
	g := NewWithT(t)
	f := setup(t)
	f.factory.EXPECT().Launch(mock.Anything, mock.Anything).Return(f.drv, nil).Once()
	f.happyDriver()

	g.Expect(f.runner.Run(testsuite.SuiteAll)).To(Succeed())

	g.Eventually(func() int { return len(f.log.List()) }, 5*time.Second).Should(Equal(6))
	g.Eventually(f.runner.Running, 5*time.Second).Should(BeFalse())
}

func TestSuiteRunner_DefaultSuite(t *testing.T) {
	g := NewWithT(t)
	f := setup(t)
	f.factory.EXPECT().Launch(mock.Anything, mock.Anything).Return(f.drv, nil).Once()
	f.happyDriver()

	g.Expect(f.runner.Run("")).To(Succeed())
	g.Eventually(func() int { return len(f.log.List()) }, 5*time.Second).Should(Equal(3))
	g.Eventually(f.runner.Running, 5*time.Second).Should(BeFalse())
}

func TestSuiteRunner_UnknownSuite(t *testing.T) {
	g := NewWithT(t)
	f := setup(t)

	err := f.runner.Run("smoke")
	var codeErr models.ErrorWithCode
	g.Expect(errors.As(err, &codeErr)).To(BeTrue())
	g.Expect(codeErr.Code()).To(Equal(http.StatusBadRequest))
	g.Expect(f.runner.Running()).To(BeFalse())
}

func TestSuiteRunner_Stop(t *testing.T) {
	g := NewWithT(t)
	f := setup(t)
	f.factory.EXPECT().Launch(mock.Anything, mock.Anything).Return(f.drv, nil).Once()

	started := make(chan struct{})
	f.drv.EXPECT().Search(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _, _, _ string) error {
			close(started)
			<-ctx.Done()
			return ctx.Err()
		}).Once()
	f.drv.EXPECT().Close(mock.Anything).Return(nil).Once()

	g.Expect(f.runner.Run(testsuite.SuiteBasic)).To(Succeed())
	g.Eventually(started, 5*time.Second).Should(BeClosed())
	g.Expect(f.runner.Running()).To(BeTrue())

	// a second run is rejected while the first is in flight
	err := f.runner.Run(testsuite.SuiteBasic)
	var codeErr models.ErrorWithCode
	g.Expect(errors.As(err, &codeErr)).To(BeTrue())
	g.Expect(codeErr.Code()).To(Equal(http.StatusConflict))

	f.runner.Stop()
	g.Eventually(f.runner.Running, 5*time.Second).Should(BeFalse())

	// the interrupted case is logged, the rest never ran
	list := f.log.List()
	g.Expect(list).To(HaveLen(1))
	g.Expect(list[0].Status).To(Equal(models.StatusError))

	f.drv.AssertExpectations(t)
}

func TestSuiteRunner_LaunchError(t *testing.T) {
	g := NewWithT(t)
	f := setup(t)
	f.factory.EXPECT().Launch(mock.Anything, mock.Anything).Return(nil, errors.New("test err")).Once()

	g.Expect(f.runner.Run(testsuite.SuiteBasic)).To(Succeed())

	g.Eventually(func() int { return len(f.log.List()) }, 5*time.Second).Should(Equal(1))
	g.Eventually(f.runner.Running, 5*time.Second).Should(BeFalse())

	res := f.log.List()[0]
	g.Expect(res.Status).To(Equal(models.StatusError))
	g.Expect(res.Detail).To(ContainSubstring("test err"))
}
