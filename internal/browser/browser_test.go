package browser

import (
	"context"
	"testing"
	"time"

	"github.com/chromedp/chromedp"
	. "github.com/onsi/gomega"
	"go.uber.org/zap/zaptest"
)

type browserCfg struct {
	headless   bool
	chromeArgs []string
	ignoreTLS  bool
}

func (c browserCfg) Headless() bool               { return c.headless }
func (c browserCfg) ChromeArgs() []string         { return c.chromeArgs }
func (c browserCfg) IgnoreTLSErrors() bool        { return c.ignoreTLS }
func (c browserCfg) CreateTimeout() time.Duration { return time.Minute }
func (c browserCfg) ActionTimeout() time.Duration { return time.Second * 30 }

func TestChromeFactory_buildAllocatorOptions(t *testing.T) {
	g := NewWithT(t)
	f := NewChromeFactory(browserCfg{}, zaptest.NewLogger(t))

	opts := f.buildAllocatorOptions(Options{Headless: true})
	g.Expect(len(opts)).To(BeNumerically(">", len(chromedp.DefaultExecAllocatorOptions)))
}

func TestChromeFactory_buildAllocatorOptions_ChromeArgs(t *testing.T) {
	g := NewWithT(t)
	f := NewChromeFactory(browserCfg{
		chromeArgs: []string{"--window-size=1920,1080", "disable-notifications"},
	}, zaptest.NewLogger(t))

	base := f.buildAllocatorOptions(Options{})
	withArgs := NewChromeFactory(browserCfg{}, zaptest.NewLogger(t)).buildAllocatorOptions(Options{})
	g.Expect(len(base)).To(Equal(len(withArgs) + 2))
}

func TestCombineContext_RequestCancel(t *testing.T) {
	g := NewWithT(t)
	sessCtx := context.Background()
	reqCtx, cancelReq := context.WithCancel(context.Background())

	ctx, cancel := combineContext(sessCtx, reqCtx)
	defer cancel()

	g.Expect(ctx.Err()).To(Succeed())
	cancelReq()
	g.Eventually(ctx.Done(), time.Second).Should(BeClosed())
	g.Expect(context.Cause(ctx)).To(MatchError(context.Canceled))
}

func TestCombineContext_SessionCancel(t *testing.T) {
	g := NewWithT(t)
	sessCtx, cancelSess := context.WithCancel(context.Background())

	ctx, cancel := combineContext(sessCtx, context.Background())
	defer cancel()

	cancelSess()
	g.Eventually(ctx.Done(), time.Second).Should(BeClosed())
}

func TestDetach(t *testing.T) {
	g := NewWithT(t)

	type key struct{}
	parent, cancelParent := context.WithCancel(context.WithValue(context.Background(), key{}, "v"))

	detached := detach(parent)
	cancelParent()

	g.Expect(detached.Err()).To(Succeed())
	g.Expect(detached.Value(key{})).To(Equal("v"))
}
