package app

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/autoweb/autoweb/html"
	"github.com/autoweb/autoweb/internal/controllers"
	"github.com/autoweb/autoweb/internal/router"
	"github.com/autoweb/autoweb/pkg/config"
)

const staticRoot = "/static"

type (
	AutomationController interface {
		Create(c echo.Context) error
		Close(c echo.Context) error
		Instances(c echo.Context) error
	}

	ActionsController interface {
		Navigate(c echo.Context) error
		Search(c echo.Context) error
		FillForm(c echo.Context) error
		Extract(c echo.Context) error
		Screenshot(c echo.Context) error
		Click(c echo.Context) error
		Scroll(c echo.Context) error
		Source(c echo.Context) error
	}

	ScrapeController interface {
		Table(c echo.Context) error
		Links(c echo.Context) error
	}

	TestsController interface {
		Run(c echo.Context) error
		Stop(c echo.Context) error
	}

	ResultsController interface {
		List(c echo.Context) error
		Export(c echo.Context) error
	}

	StatusController interface {
		Status(c echo.Context) error
		Stats(c echo.Context) error
	}

	InfoController interface {
		Info(c echo.Context) error
	}

	EventsController interface {
		Stream(c echo.Context) error
	}
)

func initEcho(cfg config.Config, l *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = controllers.ErrorHandler

	// Middleware
	InitMiddleware(cfg, e, l)
	return e
}

func InitMiddlewareFunc(_ config.Config, e *echo.Echo, srvLogger *zap.Logger) {
	isStatic := func(c echo.Context) bool {
		return strings.HasPrefix(c.Request().URL.Path, staticRoot+"/")
	}

	if srvLogger.Core().Enabled(zap.DebugLevel) {
		accLogger := srvLogger.Named("access").Sugar()
		e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
			Skipper: isStatic,
			LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
				l := accLogger.With(zap.Time("start_time", v.StartTime),
					zap.String("method", v.Method),
					zap.String("uri", v.URI),
					zap.String("remote_ip", v.RemoteIP),
					zap.Duration("latency", v.Latency),
					zap.Int("status", v.Status))
				if v.Error != nil {
					l = l.With(zap.Error(v.Error))
				}
				l.Debug()
				return nil
			},
			LogLatency:   true,
			LogRemoteIP:  true,
			LogMethod:    true,
			LogURI:       true,
			LogRequestID: true,
			LogUserAgent: true,
			LogStatus:    true,
			LogError:     true,
			HandleError:  true,
		}))
	}

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisablePrintStack: true, // this will be handled by zap logger
		LogErrorFunc: func(c echo.Context, err error, _ []byte) error {
			srvLogger.With(zap.Error(err), zap.String("uri", c.Request().RequestURI)).Error("panic recovered")
			return err
		},
	}))
}

func InitAPIFunc(
	_ config.Config,
	e *echo.Echo,
	automationController AutomationController,
	actionsController ActionsController,
	scrapeController ScrapeController,
	testsController TestsController,
	resultsController ResultsController,
	statusController StatusController,
	infoController InfoController,
	eventsController EventsController,
) {
	api := e.Group(router.APIRoot)

	api.GET(router.StatusPath, statusController.Status)
	api.GET(router.StatsPath, statusController.Stats)
	api.GET(router.InfoPath, infoController.Info)
	api.GET(router.EventsPath, eventsController.Stream)

	automation := api.Group(router.AutomationPath)
	automation.POST(router.AutomationCreate, automationController.Create)
	automation.DELETE(router.InstanceRoute(router.AutomationClose), automationController.Close)
	automation.GET(router.AutomationInstances, automationController.Instances)

	api.POST(router.NavigatePath, actionsController.Navigate)
	api.POST(router.SearchPath, actionsController.Search)
	api.POST(router.FormFillPath, actionsController.FillForm)
	api.POST(router.ExtractPath, actionsController.Extract)
	api.POST(router.ScreenshotPath, actionsController.Screenshot)
	api.POST(router.ClickPath, actionsController.Click)
	api.POST(router.ScrollPath, actionsController.Scroll)
	api.GET(router.SourcePath, actionsController.Source)

	scrape := api.Group(router.ScrapePath)
	scrape.POST(router.ScrapeTablePath, scrapeController.Table)
	scrape.POST(router.ScrapeLinksPath, scrapeController.Links)

	tests := api.Group(router.TestsPath)
	tests.POST(router.TestsRunPath, testsController.Run)
	tests.POST(router.TestsStopPath, testsController.Stop)

	api.GET(router.ResultsPath, resultsController.List)
	api.GET(router.ResultsPath+router.FormatRoute(router.ResultsExport), resultsController.Export)
}

func initUI(cfg config.Config, e *echo.Echo) {
	if !cfg.UI() {
		return
	}

	fsys := echo.MustSubFS(html.StaticFS(), html.StaticFSRoot)
	e.StaticFS(staticRoot, fsys)
	e.FileFS("/", "index.html", fsys)

	InitLog.Infof("dashboard UI initialized at http://%s/", listen(cfg))
}
