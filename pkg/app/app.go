package app

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"runtime"

	"github.com/labstack/echo/v4"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/autoweb/autoweb/internal/browser"
	"github.com/autoweb/autoweb/internal/registry"
	"github.com/autoweb/autoweb/pkg/config"
	"github.com/autoweb/autoweb/pkg/engines"
	"github.com/autoweb/autoweb/pkg/event"
	"github.com/autoweb/autoweb/pkg/signal"
)

var (
	InitLogger         func() *zap.Logger                                      = InitLoggerFunc
	InitConfig         func() config.Config                                    = InitConfigFunc
	InitSignalHandler  func(config.Config) *signal.Handler                     = InitSignalHandlerFunc
	InitEnginesCatalog func(config.Config, []byte) engines.EnginesCatalog      = InitEnginesCatalogFunc
	InitEventBroker    func(config.Config, *signal.Handler) event.EventBroker  = InitEventBrokerFunc
	InitBrowserFactory func(config.Config) browser.Factory                     = InitBrowserFactoryFunc
	InitRegistry       func(
		config.Config,
		browser.Factory,
		event.EventBroker,
		*signal.Handler,
	) registry.SessionRegistry = InitRegistryFunc
	InitMiddleware func(config.Config, *echo.Echo, *zap.Logger) = InitMiddlewareFunc
	InitAPI        func(
		config.Config,
		*echo.Echo,
		AutomationController,
		ActionsController,
		ScrapeController,
		TestsController,
		ResultsController,
		StatusController,
		InfoController,
		EventsController,
	) = InitAPIFunc
)

func Run(gitRef, gitSha, appName string) {
	l := InitLogger()
	mainLog := l.Sugar().Named("app")
	appVersion := fmt.Sprintf("%s-%s", gitRef, gitSha)
	mainLog.Infof("starting %s build %s (%s/%s)", appName, appVersion, runtime.GOOS, runtime.GOARCH)

	cfg := InitConfig()
	sig := InitSignalHandler(cfg)

	enginesConfig := loadEnginesConfig(cfg, http.DefaultClient) // using Default client with sane timeout defaults
	catalog := InitEnginesCatalog(cfg, enginesConfig)

	eb := InitEventBroker(cfg, sig)
	factory := InitBrowserFactory(cfg)
	reg := InitRegistry(cfg, factory, eb, sig)

	fs := afero.NewOsFs()
	resultLog := initResultLog(cfg, eb)
	exporter := initExportService(cfg, resultLog, fs)
	dispSvc := initDispatchService(cfg, reg, resultLog, catalog, fs)
	scrapeSvc := initScrapeService(cfg, reg, resultLog)
	runner := initSuiteRunner(cfg, factory, resultLog, catalog, sig)

	cLog := l.Named("controller")
	automationController := initAutomationController(reg, cLog)
	actionsController := initActionsController(dispSvc, cLog)
	scrapeController := initScrapeController(scrapeSvc, cLog)
	testsController := initTestsController(runner, cLog)
	resultsController := initResultsController(resultLog, exporter, cLog)
	statusController := initStatusController(reg, resultLog, runner)
	infoController := initInfoController(appName, gitRef, gitSha)
	eventsController := initEventsController(eb, cLog)

	srvLog := l.Named("server")
	e := initEcho(cfg, srvLog)
	// Routes
	initUI(cfg, e)
	InitAPI(
		cfg,
		e,
		automationController,
		actionsController,
		scrapeController,
		testsController,
		resultsController,
		statusController,
		infoController,
		eventsController,
	)

	// Start server
	go func() {
		lstn := listen(cfg)
		sl := srvLog.Sugar()
		sl.Infof("listening on %s", lstn)
		if err := e.Start(lstn); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sl.Fatalw("failed to start the server", zap.Error(err))
		}
	}()

	sig.RegisterShutdownHook(nil, e.Shutdown)
	os.Exit(sig.Start())
}
