package app

import (
	"context"
	"io"
	"net/http"
	"os"
	"regexp"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/autoweb/autoweb/internal/browser"
	hc "github.com/autoweb/autoweb/internal/common/client"
	"github.com/autoweb/autoweb/internal/controllers"
	"github.com/autoweb/autoweb/internal/registry"
	"github.com/autoweb/autoweb/internal/services/dispatch"
	"github.com/autoweb/autoweb/internal/services/results"
	"github.com/autoweb/autoweb/internal/services/scrape"
	"github.com/autoweb/autoweb/internal/services/testsuite"
	"github.com/autoweb/autoweb/pkg/config"
	"github.com/autoweb/autoweb/pkg/engines"
	"github.com/autoweb/autoweb/pkg/event"
	"github.com/autoweb/autoweb/pkg/log"
	"github.com/autoweb/autoweb/pkg/signal"
)

const dockerEnvFile = "/.dockerenv"

var (
	InitLog *zap.SugaredLogger

	inDocker bool
)

func init() {
	_, err := os.Stat(dockerEnvFile)
	inDocker = err == nil
}

func InitLoggerFunc() *zap.Logger {
	logger := log.GetLogger()
	InitLog = logger.Sugar().Named("init")
	return logger
}

func InitConfigFunc() config.Config {
	flags, exit, err := config.ParseCmdLine(pflag.CommandLine, os.Args[1:])
	if err != nil {
		InitLog.Fatalw("failed to parse command line", zap.Error(err))
	}
	if exit {
		os.Exit(1)
	}

	cfg, err := config.NewConfig(viper.GetViper(), flags)
	if err != nil {
		InitLog.Fatalw("failed to initialize configuration", zap.Error(err))
	}

	return cfg
}

func InitSignalHandlerFunc(_ config.Config) *signal.Handler {
	l := log.GetLogger().Named("signal")
	return signal.NewHandler(5*time.Second, l)
}

func loadEnginesConfig(cfg config.Config, client hc.HTTPClient) []byte {
	httpPattern := regexp.MustCompile(`(?i)^https?://.+`)

	for _, uri := range cfg.EnginesURI() {
		var (
			data []byte
			err  error
		)

		if httpPattern.MatchString(uri) {
			data, err = downloadEnginesConfig(client, uri)
		} else {
			data, err = os.ReadFile(uri)
		}

		if err != nil {
			InitLog.With(zap.Error(err), zap.String("uri", uri)).
				Warnw("failed to load engines config (will use built-in catalog)")
		} else {
			return data
		}
	}

	return []byte(engines.DefaultCatalogYAML)
}

func downloadEnginesConfig(client hc.HTTPClient, uri string) ([]byte, error) {
	InitLog.Infow("downloading engines config from remote URL", zap.String("url", uri))
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, uri, http.NoBody)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return nil, errors.Errorf("request %s failed with code %d", uri, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

func InitEnginesCatalogFunc(_ config.Config, enginesConfig []byte) engines.EnginesCatalog {
	cat, err := engines.NewYamlEnginesCatalog(enginesConfig)
	if err != nil {
		InitLog.Fatalw("failed to initialize engines catalog", zap.Error(err))
	}

	return cat
}

func InitEventBrokerFunc(_ config.Config, sig *signal.Handler) event.EventBroker {
	const defaultEventBufferSize = 100
	l := log.GetLogger().Named("event")
	eb := event.NewEventBrokerImpl(defaultEventBufferSize, l)
	sig.RegisterShutdownHook(eb, eb.ShutDown)
	return eb
}

func InitBrowserFactoryFunc(cfg config.Config) browser.Factory {
	l := log.GetLogger().Named("browser")
	return browser.NewChromeFactory(cfg, l)
}

func InitRegistryFunc(
	cfg config.Config,
	factory browser.Factory,
	eb event.EventBroker,
	sig *signal.Handler,
) registry.SessionRegistry {
	l := log.GetLogger().Named("registry")
	reg := registry.NewLocalRegistry(factory, cfg, eb, time.Now, l)
	sig.RegisterShutdownHook(reg, reg.Shutdown)
	return reg
}

func initResultLog(cfg config.Config, eb event.EventBroker) results.ResultLog {
	l := log.GetLogger().Named("results")
	return results.NewMemoryResultLog(cfg.ResultCapacity(), eb, l)
}

func initExportService(cfg config.Config, resultLog results.ResultLog, fs afero.Fs) results.Exporter {
	l := log.GetLogger().Named("export")
	return results.NewExportService(resultLog, fs, cfg, time.Now, l)
}

func initDispatchService(
	cfg config.Config,
	reg registry.SessionRegistry,
	resultLog results.ResultLog,
	catalog engines.EnginesCatalog,
	fs afero.Fs,
) dispatch.Dispatcher {
	l := log.GetLogger().Named("dispatch")
	return dispatch.NewDispatchService(reg, resultLog, catalog, fs, cfg, time.Now, l)
}

func initScrapeService(cfg config.Config, reg registry.SessionRegistry, resultLog results.ResultLog) scrape.Scraper {
	l := log.GetLogger().Named("scrape")
	return scrape.NewScrapeService(reg, resultLog, cfg, time.Now, l)
}

func initSuiteRunner(
	cfg config.Config,
	factory browser.Factory,
	resultLog results.ResultLog,
	catalog engines.EnginesCatalog,
	sig *signal.Handler,
) testsuite.Runner {
	l := log.GetLogger().Named("testsuite")
	runner := testsuite.NewSuiteRunner(factory, resultLog, catalog, cfg, time.Now, l)
	sig.RegisterShutdownHook(runner, func(_ context.Context) error {
		runner.Stop()
		return nil
	})
	return runner
}

func initAutomationController(reg registry.SessionRegistry, cLog *zap.Logger) *controllers.AutomationController {
	return controllers.NewAutomationController(reg, cLog.Named("automation"))
}

func initActionsController(disp dispatch.Dispatcher, cLog *zap.Logger) *controllers.ActionsController {
	return controllers.NewActionsController(disp, cLog.Named("actions"))
}

func initScrapeController(scraper scrape.Scraper, cLog *zap.Logger) *controllers.ScrapeController {
	return controllers.NewScrapeController(scraper, cLog.Named("scrape"))
}

func initTestsController(runner testsuite.Runner, cLog *zap.Logger) *controllers.TestsController {
	return controllers.NewTestsController(runner, cLog.Named("tests"))
}

func initResultsController(
	resultLog results.ResultLog,
	exporter results.Exporter,
	cLog *zap.Logger,
) *controllers.ResultsController {
	return controllers.NewResultsController(resultLog, exporter, cLog.Named("results"))
}

func initStatusController(
	reg registry.SessionRegistry,
	resultLog results.ResultLog,
	runner testsuite.Runner,
) *controllers.StatusController {
	return controllers.NewStatusController(reg, resultLog, runner, time.Now)
}

func initInfoController(appName, gitRef, gitSha string) *controllers.InfoController {
	return controllers.NewInfoController(appName, gitRef, gitSha)
}

func initEventsController(eb event.EventBroker, cLog *zap.Logger) *controllers.EventsController {
	return controllers.NewEventsController(eb, cLog.Named("events"))
}

func listen(cfg config.Config) string {
	if val := cfg.Listen(); val != "" {
		return val
	}
	if inDocker {
		return config.DefaultListen
	}
	return config.DefaultLocalListen
}
