package router

import "fmt"

const (
	APIRoot = "/api"

	StatusPath = "/status"
	StatsPath  = "/stats"
	InfoPath   = "/info"
	EventsPath = "/events"

	AutomationPath      = "/automation"
	AutomationCreate    = "/create"
	AutomationClose     = "/close/:%s"
	AutomationInstances = "/instances"
	InstanceParam       = "id"

	NavigatePath   = "/navigate"
	SearchPath     = "/search"
	FormFillPath   = "/form/fill"
	ExtractPath    = "/extract"
	ScreenshotPath = "/screenshot"
	ClickPath      = "/click"
	ScrollPath     = "/scroll"
	SourcePath     = "/source"

	ScrapePath      = "/scrape"
	ScrapeTablePath = "/table"
	ScrapeLinksPath = "/links"

	TestsPath     = "/tests"
	TestsRunPath  = "/run"
	TestsStopPath = "/stop"

	ResultsPath       = "/results"
	ResultsExport     = "/export/:%s"
	ExportFormatParam = "format"
)

func InstanceRoute(s string) string {
	return fmt.Sprintf(s, InstanceParam)
}

func FormatRoute(s string) string {
	return fmt.Sprintf(s, ExportFormatParam)
}
