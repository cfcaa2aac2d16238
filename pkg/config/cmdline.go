package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
)

func ParseCmdLine(f *pflag.FlagSet, args []string) (*pflag.FlagSet, bool, error) {
	help := f.BoolP("help", "h", false, "Show usage help")
	f.String(listen, "", "Listening address and/or port, default is "+
		fmt.Sprintf("%s when run in a container and %s otherwise", DefaultListen, DefaultLocalListen))
	f.Bool(ui, uiDefault(), "Enable dashboard UI (disabled by default, when run in CI)")

	f.Bool(headless, true, "Run browser sessions headless unless requested otherwise")
	f.StringSlice(chromeArg, nil, "Extra Chrome command line argument (repeatable), e.g. --chrome-arg=window-size=1920,1080")
	f.Bool(ignoreTLS, false, "Ignore TLS certificate errors in browser sessions")
	f.Duration(createTimeout, time.Minute, "Timeout for browser session startup")
	f.Duration(actionTimeout, 30*time.Second, "Timeout for a single dispatched browser action")

	f.String(screenshotDir, "screenshots", "Directory for captured screenshots")
	f.String(resultsDir, "results", "Directory for exported result files")
	f.Int(resultCapacity, 0, "Maximum number of records kept in the result log, 0 - unlimited")

	f.Int(maxSessions, 0, "Limit for simultaneously open browser sessions, 0 - unlimited")
	f.String(enginesURI, defaultEnginesURI, "Path to search engines YAML config file (built-in catalog is used as fallback)")

	if err := f.Parse(args); err != nil {
		return nil, true, err
	}
	if *help {
		_, _ = fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		f.PrintDefaults()
		return nil, true, nil
	}

	return f, false, nil
}

func uiDefault() bool {
	_, ok := os.LookupEnv("CI")
	// disable UI under CI by default
	return !ok
}
