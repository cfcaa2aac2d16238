package config

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var ConfigPrefix = "AW"

type ExportFormat string

const (
	ExportJSON ExportFormat = "json"
	ExportCSV  ExportFormat = "csv"
	ExportHTML ExportFormat = "html"
	ExportXLSX ExportFormat = "xlsx"

	DefaultListen      = "0.0.0.0:8000"
	DefaultLocalListen = "127.0.0.1:8000"

	listen         = "listen"
	headless       = "headless"
	chromeArg      = "chrome-arg"
	ignoreTLS      = "ignore-tls-errors"
	createTimeout  = "create-timeout"
	actionTimeout  = "action-timeout"
	screenshotDir  = "screenshot-dir"
	resultsDir     = "results-dir"
	maxSessions    = "max-sessions"
	enginesURI     = "engines-uri"
	resultCapacity = "result-capacity"

	ui = "ui"

	defaultConfigPath = "config/"
	defaultEnginesURI = defaultConfigPath + "engines.yaml"
)

var (
	envReplacer = strings.NewReplacer("-", "_")

	validExportFormats     = []ExportFormat{ExportJSON, ExportCSV, ExportHTML, ExportXLSX}
	validExportFormatsHelp = quoteStrings(validExportFormats)

	genLineage = uuid.NewString
)

func ValidExportFormat(f ExportFormat) bool {
	for _, v := range validExportFormats {
		if v == f {
			return true
		}
	}
	return false
}

type (
	BrowserConfig interface {
		Headless() bool
		ChromeArgs() []string
		IgnoreTLSErrors() bool
		CreateTimeout() time.Duration
		ActionTimeout() time.Duration
	}

	StorageConfig interface {
		ScreenshotDir() string
		ResultsDir() string
	}

	RegistryConfig interface {
		MaxSessions() int
	}

	ResultsConfig interface {
		ResultCapacity() int
	}

	Config interface {
		BrowserConfig
		StorageConfig
		RegistryConfig
		ResultsConfig
		Listen() string
		EnginesURI() []string
		Lineage() string
		UI() bool
	}

	ConfigViper struct {
		v       *viper.Viper
		lineage string
	}
)

func NewConfig(v *viper.Viper, f *pflag.FlagSet) (*ConfigViper, error) {
	if err := v.BindPFlags(f); err != nil {
		return nil, err
	}
	if err := bindEnvVars(v); err != nil {
		return nil, err
	}

	if n := v.GetInt(maxSessions); n < 0 {
		return nil, errors.Errorf("invalid max-sessions value specified (%d), must be >= 0", n)
	}

	return &ConfigViper{
		v:       v,
		lineage: genLineage(),
	}, nil
}

func (c *ConfigViper) Headless() bool {
	return c.v.GetBool(headless)
}

func (c *ConfigViper) ChromeArgs() []string {
	return c.v.GetStringSlice(chromeArg)
}

func (c *ConfigViper) IgnoreTLSErrors() bool {
	return c.v.GetBool(ignoreTLS)
}

func (c *ConfigViper) CreateTimeout() time.Duration {
	return c.v.GetDuration(createTimeout)
}

func (c *ConfigViper) ActionTimeout() time.Duration {
	return c.v.GetDuration(actionTimeout)
}

func (c *ConfigViper) ScreenshotDir() string {
	return c.v.GetString(screenshotDir)
}

func (c *ConfigViper) ResultsDir() string {
	return c.v.GetString(resultsDir)
}

func (c *ConfigViper) MaxSessions() int {
	return c.v.GetInt(maxSessions)
}

func (c *ConfigViper) ResultCapacity() int {
	return c.v.GetInt(resultCapacity)
}

func (c *ConfigViper) EnginesURI() []string {
	uris := []string{c.v.GetString(enginesURI)}
	return uris
}

func (c *ConfigViper) Listen() string {
	return c.v.GetString(listen)
}

func (c *ConfigViper) Lineage() string {
	return c.lineage
}

func (c *ConfigViper) UI() bool {
	return c.v.GetBool(ui)
}

func bindEnvVars(v *viper.Viper) error {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(envReplacer)
	v.SetEnvPrefix(ConfigPrefix)

	// HEADLESS is a common convention in CI images, accept it alongside AW_HEADLESS
	return v.BindEnv(headless, "HEADLESS")
}

func quoteStrings[T ~string](vals []T) string {
	var sb strings.Builder
	for i, v := range vals {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteRune('"')
		sb.WriteString(string(v))
		sb.WriteRune('"')
	}
	return sb.String()
}

var logLevelMap = map[string]zapcore.Level{
	"debug": zap.DebugLevel,
	"info":  zap.InfoLevel,
	"warn":  zap.WarnLevel,
	"error": zap.ErrorLevel,
}

func ZapLogLevel(strLevel string, defaultLevel zapcore.Level) zapcore.Level {
	if lvl, ok := logLevelMap[strings.ToLower(strLevel)]; ok {
		return lvl
	}
	return defaultLevel
}
