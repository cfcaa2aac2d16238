package engines

import (
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

const DefaultEngine = "google"

// DefaultCatalogYAML is the built-in engine catalog, used when no
// engines file is configured or the configured one cannot be loaded.
const DefaultCatalogYAML = `
engines:
  google:
    url: https://www.google.com
    queryInput: "textarea[name='q'],input[name='q']"
  bing:
    url: https://www.bing.com
    queryInput: "input[name='q']"
  duckduckgo:
    url: https://duckduckgo.com
    queryInput: "input[name='q']"
`

// Engine describes how to drive one search engine: where its start page
// lives and which input receives the query.
type Engine struct {
	URL        string `yaml:"url" json:"url"`
	QueryInput string `yaml:"queryInput" json:"query_input"`
}

type EnginesCatalog interface {
	Lookup(name string) (Engine, bool)
	Names() []string
}

type yamlCatalog struct {
	Engines map[string]Engine `yaml:"engines"`
}

type YamlEnginesCatalog struct {
	engines map[string]Engine
}

func NewYamlEnginesCatalog(data []byte) (*YamlEnginesCatalog, error) {
	var cat yamlCatalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, err
	}
	engines := make(map[string]Engine, len(cat.Engines))
	for name, e := range cat.Engines {
		engines[strings.ToLower(name)] = e
	}
	return &YamlEnginesCatalog{engines: engines}, nil
}

func (c *YamlEnginesCatalog) Lookup(name string) (Engine, bool) {
	if name == "" {
		name = DefaultEngine
	}
	e, ok := c.engines[strings.ToLower(name)]
	return e, ok
}

func (c *YamlEnginesCatalog) Names() []string {
	result := make([]string, 0, len(c.engines))
	for name := range c.engines {
		result = append(result, name)
	}
	slices.Sort(result)
	return result
}
