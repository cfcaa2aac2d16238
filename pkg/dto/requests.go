package dto

// Per-action request payloads. Every action gets its own typed payload
// validated at the boundary before dispatch.

type CreateRequest struct {
	InstanceID string `json:"instance_id,omitempty"`
	Headless   *bool  `json:"headless,omitempty"`
}

type NavigateRequest struct {
	InstanceID string `json:"instance_id"`
	URL        string `json:"url"`
}

type SearchRequest struct {
	InstanceID   string `json:"instance_id"`
	SearchEngine string `json:"search_engine,omitempty"`
	Query        string `json:"query"`
}

type FormFillRequest struct {
	InstanceID string            `json:"instance_id"`
	FormURL    string            `json:"form_url"`
	FormData   map[string]string `json:"form_data"`
}

type ExtractRequest struct {
	InstanceID string            `json:"instance_id"`
	Selectors  map[string]string `json:"selectors"`
}

type ScreenshotRequest struct {
	InstanceID string `json:"instance_id"`
	Filename   string `json:"filename,omitempty"`
}

type ClickRequest struct {
	InstanceID string `json:"instance_id"`
	Selector   string `json:"selector"`
}

type ScrollRequest struct {
	InstanceID string `json:"instance_id"`
	Direction  string `json:"direction"`
}

type ScrapeTableRequest struct {
	InstanceID string `json:"instance_id"`
	URL        string `json:"url,omitempty"`
	Selector   string `json:"selector,omitempty"`
}

type ScrapeLinksRequest struct {
	InstanceID string `json:"instance_id"`
	URL        string `json:"url,omitempty"`
}

type RunTestsRequest struct {
	TestSuite string `json:"test_suite,omitempty"`
}
