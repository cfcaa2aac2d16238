package models

import "time"

type ActionType string

const (
	ActionNavigation ActionType = "navigation"
	ActionSearch     ActionType = "search"
	ActionFormFill   ActionType = "form_fill"
	ActionExtract    ActionType = "data_extraction"
	ActionScreenshot ActionType = "screenshot"
	ActionClick      ActionType = "click"
	ActionScroll     ActionType = "scroll"
	ActionSource     ActionType = "page_source"
	ActionScrape     ActionType = "scrape"
	ActionTest       ActionType = "test"
)

type ResultStatus string

const (
	StatusSuccess ResultStatus = "success"
	StatusError   ResultStatus = "error"
)

// Result is one logged outcome of a dispatched action or test case.
// The log it lives in only ever grows, so records carry no identity
// beyond insertion order.
type Result struct {
	Name       string       `json:"name"`
	Type       ActionType   `json:"type"`
	Status     ResultStatus `json:"status"`
	Detail     string       `json:"detail,omitempty"`
	InstanceID string       `json:"instance_id,omitempty"`
	Duration   float64      `json:"duration_seconds"`
	Timestamp  time.Time    `json:"timestamp"`
}

func (r Result) OK() bool {
	return r.Status == StatusSuccess
}
