package dto

import (
	"time"

	"github.com/autoweb/autoweb/pkg/models"
)

type OKResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type CreateResponse struct {
	Success    bool   `json:"success"`
	InstanceID string `json:"instance_id"`
}

type ExtractResponse struct {
	Success bool              `json:"success"`
	Data    map[string]string `json:"data"`
}

type ScreenshotResponse struct {
	Success  bool   `json:"success"`
	Filename string `json:"filename"`
	Path     string `json:"path"`
}

type TableResponse struct {
	Success bool       `json:"success"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

type Link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

type LinksResponse struct {
	Success bool   `json:"success"`
	Links   []Link `json:"links"`
	Total   int    `json:"total"`
}

type RunTestsResponse struct {
	Success   bool   `json:"success"`
	TestSuite string `json:"test_suite"`
	Message   string `json:"message,omitempty"`
}

type StatusResponse struct {
	ActiveInstances int       `json:"active_instances"`
	TotalResults    int       `json:"total_results"`
	IsRunning       bool      `json:"is_running"`
	Timestamp       time.Time `json:"timestamp"`
}

type StatsResponse struct {
	TotalResults      int     `json:"total_results"`
	SuccessfulResults int     `json:"successful_results"`
	SuccessRate       float64 `json:"success_rate"`
	ActiveInstances   int     `json:"active_instances"`
	IsRunning         bool    `json:"is_running"`
}

type ResultsResponse struct {
	Results []models.Result `json:"results"`
	Total   int             `json:"total"`
}

type Instance struct {
	InstanceID string    `json:"instance_id"`
	Headless   bool      `json:"headless"`
	Created    time.Time `json:"created"`
}

type InstancesResponse struct {
	Total     int        `json:"total"`
	Instances []Instance `json:"instances"`
}

type AppInfo struct {
	Name   string `json:"name"`
	GitRef string `json:"git_ref"`
	GitSha string `json:"git_sha"`
}
