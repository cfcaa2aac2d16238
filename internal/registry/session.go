package registry

import (
	"time"

	"github.com/autoweb/autoweb/internal/browser"
)

type Session struct {
	id       string
	headless bool
	drv      browser.Driver
	created  time.Time
}

func NewSession(id string, headless bool, drv browser.Driver, created time.Time) *Session {
	return &Session{
		id:       id,
		headless: headless,
		drv:      drv,
		created:  created,
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Headless() bool {
	return s.headless
}

func (s *Session) Driver() browser.Driver {
	return s.drv
}

func (s *Session) Created() time.Time {
	return s.created
}
