package models

import (
	"time"

	"github.com/autoweb/autoweb/pkg/models"
)

const (
	SessionCreatedEventType = "SessionCreated"
	SessionClosedEventType  = "SessionClosed"
	ResultRecordedEventType = "ResultRecorded"
)

type SessionCreated struct {
	InstanceID    string
	Headless      bool
	StartDuration time.Duration
	Error         error
}

type SessionClosed struct {
	InstanceID      string
	SessionDuration time.Duration
}

type ResultRecorded struct {
	Result models.Result
}

func NewSessionCreatedEvent(s SessionCreated) *Event[SessionCreated] {
	return NewEvent(SessionCreatedEventType, now(), s)
}

func NewSessionClosedEvent(s SessionClosed) *Event[SessionClosed] {
	return NewEvent(SessionClosedEventType, now(), s)
}

func NewResultRecordedEvent(r ResultRecorded) *Event[ResultRecorded] {
	return NewEvent(ResultRecordedEventType, now(), r)
}
