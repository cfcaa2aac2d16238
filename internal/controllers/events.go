package controllers

import (
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/autoweb/autoweb/pkg/event"
	evmodels "github.com/autoweb/autoweb/pkg/event/models"
	"github.com/autoweb/autoweb/pkg/models"
)

const wsWriteTimeout = 10 * time.Second

type wsEvent struct {
	Type string      `json:"type"`
	Time time.Time   `json:"time"`
	Data interface{} `json:"data"`
}

// EventsController pushes hub events to dashboard clients over a
// websocket, one JSON message per event.
type EventsController struct {
	eb       event.EventBroker
	upgrader websocket.Upgrader
	l        *zap.SugaredLogger
}

func NewEventsController(eb event.EventBroker, l *zap.Logger) *EventsController {
	return &EventsController{
		eb: eb,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		l: l.Sugar(),
	}
}

func (e *EventsController) Stream(c echo.Context) error {
	conn, err := e.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return models.NewBadRequestError(err)
	}
	defer conn.Close()

	ch := e.eb.Subscribe(
		evmodels.SessionCreatedEventType,
		evmodels.SessionClosedEventType,
		evmodels.ResultRecordedEventType,
	)
	defer e.eb.Unsubscribe(ch)

	// the read pump only detects the client going away
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	e.l.Debugw("event stream client connected", zap.String("remote", c.Request().RemoteAddr))
	for {
		select {
		case <-closed:
			return nil
		case <-c.Request().Context().Done():
			return nil
		case ev, ok := <-ch:
			if !ok {
				return nil
			}
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := conn.WriteJSON(wsEvent{
				Type: ev.EventType(),
				Time: ev.EventTime(),
				Data: eventData(ev),
			}); err != nil {
				e.l.Debugw("event stream client disconnected", zap.Error(err))
				return nil
			}
		}
	}
}

func eventData(ev evmodels.IEvent) interface{} {
	switch e := ev.(type) {
	case *evmodels.Event[evmodels.SessionCreated]:
		data := map[string]interface{}{
			"instance_id":       e.Attributes.InstanceID,
			"headless":          e.Attributes.Headless,
			"start_duration_ms": e.Attributes.StartDuration.Milliseconds(),
		}
		if e.Attributes.Error != nil {
			data["error"] = e.Attributes.Error.Error()
		}
		return data
	case *evmodels.Event[evmodels.SessionClosed]:
		return map[string]interface{}{
			"instance_id":         e.Attributes.InstanceID,
			"session_duration_ms": e.Attributes.SessionDuration.Milliseconds(),
		}
	case *evmodels.Event[evmodels.ResultRecorded]:
		return e.Attributes.Result
	}
	return nil
}
