package controllers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	. "github.com/onsi/gomega"
	"go.uber.org/zap/zaptest"

	"github.com/autoweb/autoweb/pkg/event"
	evmodels "github.com/autoweb/autoweb/pkg/event/models"
	"github.com/autoweb/autoweb/pkg/models"
)

type wsMessage struct {
	Type string                 `json:"type"`
	Data map[string]interface{} `json:"data"`
}

// dialEvents connects to the stream endpoint and keeps republishing ev
// until the first message comes back, so the test does not race the
// handler registering its subscription.
func dialEvents(t *testing.T, g *WithT, eb event.EventBroker, ev evmodels.IEvent) wsMessage {
	t.Helper()

	cntr := NewEventsController(eb, zaptest.NewLogger(t))

	e := echo.New()
	e.GET("/api/events", cntr.Stream)
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/events"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	g.Expect(err).ToNot(HaveOccurred())
	t.Cleanup(func() {
		_ = resp.Body.Close()
		_ = conn.Close()
	})

	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			eb.Publish(ev)
			select {
			case <-done:
				return
			case <-time.After(50 * time.Millisecond):
			}
		}
	}()

	var msg wsMessage
	g.Expect(conn.SetReadDeadline(time.Now().Add(5 * time.Second))).To(Succeed())
	_, raw, err := conn.ReadMessage()
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(json.Unmarshal(raw, &msg)).To(Succeed())
	return msg
}

func TestEventsController_Stream_SessionCreated(t *testing.T) {
	g := NewWithT(t)

	eb := event.NewEventBrokerImpl(10, zaptest.NewLogger(t))
	msg := dialEvents(t, g, eb, evmodels.NewSessionCreatedEvent(evmodels.SessionCreated{
		InstanceID:    "browser_1",
		Headless:      true,
		StartDuration: 1500 * time.Millisecond,
	}))

	g.Expect(msg.Type).To(Equal(evmodels.SessionCreatedEventType))
	g.Expect(msg.Data).To(HaveKeyWithValue("instance_id", "browser_1"))
	g.Expect(msg.Data).To(HaveKeyWithValue("headless", true))
	g.Expect(msg.Data).To(HaveKeyWithValue("start_duration_ms", float64(1500)))
	g.Expect(msg.Data).ToNot(HaveKey("error"))
}

func TestEventsController_Stream_ResultRecorded(t *testing.T) {
	g := NewWithT(t)

	eb := event.NewEventBrokerImpl(10, zaptest.NewLogger(t))
	msg := dialEvents(t, g, eb, evmodels.NewResultRecordedEvent(evmodels.ResultRecorded{
		Result: models.Result{
			Name:       "navigate",
			Type:       models.ActionNavigation,
			Status:     models.StatusSuccess,
			InstanceID: "browser_1",
		},
	}))

	g.Expect(msg.Type).To(Equal(evmodels.ResultRecordedEventType))
	g.Expect(msg.Data).To(HaveKeyWithValue("name", "navigate"))
	g.Expect(msg.Data).To(HaveKeyWithValue("status", "success"))
}
