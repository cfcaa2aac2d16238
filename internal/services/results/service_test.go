package results_test

import (
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zaptest"

	"github.com/autoweb/autoweb/internal/services/results"
	"github.com/autoweb/autoweb/mocks"
	evmodels "github.com/autoweb/autoweb/pkg/event/models"
	"github.com/autoweb/autoweb/pkg/models"
)

func testResult(name string, status models.ResultStatus) models.Result {
	return models.Result{
		Name:      name,
		Type:      models.ActionNavigation,
		Status:    status,
		Timestamp: time.UnixMilli(123),
	}
}

func TestMemoryResultLog_Record(t *testing.T) {
	g := NewWithT(t)
	broker := new(mocks.EventBroker)
	log := results.NewMemoryResultLog(0, broker, zaptest.NewLogger(t))

	var published evmodels.IEvent
	broker.EXPECT().Publish(mock.Anything).Run(func(event evmodels.IEvent) {
		published = event
	}).Once()

	res := testResult("nav", models.StatusSuccess)
	log.Record(res)

	g.Expect(log.List()).To(Equal([]models.Result{res}))
	g.Expect(published.EventType()).To(Equal(evmodels.ResultRecordedEventType))

	broker.AssertExpectations(t)
}

func TestMemoryResultLog_Capacity(t *testing.T) {
	g := NewWithT(t)
	broker := new(mocks.EventBroker)
	broker.EXPECT().Publish(mock.Anything).Times(3)
	log := results.NewMemoryResultLog(2, broker, zaptest.NewLogger(t))

	log.Record(testResult("r1", models.StatusSuccess))
	log.Record(testResult("r2", models.StatusSuccess))
	log.Record(testResult("r3", models.StatusError))

	list := log.List()
	g.Expect(list).To(HaveLen(2))
	g.Expect(list[0].Name).To(Equal("r2"))
	g.Expect(list[1].Name).To(Equal("r3"))
}

func TestMemoryResultLog_Stats(t *testing.T) {
	g := NewWithT(t)
	broker := new(mocks.EventBroker)
	broker.EXPECT().Publish(mock.Anything).Times(3)
	log := results.NewMemoryResultLog(0, broker, zaptest.NewLogger(t))

	g.Expect(log.Stats()).To(Equal(results.Stats{}))

	log.Record(testResult("r1", models.StatusSuccess))
	log.Record(testResult("r2", models.StatusSuccess))
	log.Record(testResult("r3", models.StatusError))

	st := log.Stats()
	g.Expect(st.Total).To(Equal(3))
	g.Expect(st.Successful).To(Equal(2))
	g.Expect(st.SuccessRate).To(BeNumerically("~", 66.7, 0.01))
}

func TestMemoryResultLog_ListIsCopy(t *testing.T) {
	g := NewWithT(t)
	broker := new(mocks.EventBroker)
	broker.EXPECT().Publish(mock.Anything).Once()
	log := results.NewMemoryResultLog(0, broker, zaptest.NewLogger(t))

	log.Record(testResult("r1", models.StatusSuccess))

	list := log.List()
	list[0].Name = "mutated"
	g.Expect(log.List()[0].Name).To(Equal("r1"))
}
