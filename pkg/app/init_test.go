package app

import (
	"bytes"
	"io"
	"net/http"
	"os"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zaptest"

	"github.com/autoweb/autoweb/mocks"
	"github.com/autoweb/autoweb/pkg/engines"
)

const testEnginesURL = "https://remote/engines"

var engData = []byte("test_engines")

func Test_loadEnginesConfig_local(t *testing.T) {
	InitLog = zaptest.NewLogger(t).Sugar()
	g := NewWithT(t)

	c := new(mocks.Config)
	dir := t.TempDir()
	engFile := dir + "/engines.yaml"
	err := os.WriteFile(engFile, engData, 0644)
	g.Expect(err).ToNot(HaveOccurred())

	c.EXPECT().EnginesURI().Return([]string{engFile, testEnginesURL}).Once()
	got := loadEnginesConfig(c, nil)

	g.Expect(got).To(Equal(engData))
	c.AssertExpectations(t)
}

func Test_loadEnginesConfig_FallbackRemote(t *testing.T) {
	InitLog = zaptest.NewLogger(t).Sugar()
	g := NewWithT(t)

	c := new(mocks.Config)
	hc := new(mocks.HTTPClient)

	c.EXPECT().EnginesURI().Return([]string{"qqqqqq/bebebe", testEnginesURL}).Once()
	hc.EXPECT().Do(mock.Anything).RunAndReturn(func(req *http.Request) (*http.Response, error) {
		g.Expect(req.Method).To(Equal(http.MethodGet))
		g.Expect(req.URL.String()).To(Equal(testEnginesURL))

		resp := &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(bytes.NewReader(engData))}
		return resp, nil
	}).Once()
	got := loadEnginesConfig(c, hc)

	g.Expect(got).To(Equal(engData))
	c.AssertExpectations(t)
	hc.AssertExpectations(t)
}

func Test_loadEnginesConfig_FallbackBuiltin(t *testing.T) {
	InitLog = zaptest.NewLogger(t).Sugar()
	g := NewWithT(t)

	c := new(mocks.Config)
	hc := new(mocks.HTTPClient)

	c.EXPECT().EnginesURI().Return([]string{"qqqqqq/bebebe", testEnginesURL}).Once()
	hc.EXPECT().Do(mock.Anything).Return(&http.Response{
		StatusCode: http.StatusInternalServerError,
		Body:       io.NopCloser(bytes.NewReader(nil)),
	}, nil).Once()
	got := loadEnginesConfig(c, hc)

	g.Expect(got).To(Equal([]byte(engines.DefaultCatalogYAML)))
	c.AssertExpectations(t)
	hc.AssertExpectations(t)
}

func Test_listen(t *testing.T) {
	g := NewWithT(t)

	c := new(mocks.Config)
	c.EXPECT().Listen().Return("127.0.0.1:9999").Once()

	g.Expect(listen(c)).To(Equal("127.0.0.1:9999"))
	c.AssertExpectations(t)
}
