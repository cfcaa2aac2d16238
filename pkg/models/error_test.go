package models

import (
	"context"
	"net/http"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
)

func TestErrorMessage(t *testing.T) {
	g := NewWithT(t)

	cause := errors.New("boom")
	e := NewNotFoundError(cause)
	g.Expect(e.Code()).To(Equal(http.StatusNotFound))
	g.Expect(e.Error()).To(Equal("boom"))
	g.Expect(errors.Unwrap(e)).To(BeIdenticalTo(cause))
}

func TestWrapTimeoutErr(t *testing.T) {
	g := NewWithT(t)

	err := WrapTimeoutErr(errors.Wrap(context.DeadlineExceeded, "request"), "action failed")
	var e ErrorWithCode
	g.Expect(errors.As(err, &e)).To(BeTrue())
	g.Expect(e.Code()).To(Equal(http.StatusGatewayTimeout))

	// non-timeout errors pass through without a code
	var e2 ErrorWithCode
	err = WrapTimeoutErr(errors.New("other"), "action failed")
	g.Expect(errors.As(err, &e2)).To(BeFalse())
}

func TestWrapCancelledErr(t *testing.T) {
	g := NewWithT(t)

	err := WrapCancelledErr(context.Canceled)
	var e ErrorWithCode
	g.Expect(errors.As(err, &e)).To(BeTrue())
	g.Expect(e.Code()).To(Equal(StatusRequestCancelled))

	// already coded errors keep their code
	err = WrapCancelledErr(NewBadRequestError(errors.Wrap(context.Canceled, "bad")))
	g.Expect(errors.As(err, &e)).To(BeTrue())
	g.Expect(e.Code()).To(Equal(http.StatusBadRequest))
}

func TestResultOK(t *testing.T) {
	g := NewWithT(t)
	g.Expect(Result{Status: StatusSuccess}.OK()).To(BeTrue())
	g.Expect(Result{Status: StatusError}.OK()).To(BeFalse())
}
