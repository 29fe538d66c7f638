package model

import (
	"os"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pkg/errors"
)

var _ = Describe("Errors", func() {
	Context("descriptions", func() {
		It("prefixes I/O errors with underlying error", func() {
			err := &IOError{Path: "a.json", Err: os.ErrNotExist}
			Expect(err.Error()).To(Equal("I/O error: " + os.ErrNotExist.Error()))
		})

		It("prefixes parse errors with underlying error", func() {
			err := &ParseError{Path: "a.json", Err: errors.New("unexpected EOF")}
			Expect(err.Error()).To(Equal("JSON error: unexpected EOF"))
		})

		It("includes offending value in negative-balance errors", func() {
			err := &NegativeBalanceError{Balance: -5464}
			Expect(err.Error()).To(Equal("Negative balance of -5464 credits"))
		})
	})

	Context("unwrapping", func() {
		It("exposes the OS-error of I/O errors", func() {
			var err error = &IOError{Path: "a.json", Err: os.ErrNotExist}
			Expect(errors.Is(err, os.ErrNotExist)).To(BeTrue())
			Expect(errors.Cause(err)).To(Equal(os.ErrNotExist))
		})

		It("exposes the decoder-error of parse errors", func() {
			cause := errors.New("bad json")
			var err error = &ParseError{Err: cause}
			Expect(errors.Is(err, cause)).To(BeTrue())
		})
	})

	Context("classifying", func() {
		It("classifies typed errors through wrapping", func() {
			Expect(Kind(errors.Wrap(&IOError{Err: os.ErrPermission}, "loading"))).
				To(Equal(KindIO))
			Expect(Kind(errors.Wrap(&ParseError{Err: errors.New("x")}, "loading"))).
				To(Equal(KindParse))
			Expect(Kind(errors.Wrap(&NegativeBalanceError{Balance: -1}, "summing"))).
				To(Equal(KindNegativeBalance))
		})

		It("classifies nil and untyped errors as unknown", func() {
			Expect(Kind(nil)).To(Equal(KindUnknown))
			Expect(Kind(errors.New("other"))).To(Equal(KindUnknown))
		})
	})
})
