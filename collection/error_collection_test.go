package collection_test

import (
	"errors"
	"sync"

	"ami-publisher/collection"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Error", func() {
	It("outputs an error naming every failed unit", func() {
		e := collection.Error{}
		e.Add("img-a/us-east-1", errors.New("The quick brown"))
		e.Add("img-a/eu-west-1", errors.New("fox jumps over"))
		e.Add("img-b", errors.New("the lazy dog"))
		err := e.Error()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("img-a/us-east-1: The quick brown"))
		Expect(err.Error()).To(ContainSubstring("img-a/eu-west-1: fox jumps over"))
		Expect(err.Error()).To(ContainSubstring("img-b: the lazy dog"))
	})

	It("does not output an error when no errors have been added", func() {
		e := collection.Error{}
		err := e.Error()
		Expect(err).ToNot(HaveOccurred())
	})

	It("exposes the recorded failures", func() {
		e := collection.Error{}
		e.Add("img-a", errors.New("boom"))

		failures := e.Failures()
		Expect(failures).To(HaveLen(1))
		Expect(failures[0].Unit).To(Equal("img-a"))
		Expect(failures[0].Err).To(MatchError("boom"))
	})

	It("is safe to add from concurrent goroutines", func() {
		e := collection.Error{}

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				e.Add("unit", errors.New("boom"))
			}()
		}
		wg.Wait()

		Expect(e.Failures()).To(HaveLen(50))
	})
})
