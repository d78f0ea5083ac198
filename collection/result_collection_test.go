package collection_test

import (
	"fmt"
	"sync"

	"ami-publisher/collection"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Result", func() {
	It("indexes images by name and region", func() {
		r := collection.Result{}
		r.AddImage("img-a", "us-east-1", "ami-1")
		r.AddImage("img-a", "eu-west-1", "ami-2")
		r.AddImage("img-b", "us-east-1", "ami-3")

		Expect(r.ByName()).To(Equal(map[string]map[string]string{
			"img-a": {"us-east-1": "ami-1", "eu-west-1": "ami-2"},
			"img-b": {"us-east-1": "ami-3"},
		}))
	})

	It("indexes images by group, name and region", func() {
		r := collection.Result{}
		r.AddGroupImage("group-1", "img-a", "us-east-1", "ami-1")
		r.AddGroupImage("group-1", "img-b", "us-east-1", "ami-3")
		r.AddGroupImage("group-2", "img-a", "us-east-1", "ami-1")

		Expect(r.ByGroup()).To(Equal(map[string]map[string]map[string]string{
			"group-1": {
				"img-a": {"us-east-1": "ami-1"},
				"img-b": {"us-east-1": "ami-3"},
			},
			"group-2": {
				"img-a": {"us-east-1": "ami-1"},
			},
		}))
	})

	It("returns empty maps when nothing was recorded", func() {
		r := collection.Result{}
		Expect(r.ByName()).To(BeEmpty())
		Expect(r.ByGroup()).To(BeEmpty())
	})

	It("returns copies that do not alias the internal state", func() {
		r := collection.Result{}
		r.AddImage("img-a", "us-east-1", "ami-1")

		byName := r.ByName()
		byName["img-a"]["us-east-1"] = "changed"

		Expect(r.ByName()["img-a"]["us-east-1"]).To(Equal("ami-1"))
	})

	It("is safe to add from concurrent goroutines", func() {
		r := collection.Result{}

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				r.AddImage("img-a", fmt.Sprintf("region-%d", i), "ami-1")
			}(i)
		}
		wg.Wait()

		Expect(r.ByName()["img-a"]).To(HaveLen(50))
	})
})
