/*
Copyright 2026 the Food API Test Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package suites

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ibs-qa/food-api-tests/test/api"
)

// Every spec mutates the one collection the service shares between sessions
// and finishes with a global reset, so none of them may overlap.
var _ = Describe("Food Collection", Serial, func() {
	Context("When adding a food item", func() {
		DescribeTable("should append exactly the posted item to the session's collection",
			func(name string, foodType api.FoodType, exotic bool) {
				// Given: the collection as seen without a session
				// When: I add an item with the session the service issued
				// Then: the collection grew by one and the item is last, unchanged
				item := api.FoodItem{Name: name, Type: foodType, Exotic: exotic}

				roundTrip := api.AddFoodWithReset(client, ctx, item)

				Expect(roundTrip.After).To(HaveLen(len(roundTrip.Baseline) + 1))
			},
			Entry("vegetable with special characters", "йцю123qw!@#$%^&*()_+/|", api.FoodTypeVegetable, false),
			Entry("exotic fruit", "Ананас", api.FoodTypeFruit, true),
		)

		It("should keep the previously listed items in order", func() {
			roundTrip := api.AddFoodWithReset(client, ctx, api.NewFoodItem().WithType(api.FoodTypeFruit).Build())

			Expect(roundTrip.After[:len(roundTrip.Baseline)]).To(Equal(roundTrip.Baseline))
		})

		It("should not show the item to a request without the session", func() {
			roundTrip := api.AddFoodWithReset(client, ctx, api.NewFoodItem().Build())
			if roundTrip.Session.IsEmpty() {
				Skip("the service issued no session cookies")
			}

			anonymous, _, err := client.ListFood(ctx, api.Session{})
			Expect(err).NotTo(HaveOccurred())
			Expect(anonymous).To(HaveLen(len(roundTrip.Baseline)))
		})
	})

	Context("When resetting the data", func() {
		It("should restore the baseline observed before any item was added", func() {
			api.ScheduleReset(client, ctx)

			// Given: the collection as seen without a session
			baseline, session, err := client.ListFood(ctx, api.Session{})
			Expect(err).NotTo(HaveOccurred())

			// When: an item is added and the data is reset
			Expect(client.AddFood(ctx, session, api.NewFoodItem().Build())).To(Succeed())
			Expect(client.ResetData(ctx)).To(Succeed())

			// Then: a fresh list request sees the original collection
			after, _, err := client.ListFood(ctx, api.Session{})
			Expect(err).NotTo(HaveOccurred())
			Expect(after).To(Equal(baseline))
		})

		It("should give consecutive cases the same baseline", func() {
			harness := api.NewHarness(client, api.WithLogger(GinkgoLogr))

			var baselines []int

			for _, scenario := range api.DefaultScenarios() {
				By(scenario.Description)

				roundTrip, err := harness.RunAddFood(ctx, scenario.Item)
				Expect(err).NotTo(HaveOccurred())

				baselines = append(baselines, len(roundTrip.Baseline))
			}

			Expect(baselines).To(HaveEach(baselines[0]))
		})
	})
})
