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
//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// ScheduleReset issues the data reset when the current spec ends, whether it
// passed or failed, so the next spec starts from the same collection.
func ScheduleReset(client *FoodClient, ctx context.Context) {
	DeferCleanup(func() {
		GinkgoWriter.Printf("Resetting food data\n")
		Expect(client.ResetData(ctx)).To(Succeed(), "data reset must succeed to keep later specs deterministic")
	})
}

// AddFoodWithReset lists the collection, adds item under the session the
// service handed out, lists again and verifies the item landed at the end.
func AddFoodWithReset(client *FoodClient, ctx context.Context, item FoodItem) *RoundTrip {
	ScheduleReset(client, ctx)

	baseline, session, err := client.ListFood(ctx, Session{})
	Expect(err).NotTo(HaveOccurred())
	GinkgoWriter.Printf("Baseline has %d items, session cookies: %s\n", len(baseline), session)

	Expect(client.AddFood(ctx, session, item)).To(Succeed())

	after, _, err := client.ListFood(ctx, session)
	Expect(err).NotTo(HaveOccurred())

	for i, record := range after {
		GinkgoWriter.Printf("%d: %v\n", i, record)
	}

	Expect(after).To(HaveLen(len(baseline)+1), "collection should grow by exactly one item")
	VerifyFoodRecord(after[len(after)-1], item)

	return &RoundTrip{
		Item:     item,
		Session:  session,
		Baseline: baseline,
		After:    after,
	}
}

// VerifyFoodRecord checks every field of record against item, types included.
func VerifyFoodRecord(record map[string]interface{}, item FoodItem) {
	Expect(record).To(HaveKeyWithValue(FieldName, item.Name), "item name does not match")
	Expect(record).To(HaveKeyWithValue(FieldType, string(item.Type)), "item type does not match")
	Expect(record).To(HaveKeyWithValue(FieldExotic, item.Exotic), "item exotic flag does not match")
}
