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
package food_test

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"testing"

	. "github.com/onsi/ginkgo/v2" //nolint:revive
	. "github.com/onsi/gomega"    //nolint:revive
	"github.com/pact-foundation/pact-go/v2/consumer"
	"github.com/pact-foundation/pact-go/v2/matchers"

	"github.com/ibs-qa/food-api-tests/test/api"
)

var testingT *testing.T //nolint:gochecknoglobals

func TestContracts(t *testing.T) { //nolint:paralleltest
	testingT = t

	RegisterFailHandler(Fail)
	RunSpecs(t, "Food Consumer Contract Suite")
}

const sessionID = "6F1C2D3B4A5E6F708192A3B4C5D6E7F8"

// createFoodClient creates a food client for the mock server, both endpoints
// are served by the same mock.
func createFoodClient(config consumer.MockServerConfig) *api.FoodClient {
	url := fmt.Sprintf("http://%s", net.JoinHostPort(config.Host, fmt.Sprintf("%d", config.Port)))

	return api.NewFoodClient(&api.TestConfig{
		FoodBaseURL: url + "/api/food",
		ResetURL:    url + "/api/data/reset",
	}, api.WithLogger(GinkgoLogr))
}

func session() api.Session {
	return api.NewSession([]*http.Cookie{{Name: "JSESSIONID", Value: sessionID}})
}

var _ = Describe("Food Service Contract", func() {
	var (
		pact *consumer.V4HTTPMockProvider
		ctx  context.Context
	)

	BeforeEach(func() {
		var err error
		pact, err = consumer.NewV4Pact(consumer.MockHTTPProviderConfig{
			Consumer: "food-api-tests",
			Provider: "food-service",
			PactDir:  "../pacts",
		})
		Expect(err).NotTo(HaveOccurred())
		ctx = context.Background()
	})

	Describe("ListFood", func() {
		Context("when a client without a session lists the collection", func() {
			It("returns the catalog and issues a session cookie", func() {
				pact.AddInteraction().
					Given("the food catalog is seeded").
					UponReceiving("a request for the food list without a session").
					WithRequest("GET", "/api/food/", func(b *consumer.V4RequestBuilder) {
						b.Header("Accept", matchers.String("*/*"))
					}).
					WillRespondWith(200, func(b *consumer.V4ResponseBuilder) {
						b.Header("Set-Cookie", matchers.Regex("JSESSIONID="+sessionID+"; Path=/; HttpOnly", `^JSESSIONID=[0-9A-Za-z]+.*$`))
						b.JSONBody(matchers.EachLike(map[string]interface{}{
							"name":   matchers.String("Яблоко"),
							"type":   matchers.Regex("FRUIT", `^[A-Z_]+$`),
							"exotic": matchers.Like(false),
						}, 1))
					})

				test := func(config consumer.MockServerConfig) error {
					records, session, err := createFoodClient(config).ListFood(ctx, api.Session{})
					if err != nil {
						return fmt.Errorf("listing food: %w", err)
					}

					Expect(records).NotTo(BeEmpty())
					Expect(records[0]).To(HaveKeyWithValue(api.FieldExotic, false))
					Expect(session.Cookies()).To(HaveLen(1))
					Expect(session.Cookies()[0].Value).To(Equal(sessionID))

					return nil
				}

				Expect(pact.ExecuteTest(testingT, test)).To(Succeed())
			})
		})
	})

	Describe("AddFood", func() {
		Context("when a client adds an item within its session", func() {
			It("accepts the item", func() {
				pact.AddInteraction().
					Given("a food session exists").
					UponReceiving("a request to add a food item within a session").
					WithRequest("POST", "/api/food/", func(b *consumer.V4RequestBuilder) {
						b.Header("Content-Type", matchers.String("application/json"))
						b.Header("Cookie", matchers.Regex("JSESSIONID="+sessionID, `^JSESSIONID=[0-9A-Za-z]+$`))
						b.JSONBody(map[string]interface{}{
							"name":   matchers.Like("Ананас"),
							"type":   matchers.Regex("FRUIT", `^[A-Z_]+$`),
							"exotic": matchers.Like(true),
						})
					}).
					WillRespondWith(200)

				test := func(config consumer.MockServerConfig) error {
					item := api.FoodItem{Name: "Ананас", Type: api.FoodTypeFruit, Exotic: true}

					return createFoodClient(config).AddFood(ctx, session(), item)
				}

				Expect(pact.ExecuteTest(testingT, test)).To(Succeed())
			})
		})
	})

	Describe("ResetData", func() {
		Context("when any client resets the data", func() {
			It("clears every session", func() {
				pact.AddInteraction().
					Given("a food session exists").
					UponReceiving("a request to reset all food data").
					WithRequest("POST", "/api/data/reset").
					WillRespondWith(200)

				test := func(config consumer.MockServerConfig) error {
					return createFoodClient(config).ResetData(ctx)
				}

				Expect(pact.ExecuteTest(testingT, test)).To(Succeed())
			})
		})
	})
})
