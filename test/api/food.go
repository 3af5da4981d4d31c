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
package api

// FoodType classifies a food item.  The service accepts more values than the
// ones named here, unknown values are passed through unchanged.
type FoodType string

const (
	FoodTypeVegetable FoodType = "VEGETABLE"
	FoodTypeFruit     FoodType = "FRUIT"
)

// FoodItem is the record the food service stores per session.
type FoodItem struct {
	Name   string   `json:"name"`
	Type   FoodType `json:"type"`
	Exotic bool     `json:"exotic"`
}

// Record field names, as they appear on the wire.
const (
	FieldName   = "name"
	FieldType   = "type"
	FieldExotic = "exotic"
	// FieldCount names the collection length in assertion errors.
	FieldCount = "count"
)

// Scenario is one parameterised add-food test case.
type Scenario struct {
	Description string
	Item        FoodItem
}

// DefaultScenarios are the fixed cases every run exercises.  The first name
// mixes Cyrillic, Latin, digits and punctuation that would need escaping if
// a body were built by hand.
func DefaultScenarios() []Scenario {
	return []Scenario{
		{
			Description: "vegetable with special characters",
			Item: FoodItem{
				Name:   "йцю123qw!@#$%^&*()_+/|",
				Type:   FoodTypeVegetable,
				Exotic: false,
			},
		},
		{
			Description: "exotic fruit",
			Item: FoodItem{
				Name:   "Ананас",
				Type:   FoodTypeFruit,
				Exotic: true,
			},
		},
	}
}
