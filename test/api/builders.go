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

import (
	"github.com/google/uuid"
)

func generateRandomName(prefix string) string {
	return prefix + "-" + uuid.NewString()[:8]
}

func GenerateTestID() string {
	return generateRandomName("test")
}

// FoodItemBuilder builds food items for testing.
type FoodItemBuilder struct {
	item FoodItem
}

// NewFoodItem creates a builder for a non exotic vegetable with a unique name.
func NewFoodItem() *FoodItemBuilder {
	return &FoodItemBuilder{
		item: FoodItem{
			Name:   GenerateTestID(),
			Type:   FoodTypeVegetable,
			Exotic: false,
		},
	}
}

// WithName sets the item name.
func (b *FoodItemBuilder) WithName(name string) *FoodItemBuilder {
	b.item.Name = name
	return b
}

// WithType sets the item type.
func (b *FoodItemBuilder) WithType(foodType FoodType) *FoodItemBuilder {
	b.item.Type = foodType
	return b
}

// WithExotic sets the exotic flag.
func (b *FoodItemBuilder) WithExotic(exotic bool) *FoodItemBuilder {
	b.item.Exotic = exotic
	return b
}

// Build returns the completed item.
func (b *FoodItemBuilder) Build() FoodItem {
	return b.item
}
