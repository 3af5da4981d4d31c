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
	"context"
	"errors"
	"fmt"

	"github.com/go-logr/logr"
)

//go:generate mockgen -source=harness.go -destination=mock/interfaces.go -package=mock

// FoodAPI is the HTTP surface of the food service used by the harness.
type FoodAPI interface {
	ListFood(ctx context.Context, session Session) ([]map[string]interface{}, Session, error)
	AddFood(ctx context.Context, session Session, item FoodItem) error
	ResetData(ctx context.Context) error
}

// RoundTrip records what one add-food test case observed.
type RoundTrip struct {
	Item     FoodItem
	Session  Session
	Baseline []map[string]interface{}
	After    []map[string]interface{}
}

// Harness drives the add-food sequence against a FoodAPI.
type Harness struct {
	api    FoodAPI
	logger logr.Logger
}

func NewHarness(api FoodAPI, opts ...Option) *Harness {
	o := newOptions(opts)

	return &Harness{
		api:    api,
		logger: o.logger,
	}
}

// RunAddFood lists the collection without a session, adds item under the
// session the service handed out, lists again with that session and checks
// the collection grew by exactly item.  The data reset is always issued on
// the way out, whatever happened before it.
func (h *Harness) RunAddFood(ctx context.Context, item FoodItem) (roundTrip *RoundTrip, err error) {
	log := h.logger.WithValues("name", item.Name, "type", item.Type, "exotic", item.Exotic)

	defer func() {
		if resetErr := h.api.ResetData(ctx); resetErr != nil {
			log.Error(resetErr, "data reset failed")

			err = errors.Join(err, resetErr)
		}
	}()

	roundTrip = &RoundTrip{Item: item}

	roundTrip.Baseline, roundTrip.Session, err = h.api.ListFood(ctx, Session{})
	if err != nil {
		return roundTrip, fmt.Errorf("baseline: %w", err)
	}

	log.V(1).Info("baseline captured", "count", len(roundTrip.Baseline), "session", roundTrip.Session.String())

	if err = h.api.AddFood(ctx, roundTrip.Session, item); err != nil {
		return roundTrip, err
	}

	if roundTrip.After, _, err = h.api.ListFood(ctx, roundTrip.Session); err != nil {
		return roundTrip, fmt.Errorf("follow-up: %w", err)
	}

	if err = VerifyGrowth(roundTrip.Baseline, roundTrip.After); err != nil {
		return roundTrip, err
	}

	if err = VerifyLastItem(roundTrip.After, item); err != nil {
		return roundTrip, err
	}

	log.Info("food item round trip verified", "count", len(roundTrip.After))

	return roundTrip, nil
}

// VerifyGrowth checks that exactly one record was added.
func VerifyGrowth(baseline, after []map[string]interface{}) error {
	if len(after) != len(baseline)+1 {
		return &AssertionMismatchError{Field: FieldCount, Expected: len(baseline) + 1, Actual: len(after)}
	}

	return nil
}

// VerifyLastItem compares the last record field by field with item.  Values
// must match in type as well, so "false" never equals false.
func VerifyLastItem(records []map[string]interface{}, item FoodItem) error {
	if len(records) == 0 {
		return &AssertionMismatchError{Field: FieldCount, Expected: ">= 1", Actual: 0}
	}

	last := records[len(records)-1]

	expected := []struct {
		field string
		value interface{}
	}{
		{FieldName, item.Name},
		{FieldType, string(item.Type)},
		{FieldExotic, item.Exotic},
	}

	for _, e := range expected {
		actual, ok := last[e.field]
		if !ok || actual != e.value {
			return &AssertionMismatchError{Field: e.field, Expected: e.value, Actual: actual}
		}
	}

	return nil
}
