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
	"github.com/go-logr/logr"
)

type options struct {
	logger logr.Logger
}

// Option customises a FoodClient or a Harness.
type Option func(*options)

// WithLogger routes request and step logging to logger.
func WithLogger(logger logr.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		logger: logr.Discard(),
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}
