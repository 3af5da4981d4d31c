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
	"fmt"
)

// UnexpectedStatusCodeError is returned when the service answers with any
// status other than the one the step requires.
type UnexpectedStatusCodeError struct {
	Method   string
	Endpoint string
	Expected int
	Actual   int
	Body     string
	TraceID  string
}

func (e *UnexpectedStatusCodeError) Error() string {
	return fmt.Sprintf("unexpected status code from %s %s: expected %d, got %d, body: %s (trace ID: %s)",
		e.Method, e.Endpoint, e.Expected, e.Actual, e.Body, e.TraceID)
}

// ResponseParseError is returned when a response body is not a JSON array
// of objects.
type ResponseParseError struct {
	Endpoint string
	RawBody  string
	Err      error
}

func (e *ResponseParseError) Error() string {
	return fmt.Sprintf("parsing response from %s: %v, body: %q", e.Endpoint, e.Err, e.RawBody)
}

func (e *ResponseParseError) Unwrap() error {
	return e.Err
}

// AssertionMismatchError names the collection property or record field that
// did not hold.
type AssertionMismatchError struct {
	Field    string
	Expected interface{}
	Actual   interface{}
}

func (e *AssertionMismatchError) Error() string {
	return fmt.Sprintf("%s mismatch: expected %#v (%T), got %#v (%T)", e.Field, e.Expected, e.Expected, e.Actual, e.Actual)
}
