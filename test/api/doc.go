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
// Package api provides integration test utilities for the food API.
//
// The food service keeps one food list per session, identified by the
// cookies it sets on the first list request, plus a data reset endpoint that
// clears every session at once.  A test case therefore:
//
//  1. lists the collection without cookies and keeps the returned Session,
//  2. adds an item with that Session,
//  3. lists again with the same Session and checks the item is last,
//  4. resets the data, whatever the outcome of the previous steps.
//
// Because the reset is global, cases must never run concurrently against
// the same service.
//
// Requests are built from a RequestSpec, one per base URI, and sent with a
// resty client whose cookie jar is disabled.  Session state only ever travels
// through the Session value handed between calls.
package api
