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

// Endpoints contains all API endpoint patterns, relative to the base URI
// of the request spec they are sent with.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

// Collection is the food list, read with GET and appended to with POST.
func (e *Endpoints) Collection() string {
	return "/"
}

// Reset is the data reset endpoint; its base URI is already the full path.
func (e *Endpoints) Reset() string {
	return ""
}
