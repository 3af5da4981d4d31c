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
	"net/http"
	"strings"
)

// Session is the opaque set of cookies the food service hands out on the
// first list request.  It scopes the caller's view of the collection and is
// passed along unchanged to every following request of a test case.
type Session struct {
	cookies []*http.Cookie
}

// NewSession captures the name and value of each cookie.  Attributes such as
// path and expiry only matter to the server and are dropped.
func NewSession(cookies []*http.Cookie) Session {
	if len(cookies) == 0 {
		return Session{}
	}

	captured := make([]*http.Cookie, 0, len(cookies))

	for _, cookie := range cookies {
		if cookie == nil || cookie.Name == "" {
			continue
		}

		captured = append(captured, &http.Cookie{Name: cookie.Name, Value: cookie.Value})
	}

	return Session{cookies: captured}
}

// Cookies returns a copy of the session cookies, safe to hand to a request.
func (s Session) Cookies() []*http.Cookie {
	cookies := make([]*http.Cookie, len(s.cookies))

	for i, cookie := range s.cookies {
		cookies[i] = &http.Cookie{Name: cookie.Name, Value: cookie.Value}
	}

	return cookies
}

// IsEmpty is true when the service set no cookies, requests then carry no
// session affinity.
func (s Session) IsEmpty() bool {
	return len(s.cookies) == 0
}

// String lists cookie names only, values stay out of logs.
func (s Session) String() string {
	if s.IsEmpty() {
		return "<none>"
	}

	names := make([]string, len(s.cookies))

	for i, cookie := range s.cookies {
		names[i] = cookie.Name
	}

	return strings.Join(names, ",")
}
