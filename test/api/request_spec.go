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
	"strings"

	"github.com/go-resty/resty/v2"
)

const (
	acceptAny       = "*/*"
	contentTypeJSON = "application/json"
)

// RequestSpec is the immutable request configuration shared by every call
// made against one base URI.
type RequestSpec struct {
	baseURI     string
	accept      string
	contentType string
}

// BuildRequestSpec returns the request spec for baseURI: accept anything,
// send JSON.
func BuildRequestSpec(baseURI string) RequestSpec {
	return RequestSpec{
		baseURI:     strings.TrimSuffix(baseURI, "/"),
		accept:      acceptAny,
		contentType: contentTypeJSON,
	}
}

func (s RequestSpec) BaseURI() string {
	return s.baseURI
}

func (s RequestSpec) Accept() string {
	return s.accept
}

func (s RequestSpec) ContentType() string {
	return s.contentType
}

// newClient binds a resty client to the spec.  The cookie jar is removed so
// the only cookies ever sent are the ones a Session carries explicitly.
func (s RequestSpec) newClient(config *TestConfig) *resty.Client {
	client := resty.New().
		SetBaseURL(s.baseURI).
		SetHeader("Accept", s.accept).
		SetHeader("Content-Type", s.contentType).
		SetJSONEscapeHTML(false).
		SetCookieJar(nil)

	if config.RequestTimeout > 0 {
		client.SetTimeout(config.RequestTimeout)
	}

	return client
}
