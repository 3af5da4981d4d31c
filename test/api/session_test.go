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
package api_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ibs-qa/food-api-tests/test/api"
)

func TestNewSessionKeepsNameAndValue(t *testing.T) {
	t.Parallel()

	session := api.NewSession([]*http.Cookie{
		{Name: "JSESSIONID", Value: "0A1B", Path: "/", HttpOnly: true, Expires: time.Now().Add(time.Hour)},
		nil,
		{Name: "", Value: "ignored"},
		{Name: "route", Value: "r1"},
	})

	require.False(t, session.IsEmpty())
	require.Equal(t, []*http.Cookie{
		{Name: "JSESSIONID", Value: "0A1B"},
		{Name: "route", Value: "r1"},
	}, session.Cookies())
	require.Equal(t, "JSESSIONID,route", session.String())
}

func TestSessionCookiesAreCopies(t *testing.T) {
	t.Parallel()

	session := api.NewSession([]*http.Cookie{{Name: "JSESSIONID", Value: "0A1B"}})

	cookies := session.Cookies()
	cookies[0].Value = "tampered"

	require.Equal(t, "0A1B", session.Cookies()[0].Value)
}

func TestEmptySession(t *testing.T) {
	t.Parallel()

	for _, session := range []api.Session{{}, api.NewSession(nil), api.NewSession([]*http.Cookie{})} {
		require.True(t, session.IsEmpty())
		require.Empty(t, session.Cookies())
		require.Equal(t, "<none>", session.String())
	}
}
