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
// Package fakefood is an in-process stand-in for the food service.  It keeps
// one food list per session cookie and a global data reset, which is enough
// to exercise the harness without a running sandbox.
package fakefood

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// SessionCookie is the cookie that scopes a client's food list.
const SessionCookie = "JSESSIONID"

const (
	FoodPath  = "/api/food"
	ResetPath = "/api/data/reset"

	// CollectionPath is the request path the list and add calls arrive on.
	CollectionPath = FoodPath + "/"
)

type Item struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Exotic bool   `json:"exotic"`
}

// Seed is the catalog every new session starts with.
func Seed() []Item {
	return []Item{
		{Name: "Апельсин", Type: "FRUIT", Exotic: true},
		{Name: "Капуста", Type: "VEGETABLE", Exotic: false},
		{Name: "Помидор", Type: "VEGETABLE", Exotic: true},
		{Name: "Яблоко", Type: "FRUIT", Exotic: false},
	}
}

// Request is what the service saw of one incoming request.
type Request struct {
	Method string
	Path   string
	Cookie string
	Accept string
}

type fault struct {
	status int
	body   string
}

// Service holds the per-session state.
type Service struct {
	lock     sync.Mutex
	sessions map[string][]Item
	nextID   int
	faults   map[string]fault
	requests []Request
	// SetCookies can be switched off to model a service without session
	// affinity.
	SetCookies bool
}

func New() *Service {
	return &Service{
		sessions:   map[string][]Item{},
		faults:     map[string]fault{},
		SetCookies: true,
	}
}

func faultKey(method, path string) string {
	return method + " " + path
}

// FailNext makes the next request matching method and path answer with
// status instead of being served.
func (s *Service) FailNext(method, path string, status int) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.faults[faultKey(method, path)] = fault{status: status, body: http.StatusText(status)}
}

// ServeRawNext makes the next request matching method and path answer 200
// with body verbatim.
func (s *Service) ServeRawNext(method, path, body string) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.faults[faultKey(method, path)] = fault{status: http.StatusOK, body: body}
}

// Requests returns every request seen so far, in order.
func (s *Service) Requests() []Request {
	s.lock.Lock()
	defer s.lock.Unlock()

	return append([]Request(nil), s.requests...)
}

// SessionCount is the number of live sessions.
func (s *Service) SessionCount() int {
	s.lock.Lock()
	defer s.lock.Unlock()

	return len(s.sessions)
}

// Handler returns the service router.
func (s *Service) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(s.record)
	r.Use(s.inject)

	r.Route(FoodPath, func(r chi.Router) {
		r.Get("/", s.list)
		r.Post("/", s.add)
	})

	r.Post(ResetPath, s.reset)

	return r
}

func (s *Service) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.lock.Lock()
		s.requests = append(s.requests, Request{
			Method: r.Method,
			Path:   r.URL.Path,
			Cookie: r.Header.Get("Cookie"),
			Accept: r.Header.Get("Accept"),
		})
		s.lock.Unlock()

		next.ServeHTTP(w, r)
	})
}

func (s *Service) inject(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := faultKey(r.Method, r.URL.Path)

		s.lock.Lock()
		f, ok := s.faults[key]
		delete(s.faults, key)
		s.lock.Unlock()

		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(f.status)
		_, _ = w.Write([]byte(f.body))
	})
}

// session resolves the caller's session, opening a fresh one seeded with the
// catalog when the cookie is missing or no longer known.
// Must be called with the lock held.
func (s *Service) session(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		if _, ok := s.sessions[cookie.Value]; ok {
			return cookie.Value
		}
	}

	s.nextID++
	id := fmt.Sprintf("%032X", s.nextID)
	s.sessions[id] = Seed()

	if s.SetCookies {
		http.SetCookie(w, &http.Cookie{Name: SessionCookie, Value: id, Path: "/", HttpOnly: true})
	}

	return id
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)

	_ = encoder.Encode(v)
}

func (s *Service) list(w http.ResponseWriter, r *http.Request) {
	s.lock.Lock()
	id := s.session(w, r)
	items := append([]Item{}, s.sessions[id]...)
	s.lock.Unlock()

	writeJSON(w, http.StatusOK, items)
}

func (s *Service) add(w http.ResponseWriter, r *http.Request) {
	if mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type")); err != nil || mediaType != "application/json" {
		http.Error(w, "expected application/json", http.StatusUnsupportedMediaType)
		return
	}

	var item Item

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.lock.Lock()
	id := s.session(w, r)
	s.sessions[id] = append(s.sessions[id], item)
	s.lock.Unlock()

	w.WriteHeader(http.StatusOK)
}

func (s *Service) reset(w http.ResponseWriter, _ *http.Request) {
	s.lock.Lock()
	s.sessions = map[string][]Item{}
	s.lock.Unlock()

	w.WriteHeader(http.StatusOK)
}

// Server is a Service listening on a loopback port.
type Server struct {
	*Service

	server *httptest.Server
}

// Start serves a new Service until Close is called.
func Start() *Server {
	service := New()

	return &Server{
		Service: service,
		server:  httptest.NewServer(service.Handler()),
	}
}

// FoodURL is the collection base URI, without the trailing slash.
func (s *Server) FoodURL() string {
	return s.server.URL + FoodPath
}

func (s *Server) ResetURL() string {
	return s.server.URL + ResetPath
}

func (s *Server) Close() {
	s.server.Close()
}
