package labfolder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"
)

const (
	testToken      = "test-session-token"
	testUsername   = "ada@lab.example"
	testPassword   = "correct horse battery staple"
	testUserID     = "101"
	testMembership = "9001"
	testGroupID    = "g1"
)

// The /me envelope id is deliberately different from the group-membership id
// so tests can prove the profile envelope never leaks into membership state.
const testMeBody = `{
	"id": "77",
	"user": {
		"id": "101",
		"first_name": "Ada",
		"last_name": "Lovelace",
		"email": "ada@lab.example"
	}
}`

const testGroupBody = `{
	"id": "g1",
	"name": "Wet Lab",
	"children": [
		{"id": "9001", "user": {"id": "101", "first_name": "Ada", "last_name": "Lovelace", "email": "ada@lab.example"}},
		{"id": "9002", "user": {"id": "202", "first_name": "Bob", "last_name": "Crick", "email": "bob@lab.example"}}
	]
}`

type recordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// fakeServer is an in-memory stand-in for the labfolder service. It ships
// with login, profile, logout, and group-tree handlers; tests register
// whatever else they need on mux. Every request is recorded so tests can
// assert on counts, headers, and bodies.
type fakeServer struct {
	t   *testing.T
	mux *http.ServeMux
	srv *httptest.Server

	mu       sync.Mutex
	requests []recordedRequest

	password string
	token    string
	meBody   string
	meStatus int
}

func newFakeServer(t *testing.T) *fakeServer {
	t.Helper()

	f := &fakeServer{
		t:        t,
		mux:      http.NewServeMux(),
		password: testPassword,
		token:    testToken,
		meBody:   testMeBody,
		meStatus: http.StatusOK,
	}
	f.srv = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.srv.Close)

	f.mux.HandleFunc("POST /auth/login", f.handleLogin)
	f.mux.HandleFunc("GET /me", f.handleMe)
	f.mux.HandleFunc("POST /auth/logout", f.handleLogout)
	f.mux.HandleFunc("GET /groups/"+testGroupID+"/tree", f.handleGroupTree)
	return f
}

func (f *fakeServer) URL() string {
	return f.srv.URL
}

func (f *fakeServer) serve(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	require.NoError(f.t, err)
	r.Body = io.NopCloser(bytes.NewReader(body))

	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Header: r.Header.Clone(),
		Body:   body,
	})
	f.mu.Unlock()

	f.mux.ServeHTTP(w, r)
}

// reset drops the request log, so a test counts only its own traffic.
func (f *fakeServer) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = nil
}

func (f *fakeServer) all() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedRequest(nil), f.requests...)
}

func (f *fakeServer) byPath(path string) []recordedRequest {
	var out []recordedRequest
	for _, r := range f.all() {
		if r.Path == path {
			out = append(out, r)
		}
	}
	return out
}

func (f *fakeServer) authed(w http.ResponseWriter, r *http.Request) bool {
	if r.Header.Get("Authorization") != "Bearer "+f.token {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Authentication required."})
		return false
	}
	return true
}

func (f *fakeServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		User     string `json:"user"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Malformed request body."})
		return
	}
	if creds.Password != f.password {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid credentials."})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": f.token})
}

func (f *fakeServer) handleMe(w http.ResponseWriter, r *http.Request) {
	if !f.authed(w, r) {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(f.meStatus)
	fmt.Fprint(w, f.meBody)
}

func (f *fakeServer) handleLogout(w http.ResponseWriter, r *http.Request) {
	if !f.authed(w, r) {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (f *fakeServer) handleGroupTree(w http.ResponseWriter, r *http.Request) {
	if !f.authed(w, r) {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, testGroupBody)
}

// servePaged registers a listing endpoint that slices items by the limit and
// offset query parameters, the way the real service pages collections.
func servePaged[T any](f *fakeServer, pattern string, items func() []T) {
	f.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		if !f.authed(w, r) {
			return
		}
		limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
		if err != nil || limit < 1 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid limit."})
			return
		}
		offset, err := strconv.Atoi(r.URL.Query().Get("offset"))
		if err != nil || offset < 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid offset."})
			return
		}

		all := items()
		if offset > len(all) {
			offset = len(all)
		}
		end := min(offset+limit, len(all))
		writeJSON(w, http.StatusOK, all[offset:end])
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newTestClient(t *testing.T, f *fakeServer, opts ...func(*Config)) *Client {
	t.Helper()

	cfg := &Config{
		BaseURL:        f.URL(),
		Logger:         hclog.NewNullLogger(),
		PasswordPrompt: StaticPassword(testPassword),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	c, err := New(cfg)
	require.NoError(t, err)
	return c
}

// loggedInClient returns a client with an established session and an empty
// request log.
func loggedInClient(t *testing.T, f *fakeServer, opts ...func(*Config)) *Client {
	t.Helper()

	c := newTestClient(t, f, opts...)
	require.NoError(t, c.Login(context.Background(), testUsername))
	f.reset()
	return c
}

func makeProjects(n int) []Project {
	out := make([]Project, n)
	for i := range out {
		out[i] = Project{
			RecordAttrs: RecordAttrs{
				ID:    fmt.Sprintf("p%d", i+1),
				Title: fmt.Sprintf("Project %d", i+1),
			},
			OwnerID: testUserID,
			GroupID: testGroupID,
		}
	}
	return out
}

func makeEntries(n int) []Entry {
	out := make([]Entry, n)
	for i := range out {
		out[i] = Entry{
			RecordAttrs: RecordAttrs{
				ID:    fmt.Sprintf("e%d", i+1),
				Title: fmt.Sprintf("Entry %d", i+1),
			},
			AuthorID:    testUserID,
			ProjectID:   "p1",
			EntryNumber: i + 1,
			Editable:    true,
		}
	}
	return out
}
