package removemember

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eln-tools/labfolder-go/internal/cmd/base"
)

func fakeService(t *testing.T, deletes *atomic.Int32) *httptest.Server {
	t.Helper()

	writeJSON := func(w http.ResponseWriter, status int, v any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"token": "tok"})
	})
	mux.HandleFunc("GET /me", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"id": "42",
			"user": map[string]string{
				"id": "101", "first_name": "Ada", "last_name": "Lovelace",
				"email": "ada@lab.example",
			},
		})
	})
	mux.HandleFunc("POST /auth/logout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("GET /groups/g1/tree", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"id":   "g1",
			"name": "Wet Lab",
			"children": []map[string]any{
				{"id": "9002", "user": map[string]string{
					"id": "202", "first_name": "Bob", "last_name": "Crick",
					"email": "bob@lab.example",
				}},
			},
		})
	})
	mux.HandleFunc("DELETE /group-memberships/9002", func(w http.ResponseWriter, r *http.Request) {
		deletes.Add(1)
		w.WriteHeader(http.StatusNoContent)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestRemoveMemberWithYes(t *testing.T) {
	var deletes atomic.Int32
	srv := fakeService(t, &deletes)
	t.Setenv("LABFOLDER_PASSWORD", "pw")
	t.Setenv("LABFOLDER_LOG_LEVEL", "info")

	ui := cli.NewMockUi()
	c := &Command{Command: &base.Command{UI: ui, Log: hclog.NewNullLogger()}}

	code := c.Run([]string{
		"-base-url=" + srv.URL,
		"-username=ada@lab.example",
		"-group=g1",
		"-email=bob@lab.example",
		"-yes",
	})
	require.Equalf(t, 0, code, "stderr: %s", ui.ErrorWriter.String())
	assert.Equal(t, int32(1), deletes.Load())
	assert.Contains(t, ui.OutputWriter.String(), "removed from Wet Lab")
}

func TestRemoveMemberAborted(t *testing.T) {
	var deletes atomic.Int32
	srv := fakeService(t, &deletes)
	t.Setenv("LABFOLDER_PASSWORD", "pw")
	t.Setenv("LABFOLDER_LOG_LEVEL", "info")

	ui := cli.NewMockUi()
	ui.InputReader = strings.NewReader("no\n")
	c := &Command{Command: &base.Command{UI: ui, Log: hclog.NewNullLogger()}}

	code := c.Run([]string{
		"-base-url=" + srv.URL,
		"-username=ada@lab.example",
		"-group=g1",
		"-email=bob@lab.example",
	})
	assert.Equal(t, 1, code)
	assert.Equal(t, int32(0), deletes.Load(), "an aborted removal must not delete anything")
}

func TestRemoveMemberRequiresEmail(t *testing.T) {
	ui := cli.NewMockUi()
	c := &Command{Command: &base.Command{UI: ui, Log: hclog.NewNullLogger()}}

	code := c.Run([]string{"-group=g1"})
	assert.Equal(t, 1, code)
	assert.Contains(t, ui.ErrorWriter.String(), "email flag is required")
}
