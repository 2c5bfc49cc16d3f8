package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/appengine-ltd/trailbound/internal/game"
	"github.com/appengine-ltd/trailbound/internal/savestore"
)

func newTestServer(t *testing.T, store *savestore.Store) *httptest.Server {
	t.Helper()
	catalog, err := game.NewCatalog(game.BuiltinEncounters())
	require.NoError(t, err)
	srv := New(zap.NewNop(), store, catalog, game.DefaultPolicy())
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts
}

func newTestStore(t *testing.T) *savestore.Store {
	t.Helper()
	s, err := savestore.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func createRun(t *testing.T, ts *httptest.Server, seed int64) string {
	t.Helper()
	resp := postJSON(t, ts.URL+"/runs", map[string]any{"seed": seed, "name": "test run"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[struct {
		ID string `json:"id"`
	}](t, resp)
	require.NotEmpty(t, created.ID)
	return created.ID
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, nil)
	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestCreateAndFetchRun(t *testing.T) {
	ts := newTestServer(t, nil)
	id := createRun(t, ts, 7)

	resp, err := http.Get(ts.URL + "/runs/" + id)
	require.NoError(t, err)
	state := decode[map[string]json.RawMessage](t, resp)
	assert.Contains(t, state, "budget_cents")
	assert.Contains(t, state, "stats")

	var seed int64
	require.NoError(t, json.Unmarshal(state["seed"], &seed))
	assert.Equal(t, int64(7), seed)
}

func TestCreateRunRejectsBadConfig(t *testing.T) {
	ts := newTestServer(t, nil)
	resp := postJSON(t, ts.URL+"/runs", map[string]any{"pace": "sprint"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestUnknownRunIs404(t *testing.T) {
	ts := newTestServer(t, nil)
	resp, err := http.Get(ts.URL + "/runs/does-not-exist")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestAdvanceProducesDayRecord(t *testing.T) {
	ts := newTestServer(t, nil)
	id := createRun(t, ts, 7)

	resp := postJSON(t, ts.URL+"/runs/"+id+"/advance", map[string]any{})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	record := decode[game.DayRecord](t, resp)
	assert.Equal(t, 1, record.Day)
	assert.NotEmpty(t, record.Region)
	assert.NotEmpty(t, record.Weather)
}

func TestPurchaseEndpointAndErrorMapping(t *testing.T) {
	ts := newTestServer(t, nil)
	id := createRun(t, ts, 7)

	resp := postJSON(t, ts.URL+"/runs/"+id+"/purchase", map[string]any{
		"lines": []map[string]any{{"item": "food", "qty": 10}},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	receipt := decode[game.Receipt](t, resp)
	assert.Equal(t, int64(200), receipt.TotalCents)

	// An over-cap order maps to a 422.
	resp = postJSON(t, ts.URL+"/runs/"+id+"/purchase", map[string]any{
		"lines": []map[string]any{{"item": "oxen", "qty": 100}},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	resp.Body.Close()
}

func TestSetPaceEndpoint(t *testing.T) {
	ts := newTestServer(t, nil)
	id := createRun(t, ts, 7)

	resp := postJSON(t, ts.URL+"/runs/"+id+"/pace", map[string]any{"pace": "grueling"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, ts.URL+"/runs/"+id+"/pace", map[string]any{"pace": "sprint"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestSaveAndRestoreAcrossServers(t *testing.T) {
	store := newTestStore(t)

	ts := newTestServer(t, store)
	id := createRun(t, ts, 7)
	resp := postJSON(t, ts.URL+"/runs/"+id+"/advance", map[string]any{})
	resp.Body.Close()
	resp = postJSON(t, ts.URL+"/runs/"+id+"/save", map[string]any{"name": "checkpoint"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
	ts.Close()

	// A fresh server over the same store restores the run on demand.
	ts2 := newTestServer(t, store)
	resp, err := http.Get(ts2.URL + "/runs/" + id)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	state := decode[map[string]json.RawMessage](t, resp)

	var day int
	require.NoError(t, json.Unmarshal(state["day"], &day))
	assert.GreaterOrEqual(t, day, 1)

	listResp, err := http.Get(ts2.URL + "/runs")
	require.NoError(t, err)
	runs := decode[[]savestore.RunSummary](t, listResp)
	require.Len(t, runs, 1)
	assert.Equal(t, "checkpoint", runs[0].Name)
}

func TestDeleteRun(t *testing.T) {
	store := newTestStore(t)
	ts := newTestServer(t, store)
	id := createRun(t, ts, 7)

	resp := postJSON(t, ts.URL+"/runs/"+id+"/save", map[string]any{"name": "doomed"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/runs/%s", ts.URL, id), nil)
	require.NoError(t, err)
	delResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, delResp.StatusCode)
	delResp.Body.Close()

	getResp, err := http.Get(ts.URL + "/runs/" + id)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, getResp.StatusCode)
	getResp.Body.Close()
}

func TestConcurrentAdvancesOnOneRunStayCoherent(t *testing.T) {
	ts := newTestServer(t, nil)
	id := createRun(t, ts, 7)

	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := http.Post(ts.URL+"/runs/"+id+"/advance", "application/json",
				bytes.NewReader([]byte("{}")))
			if err != nil {
				errs <- err
				return
			}
			resp.Body.Close()
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	resp, err := http.Get(ts.URL + "/runs/" + id)
	require.NoError(t, err)
	state := decode[map[string]json.RawMessage](t, resp)

	var day int
	require.NoError(t, json.Unmarshal(state["day"], &day))
	assert.GreaterOrEqual(t, day, 1)
	assert.LessOrEqual(t, day, workers+1)
}
