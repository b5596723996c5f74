package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaikoapy/basecamp-sub000/api"
	"github.com/kaikoapy/basecamp-sub000/roster"
	"github.com/kaikoapy/basecamp-sub000/rota"
	"github.com/kaikoapy/basecamp-sub000/store/sqlite"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestServer(t *testing.T) http.Handler {
	router, _ := newTestServerWithStore(t)
	return router
}

func newTestServerWithStore(t *testing.T) (http.Handler, *sqlite.Store) {
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	handler := api.NewHandler(store, roster.Default())
	return api.NewRouter(handler), store
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

// =============================================================================
// SCHEDULE GENERATION
// =============================================================================

func TestGetSchedule_January2024(t *testing.T) {
	router := newTestServer(t)

	rec := doJSON(t, router, http.MethodGet, "/api/schedule/2024/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var dto struct {
		Year  int `json:"year"`
		Month int `json:"month"`
		Days  []struct {
			Date          string   `json:"date"`
			OffList       []string `json:"off_list"`
			HolidayClosed bool     `json:"holiday_closed"`
		} `json:"days"`
	}
	decode(t, rec, &dto)

	assert.Equal(t, 2024, dto.Year)
	assert.Equal(t, 1, dto.Month)
	require.Len(t, dto.Days, 32)
	assert.Equal(t, "2023-12-31", dto.Days[0].Date, "grid pads back to Sunday")
	assert.True(t, dto.Days[1].HolidayClosed, "Jan 1 closed")
	assert.ElementsMatch(t, []string{"Ron", "Moudy"}, dto.Days[2].OffList, "fixed Tuesday offs")
}

func TestGetSchedule_InvalidMonth(t *testing.T) {
	router := newTestServer(t)

	rec := doJSON(t, router, http.MethodGet, "/api/schedule/2024/13", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/schedule/2024/0", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetSchedule_NamedRoster(t *testing.T) {
	// GIVEN: a draft crew saved under its own name
	// WHEN: the month is generated with ?roster=draft
	// THEN: the schedule uses the draft crew, not the active one

	router, store := newTestServerWithStore(t)

	draft, err := roster.Marshal(rota.Roster{
		{Name: "Kim", FixedOffDay: time.Wednesday, SundaySchedule: true},
		{Name: "Lee", FixedOffDay: time.Thursday, SundaySchedule: false},
	})
	require.NoError(t, err)
	require.NoError(t, store.SaveRoster(context.Background(), "draft", draft))

	rec := doJSON(t, router, http.MethodGet, "/api/schedule/2024/1?roster=draft", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var dto struct {
		Days []struct {
			Date    string   `json:"date"`
			OffList []string `json:"off_list"`
		} `json:"days"`
	}
	decode(t, rec, &dto)
	require.Len(t, dto.Days, 32)
	assert.Equal(t, "2024-01-03", dto.Days[3].Date)
	assert.Equal(t, []string{"Kim"}, dto.Days[3].OffList, "draft crew's Wednesday off")
}

func TestGetSchedule_UnknownRoster(t *testing.T) {
	router := newTestServer(t)

	rec := doJSON(t, router, http.MethodGet, "/api/schedule/2024/1?roster=nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetShiftLoadReport(t *testing.T) {
	router := newTestServer(t)

	rec := doJSON(t, router, http.MethodGet, "/api/schedule/2024/1/report", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var loads []struct {
		Name       string `json:"name"`
		Opens      int    `json:"opens"`
		CloseShare string `json:"close_share"`
	}
	decode(t, rec, &loads)
	require.Len(t, loads, 6)
	assert.Equal(t, "Ron", loads[0].Name, "roster order preserved")
}

// =============================================================================
// PUBLISH & OVERRIDES
// =============================================================================

func TestPublishFlow(t *testing.T) {
	router := newTestServer(t)

	// Nothing published yet.
	rec := doJSON(t, router, http.MethodGet, "/api/schedule/2024/1/published", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Publish and read back.
	rec = doJSON(t, router, http.MethodPost, "/api/schedule/2024/1/publish", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/schedule/2024/1/published", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var dto struct {
		Published bool `json:"published"`
		Days      []struct {
			Date string   `json:"date"`
			Mid  []string `json:"mid"`
		} `json:"days"`
	}
	decode(t, rec, &dto)
	assert.True(t, dto.Published)
	assert.Len(t, dto.Days, 32)
}

func TestOverrideFlow(t *testing.T) {
	router := newTestServer(t)

	// Overrides need a published month to land on.
	rec := doJSON(t, router, http.MethodPost, "/api/schedule/2024/1/overrides", map[string]string{
		"date": "2024-01-03", "employee": "Ron", "to_shift": "mid",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/schedule/2024/1/publish", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Ron closes Jan 3 in the generated rota; move him to mid.
	rec = doJSON(t, router, http.MethodPost, "/api/schedule/2024/1/overrides", map[string]string{
		"date": "2024-01-03", "employee": "Ron", "to_shift": "mid",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/schedule/2024/1/published", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var dto struct {
		Days []struct {
			Date  string   `json:"date"`
			Mid   []string `json:"mid"`
			Close []string `json:"close"`
		} `json:"days"`
	}
	decode(t, rec, &dto)
	jan3 := dto.Days[3]
	require.Equal(t, "2024-01-03", jan3.Date)
	assert.Contains(t, jan3.Mid, "Ron")
	assert.NotContains(t, jan3.Close, "Ron")
}

func TestOverride_InvalidMove(t *testing.T) {
	router := newTestServer(t)

	rec := doJSON(t, router, http.MethodPost, "/api/schedule/2024/1/publish", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/schedule/2024/1/overrides", map[string]string{
		"date": "2024-01-03", "employee": "Nobody", "to_shift": "mid",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/schedule/2024/1/overrides", map[string]string{
		"date": "01/03/2024", "employee": "Ron", "to_shift": "mid",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// =============================================================================
// ROSTER
// =============================================================================

func TestRosterRoundTrip(t *testing.T) {
	router := newTestServer(t)

	rec := doJSON(t, router, http.MethodGet, "/api/roster", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var dto roster.RosterJSON
	decode(t, rec, &dto)
	require.Len(t, dto.Employees, 6)

	// Replace with a three-person crew; the next schedule uses it.
	dto.Employees = dto.Employees[:3]
	rec = doJSON(t, router, http.MethodPut, "/api/roster", dto)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/schedule/2024/1/report", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var loads []struct {
		Name string `json:"name"`
	}
	decode(t, rec, &loads)
	assert.Len(t, loads, 3)
}

func TestPutRoster_Invalid(t *testing.T) {
	router := newTestServer(t)

	rec := doJSON(t, router, http.MethodPut, "/api/roster", roster.RosterJSON{
		Employees: []roster.EmployeeJSON{
			{Name: "Ron", FixedOffDay: 2},
			{Name: "Ron", FixedOffDay: 3},
		},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// =============================================================================
// HOLIDAYS
// =============================================================================

func TestListHolidays(t *testing.T) {
	router := newTestServer(t)

	rec := doJSON(t, router, http.MethodGet, "/api/holidays/2024", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var holidays []struct {
		Date   string `json:"date"`
		Name   string `json:"name"`
		Closed bool   `json:"closed"`
	}
	decode(t, rec, &holidays)
	require.Len(t, holidays, 4)

	found := false
	for _, h := range holidays {
		if h.Name == "Thanksgiving" {
			found = true
			assert.Equal(t, "2024-11-28", h.Date)
			assert.True(t, h.Closed)
		}
	}
	assert.True(t, found)
}

func TestRootEndpoint(t *testing.T) {
	router := newTestServer(t)
	rec := doJSON(t, router, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/schedule")
}
