package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/mww/cfb_rankings/cfbd"
	"github.com/mww/cfb_rankings/controller"
	"github.com/mww/cfb_rankings/controller/mockcontroller"
	"github.com/mww/cfb_rankings/db"
	"github.com/mww/cfb_rankings/model"
	"github.com/mww/cfb_rankings/testutils"
	"github.com/stretchr/testify/mock"
)

const testAdminPassword = "pa55word"

// A global testDB instance to use for all of the tests instead of setting up a new one each time.
var testDB *testutils.TestDB

// TestMain controls the main for the tests and allows for setup and shutdown of the tests
func TestMain(m *testing.M) {
	defer func() {
		// Catch all panics to make sure the shutdown is successfully run
		if r := recover(); r != nil {
			if testDB != nil {
				testDB.Shutdown()
			}
			fmt.Printf("panic - %v\n", r)
		}
	}()

	// Setup the global testDB variable
	testDB = testutils.NewTestDB()
	code := m.Run()
	testDB.Shutdown()
	os.Exit(code)
}

func newTestCtrl(t *testing.T) (controller.C, func()) {
	testCtrl := testutils.NewTestController(testDB)
	client := cfbd.NewForTest(testCtrl.CFBDURL())

	ctrl, err := controller.New(testCtrl.Clock, client, testDB.DB, model.DefaultWeights())
	if err != nil {
		t.Fatalf("error creating controller: %v", err)
	}
	return ctrl, testCtrl.Close
}

func serve(ctrl controller.C, method, target string) *http.Response {
	req := httptest.NewRequest(method, target, nil)
	return serveRequest(ctrl, req)
}

func serveRequest(ctrl controller.C, req *http.Request) *http.Response {
	w := httptest.NewRecorder()
	getRouter(ctrl, newRender(), testAdminPassword).ServeHTTP(w, req)
	return w.Result()
}

func readBody(t *testing.T, resp *http.Response) string {
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("error reading response body: %v", err)
	}
	return string(b)
}

func TestRankingsHandler_json(t *testing.T) {
	ctrl, done := newTestCtrl(t)
	defer done()

	resp := serve(ctrl, http.MethodGet, "/seasons/2024/rankings?week=2&division=fbs&format=json")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code. Got: %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("unexpected content type: %s", ct)
	}

	var table model.RankingTable
	if err := json.Unmarshal([]byte(readBody(t, resp)), &table); err != nil {
		t.Fatalf("error parsing response: %v", err)
	}

	expected := []string{"Ohio State", "Washington", "Oregon", "Auburn", "Michigan"}
	if len(table.Teams) != len(expected) {
		t.Fatalf("expected %d teams, got %d", len(expected), len(table.Teams))
	}
	for i, name := range expected {
		if table.Teams[i].Team.Name != name || table.Teams[i].Rank != i+1 {
			t.Errorf("rank %d - expected %s, got %s (%d)", i+1, name, table.Teams[i].Team.Name, table.Teams[i].Rank)
		}
	}
	if table.Teams[0].Score != 1.3 || table.Teams[0].Record != "1-0" {
		t.Errorf("unexpected first place: %v %s", table.Teams[0].Score, table.Teams[0].Record)
	}
}

func TestRankingsHandler_html(t *testing.T) {
	ctrl, done := newTestCtrl(t)
	defer done()

	resp := serve(ctrl, http.MethodGet, "/seasons/2024/rankings?week=2")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code. Got: %d", resp.StatusCode)
	}

	body := readBody(t, resp)
	for _, s := range []string{"2024 Rankings, Week 2 (all)", "Washington", "Weber State", "+2.30", "▲2", "▼3"} {
		if !strings.Contains(body, s) {
			t.Errorf("response body does not contain expected string: %s", s)
		}
	}
}

func TestRankingsHandler_weights(t *testing.T) {
	ctrl := &mockcontroller.C{}
	table := &model.RankingTable{Season: 2024, Week: 3}

	expected := &model.RankingWeights{HomeWin: 2, AwayWin: 1.3, HomeLoss: -1, AwayLoss: -0.5}
	ctrl.On("DefaultWeights").Return(model.DefaultWeights())
	ctrl.On("CalculateRankings", mock.Anything, 2024, 3, model.DivisionFCS, expected).Return(table, nil)

	resp := serve(ctrl, http.MethodGet, "/seasons/2024/rankings?week=3&division=FCS&homeWin=2&awayLoss=-0.5&format=json")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("unexpected status code. Got: %d - %s", resp.StatusCode, readBody(t, resp))
	}

	ctrl.AssertExpectations(t)
}

func TestRankingsHandler_errors(t *testing.T) {
	tests := map[string]struct {
		query    string
		ctrlErr  error
		status   int
		contains string
	}{
		"missing week":     {query: "", status: http.StatusBadRequest, contains: "week is required"},
		"week zero":        {query: "week=0", status: http.StatusBadRequest, contains: "week must be a positive number"},
		"week not number":  {query: "week=two", status: http.StatusBadRequest, contains: "week must be a positive number"},
		"bad division":     {query: "week=1&division=d2", status: http.StatusBadRequest, contains: "unknown division"},
		"bad weight":       {query: "week=1&homeWin=lots", status: http.StatusBadRequest, contains: "homeWin must be a number"},
		"season not found": {query: "week=1", ctrlErr: controller.ErrSeasonNotLoaded, status: http.StatusNotFound, contains: "season has not been loaded"},
		"controller error": {query: "week=1", ctrlErr: errors.New("db down"), status: http.StatusInternalServerError, contains: "db down"},
	}

	for name, tc := range tests {
		for _, format := range []string{"html", "json"} {
			t.Run(name+" "+format, func(t *testing.T) {
				ctrl := &mockcontroller.C{}
				ctrl.On("DefaultWeights").Return(model.DefaultWeights())
				ctrl.On("CalculateRankings", mock.Anything, 2024, 1, model.DivisionUnknown, mock.Anything).Return(nil, tc.ctrlErr)

				resp := serve(ctrl, http.MethodGet, fmt.Sprintf("/seasons/2024/rankings?%s&format=%s", tc.query, format))
				if resp.StatusCode != tc.status {
					t.Errorf("expected status %d, got %d", tc.status, resp.StatusCode)
				}
				if body := readBody(t, resp); !strings.Contains(body, tc.contains) {
					t.Errorf("response body does not contain expected string: %s", body)
				}
			})
		}
	}
}

func TestTeamsHandler(t *testing.T) {
	ctrl, done := newTestCtrl(t)
	defer done()

	tests := map[string]struct {
		division string
		expected int
	}{
		"all": {division: "", expected: 6},
		"fbs": {division: "fbs", expected: 5},
		"fcs": {division: "fcs", expected: 1},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			resp := serve(ctrl, http.MethodGet, "/seasons/2024/teams?division="+tc.division)
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("unexpected status code. Got: %d", resp.StatusCode)
			}

			var teams []model.Team
			if err := json.Unmarshal([]byte(readBody(t, resp)), &teams); err != nil {
				t.Fatalf("error parsing response: %v", err)
			}
			if len(teams) != tc.expected {
				t.Errorf("expected %d teams, got %d", tc.expected, len(teams))
			}
		})
	}

	// Seasons that haven't been loaded have no teams
	resp := serve(ctrl, http.MethodGet, "/seasons/1999/teams")
	if body := readBody(t, resp); strings.TrimSpace(body) != "[]" {
		t.Errorf("expected an empty list, got: %s", body)
	}
}

func TestScheduleHandler(t *testing.T) {
	ctrl, done := newTestCtrl(t)
	defer done()

	resp := serve(ctrl, http.MethodGet, "/seasons/2024/schedule?division=fbs")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code. Got: %d", resp.StatusCode)
	}

	var grid model.ScheduleGrid
	if err := json.Unmarshal([]byte(readBody(t, resp)), &grid); err != nil {
		t.Fatalf("error parsing response: %v", err)
	}
	if grid.Weeks != 3 || len(grid.Sections) != 2 {
		t.Errorf("unexpected grid: %d weeks, %d sections", grid.Weeks, len(grid.Sections))
	}
}

func TestToggleGameHandler(t *testing.T) {
	ctrl, done := newTestCtrl(t)
	defer done()
	defer ctrl.ResetResults(context.Background(), testutils.TestSeason)

	tests := []struct {
		result  string
		outcome model.Outcome
	}{
		{result: "win", outcome: model.OutcomeHomeWin},
		{result: "loss", outcome: model.OutcomeAwayWin},
		{result: "none", outcome: model.OutcomeUnplayed},
	}

	for _, tc := range tests {
		resp := serve(ctrl, http.MethodPost, fmt.Sprintf("/games/%d/toggle", testutils.GameOhioStateOregon))
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("unexpected status code. Got: %d", resp.StatusCode)
		}

		var parsed struct {
			ID      int64         `json:"id"`
			Result  string        `json:"result"`
			Outcome model.Outcome `json:"outcome"`
			Locked  bool          `json:"locked"`
		}
		if err := json.Unmarshal([]byte(readBody(t, resp)), &parsed); err != nil {
			t.Fatalf("error parsing response: %v", err)
		}
		if parsed.ID != testutils.GameOhioStateOregon || parsed.Result != tc.result || parsed.Outcome != tc.outcome || parsed.Locked {
			t.Errorf("unexpected toggle response: %+v", parsed)
		}
	}
}

func TestToggleGameHandler_errors(t *testing.T) {
	ctrl, done := newTestCtrl(t)
	defer done()

	tests := map[string]struct {
		target string
		status int
	}{
		"locked":    {target: fmt.Sprintf("/games/%d/toggle", testutils.GameOregonMichigan), status: http.StatusConflict},
		"not found": {target: "/games/42/toggle", status: http.StatusNotFound},
		"bad id":    {target: "/games/abc/toggle", status: http.StatusNotFound}, // doesn't match the route
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			resp := serve(ctrl, http.MethodPost, tc.target)
			defer resp.Body.Close()
			if resp.StatusCode != tc.status {
				t.Errorf("expected status %d, got %d", tc.status, resp.StatusCode)
			}
		})
	}
}

func TestToggleGameHandler_conflict(t *testing.T) {
	tests := map[string]struct {
		err    error
		status int
	}{
		"locked":         {err: model.ErrGameLocked, status: http.StatusConflict},
		"result changed": {err: fmt.Errorf("error saving result for game 5: %w", db.ErrResultChanged), status: http.StatusConflict},
		"db error":       {err: errors.New("db down"), status: http.StatusInternalServerError},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := &mockcontroller.C{}
			ctrl.On("ToggleGameResult", mock.Anything, int64(5)).Return(nil, tc.err)

			resp := serve(ctrl, http.MethodPost, "/games/5/toggle")
			defer resp.Body.Close()
			if resp.StatusCode != tc.status {
				t.Errorf("expected status %d, got %d", tc.status, resp.StatusCode)
			}
			ctrl.AssertExpectations(t)
		})
	}
}

func TestAdminHandlers(t *testing.T) {
	tests := map[string]struct {
		target string
		auth   bool
		method string
		err    error
		status int
	}{
		"sync no auth":   {target: "/admin/seasons/2024/sync", auth: false, status: http.StatusUnauthorized},
		"sync":           {target: "/admin/seasons/2024/sync", auth: true, method: "SyncSeason", status: http.StatusOK},
		"sync error":     {target: "/admin/seasons/2024/sync", auth: true, method: "SyncSeason", err: errors.New("cfbd down"), status: http.StatusInternalServerError},
		"reset no auth":  {target: "/admin/seasons/2024/reset", auth: false, status: http.StatusUnauthorized},
		"reset":          {target: "/admin/seasons/2024/reset", auth: true, method: "ResetResults", status: http.StatusOK},
		"reset db error": {target: "/admin/seasons/2024/reset", auth: true, method: "ResetResults", err: errors.New("db down"), status: http.StatusInternalServerError},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := &mockcontroller.C{}
			if tc.method != "" {
				ctrl.On(tc.method, mock.Anything, 2024).Return(tc.err)
			}

			req := httptest.NewRequest(http.MethodPost, tc.target, nil)
			if tc.auth {
				req.SetBasicAuth("admin", testAdminPassword)
			}

			resp := serveRequest(ctrl, req)
			defer resp.Body.Close()
			if resp.StatusCode != tc.status {
				t.Errorf("expected status %d, got %d", tc.status, resp.StatusCode)
			}

			ctrl.AssertExpectations(t)
		})
	}
}

func TestAdminHandlers_disabled(t *testing.T) {
	ctrl := &mockcontroller.C{}

	req := httptest.NewRequest(http.MethodPost, "/admin/seasons/2024/sync", nil)
	req.SetBasicAuth("admin", "")
	w := httptest.NewRecorder()
	getRouter(ctrl, newRender(), "").ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected admin routes to be disabled, got status %d", w.Code)
	}
	ctrl.AssertNotCalled(t, "SyncSeason", mock.Anything, mock.Anything)
}
