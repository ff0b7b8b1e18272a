package web

import (
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mww/cfb_rankings/controller"
	"github.com/mww/cfb_rankings/db"
	"github.com/mww/cfb_rankings/engine"
	"github.com/mww/cfb_rankings/model"
	"github.com/unrolled/render"
)

// gameResponse is a game along with the values derived from it, returned
// after a toggle so a client can redraw the cell.
type gameResponse struct {
	model.Game
	Outcome model.Outcome `json:"outcome"`
	Locked  bool          `json:"locked"`
}

func rootHandler(_ controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.Text(w, http.StatusOK, "cfb rankings")
	}
}

func teamsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, div, err := parseSeasonParams(r)
		if err != nil {
			jsonError(render, w, http.StatusBadRequest, err.Error())
			return
		}

		teams, err := ctrl.ListTeams(r.Context(), year, div)
		if err != nil {
			jsonError(render, w, http.StatusInternalServerError, err.Error())
			return
		}
		if teams == nil {
			teams = []model.Team{}
		}

		render.JSON(w, http.StatusOK, teams)
	}
}

func scheduleHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, div, err := parseSeasonParams(r)
		if err != nil {
			jsonError(render, w, http.StatusBadRequest, err.Error())
			return
		}

		grid, err := ctrl.GetSchedule(r.Context(), year, div)
		if err != nil {
			jsonError(render, w, http.StatusInternalServerError, err.Error())
			return
		}

		render.JSON(w, http.StatusOK, grid)
	}
}

func rankingsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		asJSON := r.URL.Query().Get("format") == "json"
		fail := func(status int, msg string) {
			if asJSON {
				jsonError(render, w, status, msg)
			} else {
				render.HTML(w, status, fmt.Sprint(status), msg)
			}
		}

		year, div, err := parseSeasonParams(r)
		if err != nil {
			fail(http.StatusBadRequest, err.Error())
			return
		}

		week, err := parseWeek(r.URL.Query().Get("week"))
		if err != nil {
			fail(http.StatusBadRequest, err.Error())
			return
		}

		weights, err := parseWeights(r.URL.Query(), ctrl.DefaultWeights())
		if err != nil {
			fail(http.StatusBadRequest, err.Error())
			return
		}

		table, err := ctrl.CalculateRankings(r.Context(), year, week, div, weights)
		if err != nil {
			switch {
			case errors.Is(err, controller.ErrSeasonNotLoaded):
				fail(http.StatusNotFound, err.Error())
			case errors.Is(err, engine.ErrInvalidInput):
				fail(http.StatusBadRequest, err.Error())
			default:
				fail(http.StatusInternalServerError, err.Error())
			}
			return
		}

		if asJSON {
			render.JSON(w, http.StatusOK, table)
			return
		}
		render.HTML(w, http.StatusOK, "rankings", table)
	}
}

func toggleGameHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID, err := strconv.ParseInt(chi.URLParam(r, "gameID"), 10, 64)
		if err != nil {
			jsonError(render, w, http.StatusBadRequest, fmt.Sprintf("error parsing game id: %v", err))
			return
		}

		g, err := ctrl.ToggleGameResult(r.Context(), gameID)
		if err != nil {
			switch {
			case errors.Is(err, db.ErrGameNotFound):
				jsonError(render, w, http.StatusNotFound, err.Error())
			case errors.Is(err, model.ErrGameLocked), errors.Is(err, db.ErrResultChanged):
				jsonError(render, w, http.StatusConflict, err.Error())
			default:
				jsonError(render, w, http.StatusInternalServerError, err.Error())
			}
			return
		}

		render.JSON(w, http.StatusOK, gameResponse{Game: *g, Outcome: g.Outcome(), Locked: g.IsLocked()})
	}
}

func syncSeasonHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, err := parseYear(r)
		if err != nil {
			render.Text(w, http.StatusBadRequest, err.Error())
			return
		}

		if err := ctrl.SyncSeason(r.Context(), year); err != nil {
			render.Text(w, http.StatusInternalServerError, fmt.Sprintf("error syncing season: %v", err))
			return
		}

		render.Text(w, http.StatusOK, fmt.Sprintf("sync of the %d season completed successfully", year))
	}
}

func resetResultsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, err := parseYear(r)
		if err != nil {
			render.Text(w, http.StatusBadRequest, err.Error())
			return
		}

		if err := ctrl.ResetResults(r.Context(), year); err != nil {
			render.Text(w, http.StatusInternalServerError, fmt.Sprintf("error resetting results: %v", err))
			return
		}

		render.Text(w, http.StatusOK, fmt.Sprintf("results for the %d season have been reset", year))
	}
}

func jsonError(render *render.Render, w http.ResponseWriter, status int, msg string) {
	if status >= http.StatusInternalServerError {
		log.Printf("request failed: %s", msg)
	}
	render.JSON(w, status, map[string]string{"error": msg})
}

func parseYear(r *http.Request) (int, error) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		return 0, fmt.Errorf("error parsing year: %v", err)
	}
	return year, nil
}

func parseSeasonParams(r *http.Request) (int, model.Division, error) {
	year, err := parseYear(r)
	if err != nil {
		return 0, model.DivisionUnknown, err
	}

	div, err := parseDivision(r.URL.Query().Get("division"))
	if err != nil {
		return 0, model.DivisionUnknown, err
	}
	return year, div, nil
}

// An empty division or "all" means every team.
func parseDivision(s string) (model.Division, error) {
	if s == "" || s == "all" {
		return model.DivisionUnknown, nil
	}

	div := model.ParseDivision(s)
	if div == model.DivisionUnknown {
		return div, fmt.Errorf("unknown division: '%s'", s)
	}
	return div, nil
}

func parseWeek(s string) (int, error) {
	if s == "" {
		return 0, errors.New("week is required")
	}

	week, err := strconv.Atoi(s)
	if err != nil || week < 1 {
		return 0, fmt.Errorf("week must be a positive number, got '%s'", s)
	}
	return week, nil
}

// parseWeights returns nil when none of the weights are in the query. Any
// weight that is left out keeps its default value.
func parseWeights(q url.Values, defaults model.RankingWeights) (*model.RankingWeights, error) {
	w := defaults
	found := false

	params := []struct {
		name  string
		value *float64
	}{
		{"homeWin", &w.HomeWin},
		{"awayWin", &w.AwayWin},
		{"homeLoss", &w.HomeLoss},
		{"awayLoss", &w.AwayLoss},
	}

	for _, p := range params {
		v := q.Get(p.name)
		if v == "" {
			continue
		}

		f, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%s must be a number, got '%s'", p.name, v)
		}
		*p.value = f
		found = true
	}

	if !found {
		return nil, nil
	}
	return &w, nil
}
