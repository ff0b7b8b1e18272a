package testutils

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
)

//go:embed cfbddata
var cfbddata embed.FS

const (
	// The season the fake server has data for.
	TestSeason = 2024
	// Must match cfbd.TestAPIKey, testutils can't import cfbd.
	fakeAPIKey = "test-api-key"
)

type FakeCFBDServer struct {
	s        *httptest.Server
	requests atomic.Int32
}

func NewFakeCFBDServer() *FakeCFBDServer {
	f := &FakeCFBDServer{}

	r := chi.NewRouter()
	r.Use(f.countRequests)
	r.Use(requireAPIKey)
	r.Get("/teams", teamsHandler)
	r.Get("/games", gamesHandler)

	f.s = httptest.NewServer(r)
	return f
}

func (f *FakeCFBDServer) Close() {
	f.s.Close()
}

func (f *FakeCFBDServer) URL() string {
	return f.s.URL
}

// Requests returns how many requests the server has received.
func (f *FakeCFBDServer) Requests() int {
	return int(f.requests.Load())
}

func (f *FakeCFBDServer) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.requests.Add(1)
		next.ServeHTTP(w, r)
	})
}

func requireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+fakeAPIKey {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func teamsHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("year") != fmt.Sprint(TestSeason) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("[]"))
		return
	}
	serveFile(w, "teams.json")
}

func gamesHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("year") != fmt.Sprint(TestSeason) || q.Get("seasonType") == "postseason" {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("[]"))
		return
	}
	serveFile(w, "games.json")
}

func serveFile(w http.ResponseWriter, name string) {
	b, err := cfbddata.ReadFile(fmt.Sprintf("cfbddata/%s", name))
	if err != nil {
		log.Printf("error reading cfbddata/%s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
