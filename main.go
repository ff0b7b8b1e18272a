package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"
	"github.com/mww/cfb_rankings/cfbd"
	"github.com/mww/cfb_rankings/controller"
	"github.com/mww/cfb_rankings/db"
	"github.com/mww/cfb_rankings/model"
	"github.com/mww/cfb_rankings/web"
)

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}
	connString := os.Getenv("POSTGRES_CONN_STR")
	cfbdAPIKey := os.Getenv("CFBD_API_KEY")
	adminPassword := os.Getenv("ADMIN_PASSWORD")

	portNum := 3000 // 3000 is the default
	port := os.Getenv("PORT")
	if port != "" {
		portNum, err = strconv.Atoi(port)
		if err != nil {
			log.Fatalf("error parsing port number: %v", err)
		}
	}

	clock := clock.New()

	season := clock.Now().Year()
	if s := os.Getenv("SEASON"); s != "" {
		season, err = strconv.Atoi(s)
		if err != nil {
			log.Fatalf("error parsing season: %v", err)
		}
	}

	syncFrequency := 6 * time.Hour
	if f := os.Getenv("SYNC_FREQUENCY"); f != "" {
		syncFrequency, err = time.ParseDuration(f)
		if err != nil || syncFrequency <= 0 {
			log.Fatalf("error parsing sync frequency '%s': %v", f, err)
		}
	}

	weights, err := loadWeights(os.Getenv)
	if err != nil {
		log.Fatalf("error loading ranking weights: %v", err)
	}

	db, err := db.New(context.Background(), connString, clock)
	if err != nil {
		log.Fatalf("cannot connect to DB: %v", err)
	}

	if cfbdAPIKey == "" {
		log.Printf("CFBD_API_KEY is not set, requests to CFBD will not be authorized")
	}
	cfbdClient, err := cfbd.New(cfbdAPIKey)
	if err != nil {
		log.Fatalf("error creating cfbd client: %v", err)
	}

	ctrl, err := controller.New(clock, cfbdClient, db, weights)
	if err != nil {
		log.Fatalf("error creating a new controller: %v", err)
	}

	if adminPassword == "" {
		log.Printf("ADMIN_PASSWORD is not set, admin routes are disabled")
	}
	server, err := web.NewServer(portNum, ctrl, adminPassword)
	if err != nil {
		log.Fatalf("error creating new web server: %v", err)
	}

	shutdown := make(chan bool)
	wg := &sync.WaitGroup{}

	// Setup a handler to catch ctrl-c signals and properly shutdown everything.
	intChannel := make(chan os.Signal, 2)
	signal.Notify(intChannel, os.Interrupt)
	go func() {
		<-intChannel
		close(shutdown)

		if err := waitTimeout(wg, 10*time.Second); err != nil {
			log.Printf("timed out waiting for proper shutdown")
			os.Exit(255)
		}
	}()

	// Load the season once at startup, then keep it up to date with scores as games are played.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if err := ctrl.SyncSeason(ctx, season); err != nil {
			log.Printf("error with initial sync of the %d season: %v", season, err)
		}
	}()
	wg.Add(1)
	go ctrl.RunPeriodicScheduleUpdates(season, syncFrequency, shutdown, wg)

	// Start the web server
	wg.Add(1)
	go server.ListenAndServe(shutdown, wg)

	// Wait for everything to stop.
	wg.Wait()
	log.Printf("server shutdown")
}

// loadWeights starts from the default ranking weights and overrides any that
// are set in the environment.
func loadWeights(getenv func(string) string) (model.RankingWeights, error) {
	w := model.DefaultWeights()

	vars := []struct {
		name  string
		value *float64
	}{
		{"WEIGHT_HOME_WIN", &w.HomeWin},
		{"WEIGHT_AWAY_WIN", &w.AwayWin},
		{"WEIGHT_HOME_LOSS", &w.HomeLoss},
		{"WEIGHT_AWAY_LOSS", &w.AwayLoss},
	}

	for _, v := range vars {
		s := getenv(v.name)
		if s == "" {
			continue
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return w, fmt.Errorf("error parsing %s: %w", v.name, err)
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return w, fmt.Errorf("error %s must be a finite number, got '%s'", v.name, s)
		}
		*v.value = f
	}

	return w, nil
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) error {
	c := make(chan any)
	go func() {
		defer close(c)
		wg.Wait()
	}()

	select {
	case <-c:
		return nil // completed normally
	case <-time.After(timeout):
		return errors.New("timed out waiting")
	}
}
