package testutils

import (
	"context"
	"log"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/mww/cfb_rankings/containers"
	"github.com/mww/cfb_rankings/db"
	"github.com/mww/cfb_rankings/model"
)

// The teams and games below are what the fake CFBD server returns for
// TestSeason, after being converted to the model types.
var (
	Washington = model.Team{ID: 264, Name: "Washington", Conference: "Big Ten", Division: model.DivisionFBS}
	Oregon     = model.Team{ID: 2483, Name: "Oregon", Conference: "Big Ten", Division: model.DivisionFBS}
	Michigan   = model.Team{ID: 130, Name: "Michigan", Conference: "Big Ten", Division: model.DivisionFBS}
	OhioState  = model.Team{ID: 194, Name: "Ohio State", Conference: "Big Ten", Division: model.DivisionFBS}
	Auburn     = model.Team{ID: 2, Name: "Auburn", Conference: "SEC", Division: model.DivisionFBS}
	WeberState = model.Team{ID: 2692, Name: "Weber State", Conference: "Big Sky", Division: model.DivisionFCS}
)

// Ids of the games in the test season.
const (
	GameAuburnWeberState     = int64(401628301)
	GameWashingtonWeberState = int64(401628302)
	GameOregonMichigan       = int64(401628303)
	GameMichiganOhioState    = int64(401628304)
	GameAuburnWashington     = int64(401628305)
	GameOhioStateOregon      = int64(401628306)
	GameWashingtonMichigan   = int64(401628307)
)

func TestTeams() []model.Team {
	return []model.Team{Washington, Oregon, Michigan, OhioState, Auburn, WeberState}
}

func TestGames() []model.Game {
	return []model.Game{
		playedGame(GameAuburnWeberState, 1, Auburn, WeberState, 42, 10),
		playedGame(GameWashingtonWeberState, 1, Washington, WeberState, 35, 3),
		playedGame(GameOregonMichigan, 1, Oregon, Michigan, 24, 17),
		playedGame(GameMichiganOhioState, 2, Michigan, OhioState, 10, 21),
		playedGame(GameAuburnWashington, 2, Auburn, Washington, 14, 20),
		unplayedGame(GameOhioStateOregon, 3, OhioState, Oregon),
		unplayedGame(GameWashingtonMichigan, 3, Washington, Michigan),
	}
}

func playedGame(id int64, week int, home, away model.Team, homeScore, awayScore int32) model.Game {
	g := unplayedGame(id, week, home, away)
	g.HomeScore = model.Score(homeScore)
	g.AwayScore = model.Score(awayScore)
	return g
}

func unplayedGame(id int64, week int, home, away model.Team) model.Game {
	return model.Game{
		ID:         id,
		Season:     TestSeason,
		Week:       week,
		HomeTeamID: home.ID,
		AwayTeamID: away.ID,
	}
}

type TestDB struct {
	container *containers.DBContainer
	DB        db.DB
	Clock     clock.Clock
}

func NewTestDB() *TestDB {
	container := containers.NewDBContainer()
	clock := clock.New()

	db, err := db.New(context.Background(), container.ConnectionString(), clock)
	if err != nil {
		log.Fatalf("error connecting to db in test container: %v", err)
	}

	if err := InsertTestData(db); err != nil {
		log.Fatalf("error populating db in test container: %v", err)
	}

	return &TestDB{
		container: container,
		DB:        db,
		Clock:     clock,
	}
}

func (db *TestDB) Shutdown() {
	db.container.Shutdown()
}

func InsertTestData(db db.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.SaveTeams(ctx, TestSeason, TestTeams()); err != nil {
		return err
	}
	return db.SaveGames(ctx, TestGames())
}
