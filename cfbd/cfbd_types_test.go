package cfbd

import (
	"testing"

	"github.com/mww/cfb_rankings/model"
)

func TestToTeam(t *testing.T) {
	tests := map[string]struct {
		input cfbdTeam
		ok    bool
		div   model.Division
	}{
		"fbs":          {input: cfbdTeam{ID: 1, School: "Washington", Classification: "fbs"}, ok: true, div: model.DivisionFBS},
		"fcs":          {input: cfbdTeam{ID: 2, School: "Montana", Classification: "fcs"}, ok: true, div: model.DivisionFCS},
		"division ii":  {input: cfbdTeam{ID: 3, School: "Central Washington", Classification: "ii"}, ok: false},
		"no id":        {input: cfbdTeam{School: "Nobody", Classification: "fbs"}, ok: false},
		"blank school": {input: cfbdTeam{ID: 4, School: "  ", Classification: "fbs"}, ok: false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			team, ok := tc.input.toTeam()
			if ok != tc.ok {
				t.Fatalf("expected ok to be %v", tc.ok)
			}
			if ok && team.Division != tc.div {
				t.Errorf("expected division %s, got %s", tc.div, team.Division)
			}
		})
	}
}

func TestToGame_partialScore(t *testing.T) {
	home := int32(14)
	g := cfbdGame{ID: 1, Season: 2024, Week: 4, Completed: true, HomeID: 1, AwayID: 2, HomePoints: &home}

	game, ok := g.toGame()
	if !ok {
		t.Fatalf("expected game to be converted")
	}
	if game.IsLocked() {
		t.Errorf("a game without both scores should not be locked")
	}
}
