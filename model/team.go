package model

import "strings"

type Division string

const (
	DivisionUnknown Division = ""
	DivisionFBS     Division = "fbs"
	DivisionFCS     Division = "fcs"
)

// ParseDivision accepts the classification strings used by the data source.
// Anything that isn't FBS or FCS is DivisionUnknown.
func ParseDivision(d string) Division {
	d = strings.ToLower(strings.TrimSpace(d))
	switch d {
	case "fbs", "i-a", "1a":
		return DivisionFBS
	case "fcs", "i-aa", "1aa":
		return DivisionFCS
	default:
		return DivisionUnknown
	}
}

func (d Division) String() string {
	if d == DivisionUnknown {
		return "all"
	}
	return string(d)
}

type Team struct {
	ID         int64    `json:"id"`
	Name       string   `json:"name"`
	Conference string   `json:"conference"`
	Division   Division `json:"division"`
}
