package model

import "time"

// RequesterStats is the per-user rollup of consumed lifecycle events.
type RequesterStats struct {
	Requester   string    `json:"requester" db:"requester"`
	LastUpdated time.Time `json:"lastUpdated" db:"last_updated"`
	Created     int       `json:"created" db:"created"`
	Approved    int       `json:"approved" db:"approved"`
	Denied      int       `json:"denied" db:"denied"`
	Cancelled   int       `json:"cancelled" db:"cancelled"`
	Returned    int       `json:"returned" db:"returned"`
	UnitsOnLoan int       `json:"unitsOnLoan" db:"units_on_loan"`
}

type StatsInfo struct {
	Data []RequesterStats `json:"data"`
}
