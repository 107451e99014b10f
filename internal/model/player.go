package model

// PlayerID is the opaque identifier a player chooses at game start
// (the "color" typed in at the console)
type PlayerID string
