package core

import "time"

// Effect is the action an interactable performs on activation.
// Variants are validated at map-load time so an Interactable that made it
// into a Map always carries complete, numeric fields.
type Effect interface {
	effect()
}

// Door teleports the player onto another loaded map
type Door struct {
	DestMap string
	DestX   float64
	DestY   float64
}

// Move teleports the player within the current map
type Move struct {
	DestX float64
	DestY float64
}

// MoveRebound teleports like Move, then reverts the player to the exact
// pre-move coordinates after the rebound delay
type MoveRebound struct {
	DestX   float64
	DestY   float64
	Rebound time.Duration
}

func (Door) effect()        {}
func (Move) effect()        {}
func (MoveRebound) effect() {}

// Interactable is a rectangular zone triggering a scripted effect on
// player overlap plus activation
type Interactable struct {
	Name   string
	X, Y   float64
	Width  float64
	Height float64
	Effect Effect
}
