package smdump

import "errors"

var (
	ErrNilDefinition  = errors.New("machine definition cannot be nil")
	ErrBadIdentifier  = errors.New("name cannot be rendered as a Go identifier")
	ErrIdentCollision = errors.New("distinct names collide after identifier mangling")
	ErrInvalidRankDir = errors.New("rank direction must be one of LR, RL, TB, BT")
)
