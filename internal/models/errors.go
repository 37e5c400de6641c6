package models

import "errors"

// Crew and fleet errors
var (
	ErrUnknownRole       = errors.New("unknown crew role")
	ErrInvalidExperience = errors.New("experience must not be negative")
	ErrInvalidSpacecraft = errors.New("seats and fuel capacity must be positive")
	ErrRoleConflict      = errors.New("role slot already occupied")
	ErrAlreadyAssigned   = errors.New("crew member already assigned to a spacecraft")
	ErrEmptySlot         = errors.New("no crew member in role slot")
)

// Mission errors
var (
	ErrInvalidMission   = errors.New("fuel required must not be negative")
	ErrNoSpacecraft     = errors.New("no spacecraft assigned")
	ErrMissionFull      = errors.New("mission is full")
	ErrInsufficientFuel = errors.New("spacecraft does not carry enough fuel for mission")
	ErrAlreadyLaunched  = errors.New("mission already launched")
	ErrNotPlanning      = errors.New("mission is no longer in planning")
)
