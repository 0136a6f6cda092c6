package models

// EntityStatus is the lifecycle marker shared by every entity. Soft
// deletion flips it to Invalid; the row stays readable and filterable.
type EntityStatus string

const (
	StatusActive  EntityStatus = "Active"
	StatusInvalid EntityStatus = "Invalid"
)
