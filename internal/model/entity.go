package model

// Entity is a stored record addressed by a positive integer id.
type Entity interface {
	Identity() int
}
