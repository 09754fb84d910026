// Package model defines the descriptor codec and the in-memory mapping tree.
package model

// Path represents a file system path.
type Path string
