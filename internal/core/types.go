package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract the shell expects from a simulation.
// Richer capabilities (parameter controls, field readbacks) are discovered
// through optional interfaces asserted at runtime.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
}
