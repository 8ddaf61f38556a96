package engine

// System is one stage of the simulation tick
type System interface {
	// Update advances the state by one tick. Setting PhaseOver stops the remaining systems.
	Update(state *GameState)
	Priority() int // Lower values run first
}
