package rush

// defaultLeadFrames is how many frames of scrolling ahead of an obstacle
// the autopilot jumps. Tuned for the default 40-frame jump arc.
const defaultLeadFrames = 8

// Autopilot plays a run by jumping just ahead of each obstacle.
// Used by the headless runner and attract screens.
type Autopilot struct {
	LeadFrames float64
}

// NewAutopilot returns an autopilot with the default lead.
func NewAutopilot() Autopilot {
	return Autopilot{LeadFrames: defaultLeadFrames}
}

// ShouldJump reports whether a jump issued this frame clears the next obstacle.
func (a Autopilot) ShouldJump(s *Simulation) bool {
	if s.State() != StateRunning || !s.Actor().Grounded {
		return false
	}
	actor := s.Actor().Bounds()
	lead := a.LeadFrames * s.Speed()
	for _, o := range s.Obstacles() {
		b := o.Bounds()
		if b.Right() <= actor.X {
			continue // already passed
		}
		return b.X-actor.Right() <= lead
	}
	return false
}
