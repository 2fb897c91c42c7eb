package system

import (
	"time"

	"github.com/lixenwraith/threat-shooter/event"
	"github.com/lixenwraith/threat-shooter/parameter"
	"github.com/lixenwraith/threat-shooter/vmath"
)

// ShotEffect is a visible shot segment
type ShotEffect struct {
	From vmath.Vec
	To   vmath.Vec
	TTL  time.Duration
}

// ShotSystem keeps active shot effects for the renderer
// Holds no state beyond the effects themselves
type ShotSystem struct {
	effects []ShotEffect
	ttl     time.Duration
}

// NewShotSystem creates a shot effect tracker
func NewShotSystem() *ShotSystem {
	return &ShotSystem{ttl: parameter.ShotEffectDuration}
}

// EventTypes returns the event types ShotSystem handles
func (s *ShotSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventShotFired,
	}
}

// HandleEvent records fired shots
func (s *ShotSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type != event.EventShotFired {
		return
	}
	if p, ok := ev.Payload.(*event.ShotPayload); ok {
		s.Add(p.From, p.To)
	}
}

// Add starts a shot effect along from-to
func (s *ShotSystem) Add(from, to vmath.Vec) {
	s.effects = append(s.effects, ShotEffect{From: from, To: to, TTL: s.ttl})
}

// Tick ages effects and drops expired ones
func (s *ShotSystem) Tick(dt time.Duration) {
	live := s.effects[:0]
	for _, e := range s.effects {
		e.TTL -= dt
		if e.TTL > 0 {
			live = append(live, e)
		}
	}
	s.effects = live
}

// Clear drops every effect
func (s *ShotSystem) Clear() {
	s.effects = s.effects[:0]
}

// Effects returns a copy of active effects
func (s *ShotSystem) Effects() []ShotEffect {
	return append([]ShotEffect(nil), s.effects...)
}
