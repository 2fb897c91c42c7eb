package system

import (
	"github.com/lixenwraith/threat-shooter/parameter"
	"github.com/lixenwraith/threat-shooter/vmath"
)

// HitTest selects the enemies a shot hits
type HitTest int

const (
	// HitTestCone matches enemies by slope angle from the player, within AngleEpsilon
	HitTestCone HitTest = iota
	// HitTestSegment matches enemies whose collision circle crosses the shot segment
	HitTestSegment
)

// ParseHitTest maps a config name to a HitTest, defaulting to the cone test
func ParseHitTest(name string) HitTest {
	if name == "segment" {
		return HitTestSegment
	}
	return HitTestCone
}

func (h HitTest) String() string {
	if h == HitTestSegment {
		return "segment"
	}
	return "cone"
}

// ShotTargets returns the IDs of every enemy the shot hits; the shot pierces
// IDs are collected before any damage so removals cannot skip enemies
func ShotTargets(mode HitTest, player, from, to vmath.Vec, enemies []Enemy) []uint64 {
	var ids []uint64
	for _, e := range enemies {
		var hit bool
		switch mode {
		case HitTestSegment:
			hit = vmath.SegmentCircle(from, to, e.Pos, parameter.EnemyCollisionRadius)
		default:
			hit = vmath.InAngleCone(player, to, e.Pos, parameter.AngleEpsilon)
		}
		if hit {
			ids = append(ids, e.ID)
		}
	}
	return ids
}
