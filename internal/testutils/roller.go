package testutils

import "github.com/KirkDiggler/rpg-toolkit/dice"

// ScriptedRoller is a dice.Roller that replays Faces in order and records the die sizes it
// was asked for. Once Faces runs out every roll is a 1.
type ScriptedRoller struct {
	Faces []int
	Sizes []int
}

var _ dice.Roller = (*ScriptedRoller)(nil)

// NewScriptedRoller creates a roller that will replay faces
func NewScriptedRoller(faces ...int) *ScriptedRoller {
	return &ScriptedRoller{Faces: faces}
}

// Roll returns the next scripted face
func (r *ScriptedRoller) Roll(size int) (int, error) {
	r.Sizes = append(r.Sizes, size)
	if len(r.Faces) == 0 {
		return 1, nil
	}
	face := r.Faces[0]
	r.Faces = r.Faces[1:]
	return face, nil
}

// RollN rolls count scripted faces
func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i], _ = r.Roll(size)
	}
	return out, nil
}
