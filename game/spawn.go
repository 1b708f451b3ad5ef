package game

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/zeebo/xxh3"
)

// SpawnPosition returns the starting position of the index-th robot of a roster, named name. The
// position only depends on its inputs, so the same roster always starts from the same layout, and it
// always lies inside the arena, inset from the walls.
func SpawnPosition(a Arena, name string, index int) mgl64.Vec2 {
	h := xxh3.HashString(fmt.Sprintf("%s#%d", name, index))
	inset := math.Min(a.Width, a.Height) * SpawnInsetFraction

	fx := float64(uint32(h)) / math.MaxUint32
	fy := float64(uint32(h>>32)) / math.MaxUint32
	return mgl64.Vec2{
		inset + fx*(a.Width-2*inset),
		inset + fy*(a.Height-2*inset),
	}
}
