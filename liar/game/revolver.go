package game

import (
	"math/rand"

	"github.com/ratel-online/liar/consts"
)

// Revolver has six chambers numbered 1..6 and a single bullet. The pointer
// starts at 0 and every shot moves it one chamber forward, wrapping after 6.
type Revolver struct {
	rng     *rand.Rand
	bullet  int
	current int
}

func NewRevolver(rng *rand.Rand) *Revolver {
	r := &Revolver{rng: rng}
	r.Reset()
	return r
}

func (r *Revolver) Reset() {
	r.bullet = r.rng.Intn(consts.Chambers) + 1
	r.current = 0
}

// Shoot advances one chamber and reports whether it held the bullet.
func (r *Revolver) Shoot() bool {
	r.current = r.current%consts.Chambers + 1
	return r.current == r.bullet
}

// ShotsUntilBullet is the forward distance from the pointer to the bullet.
// It reads 0 only right after the bullet has fired; such a revolver must be
// Reset before the value means anything again.
func (r *Revolver) ShotsUntilBullet() int {
	if r.current == r.bullet {
		return 0
	}
	distance := (r.bullet - r.current + consts.Chambers) % consts.Chambers
	if distance == 0 {
		return consts.Chambers
	}
	return distance
}

func (r *Revolver) Bullet() int {
	return r.bullet
}

func (r *Revolver) Current() int {
	return r.current
}

func (r *Revolver) Fired() bool {
	return r.current == r.bullet
}
