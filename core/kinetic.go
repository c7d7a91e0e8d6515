package core

// Kinetic is the positional state shared by every simulated body.
// Units are canvas units and canvas units per frame.
type Kinetic struct {
	X, Y       float64
	VelX, VelY float64
}

// Translate advances the position by one frame of velocity
func (k *Kinetic) Translate() {
	k.X += k.VelX
	k.Y += k.VelY
}
