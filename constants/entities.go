package constants

// --- Balls ---
const (
	// BallCount is the fixed size of the ball collection
	BallCount = 25

	// BallMinRadius and BallMaxRadius bound the random radius of each ball
	BallMinRadius = 10
	BallMaxRadius = 20

	// BallMinSpeed and BallMaxSpeed bound each random velocity component
	BallMinSpeed = -7
	BallMaxSpeed = 7
)

// --- Hunter ---
const (
	// HunterRadius is the starting radius of the hunter
	HunterRadius = 15.0

	// HunterSpeed is the starting per-axis speed of the hunter
	HunterSpeed = 7.0

	// HunterSpawnMargin keeps the hunter spawn point off the canvas edges
	HunterSpawnMargin = 10

	// HunterGrowth is the radius gained per eliminated ball
	HunterGrowth = 10.0

	// HunterSpeedGrowth is the per-axis speed gained per eliminated ball
	HunterSpeedGrowth = 1.5

	// HunterStrokeWidth is the outline width in pixel frontends
	HunterStrokeWidth = 3.0
)
