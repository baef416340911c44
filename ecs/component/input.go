package component

// Input carries one tick's worth of player intent, written by the input
// system and consumed by the player controller.
type Input struct {
	MoveX float64
	MoveY float64

	FirePressed bool
	CursorX     float64
	CursorY     float64
}

var InputComponent = NewComponent[Input]()
