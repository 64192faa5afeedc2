package tags

import "github.com/yohamta/donburi"

var (
	Player  = donburi.NewTag().SetName("Player")
	Trigger = donburi.NewTag().SetName("Trigger")
)

// Resolv tags for the broad-phase index
const (
	ResolvPlayer  = "Player"
	ResolvTrigger = "trigger"
	ResolvCircle  = "circle"
	ResolvRect    = "rect"
)
