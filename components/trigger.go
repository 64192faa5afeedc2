package components

import (
	"github.com/yohamta/donburi"
)

// TriggerData is a zone that reacts to the player entering it.
type TriggerData struct {
	Name        string
	Label       string
	Overlapping bool
	Picked      bool // Last pointer click landed inside
	Enters      int
}

var Trigger = donburi.NewComponentType[TriggerData]()
