package tags

import "github.com/yohamta/donburi"

var (
	Player       = donburi.NewTag().SetName("Player")
	Interactable = donburi.NewTag().SetName("Interactable")
	Obstacle     = donburi.NewTag().SetName("Obstacle")
)

// Resolv tags for the flat-world collision space
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "player"
)
