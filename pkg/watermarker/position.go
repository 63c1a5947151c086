package watermarker

import "strings"

const DefaultPosition = "BottomRight"

// gravities maps lowercased position names to ImageMagick -gravity values.
var gravities = map[string]string{
	"topleft":     "NorthWest",
	"top":         "North",
	"topright":    "NorthEast",
	"left":        "West",
	"center":      "Center",
	"right":       "East",
	"bottomleft":  "SouthWest",
	"bottom":      "South",
	"bottomright": "SouthEast",
}

// ResolvePosition returns the gravity for a case-insensitive position
// name. An empty position resolves to DefaultPosition.
func ResolvePosition(position string) (string, error) {
	if position == "" {
		position = DefaultPosition
	}
	gravity, ok := gravities[strings.ToLower(position)]
	if !ok {
		return "", newError(ErrInvalidPosition, "", nil)
	}
	return gravity, nil
}
