package generator

import (
	"github.com/junglerando/rando-api/internal/settings"
)

// GenerateInput defines the request for generating a seed
type GenerateInput struct {
	Settings *settings.Settings
}

// GenerateOutput defines the response for generating a seed
type GenerateOutput struct {
	// Patch is the encoded ROM write list.
	Patch   []byte
	Spoiler *Spoiler
}
