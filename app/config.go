package app

import (
	"github.com/skyhookml/caffenet/resnet"
)

// Global config object, set by the server's main.go
var Config struct {
	// Architecture used when a request does not name one.
	DefaultArch string
	// Base configuration that request parameters are applied on top of.
	Defaults resnet.Config
}

func init() {
	Config.DefaultArch = "mask_rcnn"
	Config.Defaults = resnet.DefaultConfig()
}
