package resnet

import (
	"fmt"
)

const (
	// bottleneck blocks: 1x1, 3x3, 1x1 (x4 channels)
	ModuleNormal = "normal"
	// two 3x3 convolutions
	ModuleBasic = "basic"

	PoolingAlign = "align"
	PoolingPool = "pool"
)

type Config struct {
	// Number of residual blocks per stage. The last stage runs on the
	// ROI features, the others form the shared backbone.
	Stages []int `json:"stages"`
	// Filters of the first stage; doubled for each following stage.
	Channels int `json:"channels"`
	// Whether to build the deploy (inference) net instead of the train net.
	Deploy bool `json:"deploy"`
	Classes int `json:"classes"`
	Anchors int `json:"anchors"`
	FeatStride int `json:"feat_stride"`
	// [width, height] of the ROI features.
	PooledSize [2]int `json:"pooled_size"`
	Module string `json:"module"`
	Pooling string `json:"pooling"`

	// If set, selects Stages, Module and NumberedBlocks from the standard
	// ResNet depths.
	Depth int `json:"depth,omitempty"`
	// Name the blocks of the inner stages a, b1, b2, ... instead of a, b, c,
	// as the published ResNet-101 and ResNet-152 models do.
	NumberedBlocks bool `json:"numbered_blocks,omitempty"`
	// Number of leading stages whose parameters are not learned:
	// 1 freezes conv1, 2 freezes conv1 and res2, and so on.
	FreezeStages int `json:"freeze_stages,omitempty"`
	// N, C, H, W of the deploy net's data blob.
	InputShape [4]int `json:"input_shape"`
	MaskChannels int `json:"mask_channels"`
}

func DefaultConfig() Config {
	return Config{
		Stages: []int{3, 4, 6, 3},
		Channels: 64,
		Deploy: false,
		Classes: 2,
		Anchors: 9,
		FeatStride: 16,
		PooledSize: [2]int{14, 14},
		Module: ModuleNormal,
		Pooling: PoolingAlign,
		InputShape: [4]int{1, 3, 224, 224},
		MaskChannels: 256,
	}
}

type depthPreset struct {
	Stages []int
	Module string
	NumberedBlocks bool
}

var depthPresets = map[int]depthPreset{
	18: {[]int{2, 2, 2, 2}, ModuleBasic, false},
	34: {[]int{3, 4, 6, 3}, ModuleBasic, false},
	50: {[]int{3, 4, 6, 3}, ModuleNormal, false},
	101: {[]int{3, 4, 23, 3}, ModuleNormal, true},
	152: {[]int{3, 8, 36, 3}, ModuleNormal, true},
}

// Returns the supported ResNet depths.
func Depths() []int {
	return []int{18, 34, 50, 101, 152}
}

// Applies the Depth preset, if any, and fills zero fields with defaults.
func (cfg Config) Normalize() (Config, error) {
	def := DefaultConfig()
	if cfg.Depth != 0 {
		preset, ok := depthPresets[cfg.Depth]
		if !ok {
			return cfg, fmt.Errorf("unsupported depth %d (want one of %v)", cfg.Depth, Depths())
		}
		cfg.Stages = append([]int(nil), preset.Stages...)
		cfg.Module = preset.Module
		cfg.NumberedBlocks = preset.NumberedBlocks
	}
	if len(cfg.Stages) == 0 {
		cfg.Stages = def.Stages
	}
	if cfg.Channels == 0 {
		cfg.Channels = def.Channels
	}
	if cfg.Classes == 0 {
		cfg.Classes = def.Classes
	}
	if cfg.Anchors == 0 {
		cfg.Anchors = def.Anchors
	}
	if cfg.FeatStride == 0 {
		cfg.FeatStride = def.FeatStride
	}
	if cfg.PooledSize == [2]int{} {
		cfg.PooledSize = def.PooledSize
	}
	if cfg.Module == "" {
		cfg.Module = def.Module
	}
	if cfg.Pooling == "" {
		cfg.Pooling = def.Pooling
	}
	if cfg.InputShape == [4]int{} {
		cfg.InputShape = def.InputShape
	}
	if cfg.MaskChannels == 0 {
		cfg.MaskChannels = def.MaskChannels
	}
	return cfg, cfg.Validate()
}

func (cfg Config) Validate() error {
	if len(cfg.Stages) < 2 {
		return fmt.Errorf("need at least two stages, got %d", len(cfg.Stages))
	}
	for i, n := range cfg.Stages {
		if n <= 0 {
			return fmt.Errorf("stage %d has %d blocks", i+2, n)
		}
	}
	if cfg.Channels <= 0 {
		return fmt.Errorf("channels must be positive")
	}
	if cfg.Classes < 2 {
		return fmt.Errorf("need at least two classes (background and one object class), got %d", cfg.Classes)
	}
	if cfg.Anchors <= 0 {
		return fmt.Errorf("anchors must be positive")
	}
	if cfg.FeatStride <= 0 {
		return fmt.Errorf("feat_stride must be positive")
	}
	if cfg.PooledSize[0] <= 0 || cfg.PooledSize[1] <= 0 {
		return fmt.Errorf("invalid pooled size %v", cfg.PooledSize)
	}
	if cfg.Module != ModuleNormal && cfg.Module != ModuleBasic {
		return fmt.Errorf("unknown module %q (want %q or %q)", cfg.Module, ModuleNormal, ModuleBasic)
	}
	if cfg.Pooling != PoolingAlign && cfg.Pooling != PoolingPool {
		return fmt.Errorf("unknown pooling %q (want %q or %q)", cfg.Pooling, PoolingAlign, PoolingPool)
	}
	if cfg.FreezeStages < 0 || cfg.FreezeStages > len(cfg.Stages) {
		return fmt.Errorf("freeze_stages must be between 0 and %d", len(cfg.Stages))
	}
	for i, d := range cfg.InputShape {
		if d <= 0 {
			return fmt.Errorf("input shape axis %d is %d", i, d)
		}
	}
	if cfg.InputShape[1] != 3 {
		return fmt.Errorf("input must have 3 channels, got %d", cfg.InputShape[1])
	}
	if cfg.MaskChannels <= 0 {
		return fmt.Errorf("mask_channels must be positive")
	}
	return nil
}
