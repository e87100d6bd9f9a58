package resnet

import (
	"fmt"
	"strings"

	"github.com/skyhookml/caffenet/caffe"
	"github.com/skyhookml/caffenet/caffe/caffepb"

	"github.com/golang/protobuf/proto"
)

// Builds ResNet layers into a caffe.Net.
// The layer names follow the published Caffe ResNet models
// (conv1, res2a_branch2a, bn2a_branch2a, scale2a_branch2a, ...) so that
// pre-trained weights can be loaded by name.
type ResNet struct {
	Config Config
	Net *caffe.Net

	// stage whose layers are being added: 1 for conv1, 2.. for res2..
	stage int
}

func New(cfg Config) (*ResNet, error) {
	cfg, err := cfg.Normalize()
	if err != nil {
		return nil, err
	}
	return &ResNet{
		Config: cfg,
		Net: caffe.NewNet(""),
	}, nil
}

// Whether parameters of the stage being built are gated to zero learning rate.
func (r *ResNet) frozen() bool {
	return r.stage > 0 && r.stage <= r.Config.FreezeStages
}

func (r *ResNet) frozenParams(n int) []*caffepb.ParamSpec {
	if !r.frozen() {
		return nil
	}
	params := make([]*caffepb.ParamSpec, n)
	for i := range params {
		params[i] = caffe.FrozenParam()
	}
	return params
}

// Names of the BatchNorm and Scale layers that follow a convolution.
func normNames(name string) (bn string, scale string) {
	if strings.Contains(name, "res") {
		return strings.ReplaceAll(name, "res", "bn"), strings.ReplaceAll(name, "res", "scale")
	}
	return "bn_" + name, "scale_" + name
}

func (r *ResNet) convolution(name string, bottom caffe.Blob, ks int, nout int, stride int, pad int, biasTerm bool) caffe.Blob {
	numBlobs := 1
	if biasTerm {
		numBlobs = 2
	}
	layer := caffe.NewLayer(name, "Convolution", bottom).
		WithParams(r.frozenParams(numBlobs)...).
		With(func(lp *caffepb.LayerParameter) {
			lp.ConvolutionParam = &caffepb.ConvolutionParameter{
				NumOutput: proto.Uint32(uint32(nout)),
				BiasTerm: proto.Bool(biasTerm),
				Pad: []uint32{uint32(pad)},
				KernelSize: []uint32{uint32(ks)},
				Stride: []uint32{uint32(stride)},
				WeightFiller: caffe.Filler("msra"),
			}
		})
	return r.Net.Add1(layer)
}

// Adds in-place BatchNorm and Scale layers after a convolution.
func (r *ResNet) normalize(name string, conv caffe.Blob) caffe.Blob {
	bnName, scaleName := normNames(name)
	useGlobalStats := r.Config.Deploy || r.frozen()
	bn := r.Net.Add1(caffe.NewLayer(bnName, "BatchNorm", conv).InPlace().
		WithParams(r.frozenParams(3)...).
		With(func(lp *caffepb.LayerParameter) {
			lp.BatchNormParam = &caffepb.BatchNormParameter{UseGlobalStats: proto.Bool(useGlobalStats)}
		}))
	return r.Net.Add1(caffe.NewLayer(scaleName, "Scale", bn).InPlace().
		WithParams(r.frozenParams(2)...).
		With(func(lp *caffepb.LayerParameter) {
			lp.ScaleParam = &caffepb.ScaleParameter{BiasTerm: proto.Bool(true)}
		}))
}

func (r *ResNet) relu(name string, bottom caffe.Blob) caffe.Blob {
	return r.Net.Add1(caffe.NewLayer(name, "ReLU", bottom).InPlace())
}

// Convolution followed by BatchNorm, Scale and ReLU.
func (r *ResNet) ConvFactory(name string, bottom caffe.Blob, ks int, nout int, stride int, pad int, biasTerm bool) caffe.Blob {
	conv := r.convolution(name, bottom, ks, nout, stride, pad, biasTerm)
	return r.relu(name+"_relu", r.normalize(name, conv))
}

// Like ConvFactory but without the ReLU, for the last convolution of a
// residual branch.
func (r *ResNet) ConvFactoryNoReLU(name string, bottom caffe.Blob, ks int, nout int, stride int, pad int, biasTerm bool) caffe.Blob {
	conv := r.convolution(name, bottom, ks, nout, stride, pad, biasTerm)
	return r.normalize(name, conv)
}

func (r *ResNet) sum(name string, a caffe.Blob, b caffe.Blob) caffe.Blob {
	out := r.Net.Add1(caffe.NewLayer(name, "Eltwise", a, b).
		With(func(lp *caffepb.LayerParameter) {
			lp.EltwiseParam = &caffepb.EltwiseParameter{Operation: caffepb.EltwiseParameter_SUM.Enum()}
		}))
	return r.relu(name+"_relu", out)
}

// Bottleneck block with a projection shortcut (_branch1).
func (r *ResNet) ResidualBlock(name string, bottom caffe.Blob, numFilter int, stride int) caffe.Blob {
	conv1 := r.ConvFactory(name+"_branch2a", bottom, 1, numFilter, stride, 0, false)
	conv2 := r.ConvFactory(name+"_branch2b", conv1, 3, numFilter, 1, 1, false)
	conv3 := r.ConvFactoryNoReLU(name+"_branch2c", conv2, 1, 4*numFilter, 1, 0, false)
	shortcut := r.ConvFactoryNoReLU(name+"_branch1", bottom, 1, 4*numFilter, stride, 0, false)
	return r.sum(name, conv3, shortcut)
}

// Bottleneck block with an identity shortcut.
func (r *ResNet) ResidualBlockShortcut(name string, bottom caffe.Blob, numFilter int) caffe.Blob {
	conv1 := r.ConvFactory(name+"_branch2a", bottom, 1, numFilter, 1, 0, false)
	conv2 := r.ConvFactory(name+"_branch2b", conv1, 3, numFilter, 1, 1, false)
	conv3 := r.ConvFactoryNoReLU(name+"_branch2c", conv2, 1, 4*numFilter, 1, 0, false)
	return r.sum(name, bottom, conv3)
}

// Basic block (two 3x3 convolutions) with a projection shortcut.
func (r *ResNet) ResidualBlockBasic(name string, bottom caffe.Blob, numFilter int, stride int) caffe.Blob {
	conv1 := r.ConvFactory(name+"_branch2a", bottom, 3, numFilter, stride, 1, false)
	conv2 := r.ConvFactoryNoReLU(name+"_branch2b", conv1, 3, numFilter, 1, 1, false)
	shortcut := r.ConvFactoryNoReLU(name+"_branch1", bottom, 1, numFilter, stride, 0, false)
	return r.sum(name, conv2, shortcut)
}

// Basic block with an identity shortcut.
func (r *ResNet) ResidualBlockShortcutBasic(name string, bottom caffe.Blob, numFilter int) caffe.Blob {
	conv1 := r.ConvFactory(name+"_branch2a", bottom, 3, numFilter, 1, 1, false)
	conv2 := r.ConvFactoryNoReLU(name+"_branch2b", conv1, 3, numFilter, 1, 1, false)
	return r.sum(name, bottom, conv2)
}

// Output channels of a block with the given number of filters.
func (r *ResNet) blockChannels(numFilter int) int {
	if r.Config.Module == ModuleBasic {
		return numFilter
	}
	return 4 * numFilter
}

// Returns the name of a block within stage `index`: res4a, res4b, ... or,
// when numbered, res4a, res4b1, res4b2, ... as in ResNet-101/152.
func BlockName(index int, block int, numbered bool) string {
	var suffix string
	if numbered {
		if block == 0 {
			suffix = "a"
		} else {
			suffix = fmt.Sprintf("b%d", block)
		}
	} else {
		suffix = string(rune('a' + block))
	}
	return fmt.Sprintf("res%d%s", index, suffix)
}

// Adds all blocks of stage `index` (2 for res2, ...).
// inChannels is the channel count of bottom; returns the stage output and its
// channel count.
func (r *ResNet) Stage(index int, bottom caffe.Blob, inChannels int, numBlocks int, numFilter int) (caffe.Blob, int) {
	r.stage = index
	stride := 2
	if index == 2 {
		stride = 1
	}
	out := bottom
	outChannels := r.blockChannels(numFilter)
	// the first and last stage keep letters even in the deep presets
	numbered := numBlocks > 26 || (r.Config.NumberedBlocks && index != 2 && index != len(r.Config.Stages)+1)
	for j := 0; j < numBlocks; j++ {
		name := BlockName(index, j, numbered)
		if r.Config.Module == ModuleNormal {
			if j == 0 {
				out = r.ResidualBlock(name, out, numFilter, stride)
			} else {
				out = r.ResidualBlockShortcut(name, out, numFilter)
			}
		} else {
			// identity shortcut whenever the shapes already agree
			if j == 0 && (stride != 1 || inChannels != outChannels) {
				out = r.ResidualBlockBasic(name, out, numFilter, stride)
			} else {
				out = r.ResidualBlockShortcutBasic(name, out, numFilter)
			}
		}
	}
	r.stage = 0
	return out, outChannels
}

func (r *ResNet) PoolingLayer(kernelSize int, stride int, poolType caffepb.PoolingParameter_PoolMethod, layerName string, bottom caffe.Blob) caffe.Blob {
	return r.Net.Add1(caffe.NewLayer(layerName, "Pooling", bottom).
		With(func(lp *caffepb.LayerParameter) {
			lp.PoolingParam = &caffepb.PoolingParameter{
				Pool: poolType.Enum(),
				KernelSize: proto.Uint32(uint32(kernelSize)),
				Stride: proto.Uint32(uint32(stride)),
			}
		}))
}

func (r *ResNet) AvePool(kernelSize int, stride int, layerName string, bottom caffe.Blob) caffe.Blob {
	return r.PoolingLayer(kernelSize, stride, caffepb.PoolingParameter_AVE, layerName, bottom)
}

// Adds conv1, pool1 and every stage but the last.
// Returns the shared feature map, its channel count, and the filter count
// for the last stage.
func (r *ResNet) Backbone(data caffe.Blob) (caffe.Blob, int, int) {
	r.stage = 1
	channels := r.Config.Channels
	conv1 := r.ConvFactory("conv1", data, 7, channels, 2, 3, true)
	out := r.PoolingLayer(3, 2, caffepb.PoolingParameter_MAX, "pool1", conv1)
	outChannels := channels
	stages := r.Config.Stages
	for i, numBlocks := range stages[:len(stages)-1] {
		out, outChannels = r.Stage(i+2, out, outChannels, numBlocks, channels)
		channels *= 2
	}
	return out, outChannels, channels
}

// Adds the last stage on top of the ROI features.
func (r *ResNet) HeadStage(bottom caffe.Blob, inChannels int, numFilter int) (caffe.Blob, int) {
	stages := r.Config.Stages
	return r.Stage(len(stages)+1, bottom, inChannels, stages[len(stages)-1], numFilter)
}
