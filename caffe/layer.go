package caffe

import (
	"github.com/skyhookml/caffenet/caffe/caffepb"

	"github.com/golang/protobuf/proto"
)

// A named tensor flowing between layers (a Caffe "top" or "bottom").
type Blob string

// A layer of a Net: the LayerParameter written to prototxt plus what the
// generator needs to reason about it.
type Layer struct {
	*caffepb.LayerParameter

	// Shapes of the tops for layers whose output cannot be derived from
	// their inputs (Python plugin layers). Not written to prototxt.
	TopShapes [][]int
}

// Creates a layer whose single top is named after the layer.
func NewLayer(name string, layerType string, bottoms ...Blob) *Layer {
	lp := &caffepb.LayerParameter{
		Name: proto.String(name),
		Type: proto.String(layerType),
		Top: []string{name},
	}
	for _, bottom := range bottoms {
		lp.Bottom = append(lp.Bottom, string(bottom))
	}
	return &Layer{LayerParameter: lp}
}

// Overrides the tops of the layer.
func (layer *Layer) WithTops(tops ...string) *Layer {
	layer.Top = append([]string(nil), tops...)
	return layer
}

// Makes the layer write its output into its (single) bottom.
func (layer *Layer) InPlace() *Layer {
	layer.Top = []string{layer.Bottom[0]}
	return layer
}

// Sets type-specific parameter blocks, e.g. convolution_param { ... }.
func (layer *Layer) With(f func(lp *caffepb.LayerParameter)) *Layer {
	f(layer.LayerParameter)
	return layer
}

func (layer *Layer) WithParams(params ...*caffepb.ParamSpec) *Layer {
	layer.Param = append(layer.Param, params...)
	return layer
}

func (layer *Layer) WithLossWeight(weight float32) *Layer {
	layer.LossWeight = append(layer.LossWeight, weight)
	return layer
}

func (layer *Layer) WithPropagateDown(flags ...bool) *Layer {
	layer.PropagateDown = append(layer.PropagateDown, flags...)
	return layer
}

// Restricts the layer to one phase with an include rule.
func (layer *Layer) WithPhase(phase caffepb.Phase) *Layer {
	layer.Include = append(layer.Include, &caffepb.NetStateRule{Phase: phase.Enum()})
	return layer
}

func (layer *Layer) WithTopShapes(shapes ...[]int) *Layer {
	layer.TopShapes = shapes
	return layer
}

// Returns the phase of the first include rule that names one.
func (layer *Layer) IncludePhase() (caffepb.Phase, bool) {
	for _, rule := range layer.Include {
		if rule.Phase != nil {
			return rule.GetPhase(), true
		}
	}
	return 0, false
}

func (layer *Layer) IsInPlace() bool {
	return len(layer.Bottom) == 1 && len(layer.Top) == 1 && layer.Bottom[0] == layer.Top[0]
}

func (layer *Layer) IsLoss() bool {
	if len(layer.LossWeight) > 0 {
		return true
	}
	switch layer.GetType() {
	case "SoftmaxWithLoss", "SmoothL1Loss", "EuclideanLoss", "SigmoidCrossEntropyLoss":
		return true
	}
	return false
}

// A param { lr_mult: .. } entry.
func LrParam(lrMult float32) *caffepb.ParamSpec {
	return &caffepb.ParamSpec{LrMult: proto.Float32(lrMult)}
}

// A param entry that disables learning for the blob.
func FrozenParam() *caffepb.ParamSpec {
	return &caffepb.ParamSpec{LrMult: proto.Float32(0), DecayMult: proto.Float32(0)}
}

// A weight_filler / bias_filler of the given type, e.g. Filler("msra").
func Filler(fillerType string) *caffepb.FillerParameter {
	return &caffepb.FillerParameter{Type: proto.String(fillerType)}
}

func GaussianFiller(std float32) *caffepb.FillerParameter {
	return &caffepb.FillerParameter{Type: proto.String("gaussian"), Std: proto.Float32(std)}
}

func ConstantFiller(value float32) *caffepb.FillerParameter {
	return &caffepb.FillerParameter{Type: proto.String("constant"), Value: proto.Float32(value)}
}

func NewBlobShape(dims ...int) *caffepb.BlobShape {
	shape := &caffepb.BlobShape{}
	for _, dim := range dims {
		shape.Dim = append(shape.Dim, int64(dim))
	}
	return shape
}

// Number of learnable blobs a layer of the given type carries.
func LearnableBlobs(layer *Layer) int {
	switch layer.GetType() {
	case "Convolution":
		if layer.ConvolutionParam.GetBiasTerm() {
			return 2
		}
		return 1
	case "InnerProduct":
		if layer.InnerProductParam.GetBiasTerm() {
			return 2
		}
		return 1
	case "BatchNorm":
		return 3
	case "Scale":
		if layer.ScaleParam.GetBiasTerm() {
			return 2
		}
		return 1
	}
	return 0
}
