package caffe

import (
	"fmt"

	"github.com/skyhookml/caffenet/caffe/caffepb"
)

// Shape of a blob. -1 marks a dimension that is only known at run time
// (e.g. the number of proposals); a nil shape is entirely unknown.
type Shape []int

func (s Shape) String() string {
	if s == nil {
		return "?"
	}
	str := "["
	for i, d := range s {
		if i > 0 {
			str += " "
		}
		if d < 0 {
			str += "?"
		} else {
			str += fmt.Sprintf("%d", d)
		}
	}
	return str + "]"
}

func (s Shape) Count() int {
	if s == nil {
		return -1
	}
	n := 1
	for _, d := range s {
		if d < 0 {
			return -1
		}
		n *= d
	}
	return n
}

// Returns whether two shapes can describe the same blob.
func (s Shape) Compatible(other Shape) bool {
	if s == nil || other == nil {
		return true
	}
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] >= 0 && other[i] >= 0 && s[i] != other[i] {
			return false
		}
	}
	return true
}

// Output size of a sliding window along one axis.
func windowDim(in, kernel, pad, stride int, ceil bool) int {
	if in < 0 {
		return -1
	}
	span := in + 2*pad - kernel
	if span < 0 {
		return 0
	}
	if ceil {
		return (span+stride-1)/stride + 1
	}
	return span/stride + 1
}

func firstOr(values []uint32, def int) int {
	if len(values) == 0 {
		return def
	}
	return int(values[0])
}

func blobShape(shape *caffepb.BlobShape) Shape {
	out := make(Shape, len(shape.GetDim()))
	for i, d := range shape.GetDim() {
		out[i] = int(d)
	}
	return out
}

// Propagates blob shapes through the net, layer by layer.
// Returns an error when a layer receives inputs it cannot accept, e.g. an
// Eltwise over blobs of different shapes.
func (net *Net) InferShapes() (map[string]Shape, error) {
	shapes := make(map[string]Shape)
	for _, layer := range net.Layers {
		var in []Shape
		for _, bottom := range layer.Bottom {
			in = append(in, shapes[bottom])
		}
		out, err := layerShapes(layer, in)
		if err != nil {
			return shapes, fmt.Errorf("layer %s (%s): %v", layer.GetName(), layer.GetType(), err)
		}
		for i, top := range layer.Top {
			if i < len(out) {
				shapes[top] = out[i]
			} else {
				shapes[top] = nil
			}
		}
	}
	return shapes, nil
}

func requireRank(s Shape, rank int, what string) error {
	if s != nil && len(s) != rank {
		return fmt.Errorf("%s has shape %v, expected %d axes", what, s, rank)
	}
	return nil
}

func layerShapes(layer *Layer, in []Shape) ([]Shape, error) {
	first := func() Shape {
		if len(in) == 0 {
			return nil
		}
		return in[0]
	}

	switch layer.GetType() {
	case "DummyData", "Input":
		shapes := layer.DummyDataParam.GetShape()
		if layer.GetType() == "Input" {
			shapes = layer.InputParam.GetShape()
		}
		var out []Shape
		for _, shape := range shapes {
			out = append(out, blobShape(shape))
		}
		return out, nil

	case "Python":
		var out []Shape
		for _, s := range layer.TopShapes {
			out = append(out, Shape(s))
		}
		return out, nil

	case "ReLU", "BatchNorm", "Scale", "Softmax", "Dropout", "Sigmoid", "TanH":
		return []Shape{first()}, nil

	case "Convolution":
		s := first()
		if err := requireRank(s, 4, "input"); err != nil {
			return nil, err
		}
		p := layer.ConvolutionParam
		numOutput := int(p.GetNumOutput())
		if numOutput <= 0 {
			return nil, fmt.Errorf("num_output must be positive")
		}
		if s == nil {
			return []Shape{nil}, nil
		}
		kernel := firstOr(p.GetKernelSize(), 1)
		pad := firstOr(p.GetPad(), 0)
		stride := firstOr(p.GetStride(), 1)
		return checkSpatial(Shape{
			s[0],
			numOutput,
			windowDim(s[2], kernel, pad, stride, false),
			windowDim(s[3], kernel, pad, stride, false),
		}, s)

	case "Pooling":
		s := first()
		if err := requireRank(s, 4, "input"); err != nil {
			return nil, err
		}
		if s == nil {
			return []Shape{nil}, nil
		}
		p := layer.PoolingParam
		if p.GetGlobalPooling() {
			return []Shape{{s[0], s[1], 1, 1}}, nil
		}
		kernel := int(p.GetKernelSize())
		if p.KernelSize == nil {
			kernel = 1
		}
		pad := int(p.GetPad())
		stride := int(p.GetStride())
		return checkSpatial(Shape{
			s[0],
			s[1],
			windowDim(s[2], kernel, pad, stride, true),
			windowDim(s[3], kernel, pad, stride, true),
		}, s)

	case "Eltwise":
		var out Shape
		for i, s := range in {
			if !s.Compatible(out) {
				return nil, fmt.Errorf("bottom %d has shape %v, expected %v", i, s, out)
			}
			out = mergeShapes(out, s)
		}
		return []Shape{out}, nil

	case "InnerProduct":
		s := first()
		numOutput := int(layer.InnerProductParam.GetNumOutput())
		if numOutput <= 0 {
			return nil, fmt.Errorf("num_output must be positive")
		}
		if s == nil {
			return []Shape{nil}, nil
		}
		return []Shape{{s[0], numOutput}}, nil

	case "Reshape":
		var dims []int
		for _, d := range layer.ReshapeParam.GetShape().GetDim() {
			dims = append(dims, int(d))
		}
		return []Shape{reshape(first(), dims)}, nil

	case "ROIAlign", "ROIPooling":
		if len(in) != 2 {
			return nil, fmt.Errorf("expected features and rois bottoms")
		}
		features, rois := in[0], in[1]
		if err := requireRank(features, 4, "features"); err != nil {
			return nil, err
		}
		if rois != nil && (len(rois) != 2 || (rois[1] >= 0 && rois[1] != 5)) {
			return nil, fmt.Errorf("rois have shape %v, expected [? 5]", rois)
		}
		pooledH, pooledW := int(layer.RoiAlignParam.GetPooledH()), int(layer.RoiAlignParam.GetPooledW())
		if layer.GetType() == "ROIPooling" {
			pooledH, pooledW = int(layer.RoiPoolingParam.GetPooledH()), int(layer.RoiPoolingParam.GetPooledW())
		}
		numRois, channels := -1, -1
		if rois != nil {
			numRois = rois[0]
		}
		if features != nil {
			channels = features[1]
		}
		return []Shape{{numRois, channels, pooledH, pooledW}}, nil

	case "SmoothL1Loss":
		if len(in) >= 2 && !in[0].Compatible(in[1]) {
			return nil, fmt.Errorf("predictions %v do not match targets %v", in[0], in[1])
		}
		return []Shape{{}}, nil

	case "SoftmaxWithLoss", "EuclideanLoss", "SigmoidCrossEntropyLoss":
		return []Shape{{}}, nil
	}
	// unknown layer types produce unknown shapes
	return nil, nil
}

func checkSpatial(out Shape, in Shape) ([]Shape, error) {
	if out[2] == 0 || out[3] == 0 {
		return nil, fmt.Errorf("kernel does not fit input %v", in)
	}
	return []Shape{out}, nil
}

func mergeShapes(a, b Shape) Shape {
	if a == nil {
		return append(Shape(nil), b...)
	}
	if b == nil {
		return a
	}
	out := append(Shape(nil), a...)
	for i := range out {
		if out[i] < 0 {
			out[i] = b[i]
		}
	}
	return out
}

// Applies Caffe reshape semantics: 0 copies the input axis,
// -1 is inferred from the remaining element count.
func reshape(in Shape, dims []int) Shape {
	out := make(Shape, len(dims))
	inferAxis := -1
	known := 1
	for i, d := range dims {
		switch {
		case d == 0:
			if in != nil && i < len(in) {
				out[i] = in[i]
			} else {
				out[i] = -1
			}
		case d == -1:
			inferAxis = i
			out[i] = -1
			continue
		default:
			out[i] = d
		}
		if out[i] < 0 {
			known = -1
		} else if known > 0 {
			known *= out[i]
		}
	}
	if inferAxis >= 0 {
		total := in.Count()
		if total >= 0 && known > 0 && total%known == 0 {
			out[inferAxis] = total / known
		}
	}
	return out
}
