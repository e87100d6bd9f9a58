package caffe

import (
	"testing"

	"github.com/skyhookml/caffenet/caffe/caffepb"

	"github.com/golang/protobuf/proto"
)

func TestWindowDim(t *testing.T) {
	check := func(in, kernel, pad, stride int, ceil bool, expected int) {
		if out := windowDim(in, kernel, pad, stride, ceil); out != expected {
			t.Errorf("windowDim(%d, %d, %d, %d, %v) = %d; want %d", in, kernel, pad, stride, ceil, out, expected)
		}
	}
	// conv1 of ResNet: 7x7 stride 2 pad 3
	check(224, 7, 3, 2, false, 112)
	// pool1: 3x3 stride 2, Caffe rounds up
	check(112, 3, 0, 2, true, 56)
	check(112, 3, 0, 2, false, 55)
	check(14, 1, 0, 2, false, 7)
	check(7, 7, 0, 1, true, 1)
	check(-1, 3, 1, 1, false, -1)
	check(4, 7, 0, 1, true, 0)
}

func TestReshape(t *testing.T) {
	check := func(in Shape, dims []int, expected Shape) {
		out := reshape(in, dims)
		if out.String() != expected.String() {
			t.Errorf("reshape(%v, %v) = %v; want %v", in, dims, out, expected)
		}
	}
	check(Shape{1, 18, 14, 14}, []int{0, 2, -1, 0}, Shape{1, 2, 126, 14})
	check(Shape{1, 2, 126, 14}, []int{0, 18, -1, 0}, Shape{1, 18, 14, 14})
	check(Shape{1, 18, -1, -1}, []int{0, 2, -1, 0}, Shape{1, 2, -1, -1})
	check(nil, []int{0, 2, -1, 0}, Shape{-1, 2, -1, -1})
}

func TestInferShapes(t *testing.T) {
	net := tinyNet()
	net.Add1(NewLayer("pool1", "Pooling", "conv1").With(func(lp *caffepb.LayerParameter) {
		lp.PoolingParam = &caffepb.PoolingParameter{
			Pool: caffepb.PoolingParameter_MAX.Enum(),
			KernelSize: proto.Uint32(3),
			Stride: proto.Uint32(2),
		}
	}))
	net.Add1(NewLayer("rois", "Python").WithTopShapes([]int{-1, 5}))
	net.Add1(NewLayer("ROIAlign", "ROIAlign", "pool1", "rois").With(func(lp *caffepb.LayerParameter) {
		lp.RoiAlignParam = &caffepb.ROIAlignParameter{
			PooledH: proto.Uint32(2),
			PooledW: proto.Uint32(3),
			SpatialScale: proto.Float32(0.5),
		}
	}))
	net.Add1(NewLayer("ROIPooling", "ROIPooling", "conv1", "rois").With(func(lp *caffepb.LayerParameter) {
		lp.RoiPoolingParam = &caffepb.ROIPoolingParameter{PooledH: proto.Uint32(3), PooledW: proto.Uint32(3)}
	}))
	net.Add1(NewLayer("fc", "InnerProduct", "ROIAlign").With(func(lp *caffepb.LayerParameter) {
		lp.InnerProductParam = &caffepb.InnerProductParameter{NumOutput: proto.Uint32(10)}
	}))
	net.Add1(NewLayer("flat", "Reshape", "fc").With(func(lp *caffepb.LayerParameter) {
		lp.ReshapeParam = &caffepb.ReshapeParameter{Shape: NewBlobShape(0, 2, -1)}
	}))

	shapes, err := net.InferShapes()
	if err != nil {
		t.Fatal(err)
	}
	check := func(blob string, expected Shape) {
		if shapes[blob].String() != expected.String() {
			t.Errorf("shape of %s = %v; want %v", blob, shapes[blob], expected)
		}
	}
	check("data", Shape{1, 3, 8, 8})
	check("conv1", Shape{1, 4, 6, 6})
	check("pool1", Shape{1, 4, 3, 3})
	check("ROIAlign", Shape{-1, 4, 2, 3})
	check("ROIPooling", Shape{-1, 4, 3, 3})
	check("fc", Shape{-1, 10})
	check("flat", Shape{-1, 2, -1})
}

func TestInferShapesMismatch(t *testing.T) {
	net := tinyNet()
	net.Add1(NewLayer("conv2", "Convolution", "data").With(func(lp *caffepb.LayerParameter) {
		lp.ConvolutionParam = &caffepb.ConvolutionParameter{NumOutput: proto.Uint32(4), KernelSize: []uint32{1}}
	}))
	net.Add1(NewLayer("sum", "Eltwise", "conv1", "conv2").With(func(lp *caffepb.LayerParameter) {
		lp.EltwiseParam = &caffepb.EltwiseParameter{Operation: caffepb.EltwiseParameter_SUM.Enum()}
	}))
	if _, err := net.InferShapes(); err == nil {
		t.Errorf("expected an error summing [1 4 6 6] and [1 4 8 8]")
	}

	net = tinyNet()
	net.Add1(NewLayer("pool", "Pooling", "conv1").With(func(lp *caffepb.LayerParameter) {
		lp.PoolingParam = &caffepb.PoolingParameter{
			Pool: caffepb.PoolingParameter_AVE.Enum(),
			KernelSize: proto.Uint32(7),
			Stride: proto.Uint32(1),
		}
	}))
	if _, err := net.InferShapes(); err == nil {
		t.Errorf("expected an error pooling 6x6 with a 7x7 kernel")
	}
}
