package caffe

import (
	"strings"
	"testing"

	"github.com/skyhookml/caffenet/caffe/caffepb"

	"github.com/golang/protobuf/proto"
)

const tinyPrototxt = `name: "tiny"
layer {
  name: "data"
  type: "DummyData"
  top: "data"
  dummy_data_param {
    shape {
      dim: 1
      dim: 3
      dim: 8
      dim: 8
    }
  }
}
layer {
  name: "conv1"
  type: "Convolution"
  bottom: "data"
  top: "conv1"
  param {
    lr_mult: 1
  }
  param {
    lr_mult: 2
  }
  convolution_param {
    num_output: 4
    kernel_size: 3
    weight_filler {
      type: "gaussian"
      std: 0.01
    }
  }
}
layer {
  name: "relu1"
  type: "ReLU"
  bottom: "conv1"
  top: "conv1"
}
`

func tinyNet() *Net {
	net := NewNet("tiny")
	data := net.Add1(NewLayer("data", "DummyData").With(func(lp *caffepb.LayerParameter) {
		lp.DummyDataParam = &caffepb.DummyDataParameter{
			Shape: []*caffepb.BlobShape{NewBlobShape(1, 3, 8, 8)},
		}
	}))
	conv := net.Add1(NewLayer("conv1", "Convolution", data).
		WithParams(LrParam(1), LrParam(2)).
		With(func(lp *caffepb.LayerParameter) {
			lp.ConvolutionParam = &caffepb.ConvolutionParameter{
				NumOutput: proto.Uint32(4),
				KernelSize: []uint32{3},
				WeightFiller: GaussianFiller(0.01),
			}
		}))
	net.Add1(NewLayer("relu1", "ReLU", conv).InPlace())
	return net
}

func TestEncode(t *testing.T) {
	var sb strings.Builder
	if err := Encode(&sb, tinyNet()); err != nil {
		t.Fatal(err)
	}
	text := sb.String()
	if !strings.HasPrefix(text, "name: \"tiny\"\n") {
		t.Errorf("prototxt does not start with the net name:\n%s", text)
	}
	for _, line := range []string{
		`name: "conv1"`,
		`type: "Convolution"`,
		`dim: 8`,
		`lr_mult: 2`,
		`num_output: 4`,
		`type: "gaussian"`,
	} {
		if !strings.Contains(text, line) {
			t.Errorf("prototxt is missing %s:\n%s", line, text)
		}
	}
	// fields follow caffe.proto order within a layer
	conv := text[strings.Index(text, `name: "conv1"`):]
	last := -1
	for _, field := range []string{"type:", "bottom:", "top:", "param", "convolution_param"} {
		idx := strings.Index(conv, field)
		if idx <= last {
			t.Errorf("%s is out of order in the conv1 layer", field)
		}
		last = idx
	}
	if text != tinyNet().String() {
		t.Errorf("Encode and String disagree")
	}
}

func TestEnumNames(t *testing.T) {
	net := tinyNet()
	net.Add1(NewLayer("pool1", "Pooling", "conv1").With(func(lp *caffepb.LayerParameter) {
		lp.PoolingParam = &caffepb.PoolingParameter{Pool: caffepb.PoolingParameter_MAX.Enum()}
	}))
	net.Add1(NewLayer("sum", "Eltwise", "pool1", "pool1").With(func(lp *caffepb.LayerParameter) {
		lp.EltwiseParam = &caffepb.EltwiseParameter{Operation: caffepb.EltwiseParameter_SUM.Enum()}
	}))
	net.Add1(NewLayer("drop", "Dropout", "sum").WithPhase(caffepb.Phase_TRAIN))
	text := net.String()
	for _, line := range []string{"pool: MAX", "operation: SUM", "phase: TRAIN"} {
		if !strings.Contains(text, line) {
			t.Errorf("prototxt is missing %s", line)
		}
	}
	if s := caffepb.PoolingParameter_AVE.String(); s != "AVE" {
		t.Errorf("PoolingParameter_AVE.String() = %s", s)
	}
}

func TestParseRoundTrip(t *testing.T) {
	net, err := ParseString(tinyPrototxt)
	if err != nil {
		t.Fatal(err)
	}
	if err := net.Validate(); err != nil {
		t.Fatal(err)
	}
	if !proto.Equal(net.Proto(), tinyNet().Proto()) {
		t.Errorf("parsed net differs from the built one:\n%s", net.String())
	}

	again, err := ParseString(net.String())
	if err != nil {
		t.Fatal(err)
	}
	if again.Hash() != net.Hash() {
		t.Errorf("re-encoded prototxt parses to a different net")
	}
}

func TestParseSyntax(t *testing.T) {
	text := `
# comments, single quotes and angle brackets
name: 'rcnn'
layer {
  name: 'input-data' type: 'Python'
  top: 'data' top: 'im_info'
  python_param { module: 'roi_data_layer.layer' layer: 'RoIDataLayer' param_str: "'num_classes': 21" }
}
layer <
  name: "loss"
  type: "SoftmaxWithLoss"
  bottom: "data"
  bottom: "im_info"
  top: "loss"
  loss_weight: 1
  propagate_down: true
  propagate_down: false
  include { phase: TRAIN }
  loss_param { ignore_label: -1 normalize: true }
>
`
	net, err := ParseString(text)
	if err != nil {
		t.Fatal(err)
	}
	if net.Name != "rcnn" {
		t.Errorf("name = %q", net.Name)
	}
	if len(net.Layers) != 2 {
		t.Fatalf("got %d layers, want 2", len(net.Layers))
	}
	data := net.Layer("input-data")
	if data == nil || len(data.Top) != 2 {
		t.Fatalf("input-data layer not parsed: %+v", data)
	}
	if s := data.PythonParam.GetParamStr(); s != "'num_classes': 21" {
		t.Errorf("param_str = %q", s)
	}
	loss := net.Layer("loss")
	if phase, ok := loss.IncludePhase(); !ok || phase != caffepb.Phase_TRAIN {
		t.Errorf("phase = %v, %v", phase, ok)
	}
	if len(loss.PropagateDown) != 2 || !loss.PropagateDown[0] || loss.PropagateDown[1] {
		t.Errorf("propagate_down = %v", loss.PropagateDown)
	}
	if len(loss.LossWeight) != 1 || loss.LossWeight[0] != 1 {
		t.Errorf("loss_weight = %v", loss.LossWeight)
	}
	if v := loss.LossParam.GetIgnoreLabel(); v != -1 {
		t.Errorf("ignore_label = %d", v)
	}
	if err := net.Validate(); err != nil {
		t.Error(err)
	}
}

func TestParseEscapes(t *testing.T) {
	check := func(quoted string, expected string) {
		net, err := ParseString(`layer { name: "d" type: "Python" top: "d" python_param { param_str: ` + quoted + ` } }`)
		if err != nil {
			t.Errorf("parsing %s: %v", quoted, err)
			return
		}
		if s := net.Layer("d").PythonParam.GetParamStr(); s != expected {
			t.Errorf("param_str %s = %q; want %q", quoted, s, expected)
		}
	}
	check(`"\'num_classes\': 21"`, "'num_classes': 21")
	check(`'\"feat_stride\": 16'`, `"feat_stride": 16`)
	check(`"a\\b\tc"`, "a\\b\tc")
	check(`'it\'s'`, "it's")
}

func TestParseErrors(t *testing.T) {
	for _, text := range []string{
		`layer { name: "x"`,
		`layer { name: "unterminated }`,
		`layer { name: }`,
		`{ name: "x" }`,
		`layer { name: "x" @ }`,
		`layer { name: "x" bogus_param { } }`,
		`layers { name: "x" type: RELU }`,
		`layer { name: "p" pooling_param { pool: MEDIAN } }`,
	} {
		if _, err := ParseString(text); err == nil {
			t.Errorf("expected error parsing %q", text)
		}
	}
}
