package resnet

import (
	"strings"
	"testing"

	"github.com/skyhookml/caffenet/caffe"
	"github.com/skyhookml/caffenet/caffe/caffepb"
)

func build(t *testing.T, cfg Config, mask bool) *caffe.Net {
	t.Helper()
	r, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	var net *caffe.Net
	if mask {
		net, err = r.MaskRCNN()
	} else {
		net, err = r.FasterRCNN()
	}
	if err != nil {
		t.Fatal(err)
	}
	return net
}

func deployConfig() Config {
	cfg := DefaultConfig()
	cfg.Deploy = true
	return cfg
}

func TestBlockName(t *testing.T) {
	check := func(index, block int, numbered bool, expected string) {
		if name := BlockName(index, block, numbered); name != expected {
			t.Errorf("BlockName(%d, %d, %v) = %s; want %s", index, block, numbered, name, expected)
		}
	}
	check(2, 0, false, "res2a")
	check(2, 2, false, "res2c")
	check(4, 5, false, "res4f")
	check(4, 22, false, "res4w")
	check(4, 0, true, "res4a")
	check(4, 1, true, "res4b1")
	check(4, 22, true, "res4b22")
	check(3, 7, true, "res3b7")
}

func TestNormNames(t *testing.T) {
	bn, scale := normNames("res2a_branch2a")
	if bn != "bn2a_branch2a" || scale != "scale2a_branch2a" {
		t.Errorf("got %s, %s", bn, scale)
	}
	bn, scale = normNames("conv1")
	if bn != "bn_conv1" || scale != "scale_conv1" {
		t.Errorf("got %s, %s", bn, scale)
	}
}

func TestConfig(t *testing.T) {
	cfg, err := Config{Depth: 101}.Normalize()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Stages[2] != 23 || cfg.Module != ModuleNormal || cfg.Channels != 64 || cfg.Pooling != PoolingAlign {
		t.Errorf("unexpected normalized config %+v", cfg)
	}
	if !cfg.NumberedBlocks {
		t.Errorf("ResNet-101 numbers its inner blocks")
	}
	if cfg, _ := (Config{Depth: 50}).Normalize(); cfg.NumberedBlocks {
		t.Errorf("ResNet-50 names its blocks with letters")
	}

	bad := []func(*Config){
		func(c *Config) { c.Depth = 42 },
		func(c *Config) { c.Stages = []int{3} },
		func(c *Config) { c.Stages = []int{3, 0, 2} },
		func(c *Config) { c.Module = "wide" },
		func(c *Config) { c.Pooling = "max" },
		func(c *Config) { c.Classes = 1 },
		func(c *Config) { c.FreezeStages = 5 },
		func(c *Config) { c.InputShape = [4]int{1, 1, 224, 224} },
	}
	for i, f := range bad {
		cfg := DefaultConfig()
		f(&cfg)
		if _, err := cfg.Normalize(); err == nil {
			t.Errorf("config %d: expected validation error", i)
		}
	}
}

func TestMaskRCNNDeploy(t *testing.T) {
	net := build(t, deployConfig(), true)
	if len(net.Layers) != 249 {
		t.Errorf("got %d layers; want 249", len(net.Layers))
	}
	shapes, err := net.InferShapes()
	if err != nil {
		t.Fatal(err)
	}
	check := func(blob string, expected caffe.Shape) {
		if shapes[blob].String() != expected.String() {
			t.Errorf("shape of %s = %v; want %v", blob, shapes[blob], expected)
		}
	}
	check("data", caffe.Shape{1, 3, 224, 224})
	check("conv1", caffe.Shape{1, 64, 112, 112})
	check("pool1", caffe.Shape{1, 64, 56, 56})
	check("res2c", caffe.Shape{1, 256, 56, 56})
	check("res3d", caffe.Shape{1, 512, 28, 28})
	check("res4f", caffe.Shape{1, 1024, 14, 14})
	check("rpn_cls_score_reshape", caffe.Shape{1, 2, 126, 14})
	check("rpn_cls_prob_reshape", caffe.Shape{1, 18, 14, 14})
	check("ROIAlign", caffe.Shape{-1, 1024, 14, 14})
	check("res5c", caffe.Shape{-1, 2048, 7, 7})
	check("cls_prob", caffe.Shape{-1, 2})
	check("bbox_pred", caffe.Shape{-1, 8})
	check("mask_prob", caffe.Shape{-1, 256, 7, 7})

	var outputs []string
	for _, blob := range net.Outputs() {
		outputs = append(outputs, string(blob))
	}
	if strings.Join(outputs, ",") != "bbox_pred,cls_prob,mask_prob" {
		t.Errorf("outputs = %v", outputs)
	}

	bn := net.Layer("bn2a_branch2a")
	if !bn.BatchNormParam.GetUseGlobalStats() {
		t.Errorf("deploy BatchNorm must use global stats")
	}
	if net.Layer("rpn-data") != nil || net.Layer("roi-data") != nil {
		t.Errorf("deploy net must not contain target layers")
	}
	proposal := net.Layer("proposal")
	if proposal.Top[0] != "rois" {
		t.Errorf("deploy proposal top = %v", proposal.Top)
	}
}

func TestROIPoolingDeploy(t *testing.T) {
	cfg := deployConfig()
	cfg.Pooling = PoolingPool
	net := build(t, cfg, false)
	shapes, err := net.InferShapes()
	if err != nil {
		t.Fatal(err)
	}
	check := func(blob string, expected caffe.Shape) {
		if shapes[blob].String() != expected.String() {
			t.Errorf("shape of %s = %v; want %v", blob, shapes[blob], expected)
		}
	}
	check("ROIPooling", caffe.Shape{-1, 1024, 14, 14})
	check("res5c", caffe.Shape{-1, 2048, 7, 7})
	check("pool5", caffe.Shape{-1, 2048, 1, 1})
	check("cls_prob", caffe.Shape{-1, 2})

	roi := net.Layer("ROIPooling")
	if strings.Join(roi.Bottom, ",") != "res4f,rois" {
		t.Errorf("ROIPooling bottoms = %v", roi.Bottom)
	}
	if p := roi.RoiPoolingParam; p.GetPooledH() != 14 || p.GetPooledW() != 14 || p.GetSpatialScale() != 0.0625 {
		t.Errorf("unexpected roi_pooling_param %v", p)
	}
	if roi.RoiAlignParam != nil {
		t.Errorf("ROIPooling must not carry roi_align_param")
	}
}

func TestMaskRCNNTrain(t *testing.T) {
	net := build(t, DefaultConfig(), true)
	if len(net.Layers) != 254 {
		t.Errorf("got %d layers; want 254", len(net.Layers))
	}
	summary := net.Summary()
	expectedLosses := "rpn_loss_cls,rpn_loss_bbox,loss_cls,loss_bbox,loss_mask"
	if strings.Join(summary.Losses, ",") != expectedLosses {
		t.Errorf("losses = %v; want %s", summary.Losses, expectedLosses)
	}

	data := net.Layer("input-data")
	if strings.Join(data.Top, ",") != "data,im_info,gt_boxes,ins" {
		t.Errorf("input-data tops = %v", data.Top)
	}
	if s := data.PythonParam.GetParamStr(); s != `"num_classes": 2` {
		t.Errorf("input-data param_str = %s", s)
	}

	rpnData := net.Layer("rpn-data")
	if strings.Join(rpnData.Bottom, ",") != "rpn_cls_score,gt_boxes,im_info,data" {
		t.Errorf("rpn-data bottoms = %v", rpnData.Bottom)
	}
	if s := rpnData.PythonParam.GetParamStr(); s != `"feat_stride": 16` {
		t.Errorf("rpn-data param_str = %s", s)
	}

	rpnLoss := net.Layer("rpn_loss_cls")
	if rpnLoss.Top[0] != "rpn_cls_loss" || len(rpnLoss.PropagateDown) != 2 || rpnLoss.PropagateDown[1] {
		t.Errorf("unexpected rpn_loss_cls %v", rpnLoss)
	}
	if rpnLoss.LossParam.GetIgnoreLabel() != -1 || !rpnLoss.LossParam.GetNormalize() {
		t.Errorf("rpn_loss_cls must ignore label -1")
	}
	if sigma := net.Layer("rpn_loss_bbox").SmoothL1LossParam.GetSigma(); sigma != 3 {
		t.Errorf("rpn_loss_bbox sigma = %v", sigma)
	}
	if net.Layer("loss_bbox").SmoothL1LossParam != nil {
		t.Errorf("loss_bbox uses the default sigma")
	}

	roiData := net.Layer("roi-data")
	if strings.Join(roiData.Bottom, ",") != "rpn_rois,gt_boxes" || len(roiData.Top) != 5 {
		t.Errorf("unexpected roi-data %v", roiData)
	}
	crop := net.Layer("ins_crop")
	if strings.Join(crop.Bottom, ",") != "rois,ins" {
		t.Errorf("ins_crop bottoms = %v", crop.Bottom)
	}
	if crop.PythonParam.ParamStr != nil {
		t.Errorf("ins_crop takes no param_str")
	}
	if net.Layer("loss_mask").Bottom[1] != "ins_crop" {
		t.Errorf("loss_mask must be fed by ins_crop")
	}

	bn := net.Layer("bn2a_branch2a")
	if bn.BatchNormParam.UseGlobalStats == nil || bn.BatchNormParam.GetUseGlobalStats() {
		t.Errorf("train BatchNorm must set use_global_stats: false")
	}
	if align := net.Layer("ROIAlign").RoiAlignParam; align.GetSpatialScale() != 0.0625 {
		t.Errorf("spatial_scale = %v", align.GetSpatialScale())
	}
}

func TestFasterRCNN(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pooling = PoolingPool
	cfg.Classes = 21
	net := build(t, cfg, false)
	if net.Layer("ROIPooling") == nil || net.Layer("ROIAlign") != nil {
		t.Errorf("expected ROIPooling layer")
	}
	if net.Layer("mask_conv1") != nil || net.Layer("ins_crop") != nil {
		t.Errorf("faster r-cnn must not contain the mask head")
	}
	if len(net.Layer("input-data").Top) != 3 {
		t.Errorf("faster r-cnn input-data must have three tops")
	}
	if n := net.Layer("bbox_pred").InnerProductParam.GetNumOutput(); n != 84 {
		t.Errorf("bbox_pred num_output = %d; want 84", n)
	}

	deploy := build(t, func() Config {
		c := cfg
		c.Deploy = true
		return c
	}(), false)
	if deploy.Layer("cls_prob") == nil || deploy.Layer("loss_cls") != nil {
		t.Errorf("deploy faster r-cnn must end with cls_prob")
	}
	if deploy.Layer("data").GetType() != "DummyData" {
		t.Errorf("deploy data layer type = %s", deploy.Layer("data").GetType())
	}
}

func TestDepths(t *testing.T) {
	for _, depth := range Depths() {
		cfg := deployConfig()
		cfg.Depth = depth
		net := build(t, cfg, true)
		shapes, err := net.InferShapes()
		if err != nil {
			t.Errorf("depth %d: %v", depth, err)
			continue
		}
		if s := shapes["cls_prob"]; s.String() != "[? 2]" {
			t.Errorf("depth %d: cls_prob shape %v", depth, s)
		}
	}

	check := func(net *caffe.Net, depth int, present []string, absent []string) {
		for _, name := range present {
			if net.Layer(name) == nil {
				t.Errorf("ResNet-%d is missing %s", depth, name)
			}
		}
		for _, name := range absent {
			if net.Layer(name) != nil {
				t.Errorf("ResNet-%d should not contain %s", depth, name)
			}
		}
	}

	cfg := deployConfig()
	cfg.Depth = 101
	check(build(t, cfg, false), 101,
		[]string{"res2c", "res3a", "res3b3", "res4b1", "res4b22", "res5c", "bn4b22_branch2c", "scale3b3_branch2a"},
		[]string{"res3b", "res3d", "res4b", "res4w", "res4b23", "res5b1"},
	)

	cfg = deployConfig()
	cfg.Depth = 152
	check(build(t, cfg, false), 152,
		[]string{"res2c", "res3b7", "res4b35", "res5c"},
		[]string{"res3b8", "res4b36", "res3h"},
	)

	cfg = deployConfig()
	cfg.Depth = 50
	check(build(t, cfg, false), 50,
		[]string{"res3d", "res4f", "res5c"},
		[]string{"res3b1", "res4b1"},
	)

	cfg = deployConfig()
	cfg.Depth = 18
	net := build(t, cfg, false)
	// res2a keeps 64 channels, so it needs no projection
	if net.Layer("res2a_branch1") != nil || net.Layer("res3a_branch1") == nil {
		t.Errorf("unexpected projection shortcuts in ResNet-18")
	}
	if net.Layer("res2a_branch2c") != nil {
		t.Errorf("basic blocks have two convolutions")
	}
}

func frozen(net *caffe.Net, name string) bool {
	layer := net.Layer(name)
	if len(layer.Param) == 0 {
		return false
	}
	for _, p := range layer.Param {
		if p.GetLrMult() != 0 || p.GetDecayMult() != 0 {
			return false
		}
	}
	return true
}

func TestFreezeStages(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FreezeStages = 2
	net := build(t, cfg, true)

	for _, name := range []string{"conv1", "bn_conv1", "scale_conv1", "res2a_branch1", "res2c_branch2c", "bn2b_branch2b"} {
		if !frozen(net, name) {
			t.Errorf("%s should be frozen", name)
		}
	}
	for _, name := range []string{"res3a_branch2a", "res5a_branch1", "mask_conv1"} {
		if frozen(net, name) {
			t.Errorf("%s should be learnable", name)
		}
	}
	if !net.Layer("bn2a_branch2a").BatchNormParam.GetUseGlobalStats() {
		t.Errorf("frozen BatchNorm must use global stats")
	}
	if len(net.Layer("conv1").Param) != 2 {
		t.Errorf("conv1 has a bias, expected two param entries")
	}
	if net.Layer("rpn_conv/3x3").Param[1].GetLrMult() != 2 {
		t.Errorf("rpn bias lr_mult must stay 2")
	}

	summary := net.Summary()
	if summary.FrozenBlobs == 0 || summary.LearnableBlobs == 0 {
		t.Errorf("unexpected blob counts %+v", summary)
	}
}

func TestFreezeFirstStage(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FreezeStages = 1
	net := build(t, cfg, true)

	for _, name := range []string{"conv1", "bn_conv1", "scale_conv1"} {
		if !frozen(net, name) {
			t.Errorf("%s should be frozen", name)
		}
	}
	for _, name := range []string{"res2a_branch2a", "res2a_branch1", "bn2a_branch2a", "scale2c_branch2c"} {
		if frozen(net, name) {
			t.Errorf("%s should be learnable", name)
		}
	}
	if !net.Layer("bn_conv1").BatchNormParam.GetUseGlobalStats() {
		t.Errorf("bn_conv1 is frozen and must use global stats")
	}
	if net.Layer("bn2a_branch2a").BatchNormParam.GetUseGlobalStats() {
		t.Errorf("bn2a_branch2a is learned and must not use global stats")
	}
	// conv1 weights and bias, BatchNorm's three blobs and Scale's two
	if summary := net.Summary(); summary.FrozenBlobs != 7 {
		t.Errorf("frozen blobs = %d; want 7", summary.FrozenBlobs)
	}
}

func TestPrototxtOutput(t *testing.T) {
	net := build(t, deployConfig(), true)
	text := net.String()
	for _, line := range []string{
		`name: "conv1"`,
		`num_output: 64`,
		`kernel_size: 7`,
		`type: "msra"`,
		`name: "res2a_relu"`,
		"operation: SUM",
		"pool: MAX",
		"pool: AVE",
		`module: "rpn.proposal_layer"`,
		`param_str: "\"feat_stride\": 16"`,
		"pooled_h: 14",
		"spatial_scale: 0.0625",
	} {
		if !strings.Contains(text, line) {
			t.Errorf("prototxt does not contain %s", line)
		}
	}

	conv1 := net.Layer("conv1")
	if p := conv1.ConvolutionParam; p.GetNumOutput() != 64 || !p.GetBiasTerm() || p.Pad[0] != 3 || p.KernelSize[0] != 7 || p.Stride[0] != 2 {
		t.Errorf("unexpected conv1 parameters %v", p)
	}
	if pool := net.Layer("pool1").PoolingParam; pool.GetPool() != caffepb.PoolingParameter_MAX || pool.GetKernelSize() != 3 || pool.GetStride() != 2 {
		t.Errorf("unexpected pool1 parameters %v", pool)
	}
	relu := net.Layer("res2a_relu")
	if !relu.IsInPlace() || relu.Bottom[0] != "res2a" {
		t.Errorf("res2a_relu must run in place on res2a")
	}

	parsed, err := caffe.ParseString(text)
	if err != nil {
		t.Fatal(err)
	}
	if parsed.Hash() != net.Hash() {
		t.Errorf("parsed net hashes differently from the generated one")
	}
}
