package resnet

import (
	"fmt"

	"github.com/skyhookml/caffenet/caffe"
	"github.com/skyhookml/caffenet/caffe/caffepb"

	"github.com/golang/protobuf/proto"
)

// Python plugin layers shipped with the Faster R-CNN training code.
const (
	AnchorTargetModule = "rpn.anchor_target_layer"
	AnchorTargetLayer = "AnchorTargetLayer"
	ProposalModule = "rpn.proposal_layer"
	ProposalLayer = "ProposalLayer"
	ProposalTargetModule = "rpn.proposal_target_layer"
	ProposalTargetLayer = "ProposalTargetLayer"
	RoIDataModule = "roi_data_layer.layer"
	RoIDataLayer = "RoIDataLayer"
	CropSegModule = "crop_seg.layer"
	CropSegLayer = "CropSegLayer"
)

func pythonLayer(name string, module string, layer string, paramStr string, bottoms []caffe.Blob, tops ...string) *caffe.Layer {
	params := &caffepb.PythonParameter{
		Module: proto.String(module),
		Layer: proto.String(layer),
	}
	if paramStr != "" {
		params.ParamStr = proto.String(paramStr)
	}
	return caffe.NewLayer(name, "Python", bottoms...).
		WithTops(tops...).
		With(func(lp *caffepb.LayerParameter) {
			lp.PythonParam = params
		})
}

func (r *ResNet) featStrideParam() string {
	return fmt.Sprintf(`"feat_stride": %d`, r.Config.FeatStride)
}

func (r *ResNet) numClassesParam() string {
	return fmt.Sprintf(`"num_classes": %d`, r.Config.Classes)
}

// Convolution with a gaussian weight filler and a constant-zero bias, learning
// the bias at twice the weight rate. Used by the RPN.
func (r *ResNet) headConv(name string, bottom caffe.Blob, ks int, nout int, pad int) caffe.Blob {
	return r.Net.Add1(caffe.NewLayer(name, "Convolution", bottom).
		WithParams(caffe.LrParam(1), caffe.LrParam(2)).
		With(func(lp *caffepb.LayerParameter) {
			lp.ConvolutionParam = &caffepb.ConvolutionParameter{
				NumOutput: proto.Uint32(uint32(nout)),
				Pad: []uint32{uint32(pad)},
				KernelSize: []uint32{uint32(ks)},
				Stride: []uint32{1},
				WeightFiller: caffe.GaussianFiller(0.01),
				BiasFiller: caffe.ConstantFiller(0),
			}
		}))
}

func (r *ResNet) innerProduct(name string, bottom caffe.Blob, nout int) caffe.Blob {
	return r.Net.Add1(caffe.NewLayer(name, "InnerProduct", bottom).
		WithParams(caffe.LrParam(1), caffe.LrParam(2)).
		With(func(lp *caffepb.LayerParameter) {
			lp.InnerProductParam = &caffepb.InnerProductParameter{
				NumOutput: proto.Uint32(uint32(nout)),
				WeightFiller: caffe.GaussianFiller(0.001),
				BiasFiller: caffe.ConstantFiller(0),
			}
		}))
}

func (r *ResNet) reshape(name string, bottom caffe.Blob, dims ...int) caffe.Blob {
	return r.Net.Add1(caffe.NewLayer(name, "Reshape", bottom).
		With(func(lp *caffepb.LayerParameter) {
			lp.ReshapeParam = &caffepb.ReshapeParameter{Shape: caffe.NewBlobShape(dims...)}
		}))
}

func (r *ResNet) softmax(name string, bottom caffe.Blob) caffe.Blob {
	return r.Net.Add1(caffe.NewLayer(name, "Softmax", bottom))
}

// SoftmaxWithLoss that does not back-propagate into the labels.
func (r *ResNet) softmaxLoss(name string, top string, scores caffe.Blob, labels caffe.Blob, lossParam *caffepb.LossParameter) caffe.Blob {
	layer := caffe.NewLayer(name, "SoftmaxWithLoss", scores, labels).
		WithTops(top).
		WithLossWeight(1).
		WithPropagateDown(true, false)
	layer.LossParam = lossParam
	return r.Net.Add1(layer)
}

func (r *ResNet) smoothL1Loss(name string, top string, sigma float32, bottoms ...caffe.Blob) caffe.Blob {
	layer := caffe.NewLayer(name, "SmoothL1Loss", bottoms...).
		WithTops(top).
		WithLossWeight(1)
	if sigma > 0 {
		layer.SmoothL1LossParam = &caffepb.SmoothL1LossParameter{Sigma: proto.Float32(sigma)}
	}
	return r.Net.Add1(layer)
}

type RPNOutputs struct {
	ClsScoreReshape caffe.Blob
	BboxPred caffe.Blob
	// only set for training nets
	ClsLoss caffe.Blob
	BboxLoss caffe.Blob
}

// Adds the region proposal network on top of the shared features.
// Training nets also get the anchor target layer and the RPN losses.
func (r *ResNet) RPN(bottom caffe.Blob, gtBoxes caffe.Blob, imInfo caffe.Blob, data caffe.Blob) RPNOutputs {
	anchors := r.Config.Anchors
	conv := r.headConv("rpn_conv/3x3", bottom, 3, 512, 1)
	relu := r.relu("rpn_relu/3x3", conv)
	clsScore := r.headConv("rpn_cls_score", relu, 1, 2*anchors, 0)
	bboxPred := r.headConv("rpn_bbox_pred", relu, 1, 4*anchors, 0)
	outputs := RPNOutputs{
		ClsScoreReshape: r.reshape("rpn_cls_score_reshape", clsScore, 0, 2, -1, 0),
		BboxPred: bboxPred,
	}
	if r.Config.Deploy {
		return outputs
	}

	targets := r.Net.Add(pythonLayer(
		"rpn-data", AnchorTargetModule, AnchorTargetLayer, r.featStrideParam(),
		[]caffe.Blob{clsScore, gtBoxes, imInfo, data},
		"rpn_labels", "rpn_bbox_targets", "rpn_bbox_inside_weights", "rpn_bbox_outside_weights",
	).WithTopShapes(
		[]int{1, 1, -1, -1},
		[]int{1, 4 * anchors, -1, -1},
		[]int{1, 4 * anchors, -1, -1},
		[]int{1, 4 * anchors, -1, -1},
	))
	outputs.ClsLoss = r.softmaxLoss(
		"rpn_loss_cls", "rpn_cls_loss", outputs.ClsScoreReshape, targets[0],
		&caffepb.LossParameter{IgnoreLabel: proto.Int32(-1), Normalize: proto.Bool(true)},
	)
	outputs.BboxLoss = r.smoothL1Loss(
		"rpn_loss_bbox", "rpn_loss_bbox", 3.0,
		bboxPred, targets[1], targets[2], targets[3],
	)
	return outputs
}

type ProposalOutputs struct {
	Rois caffe.Blob
	// the rest is only set for training nets
	Labels caffe.Blob
	BboxTargets caffe.Blob
	BboxInsideWeights caffe.Blob
	BboxOutsideWeights caffe.Blob
}

// Turns RPN scores into ROIs. Training nets sample them against the ground
// truth with the proposal target layer.
func (r *ResNet) ROIProposals(rpnClsScoreReshape caffe.Blob, rpnBboxPred caffe.Blob, imInfo caffe.Blob, gtBoxes caffe.Blob) ProposalOutputs {
	prob := r.softmax("rpn_cls_prob", rpnClsScoreReshape)
	probReshape := r.reshape("rpn_cls_prob_reshape", prob, 0, 2*r.Config.Anchors, -1, 0)
	bottoms := []caffe.Blob{probReshape, rpnBboxPred, imInfo}

	if r.Config.Deploy {
		rois := r.Net.Add1(pythonLayer(
			"proposal", ProposalModule, ProposalLayer, r.featStrideParam(), bottoms, "rois",
		).WithTopShapes([]int{-1, 5}))
		return ProposalOutputs{Rois: rois}
	}

	rpnRois := r.Net.Add1(pythonLayer(
		"proposal", ProposalModule, ProposalLayer, r.featStrideParam(), bottoms, "rpn_rois",
	).WithTopShapes([]int{-1, 5}))
	classes := r.Config.Classes
	tops := r.Net.Add(pythonLayer(
		"roi-data", ProposalTargetModule, ProposalTargetLayer, r.numClassesParam(),
		[]caffe.Blob{rpnRois, gtBoxes},
		"rois", "labels", "bbox_targets", "bbox_inside_weights", "bbox_outside_weights",
	).WithTopShapes(
		[]int{-1, 5},
		[]int{-1},
		[]int{-1, 4 * classes},
		[]int{-1, 4 * classes},
		[]int{-1, 4 * classes},
	))
	return ProposalOutputs{
		Rois: tops[0],
		Labels: tops[1],
		BboxTargets: tops[2],
		BboxInsideWeights: tops[3],
		BboxOutsideWeights: tops[4],
	}
}

// Crops fixed-size features for every ROI, with ROIAlign or ROIPooling.
func (r *ResNet) ROIFeatures(bottom caffe.Blob, rois caffe.Blob) caffe.Blob {
	pooledH := proto.Uint32(uint32(r.Config.PooledSize[1]))
	pooledW := proto.Uint32(uint32(r.Config.PooledSize[0]))
	spatialScale := proto.Float32(1 / float32(r.Config.FeatStride))
	if r.Config.Pooling == PoolingPool {
		return r.Net.Add1(caffe.NewLayer("ROIPooling", "ROIPooling", bottom, rois).
			With(func(lp *caffepb.LayerParameter) {
				lp.RoiPoolingParam = &caffepb.ROIPoolingParameter{PooledH: pooledH, PooledW: pooledW, SpatialScale: spatialScale}
			}))
	}
	return r.Net.Add1(caffe.NewLayer("ROIAlign", "ROIAlign", bottom, rois).
		With(func(lp *caffepb.LayerParameter) {
			lp.RoiAlignParam = &caffepb.ROIAlignParameter{PooledH: pooledH, PooledW: pooledW, SpatialScale: spatialScale}
		}))
}

// Adds the per-ROI classification and box regression layers.
func (r *ResNet) FinalClsBbox(bottom caffe.Blob) (clsScore caffe.Blob, bboxPred caffe.Blob) {
	clsScore = r.innerProduct("cls_score", bottom, r.Config.Classes)
	bboxPred = r.innerProduct("bbox_pred", bottom, 4*r.Config.Classes)
	return clsScore, bboxPred
}

type DataOutputs struct {
	Data caffe.Blob
	ImInfo caffe.Blob
	// training only
	GtBoxes caffe.Blob
	// instance masks, Mask R-CNN training only
	Ins caffe.Blob
}

// Adds the RoIDataLayer feeding training images, image info and ground-truth
// boxes; withIns adds the instance masks as a fourth top.
func (r *ResNet) DataLayerTrain(withIns bool) DataOutputs {
	tops := []string{"data", "im_info", "gt_boxes"}
	shapes := [][]int{{1, 3, -1, -1}, {1, 3}, {-1, 5}}
	if withIns {
		tops = append(tops, "ins")
		shapes = append(shapes, nil)
	}
	blobs := r.Net.Add(pythonLayer(
		"input-data", RoIDataModule, RoIDataLayer, r.numClassesParam(), nil, tops...,
	).WithTopShapes(shapes...))
	outputs := DataOutputs{
		Data: blobs[0],
		ImInfo: blobs[1],
		GtBoxes: blobs[2],
	}
	if withIns {
		outputs.Ins = blobs[3]
	}
	return outputs
}

// Adds placeholder inputs for the deploy net.
func (r *ResNet) DataLayerTest() DataOutputs {
	dummy := func(name string, dims ...int) caffe.Blob {
		return r.Net.Add1(caffe.NewLayer(name, "DummyData").
			With(func(lp *caffepb.LayerParameter) {
				lp.DummyDataParam = &caffepb.DummyDataParameter{
					Shape: []*caffepb.BlobShape{caffe.NewBlobShape(dims...)},
				}
			}))
	}
	s := r.Config.InputShape
	return DataOutputs{
		Data: dummy("data", s[0], s[1], s[2], s[3]),
		ImInfo: dummy("im_info", 1, 3),
	}
}
