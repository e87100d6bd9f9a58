package resnet

import (
	"fmt"

	"github.com/skyhookml/caffenet/caffe"
)

// Shared part of Faster R-CNN and Mask R-CNN: backbone, RPN, proposals,
// ROI features, the last ResNet stage and the box heads.
type detection struct {
	data DataOutputs
	proposals ProposalOutputs
	// output of the last stage, per ROI
	roiOut caffe.Blob
	clsScore caffe.Blob
	bboxPred caffe.Blob
}

func (r *ResNet) detection(withIns bool) detection {
	var det detection
	if r.Config.Deploy {
		det.data = r.DataLayerTest()
	} else {
		det.data = r.DataLayerTrain(withIns)
	}
	features, channels, numFilter := r.Backbone(det.data.Data)

	rpn := r.RPN(features, det.data.GtBoxes, det.data.ImInfo, det.data.Data)
	det.proposals = r.ROIProposals(rpn.ClsScoreReshape, rpn.BboxPred, det.data.ImInfo, det.data.GtBoxes)

	aligned := r.ROIFeatures(features, det.proposals.Rois)
	det.roiOut, _ = r.HeadStage(aligned, channels, numFilter)
	pool5 := r.AvePool(7, 1, "pool5", det.roiOut)
	det.clsScore, det.bboxPred = r.FinalClsBbox(pool5)

	if r.Config.Deploy {
		r.softmax("cls_prob", det.clsScore)
	} else {
		p := det.proposals
		r.softmaxLoss("loss_cls", "loss_cls", det.clsScore, p.Labels, nil)
		r.smoothL1Loss("loss_bbox", "loss_bbox", 0, det.bboxPred, p.BboxTargets, p.BboxInsideWeights, p.BboxOutsideWeights)
	}
	return det
}

// Builds the Faster R-CNN net.
func (r *ResNet) FasterRCNN() (*caffe.Net, error) {
	err := r.build(func() {
		r.detection(false)
	})
	return r.Net, err
}

// Builds the Mask R-CNN net: Faster R-CNN plus a convolutional mask head on
// the per-ROI features of the last stage.
func (r *ResNet) MaskRCNN() (*caffe.Net, error) {
	err := r.build(func() {
		det := r.detection(true)

		var insCrop caffe.Blob
		if !r.Config.Deploy {
			insCrop = r.Net.Add1(pythonLayer(
				"ins_crop", CropSegModule, CropSegLayer, "",
				[]caffe.Blob{det.proposals.Rois, det.data.Ins}, "ins_crop",
			))
		}

		maskConv1 := r.ConvFactory("mask_conv1", det.roiOut, 3, r.Config.MaskChannels, 1, 1, true)
		maskOut := r.ConvFactory("mask_out", maskConv1, 1, r.Config.MaskChannels, 1, 0, true)
		if r.Config.Deploy {
			r.softmax("mask_prob", maskOut)
		} else {
			r.softmaxLoss("loss_mask", "loss_mask", maskOut, insCrop, nil)
		}
	})
	return r.Net, err
}

// Runs f on an empty net and checks the result.
// Layer wiring mistakes panic inside caffe.Net.Add; they are reported as
// errors here so that callers serving requests do not crash.
func (r *ResNet) build(f func()) (err error) {
	if len(r.Net.Layers) > 0 {
		return fmt.Errorf("net already built")
	}
	defer func() {
		if x := recover(); x != nil {
			err = fmt.Errorf("error building net: %v", x)
		}
	}()
	f()
	if err := r.Net.Validate(); err != nil {
		return err
	}
	if _, err := r.Net.InferShapes(); err != nil {
		return err
	}
	return nil
}
