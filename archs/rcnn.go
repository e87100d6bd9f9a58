package archs

import (
	"github.com/skyhookml/caffenet/caffe"
	"github.com/skyhookml/caffenet/resnet"
)

func init() {
	AddImpl(Impl{
		ID: "faster_rcnn",
		Name: "Faster R-CNN",
		Description: "ResNet backbone with RPN, ROI features and box classification/regression heads",
		Build: func(cfg resnet.Config) (*caffe.Net, error) {
			r, err := resnet.New(cfg)
			if err != nil {
				return nil, err
			}
			net, err := r.FasterRCNN()
			if err != nil {
				return nil, err
			}
			net.Name = netName("faster_rcnn", r.Config)
			return net, nil
		},
	})

	AddImpl(Impl{
		ID: "mask_rcnn",
		Name: "Mask R-CNN",
		Description: "Faster R-CNN with an additional per-ROI mask head",
		Build: func(cfg resnet.Config) (*caffe.Net, error) {
			r, err := resnet.New(cfg)
			if err != nil {
				return nil, err
			}
			net, err := r.MaskRCNN()
			if err != nil {
				return nil, err
			}
			net.Name = netName("mask_rcnn", r.Config)
			return net, nil
		},
	})
}
