package caffe

import (
	"io"

	"github.com/skyhookml/caffenet/caffe/caffepb"

	"github.com/golang/protobuf/proto"
)

// Returns the NetParameter message of the net.
// Layers are shared with the net, not copied.
func (net *Net) Proto() *caffepb.NetParameter {
	np := &caffepb.NetParameter{}
	if net.Name != "" {
		np.Name = proto.String(net.Name)
	}
	for _, layer := range net.Layers {
		np.Layer = append(np.Layer, layer.LayerParameter)
	}
	return np
}

// Returns the prototxt text of the net.
func (net *Net) String() string {
	return proto.MarshalTextString(net.Proto())
}

// Writes the prototxt text of the net to w.
func Encode(w io.Writer, net *Net) error {
	return proto.MarshalText(w, net.Proto())
}
