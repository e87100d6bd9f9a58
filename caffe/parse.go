package caffe

import (
	"fmt"
	"io"
	"io/ioutil"
	"strings"

	"github.com/skyhookml/caffenet/caffe/caffepb"

	"github.com/golang/protobuf/proto"
)

// Reads a prototxt network definition.
// The net is returned as written, call Validate to check its wiring.
// Fields outside the mirrored subset of caffe.proto are rejected.
func Parse(r io.Reader) (*Net, error) {
	bytes, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	np := &caffepb.NetParameter{}
	if err := proto.UnmarshalText(string(bytes), np); err != nil {
		return nil, fmt.Errorf("parse prototxt: %v", err)
	}
	return FromProto(np), nil
}

func ParseString(text string) (*Net, error) {
	return Parse(strings.NewReader(text))
}

// Wraps a NetParameter without checking its wiring.
func FromProto(np *caffepb.NetParameter) *Net {
	net := NewNet(np.GetName())
	for _, lp := range np.Layer {
		net.add(&Layer{LayerParameter: lp}, false)
	}
	return net
}
