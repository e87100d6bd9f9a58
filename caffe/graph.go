package caffe

// Content hashing of layer graphs.

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/skyhookml/caffenet/caffe/caffepb"

	"github.com/golang/protobuf/proto"
)

// The local hash of a layer covers its name, type, tops and parameters,
// but not its bottoms: those enter through the parent hashes.
func (layer *Layer) LocalHash() []byte {
	lp := proto.Clone(layer.LayerParameter).(*caffepb.LayerParameter)
	lp.Bottom = nil
	h := sha256.New()
	h.Write([]byte(proto.CompactTextString(lp)))
	return h.Sum(nil)
}

// Returns the hash of every layer in the net.
// The hash of a layer merges the hashes of the layers that produced its
// bottoms with its local hash, so two nets share a layer hash only if the
// whole sub-graph feeding that layer is identical.
func (net *Net) LayerHashes() [][]byte {
	hashes := make([][]byte, len(net.Layers))
	// blob -> hash of the layer that last wrote it
	blobHashes := make(map[string][]byte)
	for i, layer := range net.Layers {
		h := sha256.New()
		for j, bottom := range layer.Bottom {
			h.Write([]byte(fmt.Sprintf("bottom%d=%s:%x\n", j, bottom, blobHashes[bottom])))
		}
		h.Write(layer.LocalHash())
		hashes[i] = h.Sum(nil)
		for _, top := range layer.Top {
			blobHashes[top] = hashes[i]
		}
	}
	return hashes
}

// Returns a hex hash identifying the whole net.
func (net *Net) Hash() string {
	h := sha256.New()
	h.Write([]byte(fmt.Sprintf("name=%s\n", net.Name)))
	for _, hash := range net.LayerHashes() {
		h.Write(hash)
	}
	return hex.EncodeToString(h.Sum(nil))
}
