package caffe

import (
	"fmt"
	"sort"
)

// An ordered layer graph, the Go counterpart of caffe.NetSpec.
// Layers are kept in insertion order, which is also a topological order
// since Add requires every bottom to exist already.
type Net struct {
	Name string
	Layers []*Layer

	layerIndex map[string]int
	// blob name -> index of the layer that last wrote it
	producers map[string]int
}

func NewNet(name string) *Net {
	return &Net{
		Name: name,
		layerIndex: make(map[string]int),
		producers: make(map[string]int),
	}
}

// Appends a layer and returns its tops.
// Panics if the layer name is taken or a bottom has not been produced yet:
// both are bugs in the code building the net.
func (net *Net) Add(layer *Layer) []Blob {
	if err := net.add(layer, true); err != nil {
		panic(err)
	}
	tops := make([]Blob, len(layer.Top))
	for i, top := range layer.Top {
		tops[i] = Blob(top)
	}
	return tops
}

// Like Add, for layers with exactly one top.
func (net *Net) Add1(layer *Layer) Blob {
	tops := net.Add(layer)
	if len(tops) != 1 {
		panic(fmt.Errorf("layer %s has %d tops, expected one", layer.GetName(), len(tops)))
	}
	return tops[0]
}

func (net *Net) add(layer *Layer, check bool) error {
	if net.layerIndex == nil {
		net.layerIndex = make(map[string]int)
		net.producers = make(map[string]int)
	}
	name := layer.GetName()
	if check {
		if _, ok := net.layerIndex[name]; ok {
			return fmt.Errorf("duplicate layer name %s", name)
		}
		for _, bottom := range layer.Bottom {
			if _, ok := net.producers[bottom]; !ok {
				return fmt.Errorf("layer %s: bottom %s is not produced by any earlier layer", name, bottom)
			}
		}
	}
	idx := len(net.Layers)
	net.Layers = append(net.Layers, layer)
	if _, ok := net.layerIndex[name]; !ok {
		net.layerIndex[name] = idx
	}
	for _, top := range layer.Top {
		net.producers[top] = idx
	}
	return nil
}

// Returns the layer with the given name, or nil.
func (net *Net) Layer(name string) *Layer {
	idx, ok := net.layerIndex[name]
	if !ok {
		return nil
	}
	return net.Layers[idx]
}

// Returns the layer that last wrote the blob, or nil.
func (net *Net) Producer(blob Blob) *Layer {
	idx, ok := net.producers[string(blob)]
	if !ok {
		return nil
	}
	return net.Layers[idx]
}

func (net *Net) HasBlob(blob Blob) bool {
	_, ok := net.producers[string(blob)]
	return ok
}

// Returns blobs that no layer consumes, in production order.
// These are the outputs of the net (losses, probabilities).
func (net *Net) Outputs() []Blob {
	consumed := make(map[string]bool)
	for _, layer := range net.Layers {
		if layer.IsInPlace() {
			continue
		}
		for _, bottom := range layer.Bottom {
			consumed[bottom] = true
		}
	}
	var outputs []Blob
	seen := make(map[string]bool)
	for _, layer := range net.Layers {
		for _, top := range layer.Top {
			if consumed[top] || seen[top] {
				continue
			}
			seen[top] = true
			outputs = append(outputs, Blob(top))
		}
	}
	return outputs
}

// Checks the structural invariants of the net: unique layer names, every
// layer has a type and at least one top, and every bottom is produced by an
// earlier layer.
func (net *Net) Validate() error {
	names := make(map[string]bool)
	produced := make(map[string]bool)
	for i, layer := range net.Layers {
		name := layer.GetName()
		if name == "" {
			return fmt.Errorf("layer %d has no name", i)
		}
		if names[name] {
			return fmt.Errorf("duplicate layer name %s", name)
		}
		names[name] = true
		if layer.GetType() == "" {
			return fmt.Errorf("layer %s has no type", name)
		}
		if len(layer.Top) == 0 {
			return fmt.Errorf("layer %s has no tops", name)
		}
		for _, bottom := range layer.Bottom {
			if !produced[bottom] {
				return fmt.Errorf("layer %s: bottom %s is not produced by any earlier layer", name, bottom)
			}
		}
		if len(layer.PropagateDown) > 0 && len(layer.PropagateDown) != len(layer.Bottom) {
			return fmt.Errorf("layer %s: %d propagate_down flags for %d bottoms", name, len(layer.PropagateDown), len(layer.Bottom))
		}
		for _, top := range layer.Top {
			produced[top] = true
		}
	}
	return nil
}

type Summary struct {
	Layers int
	// layer type -> count
	Types map[string]int
	// learnable blobs whose lr_mult is zero / non-zero
	FrozenBlobs int
	LearnableBlobs int
	Losses []string
	Outputs []Blob
}

func (net *Net) Summary() Summary {
	summary := Summary{
		Layers: len(net.Layers),
		Types: make(map[string]int),
		Outputs: net.Outputs(),
	}
	for _, layer := range net.Layers {
		summary.Types[layer.GetType()]++
		n := LearnableBlobs(layer)
		for i := 0; i < n; i++ {
			if i < len(layer.Param) && layer.Param[i].GetLrMult() == 0 {
				summary.FrozenBlobs++
			} else {
				summary.LearnableBlobs++
			}
		}
		if layer.IsLoss() {
			summary.Losses = append(summary.Losses, layer.GetName())
		}
	}
	return summary
}

// Returns the layer types in the summary sorted by name.
func (s Summary) TypeNames() []string {
	var names []string
	for name := range s.Types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
