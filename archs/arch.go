package archs

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"sort"

	"github.com/skyhookml/caffenet/caffe"
	"github.com/skyhookml/caffenet/resnet"
)

// A detection architecture that can be generated as a pair of prototxt files.
type Impl struct {
	ID string
	Name string
	Description string
	// Builds the net for cfg; cfg.Deploy selects the train or deploy variant.
	Build func(cfg resnet.Config) (*caffe.Net, error)
}

var impls = make(map[string]Impl)

func AddImpl(impl Impl) {
	if _, ok := impls[impl.ID]; ok {
		panic(fmt.Errorf("duplicate arch %s", impl.ID))
	}
	impls[impl.ID] = impl
}

func GetImpl(id string) (Impl, error) {
	impl, ok := impls[id]
	if !ok {
		return Impl{}, fmt.Errorf("unknown arch %s", id)
	}
	return impl, nil
}

// Returns the registered architectures sorted by ID.
func List() []Impl {
	var list []Impl
	for _, impl := range impls {
		list = append(list, impl)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})
	return list
}

// The train and deploy variants of one architecture.
type Pair struct {
	Arch string
	// normalized configuration the nets were built from (Deploy unset)
	Config resnet.Config
	Train *caffe.Net
	Deploy *caffe.Net
}

// Hash of both nets, used to recognize identical generations.
func (p Pair) Hash() string {
	h := sha256.New()
	h.Write([]byte(p.Arch + "\n"))
	h.Write([]byte(p.Train.Hash() + "\n"))
	h.Write([]byte(p.Deploy.Hash() + "\n"))
	return hex.EncodeToString(h.Sum(nil))
}

// Builds both variants of the architecture.
func Generate(id string, cfg resnet.Config) (Pair, error) {
	impl, err := GetImpl(id)
	if err != nil {
		return Pair{}, err
	}
	cfg, err = cfg.Normalize()
	if err != nil {
		return Pair{}, err
	}
	cfg.Deploy = false
	pair := Pair{Arch: id, Config: cfg}

	trainCfg := cfg
	pair.Train, err = impl.Build(trainCfg)
	if err != nil {
		return Pair{}, fmt.Errorf("error building %s train net: %v", id, err)
	}

	deployCfg := cfg
	deployCfg.Deploy = true
	pair.Deploy, err = impl.Build(deployCfg)
	if err != nil {
		return Pair{}, fmt.Errorf("error building %s deploy net: %v", id, err)
	}

	log.Printf("[archs] generated %s: %d train layers, %d deploy layers", id, len(pair.Train.Layers), len(pair.Deploy.Layers))
	return pair, nil
}

// Returns a descriptive net name, e.g. ResNet-50-mask_rcnn.
func netName(id string, cfg resnet.Config) string {
	if cfg.Depth != 0 {
		return fmt.Sprintf("ResNet-%d-%s", cfg.Depth, id)
	}
	// layers with weights: conv1, fc and the convolutions of each block
	convsPerBlock := 3
	if cfg.Module == resnet.ModuleBasic {
		convsPerBlock = 2
	}
	depth := 2
	for _, n := range cfg.Stages {
		depth += convsPerBlock * n
	}
	return fmt.Sprintf("ResNet-%d-%s", depth, id)
}
