package main

import (
	"github.com/skyhookml/caffenet/archs"
	"github.com/skyhookml/caffenet/caffe"
	"github.com/skyhookml/caffenet/resnet"

	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

func printSummary(label string, net *caffe.Net) {
	summary := net.Summary()
	fmt.Printf("%s: %s, %d layers\n", label, net.Name, summary.Layers)
	for _, t := range summary.TypeNames() {
		fmt.Printf("\t%-16s %d\n", t, summary.Types[t])
	}
	fmt.Printf("\tlearnable blobs: %d (%d frozen)\n", summary.LearnableBlobs+summary.FrozenBlobs, summary.FrozenBlobs)
	if len(summary.Losses) > 0 {
		fmt.Printf("\tlosses: %s\n", strings.Join(summary.Losses, ", "))
	}
	var outputs []string
	for _, blob := range summary.Outputs {
		outputs = append(outputs, string(blob))
	}
	fmt.Printf("\toutputs: %s\n", strings.Join(outputs, ", "))
}

func inspect(fname string) error {
	net, err := caffe.ReadNetFile(fname)
	if err != nil {
		return err
	}
	if err := net.Validate(); err != nil {
		return fmt.Errorf("%s: %v", fname, err)
	}
	printSummary(fname, net)
	shapes, err := net.InferShapes()
	if err != nil {
		return fmt.Errorf("%s: %v", fname, err)
	}
	for _, blob := range net.Outputs() {
		fmt.Printf("\t%s %v\n", blob, shapes[string(blob)])
	}
	return nil
}

func main() {
	arch := flag.String("arch", "mask_rcnn", "architecture to generate (faster_rcnn, mask_rcnn)")
	configFile := flag.String("config", "", "JSON file with the network configuration")
	depth := flag.Int("depth", 0, "ResNet depth preset (18, 34, 50, 101, 152)")
	classes := flag.Int("classes", 0, "number of classes including background")
	pooling := flag.String("pooling", "", "ROI feature layer: align or pool")
	module := flag.String("module", "", "residual block: normal (bottleneck) or basic")
	freeze := flag.Int("freeze", -1, "number of leading stages with zero learning rate")
	image := flag.String("image", "", "set the deploy input size from this image")
	outDir := flag.String("out", ".", "output directory")
	name := flag.String("name", "", "net name (defaults to ResNet-<depth>-<arch>)")
	summary := flag.Bool("summary", false, "print a summary of the generated nets")
	inspectFile := flag.String("inspect", "", "parse and summarize an existing prototxt instead of generating")
	flag.Parse()

	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if *inspectFile != "" {
		if err := inspect(*inspectFile); err != nil {
			log.Fatal(err)
		}
		return
	}

	cfg := resnet.DefaultConfig()
	if *configFile != "" {
		if err := caffe.ReadJSONFile(*configFile, &cfg); err != nil {
			log.Fatalf("[netgen] %v", err)
		}
	}
	if *depth != 0 {
		cfg.Depth = *depth
	}
	if *classes != 0 {
		cfg.Classes = *classes
	}
	if *pooling != "" {
		cfg.Pooling = *pooling
	}
	if *module != "" {
		cfg.Module = *module
	}
	if *freeze >= 0 {
		cfg.FreezeStages = *freeze
	}
	if *image != "" {
		dims, err := caffe.GetImageDimsFromFile(*image)
		if err != nil {
			log.Fatalf("[netgen] error reading %s: %v", *image, err)
		}
		cfg.InputShape[2] = dims[1]
		cfg.InputShape[3] = dims[0]
		log.Printf("[netgen] deploy input %dx%d from %s", dims[0], dims[1], *image)
	}

	pair, err := archs.Generate(*arch, cfg)
	if err != nil {
		log.Fatalf("[netgen] %v", err)
	}
	if *name != "" {
		pair.Train.Name = *name
		pair.Deploy.Name = *name
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatalf("[netgen] %v", err)
	}
	files := []struct {
		fname string
		net *caffe.Net
	}{
		{"train.prototxt", pair.Train},
		{"test.prototxt", pair.Deploy},
	}
	for _, f := range files {
		fname := filepath.Join(*outDir, f.fname)
		if err := caffe.WriteNetFile(fname, f.net); err != nil {
			log.Fatalf("[netgen] error writing %s: %v", fname, err)
		}
		log.Printf("[netgen] wrote %s (%d layers)", fname, len(f.net.Layers))
	}

	if *summary {
		printSummary("train", pair.Train)
		printSummary("test", pair.Deploy)
	}
}
