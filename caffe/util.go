package caffe

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/rubenfonseca/fastimage"
)

func JsonMarshal(x interface{}) []byte {
	bytes, err := json.Marshal(x)
	if err != nil {
		panic(err)
	}
	return bytes
}

func JsonUnmarshal(bytes []byte, x interface{}) {
	err := json.Unmarshal(bytes, x)
	if err != nil {
		panic(err)
	}
}

func ReadJSONFile(fname string, res interface{}) error {
	bytes, err := ioutil.ReadFile(fname)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(bytes, res); err != nil {
		return fmt.Errorf("error decoding %s: %v", fname, err)
	}
	return nil
}

// Writes the prototxt of the net to fname.
// The text is written to a temporary file first and renamed into place so
// readers never see a partial definition.
func WriteNetFile(fname string, net *Net) error {
	tmp, err := ioutil.TempFile(filepath.Dir(fname), "."+filepath.Base(fname)+".tmp")
	if err != nil {
		return err
	}
	if err := Encode(tmp, net); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), fname)
}

func ReadNetFile(fname string) (*Net, error) {
	file, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	net, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %v", fname, err)
	}
	return net, nil
}

// Returns [width, height] of an image by reading only its header.
func GetImageDimsFromFile(fname string) ([2]int, error) {
	var dims [2]int
	file, err := os.Open(fname)
	if err != nil {
		return dims, err
	}
	defer file.Close()
	_, size, err := fastimage.DetectImageTypeFromReader(file)
	if err != nil {
		return dims, err
	} else if size == nil {
		return dims, fmt.Errorf("unknown image format")
	}
	dims = [2]int{int(size.Width), int(size.Height)}
	return dims, nil
}
