package app

import (
	"log"
	"time"

	"github.com/skyhookml/caffenet/archs"
	"github.com/skyhookml/caffenet/caffe"
	"github.com/skyhookml/caffenet/resnet"

	gouuid "github.com/google/uuid"
)

// A generated pair of network definitions.
type Net struct {
	ID string
	Name string
	Arch string
	Config resnet.Config
	Hash string
	Created time.Time
}

type DBNet struct{ Net }

const NetQuery = "SELECT id, name, arch, params, hash, created FROM nets"

func netListHelper(rows *Rows) []*DBNet {
	nets := []*DBNet{}
	for rows.Next() {
		var n DBNet
		var params string
		rows.Scan(&n.ID, &n.Name, &n.Arch, &params, &n.Hash, &n.Created)
		caffe.JsonUnmarshal([]byte(params), &n.Config)
		nets = append(nets, &n)
	}
	return nets
}

func ListNets() []*DBNet {
	rows := db.Query(NetQuery + " ORDER BY created DESC, id")
	return netListHelper(rows)
}

func GetNet(id string) *DBNet {
	rows := db.Query(NetQuery+" WHERE id = ?", id)
	nets := netListHelper(rows)
	if len(nets) == 1 {
		return nets[0]
	}
	return nil
}

// Generates the train and deploy definitions for arch and stores them.
// If an identical pair was generated before, the existing record is returned
// and created is false.
func CreateNet(name string, arch string, cfg resnet.Config) (net *DBNet, created bool, err error) {
	pair, err := archs.Generate(arch, cfg)
	if err != nil {
		return nil, false, err
	}
	hash := pair.Hash()
	if name == "" {
		name = pair.Train.Name
	}
	params := string(caffe.JsonMarshal(pair.Config))
	train, deploy := pair.Train.String(), pair.Deploy.String()

	// lookup and insert share one transaction so that concurrent requests
	// for the same configuration store a single net
	var id string
	db.Transaction(func(tx Tx) {
		if tx.QueryRow("SELECT id FROM nets WHERE hash = ? ORDER BY created LIMIT 1", hash).Scan(&id) {
			return
		}
		id = gouuid.New().String()
		created = true
		tx.Exec(
			"INSERT INTO nets (id, name, arch, params, hash, train, deploy, created) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			id, name, arch, params, hash, train, deploy, time.Now().UTC(),
		)
	})
	net = GetNet(id)
	if !created {
		log.Printf("[nets] %s matches existing net %s (%s)", name, net.ID, net.Name)
		return net, false, nil
	}
	log.Printf("[nets] created net %s (%s, %s)", id, name, arch)
	emitNet(net)
	return net, true, nil
}

// Returns the stored prototxt; variant is "train" or "deploy".
func (n *DBNet) Prototxt(variant string) string {
	column := "train"
	if variant == "deploy" {
		column = "deploy"
	}
	var text string
	db.QueryRow("SELECT "+column+" FROM nets WHERE id = ?", n.ID).Scan(&text)
	return text
}

// Parses the stored prototxt of the given variant.
func (n *DBNet) Load(variant string) (*caffe.Net, error) {
	return caffe.ParseString(n.Prototxt(variant))
}

// Deletes the net. Returns false if it was already gone.
func (n *DBNet) Delete() bool {
	if db.Exec("DELETE FROM nets WHERE id = ?", n.ID).RowsAffected() == 0 {
		return false
	}
	log.Printf("[nets] deleted net %s", n.ID)
	return true
}

func (n *DBNet) Rename(name string) {
	db.Transaction(func(tx Tx) {
		tx.Exec("UPDATE nets SET name = ? WHERE id = ?", name, n.ID)
	})
	n.Name = name
}
