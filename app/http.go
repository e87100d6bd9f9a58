package app

import (
	"net/http"

	"github.com/skyhookml/caffenet/archs"
	"github.com/skyhookml/caffenet/resnet"

	"github.com/gorilla/mux"
)

var Router = mux.NewRouter()

type ArchInfo struct {
	ID string
	Name string
	Description string
}

type CreateNetRequest struct {
	Name string `json:"name"`
	Arch string `json:"arch"`
	// applied on top of Config.Defaults
	Config resnet.Config `json:"config"`
}

type CreateNetResponse struct {
	Net *DBNet
	// false if an identical net already existed
	Created bool
}

func getNetOr404(w http.ResponseWriter, r *http.Request) *DBNet {
	net := GetNet(mux.Vars(r)["net_id"])
	if net == nil {
		http.Error(w, "no such net", 404)
	}
	return net
}

func init() {
	Router.HandleFunc("/archs", func(w http.ResponseWriter, r *http.Request) {
		infos := []ArchInfo{}
		for _, impl := range archs.List() {
			infos = append(infos, ArchInfo{impl.ID, impl.Name, impl.Description})
		}
		JsonResponse(w, infos)
	}).Methods("GET")

	Router.HandleFunc("/config/default", func(w http.ResponseWriter, r *http.Request) {
		JsonResponse(w, Config.Defaults)
	}).Methods("GET")

	Router.HandleFunc("/nets", func(w http.ResponseWriter, r *http.Request) {
		JsonResponse(w, ListNets())
	}).Methods("GET")

	Router.HandleFunc("/nets", func(w http.ResponseWriter, r *http.Request) {
		request := CreateNetRequest{
			Arch: Config.DefaultArch,
			Config: Config.Defaults,
		}
		// the decoder would otherwise write into the defaults' backing array
		request.Config.Stages = append([]int(nil), Config.Defaults.Stages...)
		if err := ParseJsonRequest(w, r, &request); err != nil {
			return
		}
		net, created, err := CreateNet(request.Name, request.Arch, request.Config)
		if err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		JsonResponse(w, CreateNetResponse{net, created})
	}).Methods("POST")

	Router.HandleFunc("/nets/{net_id}", func(w http.ResponseWriter, r *http.Request) {
		net := getNetOr404(w, r)
		if net == nil {
			return
		}
		JsonResponse(w, net)
	}).Methods("GET")

	Router.HandleFunc("/nets/{net_id}", func(w http.ResponseWriter, r *http.Request) {
		net := getNetOr404(w, r)
		if net == nil {
			return
		}
		r.ParseForm()
		name := r.PostForm.Get("name")
		if name == "" {
			http.Error(w, "name is required", 400)
			return
		}
		net.Rename(name)
		JsonResponse(w, net)
	}).Methods("POST")

	Router.HandleFunc("/nets/{net_id}", func(w http.ResponseWriter, r *http.Request) {
		net := getNetOr404(w, r)
		if net == nil {
			return
		}
		if !net.Delete() {
			http.Error(w, "no such net", 404)
		}
	}).Methods("DELETE")

	Router.HandleFunc("/nets/{net_id}/{variant:train|deploy}.prototxt", func(w http.ResponseWriter, r *http.Request) {
		net := getNetOr404(w, r)
		if net == nil {
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(net.Prototxt(mux.Vars(r)["variant"])))
	}).Methods("GET")

	Router.HandleFunc("/nets/{net_id}/summary", func(w http.ResponseWriter, r *http.Request) {
		net := getNetOr404(w, r)
		if net == nil {
			return
		}
		summaries := make(map[string]interface{})
		for _, variant := range []string{"train", "deploy"} {
			parsed, err := net.Load(variant)
			if err != nil {
				http.Error(w, err.Error(), 500)
				return
			}
			summaries[variant] = parsed.Summary()
		}
		JsonResponse(w, summaries)
	}).Methods("GET")
}
