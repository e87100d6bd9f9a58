package main

import (
	"github.com/skyhookml/caffenet/app"
	"github.com/skyhookml/caffenet/caffe"

	"github.com/googollee/go-socket.io"

	"flag"
	"log"
	"net/http"
)

func main() {
	addr := flag.String("addr", ":8080", "bind address")
	dbPath := flag.String("db", "./caffenet.sqlite3", "sqlite database path")
	arch := flag.String("arch", "mask_rcnn", "default architecture for requests that do not name one")
	configFile := flag.String("config", "", "JSON file with the default network configuration")
	flag.Parse()

	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	app.Config.DefaultArch = *arch
	if *configFile != "" {
		if err := caffe.ReadJSONFile(*configFile, &app.Config.Defaults); err != nil {
			log.Fatalf("[server] %v", err)
		}
	}

	if err := app.InitDB(*dbPath); err != nil {
		log.Fatalf("[server] error opening database: %v", err)
	}

	server, err := socketio.NewServer(nil)
	if err != nil {
		log.Fatalf("[server] error creating socket.io server: %v", err)
	}
	for _, f := range app.SetupFuncs {
		f(server)
	}

	go server.Serve()
	defer server.Close()
	http.Handle("/socket.io/", server)
	http.Handle("/", app.Router)
	log.Printf("starting on %s", *addr)
	if err := http.ListenAndServe(*addr, nil); err != nil {
		panic(err)
	}
}
