package app

import (
	"log"

	"github.com/googollee/go-socket.io"
	sync "github.com/sasha-s/go-deadlock"
)

var SetupFuncs []func(*socketio.Server)

// The part of socketio.Conn that net events need.
type emitter interface {
	Emit(msg string, v ...interface{})
}

// Socket.io connections that receive "net" events.
var clients = struct {
	mu sync.Mutex
	conns map[string]emitter
}{conns: make(map[string]emitter)}

func addClient(id string, conn emitter) {
	clients.mu.Lock()
	clients.conns[id] = conn
	clients.mu.Unlock()
}

func removeClient(id string) {
	clients.mu.Lock()
	delete(clients.conns, id)
	clients.mu.Unlock()
}

func init() {
	SetupFuncs = append(SetupFuncs, func(server *socketio.Server) {
		server.OnConnect("/", func(s socketio.Conn) error {
			addClient(s.ID(), s)
			log.Printf("[events] client %s connected", s.ID())
			return nil
		})
		server.OnDisconnect("/", func(s socketio.Conn, reason string) {
			removeClient(s.ID())
		})
	})
}

// Notifies connected clients that a net was generated.
// Emit may block on a slow client, so it runs without holding clients.mu.
func emitNet(net *DBNet) {
	clients.mu.Lock()
	conns := make([]emitter, 0, len(clients.conns))
	for _, conn := range clients.conns {
		conns = append(conns, conn)
	}
	clients.mu.Unlock()
	for _, conn := range conns {
		conn.Emit("net", net)
	}
}
