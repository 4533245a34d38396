package swagger

import (
	"fmt"
	"net/http"
	"slices"
	"sync"
)

// broadcaster fans messages out to server-sent event clients. Slow clients
// miss messages instead of blocking the sender.
type broadcaster struct {
	m       sync.Mutex
	clients []chan<- string
}

func NewBroadcaster() *broadcaster {
	return &broadcaster{
		clients: make([]chan<- string, 0),
	}
}

func (b *broadcaster) AddClient(ch chan<- string) {
	b.m.Lock()
	b.clients = append(b.clients, ch)
	b.m.Unlock()
}

func (b *broadcaster) RemoveClient(ch chan<- string) {
	b.m.Lock()
	defer b.m.Unlock()

	idx := slices.Index(b.clients, ch)
	if idx == -1 {
		return
	}
	close(b.clients[idx])
	b.clients = slices.Delete(b.clients, idx, idx+1)
}

func (b *broadcaster) Clients() int {
	b.m.Lock()
	defer b.m.Unlock()
	return len(b.clients)
}

func (b *broadcaster) Broadcast(msg string) {
	b.m.Lock()
	for _, ch := range b.clients {
		select {
		case ch <- msg:
		default:
		}
	}
	b.m.Unlock()
}

func (b *broadcaster) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	flusher, ok := w.(http.Flusher)

	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	msgCh := make(chan string, 1)
	b.AddClient(msgCh)
	defer b.RemoveClient(msgCh)

	notify := r.Context().Done()

	w.Write([]byte(":ok\n\n"))
	flusher.Flush()

	for {
		select {
		case <-notify:
			return
		case msg, ok := <-msgCh:
			if !ok {
				return
			}
			fmt.Fprintf(w, "event: update\ndata: %s\n\n", msg)
			flusher.Flush()
		}
	}
}

var _ http.Handler = (*broadcaster)(nil)
