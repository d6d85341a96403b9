package main

import (
	"log"
	"time"

	"github.com/DevDario/callback-throttle/pkg/throttle"
)

type size struct {
	width  int
	height int
}

func main() {
	renders := 0
	th := throttle.New(100*time.Millisecond, func(s size) {
		renders++
		log.Printf("render #%d at %dx%d", renders, s.width, s.height)
	})

	// Simulate a drag resizing the widget: one event every 20ms for
	// half a second. Only the leading edge of each 100ms window and
	// one trailing call per window actually render.
	log.Print("dragging...")
	for i := 0; i < 25; i++ {
		th.Call(size{width: 200 + 4*i, height: 100 + 2*i})
		time.Sleep(20 * time.Millisecond)
	}

	// Let the last trailing render flush.
	time.Sleep(150 * time.Millisecond)

	// A cancelled trailing render never happens.
	th.Call(size{width: 500, height: 250})
	th.Call(size{width: 501, height: 251}) // pending
	th.Cancel()
	time.Sleep(150 * time.Millisecond)

	log.Printf("done: %d renders for 27 events", renders)
}
