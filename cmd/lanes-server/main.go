package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"laneinfer/pkg/api"
	"laneinfer/pkg/corpus"
	"laneinfer/pkg/locale"
)

func main() {
	port := flag.Int("port", 8080, "HTTP port")
	corsOrigin := flag.String("cors-origin", "", "CORS allowed origin (empty = same-origin)")
	leftHand := flag.Bool("left", false, "Build the demo corpus for a left-hand-traffic locale")
	flag.Parse()

	loc := locale.NewDefault(locale.Right)
	if *leftHand {
		loc = locale.NewDefault(locale.Left)
	}

	log.Println("Building demo corpus...")
	c, err := corpus.New(loc)
	if err != nil {
		log.Fatalf("Failed to build demo corpus: %v", err)
	}
	log.Printf("Loaded: %d ways", c.Len())

	addr := fmt.Sprintf(":%d", *port)
	cfg := api.DefaultConfig(addr)
	cfg.CORSOrigin = *corsOrigin

	handlers := api.NewHandlers(c)
	srv := api.NewServer(cfg, handlers)

	if err := api.ListenAndServe(srv); err != nil {
		log.Printf("Server stopped: %v", err)
		os.Exit(1)
	}
}
