package main

import (
	"flag"
	"log"
	"os"

	"github.com/IndaPlus23/nilsmal-raytracer/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	flag.Parse()

	// Create and start web server
	webServer := server.NewServer(*port, nil)

	log.Printf("Batch Raytracer Web Server")
	log.Printf("GET http://localhost:%d/api/render?scene=default to render", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
