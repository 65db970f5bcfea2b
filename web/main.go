package main

import (
	"flag"
	"log"
	"os"

	"github.com/jlope384/Proyecto-2-Graficas/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	static := flag.String("static", "static", "Directory with the web page")
	flag.Parse()

	// Create and start web server
	webServer := server.NewServer(*port, *static)

	log.Printf("Cube Raytracer Web Server")
	log.Printf("Visit http://localhost:%d to start rendering", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
