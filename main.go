package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/fairywrenstore/services/storefront"
)

// main serves every function on one port for local development. Deployed
// functions are built from ./functions.
func main() {
	c := context.Background()

	router, config, err := storefront.FromEnvironment(c)
	if err != nil {
		log.Fatalf("Error starting storefront: %s", err)
	}

	startWebServerBlocking(router, config.Port)
}

func startWebServerBlocking(router *mux.Router, port string) {
	log.Printf("Starting webserver on port %s (try http://localhost:%s/.netlify/functions/health)", port, port)
	err := http.ListenAndServe(fmt.Sprintf(":%s", port), router)
	if err != nil {
		log.Fatalf("Error starting webserver on port %s: %s", port, err)
	}
}
