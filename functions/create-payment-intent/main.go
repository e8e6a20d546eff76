package main

import (
	"context"
	"log"

	"github.com/MarcGrol/fairywrenstore/lib/mylambda"
	"github.com/MarcGrol/fairywrenstore/services/storefront"
)

func main() {
	router, _, err := storefront.FromEnvironment(context.Background())
	if err != nil {
		log.Fatalf("Error starting function: %s", err)
	}

	mylambda.Start(router)
}
