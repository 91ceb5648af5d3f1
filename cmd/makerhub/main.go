package main

import (
	"log"

	"github.com/MrSnakeDoc/makerhub/internal/app"
)

func main() {
	a, err := app.New()
	if err != nil {
		log.Fatalf("❌ makerhub failed to start: %v", err)
	}
	if err := a.Run(); err != nil {
		log.Fatalf("❌ makerhub stopped with error: %v", err)
	}
}
