package main

import (
	"fmt"
	"os"

	"github.com/markermap/markermap/internal/app"
)

func main() {
	if err := app.New().Run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "markermap: %v\n", err)
		os.Exit(1)
	}
}
