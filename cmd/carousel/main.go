// Command carousel drives the carousel engine from a terminal, a script or
// a snapshot renderer.
package main

import (
	"log"
	"os"

	"github.com/go-drift/carousel/cmd/carousel/cmd"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("carousel: ")
	if err := cmd.Execute(os.Args[1:]); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}
