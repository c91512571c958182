package main

import (
	"log"

	"github.com/NVIDIA/semver-parser/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
