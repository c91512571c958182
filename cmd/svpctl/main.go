package main

import (
	"github.com/NVIDIA/semver-parser/pkg/cli"
)

func main() {
	cli.Execute()
}
