package main

import (
	"github.com/golt-ecs/golt/cmd/golt/cmd"
)

func main() {
	cmd.Execute()
}
