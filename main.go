package main

import (
	"github.com/chungtseng/manta/cmd"
)

func main() {
	cmd.Execute()
}
