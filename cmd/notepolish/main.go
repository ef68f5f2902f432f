package main

import (
	"log"

	"github.com/mithrel/notepolish/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatal(err)
	}
}
