package main

import (
	"context"
	"log"
	"os"

	"github.com/ChainSafe/stackkit/cmd"
)

func main() {
	app := cmd.NewApp()
	err := app.RunContext(context.Background(), os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
