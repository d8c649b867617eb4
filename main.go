package main

import (
	"os"

	"github.com/randstr-cli/randstr/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
