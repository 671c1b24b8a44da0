package main

import (
	"github.com/voxa-ai/voxa-go/internal/cli"
)

func main() {
	cli.Execute()
}
