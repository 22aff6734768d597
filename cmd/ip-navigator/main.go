package main

import (
	"os"

	"github.com/clebertmarctyson/ip-navigator-cli/internal/cmd"
)

// version is injected at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(cmd.Execute(cmd.Config{Version: version}))
}
