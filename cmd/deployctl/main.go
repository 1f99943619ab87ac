package main

import (
	"os"

	"github.com/digirealtydrew93/tackettweb/internal/deployctl"
)

func main() {
	if err := deployctl.NewRootCommand(deployctl.DefaultLoader).Execute(); err != nil {
		os.Exit(1)
	}
}
