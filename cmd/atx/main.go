package main

import (
	"fmt"
	"os"

	"s3-audio-translate/cmd/atx/cmd"
	"s3-audio-translate/internal/config"
)

func main() {
	// A missing .env is fine; variables may come from the environment.
	if _, err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "⚠️  Configuration Warning: %v\n", err)
	}

	cmd.Execute()
}
