package main

import (
	"log/slog"
	"os"

	"mergexml/internal/app"
)

func main() {
	application, err := app.NewApplication()
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		application.Logger.Error("Application terminated", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
