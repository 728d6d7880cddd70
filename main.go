package main

import (
	"fmt"
	"log"

	"hecto/application"
	"hecto/config"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("hecto: ")

	path, err := config.DefaultPath()
	if err != nil {
		// No config directory: run on the built-in defaults.
		path = ""
	}
	cfg := config.NewConfig(path)
	if err := cfg.Init(); err != nil {
		log.Fatalf("%+v", err)
	}

	logger, logFile, err := application.NewLogger(cfg.EditorConfig.LogFile)
	if err != nil {
		log.Fatalf("%+v", err)
	}

	err = application.New(cfg, logger).Run()
	logFile.Close()
	if err != nil {
		// The terminal is already restored, so the report lands in the shell.
		log.Fatalf("%+v", err)
	}
	fmt.Println("Goodbye.")
}
