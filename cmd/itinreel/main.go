package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/csheth/itinreel/internal/download"
	"github.com/csheth/itinreel/internal/preview"
	"github.com/csheth/itinreel/internal/render"
	"github.com/csheth/itinreel/internal/tui"
)

func main() {
	_ = godotenv.Load()

	apiBase := flag.String("api-base", "", "video service base URL (defaults to API_BASE, VITE_API_BASE, then http://localhost:4000)")
	outDir := flag.String("out", ".", "directory downloaded videos are saved to")
	noAltScreen := flag.Bool("no-alt-screen", false, "disable the alternate screen buffer")
	logPath := flag.String("log", "", "append debug logs to this file")
	flag.Parse()

	if *logPath != "" {
		f, err := tea.LogToFile(*logPath, "itinreel")
		if err != nil {
			fmt.Println("failed to open log file:", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	absOut, err := filepath.Abs(*outDir)
	if err != nil {
		fmt.Println("failed to resolve download directory:", err)
		os.Exit(1)
	}

	renderer := render.NewFromEnv(render.Config{BaseURL: *apiBase})
	log.Printf("[main] video service %s, downloads to %s", renderer.BaseURL(), absOut)

	opts := []tea.ProgramOption{}
	if !*noAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(
		tui.New(tui.Config{
			Renderer:   renderer,
			Downloader: download.NewSaver(absOut, nil),
			Previewer:  preview.NewLauncher(),
		}),
		opts...,
	)

	if _, err := program.Run(); err != nil {
		fmt.Println("program error:", err)
		os.Exit(1)
	}
}
