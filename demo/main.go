package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"medassist/demo/client"
	"medassist/demo/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment
	_ = godotenv.Load()

	// Parse command-line flags
	serverURL := flag.String("url", client.GetEnvOrDefault("ASSISTANT_URL", "http://localhost:8080"), "Assistant server URL")
	age := flag.String("age", "", "Age applied to every question")
	gender := flag.String("gender", "", "Gender applied to every question")
	flag.Parse()

	// Create TUI model
	m := tui.NewModel(client.NewClient(*serverURL), *age, *gender)

	// Create the tea program
	program := tea.NewProgram(m)

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		program.Quit()
	}()

	// Run the program
	if _, err := program.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
