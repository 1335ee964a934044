package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/saturation-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("saturation-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("saturation-mcp - MCP server for HSL saturation adjustment")
			fmt.Println()
			fmt.Println("Usage: saturation-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Printf("  %s=debug       Enable debug logging\n", server.EnvLogLevel)
			fmt.Printf("  %s=N          Reject images above N pixels (default %d, 0 disables)\n",
				server.EnvMaxPixels, server.DefaultMaxPixels)
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			return
		}
	}

	// stdout is reserved for the protocol
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := server.LoadConfig(os.Getenv)
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}
	cfg.Version = Version

	if cfg.Debug {
		log.Printf("Saturation MCP Server v%s (built %s, commit %s), max pixels %d",
			Version, BuildTime, GitCommit, cfg.MaxPixels)
	}

	if err := server.New(cfg).Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
