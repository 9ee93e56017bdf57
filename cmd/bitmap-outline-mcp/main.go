package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/ironsheep/bitmap-outline-mcp/internal/outline"
	"github.com/ironsheep/bitmap-outline-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("bitmap-outline-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("bitmap-outline-mcp - MCP server tracing binary rasters into vector outlines")
			fmt.Println()
			fmt.Println("Usage: bitmap-outline-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  BITMAP_OUTLINE_LOG_LEVEL=debug    Enable debug logging")
			fmt.Printf("  BITMAP_OUTLINE_MAX_CELLS=N        Largest accepted raster in cells (default %d)\n", server.DefaultMaxCells)
			fmt.Printf("  BITMAP_OUTLINE_CACHE_CELLS=N      Grid cells kept by cached outliners (default %d)\n", server.DefaultCacheCells)
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := loadConfig(os.Getenv)
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	if cfg.debug {
		log.Printf("Bitmap Outline MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		outline.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	srv := server.New(server.Config{
		MaxCells:   cfg.maxCells,
		CacheCells: cfg.cacheCells,
		Version:    Version,
	})
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

type config struct {
	debug      bool
	maxCells   int
	cacheCells int
}

// loadConfig reads the settings from the environment.
func loadConfig(getenv func(string) string) (config, error) {
	cfg := config{
		debug:      getenv("BITMAP_OUTLINE_LOG_LEVEL") == "debug",
		maxCells:   server.DefaultMaxCells,
		cacheCells: server.DefaultCacheCells,
	}
	for _, setting := range []struct {
		name string
		dst  *int
	}{
		{"BITMAP_OUTLINE_MAX_CELLS", &cfg.maxCells},
		{"BITMAP_OUTLINE_CACHE_CELLS", &cfg.cacheCells},
	} {
		v := getenv(setting.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return cfg, fmt.Errorf("invalid %s %q: want a positive integer", setting.name, v)
		}
		*setting.dst = n
	}
	return cfg, nil
}
