package main

import (
	"fmt"
	"log"
	"os"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mdclust/mdclust/internal/config"
	"github.com/mdclust/mdclust/mcp"
)

const serverName = "mdclust"

func main() {
	// MCP uses stdout for JSON-RPC, so all logging goes to stderr
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.LoadConfig("")
	if err != nil {
		log.Printf("Falling back to default configuration: %v", err)
		cfg = config.DefaultConfig()
	}

	server := mcpserver.NewMCPServer(
		serverName,
		"1.0.0",
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithLogging(),
	)

	handlers := mcp.NewHandlerSet(mcp.NewDependencies(cfg, ""))
	mcp.RegisterTools(server, handlers)

	log.Printf("Starting %s MCP server\n", serverName)
	log.Println("Registered tools:")
	log.Println("  - cluster_matrix: Cluster items from a matrix file")
	log.Println("  - matrix_info: Inspect a matrix file")
	log.Println("")
	log.Println("Server ready - waiting for MCP client connection...")

	if err := mcpserver.ServeStdio(server); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
