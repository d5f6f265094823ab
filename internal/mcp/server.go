package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/standardbeagle/fpr/internal/config"
	"github.com/standardbeagle/fpr/internal/corpus"
	"github.com/standardbeagle/fpr/internal/metrics"
	"github.com/standardbeagle/fpr/internal/resolver"
	"github.com/standardbeagle/fpr/internal/version"
)

// Server exposes fuzzy path resolution as MCP tools over stdio so AI
// assistants and navigation hosts can resolve identifiers without linking
// the library.
type Server struct {
	cfg    *config.Config
	corpus *corpus.Memory
	batch  *resolver.BatchResolver
	stats  *metrics.ResolutionStats
	server *mcp.Server
}

// NewServer wires the resolver stack into an MCP server.
func NewServer(cfg *config.Config, mem *corpus.Memory, batch *resolver.BatchResolver, stats *metrics.ResolutionStats) *Server {
	s := &Server{
		cfg:    cfg,
		corpus: mem,
		batch:  batch,
		stats:  stats,
	}

	s.server = mcp.NewServer(&mcp.Implementation{
		Name:    "fpr-mcp-server",
		Version: version.Version,
	}, nil)
	s.registerTools()

	return s
}

// ResolveParams are the arguments for the resolve_path tool.
type ResolveParams struct {
	Paths []string `json:"paths"`
}

func (s *Server) registerTools() {
	s.server.AddTool(&mcp.Tool{
		Name:        "resolve_path",
		Description: "Resolve file/module paths against the project corpus. Exact matches pass through; near misses (missing suffixes, pluralization, directory typos) are substituted or suggested with a confidence score.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"paths": {
					Type:        "array",
					Items:       &jsonschema.Schema{Type: "string"},
					Description: "Slash-delimited paths to resolve (e.g. [\"src/extract/index.ts\"])",
				},
			},
			Required: []string{"paths"},
		},
	}, s.handleResolvePath)

	s.server.AddTool(&mcp.Tool{
		Name:        "corpus_stats",
		Description: "Report corpus size, fingerprint, and resolution counters for this session.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
		},
	}, s.handleCorpusStats)
}

// handleResolvePath handles the resolve_path tool requests
func (s *Server) handleResolvePath(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params ResolveParams
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return createErrorResponse(fmt.Errorf("invalid parameters: %w", err))
	}
	if len(params.Paths) == 0 {
		return createErrorResponse(fmt.Errorf("paths must contain at least one entry"))
	}

	report, err := s.batch.ResolveAll(ctx, params.Paths)
	if err != nil {
		return createErrorResponse(err)
	}
	return createJSONResponse(report)
}

// handleCorpusStats handles the corpus_stats tool requests
func (s *Server) handleCorpusStats(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snapshot := s.stats.Snapshot()
	return createJSONResponse(map[string]interface{}{
		"root":        s.cfg.Project.Root,
		"identifiers": s.corpus.Len(),
		"fingerprint": fmt.Sprintf("%016x", s.corpus.Fingerprint()),
		"resolution":  snapshot,
	})
}

// Run serves MCP requests over stdio until the context is canceled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}
