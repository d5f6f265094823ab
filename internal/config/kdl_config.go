package config

import (
	"fmt"
	"strings"

	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"
)

// parseKDL applies a .fpr.kdl document on top of cfg.
//
// Example:
//
//	project {
//	    root "."
//	    name "docs-api"
//	}
//	resolver {
//	    auto_match_threshold 0.7
//	    suggestion_threshold 0.4
//	    workers 8
//	}
//	corpus {
//	    include "src/**/*.ts"
//	    exclude "**/node_modules/**"
//	    watch_mode true
//	    watch_debounce_ms 100
//	}
func parseKDL(cfg *Config, content string) error {
	doc, err := kdl.Parse(strings.NewReader(content))
	if err != nil {
		return fmt.Errorf("failed to parse KDL config: %w", err)
	}

	for _, n := range doc.Nodes {
		switch nodeName(n) {
		case "version":
			if v, ok := firstIntArg(n); ok {
				cfg.Version = v
			}
		case "project":
			for _, cn := range n.Children {
				assignSimpleString(cn, "root", func(v string) { cfg.Project.Root = v })
				assignSimpleString(cn, "name", func(v string) { cfg.Project.Name = v })
			}
		case "resolver":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "auto_match_threshold":
					if v, ok := firstFloatArg(cn); ok {
						cfg.Resolver.AutoMatchThreshold = v
					}
				case "suggestion_threshold":
					if v, ok := firstFloatArg(cn); ok {
						cfg.Resolver.SuggestionThreshold = v
					}
				case "workers":
					if v, ok := firstIntArg(cn); ok {
						cfg.Resolver.Workers = v
					}
				}
			}
		case "corpus":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "include":
					cfg.Corpus.Include = append(cfg.Corpus.Include, collectStringArgs(cn)...)
				case "exclude":
					// An explicit exclude block replaces the defaults.
					cfg.Corpus.Exclude = collectStringArgs(cn)
				case "watch_mode":
					if b, ok := firstBoolArg(cn); ok {
						cfg.Corpus.WatchMode = b
					}
				case "watch_debounce_ms":
					if v, ok := firstIntArg(cn); ok {
						cfg.Corpus.WatchDebounceMs = v
					}
				}
			}
		}
	}

	return nil
}

// Helper functions leveraging the kdl-go document model
func nodeName(n *document.Node) string {
	if n == nil || n.Name == nil {
		return ""
	}
	return n.Name.NodeNameString()
}

func firstIntArg(n *document.Node) (int, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func firstStringArg(n *document.Node) (string, bool) {
	if len(n.Arguments) == 0 {
		return "", false
	}
	if s, ok := n.Arguments[0].Value.(string); ok {
		return s, true
	}
	return "", false
}

func firstBoolArg(n *document.Node) (bool, bool) {
	if len(n.Arguments) == 0 {
		return false, false
	}
	if b, ok := n.Arguments[0].Value.(bool); ok {
		return b, true
	}
	return false, false
}

func firstFloatArg(n *document.Node) (float64, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func collectStringArgs(n *document.Node) []string {
	if n == nil {
		return nil
	}
	out := make([]string, 0, len(n.Arguments))
	for _, a := range n.Arguments {
		if s, ok := a.Value.(string); ok {
			out = append(out, s)
		}
	}

	// Block form: exclude { "pattern" } puts strings in child node names.
	if len(out) == 0 && len(n.Children) > 0 {
		out = make([]string, 0, len(n.Children))
		for _, child := range n.Children {
			if s, ok := firstStringArg(child); ok {
				out = append(out, s)
			} else if child.Name != nil {
				if s, ok := child.Name.Value.(string); ok {
					out = append(out, s)
				}
			}
		}
	}

	return out
}

func assignSimpleString(n *document.Node, target string, set func(string)) {
	if nodeName(n) == target {
		if s, ok := firstStringArg(n); ok {
			set(s)
		}
	}
}
