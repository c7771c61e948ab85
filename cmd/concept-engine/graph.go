// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/concept-engine/internal/graph"
	"github.com/pdiddy/concept-engine/pkg/types"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Manage the concept-map index (store, retrieve, stats, export)",
	Long: `Graph manages a local SQLite index built from concept-map JSON files.
Use subcommands to ingest maps, search concepts, inspect map statistics,
or export the index.`,
}

// --- store subcommand ---

var graphStoreCmd = &cobra.Command{
	Use:   "store",
	Short: "Ingest concept maps into the index",
	Long: `Store reads concept-map JSON files from the maps directory and ingests
them into a SQLite database with FTS5 indexing over concepts. Unchanged
maps are skipped on subsequent runs; changed maps are re-ingested.`,
	RunE: runGraphStore,
}

func runGraphStore(cmd *cobra.Command, args []string) error {
	store, err := graph.NewStore(graphConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	summary, err := store.Ingest(context.Background(), os.Stdout)
	if err != nil {
		return err
	}
	if summary.HasFailures() {
		return fmt.Errorf("%d map(s) failed indexing", summary.Failed)
	}
	return nil
}

// --- retrieve subcommand ---

var graphRetrieveCmd = &cobra.Command{
	Use:   "retrieve [query]",
	Short: "Search indexed concepts with full-text search",
	Long: `Retrieve searches the concept index using FTS5 full-text search. Each
hit lists the concept, its map, and its outgoing relations.`,
	RunE: runGraphRetrieve,
}

func runGraphRetrieve(cmd *cobra.Command, args []string) error {
	query, _ := cmd.Flags().GetString("query")
	if query == "" && len(args) > 0 {
		query = strings.Join(args, " ")
	}
	if query == "" {
		return fmt.Errorf("query required: provide a search query or --query")
	}
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := graph.NewStore(graphConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	hits, err := store.Retrieve(context.Background(), query, limit)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatRetrieveOutput(hits, jsonOutput)
}

func formatRetrieveOutput(hits []graph.ConceptHit, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(hits)
	}

	if len(hits) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	for i, h := range hits {
		fmt.Fprintf(os.Stdout, "%d. %s  (map: %s)\n", i+1, h.Concept, h.MapID)
		for _, r := range h.Relations {
			fmt.Fprintf(os.Stdout, "     %s --%s--> %s\n", r.Source, r.Verb, r.Target)
		}
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(hits))
	return nil
}

// --- stats subcommand ---

var graphStatsCmd = &cobra.Command{
	Use:   "stats [map-id]",
	Short: "Show statistics for ingested concept maps",
	Long: `Stats prints concept and relationship counts plus the most frequent
relation verbs for every ingested map, or for one map when a map ID is
given.`,
	RunE: runGraphStats,
}

func runGraphStats(cmd *cobra.Command, args []string) error {
	mapID := ""
	if len(args) > 0 {
		mapID = args[0]
	}

	store, err := graph.NewStore(graphConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	stats, err := store.Stats(context.Background(), mapID)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	}

	if len(stats) == 0 {
		fmt.Println("No maps indexed.")
		return nil
	}

	for _, m := range stats {
		fmt.Fprintf(os.Stdout, "%s: %d concepts, %d relationships\n", m.MapID, m.Concepts, m.Relationships)
		for _, v := range m.TopVerbs {
			fmt.Fprintf(os.Stdout, "     %-20s %d\n", v.Verb, v.Count)
		}
	}
	return nil
}

// --- export subcommand ---

var graphExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the concept index to YAML or JSON",
	Long: `Export writes every ingested map's statistics and relationships to
index/export.yaml or index/export.json.`,
	RunE: runGraphExport,
}

func runGraphExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	cfg := graphConfig(cmd)

	store, err := graph.NewStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	switch format {
	case "yaml", "":
		if err := store.ExportYAML(context.Background()); err != nil {
			return err
		}
		fmt.Printf("Exported to %s/export.yaml\n", cfg.IndexDir)
	case "json":
		if err := store.ExportJSON(context.Background()); err != nil {
			return err
		}
		fmt.Printf("Exported to %s/export.json\n", cfg.IndexDir)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	return nil
}

// --- shared helpers ---

func graphConfig(cmd *cobra.Command) types.GraphStoreConfig {
	mapsDir, _ := cmd.Flags().GetString("maps-dir")
	indexDir, _ := cmd.Flags().GetString("index-dir")
	maxResults, _ := cmd.Flags().GetInt("max-results")

	return types.GraphStoreConfig{
		MapsDir:    mapsDir,
		IndexDir:   indexDir,
		MaxResults: maxResults,
	}
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	graphCmd.PersistentFlags().String("maps-dir", "maps", "directory of concept-map JSON files")
	graphCmd.PersistentFlags().String("index-dir", "index", "directory holding the SQLite index")
	graphCmd.PersistentFlags().Int("max-results", 20, "maximum number of query results")

	graphRetrieveCmd.Flags().String("query", "", "full-text search query")
	graphRetrieveCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	graphRetrieveCmd.Flags().Bool("json", false, "output results as JSON")

	graphStatsCmd.Flags().Bool("json", false, "output statistics as JSON")

	graphExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	graphCmd.AddCommand(graphStoreCmd)
	graphCmd.AddCommand(graphRetrieveCmd)
	graphCmd.AddCommand(graphStatsCmd)
	graphCmd.AddCommand(graphExportCmd)

	rootCmd.AddCommand(graphCmd)
}
