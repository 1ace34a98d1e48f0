package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mrz1836/gfshard/internal/fileutil"
	"github.com/mrz1836/gfshard/internal/metrics"
	"github.com/mrz1836/gfshard/internal/output"
	"github.com/mrz1836/gfshard/rs"
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var (
	rsEncodeIn     string
	rsEncodeOutDir string
	rsEncodeData   int
	rsEncodeParity int
	rsEncodeShard  int
	rsDecodeDir    string
	rsDecodeOut    string
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var rsCmd = &cobra.Command{
	Use:   "rs",
	Short: "Reed-Solomon erasure coding over GF(256)",
}

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var rsEncodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Split a file into data and parity shards",
	RunE:  runRSEncode,
}

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var rsDecodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Reconstruct a file from its shards",
	RunE:  runRSDecode,
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(rsCmd)
	rsCmd.AddCommand(rsEncodeCmd)
	rsCmd.AddCommand(rsDecodeCmd)

	rsEncodeCmd.Flags().StringVar(&rsEncodeIn, "in", "", "input file (required)")
	rsEncodeCmd.Flags().StringVar(&rsEncodeOutDir, "out-dir", "", "directory to write shard files into (required)")
	rsEncodeCmd.Flags().IntVar(&rsEncodeData, "data", 0, "data shard count (default: from config)")
	rsEncodeCmd.Flags().IntVar(&rsEncodeParity, "parity", 0, "parity shard count (default: from config)")
	rsEncodeCmd.Flags().IntVar(&rsEncodeShard, "shard-size", 0, "shard size in bytes (default: from config)")
	_ = rsEncodeCmd.MarkFlagRequired("in")
	_ = rsEncodeCmd.MarkFlagRequired("out-dir")

	rsDecodeCmd.Flags().StringVar(&rsDecodeDir, "shards-dir", "", "directory containing shard files (required)")
	rsDecodeCmd.Flags().StringVar(&rsDecodeOut, "out", "", "output file (required)")
	_ = rsDecodeCmd.MarkFlagRequired("shards-dir")
	_ = rsDecodeCmd.MarkFlagRequired("out")
}

func runRSEncode(cmd *cobra.Command, _ []string) error {
	encCfg := cfg.RS.Encoding()
	if rsEncodeData > 0 {
		encCfg.DataShards = rsEncodeData
	}
	if rsEncodeParity > 0 {
		encCfg.ParityShards = rsEncodeParity
	}
	if rsEncodeShard > 0 {
		encCfg.ShardSize = rsEncodeShard
	}

	// #nosec G304 -- path is an explicit user-supplied CLI flag
	data, err := os.ReadFile(rsEncodeIn)
	if err != nil {
		return fmt.Errorf("reading input file: %w", err)
	}

	shards, encErr := rs.Encode(data, encCfg)
	metrics.Global.RecordRSEncode(encErr)
	if logger != nil {
		logger.Debug("rs encode: data=%d parity=%d shard_size=%d err=%v",
			encCfg.DataShards, encCfg.ParityShards, encCfg.ShardSize, encErr)
	}
	if encErr != nil {
		return encErr
	}

	if err := writeShardFiles(rsEncodeOutDir, shards); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if formatter != nil && formatter.Format() == output.FormatJSON {
		return formatter.Print(map[string]any{
			"status":        "success",
			"data_shards":   encCfg.DataShards,
			"parity_shards": encCfg.ParityShards,
			"out_dir":       rsEncodeOutDir,
		})
	}
	outln(w, "Encoded successfully.")
	out(w, "  Data shards:   %d\n", encCfg.DataShards)
	out(w, "  Parity shards: %d\n", encCfg.ParityShards)
	out(w, "  Output dir:    %s\n", rsEncodeOutDir)
	outln(w)
	out(w, "%s", shardTable(shards).String())
	return nil
}

// shardTable renders the written shard set as an index/type/file listing
// for text output.
func shardTable(shards []rs.Shard) *output.Table {
	tbl := output.NewTable("Index", "Type", "File")
	for _, s := range shards {
		kind := "parity"
		if s.IsDataShard() {
			kind = "data"
		}
		tbl.AddRow(strconv.Itoa(s.Index), kind, fmt.Sprintf("shard-%03d.json", s.Index))
	}
	return tbl
}

func runRSDecode(cmd *cobra.Command, _ []string) error {
	shards, err := readShardFiles(rsDecodeDir)
	if err != nil {
		return err
	}

	hitsBefore, missesBefore := rs.CacheStats()
	data, decErr := rs.Decode(shards)
	metrics.Global.RecordRSDecode(decErr)

	// Fold the per-call cache stat deltas into the global metrics.
	hits, misses := rs.CacheStats()
	metrics.Global.AddCacheHits(int64(hits - hitsBefore))       // #nosec G115
	metrics.Global.AddCacheMisses(int64(misses - missesBefore)) // #nosec G115
	if logger != nil {
		logger.Debug("rs decode: shards=%d err=%v cache_hits=%d cache_misses=%d",
			len(shards), decErr, hits, misses)
	}
	if decErr != nil {
		return decErr
	}

	if err := fileutil.WriteAtomic(rsDecodeOut, data, 0o600); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}

	w := cmd.OutOrStdout()
	if formatter != nil && formatter.Format() == output.FormatJSON {
		return formatter.Print(map[string]any{
			"status": "success",
			"out":    rsDecodeOut,
			"bytes":  len(data),
		})
	}
	outln(w, "Decoded successfully.")
	out(w, "  Output: %s\n", rsDecodeOut)
	out(w, "  Bytes:  %d\n", len(data))
	return nil
}
