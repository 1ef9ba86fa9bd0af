package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hue-recall/internal/config"
	"github.com/vovakirdan/hue-recall/internal/palette"
)

var (
	flagMode    string
	flagCount   int
	flagDelta   float64
	flagLMin    int
	flagLMax    int
	flagABMin   int
	flagABMax   int
	flagJSON    bool
	flagShuffle bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one round of colors",
	Long: `Generate the colors for a single round and print them.

In fair mode (the accuracy game) decoys are offset from the target along the
a and b axes of Lab space. The generator retries up to 10 times until every
decoy sits at its intended distance; use --verbose to see the attempts.

In unrelated mode (the speed game) decoys are random sRGB colors and carry a
distance of -1. Without --count it uses the speed game's decoy count.

Unset flags fall back to the generation section of the recall config.

Examples:
  huerecall generate
  huerecall generate --count 6 --delta 24
  huerecall generate --mode unrelated --count 8
  huerecall generate --seed 42 --json`,
	Run: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&flagMode, "mode", "fair", "Generator: fair or unrelated")
	f.IntVar(&flagCount, "count", 0, "Number of decoys")
	f.Float64Var(&flagDelta, "delta", 0, "Largest decoy distance (fair mode)")
	f.IntVar(&flagLMin, "l-min", 0, "Lowest target lightness")
	f.IntVar(&flagLMax, "l-max", 0, "Highest target lightness")
	f.IntVar(&flagABMin, "ab-min", 0, "Lowest target a/b value")
	f.IntVar(&flagABMax, "ab-max", 0, "Highest target a/b value")
	f.BoolVar(&flagJSON, "json", false, "Print the set as JSON")
	f.BoolVar(&flagShuffle, "shuffle", false, "Shuffle candidates the way the game does")
	f.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

// generationFromFlags layers explicitly set flags over the configured generation parameters.
func generationFromFlags(cmd *cobra.Command, base palette.GenerationConfig) palette.GenerationConfig {
	f := cmd.Flags()
	if f.Changed("count") {
		base.Count = flagCount
	}
	if f.Changed("delta") {
		base.DeltaLimit = flagDelta
	}
	if f.Changed("l-min") {
		base.LRange.Min = flagLMin
	}
	if f.Changed("l-max") {
		base.LRange.Max = flagLMax
	}
	if f.Changed("ab-min") {
		base.ABRange.Min = flagABMin
	}
	if f.Changed("ab-max") {
		base.ABRange.Max = flagABMax
	}
	return base
}

// unrelatedCount is the speed game's decoy count unless --count is set.
func unrelatedCount(cmd *cobra.Command, cfg config.RecallConfig) int {
	if cmd.Flags().Changed("count") {
		return flagCount
	}
	return cfg.Gameplay.SpeedDecoys
}

func runGenerate(cmd *cobra.Command, _ []string) {
	recallCfg, err := config.LoadRecall(flagConfig)
	if err != nil {
		logger.Warn("using default config", "error", err)
		recallCfg = config.DefaultRecallConfig()
	}
	gen := generationFromFlags(cmd, recallCfg.Generation)
	src := palette.NewSource(flagSeed)

	var set palette.Set
	switch flagMode {
	case "fair":
		set, err = palette.GenerateFairSet(gen, src)
	case "unrelated":
		set, err = palette.GenerateUnrelatedSet(unrelatedCount(cmd, recallCfg), src)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q (want fair or unrelated)\n", flagMode)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating colors: %v\n", err)
		os.Exit(1)
	}

	logger.Debug("generated set", "mode", flagMode, "attempts", set.Attempts, "fair", set.Fair)
	if !set.Fair {
		logger.Warn("no fair set within attempt cap", "attempts", set.Attempts)
	}

	if flagShuffle {
		palette.Shuffle(set.Colors, src)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(set); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding set: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printSet(set)
}

func printSet(set palette.Set) {
	r := lipgloss.NewRenderer(os.Stdout)

	fmt.Printf("Target: L=%.0f a=%.0f b=%.0f  %s\n",
		set.Target.L, set.Target.A, set.Target.B, palette.LabToHex(set.Target))
	fmt.Printf("Attempts: %d  Fair: %v\n", set.Attempts, set.Fair)
	fmt.Println()

	fmt.Printf("  %-3s  %-4s  %-7s  %-7s  %-7s  %s\n", "#", "", "Hex", "ΔE", "Nominal", "")
	fmt.Printf("  %-3s  %-4s  %-7s  %-7s  %-7s  %s\n", "--", "", "---", "--", "-------", "")

	for i, c := range set.Colors {
		swatch := r.NewStyle().Background(lipgloss.Color(c.Hex)).Render("    ")
		mark := ""
		if c.Correct {
			mark = "target"
		}
		fmt.Printf("  %-3d  %s  %-7s  %7.2f  %7.2f  %s\n", i+1, swatch, c.Hex, c.DeltaE, c.Nominal, mark)
	}
}
