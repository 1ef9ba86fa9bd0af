package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hue-recall/internal/colorspace"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert colors between Lab and hex",
	Long: `Convert a Lab color to its displayed sRGB hex value, or a hex color to Lab.

Out-of-gamut Lab colors are clamped per channel.

Examples:
  huerecall convert lab 60 0 0
  huerecall convert hex "#ff0000"`,
}

var convertLabCmd = &cobra.Command{
	Use:   "lab <L> <a> <b>",
	Short: "Convert Lab to hex",
	Args:  cobra.ExactArgs(3),
	Run:   runConvertLab,
}

var convertHexCmd = &cobra.Command{
	Use:   "hex <color>",
	Short: "Convert hex to Lab",
	Args:  cobra.ExactArgs(1),
	Run:   runConvertHex,
}

var distanceCmd = &cobra.Command{
	Use:   "distance <color> <color>",
	Short: "Perceptual distance between two hex colors",
	Long: `Print the CIE76 distance (ΔE) between two sRGB hex colors.

A distance below about 2.3 is generally not noticeable.

Examples:
  huerecall distance "#ff0000" "#fe0000"
  huerecall distance 336699 336688`,
	Args: cobra.ExactArgs(2),
	Run:  runDistance,
}

func init() {
	convertCmd.AddCommand(convertLabCmd)
	convertCmd.AddCommand(convertHexCmd)
}

func runConvertLab(_ *cobra.Command, args []string) {
	var vals [3]float64
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid number %q\n", arg)
			os.Exit(1)
		}
		vals[i] = v
	}

	lab := colorspace.Lab{L: vals[0], A: vals[1], B: vals[2]}
	fmt.Println(colorspace.LabToHex(lab))
}

func runConvertHex(_ *cobra.Command, args []string) {
	rgb, err := colorspace.ParseHex(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	lab := colorspace.RGBToLab(rgb)
	fmt.Printf("L=%.2f a=%.2f b=%.2f\n", lab.L, lab.A, lab.B)
}

func runDistance(_ *cobra.Command, args []string) {
	var labs [2]colorspace.Lab
	for i, arg := range args {
		rgb, err := colorspace.ParseHex(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		labs[i] = colorspace.RGBToLab(rgb)
	}

	fmt.Printf("%.2f\n", colorspace.DeltaE(labs[0], labs[1]))
}
