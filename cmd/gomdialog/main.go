package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/image/font"

	"github.com/gompdf/gomdialog"
	"github.com/gompdf/gomdialog/internal/text"
)

func main() {
	var (
		inputFile     string
		inlineText    string
		outputPath    string
		format        string
		fontFile      string
		fontSize      float64
		viewport      string
		indicatorFile string
		indicatorSize int
		resourceDir   string
		title         string
		verbose       bool
	)

	flag.StringVar(&inputFile, "input", "", "Input dialog script (.html) or plain text file")
	flag.StringVar(&inlineText, "text", "", "Dialog text, used instead of -input")
	flag.StringVar(&outputPath, "output", "", "Output PDF file, or directory for PNG snapshots")
	flag.StringVar(&format, "format", "pdf", "Output format: pdf or png")
	flag.StringVar(&fontFile, "font", "", "TrueType font for PNG snapshots (default Go Mono)")
	flag.Float64Var(&fontSize, "font-size", 14, "Font size in points")
	flag.StringVar(&viewport, "viewport", "800x480", "Viewport size as WIDTHxHEIGHT")
	flag.StringVar(&indicatorFile, "indicator", "", "Indicator image (PNG, BMP, TIFF, WebP or SVG)")
	flag.IntVar(&indicatorSize, "indicator-size", 12, "Pixel size SVG indicators are rasterized to")
	flag.StringVar(&resourceDir, "resources", "", "Extra directory searched for fonts and images")
	flag.StringVar(&title, "title", "", "Storyboard title")
	flag.BoolVar(&verbose, "verbose", false, "Enable verbose logging")
	flag.Parse()

	if inputFile == "" && inlineText == "" {
		fmt.Println("Error: -input or -text is required")
		flag.Usage()
		os.Exit(1)
	}

	vw, vh, err := parseViewport(viewport)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if outputPath == "" {
		outputPath = defaultOutput(inputFile, format)
	}

	opts := []gomdialog.Option{
		gomdialog.WithViewport(vw, vh),
		gomdialog.WithDebug(verbose),
	}
	if title != "" {
		opts = append(opts, gomdialog.WithTitle(title))
	}
	if resourceDir != "" {
		opts = append(opts, gomdialog.WithResourcePath(resourceDir))
	}

	if err := run(context.Background(), inputFile, inlineText, outputPath, format, fontFile, fontSize, indicatorFile, indicatorSize, opts); err != nil {
		fmt.Printf("Error rendering storyboard: %v\n", err)
		os.Exit(1)
	}

	if verbose {
		fmt.Printf("Successfully wrote %s\n", outputPath)
	}
}

func run(ctx context.Context, inputFile, inlineText, outputPath, format, fontFile string, fontSize float64, indicatorFile string, indicatorSize int, opts []gomdialog.Option) error {
	options := gomdialog.DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	assets := gomdialog.NewAssets(inputFile, options)

	if indicatorFile != "" {
		img, err := assets.LoadIndicator(ctx, indicatorFile, indicatorSize)
		if err != nil {
			return err
		}
		opts = append(opts, gomdialog.WithIndicatorImage(img))
	}

	var sb *gomdialog.Storyboard
	if inlineText != "" {
		sb = gomdialog.NewStoryboard(opts...)
		sb.Add(strings.ReplaceAll(inlineText, `\n`, "\n"))
	} else {
		var err error
		sb, err = assets.LoadScript(ctx, scriptName(inputFile), opts...)
		if err != nil {
			return err
		}
	}

	switch format {
	case "pdf":
		return sb.WritePDFFile(outputPath, fontSize)
	case "png":
		face, err := loadFace(ctx, assets, fontFile, fontSize)
		if err != nil {
			return err
		}
		_, err = sb.WritePNGs(outputPath, face)
		return err
	}
	return fmt.Errorf("unknown format %q", format)
}

func loadFace(ctx context.Context, assets *gomdialog.Assets, fontFile string, size float64) (font.Face, error) {
	if fontFile == "" {
		return text.GoMono(size)
	}
	return assets.LoadFace(ctx, fontFile, size)
}

// scriptName returns the name to load inputFile by. Local paths resolve
// against the script itself, so only the base name is passed.
func scriptName(inputFile string) string {
	if strings.Contains(inputFile, "://") || strings.HasPrefix(inputFile, "data:") {
		return inputFile
	}
	return filepath.Base(inputFile)
}

func parseViewport(s string) (float64, float64, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid viewport %q, want WIDTHxHEIGHT", s)
	}
	w, err1 := strconv.ParseFloat(strings.TrimSpace(ws), 64)
	h, err2 := strconv.ParseFloat(strings.TrimSpace(hs), 64)
	if err1 != nil || err2 != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid viewport %q, want WIDTHxHEIGHT", s)
	}
	return w, h, nil
}

func defaultOutput(inputFile, format string) string {
	base := "dialog"
	if inputFile != "" {
		base = strings.TrimSuffix(inputFile, filepath.Ext(inputFile))
	}
	if format == "png" {
		return base + "-frames"
	}
	return base + ".pdf"
}
