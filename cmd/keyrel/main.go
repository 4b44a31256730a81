package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"keyrel/internal/config"
	"keyrel/internal/relevance"
	"keyrel/internal/service"
	"keyrel/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/keyrel/config.yaml if not provided)")
	flag.Parse()
	inputs := flag.Args()
	if len(inputs) == 0 {
		fmt.Println("Usage: keyrel [--config=config.yaml] file1.txt [file2.txt ...]")
		os.Exit(1)
	}
	if cfgPath == "" {
		cfgPath = os.Getenv("KEYREL_CONFIG")
	}

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	var measure relevance.Measure
	switch cfg.Measure.Type {
	case "cosine", "":
		space, err := relevance.ParseVectorSpace(cfg.Measure.VectorSpace)
		if err != nil {
			log.Fatal(err)
		}
		weighting, err := relevance.ParseTermWeighting(cfg.Measure.TermWeighting)
		if err != nil {
			log.Fatal(err)
		}
		measure, err = relevance.NewCosineMeasure(space, weighting)
		if err != nil {
			log.Fatalf("cosine measure init failed: %v", err)
		}
	case "ast":
		// The structural measure needs a text-model builder; none is
		// bundled with this tool.
		log.Fatalf("ast measure is not available in this build")
	default:
		log.Fatalf("unknown measure: %s", cfg.Measure.Type)
	}

	svc := service.NewScorer(measure, nil)
	if err := svc.LoadDocuments(inputs); err != nil {
		log.Fatalf("loading documents failed: %v", err)
	}

	info := fmt.Sprintf("%d documents  measure=%s  space=%s  weighting=%s",
		len(svc.Documents()),
		orDefault(cfg.Measure.Type, "cosine"),
		orDefault(cfg.Measure.VectorSpace, "stems"),
		orDefault(cfg.Measure.TermWeighting, "tf_idf"))

	m := tui.New(svc, info, cfg.TopK)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatal(err)
	}
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
