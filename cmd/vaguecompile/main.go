/*
Command vaguecompile turns a plaintext word<TAB>frequency dictionary into
the compact binary trie vaguesearch serves queries from.

	vaguecompile -input words.txt -output words.vgt

Malformed lines (missing tab, non-numeric frequency) are logged at warn
level and skipped; compilation continues.
*/
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/kjhall/vaguetrie/internal/logger"
	"github.com/kjhall/vaguetrie/internal/utils"
	"github.com/kjhall/vaguetrie/pkg/config"
	"github.com/kjhall/vaguetrie/pkg/dictionary"
)

const version = "0.1.0"

func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		log.Warn("interrupted, exiting")
		os.Exit(1)
	}()
}

func main() {
	sigHandler()
	defaultCfg := config.DefaultConfig()

	input := flag.String("input", "", "Path to the plaintext word<TAB>frequency dictionary")
	output := flag.String("output", "dictionary.vgt", "Path to write the compiled dictionary")
	configFile := flag.String("config", "", "Path to custom config.toml file")
	debugMode := flag.Bool("v", false, "Toggle verbose logging")
	showVersion := flag.Bool("version", false, "Show current version")
	flag.Parse()

	if *showVersion {
		log.Print("vaguecompile", "version", version)
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}
	logg := logger.New("compile")

	if *input == "" {
		logg.Fatal("missing required -input flag")
	}
	if !utils.FileExists(*input) {
		logg.Fatalf("input file does not exist: %s", utils.GetAbsolutePath(*input))
	}

	cfg := defaultCfg
	configPath := *configFile
	if configPath == "" {
		if pr, err := utils.NewPathResolver(); err == nil {
			if found, ok := pr.GetConfigPath("vaguetrie.toml"); ok {
				configPath = found
			}
		}
	}
	if configPath != "" {
		loaded, err := config.InitConfig(configPath)
		if err != nil {
			logg.Fatalf("failed to load config: %v", err)
		}
		cfg = loaded
	}

	accepted, skipped, err := dictionary.Compile(*input, *output, dictionary.CompileOptions{
		MaxWordCount:     cfg.Compiler.MaxWordCountValidation,
		RangeNodeMinSpan: cfg.Compiler.RangeNodeMinSpan,
	})
	if err != nil {
		logg.Fatalf("compile failed: %v", err)
	}

	logg.Infof("compiled %s -> %s (%s words, %d skipped)",
		*input, *output, utils.FormatWithCommas(accepted), skipped)
}
