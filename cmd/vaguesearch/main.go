/*
Command vaguesearch serves approximate-string queries against a dictionary
compiled by vaguecompile.

	vaguesearch -data words.vgt

reads "approx <distance> <word>" lines from stdin and writes one JSON
result array per line to stdout. With -ipc it instead speaks the
MessagePack request/response protocol documented in pkg/server, for
programmatic clients.
*/
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/kjhall/vaguetrie/internal/cli"
	"github.com/kjhall/vaguetrie/internal/logger"
	"github.com/kjhall/vaguetrie/internal/utils"
	"github.com/kjhall/vaguetrie/pkg/config"
	"github.com/kjhall/vaguetrie/pkg/dictionary"
	"github.com/kjhall/vaguetrie/pkg/search"
	"github.com/kjhall/vaguetrie/pkg/server"
	"github.com/kjhall/vaguetrie/pkg/trie"
)

const (
	version = "0.1.0"
	repoURL = "https://github.com/kjhall/vaguetrie"
)

func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		log.Warn("interrupted, exiting")
		os.Exit(1)
	}()
}

func printVersionBanner() {
	bannerLog := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
	})
	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["repo"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	bannerLog.SetStyles(styles)

	bannerLog.Print("")
	bannerLog.Print("[vaguesearch] approximate string search over a compiled trie")
	bannerLog.Print("", "version", version)
	bannerLog.Print("", "repo", repoURL)
	bannerLog.Print("")
}

func main() {
	sigHandler()
	defaultCfg := config.DefaultConfig()

	dataPath := flag.String("data", "", "Path to the compiled dictionary (.vgt)")
	configFile := flag.String("config", "", "Path to custom config.toml file")
	debugMode := flag.Bool("v", false, "Toggle verbose logging")
	ipcMode := flag.Bool("ipc", defaultCfg.IPC.Enabled, "Serve the MessagePack IPC protocol instead of line-JSON")
	showVersion := flag.Bool("version", false, "Show current version")
	flag.Parse()

	if *showVersion {
		printVersionBanner()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}
	logg := logger.New("search")

	if *dataPath == "" {
		logg.Fatal("missing required -data flag")
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

	if !utils.FileExists(*dataPath) {
		logg.Fatalf("dictionary file does not exist: %s", utils.GetAbsolutePath(*dataPath))
	}
	view, err := dictionary.OpenView(*dataPath)
	if err != nil {
		logg.Fatalf("opening dictionary: %v", err)
	}
	defer view.Close()

	reader, err := trie.NewReader(view.Bytes())
	if err != nil {
		logg.Fatalf("loading dictionary: %v", err)
	}
	logg.Debugf("loaded dictionary with %d nodes from %s", reader.NodeCount(), *dataPath)

	cache := search.NewResultCache(cfg.Search.ResultCacheSize)
	maxDistance := cfg.Search.MaxAllowedDistance

	if *ipcMode {
		srv := server.NewServer(reader, cache, maxDistance)
		if err := srv.Start(); err != nil {
			logg.Fatalf("server error: %v", err)
		}
		return
	}

	handler := cli.NewQueryHandler(reader, cache, maxDistance, os.Stdout)
	if err := handler.Start(os.Stdin); err != nil {
		logg.Fatalf("query loop error: %v", err)
	}
}
