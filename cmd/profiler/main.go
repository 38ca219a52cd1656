// Package main is the profiler CLI entry point.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Mohammed-Abed-Alkareem/LLM-Institution-Profiler-sub001/internal/autocomplete"
	"github.com/Mohammed-Abed-Alkareem/LLM-Institution-Profiler-sub001/internal/cli"
	"github.com/Mohammed-Abed-Alkareem/LLM-Institution-Profiler-sub001/internal/config"
	"github.com/Mohammed-Abed-Alkareem/LLM-Institution-Profiler-sub001/internal/loader"
	"github.com/Mohammed-Abed-Alkareem/LLM-Institution-Profiler-sub001/internal/models"
	"github.com/Mohammed-Abed-Alkareem/LLM-Institution-Profiler-sub001/internal/server"
	"github.com/Mohammed-Abed-Alkareem/LLM-Institution-Profiler-sub001/internal/watcher"
	"github.com/Mohammed-Abed-Alkareem/LLM-Institution-Profiler-sub001/pkg/utils"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/profiler/config.yaml"

// loadConfig loads config from path. When path is the default, it first looks
// for config.yaml in the current directory (for development); if that exists
// it is used. Returns the config and the path that was actually loaded.
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "server":
		runServer()
	case "suggest":
		runSuggest()
	case "correct":
		runCorrect()
	case "status":
		runStatus()
	case "version", "--version", "-v":
		fmt.Printf("profiler version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

// engineSources converts config sources into loader sources, skipping
// entries with an unknown institution type.
func engineSources(cfg *config.Config, logger *zap.Logger) []loader.Source {
	sources := make([]loader.Source, 0, len(cfg.Sources))
	for _, sc := range cfg.Sources {
		typ, err := models.ParseInstitutionType(sc.Type)
		if err != nil {
			logger.Warn("skipping source", zap.String("path", sc.Path), zap.Error(err))
			continue
		}
		sources = append(sources, loader.Source{
			Path:       sc.Path,
			Type:       typ,
			NameColumn: sc.NameColumn,
			Table:      sc.Table,
		})
	}
	return sources
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.Bool("debug", debugMode),
	)

	engine := autocomplete.NewEngine(cfg.Autocomplete, engineSources(cfg, logger), logger)
	if _, err := engine.Initialize(); err != nil {
		// Keep serving: queries answer 503 until a reload succeeds.
		logger.Error("initial index build failed", zap.Error(err))
	}

	var watchSvc *watcher.Watcher
	if cfg.Watch.EnabledOrDefault() {
		paths := make([]string, 0, len(cfg.Sources))
		for _, sc := range cfg.Sources {
			paths = append(paths, sc.Path)
		}
		watchOpts := []watcher.Option{}
		if debugMode {
			watchOpts = append(watchOpts, watcher.WithLogger(logger))
		}
		watchSvc = watcher.New(paths, func() {
			if _, err := engine.Reload(); err != nil {
				logger.Warn("watch-triggered reload failed", zap.Error(err))
			}
		}, watchOpts...)
		watchCtx, watchCancel := context.WithCancel(context.Background())
		defer watchCancel()
		if err := watchSvc.Start(watchCtx); err != nil {
			logger.Fatal("Failed to start watcher", zap.Error(err))
		}
	}

	srv := server.NewServer(engine, &cfg.Server, logger)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	if watchSvc != nil {
		watchSvc.Stop()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

func runSuggest() {
	fs := flag.NewFlagSet("suggest", flag.ExitOnError)
	addr := fs.String("addr", "http://localhost:8080", "server address")
	limit := fs.Int("limit", 10, "maximum suggestions")
	spell := fs.Bool("spell", true, "enable spell-correction fallback")
	format := fs.String("format", "text", "output format: text or json")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: profiler suggest [flags] <query>\n\n")
		fmt.Fprintf(fs.Output(), "Query is all remaining arguments joined by spaces.\n\n")
		fs.PrintDefaults()
	}
	_ = fs.Parse(os.Args[2:])
	query := strings.Join(fs.Args(), " ")
	if query == "" {
		fs.Usage()
		os.Exit(1)
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", fmt.Sprint(*limit))
	if !*spell {
		params.Set("spell", "false")
	}
	body := fetch(*addr + "/api/v1/autocomplete?" + params.Encode())

	var result models.SuggestionResult
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}
	_ = cli.WriteSuggestions(os.Stdout, &result, cli.OutputFormat(*format))
}

func runCorrect() {
	fs := flag.NewFlagSet("correct", flag.ExitOnError)
	addr := fs.String("addr", "http://localhost:8080", "server address")
	limit := fs.Int("limit", 10, "maximum candidates")
	format := fs.String("format", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])
	query := strings.Join(fs.Args(), " ")
	if query == "" {
		fmt.Println("Usage: profiler correct [flags] <query>")
		os.Exit(1)
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", fmt.Sprint(*limit))
	body := fetch(*addr + "/api/v1/spell-corrections?" + params.Encode())

	var resp struct {
		Query      string                        `json:"query"`
		Candidates []*models.CorrectionCandidate `json:"candidates"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}
	_ = cli.WriteCorrections(os.Stdout, resp.Query, resp.Candidates, cli.OutputFormat(*format))
}

func runStatus() {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	addr := fs.String("addr", "http://localhost:8080", "server address")
	_ = fs.Parse(os.Args[2:])

	body := fetch(*addr + "/api/v1/status")
	var pretty map[string]interface{}
	if err := json.Unmarshal(body, &pretty); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}
	out, _ := json.MarshalIndent(pretty, "", "  ")
	fmt.Println(string(out))
}

// fetch GETs the URL and returns the body, exiting on transport errors.
func fetch(u string) []byte {
	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Get(u)
	if err != nil {
		fmt.Printf("Request failed: %v\n(is the server running? start it with: profiler server)\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		fmt.Printf("Failed to read response: %v\n", err)
		os.Exit(1)
	}
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Server returned %d: %s\n", resp.StatusCode, strings.TrimSpace(string(body)))
		os.Exit(1)
	}
	return body
}

func printUsage() {
	fmt.Println(`profiler - institution name resolution service

Usage:
  profiler server [--config path] [--debug]   Start the HTTP server
  profiler suggest [flags] <query>            Query autocomplete suggestions
  profiler correct [flags] <query>            Query spell-correction candidates
  profiler status [--addr url]                Show engine status
  profiler version                            Print version
  profiler help                               Show this help`)
}
