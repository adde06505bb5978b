package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/tocbuilder/internal/build"
	"git.home.luguber.info/inful/tocbuilder/internal/config"
	"git.home.luguber.info/inful/tocbuilder/internal/logfields"
	"git.home.luguber.info/inful/tocbuilder/internal/toc"
	"git.home.luguber.info/inful/tocbuilder/internal/tocgen"
	"git.home.luguber.info/inful/tocbuilder/internal/watch"
)

var CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:"tocbuilder.yaml"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Gen struct {
		Dir                string   `arg:"" help:"Content root directory"`
		Output             string   `short:"o" help:"Write the generated TOC to this file instead of stdout"`
		SplitChar          string   `help:"Character separating words in filenames (default from config, else _)"`
		Skip               []string `help:"Skip files and folders whose path contains this text"`
		TitlesFromHeadings bool     `help:"Derive page titles from the first markdown heading"`
		Watch              bool     `short:"w" help:"Keep running and regenerate when the content tree changes"`
	} `cmd:"" help:"Generate a table of contents from a content directory"`

	Inject struct {
		Toc  string   `help:"Path to the TOC file (overrides the configured one)"`
		Docs []string `arg:"" help:"Documents to inject navigation into"`
	} `cmd:"" help:"Inject navigation directives into documents"`

	Show struct {
		Toc string `arg:"" help:"Path to the TOC file"`
	} `cmd:"" help:"Print the outline of a TOC file"`
}

func main() {
	ctx := kong.Parse(&CLI)

	cfg, err := config.LoadOrDefault(CLI.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logLevel := cfg.LogLevel()
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	switch ctx.Command() {
	case "gen <dir>":
		if err := runGen(cfg); err != nil {
			slog.Error("Generation failed", logfields.Error(err))
			os.Exit(1)
		}
	case "inject <docs>":
		if err := runInject(cfg); err != nil {
			slog.Error("Injection failed", logfields.Error(err))
			os.Exit(1)
		}
	case "show <toc>":
		if err := runShow(CLI.Show.Toc); err != nil {
			slog.Error("Show failed", logfields.Error(err))
			os.Exit(1)
		}
	}
}

func genOptions(cfg *config.Config) []tocgen.Option {
	splitChar := CLI.Gen.SplitChar
	if splitChar == "" {
		splitChar = cfg.SplitChar
	}
	opts := []tocgen.Option{tocgen.WithSplitChar(splitChar)}
	if len(cfg.SkipText) > 0 {
		opts = append(opts, tocgen.WithSkipText(cfg.SkipText...))
	}
	if len(CLI.Gen.Skip) > 0 {
		opts = append(opts, tocgen.WithSkipText(CLI.Gen.Skip...))
	}
	if CLI.Gen.TitlesFromHeadings {
		opts = append(opts, tocgen.WithTitlesFromHeadings())
	}
	return opts
}

func runGen(cfg *config.Config) error {
	opts := genOptions(cfg)

	generate := func() error {
		data, err := tocgen.BuildYAML(CLI.Gen.Dir, opts...)
		if err != nil {
			return err
		}
		if CLI.Gen.Output == "" {
			_, err = os.Stdout.Write(data)
			return err
		}
		if err := os.WriteFile(CLI.Gen.Output, data, 0o644); err != nil {
			return fmt.Errorf("failed to write TOC file: %w", err)
		}
		slog.Info("TOC generated", logfields.Dir(CLI.Gen.Dir), logfields.Output(CLI.Gen.Output))
		return nil
	}

	if err := generate(); err != nil {
		return err
	}
	if !CLI.Gen.Watch {
		return nil
	}
	if CLI.Gen.Output == "" {
		return fmt.Errorf("--watch requires --output")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	watcher, err := watch.NewWatcher(CLI.Gen.Dir, generate)
	if err != nil {
		return err
	}
	if err := watcher.Start(ctx); err != nil {
		return err
	}
	defer watcher.Stop()

	slog.Info("Watching content tree, press Ctrl-C to stop", logfields.Dir(CLI.Gen.Dir))
	<-ctx.Done()
	return nil
}

func runInject(cfg *config.Config) error {
	tocPath := CLI.Inject.Toc
	if tocPath == "" {
		tocPath = cfg.Toc
	}
	if tocPath == "" {
		// No persisted TOC configured: injection is a deliberate opt-out.
		slog.Info("No TOC configured, skipping injection")
		return nil
	}

	run, err := build.LoadRun(tocPath)
	if err != nil {
		return err
	}
	slog.Info("TOC loaded",
		logfields.RunID(run.ID),
		logfields.Path(tocPath),
		slog.String("master_doc", run.MasterDoc))

	// Document identifiers in the TOC are relative to the TOC file's own
	// directory, which is the content root.
	root := filepath.Dir(tocPath)

	for _, doc := range CLI.Inject.Docs {
		docName, err := docIdentifier(root, doc)
		if err != nil {
			return err
		}

		source, err := os.ReadFile(doc)
		if err != nil {
			return fmt.Errorf("failed to read document %s: %w", doc, err)
		}

		injected, err := run.InjectDoc(docName, source)
		if err != nil {
			return err
		}

		info, err := os.Stat(doc)
		if err != nil {
			return err
		}
		if err := os.WriteFile(doc, injected, info.Mode().Perm()); err != nil {
			return fmt.Errorf("failed to write document %s: %w", doc, err)
		}
		slog.Info("Navigation injected", logfields.RunID(run.ID), logfields.Document(docName))
	}

	return nil
}

// docIdentifier converts a document file path into its content-root-relative
// identifier, the form the TOC stores.
func docIdentifier(root, doc string) (string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	absDoc, err := filepath.Abs(doc)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(absRoot, absDoc)
	if err != nil {
		return "", fmt.Errorf("document %s is outside the content root %s: %w", doc, root, err)
	}
	return filepath.ToSlash(rel), nil
}

func runShow(tocPath string) error {
	root, err := toc.LoadFile(tocPath)
	if err != nil {
		return err
	}
	printOutline(root, 0)
	return nil
}

func printOutline(node *toc.Node, depth int) {
	label := node.Name
	if label == "" {
		label = node.Title
	}
	if label == "" {
		label = node.File
	}
	for i := 0; i < depth; i++ {
		fmt.Print("  ")
	}
	fmt.Printf("- %s (%s)\n", label, node.File)
	for _, page := range node.Pages {
		printOutline(page, depth+1)
	}
}
