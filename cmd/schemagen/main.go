// Command schemagen compiles schema units into Go source.
//
//	schemagen camera.toml > camera.go
//	schemagen batch --out ./gltf --watch schemas/*.toml
//
// Flags can also be set through SCHEMAGEN_* environment variables and the
// schemagen.toml or schemagen.yaml file of the working directory.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"

	"github.com/syssam/schemagen/compiler/gen"
	"github.com/syssam/schemagen/compiler/load"
	"github.com/syssam/schemagen/internal/log"
)

// CLI is the command line grammar.
type CLI struct {
	Package  string   `help:"Base import path of the generated packages." default:"schema" env:"SCHEMAGEN_PACKAGE"`
	Feature  []string `help:"Enable a codegen feature (names, extras, extensions)." env:"SCHEMAGEN_FEATURE"`
	Header   string   `help:"Header comment of generated files." env:"SCHEMAGEN_HEADER"`
	LogLevel string   `help:"Log level." enum:"debug,info,warn,error" default:"info" env:"SCHEMAGEN_LOG_LEVEL"`

	Gen   GenCmd   `cmd:"" default:"withargs" help:"Compile one schema unit to stdout."`
	Batch BatchCmd `cmd:"" help:"Compile schema units into a directory tree."`
}

func (c *CLI) options() []gen.Option {
	return []gen.Option{
		gen.WithPackage(c.Package),
		gen.WithFeatureNames(c.Feature...),
		gen.WithHeader(c.Header),
	}
}

// GenCmd compiles a single unit.
type GenCmd struct {
	Path string `arg:"" help:"Schema unit (.toml, .yaml or .yml)." type:"existingfile"`
}

// Run is called by kong when the gen command is executed.
func (c *GenCmd) Run(cli *CLI, logger *slog.Logger, out io.Writer) error {
	cfg, err := gen.NewConfig(cli.options()...)
	if err != nil {
		return err
	}
	u, err := load.Load(c.Path)
	if err != nil {
		return err
	}
	logger.Debug("compiling unit", "unit", u.QualifiedName(), "path", c.Path)
	return gen.NewGenerator(cfg).Generate(out, u)
}

// BatchCmd compiles many units into the output directory.
type BatchCmd struct {
	Out     string   `help:"Output directory." required:"" type:"path" env:"SCHEMAGEN_OUT"`
	Workers int      `help:"Units generated in parallel, 0 for one per CPU." default:"0" env:"SCHEMAGEN_WORKERS"`
	Watch   bool     `help:"Regenerate units when their files change."`
	Files   []string `arg:"" help:"Schema units." type:"existingfile"`
}

// Run is called by kong when the batch command is executed.
func (c *BatchCmd) Run(cli *CLI, logger *slog.Logger) error {
	opts := append(cli.options(), gen.WithTarget(c.Out), gen.WithWorkers(c.Workers))
	cfg, err := gen.NewConfig(opts...)
	if err != nil {
		return err
	}
	w := gen.NewWriter(gen.NewGenerator(cfg)).WithLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := w.GenerateAll(ctx, c.Files); err != nil {
		return err
	}
	m := w.Metrics()
	logger.Info("generated units", "files", m.FilesGenerated, "bytes", m.TotalBytes, "out", c.Out)
	if !c.Watch {
		return nil
	}
	logger.Info("watching for changes", "files", len(c.Files))
	return w.Watch(ctx, c.Files)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("schemagen"),
		kong.Description("Compile TOML and YAML schema units into Go source."),
		kong.Writers(stdout, stderr),
		// Flags and env override config values.
		kong.Configuration(kongtoml.Loader, "schemagen.toml"),
		kong.Configuration(kongyaml.Loader, "schemagen.yaml", "schemagen.yml"),
	)
	if err != nil {
		fmt.Fprintf(stderr, "schemagen: %v\n", err)
		return 2
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "schemagen: %v\n", err)
		return 2
	}

	logger := log.New(stderr, cli.LogLevel)
	kctx.Bind(&cli, logger)
	kctx.BindTo(stdout, (*io.Writer)(nil))
	if err := kctx.Run(); err != nil {
		logger.Error("generation failed", "error", err)
		return 1
	}
	return 0
}
