// Command assetdump decodes asset records and prints them as engine text
// documents.
//
// Each input file holds one record of --type. Files are decoded
// concurrently and numbered from path id 1 in argument order, so
// references between them resolve with --deps.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/wippyai/assetripper/asset"
	"github.com/wippyai/assetripper/catalog"
	"github.com/wippyai/assetripper/config"
	"github.com/wippyai/assetripper/decode"
	"github.com/wippyai/assetripper/document"
	"github.com/wippyai/assetripper/version"
)

type options struct {
	typeName      string
	version       string
	exportVersion string
	format        string
	configPath    string
	classID       int
	workers       int
	deps          bool
	listTypes     bool
}

func main() {
	var opts options
	flags := pflag.NewFlagSet("assetdump", pflag.ExitOnError)
	flags.StringVarP(&opts.typeName, "type", "t", "ShaderSnippet", "record type of every input")
	flags.StringVarP(&opts.version, "version", "v", "", "engine version that wrote the input (overrides config)")
	flags.StringVar(&opts.exportVersion, "export-version", "", "engine version to export for (default: --version)")
	flags.StringVarP(&opts.format, "format", "f", "unity", "output format: unity, plain or cbor")
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML configuration file")
	flags.IntVar(&opts.classID, "class-id", 0, "class id written in document headers")
	flags.IntVarP(&opts.workers, "workers", "j", 0, "decode workers (overrides config)")
	flags.BoolVar(&opts.deps, "deps", false, "list dependencies instead of documents")
	flags.BoolVar(&opts.listTypes, "list-types", false, "list known record types and exit")
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: assetdump [flags] <file>...")
		flags.PrintDefaults()
	}
	_ = flags.Parse(os.Args[1:])

	if opts.listTypes {
		for _, name := range catalog.Default().Names() {
			fmt.Println(name)
		}
		return
	}
	if flags.NArg() == 0 {
		flags.Usage()
		os.Exit(2)
	}

	cfg, err := loadConfig(opts, flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	failed, err := run(ctx, cfg, opts, flags.Args(), os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// loadConfig reads the config file, if any, and applies flag overrides.
func loadConfig(opts options, flags *pflag.FlagSet) (*config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return nil, err
		}
	}
	if flags.Changed("version") {
		cfg.Version = opts.version
	}
	if flags.Changed("export-version") {
		cfg.ExportVersion = opts.exportVersion
	}
	if flags.Changed("workers") {
		cfg.Workers = opts.workers
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// run decodes every file and writes the requested output. It returns the
// number of inputs that failed to decode.
func run(ctx context.Context, cfg *config.Config, opts options, files []string, out io.Writer) (int, error) {
	src, export, err := cfg.Versions()
	if err != nil {
		return 0, err
	}
	logger, err := cfg.Logger()
	if err != nil {
		return 0, err
	}
	defer func() { _ = logger.Sync() }()
	asset.SetLogger(logger.Named("asset"))

	data, jobs, err := readInputs(files, opts.typeName)
	if err != nil {
		return 0, err
	}

	dec := decode.New(catalog.Default(),
		decode.WithWorkers(cfg.Workers),
		decode.WithLogger(logger.Named("decode")),
	)
	results := dec.Decode(ctx, data, src, jobs)
	logger.Info("batch decoded",
		zap.Int("inputs", len(jobs)),
		zap.Int("failed", len(results.Errors())),
		zap.Stringer("version", src),
	)

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "%s: %v\n", r.Job.Name, r.Err)
		}
	}

	if opts.deps {
		return failed, writeDependencies(out, results, styled(out))
	}
	return failed, writeDocuments(out, results, opts, src, export)
}

func readInputs(files []string, typeName string) ([]byte, []decode.Job, error) {
	var data []byte
	jobs := make([]decode.Job, 0, len(files))
	for _, name := range files {
		b, err := os.ReadFile(name)
		if err != nil {
			return nil, nil, fmt.Errorf("read %s: %w", name, err)
		}
		jobs = append(jobs, decode.Job{Name: name, TypeName: typeName, Offset: len(data), Size: len(b)})
		data = append(data, b...)
	}
	return data, jobs, nil
}

func writeDocuments(out io.Writer, results decode.Results, opts options, src, export version.Version) error {
	var docs []*document.Document
	for i, r := range results {
		if r.Err != nil {
			continue
		}
		ex, ok := r.Record.(asset.Exportable)
		if !ok {
			continue
		}
		ctx := &asset.ExportContext{Version: src, ExportVersion: export}
		docs = append(docs, &document.Document{
			ClassID: opts.classID,
			PathID:  decode.PathID(i),
			Root:    r.Record.TypeName(),
			Body:    ex.ExportDocument(ctx),
		})
	}

	switch opts.format {
	case "unity":
		enc := document.NewEncoder(out)
		for _, doc := range docs {
			if err := enc.Encode(doc); err != nil {
				return err
			}
		}
		return enc.Close()
	case "plain":
		return document.EncodePlain(out, docs...)
	case "cbor":
		return document.EncodeCBOR(out, docs...)
	default:
		return fmt.Errorf("unknown format %q", opts.format)
	}
}
