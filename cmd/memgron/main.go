package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/memgron/memgron/decode"
	merrors "github.com/memgron/memgron/errors"
	"github.com/memgron/memgron/layout"
	"github.com/memgron/memgron/record"
	"github.com/memgron/memgron/render"
	"github.com/memgron/memgron/schema"
)

func main() {
	var (
		schemaFile  = flag.String("schema", "", "YAML type description to flatten into a layout record")
		layoutFile  = flag.String("layout", "", "Layout record file (JSONL) to decode against")
		dataFile    = flag.String("data", "", "Raw buffer file to decode")
		name        = flag.String("name", "", "Only process the named entity")
		format      = flag.String("format", "assign", "Output style: assign or logfmt")
		order       = flag.String("order", "", "Override layout byte order (le or be)")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			record.SetLogger(logger)
			defer logger.Sync()
		}
	}

	var err error
	switch {
	case *schemaFile != "":
		err = flattenCmd(*schemaFile, *name)
	case *layoutFile != "" && *interactive:
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			err = fmt.Errorf("interactive mode requires a terminal")
			break
		}
		err = runInteractive(*layoutFile, *dataFile, *order)
	case *layoutFile != "":
		err = dumpCmd(*layoutFile, *dataFile, *name, *format, *order)
	default:
		fmt.Fprintln(os.Stderr, "Usage: memgron -schema <type.yaml> [-name entity]")
		fmt.Fprintln(os.Stderr, "       memgron -layout <layout.jsonl> -data <buf.bin> [-name entity] [-format assign|logfmt] [-order le|be]")
		fmt.Fprintln(os.Stderr, "       memgron -layout <layout.jsonl> -data <buf.bin> -i  (interactive mode)")
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// flattenCmd turns a YAML type description into a layout record on stdout.
func flattenCmd(schemaFile, nameOverride string) error {
	f, err := os.Open(schemaFile)
	if err != nil {
		return fmt.Errorf("open schema: %w", err)
	}
	defer f.Close()

	ent, err := schema.Parse(f)
	if err != nil {
		return fmt.Errorf("parse schema: %w", err)
	}
	name := ent.Name
	if nameOverride != "" {
		name = nameOverride
	}

	fields, err := layout.Flatten(name, ent.Type)
	if err != nil {
		return err
	}

	return record.NewWriter(os.Stdout).Write(&record.Record{
		Scope:  record.GlobalScope,
		Name:   name,
		Layout: fields,
	})
}

// dumpCmd decodes a buffer against every matching record in a layout file.
func dumpCmd(layoutFile, dataFile, name, format, orderOverride string) error {
	records, buf, err := loadInputs(layoutFile, dataFile, name, orderOverride)
	if err != nil {
		return err
	}

	runner := &record.Runner{Buffers: record.FixedBuffer(buf)}
	failures := 0
	for _, res := range runner.Run(records) {
		if res.Err != nil {
			failures++
			continue
		}
		switch format {
		case "logfmt":
			err = render.Logfmt(os.Stdout, res.Values)
		case "assign":
			err = render.Assign(os.Stdout, res.Values)
		default:
			return fmt.Errorf("unknown format %q", format)
		}
		if err != nil {
			return err
		}
		failures += len(res.FieldErrs)
	}

	if failures > 0 {
		return fmt.Errorf("%d field(s) or record(s) failed to decode", failures)
	}
	return nil
}

// loadInputs reads the layout records and the raw buffer, applying the
// name filter and byte order override.
func loadInputs(layoutFile, dataFile, name, orderOverride string) ([]*record.Record, []byte, error) {
	f, err := os.Open(layoutFile)
	if err != nil {
		return nil, nil, fmt.Errorf("open layout: %w", err)
	}
	defer f.Close()

	records, err := record.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if name != "" {
		kept := records[:0]
		for _, rec := range records {
			if rec.Name == name {
				kept = append(kept, rec)
			}
		}
		records = kept
		if len(records) == 0 {
			return nil, nil, merrors.NotFound(merrors.PhaseLoad, "entity", name)
		}
	}

	if orderOverride != "" {
		order, err := decode.ParseByteOrder(orderOverride)
		if err != nil {
			return nil, nil, err
		}
		for _, rec := range records {
			rec.ByteOrder = order
		}
	}

	var buf []byte
	if dataFile != "" {
		buf, err = os.ReadFile(dataFile)
		if err != nil {
			return nil, nil, fmt.Errorf("read data: %w", err)
		}
	} else {
		buf, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, nil, fmt.Errorf("read stdin: %w", err)
		}
	}

	return records, buf, nil
}
