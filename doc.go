// Package memgron flattens structured type descriptions into per-field
// layouts and decodes raw memory buffers against them, gron style: one
// (path, value) pair per atomic field.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	memgron/             Root package with top-level convenience wrappers
//	├── typedesc/        Type description trees supplied by a resolver adapter
//	├── layout/          Flattening into leaf field descriptors and paths
//	├── decode/          Bit-level extraction of field values from buffers
//	├── render/          Assignment-style and logfmt text output
//	├── record/          Persisted JSONL layout records and batch decoding
//	├── schema/          YAML type-description loader
//	└── errors/          Structured error types
//
// # Quick Start
//
// Flatten a type description and decode a captured buffer:
//
//	fields, err := memgron.Flatten("test", desc)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	values, err := memgron.Decode(fields, buf, decode.LittleEndian)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	render.Assign(os.Stdout, values)
//
// Type descriptions come from outside: a debugger adapter, a parsed
// schema document, or a layout record read back from disk. The core is
// pure computation over those inputs; it never resolves symbols or
// touches a live process.
package memgron
