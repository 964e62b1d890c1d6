// Package decode decodes many records out of one buffer concurrently.
//
// A batch is a list of jobs, each naming a record type and a byte range of
// a shared buffer. Jobs run on a fixed pool of workers and never affect
// each other: a failing job only fails its own Result. Byte-identical jobs
// of the same type and version are decoded once and share the record,
// which is safe because records are immutable.
//
//	dec := decode.New(catalog.Default(), decode.WithWorkers(8))
//	results := dec.Decode(ctx, data, version.MustParse("5.6.0"), jobs)
//	table := results.Table(0)
package decode
