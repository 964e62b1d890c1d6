package decode

import (
	"github.com/wippyai/assetripper/asset"
)

// Results are the outcomes of a batch, in job order.
type Results []Result

// PathID is the path id Table assigns to the job at index i.
func PathID(i int) int64 {
	return int64(i) + 1
}

// Table builds a lookup over the successful results. The record of job i
// is keyed by PPtr{fileIndex, PathID(i)}.
func (rs Results) Table(fileIndex int32) *asset.Table {
	b := asset.NewTableBuilder()
	for i, r := range rs {
		if r.Err == nil && r.Record != nil {
			b.Insert(asset.PPtr{FileIndex: fileIndex, PathID: PathID(i)}, r.Record)
		}
	}
	return b.Build()
}

// Records returns the decoded records, skipping failures.
func (rs Results) Records() []asset.Record {
	out := make([]asset.Record, 0, len(rs))
	for _, r := range rs {
		if r.Err == nil {
			out = append(out, r.Record)
		}
	}
	return out
}

// Errors returns the error of every failed job.
func (rs Results) Errors() []error {
	var out []error
	for _, r := range rs {
		if r.Err != nil {
			out = append(out, r.Err)
		}
	}
	return out
}
