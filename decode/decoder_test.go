package decode

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wippyai/assetripper/asset"
	"github.com/wippyai/assetripper/asset/bundle"
	"github.com/wippyai/assetripper/asset/serialize"
	"github.com/wippyai/assetripper/catalog"
	cerrors "github.com/wippyai/assetripper/errors"
	"github.com/wippyai/assetripper/version"
)

var v56 = version.New(5, 6)

type batch struct {
	data []byte
	jobs []Job
}

func (b *batch) add(name, typeName string, rec asset.Writable) {
	data, err := asset.Encode(rec, v56)
	if err != nil {
		panic(err)
	}
	b.jobs = append(b.jobs, Job{Name: name, TypeName: typeName, Offset: len(b.data), Size: len(data)})
	b.data = append(b.data, data...)
}

func sampleBatch() *batch {
	b := &batch{}
	b.add("inset", "RectOffset", serialize.NewRectOffset(1, 2, 3, 4))
	b.add("info", "AssetInfo", bundle.NewAssetInfo(0, 1, asset.PPtr{PathID: 1}))
	b.add("inset-copy", "RectOffset", serialize.NewRectOffset(1, 2, 3, 4))
	b.add("other-inset", "RectOffset", serialize.NewRectOffset(9, 9, 9, 9))
	return b
}

func TestDecodeBatch(t *testing.T) {
	b := sampleBatch()
	results := New(catalog.New(), WithWorkers(3)).Decode(context.Background(), b.data, v56, b.jobs)

	if len(results) != len(b.jobs) {
		t.Fatalf("got %d results", len(results))
	}
	for i, r := range results {
		if r.Err != nil {
			t.Fatalf("job %s: %v", r.Job.Name, r.Err)
		}
		if r.Job != b.jobs[i] {
			t.Errorf("result %d is for job %s", i, r.Job.Name)
		}
	}
	if got := results[0].Record.(*serialize.RectOffset); got.Bottom() != 4 {
		t.Errorf("inset: %+v", got)
	}
	if results[2].Record != results[0].Record || !results[2].Shared || results[0].Shared {
		t.Error("identical jobs should share one record")
	}
	if results[3].Record == results[0].Record {
		t.Error("distinct bytes must not share")
	}
}

func TestDecodeFailuresAreIsolated(t *testing.T) {
	b := sampleBatch()
	jobs := append([]Job{}, b.jobs...)
	jobs = append(jobs,
		Job{Name: "unknown", TypeName: "Mesh", Offset: 0, Size: 16},
		Job{Name: "short", TypeName: "RectOffset", Offset: 0, Size: 15},
		Job{Name: "long", TypeName: "RectOffset", Offset: 0, Size: 17},
		Job{Name: "outside", TypeName: "RectOffset", Offset: len(b.data) - 4, Size: 16},
	)

	core, logs := observer.New(zap.WarnLevel)
	results := New(catalog.New(), WithWorkers(2), WithLogger(zap.New(core))).
		Decode(context.Background(), b.data, v56, jobs)

	for _, r := range results[:len(b.jobs)] {
		if r.Err != nil {
			t.Errorf("job %s: %v", r.Job.Name, r.Err)
		}
	}
	checks := []struct {
		name string
		kind cerrors.Kind
	}{
		{"unknown", cerrors.KindNotFound},
		{"short", cerrors.KindOutOfBounds},
		{"long", cerrors.KindInvalidData},
		{"outside", cerrors.KindOutOfBounds},
	}
	for i, c := range checks {
		r := results[len(b.jobs)+i]
		var e *cerrors.Error
		if !errors.As(r.Err, &e) || e.Kind != c.kind {
			t.Errorf("%s: expected %s, got %v", c.name, c.kind, r.Err)
		}
	}
	if n := len(results.Errors()); n != 4 {
		t.Errorf("errors: %d", n)
	}
	if n := len(results.Records()); n != len(b.jobs) {
		t.Errorf("records: %d", n)
	}
	if n := logs.FilterMessage("decode failed").Len(); n != 3 {
		t.Errorf("expected 3 warnings, got %d", n)
	}
}

func TestDecodeCancelled(t *testing.T) {
	b := sampleBatch()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := New(catalog.New()).Decode(ctx, b.data, v56, b.jobs)
	for _, r := range results {
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("job %s: %v", r.Job.Name, r.Err)
		}
	}
}

func TestResultsTable(t *testing.T) {
	b := sampleBatch()
	b.jobs = append(b.jobs, Job{Name: "bad", TypeName: "Mesh", Size: 1})
	results := New(catalog.New()).Decode(context.Background(), b.data, v56, b.jobs)

	table := results.Table(0)
	if table.Len() != 4 {
		t.Fatalf("table has %d records", table.Len())
	}
	if _, ok := table.Find(asset.PPtr{PathID: PathID(4)}); ok {
		t.Error("failed job should not be in the table")
	}

	// The AssetInfo points at path id 1, the first inset.
	info := results[1].Record.(*bundle.AssetInfo)
	deps := asset.Collect(info.FetchDependencies(table))
	if len(deps) != 1 || deps[0].Target != results[0].Record {
		t.Errorf("deps: %+v", deps)
	}
}

func TestOptions(t *testing.T) {
	if New(nil, WithWorkers(0)).Workers() < 1 {
		t.Error("workers must stay positive")
	}
	if New(nil, WithWorkers(5)).Workers() != 5 {
		t.Error("WithWorkers ignored")
	}
}
