package decode

import (
	"context"
	"runtime"
	"sync"

	"github.com/zeebo/blake3"
	"go.uber.org/zap"

	"github.com/wippyai/assetripper/asset"
	"github.com/wippyai/assetripper/binary"
	"github.com/wippyai/assetripper/errors"
	"github.com/wippyai/assetripper/version"
)

// Job is one record to decode.
type Job struct {
	// Name labels the job in logs and results.
	Name string

	// TypeName selects the registered decoder.
	TypeName string

	// Offset and Size delimit the record in the batch buffer.
	Offset, Size int
}

// Result is the outcome of one job.
type Result struct {
	Job    Job
	Record asset.Record
	Err    error

	// Shared is set when the record was decoded for an earlier identical job.
	Shared bool
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithWorkers sets the number of concurrent workers. Values below 1 are
// ignored.
func WithWorkers(n int) Option {
	return func(d *Decoder) {
		if n >= 1 {
			d.workers = n
		}
	}
}

// WithLogger sets the logger for per-job diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(d *Decoder) {
		if l != nil {
			d.logger = l
		}
	}
}

// Decoder runs batches against a registry. It is safe for concurrent use.
type Decoder struct {
	registry *asset.Registry
	workers  int
	logger   *zap.Logger
}

// New creates a Decoder. Workers default to GOMAXPROCS.
func New(reg *asset.Registry, opts ...Option) *Decoder {
	d := &Decoder{
		registry: reg,
		workers:  runtime.GOMAXPROCS(0),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Workers returns the pool size.
func (d *Decoder) Workers() int {
	return d.workers
}

type digest [32]byte

// unit is one distinct piece of work and every job index waiting on it.
type unit struct {
	typeName string
	data     []byte
	jobs     []int
}

// Decode runs jobs over data for version v. Results are in job order.
// When ctx is cancelled no further work is started and every job not yet
// started reports ctx.Err().
func (d *Decoder) Decode(ctx context.Context, data []byte, v version.Version, jobs []Job) Results {
	results := make(Results, len(jobs))
	units := d.plan(data, v, jobs, results)

	work := make(chan *unit)
	var wg sync.WaitGroup
	for range min(d.workers, len(units)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for u := range work {
				d.run(u, v, jobs, results)
			}
		}()
	}

	next := 0
dispatch:
	for ; next < len(units); next++ {
		if ctx.Err() != nil {
			break
		}
		select {
		case <-ctx.Done():
			break dispatch
		case work <- units[next]:
		}
	}
	close(work)
	wg.Wait()

	for _, u := range units[next:] {
		for _, i := range u.jobs {
			results[i] = Result{Job: jobs[i], Err: ctx.Err()}
		}
	}
	return results
}

// plan validates job ranges and groups identical jobs. Jobs that fail
// validation get their result immediately.
func (d *Decoder) plan(data []byte, v version.Version, jobs []Job, results Results) []*unit {
	var units []*unit
	seen := make(map[digest]*unit)
	for i, job := range jobs {
		if job.Offset < 0 || job.Size < 0 || job.Offset > len(data)-job.Size {
			results[i] = Result{Job: job, Err: errors.OutOfBounds(errors.PhaseDecode,
				[]string{job.Name}, job.Offset, job.Size, len(data))}
			continue
		}
		chunk := data[job.Offset : job.Offset+job.Size]
		key := jobDigest(job.TypeName, v, chunk)
		if u, ok := seen[key]; ok {
			u.jobs = append(u.jobs, i)
			continue
		}
		u := &unit{typeName: job.TypeName, data: chunk, jobs: []int{i}}
		seen[key] = u
		units = append(units, u)
	}
	return units
}

func (d *Decoder) run(u *unit, v version.Version, jobs []Job, results Results) {
	rec, err := d.decodeOne(u.typeName, u.data, v)
	first := jobs[u.jobs[0]]
	if err != nil {
		d.logger.Warn("decode failed",
			zap.String("job", first.Name),
			zap.String("type", u.typeName),
			zap.Stringer("version", v),
			zap.Error(err),
		)
	} else {
		d.logger.Debug("decoded",
			zap.String("job", first.Name),
			zap.String("type", u.typeName),
			zap.Int("size", len(u.data)),
			zap.Int("shared", len(u.jobs)-1),
		)
	}
	for n, i := range u.jobs {
		results[i] = Result{Job: jobs[i], Record: rec, Err: err, Shared: n > 0}
	}
}

func (d *Decoder) decodeOne(typeName string, data []byte, v version.Version) (asset.Record, error) {
	dec, ok := d.registry.Get(typeName)
	if !ok {
		return nil, errors.NotFound(errors.PhaseDecode, "record type", typeName)
	}
	r := binary.AcquireReader(data, v)
	defer binary.ReleaseReader(r)
	return asset.DecodeAll(dec, r)
}

// jobDigest identifies a job by type, version and bytes.
func jobDigest(typeName string, v version.Version, data []byte) digest {
	h := blake3.New()
	h.Write([]byte(typeName + "\x00" + v.String() + "\x00"))
	h.Write(data)
	var d digest
	copy(d[:], h.Sum(nil))
	return d
}
