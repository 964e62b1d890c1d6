package binary

import (
	"sync"

	"github.com/wippyai/assetripper/version"
)

// readerPool pools Reader instances to reduce allocations in batch decoding
var readerPool = sync.Pool{
	New: func() any {
		return &Reader{}
	},
}

// AcquireReader gets a pooled reader initialized with data.
func AcquireReader(data []byte, v version.Version) *Reader {
	r := readerPool.Get().(*Reader)
	r.Reset(data, v)
	return r
}

// ReleaseReader returns a reader to the pool. The reader must not be used
// afterwards.
func ReleaseReader(r *Reader) {
	r.Reset(nil, version.Version{})
	readerPool.Put(r)
}
