package asset

import (
	"bytes"
	"testing"

	"github.com/wippyai/assetripper/binary"
	cerrors "github.com/wippyai/assetripper/errors"
	"github.com/wippyai/assetripper/version"
)

func TestPPtrWidthByVersion(t *testing.T) {
	tests := []struct {
		version string
		size    int
	}{
		{"4.7.2", 8},
		{"5.0.0", 12},
		{"2018.1.0", 12},
	}

	for _, tt := range tests {
		v := version.MustParse(tt.version)
		w := binary.NewWriter(v)
		p := PPtr{FileIndex: 2, PathID: -5}
		p.Write(w)
		if w.Len() != tt.size {
			t.Errorf("%s: size %d, want %d", tt.version, w.Len(), tt.size)
		}

		got, err := ReadPPtr(binary.NewReader(w.Bytes(), v))
		if err != nil {
			t.Fatalf("%s: %v", tt.version, err)
		}
		if got != p {
			t.Errorf("%s: got %v, want %v", tt.version, got, p)
		}
	}
}

func TestPPtrReadBytes(t *testing.T) {
	data := []byte{1, 0, 0, 0, 0x10, 0, 0, 0, 0, 0, 0, 1}
	p, err := ReadPPtr(binary.NewReader(data, version.New(5, 6)))
	if err != nil {
		t.Fatal(err)
	}
	if p.FileIndex != 1 || p.PathID != 0x0100000000000010 {
		t.Errorf("got %v", p)
	}

	w := binary.NewWriter(version.New(5, 6))
	p.Write(w)
	if !bytes.Equal(w.Bytes(), data) {
		t.Errorf("write: got %v", w.Bytes())
	}
}

func TestPPtrTruncated(t *testing.T) {
	_, err := ReadPPtr(binary.NewReader([]byte{0, 0, 0, 0, 1, 0, 0, 0}, version.New(5)))
	if !cerrors.IsOutOfBounds(err) {
		t.Errorf("expected out_of_bounds, got %v", err)
	}
}

func TestPPtrIsNull(t *testing.T) {
	if !(PPtr{}).IsNull() {
		t.Error("zero pointer should be null")
	}
	if (PPtr{PathID: 1}).IsNull() {
		t.Error("pointer with path id is not null")
	}
}
