package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wippyai/assetripper/asset"
	"github.com/wippyai/assetripper/asset/bundle"
	"github.com/wippyai/assetripper/asset/serialize"
	"github.com/wippyai/assetripper/config"
	"github.com/wippyai/assetripper/document"
	"github.com/wippyai/assetripper/version"
)

func writeRecord(t *testing.T, dir, name string, rec asset.Writable, v version.Version) string {
	t.Helper()
	data, err := asset.Encode(rec, v)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Version = "5.6.0"
	cfg.Log.Level = "error"
	return cfg
}

func TestRunUnityFormat(t *testing.T) {
	dir := t.TempDir()
	v := version.New(5, 6)
	a := writeRecord(t, dir, "a.bin", serialize.NewRectOffset(1, 2, 3, 4), v)
	b := writeRecord(t, dir, "b.bin", serialize.NewRectOffset(5, 6, 7, 8), v)

	var out bytes.Buffer
	opts := options{typeName: "RectOffset", format: "unity", classID: 114}
	failed, err := run(context.Background(), testConfig(), opts, []string{a, b}, &out)
	if err != nil || failed != 0 {
		t.Fatalf("failed=%d err=%v", failed, err)
	}
	got := out.String()
	if strings.Count(got, "%YAML 1.1") != 1 {
		t.Errorf("header should appear once:\n%s", got)
	}
	for _, want := range []string{"--- !u!114 &1\nRectOffset:\n  m_Left: 1\n", "--- !u!114 &2\nRectOffset:\n  m_Left: 5\n"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in\n%s", want, got)
		}
	}
}

func TestRunPlainFormat(t *testing.T) {
	dir := t.TempDir()
	a := writeRecord(t, dir, "a.bin", serialize.NewRectOffset(1, 2, 3, 4), version.New(5, 6))

	var out bytes.Buffer
	opts := options{typeName: "RectOffset", format: "plain"}
	if _, err := run(context.Background(), testConfig(), opts, []string{a}, &out); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out.String(), "%TAG") || !strings.Contains(out.String(), "m_Bottom: 4") {
		t.Errorf("plain output:\n%s", out.String())
	}
}

func TestRunDependencies(t *testing.T) {
	dir := t.TempDir()
	v := version.New(5, 6)
	info := writeRecord(t, dir, "info.bin", bundle.NewAssetInfo(0, 1, asset.PPtr{PathID: 2}), v)
	missing := writeRecord(t, dir, "missing.bin", bundle.NewAssetInfo(0, 1, asset.PPtr{PathID: 9}), v)

	var out bytes.Buffer
	opts := options{typeName: "AssetInfo", deps: true}
	if _, err := run(context.Background(), testConfig(), opts, []string{info, missing}, &out); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	if !strings.Contains(got, "AssetInfo.asset PPtr{file: 0, path: 2} -> AssetInfo") {
		t.Errorf("resolved dependency missing:\n%s", got)
	}
	if !strings.Contains(got, "AssetInfo.asset PPtr{file: 0, path: 9} unresolved") {
		t.Errorf("unresolved dependency missing:\n%s", got)
	}
}

func TestRunCountsFailures(t *testing.T) {
	dir := t.TempDir()
	good := writeRecord(t, dir, "good.bin", serialize.NewRectOffset(0, 0, 0, 0), version.New(5, 6))
	bad := filepath.Join(dir, "bad.bin")
	if err := os.WriteFile(bad, []byte{1, 2, 3}, 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	failed, err := run(context.Background(), testConfig(), options{typeName: "RectOffset", format: "unity"}, []string{good, bad}, &out)
	if err != nil {
		t.Fatal(err)
	}
	if failed != 1 {
		t.Errorf("failed: %d", failed)
	}
	if !strings.Contains(out.String(), "&1") || strings.Contains(out.String(), "&2") {
		t.Errorf("only the good input should print:\n%s", out.String())
	}
}

func TestRunUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	a := writeRecord(t, dir, "a.bin", serialize.NewRectOffset(1, 2, 3, 4), version.New(5, 6))
	_, err := run(context.Background(), testConfig(), options{typeName: "RectOffset", format: "json"}, []string{a}, &bytes.Buffer{})
	if err == nil {
		t.Error("expected an error for an unknown format")
	}
}

func TestRunCBORFormat(t *testing.T) {
	dir := t.TempDir()
	a := writeRecord(t, dir, "a.bin", serialize.NewRectOffset(1, 2, 3, 4), version.New(5, 6))

	var out bytes.Buffer
	opts := options{typeName: "RectOffset", format: "cbor", classID: 114}
	if _, err := run(context.Background(), testConfig(), opts, []string{a}, &out); err != nil {
		t.Fatal(err)
	}
	docs, err := document.DecodeCBOR(&out)
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 1 || docs[0]["root"] != "RectOffset" {
		t.Fatalf("docs: %v", docs)
	}
	body := docs[0]["body"].(map[string]any)
	if body["m_Top"] != uint64(3) {
		t.Errorf("m_Top: %#v", body["m_Top"])
	}
}
