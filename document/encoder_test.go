package document

import (
	"bytes"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func sampleBody() *Node {
	body := NewMapping()
	body.AddSerializedVersion(2)
	body.AddString("m_Name", "")
	body.AddString("m_Code", "Shader \"Hidden/X\" {\n}\n")
	body.AddBool("m_FromOther", false)
	body.Add("m_Variants", StringArrayArray([][]string{{"FOG_EXP", "FOG_LINEAR"}, {}}))
	body.Add("m_Empty", NewSequence())

	info := NewMapping()
	info.AddString("keywordName", "SHADOWS_SOFT")
	info.AddUint("requirements", 227)
	body.Add("m_KeywordTargetInfo", NewSequence(info))

	hash := NewMapping()
	hash.AddSerializedVersion(2)
	hash.AddString("Hash", "000102030405060708090a0b0c0d0e0f")
	body.Add("m_Hash", hash)

	ptr := NewFlowMapping()
	ptr.AddInt("fileID", 0)
	body.Add("m_Asset", ptr)
	body.AddString("m_Path", "Assets/a: b.shader")
	return body
}

func TestEncoderGolden(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	if err := enc.Encode(&Document{ClassID: 48, PathID: 4800000, Root: "Shader", Body: sampleBody()}); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}

	want := "%YAML 1.1\n" +
		"%TAG !u! tag:unity3d.com,2011:\n" +
		"--- !u!48 &4800000\n" +
		"Shader:\n" +
		"  serializedVersion: 2\n" +
		"  m_Name: \n" +
		"  m_Code: \"Shader \\\"Hidden/X\\\" {\\n}\\n\"\n" +
		"  m_FromOther: 0\n" +
		"  m_Variants:\n" +
		"  - - FOG_EXP\n" +
		"    - FOG_LINEAR\n" +
		"  - []\n" +
		"  m_Empty: []\n" +
		"  m_KeywordTargetInfo:\n" +
		"  - keywordName: SHADOWS_SOFT\n" +
		"    requirements: 227\n" +
		"  m_Hash:\n" +
		"    serializedVersion: 2\n" +
		"    Hash: 000102030405060708090a0b0c0d0e0f\n" +
		"  m_Asset: {fileID: 0}\n" +
		"  m_Path: 'Assets/a: b.shader'\n"

	if got := buf.String(); got != want {
		t.Errorf("output mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncoderHeaderOnce(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	for i := 0; i < 2; i++ {
		if err := enc.Encode(&Document{ClassID: 1, PathID: int64(i + 1), Root: "GameObject"}); err != nil {
			t.Fatal(err)
		}
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if strings.Count(out, "%YAML 1.1") != 1 {
		t.Errorf("header written more than once:\n%s", out)
	}
	if !strings.Contains(out, "--- !u!1 &2\nGameObject: {}\n") {
		t.Errorf("second document missing:\n%s", out)
	}
}

func TestEncoderStripped(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	if err := enc.Encode(&Document{ClassID: 4, PathID: 9, Root: "Transform", Stripped: true}); err != nil {
		t.Fatal(err)
	}
	enc.Close()
	if !strings.Contains(buf.String(), "--- !u!4 &9 stripped\n") {
		t.Errorf("stripped marker missing:\n%s", buf.String())
	}
}

// The engine dialect must stay parseable by a standard YAML reader and
// carry the same values back.
func TestEncoderParsesBack(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	if err := enc.Encode(&Document{ClassID: 48, PathID: 1, Root: "Shader", Body: sampleBody()}); err != nil {
		t.Fatal(err)
	}
	enc.Close()

	var doc yaml.Node
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("yaml.v3 rejected output: %v\n%s", err, buf.String())
	}
	root := doc.Content[0]
	if root.Tag != "tag:unity3d.com,2011:48" {
		t.Errorf("tag: got %q", root.Tag)
	}

	var body struct {
		Code     string     `yaml:"m_Code"`
		Name     string     `yaml:"m_Name"`
		Variants [][]string `yaml:"m_Variants"`
		Path     string     `yaml:"m_Path"`
		Infos    []struct {
			Name string `yaml:"keywordName"`
			Req  uint32 `yaml:"requirements"`
		} `yaml:"m_KeywordTargetInfo"`
	}
	if err := root.Content[1].Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Code != "Shader \"Hidden/X\" {\n}\n" {
		t.Errorf("code: got %q", body.Code)
	}
	if body.Name != "" {
		t.Errorf("name: got %q", body.Name)
	}
	if len(body.Variants) != 2 || body.Variants[0][1] != "FOG_LINEAR" || len(body.Variants[1]) != 0 {
		t.Errorf("variants: got %v", body.Variants)
	}
	if body.Path != "Assets/a: b.shader" {
		t.Errorf("path: got %q", body.Path)
	}
	if len(body.Infos) != 1 || body.Infos[0].Req != 227 {
		t.Errorf("infos: got %+v", body.Infos)
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"FOG_EXP FOG_EXP2 FOG_LINEAR", "FOG_EXP FOG_EXP2 FOG_LINEAR"},
		{"-x", "'-x'"},
		{"it's: here", "'it''s: here'"},
		{" lead", "' lead'"},
		{"a\tb", `"a\tb"`},
		{"bell\x07", `"bell\x07"`},
		{"bad\xff", `"bad\xFF"`},
		{"Assets/x.shader", "Assets/x.shader"},
	}

	for _, tt := range tests {
		if got := quote(tt.in); got != tt.want {
			t.Errorf("quote(%q): got %s, want %s", tt.in, got, tt.want)
		}
	}
}

// Raw bytes escape as \xNN, which YAML reads back as code point U+00NN.
// Only the binary round trip preserves invalid UTF-8.
func TestInvalidUTF8ReadsBackAsCodePoints(t *testing.T) {
	raw := "bad\xff"
	var m map[string]string
	if err := yaml.Unmarshal([]byte("v: "+quote(raw)+"\n"), &m); err != nil {
		t.Fatal(err)
	}
	if got := m["v"]; got != "bad\u00ff" {
		t.Errorf("got %q", got)
	}
	if m["v"] == raw {
		t.Error("escaped bytes should not read back as raw bytes")
	}
}

func TestEncodePlain(t *testing.T) {
	var buf bytes.Buffer
	body := NewMapping()
	body.AddString("m_Code", "123")
	body.AddInt("m_StartLine", 5)
	body.Add("m_List", NewSequence())
	if err := EncodePlain(&buf, &Document{Root: "ShaderSnippet", Body: body}); err != nil {
		t.Fatal(err)
	}

	var out map[string]map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("%v\n%s", err, buf.String())
	}
	snippet := out["ShaderSnippet"]
	if snippet["m_Code"] != "123" {
		t.Errorf("string scalar lost its type: %#v", snippet["m_Code"])
	}
	if snippet["m_StartLine"] != 5 {
		t.Errorf("int scalar: %#v", snippet["m_StartLine"])
	}
	if list, ok := snippet["m_List"].([]any); !ok || len(list) != 0 {
		t.Errorf("empty list: %#v", snippet["m_List"])
	}
}
