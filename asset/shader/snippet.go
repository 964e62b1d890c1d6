package shader

import (
	"fmt"
	"iter"

	"github.com/wippyai/assetripper/asset"
	"github.com/wippyai/assetripper/asset/serialize"
	"github.com/wippyai/assetripper/binary"
	"github.com/wippyai/assetripper/document"
	"github.com/wippyai/assetripper/version"
)

// Slots is the number of keyword variant arrays per kind.
const Slots = 6

// Layout gates.
var (
	hasHardwareTierMask = version.AtLeast(5, 4)
	hasStartLine        = version.AtLeast(5, 5)
	hasCodeHash         = version.AtLeast(2018)
	hasTarget           = version.Below(5, 6)
	targetFirst         = version.Below(5)
	hasIsGLSL           = version.Below(5, 5)
	hasLanguage         = version.AtLeast(5, 5)
	hasKeywordCombos    = version.Below(5)
	hasTargetVariants   = version.Between(version.New(5), version.New(5, 6))
	hasBaseRequirements = version.AtLeast(5, 6)
	hasKeywordStrings   = version.AtLeast(5)
)

// Export defaults for data written before the fields existed.
const (
	DefaultBaseRequirements        = 33
	DefaultNonStrippedUserKeywords = "FOG_EXP FOG_EXP2 FOG_LINEAR"
)

// revision is the exported serializedVersion. 2 marks the switch from the
// GLSL flag to the language enum.
var revision version.Revision = func(v version.Version) int {
	if v.GreaterEqual(5, 5) {
		return 2
	}
	return 1
}

type variantSlots [Slots][][]string

func (vs *variantSlots) slot(i int) [][]string {
	if i < 0 || i >= Slots {
		return nil
	}
	return vs[i]
}

type snippetFields struct {
	code             string
	assetPath        string
	platformMask     uint32
	hardwareTierMask uint32
	startLine        int32
	typesMask        uint32
	includesHash     serialize.Hash128
	codeHash         serialize.Hash128
	target           int32
	language         int32
	fromOther        bool

	keywordCombinations variantSlots
	variantsUser        variantSlots
	variantsBuiltin     variantSlots
	targetVariants      variantSlots

	baseRequirements        int32
	keywordTargetInfo       []KeywordTargetInfo
	nonStrippedUserKeywords string
	builtinKeywords         string
}

func slotSteps(format string, gate version.Gate, ref func(*snippetFields) *variantSlots) []asset.Step[snippetFields] {
	steps := make([]asset.Step[snippetFields], Slots)
	for i := range Slots {
		steps[i] = asset.StringArrayArrayField(fmt.Sprintf(format, i), gate,
			func(f *snippetFields) *[][]string { return &ref(f)[i] })
	}
	return steps
}

// isGLSL is the pre-5.5 boolean form of the language.
var isGLSL = asset.FieldIf("m_IsGLSL", hasIsGLSL,
	func(r *binary.Reader, f *snippetFields) error {
		glsl, err := r.ReadBool()
		if err != nil {
			return err
		}
		f.language = 0
		if glsl {
			f.language = 1
		}
		return nil
	},
	func(w *binary.Writer, f *snippetFields) error {
		w.WriteBool(f.language != 0)
		return nil
	})

var keywordTargetInfoField = asset.FieldIf("m_KeywordTargetInfo", hasBaseRequirements,
	func(r *binary.Reader, f *snippetFields) (err error) {
		f.keywordTargetInfo, err = binary.ReadArray(r, readKeywordTargetInfo)
		return err
	},
	func(w *binary.Writer, f *snippetFields) error {
		return binary.WriteArray(w, f.keywordTargetInfo, writeKeywordTargetInfo)
	})

var snippetSchema = asset.Schema[snippetFields]{
	Name: "ShaderSnippet",
	Steps: concat(
		[]asset.Step[snippetFields]{
			asset.StringField("m_Code", nil, func(f *snippetFields) *string { return &f.code }),
			asset.StringField("m_AssetPath", nil, func(f *snippetFields) *string { return &f.assetPath }),
			asset.Uint32Field("m_PlatformMask", nil, func(f *snippetFields) *uint32 { return &f.platformMask }),
			asset.Uint32Field("m_HardwareTierVariantsMask", hasHardwareTierMask, func(f *snippetFields) *uint32 { return &f.hardwareTierMask }),
			asset.Int32Field("m_StartLine", hasStartLine, func(f *snippetFields) *int32 { return &f.startLine }),
			asset.Uint32Field("m_TypesMask", nil, func(f *snippetFields) *uint32 { return &f.typesMask }),
			serialize.Hash128Field("m_IncludesHash", nil, func(f *snippetFields) *serialize.Hash128 { return &f.includesHash }),
			serialize.Hash128Field("m_CodeHash", hasCodeHash, func(f *snippetFields) *serialize.Hash128 { return &f.codeHash }),
			asset.Int32Field("m_Target", hasTarget.And(targetFirst), func(f *snippetFields) *int32 { return &f.target }),
			isGLSL,
			asset.BoolField("m_FromOther", nil, func(f *snippetFields) *bool { return &f.fromOther }),
			asset.Align[snippetFields]("m_FromOther"),
			asset.Int32Field("m_Language", hasLanguage, func(f *snippetFields) *int32 { return &f.language }),
			asset.Select("m_Variants",
				asset.Case(hasKeywordCombos,
					slotSteps("m_KeywordCombinations[%d]", nil, func(f *snippetFields) *variantSlots { return &f.keywordCombinations })...),
				asset.Otherwise(concat(
					slotSteps("m_VariantsUser%d", nil, func(f *snippetFields) *variantSlots { return &f.variantsUser }),
					slotSteps("m_VariantsBuiltin%d", nil, func(f *snippetFields) *variantSlots { return &f.variantsBuiltin }),
				)...),
			),
			asset.Int32Field("m_Target", hasTarget.And(targetFirst.Not()), func(f *snippetFields) *int32 { return &f.target }),
		},
		slotSteps("m_TargetVariants%d", hasTargetVariants, func(f *snippetFields) *variantSlots { return &f.targetVariants }),
		[]asset.Step[snippetFields]{
			asset.Int32Field("m_BaseRequirements", hasBaseRequirements, func(f *snippetFields) *int32 { return &f.baseRequirements }),
			keywordTargetInfoField,
			asset.StringField("m_NonStrippedUserKeywords", hasKeywordStrings, func(f *snippetFields) *string { return &f.nonStrippedUserKeywords }),
			asset.StringField("m_BuiltinKeywords", hasKeywordStrings, func(f *snippetFields) *string { return &f.builtinKeywords }),
		},
	),
}

func concat[T any](parts ...[]T) []T {
	var out []T
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// Layout returns the ShaderSnippet field names present at v, in stream
// order, with asset.AlignMarker at the alignment point.
func Layout(v version.Version) ([]string, error) {
	return snippetSchema.Layout(v)
}

// ShaderSnippet is one compiled program snippet of a shader. It is
// immutable once decoded.
type ShaderSnippet struct {
	f snippetFields
}

// ReadShaderSnippet decodes a snippet in the layout of r.Version().
func ReadShaderSnippet(r *binary.Reader) (*ShaderSnippet, error) {
	var f snippetFields
	if err := snippetSchema.Read(r, &f); err != nil {
		return nil, err
	}
	return &ShaderSnippet{f: f}, nil
}

// DecodeShaderSnippet is the asset.Decoder for ShaderSnippet.
func DecodeShaderSnippet(r *binary.Reader) (asset.Record, error) {
	return ReadShaderSnippet(r)
}

func (s *ShaderSnippet) TypeName() string { return snippetSchema.Name }

// Write encodes the snippet in the layout of w.Version(). Fields the
// layout lacks are skipped.
func (s *ShaderSnippet) Write(w *binary.Writer) error {
	return snippetSchema.Write(w, &s.f)
}

func (s *ShaderSnippet) Code() string                     { return s.f.code }
func (s *ShaderSnippet) AssetPath() string                { return s.f.assetPath }
func (s *ShaderSnippet) PlatformMask() uint32             { return s.f.platformMask }
func (s *ShaderSnippet) HardwareTierVariantsMask() uint32 { return s.f.hardwareTierMask }
func (s *ShaderSnippet) StartLine() int32                 { return s.f.startLine }
func (s *ShaderSnippet) TypesMask() uint32                { return s.f.typesMask }
func (s *ShaderSnippet) IncludesHash() serialize.Hash128  { return s.f.includesHash }
func (s *ShaderSnippet) CodeHash() serialize.Hash128      { return s.f.codeHash }
func (s *ShaderSnippet) Target() int32                    { return s.f.target }
func (s *ShaderSnippet) FromOther() bool                  { return s.f.fromOther }
func (s *ShaderSnippet) BaseRequirements() int32          { return s.f.baseRequirements }
func (s *ShaderSnippet) NonStrippedUserKeywords() string  { return s.f.nonStrippedUserKeywords }
func (s *ShaderSnippet) BuiltinKeywords() string          { return s.f.builtinKeywords }

// Language is the shader language. Before 5.5 it is 1 for GLSL and 0
// otherwise.
func (s *ShaderSnippet) Language() int32 { return s.f.language }

// KeywordTargetInfo returns the decoded keyword requirements. The slice
// must not be modified.
func (s *ShaderSnippet) KeywordTargetInfo() []KeywordTargetInfo { return s.f.keywordTargetInfo }

// KeywordCombinations returns slot i of the pre-5.0 keyword combinations,
// or nil when i is not in [0, Slots). Returned slices must not be modified.
func (s *ShaderSnippet) KeywordCombinations(i int) [][]string {
	return s.f.keywordCombinations.slot(i)
}

// VariantsUser returns user keyword variant slot i.
func (s *ShaderSnippet) VariantsUser(i int) [][]string { return s.f.variantsUser.slot(i) }

// VariantsBuiltin returns builtin keyword variant slot i.
func (s *ShaderSnippet) VariantsBuiltin(i int) [][]string { return s.f.variantsBuiltin.slot(i) }

// TargetVariants returns target variant slot i, present from 5.0 to 5.6.
func (s *ShaderSnippet) TargetVariants(i int) [][]string { return s.f.targetVariants.slot(i) }

// ExportDocument builds the snippet's document. The key set is the same
// for every version: fields absent at ctx.Version take the engine's
// defaults, and ctx.Target() picks the serializedVersion.
//
// The target, keyword combinations and target variants are not part of
// the document; the engine dropped them.
func (s *ShaderSnippet) ExportDocument(ctx *asset.ExportContext) *document.Node {
	src := ctx.Version
	f := &s.f

	n := document.NewMapping()
	n.AddSerializedVersion(revision(ctx.Target()))
	n.AddString("m_Code", f.code)
	n.AddString("m_AssetPath", f.assetPath)
	n.AddUint("m_PlatformMask", uint64(f.platformMask))
	n.AddUint("m_HardwareTierVariantsMask", uint64(f.hardwareTierMask))
	n.AddInt("m_StartLine", int64(f.startLine))
	n.AddUint("m_TypesMask", uint64(f.typesMask))
	n.Add("m_IncludesHash", f.includesHash.ExportDocument(ctx))
	n.Add("m_CodeHash", f.codeHash.ExportDocument(ctx))
	n.AddBool("m_FromOther", f.fromOther)
	n.AddInt("m_Language", int64(f.language))

	combos := hasKeywordCombos(src)
	for _, kind := range []struct {
		format string
		slots  *variantSlots
	}{
		{"m_VariantsUser%d", &f.variantsUser},
		{"m_VariantsBuiltin%d", &f.variantsBuiltin},
	} {
		for i := range Slots {
			var items [][]string
			if !combos {
				items = kind.slots[i]
			}
			n.Add(fmt.Sprintf(kind.format, i), document.StringArrayArray(items))
		}
	}

	if hasBaseRequirements(src) {
		n.AddInt("m_BaseRequirements", int64(f.baseRequirements))
		n.Add("m_KeywordTargetInfo", exportKeywordTargets(ctx, f.keywordTargetInfo))
	} else {
		n.AddInt("m_BaseRequirements", DefaultBaseRequirements)
		n.Add("m_KeywordTargetInfo", exportKeywordTargets(ctx, defaultKeywordTargets))
	}

	if hasKeywordStrings(src) {
		n.AddString("m_NonStrippedUserKeywords", f.nonStrippedUserKeywords)
		n.AddString("m_BuiltinKeywords", f.builtinKeywords)
	} else {
		n.AddString("m_NonStrippedUserKeywords", DefaultNonStrippedUserKeywords)
		n.AddString("m_BuiltinKeywords", "")
	}
	return n
}

// FetchDependencies yields nothing; snippets hold no references.
func (s *ShaderSnippet) FetchDependencies(asset.Lookup) iter.Seq[asset.Dependency] {
	return asset.None()
}
