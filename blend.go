package fx

import (
	"fmt"
	"strings"

	"github.com/gogpu/gputypes"
	"golang.org/x/text/cases"
)

// BlendMode selects how drawing is composited onto the backdrop.
// The set covers the basic, PDF, and NextStep (Porter-Duff) modes.
type BlendMode uint8

// Basic modes.
const (
	BlendNormal BlendMode = iota
	BlendClear
	BlendCopy

	// PDF separable and non-separable modes.
	BlendMultiply
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendColorDodge
	BlendColorBurn
	BlendSoftLight
	BlendHardLight
	BlendDifference
	BlendExclusion
	BlendHue
	BlendSaturation
	BlendColor
	BlendLuminosity

	// NextStep compositing operators.
	BlendSourceIn
	BlendSourceOut
	BlendSourceAtop
	BlendDestinationOver
	BlendDestinationIn
	BlendDestinationOut
	BlendDestinationAtop
	BlendXor
	BlendPlusDarker
	BlendPlusLighter

	blendModeCount
)

var blendModeNames = [...]string{
	BlendNormal:          "normal",
	BlendClear:           "clear",
	BlendCopy:            "copy",
	BlendMultiply:        "multiply",
	BlendScreen:          "screen",
	BlendOverlay:         "overlay",
	BlendDarken:          "darken",
	BlendLighten:         "lighten",
	BlendColorDodge:      "color-dodge",
	BlendColorBurn:       "color-burn",
	BlendSoftLight:       "soft-light",
	BlendHardLight:       "hard-light",
	BlendDifference:      "difference",
	BlendExclusion:       "exclusion",
	BlendHue:             "hue",
	BlendSaturation:      "saturation",
	BlendColor:           "color",
	BlendLuminosity:      "luminosity",
	BlendSourceIn:        "source-in",
	BlendSourceOut:       "source-out",
	BlendSourceAtop:      "source-atop",
	BlendDestinationOver: "destination-over",
	BlendDestinationIn:   "destination-in",
	BlendDestinationOut:  "destination-out",
	BlendDestinationAtop: "destination-atop",
	BlendXor:             "xor",
	BlendPlusDarker:      "plus-darker",
	BlendPlusLighter:     "plus-lighter",
}

// blendLookup maps normalized names to modes.
var blendLookup = func() map[string]BlendMode {
	m := make(map[string]BlendMode, len(blendModeNames))
	for mode, name := range blendModeNames {
		m[normalizeBlendName(name)] = BlendMode(mode)
	}
	return m
}()

var blendNameStripper = strings.NewReplacer("_", "", "-", "", " ", "")

// normalizeBlendName strips '_', '-' and spaces and case-folds the rest,
// so "Color Dodge", "color_dodge" and "colordodge" are the same key.
func normalizeBlendName(name string) string {
	return cases.Fold().String(blendNameStripper.Replace(name))
}

// ParseBlendMode resolves a blend mode name. Unknown names fail with a
// *ValueError listing every valid name.
func ParseBlendMode(name string) (BlendMode, error) {
	if mode, ok := blendLookup[normalizeBlendName(name)]; ok {
		return mode, nil
	}
	return BlendNormal, &ValueError{
		Attr:   "blend",
		Value:  fmt.Sprintf("%q", name),
		Reason: "not a recognized blend mode; use one of: " + strings.Join(blendModeNames[:], ", "),
	}
}

// BlendModes returns every supported mode in declaration order.
func BlendModes() []BlendMode {
	modes := make([]BlendMode, blendModeCount)
	for i := range modes {
		modes[i] = BlendMode(i)
	}
	return modes
}

// Valid reports whether m is one of the declared modes.
func (m BlendMode) Valid() bool {
	return m < blendModeCount
}

// String returns the canonical hyphenated name.
func (m BlendMode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("BlendMode(%d)", uint8(m))
	}
	return blendModeNames[m]
}

// GPUBlendState returns the fixed-function blend state implementing m for
// premultiplied colors. It reports false for modes that need a shader
// (the separable and non-separable PDF modes, and plus-darker).
func (m BlendMode) GPUBlendState() (gputypes.BlendState, bool) {
	var src, dst gputypes.BlendFactor
	switch m {
	case BlendNormal:
		src, dst = gputypes.BlendFactorOne, gputypes.BlendFactorOneMinusSrcAlpha
	case BlendClear:
		src, dst = gputypes.BlendFactorZero, gputypes.BlendFactorZero
	case BlendCopy:
		src, dst = gputypes.BlendFactorOne, gputypes.BlendFactorZero
	case BlendSourceIn:
		src, dst = gputypes.BlendFactorDstAlpha, gputypes.BlendFactorZero
	case BlendSourceOut:
		src, dst = gputypes.BlendFactorOneMinusDstAlpha, gputypes.BlendFactorZero
	case BlendSourceAtop:
		src, dst = gputypes.BlendFactorDstAlpha, gputypes.BlendFactorOneMinusSrcAlpha
	case BlendDestinationOver:
		src, dst = gputypes.BlendFactorOneMinusDstAlpha, gputypes.BlendFactorOne
	case BlendDestinationIn:
		src, dst = gputypes.BlendFactorZero, gputypes.BlendFactorSrcAlpha
	case BlendDestinationOut:
		src, dst = gputypes.BlendFactorZero, gputypes.BlendFactorOneMinusSrcAlpha
	case BlendDestinationAtop:
		src, dst = gputypes.BlendFactorOneMinusDstAlpha, gputypes.BlendFactorSrcAlpha
	case BlendXor:
		src, dst = gputypes.BlendFactorOneMinusDstAlpha, gputypes.BlendFactorOneMinusSrcAlpha
	case BlendPlusLighter:
		src, dst = gputypes.BlendFactorOne, gputypes.BlendFactorOne
	default:
		return gputypes.BlendState{}, false
	}
	comp := gputypes.BlendComponent{
		SrcFactor: src,
		DstFactor: dst,
		Operation: gputypes.BlendOperationAdd,
	}
	return gputypes.BlendState{Color: comp, Alpha: comp}, true
}
