package alphablend

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Mode is a Porter-Duff compositing operator.
//
// The set is closed. Values outside it composite like Clear.
type Mode uint8

const (
	// Porter-Duff modes (standard compositing operators)
	Clear           Mode = iota // Result: 0
	Source                      // Result: S
	Destination                 // Result: D
	SourceOver                  // Result: S + D*(1-Sa)
	DestinationOver             // Result: S*(1-Da) + D
	SourceIn                    // Result: S*Da
	DestinationIn               // Result: D*Sa
	SourceOut                   // Result: S*(1-Da)
	DestinationOut              // Result: D*(1-Sa)
	SourceAtop                  // Result: S*Da + D*(1-Sa)
	DestinationAtop             // Result: S*(1-Da) + D*Sa
	Xor                         // Result: S*(1-Da) + D*(1-Sa)
	Plus                        // Result: min(S + D, 1)

	modeCount = int(Plus) + 1
)

// factor is one of the alpha terms a Porter-Duff coefficient can take.
type factor uint8

const (
	factorZero factor = iota
	factorOne
	factorSrcAlpha
	factorDstAlpha
	factorOneMinusSrcAlpha
	factorOneMinusDstAlpha
)

// eval returns the factor's value for normalized source and destination
// alpha.
func (f factor) eval(sa, da float32) float32 {
	switch f {
	case factorOne:
		return 1
	case factorSrcAlpha:
		return sa
	case factorDstAlpha:
		return da
	case factorOneMinusSrcAlpha:
		return 1 - sa
	case factorOneMinusDstAlpha:
		return 1 - da
	default:
		return 0
	}
}

// modeFactors is the coefficient table: (Fa, Fb) per mode.
var modeFactors = [modeCount][2]factor{
	Clear:           {factorZero, factorZero},
	Source:          {factorOne, factorZero},
	Destination:     {factorZero, factorOne},
	SourceOver:      {factorOne, factorOneMinusSrcAlpha},
	DestinationOver: {factorOneMinusDstAlpha, factorOne},
	SourceIn:        {factorDstAlpha, factorZero},
	DestinationIn:   {factorZero, factorSrcAlpha},
	SourceOut:       {factorOneMinusDstAlpha, factorZero},
	DestinationOut:  {factorZero, factorOneMinusSrcAlpha},
	SourceAtop:      {factorDstAlpha, factorOneMinusSrcAlpha},
	DestinationAtop: {factorOneMinusDstAlpha, factorSrcAlpha},
	Xor:             {factorOneMinusDstAlpha, factorOneMinusSrcAlpha},
	Plus:            {factorOne, factorOne},
}

var modeNames = [modeCount]string{
	Clear:           "Clear",
	Source:          "Source",
	Destination:     "Destination",
	SourceOver:      "SourceOver",
	DestinationOver: "DestinationOver",
	SourceIn:        "SourceIn",
	DestinationIn:   "DestinationIn",
	SourceOut:       "SourceOut",
	DestinationOut:  "DestinationOut",
	SourceAtop:      "SourceAtop",
	DestinationAtop: "DestinationAtop",
	Xor:             "Xor",
	Plus:            "Plus",
}

// Modes returns every mode in declaration order.
func Modes() []Mode {
	modes := make([]Mode, modeCount)
	for i := range modes {
		modes[i] = Mode(i)
	}
	return modes
}

// Valid reports whether m is one of the 13 defined modes.
func (m Mode) Valid() bool {
	return int(m) < modeCount
}

// String returns the mode name, e.g. "SourceOver".
func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
	return modeNames[m]
}

// factors returns the (Fa, Fb) terms; undefined modes behave as Clear.
func (m Mode) factors() (src, dst factor) {
	if !m.Valid() {
		return factorZero, factorZero
	}
	f := modeFactors[m]
	return f[0], f[1]
}

// Coefficients returns (Fa, Fb) for normalized source and destination alpha.
func (m Mode) Coefficients(sa, da float32) (fa, fb float32) {
	src, dst := m.factors()
	return src.eval(sa, da), dst.eval(sa, da)
}

// Apply blends two normalized float colors. It is shorthand for
// Blend(src, dst, m).
func (m Mode) Apply(src, dst RGBAF32) RGBAF32 {
	return Blend(src, dst, m)
}

// modeAliases maps folded, separator-free names to modes. Besides the Go
// names it accepts src/dst abbreviations and the HTML canvas
// globalCompositeOperation spellings.
var modeAliases = func() map[string]Mode {
	aliases := map[string]Mode{
		"src":         Source,
		"copy":        Source,
		"dst":         Destination,
		"srcover":     SourceOver,
		"dstover":     DestinationOver,
		"srcin":       SourceIn,
		"dstin":       DestinationIn,
		"srcout":      SourceOut,
		"dstout":      DestinationOut,
		"srcatop":     SourceAtop,
		"dstatop":     DestinationAtop,
		"lighter":     Plus,
		"pluslighter": Plus,
		"add":         Plus,
	}
	for m, name := range modeNames {
		aliases[foldModeName(name)] = Mode(m)
	}
	return aliases
}()

var modeNameSeparators = strings.NewReplacer("-", "", "_", "", " ", "")

// foldModeName case-folds name and strips separators.
func foldModeName(name string) string {
	// A Caser is stateful and must not be shared between goroutines.
	folded := cases.Fold().String(strings.TrimSpace(name))
	return modeNameSeparators.Replace(folded)
}

// ParseMode returns the mode with the given name. Matching ignores case and
// the separators '-', '_' and ' ', so "SourceOver", "source-over" and
// "src_over" are all accepted.
func ParseMode(name string) (Mode, error) {
	if m, ok := modeAliases[foldModeName(name)]; ok {
		return m, nil
	}
	return Clear, &UnknownModeError{Name: name}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("alphablend: cannot marshal %v", m)
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseMode.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
