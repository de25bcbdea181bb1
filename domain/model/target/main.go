package target

import (
	"github.com/rotisserie/eris"
	"strings"
)

// Mode selects which ignore file receives new patterns.
type Mode string

const (
	// Auto appends to .stignore_sync when .stignore includes it, otherwise to .stignore.
	Auto         Mode = "auto"
	Stignore     Mode = "stignore"
	StignoreSync Mode = "stignore_sync"
)

func GetModes() []Mode {
	return []Mode{Auto, Stignore, StignoreSync}
}

func ParseMode(s string) (Mode, error) {
	for _, m := range GetModes() {
		if string(m) == s {
			return m, nil
		}
	}
	return "", eris.Errorf("invalid target %q (expected one of %s)", s, modeList())
}

func modeList() string {
	names := make([]string, 0, len(GetModes()))
	for _, m := range GetModes() {
		names = append(names, string(m))
	}
	return strings.Join(names, ", ")
}

// String, Set and Type make *Mode usable as a pflag.Value.
func (m *Mode) String() string {
	return string(*m)
}

func (m *Mode) Set(s string) error {
	parsed, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m *Mode) Type() string {
	return "target"
}
