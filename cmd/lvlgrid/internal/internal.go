package internal

import (
	"fmt"
	"os"
	"unicode/utf8"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/skycoin/skycoin/src/util/logging"

	"github.com/katalvlaran/lvlgrid/grid"
	"github.com/katalvlaran/lvlgrid/vec"
)

var log = logging.MustGetLogger("lvlgrid")

// Catch handles errors for lvlgrid commands packages
func Catch(err error, msgs ...string) {
	if err != nil {
		if len(msgs) > 0 {
			log.Fatalln(append(msgs, err.Error()))
		} else {
			log.Fatalln(err)
		}
	}
}

// ParseRune parses a single-rune argument
func ParseRune(name, v string) rune {
	if utf8.RuneCountInString(v) != 1 {
		Catch(fmt.Errorf("want exactly one character, got %q", v), fmt.Sprintf("failed to parse <%s>:", name))
	}
	r, _ := utf8.DecodeRuneInString(v)
	return r
}

// ParsePos parses an "x,y" position
func ParsePos(name, v string) vec.Vec2 {
	var p vec.Vec2
	_, err := fmt.Sscanf(v, "%d,%d", &p.X, &p.Y)
	Catch(err, fmt.Sprintf("failed to parse <%s>:", name))
	return p
}

// LoadMap reads a text grid file (a leading ~ is expanded) into a rune Map
func LoadMap(path string, opts ...grid.ParseOption) *grid.Map[rune] {
	full, err := homedir.Expand(path)
	Catch(err, "failed to resolve map path:")

	data, err := os.ReadFile(full)
	Catch(err, "failed to read map:")

	m, err := grid.ParseMap(string(data), grid.Runes, opts...)
	Catch(err, fmt.Sprintf("failed to parse map %s:", full))

	log.WithField("file", full).WithField("dimensions", m.Dimensions()).Debug("Loaded map")
	return m
}

// RenderRunes formats a rune Map as text
func RenderRunes(m *grid.Map[rune]) string {
	return m.Format(func(r rune) string { return string(r) })
}
