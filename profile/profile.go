// Package profile loads the disassembler configuration.
package profile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/simplewhp/disasm-ami/disassembler"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDisassembler = "ndisasm"
	DefaultBinary       = "ndisasm"
	DefaultBits         = 16
)

// Profile describes which disassembler to run and how.
type Profile struct {
	Disassembler string   `yaml:"disassembler"`
	Binary       string   `yaml:"binary"`
	Bits         int      `yaml:"bits"`
	Origin       uint64   `yaml:"origin"`
	Skip         uint64   `yaml:"skip"`
	Args         []string `yaml:"args"`
}

// Default returns the profile used when no config file is given:
// ndisasm in 16-bit mode.
func Default() *Profile {
	return &Profile{
		Disassembler: DefaultDisassembler,
		Binary:       DefaultBinary,
		Bits:         DefaultBits,
	}
}

// LoadProfile loads a profile from a YAML file. Fields absent from the file
// keep their default values.
func LoadProfile(filename string) (*Profile, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open profile: %w", err)
	}
	defer file.Close()

	prof := Default()
	if err := yaml.NewDecoder(file).Decode(prof); err != nil {
		// an empty file means all defaults
		if !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse profile: %w", err)
		}
	}
	if err := prof.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", filename, err)
	}
	return prof, nil
}

// Validate checks the addressing mode and backend name.
func (p *Profile) Validate() error {
	switch p.Bits {
	case 16, 32, 64:
	default:
		return fmt.Errorf("bits must be 16, 32 or 64, got %d", p.Bits)
	}
	typ, err := disassembler.ParseType(p.Disassembler)
	if err != nil {
		return err
	}
	if typ == disassembler.TypeNdisasm && p.Binary == "" {
		return errors.New("binary must be set for ndisasm")
	}
	return nil
}
