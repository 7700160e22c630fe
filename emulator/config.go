package emulator

import (
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ezrec/mcsim/cpu"
	"github.com/ezrec/mcsim/memory"
)

const (
	MEMORY_SIZE = 4096 // Default shared memory size in bytes.
	CORE_COUNT  = 4    // Default number of cores.
)

// Config is the shape of the simulated machine.
type Config struct {
	MemorySize int `yaml:"memory_size"` // Shared memory size in bytes.
	Cores      int `yaml:"cores"`       // Number of cores.
	Registers  int `yaml:"registers"`   // Registers per core.
}

// DefaultConfig returns a 4 core, 4KiB, 32 register machine.
func DefaultConfig() Config {
	return Config{
		MemorySize: MEMORY_SIZE,
		Cores:      CORE_COUNT,
		Registers:  cpu.REGISTER_COUNT,
	}
}

// ParseConfig reads a YAML configuration. Omitted fields keep their
// default values.
func ParseConfig(input io.Reader) (cfg Config, err error) {
	cfg = DefaultConfig()

	dec := yaml.NewDecoder(input)
	dec.KnownFields(true)

	err = dec.Decode(&cfg)
	if errors.Is(err, io.EOF) {
		err = nil
	}
	if err != nil {
		return
	}

	err = cfg.Validate()
	return
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (cfg Config, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	return ParseConfig(inf)
}

// Validate checks that the configuration describes a usable machine.
func (cfg Config) Validate() (err error) {
	switch {
	case cfg.Cores <= 0:
		err = &ErrConfig{Field: "cores", Value: cfg.Cores}
	case cfg.Registers <= 0:
		err = &ErrConfig{Field: "registers", Value: cfg.Registers}
	case cfg.MemorySize <= 0 || cfg.MemorySize%(cfg.Cores*memory.WORD_SIZE) != 0:
		// Each core region must hold a whole number of words.
		err = &ErrConfig{Field: "memory_size", Value: cfg.MemorySize}
	}

	return
}

// CoreMemory returns the size of each core's nominal memory region.
func (cfg Config) CoreMemory() int {
	return cfg.MemorySize / cfg.Cores
}
