package smtlib2

import "gopkg.in/yaml.v3"

// Config selects the solver backends queried by Check and the SMT-LIB2
// timeout option embedded in the session preamble. The zero value enables
// nothing; a Check with no enabled backend yields an Error verdict.
type Config struct {
	Z3   bool `yaml:"z3"`
	CVC4 bool `yaml:"cvc4"`

	// QueryTimeoutMS is emitted once as (set-option :timeout) in the session
	// preamble and interpreted by the solver process. Zero omits the option.
	QueryTimeoutMS int `yaml:"query-timeout-ms"`
}

// DefaultConfig enables every known backend.
func DefaultConfig() Config {
	return Config{Z3: true, CVC4: true}
}

// ParseConfig reads a Config from YAML data.
func ParseConfig(data []byte) (Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, err
	}
	return config, nil
}

// SolverCommands returns the invocation string of each enabled backend, in
// the fixed order backends are queried.
func (c Config) SolverCommands() []string {
	var commands []string
	if c.Z3 {
		commands = append(commands, "z3 rlimit=1000000")
	}
	if c.CVC4 {
		commands = append(commands, "cvc4")
	}
	return commands
}
