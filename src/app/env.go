package app

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/Blackdeer1524/joaat/src/joaat"
	"github.com/Blackdeer1524/joaat/src/pkg/utils"
)

const (
	EnvDev  = "dev"
	EnvProd = "prod"

	envPrefix = "JOAAT"
)

type Env struct {
	Environment string `envconfig:"ENVIRONMENT" default:"prod"`

	ServerHost string `envconfig:"SERVER_HOST" default:"localhost"`
	ServerPort int    `envconfig:"SERVER_PORT" default:"8080"`

	// Workers is the search pool size; 0 means GOMAXPROCS.
	Workers int `envconfig:"WORKERS" default:"0"`
	// MaxLength caps the input length the HTTP API will search for.
	MaxLength int    `envconfig:"MAX_LENGTH" default:"8"`
	Alphabet  string `envconfig:"ALPHABET" default:"alphanumeric"`
	// ParallelTargets bounds how many targets the CLI searches at once.
	ParallelTargets int `envconfig:"PARALLEL_TARGETS" default:"1"`
}

// LoadEnv reads an optional .env file and then the process environment.
func LoadEnv(dotenv ...string) (Env, error) {
	var env Env

	if err := godotenv.Load(dotenv...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return env, fmt.Errorf("LoadEnv godotenv.Load: %w", err)
	}

	if err := envconfig.Process(envPrefix, &env); err != nil {
		return env, fmt.Errorf("LoadEnv envconfig.Process: %w", err)
	}

	if err := env.validate(); err != nil {
		return env, err
	}

	return env, nil
}

func mustLoadEnv(dotenv ...string) Env {
	return utils.Must(LoadEnv(dotenv...))
}

func (e Env) validate() error {
	if e.Environment != EnvDev && e.Environment != EnvProd {
		return fmt.Errorf("unknown environment %q", e.Environment)
	}

	if e.MaxLength < 1 {
		return fmt.Errorf("max length: %w", joaat.ErrInvalidLength)
	}

	if e.ParallelTargets < 1 {
		return fmt.Errorf("parallel targets must be positive, got %d", e.ParallelTargets)
	}

	if _, err := joaat.ResolveAlphabet(e.Alphabet); err != nil {
		return fmt.Errorf("alphabet %q: %w", e.Alphabet, err)
	}

	return nil
}

func (e Env) SearchAlphabet() joaat.Alphabet {
	return utils.Must(joaat.ResolveAlphabet(e.Alphabet))
}
