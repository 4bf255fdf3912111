package helpers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

var ErrReadYaml = errors.New("failed to read config file")

// only the braced form is expanded; bcrypt hashes contain bare $ signs.
var envReference = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// LoadYamlFile decodes the YAML file at filepath over conf. ${VAR} references
// are expanded from the environment first, and unknown keys are rejected.
// An empty path leaves conf untouched.
func LoadYamlFile[T any](filepath string, conf *T) error {
	if filepath == "" {
		return nil
	}
	raw, err := os.ReadFile(filepath)
	if err != nil {
		return fmt.Errorf("%w '%s': %w", ErrReadYaml, filepath, err)
	}
	expanded := envReference.ReplaceAllFunc(raw, func(ref []byte) []byte {
		return []byte(os.Getenv(string(envReference.FindSubmatch(ref)[1])))
	})
	return DecodeYaml(bytes.NewReader(expanded), conf)
}

func DecodeYaml[T any](r io.Reader, conf *T) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err := dec.Decode(conf)
	switch {
	case errors.Is(err, io.EOF):
		return nil
	case err != nil:
		return fmt.Errorf("%w: %w", ErrReadYaml, err)
	}
	return nil
}
