package contacts

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// SeedContact is one entry of a seed file
type SeedContact struct {
	Name     string `yaml:"name"`
	Phone    string `yaml:"phone"`
	Birthday string `yaml:"birthday"`
}

type seedFile struct {
	Contacts []SeedContact `yaml:"contacts"`
}

// LoadSeedFile builds a directory from the YAML file at path.
// An empty path yields an empty directory.
func LoadSeedFile(path string, policy BirthdayPolicy, logger *zap.Logger) (*Directory, error) {
	if path == "" {
		return NewDirectory(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	dir, err := LoadSeed(f, policy)
	if err != nil {
		return nil, fmt.Errorf("failed to load seed file %s: %w", path, err)
	}

	logger.Info("Seed contacts loaded",
		zap.String("file", path),
		zap.Int("contacts", dir.Len()))

	return dir, nil
}

// LoadSeed decodes a YAML document of the form
//
//	contacts:
//	  - name: Jhon
//	    phone: "0988285400"
//	    birthday: 27.10.1955
//
// into a new directory. The birthday is optional.
func LoadSeed(r io.Reader, policy BirthdayPolicy) (*Directory, error) {
	var doc seedFile
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to parse seed: %w", err)
	}

	dir := NewDirectory()
	for i, c := range doc.Contacts {
		rec, err := NewRecord(c.Name, c.Phone, WithBirthdayPolicy(policy))
		if err != nil {
			return nil, fmt.Errorf("contact #%d: %w", i+1, err)
		}
		if c.Birthday != "" {
			if err := rec.SetBirthday(c.Birthday); err != nil {
				return nil, fmt.Errorf("contact #%d: %w", i+1, err)
			}
		}
		if err := dir.Add(rec); err != nil {
			return nil, fmt.Errorf("contact #%d: %w", i+1, err)
		}
	}
	return dir, nil
}
