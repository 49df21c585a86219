// Package config loads custom particle tables from INI files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	ini "gopkg.in/ini.v1"

	"kosa/internal/particle"
)

// LoadParticles reads extra particle definitions, one section per particle:
//
//	[idu]
//	with_coda    = 이두
//	without_coda = 두
//	default      = 이(두)   ; optional, derived when absent
//	rieul        = true     ; optional ㄹ-coda exception
//
// A missing file yields no particles. The caller appends the result to the
// builtin table; clashing surface forms surface as a DuplicateFormError when
// the registry is built.
func LoadParticles(path string) ([]particle.Particle, error) {
	if path == "" {
		return nil, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("particle table: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("particle table: %s is a directory", path)
	}

	file, err := ini.Load(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("particle table: %w", err)
	}

	var particles []particle.Particle
	for _, section := range file.Sections() {
		if section.Name() == ini.DefaultSection {
			continue
		}
		withCoda := section.Key("with_coda").String()
		withoutCoda := section.Key("without_coda").String()
		if withCoda == "" || withoutCoda == "" {
			return nil, fmt.Errorf("particle table: section %q needs with_coda and without_coda", section.Name())
		}

		var p particle.Particle
		if def := section.Key("default").String(); def != "" {
			p = particle.NewWithDefault(withCoda, withoutCoda, def)
		} else {
			p = particle.New(withCoda, withoutCoda)
		}
		if section.Key("rieul").MustBool(false) {
			p.Rule = particle.RuleDirectional
		}
		particles = append(particles, p)
	}
	return particles, nil
}
