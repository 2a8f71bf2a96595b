package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ElevatedRoles is the set of global roles that bypass per-project
// membership checks. It is an explicit allowlist, checked before any
// membership lookup, so the bypass stays auditable.
type ElevatedRoles map[string]bool

// DefaultElevatedRoles returns the built-in elevated set.
func DefaultElevatedRoles() ElevatedRoles {
	return ElevatedRoles{
		"admin":     true,
		"superuser": true,
	}
}

type rolesFile struct {
	ElevatedRoles []string `yaml:"elevated_roles"`
}

// LoadElevatedRoles reads the elevated-role set from a YAML file, falling
// back to the defaults when path is empty. The file replaces the set
// rather than extending it, so removing a role from the file removes the
// bypass.
func LoadElevatedRoles(path string) (ElevatedRoles, error) {
	if path == "" {
		return DefaultElevatedRoles(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roles file: %w", err)
	}

	var parsed rolesFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse roles file: %w", err)
	}
	if len(parsed.ElevatedRoles) == 0 {
		return nil, fmt.Errorf("roles file %s defines no elevated roles", path)
	}

	roles := make(ElevatedRoles, len(parsed.ElevatedRoles))
	for _, role := range parsed.ElevatedRoles {
		roles[role] = true
	}
	return roles, nil
}
