package core

import (
	pep440 "github.com/aquasecurity/go-pep440-version"
)

// versionCache memoizes parsed card versions for a single dependency check.
type versionCache struct {
	parsed map[string]pep440.Version
}

func newVersionCache() *versionCache {
	return &versionCache{parsed: map[string]pep440.Version{}}
}

func (c *versionCache) version(value string) (pep440.Version, error) {
	if parsed, ok := c.parsed[value]; ok {
		return parsed, nil
	}
	parsed, err := pep440.Parse(value)
	if err != nil {
		return pep440.Version{}, err
	}
	c.parsed[value] = parsed
	return parsed, nil
}

// satisfies reports whether installed meets minimum. Versions that cannot
// be parsed, on either side, are accepted: registries often report
// arbitrary build strings and a present element is usually usable.
func (c *versionCache) satisfies(installed string, minimum string) bool {
	if minimum == "" || installed == "" {
		return true
	}
	have, err := c.version(installed)
	if err != nil {
		return true
	}
	want, err := c.version(minimum)
	if err != nil {
		return true
	}
	return have.Compare(want) >= 0
}
