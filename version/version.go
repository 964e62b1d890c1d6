package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is an engine release number.
type Version struct {
	Major int
	Minor int
	Build int
}

// New builds a Version. Omitted components are zero.
func New(major int, rest ...int) Version {
	v := Version{Major: major}
	if len(rest) > 0 {
		v.Minor = rest[0]
	}
	if len(rest) > 1 {
		v.Build = rest[1]
	}
	return v
}

// Parse reads "major[.minor[.build]]" with an optional release suffix
// ("2018.1.0f2", "5.6.3p1"). The suffix is discarded.
func Parse(s string) (Version, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Version{}, fmt.Errorf("version: empty string")
	}
	parts := strings.Split(s, ".")
	if len(parts) > 3 {
		return Version{}, fmt.Errorf("version: too many components in %q", s)
	}

	var nums [3]int
	for i, part := range parts {
		if i == len(parts)-1 {
			part = trimRelease(part)
		}
		if part == "" {
			return Version{}, fmt.Errorf("version: empty component in %q", s)
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("version: invalid component %q in %q", part, s)
		}
		nums[i] = n
	}
	return Version{Major: nums[0], Minor: nums[1], Build: nums[2]}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// trimRelease strips a release suffix like "f2" or "p1" from the last
// numeric component.
func trimRelease(part string) string {
	for i := 0; i < len(part); i++ {
		switch part[i] {
		case 'a', 'b', 'f', 'p', 'x':
			if i == 0 {
				return part
			}
			return part[:i]
		}
	}
	return part
}

// Compare returns -1, 0 or 1 comparing v with o lexicographically.
func (v Version) Compare(o Version) int {
	switch {
	case v.Major != o.Major:
		return sign(v.Major - o.Major)
	case v.Minor != o.Minor:
		return sign(v.Minor - o.Minor)
	default:
		return sign(v.Build - o.Build)
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

// Less reports whether v orders before o.
func (v Version) Less(o Version) bool {
	return v.Compare(o) < 0
}

// GreaterEqual reports whether v >= major.minor.build.
func (v Version) GreaterEqual(major int, rest ...int) bool {
	return v.Compare(New(major, rest...)) >= 0
}

// IsLess reports whether v < major.minor.build.
func (v Version) IsLess(major int, rest ...int) bool {
	return v.Compare(New(major, rest...)) < 0
}

// IsZero reports whether v is the zero Version, which no engine release uses.
func (v Version) IsZero() bool {
	return v == Version{}
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Build)
}
