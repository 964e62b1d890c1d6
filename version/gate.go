package version

// Gate decides whether a field is present for a version.
type Gate func(Version) bool

// Revision maps a version to an export-time schema revision. It tags
// exported documents and never affects the binary layout.
type Revision func(Version) int

// Always is present in every version.
func Always(Version) bool { return true }

// Never is present in no version.
func Never(Version) bool { return false }

// AtLeast is present from major.minor.build onwards (inclusive).
func AtLeast(major int, rest ...int) Gate {
	lo := New(major, rest...)
	return func(v Version) bool {
		return v.Compare(lo) >= 0
	}
}

// Below is present strictly before major.minor.build.
func Below(major int, rest ...int) Gate {
	hi := New(major, rest...)
	return func(v Version) bool {
		return v.Compare(hi) < 0
	}
}

// Between is present in [lo, hi).
func Between(lo, hi Version) Gate {
	return func(v Version) bool {
		return v.Compare(lo) >= 0 && v.Compare(hi) < 0
	}
}

// And is present when both g and o are.
func (g Gate) And(o Gate) Gate {
	return func(v Version) bool {
		return g(v) && o(v)
	}
}

// Or is present when either g or o is.
func (g Gate) Or(o Gate) Gate {
	return func(v Version) bool {
		return g(v) || o(v)
	}
}

// Not inverts g.
func (g Gate) Not() Gate {
	return func(v Version) bool {
		return !g(v)
	}
}

// Present evaluates g, treating a nil gate as Always.
func (g Gate) Present(v Version) bool {
	if g == nil {
		return true
	}
	return g(v)
}
