// Package version models engine release numbers and the presence gates
// that select a record's binary layout.
//
// A Version is an ordered (major, minor, build) triple. Release suffixes
// such as the "f2" in "2018.1.0f2" are accepted by Parse and dropped; they
// never take part in ordering.
//
// A Gate is a pure predicate over a Version. Record schemas attach one gate
// to every conditionally present field:
//
//	version.AtLeast(5, 4)                          // 5.4.0 and greater
//	version.Below(5, 6)                            // less than 5.6.0
//	version.Between(version.New(5), version.New(5, 6)) // [5.0.0, 5.6.0)
//	version.Below(5, 6).And(version.Below(5))
//
// Lower bounds are inclusive and upper bounds exclusive. Gates never look
// at decoded values, only at the version, so the same gate evaluated for the
// same version always yields the same answer.
package version
