// Package binary implements the little-endian wire primitives shared by
// every asset record: fixed-width integers, byte booleans, length-prefixed
// strings, count-prefixed arrays and explicit alignment.
//
// A Reader works over a fully buffered byte slice and carries the format
// version the bytes were written with. Records consult Reader.Version to
// decide which fields are present. Every read is bounds checked; reading
// past the end of the buffer returns an out_of_bounds error from the errors
// package and never yields partial data.
//
// Alignment is explicit and schema driven. Align(4) rounds the position,
// measured from the reader's origin, up to the next multiple of four,
// skipping padding on read and writing zeros on write:
//
//	r := binary.NewReader(data, v)
//	fromOther, err := r.ReadBool()
//	if err != nil {
//	    return err
//	}
//	if err := r.Align4(); err != nil {
//	    return err
//	}
package binary
