// Package common provides small helpers shared by the client layers.
package common

// WipeByteArray overwrites the contents of the provided byte slice with
// zeros. Screens use it to remove passwords from memory once a submission
// has finished.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
