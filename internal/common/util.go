package common

// WipeByteArray overwrites b with zeros. Used for plaintext passwords once
// they have been hashed or compared. A nil slice is ignored.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
