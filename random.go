package bigint

import "io"

// random fills z from rand, interpreting the bytes as a little-endian
// encoding. The package only interprets the supplied bytes; the quality of
// the randomness is entirely the reader's concern (crypto/rand.Reader for
// production use). The intermediate buffer is wiped before returning so no
// stale copy of the material survives the call.
func random(z []Limb, rand io.Reader) error {
	buf := make([]byte, len(z)*LimbBytes)
	if _, err := io.ReadFull(rand, buf); err != nil {
		return err
	}
	setLEBytes(z, buf)
	for i := range buf {
		buf[i] = 0
	}
	return nil
}
