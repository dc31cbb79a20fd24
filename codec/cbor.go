package codec

import (
	"github.com/fxamacker/cbor/v2"
)

// CBOR encodes terms with fxamacker/cbor using Core Deterministic encoding
// (RFC 8949), so equal prefixes always produce identical bytes.
// The zero value is NOT ready to use. Construct with NewCBOR or MustCBOR.
type CBOR struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

var _ Codec[[]int] = CBOR{}

// NewCBOR constructs a CBOR codec. maxTerms caps the array length accepted by
// Decode; 0 keeps the library default.
func NewCBOR(maxTerms int) (CBOR, error) {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return CBOR{}, err
	}
	do := cbor.DecOptions{}
	if maxTerms > 0 {
		// the library rejects limits below 16
		do.MaxArrayElements = max(maxTerms, 16)
	}
	dm, err := do.DecMode()
	if err != nil {
		return CBOR{}, err
	}
	return CBOR{enc: em, dec: dm}, nil
}

// MustCBOR is like NewCBOR but panics on error.
func MustCBOR(maxTerms int) CBOR {
	c, err := NewCBOR(maxTerms)
	if err != nil {
		panic(err)
	}
	return c
}

func (c CBOR) Encode(terms []int) ([]byte, error) {
	return c.enc.Marshal(terms)
}

func (c CBOR) Decode(b []byte) ([]int, error) {
	var terms []int
	err := c.dec.Unmarshal(b, &terms)
	return terms, err
}
