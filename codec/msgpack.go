package codec

import "github.com/vmihailenco/msgpack/v5"

// Msgpack encodes terms with vmihailenco/msgpack/v5.
// The zero value is ready to use.
type Msgpack struct{}

var _ Codec[[]int] = Msgpack{}

func (Msgpack) Encode(terms []int) ([]byte, error) {
	return msgpack.Marshal(terms)
}

func (Msgpack) Decode(b []byte) ([]int, error) {
	var terms []int
	err := msgpack.Unmarshal(b, &terms)
	return terms, err
}
