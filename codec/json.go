package codec

import "encoding/json"

// JSON encodes terms as a JSON array. It is the default snapshot codec.
type JSON struct{}

var _ Codec[[]int] = JSON{}

func (JSON) Encode(terms []int) ([]byte, error) { return json.Marshal(terms) }
func (JSON) Decode(b []byte) ([]int, error) {
	var terms []int
	err := json.Unmarshal(b, &terms)
	return terms, err
}
