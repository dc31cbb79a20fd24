package codec

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// Proto encodes terms as a google.protobuf.ListValue of numbers, for stores
// shared with services that already speak protobuf well-known types.
// Terms are exact in a float64 for every supported capacity bound.
type Proto struct{}

var _ Codec[[]int] = Proto{}

func (Proto) Encode(terms []int) ([]byte, error) {
	lv := &structpb.ListValue{Values: make([]*structpb.Value, len(terms))}
	for i, t := range terms {
		lv.Values[i] = structpb.NewNumberValue(float64(t))
	}
	return proto.Marshal(lv)
}

func (Proto) Decode(b []byte) ([]int, error) {
	var lv structpb.ListValue
	if err := proto.Unmarshal(b, &lv); err != nil {
		return nil, err
	}
	terms := make([]int, len(lv.GetValues()))
	for i, v := range lv.GetValues() {
		n, ok := v.GetKind().(*structpb.Value_NumberValue)
		if !ok {
			return nil, fmt.Errorf("codec: element %d is not a number", i)
		}
		if n.NumberValue != math.Trunc(n.NumberValue) {
			return nil, fmt.Errorf("codec: element %d is not integral: %v", i, n.NumberValue)
		}
		terms[i] = int(n.NumberValue)
	}
	return terms, nil
}
