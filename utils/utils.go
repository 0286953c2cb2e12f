package utils

import (
	"encoding/json"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToStruct 把带 json tag 的结构体转成 structpb.Struct
func ToStruct(src any) (*structpb.Struct, error) {
	data, err := json.Marshal(src)
	if err != nil {
		return nil, err
	}
	dst := &structpb.Struct{}
	if err := protojson.Unmarshal(data, dst); err != nil {
		return nil, err
	}
	return dst, nil
}

// FromStruct ToStruct 的逆操作，src 为 nil 时 dst 保持零值
func FromStruct(src *structpb.Struct, dst any) error {
	if src == nil {
		return nil
	}
	data, err := protojson.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}
