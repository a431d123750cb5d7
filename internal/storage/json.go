package storage

import "encoding/json"

func marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func unmarshal(raw []byte, out any) error {
	return json.Unmarshal(raw, out)
}
