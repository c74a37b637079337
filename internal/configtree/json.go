// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package configtree

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// FromJSON converts a JSON document into nodes named name. Object keys keep
// document order, which is why the document is walked token by token
// instead of being decoded into a map.
func FromJSON(name string, data []byte) ([]*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	nodes, err := decodeJSON(dec, name)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after top-level value at offset %d", dec.InputOffset())
	}
	return nodes, nil
}

func decodeJSON(dec *json.Decoder, name string) ([]*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			node := New(name)
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, _ := keyTok.(string)
				if key == "" {
					return nil, fmt.Errorf("empty key inside %q at offset %d", name, dec.InputOffset())
				}
				children, err := decodeJSON(dec, key)
				if err != nil {
					return nil, err
				}
				appendAll(node, key, children)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return []*Node{node}, nil
		case '[':
			var nodes []*Node
			for dec.More() {
				children, err := decodeJSON(dec, name)
				if err != nil {
					return nil, err
				}
				nodes = append(nodes, children...)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return nodes, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %q at offset %d", v, dec.InputOffset())
	case nil:
		return []*Node{New(name)}, nil
	case string:
		return []*Node{NewLeaf(name, v)}, nil
	case json.Number:
		return []*Node{NewLeaf(name, v.String())}, nil
	case bool:
		return []*Node{NewLeaf(name, strconv.FormatBool(v))}, nil
	}
	return nil, fmt.Errorf("unexpected token %v at offset %d", tok, dec.InputOffset())
}
