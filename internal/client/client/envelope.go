package client

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/stylocoin/dashboard/internal/client/models"
)

type envelope struct {
	Data          json.RawMessage `json:"data"`
	Content       json.RawMessage `json:"content"`
	Total         *int64          `json:"total"`
	Count         *int64          `json:"count"`
	TotalElements *int64          `json:"totalElements"`
	TotalCount    *int64          `json:"totalCount"`
}

func (e envelope) total() (int64, bool) {
	for _, v := range []*int64{e.TotalElements, e.Total, e.Count, e.TotalCount} {
		if v != nil {
			return *v, true
		}
	}
	return 0, false
}

func isArray(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '['
}

func isObject(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '{'
}

// decodePage normalizes every list envelope the backend produces into a Page.
func decodePage[T any](body []byte) (models.Page[T], error) {
	page := models.Page[T]{Items: []T{}}

	body = bytes.TrimSpace(body)
	switch {
	case len(body) == 0:
		return page, nil
	case isArray(body):
		if err := json.Unmarshal(body, &page.Items); err != nil {
			return page, fmt.Errorf("%w: %v", ErrBadEnvelope, err)
		}
		page.Total = int64(len(page.Items))
		return page, nil
	case !isObject(body):
		return page, fmt.Errorf("%w: not a JSON object or array", ErrBadEnvelope)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return page, fmt.Errorf("%w: %v", ErrBadEnvelope, err)
	}

	var raw json.RawMessage
	switch {
	case isArray(env.Data):
		raw = env.Data
	case isArray(env.Content):
		raw = env.Content
	case isObject(env.Data):
		inner, err := decodePage[T](env.Data)
		if err != nil {
			return page, err
		}
		if total, ok := env.total(); ok {
			inner.Total = total
		}
		return inner, nil
	default:
		return page, fmt.Errorf("%w: neither data nor content holds a list", ErrBadEnvelope)
	}

	if err := json.Unmarshal(raw, &page.Items); err != nil {
		return page, fmt.Errorf("%w: %v", ErrBadEnvelope, err)
	}
	if page.Items == nil {
		page.Items = []T{}
	}
	if total, ok := env.total(); ok {
		page.Total = total
	} else {
		page.Total = int64(len(page.Items))
	}
	return page, nil
}

// decodeRecord decodes a single record, bare or wrapped in {"data": {...}}.
func decodeRecord[T any](body []byte) (*T, error) {
	body = bytes.TrimSpace(body)
	if !isObject(body) {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrBadEnvelope)
	}

	var wrapper struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &wrapper); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadEnvelope, err)
	}
	if isObject(wrapper.Data) {
		body = wrapper.Data
	}

	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadEnvelope, err)
	}
	return &out, nil
}
