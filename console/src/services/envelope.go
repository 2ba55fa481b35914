package services

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/narender/product-console/console/src/models"
)

var errUnexpectedShape = errors.New("unexpected response shape")

// listKeys are the names a page's items may travel under, in lookup order.
var listKeys = []string{"items", "content", "products"}

// unwrapData returns the value of a top-level "data" field when raw is an
// object carrying one, else raw itself. It also returns the object's
// message, if any.
func unwrapData(raw []byte) (json.RawMessage, string) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return raw, ""
	}
	var outer struct {
		Data    json.RawMessage `json:"data"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(raw, &outer); err != nil {
		return raw, ""
	}
	if d := bytes.TrimSpace(outer.Data); len(d) > 0 && !bytes.Equal(d, []byte("null")) {
		return d, outer.Message
	}
	return raw, outer.Message
}

// decodeProductPage accepts a bare array, an object holding the items under
// one of listKeys with optional totals, and either of those wrapped in
// {"data": ...}. Missing totals are derived from what was received.
func decodeProductPage(raw []byte, q models.PageQuery) (models.ProductPage, error) {
	body, _ := unwrapData(raw)
	page := models.ProductPage{Page: q.Page, Size: q.Size}

	if len(body) == 0 {
		return page, errUnexpectedShape
	}

	switch body[0] {
	case '[':
		if err := json.Unmarshal(body, &page.Items); err != nil {
			return page, err
		}
		page.TotalElements = int64(len(page.Items))
		page.TotalPages = pagesFor(page.TotalElements, q.Size)
	case '{':
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(body, &fields); err != nil {
			return page, err
		}
		found := false
		for _, key := range listKeys {
			if v, ok := fields[key]; ok {
				if err := json.Unmarshal(v, &page.Items); err != nil {
					return page, err
				}
				found = true
				break
			}
		}
		if !found {
			return page, errUnexpectedShape
		}

		var totals struct {
			TotalPages    *int   `json:"totalPages"`
			TotalElements *int64 `json:"totalElements"`
			Page          *int   `json:"page"`
			Number        *int   `json:"number"`
			Size          *int   `json:"size"`
		}
		if err := json.Unmarshal(body, &totals); err != nil {
			return page, err
		}
		if totals.Size != nil && *totals.Size > 0 {
			page.Size = *totals.Size
		}
		switch {
		case totals.Page != nil:
			page.Page = *totals.Page
		case totals.Number != nil:
			page.Page = *totals.Number
		}
		page.TotalElements = int64(len(page.Items))
		if totals.TotalElements != nil {
			page.TotalElements = *totals.TotalElements
		}
		page.TotalPages = pagesFor(page.TotalElements, page.Size)
		if totals.TotalPages != nil {
			page.TotalPages = *totals.TotalPages
		}
	default:
		return page, errUnexpectedShape
	}

	if page.Items == nil {
		page.Items = []models.Product{}
	}
	return page, nil
}

func pagesFor(total int64, size int) int {
	if total <= 0 {
		return 0
	}
	if size <= 0 {
		return 1
	}
	return int((total + int64(size) - 1) / int64(size))
}

// decodeMutation reads a created or updated product, bare or wrapped, plus
// the server's message.
func decodeMutation(raw []byte) (models.MutationResult, error) {
	var result models.MutationResult
	if len(bytes.TrimSpace(raw)) == 0 {
		return result, nil
	}
	body, msg := unwrapData(raw)
	result.Message = msg
	if len(body) == 0 || body[0] != '{' {
		return result, errUnexpectedShape
	}
	if err := json.Unmarshal(body, &result.Product); err != nil {
		return result, err
	}
	return result, nil
}
