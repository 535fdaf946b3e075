package api

import (
	"context"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

// Document returns the validated OpenAPI document the server is generated from.
var Document = sync.OnceValues(func() (*openapi3.T, error) {
	doc, err := GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}

	err = doc.Validate(context.Background())
	if err != nil {
		return nil, fmt.Errorf("invalid openapi document: %w", err)
	}

	return doc, nil
})
