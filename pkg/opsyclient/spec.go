// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package opsyclient

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// SpecPath is where the server publishes its Swagger document. It is an
// absolute reference, so any path on the client URL is replaced.
const SpecPath = "/docs/swagger.json"

// defaultResource files operations that carry no tag.
const defaultResource = "default"

// Operation is one callable entry of the loaded interface document.
type Operation struct {
	Resource string
	ID       string
	Method   string
	Path     string

	params      openapi3.Parameters
	requestBody *openapi3.RequestBody
}

// Parameters returns the path and query parameters of the operation, with
// operation-level definitions overriding path-level ones.
func (o *Operation) Parameters() openapi3.Parameters { return o.params }

// RequiresBody reports whether the operation declares a required request body.
func (o *Operation) RequiresBody() bool {
	return o.requestBody != nil && o.requestBody.Required
}

func (o *Operation) bodySchema() *openapi3.Schema {
	if o.requestBody == nil {
		return nil
	}
	mt := o.requestBody.GetMediaType("application/json")
	if mt == nil {
		mt = o.requestBody.Content.Get("application/json")
	}
	if mt == nil || mt.Schema == nil {
		return nil
	}
	return mt.Schema.Value
}

// Spec is the interface document of a server, indexed by resource and
// operation ID.
type Spec struct {
	Title    string
	Version  string
	BasePath string

	doc *openapi3.T
	ops map[string]map[string]*Operation
}

// Document returns the OpenAPI 3 form of the loaded document.
func (s *Spec) Document() *openapi3.T { return s.doc }

// Resources returns the resource names in sorted order.
func (s *Spec) Resources() []string {
	names := lo.Keys(s.ops)
	sort.Strings(names)
	return names
}

// Operations returns the operation IDs of a resource in sorted order.
func (s *Spec) Operations(resource string) []string {
	ids := lo.Keys(s.ops[resource])
	sort.Strings(ids)
	return ids
}

// Operation looks up an operation by resource and ID.
func (s *Spec) Operation(resource, id string) (*Operation, bool) {
	op, ok := s.ops[resource][id]
	return op, ok
}

func fetchSpec(ctx context.Context, rc *resty.Client, specURL string) (*Spec, error) {
	resp, err := rc.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(specURL)
	if err != nil {
		return nil, &SpecLoadError{URL: specURL, Err: err}
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, &SpecLoadError{URL: specURL, Err: newTransportError(resp)}
	}
	spec, err := ParseSpec(ctx, resp.Body())
	if err != nil {
		return nil, &SpecLoadError{URL: specURL, Err: err}
	}
	return spec, nil
}

// ParseSpec decodes a Swagger 2.0 document, converts it to OpenAPI 3 and
// indexes its operations.
func ParseSpec(ctx context.Context, data []byte) (*Spec, error) {
	var doc2 openapi2.T
	if err := json.Unmarshal(data, &doc2); err != nil {
		return nil, errors.Wrap(err, "decoding swagger document")
	}
	if !strings.HasPrefix(doc2.Swagger, "2.") {
		return nil, errors.Errorf("unsupported swagger version %q", doc2.Swagger)
	}

	doc3, err := openapi2conv.ToV3(&doc2)
	if err != nil {
		return nil, errors.Wrap(err, "converting swagger document")
	}
	if err := doc3.Validate(ctx); err != nil {
		return nil, errors.Wrap(err, "validating swagger document")
	}

	spec := &Spec{
		Title:    doc2.Info.Title,
		Version:  doc2.Info.Version,
		BasePath: strings.TrimRight(doc2.BasePath, "/"),
		doc:      doc3,
		ops:      make(map[string]map[string]*Operation),
	}

	for path, item := range doc3.Paths.Map() {
		for method, op := range item.Operations() {
			if op.OperationID == "" {
				continue
			}
			resources := op.Tags
			if len(resources) == 0 {
				resources = []string{defaultResource}
			}
			entry := &Operation{
				ID:     op.OperationID,
				Method: method,
				Path:   path,
				params: mergeParameters(item.Parameters, op.Parameters),
			}
			if op.RequestBody != nil {
				entry.requestBody = op.RequestBody.Value
			}
			for _, res := range resources {
				if spec.ops[res] == nil {
					spec.ops[res] = make(map[string]*Operation)
				}
				if _, dup := spec.ops[res][op.OperationID]; dup {
					return nil, errors.Errorf("duplicate operation %s/%s", res, op.OperationID)
				}
				bound := *entry
				bound.Resource = res
				spec.ops[res][op.OperationID] = &bound
			}
		}
	}
	return spec, nil
}

func mergeParameters(pathLevel, opLevel openapi3.Parameters) openapi3.Parameters {
	merged := make(openapi3.Parameters, 0, len(pathLevel)+len(opLevel))
	for _, p := range pathLevel {
		if p.Value != nil && opLevel.GetByInAndName(p.Value.In, p.Value.Name) == nil {
			merged = append(merged, p)
		}
	}
	for _, p := range opLevel {
		if p.Value != nil {
			merged = append(merged, p)
		}
	}
	return merged
}
