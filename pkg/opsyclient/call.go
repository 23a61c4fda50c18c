// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package opsyclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-resty/resty/v2"
	"github.com/samber/lo"
	"github.com/spf13/cast"
)

// Params carries the arguments of one operation call. Nil query values and
// null body members are dropped before the request is built.
type Params struct {
	Path  map[string]string
	Query map[string]any
	Body  any
}

// Response separates the transport response from the decoded result.
type Response[T any] struct {
	HTTP   *resty.Response
	Result T
}

// StatusCode returns the HTTP status of the response.
func (r *Response[T]) StatusCode() int {
	if r == nil || r.HTTP == nil {
		return 0
	}
	return r.HTTP.StatusCode()
}

// Call invokes resource/operationID. The result is a typed model in the
// default mode, or plain maps and slices when the client was built with
// WithRawResults.
func (c *Client) Call(ctx context.Context, resource, operationID string, params Params) (*Response[any], error) {
	op, ok := c.spec.Operation(resource, operationID)
	if !ok {
		return nil, &ValidationError{Field: "operation", Reason: fmt.Sprintf("%s/%s is not defined by the server", resource, operationID)}
	}

	resp, err := c.execute(ctx, op, params)
	if err != nil {
		return nil, err
	}

	var result any
	if c.raw {
		result, err = decodeRaw(resp.Body())
	} else {
		result, err = decodeModel(operationID, resp.Body())
	}
	if err != nil {
		return nil, &TransportError{
			Method:     resp.Request.Method,
			URL:        resp.Request.URL,
			StatusCode: resp.StatusCode(),
			Reason:     "undecodable response body",
			Body:       resp.Body(),
			Err:        err,
		}
	}
	return &Response[any]{HTTP: resp, Result: result}, nil
}

// invoke runs an operation and decodes the result into T regardless of the
// client result mode.
func invoke[T any](ctx context.Context, c *Client, resource, operationID string, params Params) (*Response[T], error) {
	op, ok := c.spec.Operation(resource, operationID)
	if !ok {
		return nil, &ValidationError{Field: "operation", Reason: fmt.Sprintf("%s/%s is not defined by the server", resource, operationID)}
	}
	resp, err := c.execute(ctx, op, params)
	if err != nil {
		return nil, err
	}
	out := &Response[T]{HTTP: resp}
	if len(resp.Body()) == 0 {
		return out, nil
	}
	if err := decodeInto(resp.Body(), &out.Result); err != nil {
		return nil, &TransportError{
			Method:     resp.Request.Method,
			URL:        resp.Request.URL,
			StatusCode: resp.StatusCode(),
			Reason:     "undecodable response body",
			Body:       resp.Body(),
			Err:        err,
		}
	}
	return out, nil
}

func (c *Client) execute(ctx context.Context, op *Operation, params Params) (*resty.Response, error) {
	pathParams, query, err := bindParameters(op, params)
	if err != nil {
		return nil, err
	}

	req := c.http.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetPathParams(pathParams).
		SetQueryParamsFromValues(query)

	if params.Body != nil {
		body, err := prepareBody(op, params.Body)
		if err != nil {
			return nil, err
		}
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	} else if op.RequiresBody() {
		return nil, &ValidationError{Field: "body", Reason: "is required"}
	}

	target := c.apiBase + op.Path
	c.log.WithField("operation", op.Resource+"/"+op.ID).Debugf("%s %s", op.Method, target)

	resp, err := req.Execute(op.Method, target)
	if err != nil {
		return nil, &TransportError{Method: op.Method, URL: target, Err: err}
	}
	c.log.Debugf("response %d from %s %s", resp.StatusCode(), op.Method, resp.Request.URL)
	if !resp.IsSuccess() {
		return nil, newTransportError(resp)
	}
	return resp, nil
}

// bindParameters checks required parameters and splits the arguments into
// path and query values.
func bindParameters(op *Operation, params Params) (map[string]string, url.Values, error) {
	pathParams := make(map[string]string)
	query := url.Values{}

	for _, ref := range op.Parameters() {
		p := ref.Value
		switch p.In {
		case openapi3.ParameterInPath:
			v, ok := params.Path[p.Name]
			if !ok || v == "" {
				return nil, nil, &ValidationError{Field: p.Name, Reason: "is required"}
			}
			pathParams[p.Name] = v
		case openapi3.ParameterInQuery:
			v, ok := params.Query[p.Name]
			if !ok || lo.IsNil(v) {
				if p.Required {
					return nil, nil, &ValidationError{Field: p.Name, Reason: "is required"}
				}
				continue
			}
			if items, isList := v.([]string); isList {
				for _, item := range items {
					query.Add(p.Name, item)
				}
				continue
			}
			s, err := cast.ToStringE(v)
			if err != nil {
				return nil, nil, &ValidationError{Field: p.Name, Reason: err.Error()}
			}
			query.Set(p.Name, s)
		}
	}

	unknown := lo.Filter(lo.Keys(params.Query), func(name string, _ int) bool {
		return op.Parameters().GetByInAndName(openapi3.ParameterInQuery, name) == nil
	})
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, nil, &ValidationError{Field: unknown[0], Reason: fmt.Sprintf("is not a filter of %s", op.ID)}
	}
	return pathParams, query, nil
}

// prepareBody normalizes body to its JSON form, drops null members and
// validates it against the operation's request schema.
func prepareBody(op *Operation, body any) (any, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, &ValidationError{Field: "body", Reason: err.Error()}
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &ValidationError{Field: "body", Reason: err.Error()}
	}
	if obj, ok := doc.(map[string]any); ok {
		doc = lo.OmitBy(obj, func(_ string, v any) bool { return v == nil })
	}

	if schema := op.bodySchema(); schema != nil {
		if err := schema.VisitJSON(doc, openapi3.VisitAsRequest()); err != nil {
			return nil, schemaValidationError(err)
		}
	}
	return doc, nil
}

func schemaValidationError(err error) error {
	field := "body"
	reason := err.Error()
	var serr *openapi3.SchemaError
	if errors.As(err, &serr) {
		if ptr := serr.JSONPointer(); len(ptr) > 0 {
			field = ptr[0]
		}
		reason = serr.Reason
	}
	return &ValidationError{Field: field, Reason: reason}
}
