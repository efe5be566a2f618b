package lambda

import (
	"encoding/json"
	"net/url"
)

// Request represents a generic HTTP request for serverless functions.
// MultiValueQueryParams keeps every value of a repeated key, in request order.
type Request struct {
	Method                string              `json:"method"`
	Path                  string              `json:"path"`
	Headers               map[string]string   `json:"headers"`
	QueryParams           map[string]string   `json:"query_params"`
	MultiValueQueryParams map[string][]string `json:"multi_value_query_params"`
	Body                  []byte              `json:"body"`
}

// Query returns the query parameters as url.Values.
// Multi-value parameters win when present so repeated keys resolve to their first value.
func (r *Request) Query() url.Values {
	if len(r.MultiValueQueryParams) > 0 {
		values := make(url.Values, len(r.MultiValueQueryParams))
		for key, vals := range r.MultiValueQueryParams {
			values[key] = append([]string(nil), vals...)
		}
		return values
	}

	values := make(url.Values, len(r.QueryParams))
	for key, value := range r.QueryParams {
		values.Set(key, value)
	}
	return values
}

// Response represents a generic HTTP response for serverless functions
type Response struct {
	StatusCode int               `json:"status_code"`
	Headers    map[string]string `json:"headers"`
	Body       []byte            `json:"body"`
}

// JSONResponse encodes v as the body of a JSON response
func JSONResponse(statusCode int, v interface{}) (*Response, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: statusCode,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       body,
	}, nil
}
