package api

type apiResponse[T any] struct {
	Data  T          `json:"data"`
	Error *errorBody `json:"error,omitempty"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// QueryParams is a map of URL query parameters.
type QueryParams map[string]string
