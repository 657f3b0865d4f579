package http

import (
	"net/http"
)

// AppHttpHandler is a handler that reports failures as errors. errorHandlingAdapter turns them
// into JSON error responses.
type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

type appHttpHandlerFunc func(w http.ResponseWriter, r *http.Request) error

func (f appHttpHandlerFunc) Handle(w http.ResponseWriter, r *http.Request) error {
	return f(w, r)
}
