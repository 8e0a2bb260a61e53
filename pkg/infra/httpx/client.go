package httpx

import (
	"net/http"
)

//go:generate mockery --name=Client --dir=. --output=./mocks --filename=http_client_mock.go --case=underscore --with-expecter

// Client is the net/http shaped surface used by providers that build *http.Request values.
type Client interface {
	Do(req *http.Request) (*http.Response, error)
}
