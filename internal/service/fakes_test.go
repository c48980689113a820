package service

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/sistema-bancario/backend/internal/client"
	"github.com/sistema-bancario/backend/internal/model"
)

type call struct {
	method   string
	endpoint string
	body     any
}

// fakeAPI keeps accounts in memory and records every Execute.
type fakeAPI struct {
	accounts map[int64]model.Account
	calls    []call
	failWith error
}

func newFakeAPI(accounts ...model.Account) *fakeAPI {
	f := &fakeAPI{accounts: make(map[int64]model.Account)}
	for _, acc := range accounts {
		f.accounts[acc.ID] = acc
	}
	return f
}

func (f *fakeAPI) Execute(_ context.Context, method, endpoint string, body, out any) error {
	f.calls = append(f.calls, call{method: method, endpoint: endpoint, body: body})
	if f.failWith != nil {
		return f.failWith
	}

	id := idFrom(endpoint)
	switch method {
	case http.MethodGet:
		if id == 0 {
			list := make([]model.Account, 0, len(f.accounts))
			for _, acc := range f.accounts {
				list = append(list, acc)
			}
			return roundTrip(list, out)
		}
		acc, ok := f.accounts[id]
		if !ok {
			return &client.RequestError{Method: method, Endpoint: endpoint, StatusCode: http.StatusNotFound}
		}
		return roundTrip(acc, out)
	case http.MethodPut:
		if acc, ok := body.(model.Account); ok {
			f.accounts[id] = acc
		}
		return roundTrip(body, out)
	case http.MethodPost:
		return roundTrip(body, out)
	}
	return nil
}

func (f *fakeAPI) count(method string) int {
	n := 0
	for _, c := range f.calls {
		if c.method == method {
			n++
		}
	}
	return n
}

func idFrom(endpoint string) int64 {
	parts := strings.Split(strings.Trim(endpoint, "/"), "/")
	if len(parts) < 2 {
		return 0
	}
	id, _ := strconv.ParseInt(parts[1], 10, 64)
	return id
}

// roundTrip은 실제 파이프라인처럼 JSON을 거쳐 out을 채운다.
func roundTrip(in, out any) error {
	if out == nil {
		return nil
	}
	raw, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}
