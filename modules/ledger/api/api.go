package api

import (
	"github.com/heroarena/ledger/modules/ledger/api/httphandler"
	"github.com/heroarena/ledger/modules/ledger/usecase"
)

func NewHTTPHandler(usecase *usecase.Usecase) *httphandler.HttpHandler {
	return httphandler.New(usecase)
}
