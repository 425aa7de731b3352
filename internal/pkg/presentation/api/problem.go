package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/diwise/zaken-api/internal/pkg/application"
	"github.com/diwise/zaken-api/internal/pkg/presentation/geometry"
	"github.com/diwise/zaken-api/internal/pkg/presentation/pagination"
	"github.com/google/uuid"
)

var errNotImplemented = errors.New("not implemented")

type invalidParam struct {
	Name   string `json:"name"`
	Code   string `json:"code"`
	Reason string `json:"reason"`
}

// problemDetails is an RFC 7807 problem document.
type problemDetails struct {
	Type          string         `json:"type"`
	Code          string         `json:"code"`
	Title         string         `json:"title"`
	Status        int            `json:"status"`
	Detail        string         `json:"detail"`
	Instance      string         `json:"instance"`
	InvalidParams []invalidParam `json:"invalidParams,omitempty"`
}

func newProblem(err error) problemDetails {
	p := problemDetails{
		Instance: "urn:uuid:" + uuid.NewString(),
		Detail:   err.Error(),
	}

	var ve *pagination.ValidationError

	switch {
	case errors.As(err, &ve):
		p.Status, p.Code, p.Title = http.StatusBadRequest, "invalid", "Invalid input."
		p.InvalidParams = []invalidParam{{Name: ve.Param, Code: "invalid", Reason: ve.Reason}}
	case errors.Is(err, pagination.ErrPageNotFound):
		p.Status, p.Code, p.Title = http.StatusNotFound, "not_found", "Invalid page."
	case errors.Is(err, application.ErrNotFound):
		p.Status, p.Code, p.Title = http.StatusNotFound, "not_found", "Not found."
	case errors.Is(err, geometry.ErrUnsupportedCRS):
		p.Status, p.Code, p.Title = http.StatusNotAcceptable, "not_acceptable", "CRS not supported."
	case errors.Is(err, errNotImplemented):
		p.Status, p.Code, p.Title = http.StatusNotImplemented, "not_implemented", "Not implemented."
	default:
		p.Status, p.Code, p.Title = http.StatusInternalServerError, "error", "A server error occurred."
		p.Detail = "A server error occurred."
	}

	p.Type = "https://zaken.diwise.io/problems/" + p.Code

	return p
}

func writeProblem(w http.ResponseWriter, logger *slog.Logger, err error) {
	p := newProblem(err)

	if p.Status >= http.StatusInternalServerError && p.Status != http.StatusNotImplemented {
		logger.Error("request failed", "err", err.Error())
	} else {
		logger.Debug("request rejected", "status", p.Status, "err", err.Error())
	}

	b, _ := marshal(p)

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(p.Status)
	w.Write(b)
}
