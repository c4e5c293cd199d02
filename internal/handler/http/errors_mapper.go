// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-finance-keeper/internal/app"
	"github.com/MKhiriev/go-finance-keeper/internal/service"
	"github.com/MKhiriev/go-finance-keeper/internal/store"
	"github.com/MKhiriev/go-finance-keeper/internal/utils"
)

var errorStatusMap = map[error]int{
	ErrInvalidSortKey:              http.StatusBadRequest,
	ErrInvalidSortOrder:            http.StatusBadRequest,
	ErrInvalidAccountType:          http.StatusBadRequest,
	service.ErrInvalidDataProvided: http.StatusBadRequest,

	store.ErrAccountNotFound: http.StatusNotFound,

	store.ErrCorruptedRecord:      http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

var statusMessages = map[int]string{
	http.StatusBadRequest: app.MsgInvalidDataProvided,
	http.StatusNotFound:   app.MsgAccountNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError answers with the status mapped from err. Internal details stay
// in the log.
func writeError(w http.ResponseWriter, err error) int {
	status := statusFromError(err)
	msg, ok := statusMessages[status]
	if !ok {
		msg = app.MsgInternalServerError
	}
	_, _ = utils.WriteJSON(w, errorResponse{Error: msg}, status)
	return status
}
