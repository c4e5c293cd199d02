// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-finance-keeper/internal/logger"
	"github.com/MKhiriev/go-finance-keeper/internal/utils"
	"github.com/MKhiriev/go-finance-keeper/models"
)

// accountResponse is an account as served by the report API: the password
// blob is replaced by a flag.
type accountResponse struct {
	models.Account
	HasPassword bool `json:"hasPassword"`
}

func toAccountResponse(a models.Account) accountResponse {
	resp := accountResponse{Account: a, HasPassword: a.HasPassword()}
	resp.PasswordEnc = nil
	return resp
}

func (h *Handler) listAccounts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	filter, err := parseAccountFilter(r)
	if err != nil {
		log.Info().Str("func", "*Handler.listAccounts").Str("reason", err.Error()).Msg("invalid query")
		writeError(w, err)
		return
	}

	accounts, err := h.services.AccountService.List(r.Context(), filter)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listAccounts").Msg("error listing accounts")
		writeError(w, err)
		return
	}

	resp := make([]accountResponse, 0, len(accounts))
	for _, a := range accounts {
		resp = append(resp, toAccountResponse(a))
	}
	if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.listAccounts").Msg("error writing response")
	}
}

func (h *Handler) getAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	account, err := h.services.AccountService.Get(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getAccount").Str("id", id).Msg("error getting account")
		writeError(w, err)
		return
	}

	if _, err := utils.WriteJSON(w, toAccountResponse(account), http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getAccount").Msg("error writing response")
	}
}

// parseAccountFilter reads search, type, sort and order from the query.
func parseAccountFilter(r *http.Request) (models.AccountFilter, error) {
	q := r.URL.Query()
	filter := models.AccountFilter{
		Search: strings.TrimSpace(q.Get("search")),
		Type:   models.AccountType(q.Get("type")),
		SortBy: models.SortKey(q.Get("sort")),
		Order:  models.SortOrder(strings.ToLower(q.Get("order"))),
	}

	if filter.Type != "" && !filter.Type.IsValid() {
		return models.AccountFilter{}, ErrInvalidAccountType
	}

	switch filter.SortBy {
	case "", models.SortByAccount, models.SortByBalance, models.SortByMinPayment:
	default:
		return models.AccountFilter{}, ErrInvalidSortKey
	}

	switch filter.Order {
	case "", models.Asc, models.Desc:
	default:
		return models.AccountFilter{}, ErrInvalidSortOrder
	}

	return filter, nil
}
