// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-finance-keeper/internal/logger"
	"github.com/MKhiriev/go-finance-keeper/internal/utils"
	"github.com/MKhiriev/go-finance-keeper/models"
)

type overviewResponse struct {
	AccountCount            int              `json:"accountCount"`
	TotalBalance            float64          `json:"totalBalance"`
	TotalMinDueEstimate     float64          `json:"totalMinDueEstimate"`
	TotalMonthlyServiceFees float64          `json:"totalMonthlyServiceFees"`
	Largest                 *accountResponse `json:"largest,omitempty"`
}

func toOverviewResponse(o models.Overview) overviewResponse {
	resp := overviewResponse{
		AccountCount:            o.AccountCount,
		TotalBalance:            o.TotalBalance,
		TotalMinDueEstimate:     o.TotalMinDueEstimate,
		TotalMonthlyServiceFees: o.TotalMonthlyServiceFees,
	}
	if o.Largest != nil {
		largest := toAccountResponse(*o.Largest)
		resp.Largest = &largest
	}
	return resp
}

func (h *Handler) getOverview(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	overview, err := h.services.OverviewService.Overview(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.getOverview").Msg("error computing overview")
		writeError(w, err)
		return
	}

	if _, err := utils.WriteJSON(w, toOverviewResponse(overview), http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getOverview").Msg("error writing response")
	}
}
