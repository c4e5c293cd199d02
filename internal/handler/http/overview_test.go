// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-finance-keeper/models"
)

func TestGetOverview(t *testing.T) {
	d := newTestDeps(t)
	largest := sampleAccount()
	d.overview.EXPECT().Overview(gomock.Any()).Return(models.Overview{
		AccountCount:            4,
		TotalBalance:            15216.49,
		TotalMinDueEstimate:     395,
		TotalMonthlyServiceFees: 25.99,
		Largest:                 &largest,
	}, nil)

	rec := d.do(http.MethodGet, "/api/overview")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 4.0, body["accountCount"])
	assert.Equal(t, 15216.49, body["totalBalance"])
	assert.Equal(t, 395.0, body["totalMinDueEstimate"])
	assert.Equal(t, 25.99, body["totalMonthlyServiceFees"])

	l, ok := body["largest"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Sapphire Visa", l["accountName"])
	assert.NotContains(t, l, "passwordEnc")
}

func TestGetOverview_Empty(t *testing.T) {
	d := newTestDeps(t)
	d.overview.EXPECT().Overview(gomock.Any()).Return(models.Overview{}, nil)

	rec := d.do(http.MethodGet, "/api/overview")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"accountCount":0,"totalBalance":0,"totalMinDueEstimate":0,"totalMonthlyServiceFees":0}`, rec.Body.String())
}

func TestGetOverview_Failure(t *testing.T) {
	d := newTestDeps(t)
	d.overview.EXPECT().Overview(gomock.Any()).Return(models.Overview{}, errors.New("disk on fire"))

	rec := d.do(http.MethodGet, "/api/overview")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "disk on fire")
}
