// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package rki

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const districtBody = `{
  "data": {
    "02000": {
      "ags": "02000",
      "name": "Hamburg",
      "county": "SK Hamburg",
      "population": 1847253,
      "cases": 37535,
      "deaths": 661,
      "casesPerWeek": 2027,
      "deathsPerWeek": 2,
      "recovered": 27864,
      "weekIncidence": 109.73050253538634,
      "casesPer100k": 2031.9360693960166,
      "delta": {"cases": 0, "deaths": 0, "recovered": 350}
    }
  },
  "meta": {
    "source": "Robert Koch-Institut",
    "contact": "Marlon Lueckert (m.lueckert@me.com)",
    "info": "https://github.com/marlon360/rki-covid-api",
    "lastUpdate": "2021-01-04T00:00:00.000Z",
    "lastCheckedForUpdate": "2021-01-04T13:59:49.832Z"
  }
}`

const historyBody = `{
  "data": {
    "ags": "02000",
    "name": "Hamburg",
    "history": [
      {"cases": 100, "date": "2021-01-01T00:00:00.000Z"},
      {"cases": 120, "date": "2021-01-02T00:00:00.000Z"},
      {"cases": 90, "date": "2021-01-03T00:00:00.000Z"}
    ]
  },
  "meta": {
    "source": "Robert Koch-Institut",
    "lastUpdate": "2021-01-04T00:00:00.000Z",
    "lastCheckedForUpdate": "2021-01-04T13:59:49.832Z"
  }
}`

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL)
}

func TestClient_District(t *testing.T) {
	var gotPath string
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(districtBody))
	})

	resp, err := c.District(context.Background(), "02000")
	require.NoError(t, err)

	assert.Equal(t, "/districts/02000", gotPath)
	assert.Equal(t, "Hamburg", resp.District.Name)
	assert.Equal(t, "SK Hamburg", resp.District.County)
	assert.Equal(t, 37535, resp.District.Cases)
	assert.Equal(t, 350, resp.District.Delta.Recovered)
	assert.InDelta(t, 109.73, resp.District.WeekIncidence, 0.01)
	assert.Equal(t, "Robert Koch-Institut", resp.Meta.Source)
	assert.True(t, resp.Meta.LastUpdate.Equal(
		time.Date(2021, 1, 4, 0, 0, 0, 0, time.UTC)))
}

func TestClient_District_NonSuccessStatus(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	_, err := c.District(context.Background(), "02000")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemote)

	var re *RemoteError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, http.StatusNotFound, re.Status)
}

func TestClient_District_ErrorFieldInPayload(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"error": {"message": "district not found"}}`))
	})

	_, err := c.District(context.Background(), "99999")
	assert.ErrorIs(t, err, ErrRemote)
	assert.Contains(t, err.Error(), "district not found")
}

func TestClient_District_MissingRequestedAgs(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(districtBody))
	})

	_, err := c.District(context.Background(), "09162")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestClient_District_MissingLastUpdate(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data": {"02000": {"ags": "02000"}}, "meta": {}}`))
	})

	_, err := c.District(context.Background(), "02000")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestClient_District_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c := NewClient(srv.URL)

	_, err := c.District(context.Background(), "02000")
	assert.ErrorIs(t, err, ErrRemote)
}

func TestClient_History(t *testing.T) {
	var gotPath string
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(historyBody))
	})

	resp, err := c.History(context.Background(), "02000", MetricCases, 3)
	require.NoError(t, err)

	assert.Equal(t, "/districts/02000/history/cases/3", gotPath)
	assert.Equal(t, "Hamburg", resp.Name)
	require.Len(t, resp.Points, 3)
	assert.Equal(t, 100.0, resp.Points[0].Value)
	assert.Equal(t, 90.0, resp.Points[2].Value)
	assert.True(t, resp.Points[1].Date.Equal(
		time.Date(2021, 1, 2, 0, 0, 0, 0, time.UTC)))
}

func TestClient_History_MissingMetricField(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(historyBody))
	})

	// The fixture carries cases, not deaths.
	_, err := c.History(context.Background(), "02000", MetricDeaths, 3)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestClient_History_BadDate(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{
		  "data": {"ags": "02000", "name": "Hamburg",
		    "history": [{"cases": 1, "date": "yesterday"}]},
		  "meta": {"lastUpdate": "2021-01-04T00:00:00.000Z"}
		}`))
	})

	_, err := c.History(context.Background(), "02000", MetricCases, 1)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestParseMetric(t *testing.T) {
	for _, ok := range []string{"cases", "deaths", "incidence", "recovered"} {
		m, err := ParseMetric(ok)
		assert.NoError(t, err)
		assert.Equal(t, Metric(ok), m)
	}

	_, err := ParseMetric("hospitalization")
	assert.Error(t, err)
}

func TestMetric_Field(t *testing.T) {
	assert.Equal(t, "cases", MetricCases.field())
	assert.Equal(t, "weekIncidence", MetricIncidence.field())
}
