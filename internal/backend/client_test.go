package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanielSantaR/final-web-auth/internal/models"
	"github.com/DanielSantaR/final-web-auth/pkg/logging"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 2*time.Second, 3, logging.New("error"))
}

func TestClient_ExpectedStatusIsExact(t *testing.T) {
	t.Parallel()

	// The backend answers 200 where the caller declared 201: success must
	// not be assumed from "some 2xx".
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"identity_card":"123"}`))
	}))

	_, err := client.CreateOwner(context.Background(), models.CreateOwner{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.NotErrorIs(t, err, ErrUnavailable)
}

func TestClient_RetriesTransientStatus(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_ = json.NewEncoder(w).Encode(models.Owner{IdentityCard: "123"})
	}))

	owner, err := client.OwnerByID(context.Background(), "123")
	require.NoError(t, err)
	assert.Equal(t, "123", owner.IdentityCard)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_ExhaustedRetriesAreUnavailable(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))

	_, err := client.OwnerByID(context.Background(), "123")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
	// First attempt plus three retries.
	assert.Equal(t, int32(4), calls.Load())
}

func TestClient_NoRetryOnNonIdempotentMethod(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	_, err := client.UpdateOwner(context.Background(), "123", models.UpdateOwner{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_NotFoundStaysDistinguishable(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	_, err := client.OwnerByID(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.NotErrorIs(t, err, ErrUnavailable)
}

func TestClient_TransportFailureIsUnavailable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens anymore

	client := New(srv.URL, time.Second, 0, logging.New("error"))
	_, err := client.OwnerByID(context.Background(), "123")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_EncodesFilterParams(t *testing.T) {
	t.Parallel()

	var gotQuery string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[]`))
	}))

	limit := 10
	_, err := client.Vehicles(context.Background(), models.VehicleFilter{
		Brand: "Renault",
		State: "in repair",
		Limit: &limit,
	})
	require.NoError(t, err)
	assert.Contains(t, gotQuery, "brand=Renault")
	assert.Contains(t, gotQuery, "state=in+repair")
	assert.Contains(t, gotQuery, "limit=10")
}

func TestClient_SendsJSONBody(t *testing.T) {
	t.Parallel()

	var gotBody models.CreateVehicleXOwner
	var gotContentType string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.VehicleXOwner{ID: 7, VehicleID: gotBody.VehicleID, OwnerID: gotBody.OwnerID})
	}))

	assignment, err := client.CreateAssignment(context.Background(), models.CreateVehicleXOwner{
		VehicleID: "ABC123",
		OwnerID:   "52123456",
	})
	require.NoError(t, err)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "ABC123", gotBody.VehicleID)
	assert.Equal(t, int64(7), assignment.ID)
}

func TestClient_DecodeFailureIsError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))

	_, err := client.OwnerByID(context.Background(), "123")
	require.Error(t, err)
}
