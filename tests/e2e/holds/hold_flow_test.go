//go:build e2e

package holds_test

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"booking-holds/internal/handler/dto/response"
	"booking-holds/tests/common/builder"
	"booking-holds/tests/common/dbtest"
	"booking-holds/tests/common/httptest"
	"booking-holds/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	holdsURL    = "/api/holds"
	bookingsURL = "/api/bookings"
)

type HoldSuite struct {
	e2e.SharedSuite
}

func (s *HoldSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestHoldSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(HoldSuite))
}

func (s *HoldSuite) futureSlot() time.Time {
	return time.Now().UTC().Add(time.Hour).Truncate(time.Second)
}

func (s *HoldSuite) createHold(t *testing.T, sessionID string, start time.Time) response.HoldResponse {
	t.Helper()

	b := builder.NewHoldBuilder()
	b.SessionID = sessionID
	b.Start = start
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, holdsURL, b.BuildCreateRequestDTO(), "")
	require.Equal(t, http.StatusCreated, w.Code, "hold creation failed: %s", w.Body.String())

	var created response.HoldResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	return created
}

// =============================================================================
// TestHoldLifecycle - create / replay / conflict / release
// =============================================================================

func (s *HoldSuite) TestHoldLifecycle() {
	s.Run("Normal case: create returns an active hold with a lease", func() {
		t := s.T()
		start := s.futureSlot()

		created := s.createHold(t, "session-1", start)
		require.Equal(t, "active", created.Status)
		require.False(t, created.Extended)
		require.True(t, created.ExpiresAt.After(created.CreatedAt))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, holdsURL+"/"+created.ID.String(), nil, "")
		var fetched response.HoldResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &fetched)
		require.Equal(t, created.ID, fetched.ID)
		require.False(t, fetched.Expired)
	})

	s.Run("Idempotency: identical retry lands on the same hold", func() {
		t := s.T()
		start := s.futureSlot()

		first := s.createHold(t, "session-1", start)
		second := s.createHold(t, "session-1", start)

		require.Equal(t, first.ID, second.ID)
		require.True(t, second.Replayed)
		require.Equal(t, first.ExpiresAt.Unix(), second.ExpiresAt.Unix())
	})

	s.Run("Mutual exclusion: rival session gets E_OVERLAP", func() {
		t := s.T()
		start := s.futureSlot()

		s.createHold(t, "session-1", start)

		b := builder.NewHoldBuilder()
		b.SessionID = "session-2"
		b.Start = start.Add(15 * time.Minute)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, holdsURL, b.BuildCreateRequestDTO(), "")
		httptest.AssertErrorCode(t, w, http.StatusConflict, "E_OVERLAP")
	})

	s.Run("Mutual exclusion under race: concurrent creators yield one winner", func() {
		t := s.T()
		start := s.futureSlot()

		const rivals = 8
		var wg sync.WaitGroup
		codes := make([]int, rivals)
		bodies := make([]string, rivals)
		for i := 0; i < rivals; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				b := builder.NewHoldBuilder()
				b.SessionID = fmt.Sprintf("racer-%d", i)
				b.Start = start.Add(time.Duration(i) * time.Minute)
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, holdsURL, b.BuildCreateRequestDTO(), "")
				codes[i] = w.Code
				bodies[i] = w.Body.String()
			}(i)
		}
		wg.Wait()

		winners := 0
		for i, code := range codes {
			switch code {
			case http.StatusCreated:
				winners++
			case http.StatusConflict:
				require.Contains(t, bodies[i], "E_OVERLAP")
			case http.StatusServiceUnavailable:
				// serialization loser; retry belongs to the client
			default:
				t.Fatalf("unexpected status %d: %s", code, bodies[i])
			}
		}
		require.Equal(t, 1, winners, "exactly one racing creator may take the slot")

		var live int
		err := s.DB.QueryRow(context.Background(),
			"SELECT COUNT(*) FROM holds WHERE status = 'active' AND expires_at > now()").Scan(&live)
		require.NoError(t, err)
		require.Equal(t, 1, live)
	})

	s.Run("Release: a released slot is immediately claimable", func() {
		t := s.T()
		start := s.futureSlot()

		first := s.createHold(t, "session-1", start)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, holdsURL+"/"+first.ID.String()+"/release", nil, "")
		var ok response.OkResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &ok)
		require.True(t, ok.Ok)

		// Repeat release is harmless.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, holdsURL+"/"+first.ID.String()+"/release", nil, "")
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)

		second := s.createHold(t, "session-2", start)
		require.NotEqual(t, first.ID, second.ID)
	})

	s.Run("Lazy expiry: a lapsed hold frees its slot without any write", func() {
		t := s.T()
		start := s.futureSlot()

		first := s.createHold(t, "session-1", start)

		// Lease is 2s in the e2e config.
		time.Sleep(3 * time.Second)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, holdsURL+"/"+first.ID.String(), nil, "")
		var fetched response.HoldResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &fetched)
		require.Equal(t, "active", fetched.Status)
		require.True(t, fetched.Expired)

		second := s.createHold(t, "session-2", start)
		require.NotEqual(t, first.ID, second.ID)
	})
}

// =============================================================================
// TestExtendHold - one-shot lease extension
// =============================================================================

func (s *HoldSuite) TestExtendHold() {
	s.Run("Normal case: one extension pushes the lease out", func() {
		t := s.T()
		created := s.createHold(t, "session-1", s.futureSlot())

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, holdsURL+"/"+created.ID.String()+"/extend", nil, "")
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, holdsURL+"/"+created.ID.String(), nil, "")
		var fetched response.HoldResponse
		httptest.AssertSuccessResponse(t, gw, http.StatusOK, &fetched)
		require.True(t, fetched.Extended)
		require.True(t, fetched.ExpiresAt.After(created.ExpiresAt))
	})

	s.Run("One-shot: a second extension is refused", func() {
		t := s.T()
		created := s.createHold(t, "session-1", s.futureSlot())

		url := holdsURL + "/" + created.ID.String() + "/extend"
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, "")
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "hold already extended")
	})

	s.Run("Unknown hold: extend returns 404", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, holdsURL+"/"+uuid.NewString()+"/extend", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "hold not found")
	})
}

// =============================================================================
// TestFinalizeBooking - hold-to-booking conversion
// =============================================================================

func (s *HoldSuite) TestFinalizeBooking() {
	s.Run("Normal case: finalize produces a pending booking at catalog price", func() {
		t := s.T()
		serviceID := dbtest.CreateTestService(t, s.DB, "Premium Session", 9900, 45, false)
		created := s.createHold(t, "session-1", s.futureSlot())

		b := builder.NewBookingBuilder()
		b.HoldID = created.ID
		b.ServiceIDs = []uuid.UUID{serviceID}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, b.BuildFinalizeRequestDTO(), "")

		var finalized response.FinalizeBookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &finalized)
		require.NotEqual(t, uuid.Nil, finalized.BookingID)

		var status string
		var priceCents int64
		err := s.DB.QueryRow(context.Background(),
			"SELECT status, price_cents FROM bookings WHERE id = $1", finalized.BookingID).
			Scan(&status, &priceCents)
		require.NoError(t, err)
		require.Equal(t, "pending", status)
		require.Equal(t, int64(9900), priceCents)
	})

	s.Run("Price integrity: client price is ignored", func() {
		t := s.T()
		serviceID := dbtest.CreateTestService(t, s.DB, "Premium Session", 9900, 45, false)
		created := s.createHold(t, "session-1", s.futureSlot())

		price := int64(1)
		b := builder.NewBookingBuilder()
		b.HoldID = created.ID
		b.ServiceIDs = []uuid.UUID{serviceID}
		req := b.BuildFinalizeRequestDTO()
		req.Price = &price

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, "")
		var finalized response.FinalizeBookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &finalized)

		var priceCents int64
		err := s.DB.QueryRow(context.Background(),
			"SELECT price_cents FROM bookings WHERE id = $1", finalized.BookingID).Scan(&priceCents)
		require.NoError(t, err)
		require.Equal(t, int64(9900), priceCents)
	})

	s.Run("Default service: empty serviceIds falls back to the catalog default", func() {
		t := s.T()
		created := s.createHold(t, "session-1", s.futureSlot())

		b := builder.NewBookingBuilder()
		b.HoldID = created.ID
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, b.BuildFinalizeRequestDTO(), "")

		var finalized response.FinalizeBookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &finalized)

		// Seeded default service is 5000 cents.
		var priceCents int64
		err := s.DB.QueryRow(context.Background(),
			"SELECT price_cents FROM bookings WHERE id = $1", finalized.BookingID).Scan(&priceCents)
		require.NoError(t, err)
		require.Equal(t, int64(5000), priceCents)
	})

	s.Run("No double finalize: second call fails, exactly one booking exists", func() {
		t := s.T()
		created := s.createHold(t, "session-1", s.futureSlot())

		b := builder.NewBookingBuilder()
		b.HoldID = created.ID
		req := b.BuildFinalizeRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, "")
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, nil)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "hold is not active")

		var count int
		err := s.DB.QueryRow(context.Background(),
			"SELECT COUNT(*) FROM bookings WHERE hold_id = $1", created.ID).Scan(&count)
		require.NoError(t, err)
		require.Equal(t, 1, count)
	})

	s.Run("Expired hold: finalize is refused", func() {
		t := s.T()
		created := s.createHold(t, "session-1", s.futureSlot())

		time.Sleep(3 * time.Second)

		b := builder.NewBookingBuilder()
		b.HoldID = created.ID
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, b.BuildFinalizeRequestDTO(), "")
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "hold expired")
	})

	s.Run("Finalized slot stays blocked for new holds", func() {
		t := s.T()
		start := s.futureSlot()
		created := s.createHold(t, "session-1", start)

		b := builder.NewBookingBuilder()
		b.HoldID = created.ID
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, b.BuildFinalizeRequestDTO(), "")
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, nil)

		// The hold record no longer blocks, but the booking does.
		hb := builder.NewHoldBuilder()
		hb.SessionID = "session-2"
		hb.Start = start
		hw := httptest.PerformRequest(t, s.Router, http.MethodPost, holdsURL, hb.BuildCreateRequestDTO(), "")
		httptest.AssertErrorCode(t, hw, http.StatusConflict, "E_OVERLAP")
	})

	s.Run("Unknown hold: finalize returns 404", func() {
		t := s.T()
		b := builder.NewBookingBuilder()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, b.BuildFinalizeRequestDTO(), "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "hold not found")
	})
}
