package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amsa221/softskills-project/internal/models"
	"github.com/Amsa221/softskills-project/test/helpers"
)

func TestPayment_CreateForcesPendingAndOwner(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	token := helpers.TokenFor(t, "user-1", "Alice", "user")

	res, body := ts.SendRequest(t, "POST", "/api/v1/payments", token, map[string]interface{}{
		"amount": "49.90",
		"method": "card",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var payment models.Payment
	require.NoError(t, json.Unmarshal([]byte(body), &payment))
	assert.Equal(t, models.PaymentStatusPending, payment.Status)
	assert.Equal(t, "user-1", payment.OwnerID)
	assert.Equal(t, "49.9", payment.Amount.String())
}

func TestPayment_CreateRejectsNonPositiveAmount(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	token := helpers.TokenFor(t, "user-1", "Alice", "user")

	res, _ := ts.SendRequest(t, "POST", "/api/v1/payments", token, map[string]interface{}{
		"amount": "0",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, _ = ts.SendRequest(t, "POST", "/api/v1/payments", token, map[string]interface{}{
		"amount": "-5.00",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestPayment_CompletionUpdatesDailyStats(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	staffToken := helpers.TokenFor(t, "staff-1", "Mod", "staff")

	payment := helpers.CreateTestPayment(t, ts.DB, "user-1", "100.00", models.PaymentStatusPending)

	res, body := ts.SendRequest(t, "PATCH", "/api/v1/payments/"+payment.ID+"/status", staffToken,
		map[string]interface{}{"status": "completed", "transaction_id": "tx-123"})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var stats []models.DailyStat
	require.NoError(t, ts.DB.Find(&stats).Error)
	require.Len(t, stats, 1)
	assert.Equal(t, uint(1), stats[0].TotalTransactions)
	assert.True(t, stats[0].TotalRevenue.Equal(payment.Amount),
		"want %s, got %s", payment.Amount, stats[0].TotalRevenue)
}

func TestPayment_RecompleteIsRejectedAndStatsUnchanged(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	staffToken := helpers.TokenFor(t, "staff-1", "Mod", "staff")

	payment := helpers.CreateTestPayment(t, ts.DB, "user-1", "30.00", models.PaymentStatusPending)

	res, _ := ts.SendRequest(t, "PATCH", "/api/v1/payments/"+payment.ID+"/status", staffToken,
		map[string]interface{}{"status": "completed"})
	require.Equal(t, http.StatusOK, res.StatusCode)

	// Completed is terminal: completing again, or failing afterwards,
	// must be refused without touching the totals.
	res, _ = ts.SendRequest(t, "PATCH", "/api/v1/payments/"+payment.ID+"/status", staffToken,
		map[string]interface{}{"status": "completed"})
	assert.Equal(t, http.StatusConflict, res.StatusCode)

	res, _ = ts.SendRequest(t, "PATCH", "/api/v1/payments/"+payment.ID+"/status", staffToken,
		map[string]interface{}{"status": "failed"})
	assert.Equal(t, http.StatusConflict, res.StatusCode)

	var stats []models.DailyStat
	require.NoError(t, ts.DB.Find(&stats).Error)
	require.Len(t, stats, 1)
	assert.Equal(t, uint(1), stats[0].TotalTransactions)
}

func TestPayment_FailureDoesNotTouchStats(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	staffToken := helpers.TokenFor(t, "staff-1", "Mod", "staff")

	payment := helpers.CreateTestPayment(t, ts.DB, "user-1", "30.00", models.PaymentStatusPending)

	res, _ := ts.SendRequest(t, "PATCH", "/api/v1/payments/"+payment.ID+"/status", staffToken,
		map[string]interface{}{"status": "failed"})
	require.Equal(t, http.StatusOK, res.StatusCode)

	var count int64
	require.NoError(t, ts.DB.Model(&models.DailyStat{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestPayment_ConcurrentCompletionsAggregateExactlyOnce(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	staffToken := helpers.TokenFor(t, "staff-1", "Mod", "staff")

	const n = 8
	payments := make([]models.Payment, n)
	for i := range payments {
		payments[i] = helpers.CreateTestPayment(t, ts.DB, "user-1", "10.00", models.PaymentStatusPending)
	}

	// Every payment gets hammered by two racing completion requests.
	var wg sync.WaitGroup
	okCount := make(chan int, 2*n)
	for i := range payments {
		for j := 0; j < 2; j++ {
			wg.Add(1)
			go func(id string) {
				defer wg.Done()
				res, _ := ts.SendRequest(t, "PATCH", "/api/v1/payments/"+id+"/status", staffToken,
					map[string]interface{}{"status": "completed"})
				if res.StatusCode == http.StatusOK {
					okCount <- 1
				}
			}(payments[i].ID)
		}
	}
	wg.Wait()
	close(okCount)

	wins := 0
	for range okCount {
		wins++
	}
	assert.Equal(t, n, wins, "each payment completes exactly once")

	var stats []models.DailyStat
	require.NoError(t, ts.DB.Find(&stats).Error)
	require.Len(t, stats, 1)
	assert.Equal(t, uint(n), stats[0].TotalTransactions)
	assert.True(t, stats[0].TotalRevenue.Equal(decimal.NewFromInt(10*n)),
		"got %s", stats[0].TotalRevenue)
}

func TestPayment_VisibilityScopedToOwner(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	mine := helpers.CreateTestPayment(t, ts.DB, "user-1", "15.00", models.PaymentStatusPending)
	helpers.CreateTestPayment(t, ts.DB, "user-2", "25.00", models.PaymentStatusPending)

	aliceToken := helpers.TokenFor(t, "user-1", "Alice", "user")
	staffToken := helpers.TokenFor(t, "staff-1", "Mod", "staff")

	// The owner sees only their own rows.
	res, body := ts.SendRequest(t, "GET", "/api/v1/payments", aliceToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"total":1`)
	assert.Contains(t, body, mine.ID)

	// A foreign payment reads as absent, not forbidden.
	res, _ = ts.SendRequest(t, "GET", "/api/v1/payments/"+mine.ID, helpers.TokenFor(t, "user-2", "Bob", "user"), nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	// Staff sees the whole ledger.
	res, body = ts.SendRequest(t, "GET", "/api/v1/payments", staffToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"total":2`)

	// Anonymous callers are rejected outright.
	res, _ = ts.SendRequest(t, "GET", "/api/v1/payments", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestPayment_StatusUpdateRequiresElevatedRole(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	payment := helpers.CreateTestPayment(t, ts.DB, "user-1", "15.00", models.PaymentStatusPending)
	userToken := helpers.TokenFor(t, "user-1", "Alice", "user")

	res, _ := ts.SendRequest(t, "PATCH", "/api/v1/payments/"+payment.ID+"/status", userToken,
		map[string]interface{}{"status": "completed"})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestAnalytics_DailyFeed(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	staffToken := helpers.TokenFor(t, "staff-1", "Mod", "staff")

	for i := 0; i < 3; i++ {
		p := helpers.CreateTestPayment(t, ts.DB, "user-1", "20.00", models.PaymentStatusPending)
		res, _ := ts.SendRequest(t, "PATCH", "/api/v1/payments/"+p.ID+"/status", staffToken,
			map[string]interface{}{"status": "completed"})
		require.Equal(t, http.StatusOK, res.StatusCode)
	}

	res, _ := ts.SendRequest(t, "GET", "/api/v1/analytics/daily", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	userToken := helpers.TokenFor(t, "user-1", "Alice", "user")
	res, body := ts.SendRequest(t, "GET", "/api/v1/analytics/daily", userToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"total_transactions":3`)
	assert.Contains(t, body, fmt.Sprintf(`"total_revenue":"%s"`, "60"))

	// The collection root serves the same feed.
	res, rootBody := ts.SendRequest(t, "GET", "/api/v1/analytics", userToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, body, rootBody)
}
