package integration_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amsa221/softskills-project/internal/models"
	"github.com/Amsa221/softskills-project/test/helpers"
)

func TestNewsletter_SubscribeOnceOnly(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	body := map[string]interface{}{"email": "Lecteur@Example.com", "nom": "Lecteur"}

	res, resBody := ts.SendRequest(t, "POST", "/api/v1/newsletter", "", body)
	require.Equal(t, http.StatusCreated, res.StatusCode, resBody)
	assert.Contains(t, resBody, "lecteur@example.com")

	// Same address again, whatever the casing, is a duplicate.
	res, _ = ts.SendRequest(t, "POST", "/api/v1/newsletter", "", map[string]interface{}{
		"email": "lecteur@example.com",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode)
}

func TestNewsletter_ResubscribeReactivates(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, "POST", "/api/v1/newsletter", "", map[string]interface{}{
		"email": "revenant@example.com",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	// Unsubscribed addresses keep their row; subscribing again must
	// reactivate it instead of colliding with the unique index.
	err := ts.DB.Model(&models.NewsletterSubscription{}).
		Where("email = ?", "revenant@example.com").
		Update("actif", false).Error
	require.NoError(t, err)

	res, body = ts.SendRequest(t, "POST", "/api/v1/newsletter", "", map[string]interface{}{
		"email": "revenant@example.com",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var sub models.NewsletterSubscription
	require.NoError(t, ts.DB.First(&sub, "email = ?", "revenant@example.com").Error)
	assert.True(t, sub.Actif)
}

func TestNewsletter_SubscribeValidatesEmail(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	res, _ := ts.SendRequest(t, "POST", "/api/v1/newsletter", "", map[string]interface{}{
		"email": "pas-un-email",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestContact_MessageMinimumLength(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	res, _ := ts.SendRequest(t, "POST", "/api/v1/contact", "", map[string]interface{}{
		"nom":     "Visiteur",
		"email":   "visiteur@example.com",
		"sujet":   "Question",
		"message": "Trop court.",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, body := ts.SendRequest(t, "POST", "/api/v1/contact", "", map[string]interface{}{
		"nom":     "Visiteur",
		"email":   "visiteur@example.com",
		"sujet":   "Question",
		"message": "Un message de contact suffisamment detaille pour etre transmis.",
	})
	require.Equal(t, http.StatusAccepted, res.StatusCode, body)
}
