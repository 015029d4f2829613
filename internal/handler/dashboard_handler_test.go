package handler

import (
	"net/http"
	"testing"
	"time"

	"ai-solution-go/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardOverview(t *testing.T) {
	env := newTestEnv(t)
	_, adminToken := env.createUser(t, "admin", "admin")
	env.createUser(t, "bob", "customer")
	env.createUser(t, "carol", "customer")

	for _, title := range []string{"First", "Second"} {
		require.NoError(t, env.db.Create(&model.Article{Title: title, Content: "content"}).Error)
	}
	future := time.Now().UTC().Add(48 * time.Hour)
	past := time.Now().UTC().Add(-48 * time.Hour)
	require.NoError(t, env.db.Create(&model.PromotionalEvent{EventName: "Expo", EventStartDate: &future, IsUpcoming: true}).Error)
	require.NoError(t, env.db.Create(&model.PromotionalEvent{EventName: "Old Fair", EventStartDate: &past, IsUpcoming: false}).Error)
	for i := 0; i < 5; i++ {
		require.NoError(t, env.db.Create(&model.ContactInquiry{
			FullName: "Visitor",
			Email:    "v@example.com",
			Status:   "Pending",
		}).Error)
	}

	w := env.doJSON(t, http.MethodGet, "/api/dashboard", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(3), body["total_users"])
	assert.Equal(t, float64(5), body["total_inquiries"])
	assert.Equal(t, float64(2), body["total_articles"])
	assert.Equal(t, float64(1), body["upcoming_events"])
}

func TestDashboard_AdminOnly(t *testing.T) {
	env := newTestEnv(t)
	_, customerToken := env.createUser(t, "carol", "customer")

	for _, path := range []string{"/api/dashboard", "/api/inquiries/status", "/api/inquiries/timeline"} {
		w := env.doJSON(t, http.MethodGet, path, customerToken, nil)
		assert.Equal(t, http.StatusForbidden, w.Code, path)
	}
}

func TestInquiriesStatusAndTimeline(t *testing.T) {
	env := newTestEnv(t)
	_, adminToken := env.createUser(t, "admin", "admin")

	statuses := []string{"Pending", "Pending", "Resolved"}
	for i, status := range statuses {
		require.NoError(t, env.db.Create(&model.ContactInquiry{
			FullName:       "Visitor",
			Email:          "v@example.com",
			Status:         status,
			SubmissionDate: time.Now().Add(time.Duration(-i) * 24 * time.Hour),
		}).Error)
	}

	w := env.doJSON(t, http.MethodGet, "/api/inquiries/status", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Pending")
	assert.Contains(t, w.Body.String(), "Resolved")

	w = env.doJSON(t, http.MethodGet, "/api/inquiries/timeline", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	timeline := body["timeline"].([]any)
	assert.Len(t, timeline, 3)
}
