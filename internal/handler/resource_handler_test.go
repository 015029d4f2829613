package handler

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"ai-solution-go/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactCreate_PublicAndListAdminOnly(t *testing.T) {
	env := newTestEnv(t)

	// 访客无需登录即可提交联系表单
	w := env.doJSON(t, http.MethodPost, "/api/contacts", "", map[string]any{
		"full_name": "Jane Visitor",
		"email":     "jane@example.com",
		"country":   "UK",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Contact inquiry created successfully!", body["message"])
	contact := body["contact"].(map[string]any)
	assert.Equal(t, "Pending", contact["status"])

	// 列表仅限管理员
	w = env.doJSON(t, http.MethodGet, "/api/contacts", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	_, adminToken := env.createUser(t, "admin", "admin")
	w = env.doJSON(t, http.MethodGet, "/api/contacts", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestContactCreate_MissingRequiredFields(t *testing.T) {
	env := newTestEnv(t)

	w := env.doJSON(t, http.MethodPost, "/api/contacts", "", map[string]any{
		"email": "jane@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSolutionPartialUpdate_RetainsUntouchedFields(t *testing.T) {
	env := newTestEnv(t)
	_, adminToken := env.createUser(t, "admin", "admin")

	w := env.doJSON(t, http.MethodPost, "/api/solutions", adminToken, map[string]any{
		"title":        "Smart QC",
		"description":  "Visual inspection",
		"industry":     "Manufacturing",
		"key_features": "Realtime defect detection",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeBody(t, w)["solution"].(map[string]any)
	id := int(created["id"].(float64))

	// 只改 title，其他字段必须保持原值
	w = env.doJSON(t, http.MethodPut, fmt.Sprintf("/api/solutions/%d", id), adminToken, map[string]any{
		"title": "Smart QC v2",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.doJSON(t, http.MethodGet, fmt.Sprintf("/api/solutions/%d", id), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	stored := decodeBody(t, w)
	assert.Equal(t, "Smart QC v2", stored["title"])
	assert.Equal(t, "Visual inspection", stored["description"])
	assert.Equal(t, "Manufacturing", stored["industry"])
	assert.Equal(t, "Realtime defect detection", stored["key_features"])
}

func TestArticleDeleteThenGet_NotFound(t *testing.T) {
	env := newTestEnv(t)
	_, adminToken := env.createUser(t, "admin", "admin")

	w := env.doJSON(t, http.MethodPost, "/api/articles", adminToken, map[string]any{
		"title":   "Launch notes",
		"content": "We launched.",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeBody(t, w)["article"].(map[string]any)
	id := int(created["id"].(float64))

	w = env.doJSON(t, http.MethodDelete, fmt.Sprintf("/api/articles/%d", id), adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.doJSON(t, http.MethodGet, fmt.Sprintf("/api/articles/%d", id), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestArticleList_IncludesAuthorName(t *testing.T) {
	env := newTestEnv(t)
	admin, adminToken := env.createUser(t, "admin", "admin")

	w := env.doJSON(t, http.MethodPost, "/api/articles", adminToken, map[string]any{
		"title":   "Welcome",
		"content": "First post",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	req := env.newCookieRequest(t, http.MethodGet, "/api/articles", adminToken)
	resp := env.serve(req)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), fmt.Sprintf("\"author_name\":\"%s\"", admin.Username))
}

func TestEventList_RecomputesUpcomingFlag(t *testing.T) {
	env := newTestEnv(t)

	// 已经开始的活动却被标记为 upcoming
	past := time.Now().UTC().Add(-24 * time.Hour)
	event := model.PromotionalEvent{EventName: "Old Expo", EventStartDate: &past, IsUpcoming: true}
	require.NoError(t, env.db.Create(&event).Error)

	// 任何一次列表调用都会重算标记
	w := env.doJSON(t, http.MethodGet, "/api/events", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stored model.PromotionalEvent
	require.NoError(t, env.db.First(&stored, event.ID).Error)
	assert.False(t, stored.IsUpcoming)
}

func TestEventList_Filter(t *testing.T) {
	env := newTestEnv(t)

	future := time.Now().UTC().Add(24 * time.Hour)
	past := time.Now().UTC().Add(-24 * time.Hour)
	require.NoError(t, env.db.Create(&model.PromotionalEvent{EventName: "Future Expo", EventStartDate: &future, IsUpcoming: true}).Error)
	require.NoError(t, env.db.Create(&model.PromotionalEvent{EventName: "Past Expo", EventStartDate: &past, IsUpcoming: true}).Error)

	w := env.doJSON(t, http.MethodGet, "/api/events?filter=upcoming", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Future Expo")
	assert.NotContains(t, w.Body.String(), "Past Expo")

	w = env.doJSON(t, http.MethodGet, "/api/events?filter=past", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Past Expo")
	assert.NotContains(t, w.Body.String(), "Future Expo")

	w = env.doJSON(t, http.MethodGet, "/api/events?filter=bogus", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserRoleUpdate_InvalidRole(t *testing.T) {
	env := newTestEnv(t)
	_, adminToken := env.createUser(t, "admin", "admin")
	target, _ := env.createUser(t, "carol", "customer")

	w := env.doJSON(t, http.MethodPut, fmt.Sprintf("/api/users/%d/role", target.ID), adminToken, map[string]any{
		"role": "overlord",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// 存储的角色保持不变
	var stored model.User
	require.NoError(t, env.db.First(&stored, target.ID).Error)
	assert.Equal(t, "customer", stored.Role)
}

func TestFeedbackAverage_Endpoint(t *testing.T) {
	env := newTestEnv(t)
	customer, customerToken := env.createUser(t, "carol", "customer")

	for _, rating := range []int{3, 4, 5} {
		w := env.doJSON(t, http.MethodPost, "/api/feedbacks", customerToken, map[string]any{
			"customer_id":   customer.ID,
			"feedback_text": "good service",
			"rating":        rating,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := env.doJSON(t, http.MethodGet, fmt.Sprintf("/api/feedbacks/average?customer_id=%d", customer.ID), customerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.InDelta(t, 4.0, body["average_rating"].(float64), 1e-9)
}

func TestFeedbackCreate_InvalidRating(t *testing.T) {
	env := newTestEnv(t)
	_, customerToken := env.createUser(t, "carol", "customer")

	w := env.doJSON(t, http.MethodPost, "/api/feedbacks", customerToken, map[string]any{
		"feedback_text": "meh",
		"rating":        9,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Rating must be between 1 and 5", decodeBody(t, w)["error"])
}
