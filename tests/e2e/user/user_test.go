//go:build e2e

package user_test

import (
	"net/http"
	"testing"

	"shareit/internal/handler/dto/request"
	"shareit/internal/handler/dto/response"
	"shareit/tests/common/dbtest"
	"shareit/tests/common/httptest"
	"shareit/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	usersURL    = "/users"
	itemsURL    = "/items"
	requestsURL = "/requests"
)

type UserSuite struct {
	e2e.SharedSuite
}

func (s *UserSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestUserSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(UserSuite))
}

// =============================================================================
// TestUserLifecycle - user CRUD API tests
// =============================================================================

func (s *UserSuite) TestUserLifecycle() {
	s.Run("Normal case: create, read, patch and delete a user", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, usersURL,
			request.CreateUserRequest{Name: "Alice", Email: "alice@example.com"}, uuid.Nil)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.UserResponse
		err := httptest.DecodeResponseBody(t, w.Body, &created)
		require.NoError(t, err)
		require.Equal(t, "Alice", created.Name)
		require.Equal(t, "alice@example.com", created.Email)

		url := usersURL + "/" + created.ID.String()

		name := "Alice B."
		w2 := httptest.PerformRequest(t, s.Router, http.MethodPatch, url,
			request.UpdateUserRequest{Name: &name}, uuid.Nil)
		require.Equal(t, http.StatusOK, w2.Code)

		var patched response.UserResponse
		err = httptest.DecodeResponseBody(t, w2.Body, &patched)
		require.NoError(t, err)
		require.Equal(t, "Alice B.", patched.Name)
		require.Equal(t, "alice@example.com", patched.Email, "Email must survive a name-only patch")

		w3 := httptest.PerformRequest(t, s.Router, http.MethodDelete, url, nil, uuid.Nil)
		require.Equal(t, http.StatusNoContent, w3.Code)

		w4 := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, uuid.Nil)
		require.Equal(t, http.StatusNotFound, w4.Code)
	})

	s.Run("Error case: duplicate email yields 409 Conflict", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "Alice", "taken@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, usersURL,
			request.CreateUserRequest{Name: "Bob", Email: "taken@example.com"}, uuid.Nil)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("Error case: malformed email is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, usersURL,
			request.CreateUserRequest{Name: "Bob", Email: "not-an-email"}, uuid.Nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// =============================================================================
// TestItemLifecycle - item CRUD and search API tests
// =============================================================================

func (s *UserSuite) TestItemLifecycle() {
	s.Run("Normal case: create, patch and search an item", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner", "owner@example.com")

		available := true
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, itemsURL,
			request.CreateItemRequest{Name: "Cordless Drill", Description: "18V drill", Available: &available}, ownerID)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.ItemResponse
		err := httptest.DecodeResponseBody(t, w.Body, &created)
		require.NoError(t, err)

		// search is case-insensitive and hits name or description
		w2 := httptest.PerformRequest(t, s.Router, http.MethodGet, itemsURL+"/search?text=dRiLl", nil, ownerID)
		require.Equal(t, http.StatusOK, w2.Code)

		var found []response.ItemResponse
		err = httptest.DecodeResponseBody(t, w2.Body, &found)
		require.NoError(t, err)
		require.Len(t, found, 1)
		require.Equal(t, created.ID, found[0].ID)

		// withdrawing the item hides it from search
		off := false
		url := itemsURL + "/" + created.ID.String()
		w3 := httptest.PerformRequest(t, s.Router, http.MethodPatch, url,
			request.UpdateItemRequest{Available: &off}, ownerID)
		require.Equal(t, http.StatusOK, w3.Code)

		w4 := httptest.PerformRequest(t, s.Router, http.MethodGet, itemsURL+"/search?text=drill", nil, ownerID)
		require.Equal(t, http.StatusOK, w4.Code)

		var foundAfter []response.ItemResponse
		err = httptest.DecodeResponseBody(t, w4.Body, &foundAfter)
		require.NoError(t, err)
		require.Empty(t, foundAfter)
	})

	s.Run("Error case: non-owner patch looks like a missing item", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner", "owner@example.com")
		strangerID := dbtest.CreateTestUser(t, s.DB, "stranger", "stranger@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Ladder", "3m ladder", true)

		name := "My ladder now"
		url := itemsURL + "/" + itemID.String()
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, url,
			request.UpdateItemRequest{Name: &name}, strangerID)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("Normal case: blank search text yields an empty list", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner", "owner@example.com")
		dbtest.CreateTestItem(t, s.DB, ownerID, "Ladder", "3m ladder", true)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, itemsURL+"/search?text=", nil, ownerID)
		require.Equal(t, http.StatusOK, w.Code)

		var found []response.ItemResponse
		err := httptest.DecodeResponseBody(t, w.Body, &found)
		require.NoError(t, err)
		require.Empty(t, found)
	})
}

// =============================================================================
// TestRequestFlow - item request API tests
// =============================================================================

func (s *UserSuite) TestRequestFlow() {
	s.Run("Normal case: request, answer with an item, see the answer", func() {
		t := s.T()

		requesterID := dbtest.CreateTestUser(t, s.DB, "requester", "requester@example.com")
		ownerID := dbtest.CreateTestUser(t, s.DB, "owner", "owner@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, requestsURL,
			request.CreateRequestRequest{Description: "need a tile cutter"}, requesterID)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.RequestResponse
		err := httptest.DecodeResponseBody(t, w.Body, &created)
		require.NoError(t, err)
		require.Empty(t, created.Items)

		// the owner sees it among other users' requests
		w2 := httptest.PerformRequest(t, s.Router, http.MethodGet, requestsURL+"/all", nil, ownerID)
		require.Equal(t, http.StatusOK, w2.Code)

		var others []response.RequestResponse
		err = httptest.DecodeResponseBody(t, w2.Body, &others)
		require.NoError(t, err)
		require.Len(t, others, 1)

		// but not among their own
		w3 := httptest.PerformRequest(t, s.Router, http.MethodGet, requestsURL, nil, ownerID)
		require.Equal(t, http.StatusOK, w3.Code)

		var own []response.RequestResponse
		err = httptest.DecodeResponseBody(t, w3.Body, &own)
		require.NoError(t, err)
		require.Empty(t, own)

		// answering the request links the item to it
		available := true
		w4 := httptest.PerformRequest(t, s.Router, http.MethodPost, itemsURL,
			request.CreateItemRequest{Name: "Tile Cutter", Description: "manual cutter", Available: &available, RequestID: &created.ID}, ownerID)
		require.Equal(t, http.StatusCreated, w4.Code, w4.Body.String())

		w5 := httptest.PerformRequest(t, s.Router, http.MethodGet, requestsURL+"/"+created.ID.String(), nil, requesterID)
		require.Equal(t, http.StatusOK, w5.Code)

		var answered response.RequestResponse
		err = httptest.DecodeResponseBody(t, w5.Body, &answered)
		require.NoError(t, err)
		require.Len(t, answered.Items, 1)
		require.Equal(t, "Tile Cutter", answered.Items[0].Name)
	})

	s.Run("Error case: blank description is rejected", func() {
		t := s.T()

		requesterID := dbtest.CreateTestUser(t, s.DB, "requester", "requester@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, requestsURL,
			request.CreateRequestRequest{Description: "   "}, requesterID)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
