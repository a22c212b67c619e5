package matters_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidjulakidze/lolly-law-assessment/internal/matters"
	"github.com/davidjulakidze/lolly-law-assessment/internal/shared"
	_ "github.com/davidjulakidze/lolly-law-assessment/testing"
)

// ============================================================================
// MOCK REPOSITORY
// ============================================================================

type mockRepository struct {
	records   map[int64]*matters.Matter
	customers map[int64]bool
	nextID    int64
}

func newMockRepository(customerIDs ...int64) *mockRepository {
	repo := &mockRepository{
		records:   make(map[int64]*matters.Matter),
		customers: make(map[int64]bool),
		nextID:    1,
	}
	for _, id := range customerIDs {
		repo.customers[id] = true
	}
	return repo
}

func (m *mockRepository) Get(ctx context.Context, customerID, matterID int64) (*matters.Matter, error) {
	matter, ok := m.records[matterID]
	if !ok || matter.CustomerID != customerID {
		return nil, shared.ErrNotFound
	}
	copied := *matter
	return &copied, nil
}

func (m *mockRepository) List(ctx context.Context, req matters.ListMattersRequest) ([]matters.Matter, int, error) {
	var matched []matters.Matter
	for _, matter := range m.records {
		if req.CustomerID != nil && matter.CustomerID != *req.CustomerID {
			continue
		}
		if req.Status != nil && matter.Status != *req.Status {
			continue
		}
		if req.Search != nil {
			needle := strings.ToLower(*req.Search)
			haystack := strings.ToLower(matter.Title)
			if matter.Description != nil {
				haystack += " " + strings.ToLower(*matter.Description)
			}
			if !strings.Contains(haystack, needle) {
				continue
			}
		}
		matched = append(matched, *matter)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })
	total := len(matched)
	if req.Offset >= total {
		return nil, total, nil
	}
	end := req.Offset + req.Limit
	if end > total {
		end = total
	}
	return matched[req.Offset:end], total, nil
}

func (m *mockRepository) Create(ctx context.Context, matter matters.Matter) (int64, error) {
	matter.ID = m.nextID
	matter.CreatedAt = time.Now()
	m.records[matter.ID] = &matter
	m.nextID++
	return matter.ID, nil
}

func (m *mockRepository) Update(ctx context.Context, customerID, matterID int64, updates map[string]interface{}) error {
	matter, ok := m.records[matterID]
	if !ok || matter.CustomerID != customerID {
		return shared.ErrNotFound
	}
	for column, value := range updates {
		text, _ := value.(string)
		switch column {
		case "title":
			matter.Title = text
		case "description":
			matter.Description = &text
		case "status":
			matter.Status = text
		}
	}
	return nil
}

func (m *mockRepository) Delete(ctx context.Context, customerID, matterID int64) error {
	matter, ok := m.records[matterID]
	if !ok || matter.CustomerID != customerID {
		return shared.ErrNotFound
	}
	delete(m.records, matterID)
	return nil
}

func (m *mockRepository) CustomerExists(ctx context.Context, customerID int64) (bool, error) {
	return m.customers[customerID], nil
}

func (m *mockRepository) seed(customerID int64, title, status string) *matters.Matter {
	id, _ := m.Create(context.Background(), matters.Matter{
		Title:      title,
		Status:     status,
		CustomerID: customerID,
	})
	return m.records[id]
}

// ============================================================================
// TEST SETUP
// ============================================================================

func setupRouter(repo *mockRepository) chi.Router {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	handler := matters.NewHandler(logger, matters.NewService(repo), nil)
	r := chi.NewRouter()
	r.Route("/customers", handler.MountCustomerRoutes)
	r.Route("/matters", handler.MountRoutes)
	return r
}

func doJSON(t *testing.T, router chi.Router, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	return res
}

// ============================================================================
// CREATE
// ============================================================================

func TestCreateMatter(t *testing.T) {
	repo := newMockRepository(1)
	router := setupRouter(repo)

	res := doJSON(t, router, http.MethodPost, "/customers/1/matters", map[string]any{
		"title":       "Estate planning",
		"description": "Will and trust review",
		"status":      "open",
	})

	require.Equal(t, http.StatusCreated, res.Code)

	var created matters.Matter
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, int64(1), created.CustomerID)
	assert.Equal(t, matters.StatusOpen, created.Status)
}

func TestCreateMatterUnknownCustomer(t *testing.T) {
	repo := newMockRepository(1)
	router := setupRouter(repo)

	res := doJSON(t, router, http.MethodPost, "/customers/99/matters", map[string]any{
		"title":  "Estate planning",
		"status": "open",
	})

	assert.Equal(t, http.StatusNotFound, res.Code)
}

func TestCreateMatterInvalidStatus(t *testing.T) {
	repo := newMockRepository(1)
	router := setupRouter(repo)

	res := doJSON(t, router, http.MethodPost, "/customers/1/matters", map[string]any{
		"title":  "Estate planning",
		"status": "pending",
	})

	assert.Equal(t, http.StatusBadRequest, res.Code)
}

func TestCreateMatterWithoutDescription(t *testing.T) {
	repo := newMockRepository(1)
	router := setupRouter(repo)

	res := doJSON(t, router, http.MethodPost, "/customers/1/matters", map[string]any{
		"title":  "Quick consult",
		"status": "open",
	})

	require.Equal(t, http.StatusCreated, res.Code)

	var created matters.Matter
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &created))
	assert.Nil(t, created.Description)
}

// ============================================================================
// CUSTOMER SCOPING
// ============================================================================

func TestGetMatterScopedToCustomer(t *testing.T) {
	repo := newMockRepository(1, 2)
	seeded := repo.seed(1, "Estate planning", matters.StatusOpen)
	router := setupRouter(repo)

	res := doJSON(t, router, http.MethodGet, "/customers/1/matters/1", nil)
	require.Equal(t, http.StatusOK, res.Code)

	var got matters.Matter
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &got))
	assert.Equal(t, seeded.ID, got.ID)

	// The same matter id under another customer is invisible.
	res = doJSON(t, router, http.MethodGet, "/customers/2/matters/1", nil)
	assert.Equal(t, http.StatusNotFound, res.Code)
}

func TestUpdateMatterWrongCustomer(t *testing.T) {
	repo := newMockRepository(1, 2)
	repo.seed(1, "Estate planning", matters.StatusOpen)
	router := setupRouter(repo)

	res := doJSON(t, router, http.MethodPut, "/customers/2/matters/1", map[string]any{
		"status": "closed",
	})

	assert.Equal(t, http.StatusNotFound, res.Code)
}

func TestDeleteMatterWrongCustomer(t *testing.T) {
	repo := newMockRepository(1, 2)
	repo.seed(1, "Estate planning", matters.StatusOpen)
	router := setupRouter(repo)

	res := doJSON(t, router, http.MethodDelete, "/customers/2/matters/1", nil)
	assert.Equal(t, http.StatusNotFound, res.Code)

	res = doJSON(t, router, http.MethodGet, "/customers/1/matters/1", nil)
	assert.Equal(t, http.StatusOK, res.Code, "matter survives a scoped miss")
}

// ============================================================================
// UPDATE / DELETE
// ============================================================================

func TestUpdateMatterStatus(t *testing.T) {
	repo := newMockRepository(1)
	repo.seed(1, "Estate planning", matters.StatusOpen)
	router := setupRouter(repo)

	res := doJSON(t, router, http.MethodPut, "/customers/1/matters/1", map[string]any{
		"status": "in_progress",
	})

	require.Equal(t, http.StatusOK, res.Code)

	var updated matters.Matter
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &updated))
	assert.Equal(t, matters.StatusInProgress, updated.Status)
	assert.Equal(t, "Estate planning", updated.Title, "untouched fields survive partial update")
}

func TestUpdateMatterInvalidStatus(t *testing.T) {
	repo := newMockRepository(1)
	repo.seed(1, "Estate planning", matters.StatusOpen)
	router := setupRouter(repo)

	res := doJSON(t, router, http.MethodPut, "/customers/1/matters/1", map[string]any{
		"status": "archived",
	})

	assert.Equal(t, http.StatusBadRequest, res.Code)
}

func TestDeleteMatter(t *testing.T) {
	repo := newMockRepository(1)
	repo.seed(1, "Estate planning", matters.StatusOpen)
	router := setupRouter(repo)

	res := doJSON(t, router, http.MethodDelete, "/customers/1/matters/1", nil)

	require.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body.String(), "Matter deleted successfully")
}

// ============================================================================
// LISTS
// ============================================================================

func TestListMattersForCustomer(t *testing.T) {
	repo := newMockRepository(1, 2)
	repo.seed(1, "Estate planning", matters.StatusOpen)
	repo.seed(1, "Contract dispute", matters.StatusInProgress)
	repo.seed(2, "Trademark filing", matters.StatusOpen)
	router := setupRouter(repo)

	res := doJSON(t, router, http.MethodGet, "/customers/1/matters", nil)

	require.Equal(t, http.StatusOK, res.Code)

	var listed []matters.Matter
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &listed))
	require.Len(t, listed, 2)
	for _, matter := range listed {
		assert.Equal(t, int64(1), matter.CustomerID)
	}
}

func TestListMattersForCustomerEmpty(t *testing.T) {
	repo := newMockRepository(1)
	router := setupRouter(repo)

	res := doJSON(t, router, http.MethodGet, "/customers/1/matters", nil)

	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "[]", strings.TrimSpace(res.Body.String()))
}

func TestListMattersForUnknownCustomer(t *testing.T) {
	repo := newMockRepository(1)
	router := setupRouter(repo)

	res := doJSON(t, router, http.MethodGet, "/customers/99/matters", nil)

	assert.Equal(t, http.StatusNotFound, res.Code)
}

type listBody struct {
	Matters    []matters.Matter  `json:"matters"`
	Pagination shared.Pagination `json:"pagination"`
}

func TestListMattersAcrossCustomers(t *testing.T) {
	repo := newMockRepository(1, 2)
	repo.seed(1, "Estate planning", matters.StatusOpen)
	repo.seed(2, "Trademark filing", matters.StatusClosed)
	router := setupRouter(repo)

	res := doJSON(t, router, http.MethodGet, "/matters", nil)

	require.Equal(t, http.StatusOK, res.Code)

	var body listBody
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.Len(t, body.Matters, 2)
	assert.Equal(t, 2, body.Pagination.Total)
}

func TestListMattersStatusFilter(t *testing.T) {
	repo := newMockRepository(1)
	repo.seed(1, "Estate planning", matters.StatusOpen)
	repo.seed(1, "Contract dispute", matters.StatusClosed)
	router := setupRouter(repo)

	res := doJSON(t, router, http.MethodGet, "/matters?status=closed", nil)

	require.Equal(t, http.StatusOK, res.Code)

	var body listBody
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	require.Len(t, body.Matters, 1)
	assert.Equal(t, matters.StatusClosed, body.Matters[0].Status)
}

func TestListMattersInvalidStatusFilter(t *testing.T) {
	repo := newMockRepository(1)
	router := setupRouter(repo)

	res := doJSON(t, router, http.MethodGet, "/matters?status=bogus", nil)

	assert.Equal(t, http.StatusBadRequest, res.Code)
}

func TestListMattersSearch(t *testing.T) {
	repo := newMockRepository(1)
	repo.seed(1, "Estate planning", matters.StatusOpen)
	repo.seed(1, "Contract dispute", matters.StatusOpen)
	router := setupRouter(repo)

	res := doJSON(t, router, http.MethodGet, "/matters?search=contract", nil)

	require.Equal(t, http.StatusOK, res.Code)

	var body listBody
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	require.Len(t, body.Matters, 1)
	assert.Equal(t, "Contract dispute", body.Matters[0].Title)
}
