package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/transaction"
	"github.com/cmlabs-hris/hrms-backend-go/internal/repository/memory"
	departmentService "github.com/cmlabs-hris/hrms-backend-go/internal/service/department"
	employeeService "github.com/cmlabs-hris/hrms-backend-go/internal/service/employee"
	leaveService "github.com/cmlabs-hris/hrms-backend-go/internal/service/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Status  int               `json:"status"`
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

type pageBody struct {
	Items    []map[string]interface{} `json:"items"`
	Total    int64                    `json:"total"`
	Page     int                      `json:"page"`
	PageSize int                      `json:"page_size"`
}

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	store := memory.NewStore()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	return NewRouter(
		logger,
		[]string{"http://localhost:3000"},
		NewDepartmentHandler(departmentService.NewDepartmentService(transaction.Passthrough, store.Departments())),
		NewEmployeeHandler(employeeService.NewEmployeeService(transaction.Passthrough, store.Employees(), store.Departments())),
		NewLeaveBalanceHandler(leaveService.NewLeaveBalanceService(transaction.Passthrough, store.LeaveBalances())),
		NewHealthHandler(store),
	)
}

func do(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") && rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func dataID(t *testing.T, env envelope) float64 {
	t.Helper()
	var item map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &item))
	return item["id"].(float64)
}

func TestRouter_RootAndHealth(t *testing.T) {
	h := newTestServer(t)

	rec, _ := do(t, h, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "HRMS API", rec.Body.String())

	rec, _ = do(t, h, http.MethodGet, "/health/db", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"Healthy"}`, rec.Body.String())

	rec, _ = do(t, h, http.MethodGet, "/ping", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_DepartmentLifecycle(t *testing.T) {
	h := newTestServer(t)

	rec, env := do(t, h, http.MethodPost, "/api/v1/departments", `{"name":"  Engineering "}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/api/v1/departments/1", rec.Header().Get("Location"))
	assert.JSONEq(t, `{"id":1,"name":"Engineering"}`, string(env.Data))

	rec, env = do(t, h, http.MethodPost, "/api/v1/departments", `{"name":"engineering "}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "Department 'engineering' already exists.", env.Error.Message)

	rec, _ = do(t, h, http.MethodPost, "/api/v1/departments", `{"name":"Finance"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, env = do(t, h, http.MethodGet, "/api/v1/departments?search=eng", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var page pageBody
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Equal(t, int64(1), page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Engineering", page.Items[0]["name"])
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.PageSize)

	rec, env = do(t, h, http.MethodGet, "/api/v1/departments/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"name":"Engineering"}`, string(env.Data))

	rec, env = do(t, h, http.MethodPut, "/api/v1/departments/1", `{"name":"Platform"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"name":"Platform"}`, string(env.Data))

	rec, _ = do(t, h, http.MethodDelete, "/api/v1/departments/1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec, _ = do(t, h, http.MethodDelete, "/api/v1/departments/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = do(t, h, http.MethodPut, "/api/v1/departments/1", `{"name":"Gone"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_BadInput(t *testing.T) {
	h := newTestServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		field  string
	}{
		{name: "non integer id", method: http.MethodGet, path: "/api/v1/departments/abc", field: "id"},
		{name: "zero id", method: http.MethodGet, path: "/api/v1/employees/0", field: "id"},
		{name: "non integer page", method: http.MethodGet, path: "/api/v1/departments?page=x", field: "page"},
		{name: "non integer size", method: http.MethodGet, path: "/api/v1/leave-balances?size=ten", field: "size"},
		{name: "blank name", method: http.MethodPost, path: "/api/v1/departments", body: `{"name":"   "}`, field: "name"},
		{name: "negative annual", method: http.MethodPost, path: "/api/v1/leave-balances", body: `{"emp_no":"E1","annual":-1}`, field: "annual"},
		{name: "malformed json", method: http.MethodPost, path: "/api/v1/departments", body: `{"name":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := do(t, h, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			require.NotNil(t, env.Error)
			assert.False(t, env.Success)
			if tt.field != "" {
				assert.Contains(t, env.Error.Details, tt.field)
			}
		})
	}
}

func TestRouter_LeaveBalanceValidationWritesNothing(t *testing.T) {
	h := newTestServer(t)

	rec, _ := do(t, h, http.MethodPost, "/api/v1/leave-balances", `{"emp_no":"EMP001","annual":-1}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec, env := do(t, h, http.MethodGet, "/api/v1/leave-balances", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var page pageBody
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Zero(t, page.Total)
	assert.NotNil(t, page.Items)
}

func TestRouter_LeaveBalanceByEmpNo(t *testing.T) {
	h := newTestServer(t)

	rec, _ := do(t, h, http.MethodPost, "/api/v1/leave-balances", `{"emp_no":"emp001","annual":12,"sick":3,"unpaid":0}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/api/v1/leave-balances/1", rec.Header().Get("Location"))

	rec, env := do(t, h, http.MethodGet, "/api/v1/leave-balances/emp/EMP001", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"emp_no":"emp001","annual":12,"sick":3,"unpaid":0}`, string(env.Data))

	rec, _ = do(t, h, http.MethodGet, "/api/v1/leave-balances/emp/EMP404", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_EmployeeDepartmentRules(t *testing.T) {
	h := newTestServer(t)

	rec, env := do(t, h, http.MethodPost, "/api/v1/employees",
		`{"emp_no":"E-1","full_name":"Ada","email":"ada@example.com","department_id":99,"hire_date":"2024-01-02"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "Department '99' was not found.", env.Error.Message)

	rec, env = do(t, h, http.MethodPost, "/api/v1/departments", `{"name":"Ops"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	deptID := dataID(t, env)
	require.Equal(t, float64(1), deptID)

	rec, env = do(t, h, http.MethodPost, "/api/v1/employees",
		`{"emp_no":"E-1","full_name":"Ada","email":"ada@example.com","department_id":1,"hire_date":"2024-01-02"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t,
		`{"id":1,"emp_no":"E-1","full_name":"Ada","email":"ada@example.com","department_id":1,"department_name":"Ops","hire_date":"2024-01-02"}`,
		string(env.Data))

	rec, _ = do(t, h, http.MethodDelete, "/api/v1/departments/1", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRouter_ConcurrentCreateSameEmpNo(t *testing.T) {
	h := newTestServer(t)

	rec, _ := do(t, h, http.MethodPost, "/api/v1/departments", `{"name":"Ops"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	body := `{"emp_no":"E-7","full_name":"Twin","email":"twin@example.com","department_id":1,"hire_date":"2024-01-02"}`
	codes := make([]int, 2)
	var wg sync.WaitGroup
	for i := range codes {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/employees", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			codes[i] = rec.Code
		}(i)
	}
	wg.Wait()

	assert.ElementsMatch(t, []int{http.StatusCreated, http.StatusConflict}, codes)
}

func TestRouter_ListPageBeyondAddressableRange(t *testing.T) {
	h := newTestServer(t)

	rec, _ := do(t, h, http.MethodPost, "/api/v1/departments", `{"name":"Engineering"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, env := do(t, h, http.MethodGet, "/api/v1/departments?page=9223372036854775807&size=10", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var page pageBody
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Equal(t, int64(1), page.Total)
	assert.Empty(t, page.Items)
	assert.NotNil(t, page.Items)
	assert.Equal(t, 9223372036854775807, page.Page)
}
