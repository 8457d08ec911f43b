package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanielSantaR/final-web-auth/internal/backend"
	"github.com/DanielSantaR/final-web-auth/internal/models"
	"github.com/DanielSantaR/final-web-auth/pkg/hash"
	"github.com/DanielSantaR/final-web-auth/pkg/logging"
)

// employeeBackend fakes the backend's employee surface and captures the
// payloads the gateway forwards.
type employeeBackend struct {
	mu        sync.Mutex
	byID      map[string]models.Employee
	byUser    map[string]models.Employee
	created   *models.CreateEmployee
	patched   *models.UpdateEmployee
	listFails bool
}

func (b *employeeBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/employees", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		switch r.Method {
		case http.MethodPost:
			var in models.CreateEmployee
			_ = json.NewDecoder(r.Body).Decode(&in)
			b.created = &in
			emp := models.Employee{
				IdentityCard: in.IdentityCard,
				Username:     in.Username,
				Email:        in.Email,
				Role:         in.Role,
				IsActive:     in.IsActive,
			}
			b.byID[emp.IdentityCard] = emp
			b.byUser[emp.Username] = emp
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(emp)
		default:
			if b.listFails {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			out := make([]models.Employee, 0, len(b.byID))
			for _, emp := range b.byID {
				out = append(out, emp)
			}
			_ = json.NewEncoder(w).Encode(out)
		}
	})
	mux.HandleFunc("/api/employees/username/", func(w http.ResponseWriter, r *http.Request) {
		username := strings.TrimPrefix(r.URL.Path, "/api/employees/username/")
		b.mu.Lock()
		emp, ok := b.byUser[username]
		b.mu.Unlock()
		if !ok {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(emp)
	})
	mux.HandleFunc("/api/employees/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/api/employees/")
		b.mu.Lock()
		defer b.mu.Unlock()
		emp, ok := b.byID[id]
		if !ok {
			http.NotFound(w, r)
			return
		}
		if r.Method == http.MethodPatch {
			var in models.UpdateEmployee
			_ = json.NewDecoder(r.Body).Decode(&in)
			b.patched = &in
			if in.Email != nil {
				emp.Email = *in.Email
			}
			b.byID[id] = emp
		}
		_ = json.NewEncoder(w).Encode(emp)
	})
	return mux
}

func newEmployeeService(t *testing.T, fb *employeeBackend, mail *fakeMailer) *EmployeeService {
	t.Helper()

	if fb.byID == nil {
		fb.byID = map[string]models.Employee{}
	}
	if fb.byUser == nil {
		fb.byUser = map[string]models.Employee{}
	}

	srv := httptest.NewServer(fb.handler())
	t.Cleanup(srv.Close)

	return &EmployeeService{
		Backend: backend.New(srv.URL, 2*time.Second, 0, logging.New("error")),
		Mail:    mail,
	}
}

func TestEmployeeCreate(t *testing.T) {
	t.Parallel()

	in := models.CreateEmployee{
		IdentityCard: "1001",
		Names:        "Jane",
		Surnames:     "Doe",
		Phone:        "3001234567",
		Email:        "jane@example.com",
		Username:     "jdoe",
		IsActive:     true,
		Role:         models.RoleTechnician,
		Password:     "s3cretpass",
	}

	t.Run("hashes password and sends welcome", func(t *testing.T) {
		fb := &employeeBackend{}
		mail := &fakeMailer{}
		svc := newEmployeeService(t, fb, mail)

		emp, err := svc.Create(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, "jdoe", emp.Username)

		fb.mu.Lock()
		created := fb.created
		fb.mu.Unlock()
		require.NotNil(t, created)
		assert.NotEqual(t, "s3cretpass", created.Password, "password must not cross the wire in clear")
		assert.True(t, hash.VerifyPassword(created.Password, "s3cretpass"))

		mail.mu.Lock()
		sent := mail.others
		mail.mu.Unlock()
		assert.Equal(t, 1, sent)
	})

	t.Run("duplicate username", func(t *testing.T) {
		fb := &employeeBackend{byUser: map[string]models.Employee{"jdoe": {Username: "jdoe"}}}
		svc := newEmployeeService(t, fb, &fakeMailer{})

		_, err := svc.Create(context.Background(), in)
		require.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("duplicate identity card", func(t *testing.T) {
		fb := &employeeBackend{byID: map[string]models.Employee{"1001": {IdentityCard: "1001"}}}
		svc := newEmployeeService(t, fb, &fakeMailer{})

		_, err := svc.Create(context.Background(), in)
		require.ErrorIs(t, err, ErrIdentityCardTaken)
	})
}

func TestEmployeeByID(t *testing.T) {
	t.Parallel()

	fb := &employeeBackend{byID: map[string]models.Employee{"1001": {IdentityCard: "1001", Username: "jdoe"}}}
	svc := newEmployeeService(t, fb, &fakeMailer{})

	emp, err := svc.ByID(context.Background(), "1001")
	require.NoError(t, err)
	assert.Equal(t, "jdoe", emp.Username)

	_, err = svc.ByID(context.Background(), "9999")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestEmployeeList_BackendFailureIsEmpty(t *testing.T) {
	t.Parallel()

	fb := &employeeBackend{listFails: true}
	svc := newEmployeeService(t, fb, &fakeMailer{})

	employees, err := svc.List(context.Background(), models.EmployeeFilter{})
	require.NoError(t, err)
	assert.Empty(t, employees)
}

func TestEmployeeUpdate(t *testing.T) {
	t.Parallel()

	fb := &employeeBackend{byID: map[string]models.Employee{"1001": {IdentityCard: "1001"}}}
	svc := newEmployeeService(t, fb, &fakeMailer{})

	newPassword := "brand-new-pass"
	_, err := svc.Update(context.Background(), "1001", models.UpdateEmployee{Password: &newPassword})
	require.NoError(t, err)

	fb.mu.Lock()
	patched := fb.patched
	fb.mu.Unlock()
	require.NotNil(t, patched)
	require.NotNil(t, patched.Password)
	assert.True(t, hash.VerifyPassword(*patched.Password, newPassword))

	_, err = svc.Update(context.Background(), "9999", models.UpdateEmployee{})
	require.ErrorIs(t, err, ErrNotFound)
}
