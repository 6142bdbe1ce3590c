package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/prn-tf/printer-portal/internal/auth"
	"github.com/prn-tf/printer-portal/internal/domain"
	"github.com/prn-tf/printer-portal/internal/ratelimit"
	"github.com/prn-tf/printer-portal/internal/repository"
	"github.com/prn-tf/printer-portal/internal/service"
)

// =============================================================================
// In-memory repositories
// =============================================================================

// memStore implements every repository interface in memory so the full
// router can be exercised without a database.
type memStore struct {
	nextID    int
	users     map[string]*domain.User
	printers  map[string]*domain.Printer
	fills     []*domain.InkFillRecord
	jobs      []*domain.PrintJob
	inventory map[string]*domain.InventoryItem
	settings  map[string]*domain.UserSettings
}

func newMemStore() *memStore {
	return &memStore{
		nextID:    1,
		users:     make(map[string]*domain.User),
		printers:  make(map[string]*domain.Printer),
		inventory: make(map[string]*domain.InventoryItem),
		settings:  make(map[string]*domain.UserSettings),
	}
}

func (s *memStore) newID() string {
	id := fmt.Sprintf("%024x", s.nextID)
	s.nextID++
	return id
}

// isHexID mirrors the real store's id parsing: 24 hex characters.
func isHexID(id string) bool {
	if len(id) != 24 {
		return false
	}
	for _, c := range id {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

func (s *memStore) Create(ctx context.Context, user *domain.User) error {
	if _, exists := s.users[user.Email]; exists {
		return repository.ErrDuplicate
	}
	user.ID = s.newID()
	s.users[user.Email] = user
	return nil
}

func (s *memStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, exists := s.users[email]
	if !exists {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (s *memStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, exists := s.users[email]
	return exists, nil
}

type memPrinterRepo struct{ *memStore }

func (s memPrinterRepo) Create(ctx context.Context, printer *domain.Printer) error {
	for _, p := range s.printers {
		if p.SerialNumber == printer.SerialNumber {
			return repository.ErrDuplicate
		}
	}
	printer.ID = s.newID()
	s.printers[printer.ID] = printer
	return nil
}

func (s memPrinterRepo) GetByID(ctx context.Context, ownerEmail, id string) (*domain.Printer, error) {
	if !isHexID(id) {
		return nil, repository.ErrInvalidID
	}
	p, exists := s.printers[id]
	if !exists || p.OwnerEmail != ownerEmail {
		return nil, repository.ErrNotFound
	}
	return p, nil
}

func (s memPrinterRepo) ListByOwner(ctx context.Context, ownerEmail string) ([]*domain.Printer, error) {
	var result []*domain.Printer
	for _, p := range s.printers {
		if p.OwnerEmail == ownerEmail {
			result = append(result, p)
		}
	}
	return result, nil
}

func (s memPrinterRepo) Update(ctx context.Context, printer *domain.Printer) error {
	existing, exists := s.printers[printer.ID]
	if !exists || existing.OwnerEmail != printer.OwnerEmail {
		return repository.ErrNotFound
	}
	for id, p := range s.printers {
		if id != printer.ID && p.SerialNumber == printer.SerialNumber {
			return repository.ErrDuplicate
		}
	}
	s.printers[printer.ID] = printer
	return nil
}

func (s memPrinterRepo) Delete(ctx context.Context, ownerEmail, id string) error {
	if !isHexID(id) {
		return repository.ErrInvalidID
	}
	p, exists := s.printers[id]
	if !exists || p.OwnerEmail != ownerEmail {
		return repository.ErrNotFound
	}
	delete(s.printers, id)
	return nil
}

func (s memPrinterRepo) ExistsBySerial(ctx context.Context, serialNumber string) (bool, error) {
	for _, p := range s.printers {
		if p.SerialNumber == serialNumber {
			return true, nil
		}
	}
	return false, nil
}

type memInkFillRepo struct{ *memStore }

func (s memInkFillRepo) Create(ctx context.Context, record *domain.InkFillRecord) error {
	record.ID = s.newID()
	s.fills = append(s.fills, record)
	return nil
}

func (s memInkFillRepo) ListByPrinter(ctx context.Context, ownerEmail, printerID string) ([]*domain.InkFillRecord, error) {
	var result []*domain.InkFillRecord
	for _, r := range s.fills {
		if r.OwnerEmail == ownerEmail && r.PrinterID == printerID {
			result = append(result, r)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Timestamp.After(result[j].Timestamp) })
	return result, nil
}

func (s memInkFillRepo) ListByOwner(ctx context.Context, ownerEmail string) ([]*domain.InkFillRecord, error) {
	var result []*domain.InkFillRecord
	for _, r := range s.fills {
		if r.OwnerEmail == ownerEmail {
			result = append(result, r)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Timestamp.After(result[j].Timestamp) })
	return result, nil
}

type memJobRepo struct{ *memStore }

func (s memJobRepo) Create(ctx context.Context, job *domain.PrintJob) error {
	job.ID = s.newID()
	s.jobs = append(s.jobs, job)
	return nil
}

func (s memJobRepo) GetByID(ctx context.Context, ownerEmail, id string) (*domain.PrintJob, error) {
	if !isHexID(id) {
		return nil, repository.ErrInvalidID
	}
	for _, j := range s.jobs {
		if j.ID == id && j.OwnerEmail == ownerEmail {
			return j, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s memJobRepo) ListByPrinter(ctx context.Context, ownerEmail, printerID string) ([]*domain.PrintJob, error) {
	if !isHexID(printerID) {
		return nil, repository.ErrInvalidID
	}
	var result []*domain.PrintJob
	for _, j := range s.jobs {
		if j.OwnerEmail == ownerEmail && j.PrinterID == printerID {
			result = append(result, j)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].PrintDate.After(result[j].PrintDate) })
	return result, nil
}

func (s memJobRepo) ListByOwner(ctx context.Context, ownerEmail string) ([]*domain.PrintJob, error) {
	var result []*domain.PrintJob
	for _, j := range s.jobs {
		if j.OwnerEmail == ownerEmail {
			result = append(result, j)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].PrintDate.After(result[j].PrintDate) })
	return result, nil
}

type memInventoryRepo struct{ *memStore }

func (s memInventoryRepo) Create(ctx context.Context, item *domain.InventoryItem) error {
	for _, existing := range s.inventory {
		if existing.OwnerEmail == item.OwnerEmail && existing.InkName == item.InkName {
			return repository.ErrDuplicate
		}
	}
	item.ID = s.newID()
	s.inventory[item.ID] = item
	return nil
}

func (s memInventoryRepo) ListByOwner(ctx context.Context, ownerEmail string) ([]*domain.InventoryItem, error) {
	var result []*domain.InventoryItem
	for _, item := range s.inventory {
		if item.OwnerEmail == ownerEmail {
			result = append(result, item)
		}
	}
	return result, nil
}

func (s memInventoryRepo) Patch(ctx context.Context, ownerEmail, id string, patch domain.InventoryPatch) (*domain.InventoryItem, error) {
	if !isHexID(id) {
		return nil, repository.ErrInvalidID
	}
	item, exists := s.inventory[id]
	if !exists || item.OwnerEmail != ownerEmail {
		return nil, repository.ErrNotFound
	}
	if patch.InkName != nil {
		item.InkName = *patch.InkName
	}
	if patch.UnitVolumeML != nil {
		item.UnitVolumeML = *patch.UnitVolumeML
	}
	if patch.StockOnHand != nil {
		item.StockOnHand = *patch.StockOnHand
	}
	return item, nil
}

func (s memInventoryRepo) Delete(ctx context.Context, ownerEmail, id string) error {
	if !isHexID(id) {
		return repository.ErrInvalidID
	}
	item, exists := s.inventory[id]
	if !exists || item.OwnerEmail != ownerEmail {
		return repository.ErrNotFound
	}
	delete(s.inventory, id)
	return nil
}

func (s memInventoryRepo) ExistsByName(ctx context.Context, ownerEmail, inkName string) (bool, error) {
	for _, item := range s.inventory {
		if item.OwnerEmail == ownerEmail && item.InkName == inkName {
			return true, nil
		}
	}
	return false, nil
}

type memSettingsRepo struct{ *memStore }

func (s memSettingsRepo) GetOrCreate(ctx context.Context, ownerEmail string) (*domain.UserSettings, error) {
	if existing, exists := s.settings[ownerEmail]; exists {
		return existing, nil
	}
	created := domain.DefaultSettings(ownerEmail)
	s.settings[ownerEmail] = created
	return created, nil
}

func (s memSettingsRepo) Upsert(ctx context.Context, ownerEmail string, costCoefficient float64, currencySymbol string) (*domain.UserSettings, error) {
	updated := &domain.UserSettings{
		OwnerEmail:      ownerEmail,
		CostCoefficient: costCoefficient,
		CurrencySymbol:  currencySymbol,
	}
	s.settings[ownerEmail] = updated
	return updated, nil
}

// =============================================================================
// Test fixture
// =============================================================================

type apiFixture struct {
	handler http.Handler
	store   *memStore
}

func newAPIFixture(t *testing.T, limiter ratelimit.Limiter) *apiFixture {
	t.Helper()

	store := newMemStore()
	logger := zerolog.Nop()
	tokens := auth.NewTokens("test-secret", "printer-portal", time.Hour)

	authService := service.NewAuthService(store, tokens, 4, logger)
	printerService := service.NewPrinterService(memPrinterRepo{store}, logger)
	inkFillService := service.NewInkFillService(memInkFillRepo{store}, memPrinterRepo{store}, logger)
	jobService := service.NewJobService(memJobRepo{store}, memPrinterRepo{store}, logger)
	inventoryService := service.NewInventoryService(memInventoryRepo{store}, logger)
	settingsService := service.NewSettingsService(memSettingsRepo{store}, logger)

	router := NewRouter(RouterConfig{
		AuthHandler:      NewAuthHandler(authService, limiter, logger),
		PrinterHandler:   NewPrinterHandler(printerService, inkFillService, logger),
		InkFillHandler:   NewInkFillHandler(inkFillService, logger),
		JobHandler:       NewJobHandler(jobService, logger),
		InventoryHandler: NewInventoryHandler(inventoryService, logger),
		SettingsHandler:  NewSettingsHandler(settingsService, logger),
		AuthMiddleware:   auth.Middleware(tokens),
		AllowedOrigins:   []string{"http://localhost:5173"},
		Logger:           logger,
	})

	return &apiFixture{handler: router.Handler(), store: store}
}

func (f *apiFixture) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

// register creates an account and returns a bearer token for it.
func (f *apiFixture) register(t *testing.T, email, password string) string {
	t.Helper()

	rec := f.do(t, http.MethodPost, "/auth/register", "", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	return f.login(t, email, password)
}

func (f *apiFixture) login(t *testing.T, email, password string) string {
	t.Helper()

	form := url.Values{"username": {email}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "bearer", resp.TokenType)
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func printerPayload(serial string) map[string]any {
	return map[string]any{
		"printer_name":          "Shop Floor Printer",
		"printer_main_category": "Large Format",
		"brand":                 "Epson",
		"model":                 "SureColor",
		"serial_number":         serial,
		"location":              "Hall A",
		"color_nos":             4,
		"inks":                  []string{"Cyan", "Magenta", "Yellow", "Black"},
		"specification": map[string]any{
			"printer_width":          1600,
			"unit":                   "mm",
			"print_head":             "i3200",
			"head_nos":               2,
			"printer_control_system": "BYHX",
		},
	}
}

// =============================================================================
// Tests
// =============================================================================

func TestPublicEndpoints(t *testing.T) {
	f := newAPIFixture(t, ratelimit.NewNoOpLimiter())

	rec := f.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())

	rec = f.do(t, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthFlow(t *testing.T) {
	f := newAPIFixture(t, ratelimit.NewNoOpLimiter())

	t.Run("register and login", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/auth/register", "", map[string]string{
			"email":    "alice@example.com",
			"password": "password123",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
		body := decodeBody[map[string]string](t, rec)
		require.Equal(t, "User alice@example.com registered successfully", body["message"])

		f.login(t, "alice@example.com", "password123")
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/auth/register", "", map[string]string{
			"email":    "alice@example.com",
			"password": "password123",
		})
		require.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("short password rejected", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/auth/register", "", map[string]string{
			"email":    "bob@example.com",
			"password": "short",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		form := url.Values{"username": {"alice@example.com"}, "password": {"wrong-password"}}
		req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		f.handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		body := decodeBody[map[string]string](t, rec)
		require.Equal(t, "incorrect email or password", body["detail"])
	})

	t.Run("protected route without token", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/printers", "", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		body := decodeBody[map[string]string](t, rec)
		require.Equal(t, "not authenticated", body["detail"])
	})
}

func TestLoginRateLimit(t *testing.T) {
	f := newAPIFixture(t, ratelimit.NewMemoryLimiter(2, time.Hour))
	f.register(t, "alice@example.com", "password123")

	attempt := func() int {
		form := url.Values{"username": {"alice@example.com"}, "password": {"wrong-password"}}
		req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		f.handler.ServeHTTP(rec, req)
		return rec.Code
	}

	// The register helper's login consumed one attempt.
	require.Equal(t, http.StatusUnauthorized, attempt())
	require.Equal(t, http.StatusTooManyRequests, attempt())
}

func TestPrinterEndpoints(t *testing.T) {
	f := newAPIFixture(t, ratelimit.NewNoOpLimiter())
	alice := f.register(t, "alice@example.com", "password123")
	bob := f.register(t, "bob@example.com", "password123")

	rec := f.do(t, http.MethodPost, "/printers", alice, printerPayload("SN-100"))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeBody[domain.Printer](t, rec)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "alice@example.com", created.OwnerEmail)
	require.Equal(t, domain.StatusOnline, created.Status)

	t.Run("duplicate serial conflicts", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/printers", bob, printerPayload("SN-100"))
		require.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("invalid payload", func(t *testing.T) {
		payload := printerPayload("SN-101")
		payload["printer_name"] = ""
		rec := f.do(t, http.MethodPost, "/printers", alice, payload)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("owner reads own printer", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/printers/"+created.ID, alice, nil)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("foreign owner gets 404", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/printers/"+created.ID, bob, nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
		body := decodeBody[map[string]string](t, rec)
		require.Equal(t, "printer not found", body["detail"])
	})

	t.Run("update to taken serial conflicts", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/printers", alice, printerPayload("SN-103"))
		require.Equal(t, http.StatusCreated, rec.Code)
		other := decodeBody[domain.Printer](t, rec)

		rec = f.do(t, http.MethodPut, "/printers/"+other.ID, alice, printerPayload("SN-100"))
		require.Equal(t, http.StatusConflict, rec.Code)
		body := decodeBody[map[string]string](t, rec)
		require.Equal(t, "printer with this serial number already exists", body["detail"])
	})

	t.Run("malformed id is 400", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/printers/not-a-valid-id", alice, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("list scoped per owner", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/printers", bob, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		printers := decodeBody[[]domain.Printer](t, rec)
		require.Empty(t, printers)
	})

	t.Run("delete", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/printers", alice, printerPayload("SN-102"))
		require.Equal(t, http.StatusCreated, rec.Code)
		victim := decodeBody[domain.Printer](t, rec)

		rec = f.do(t, http.MethodDelete, "/printers/"+victim.ID, alice, nil)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = f.do(t, http.MethodGet, "/printers/"+victim.ID, alice, nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestInkFillEndpoints(t *testing.T) {
	f := newAPIFixture(t, ratelimit.NewNoOpLimiter())
	alice := f.register(t, "alice@example.com", "password123")

	rec := f.do(t, http.MethodPost, "/printers", alice, printerPayload("SN-200"))
	require.Equal(t, http.StatusCreated, rec.Code)
	printer := decodeBody[domain.Printer](t, rec)

	t.Run("record canonicalizes color", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/printers/"+printer.ID+"/ink-fill", alice, map[string]any{
			"color":         "cyan",
			"amount_liters": 1.5,
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		body := decodeBody[map[string]string](t, rec)
		require.Equal(t, "Ink fill recorded successfully", body["message"])
		require.NotEmpty(t, body["record_id"])

		rec = f.do(t, http.MethodGet, "/printers/"+printer.ID+"/ink-fills", alice, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		records := decodeBody[[]domain.InkFillRecord](t, rec)
		require.Len(t, records, 1)
		require.Equal(t, "Cyan", records[0].Color)
	})

	t.Run("unknown color lists supported inks", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/printers/"+printer.ID+"/ink-fill", alice, map[string]any{
			"color":         "Orange",
			"amount_liters": 1.0,
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody[map[string]string](t, rec)
		require.Contains(t, body["detail"], "This printer only supports: Cyan, Magenta, Yellow, Black")
	})

	t.Run("cross-printer listing", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/ink-fills", alice, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		records := decodeBody[[]domain.InkFillRecord](t, rec)
		require.Len(t, records, 1)
	})
}

func TestJobEndpoints(t *testing.T) {
	f := newAPIFixture(t, ratelimit.NewNoOpLimiter())
	alice := f.register(t, "alice@example.com", "password123")

	rec := f.do(t, http.MethodPost, "/printers", alice, printerPayload("SN-300"))
	require.Equal(t, http.StatusCreated, rec.Code)
	printer := decodeBody[domain.Printer](t, rec)

	upload := func(name string, printDate time.Time) *httptest.ResponseRecorder {
		return f.do(t, http.MethodPost, "/jobs", alice, map[string]any{
			"printer_id": printer.ID,
			"job_name":   name,
			"job_status": "Completed",
			"print_date": printDate.Format(time.RFC3339),
			"width_mm":   1200.0,
			"length_mm":  2400.0,
			"ink_consumption_ml": map[string]float64{
				"Cyan": 12.5,
			},
		})
	}

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("upload", func(t *testing.T) {
		rec := upload("banner-front", base)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		body := decodeBody[map[string]string](t, rec)
		require.Equal(t, "Job uploaded successfully", body["message"])
		require.NotEmpty(t, body["job_id"])
	})

	t.Run("unknown printer is 404", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/jobs", alice, map[string]any{
			"printer_id": "000000000000000000000abc",
			"job_name":   "orphan",
			"print_date": base.Format(time.RFC3339),
		})
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("list by printer newest first", func(t *testing.T) {
		require.Equal(t, http.StatusCreated, upload("second", base.Add(time.Hour)).Code)

		rec := f.do(t, http.MethodGet, "/jobs/by_printer/"+printer.ID, alice, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		jobs := decodeBody[[]domain.PrintJob](t, rec)
		require.Len(t, jobs, 2)
		require.Equal(t, "second", jobs[0].JobName)
	})

	t.Run("get by id", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/jobs", alice, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		jobs := decodeBody[[]domain.PrintJob](t, rec)
		require.NotEmpty(t, jobs)

		rec = f.do(t, http.MethodGet, "/jobs/"+jobs[0].ID, alice, nil)
		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestInventoryEndpoints(t *testing.T) {
	f := newAPIFixture(t, ratelimit.NewNoOpLimiter())
	alice := f.register(t, "alice@example.com", "password123")

	rec := f.do(t, http.MethodPost, "/inventory", alice, map[string]any{
		"ink_name":       "UV Cyan (1L Bottle)",
		"unit_volume_ml": 1000,
		"stock_on_hand":  4,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	item := decodeBody[domain.InventoryItem](t, rec)
	require.NotEmpty(t, item.ID)

	t.Run("duplicate name conflicts", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/inventory", alice, map[string]any{
			"ink_name":       "UV Cyan (1L Bottle)",
			"unit_volume_ml": 500,
		})
		require.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("empty patch rejected", func(t *testing.T) {
		rec := f.do(t, http.MethodPut, "/inventory/"+item.ID, alice, map[string]any{})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody[map[string]string](t, rec)
		require.Equal(t, "no update data provided", body["detail"])
	})

	t.Run("partial patch", func(t *testing.T) {
		rec := f.do(t, http.MethodPut, "/inventory/"+item.ID, alice, map[string]any{
			"stock_on_hand": 9,
		})
		require.Equal(t, http.StatusOK, rec.Code)
		updated := decodeBody[domain.InventoryItem](t, rec)
		require.Equal(t, 9, updated.StockOnHand)
		require.Equal(t, "UV Cyan (1L Bottle)", updated.InkName)
	})

	t.Run("delete", func(t *testing.T) {
		rec := f.do(t, http.MethodDelete, "/inventory/"+item.ID, alice, nil)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = f.do(t, http.MethodDelete, "/inventory/"+item.ID, alice, nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestSettingsEndpoints(t *testing.T) {
	f := newAPIFixture(t, ratelimit.NewNoOpLimiter())
	alice := f.register(t, "alice@example.com", "password123")

	t.Run("first read creates defaults", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/settings", alice, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		settings := decodeBody[domain.UserSettings](t, rec)
		require.Equal(t, 1.0, settings.CostCoefficient)
		require.Equal(t, "₹", settings.CurrencySymbol)
	})

	t.Run("update", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/settings", alice, map[string]any{
			"cost_coefficient": 1.35,
			"currency_symbol":  "$",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		settings := decodeBody[domain.UserSettings](t, rec)
		require.Equal(t, 1.35, settings.CostCoefficient)
		require.Equal(t, "$", settings.CurrencySymbol)
	})
}
