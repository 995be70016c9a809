package http_test

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/inventory"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
	apphttp "github.com/jhoicas/Farmacia-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type memSheets struct {
	mu       sync.Mutex
	sheets   map[string][]entity.InventoryItem
	fetchErr error
}

func newMemSheets() *memSheets {
	return &memSheets{sheets: map[string][]entity.InventoryItem{}}
}

func (m *memSheets) FetchItems(_ context.Context, tenantID, pharmacyID, month string) ([]entity.InventoryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	return inventory.CloneItems(m.sheets[tenantID+"/"+pharmacyID+"/"+month]), nil
}

func (m *memSheets) SaveItems(_ context.Context, sheet *entity.InventorySheet) (inventory.SaveResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sheets[sheet.TenantID+"/"+sheet.PharmacyID+"/"+sheet.Month] = inventory.CloneItems(sheet.Items)
	return inventory.SaveResult{}, nil
}

// scriptedSource emite la secuencia de eventos indicada al suscribirse.
type scriptedSource struct {
	events []sourceEvent
}

type sourceEvent struct {
	items []entity.InventoryItem
	err   error
}

func (s scriptedSource) FetchOnce(context.Context) ([]entity.InventoryItem, error) { return nil, nil }

func (s scriptedSource) Subscribe(_ context.Context, onChange func([]entity.InventoryItem, error)) (func(), error) {
	go func() {
		for _, ev := range s.events {
			onChange(ev.items, ev.err)
		}
	}()
	return func() {}, nil
}

type sourceFactory struct {
	source repository.ItemSource
}

func (f sourceFactory) Source(string, string, string) repository.ItemSource { return f.source }

func buildRouterApp(t *testing.T, sheets *memSheets, sources repository.ItemSourceFactory) *fiber.App {
	t.Helper()
	settings := inventory.DefaultSettings()
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		SheetUC:  inventory.NewSheetUseCase(sheets, settings),
		Sources:  sources,
		Settings: settings,
		Verifier: apphttp.JWTVerifier{Secret: testJWTSecret},
	})
	return app
}

func call(t *testing.T, app *fiber.App, method, path, auth string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(b))
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Hojas de inventario
// ──────────────────────────────────────────────────────────────────────────────

func TestInventory_ReemplazarYLeerHoja(t *testing.T) {
	sheets := newMemSheets()
	app := buildRouterApp(t, sheets, nil)
	owner := tokenFor(t, "", entity.RoleOwner)

	resp := call(t, app, http.MethodPut, "/api/inventory/ph-1/2024-03/items", owner, map[string]any{
		"items": []map[string]any{
			{"name": "Omeprazol", "opening": 20, "dailyIncoming": map[string]any{"01": 5}, "dailyDispense": map[string]any{"01": 3, "02": "22"}},
			{"name": "Metformina", "opening": "100", "dailyDispense": map[string]any{"01": 95}, "minStock": 10},
			{"name": "Loratadina", "opening": 50},
		},
	})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/inventory/ph-1/2024-03", owner, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var sheet dto.SheetDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sheet))
	require.Len(t, sheet.Items, 3)
	assert.Equal(t, dto.StatsDTO{TotalItems: 3, Shortages: 1, Available: 2, LowStock: 1, HighShortage: true}, sheet.Stats)

	byName := map[string]dto.ItemRowDTO{}
	for _, row := range sheet.Items {
		byName[row.Name] = row
	}
	assert.Equal(t, int64(0), byName["Omeprazol"].CurrentStock)
	assert.True(t, byName["Omeprazol"].IsShortage)
	assert.Equal(t, int64(5), byName["Metformina"].CurrentStock)
	assert.True(t, byName["Metformina"].IsLowStock)
	assert.True(t, byName["Loratadina"].IsAvailable)
}

func TestInventory_HojaDeTenantAjenoVacia(t *testing.T) {
	sheets := newMemSheets()
	sheets.sheets[testOwnerID+"/ph-1/2024-03"] = []entity.InventoryItem{entity.NewInventoryItem("X")}
	app := buildRouterApp(t, sheets, nil)

	// El dueño testUserID no ve la hoja del tenant testOwnerID.
	resp := call(t, app, http.MethodGet, "/api/inventory/ph-1/2024-03", tokenFor(t, "", entity.RoleOwner), nil)
	defer resp.Body.Close()
	var sheet dto.SheetDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sheet))
	assert.Empty(t, sheet.Items)

	// El farmacéutico de testOwnerID sí.
	resp2 := call(t, app, http.MethodGet, "/api/inventory/ph-1/2024-03", tokenFor(t, testOwnerID, entity.RolePharmacist), nil)
	defer resp2.Body.Close()
	var sheet2 dto.SheetDTO
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&sheet2))
	assert.Len(t, sheet2.Items, 1)
}

func TestInventory_AgregarDuplicadoRetorna409(t *testing.T) {
	app := buildRouterApp(t, newMemSheets(), nil)
	owner := tokenFor(t, "", entity.RoleOwner)

	resp := call(t, app, http.MethodPost, "/api/inventory/ph-1/2024-03/items", owner, dto.AddItemRequest{Name: "Ibuprofeno"})
	resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = call(t, app, http.MethodPost, "/api/inventory/ph-1/2024-03/items", owner, dto.AddItemRequest{Name: "Ibuprofeno"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "DUPLICATE")
}

func TestInventory_MovimientoYEliminarConNombreCodificado(t *testing.T) {
	app := buildRouterApp(t, newMemSheets(), nil)
	owner := tokenFor(t, "", entity.RoleOwner)

	resp := call(t, app, http.MethodPost, "/api/inventory/ph-1/2024-03/items", owner, dto.AddItemRequest{Name: "Ácido fólico"})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = call(t, app, http.MethodPost, "/api/inventory/ph-1/2024-03/movements", owner, map[string]any{
		"itemName": "Ácido fólico", "day": "05", "type": "incoming", "quantity": "12",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var sheet dto.SheetDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sheet))
	require.Len(t, sheet.Items, 1)
	assert.Equal(t, int64(12), sheet.Items[0].CurrentStock)

	resp2 := call(t, app, http.MethodDelete, "/api/inventory/ph-1/2024-03/items/%C3%81cido%20f%C3%B3lico", owner, nil)
	resp2.Body.Close()
	assert.Equal(t, http.StatusOK, resp2.StatusCode)
}

func TestInventory_ErroresDeValidacion(t *testing.T) {
	app := buildRouterApp(t, newMemSheets(), nil)
	owner := tokenFor(t, "", entity.RoleOwner)

	resp := call(t, app, http.MethodGet, "/api/inventory/ph-1/2024-13", owner, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "mes inválido")

	resp = call(t, app, http.MethodPost, "/api/inventory/ph-1/2024-04/movements", owner, map[string]any{
		"itemName": "X", "day": "31", "type": "incoming", "quantity": 1,
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "abril no tiene día 31")

	resp = call(t, app, http.MethodPost, "/api/inventory/ph-1/2024-04/movements", owner, map[string]any{
		"itemName": "no-existe", "day": "01", "type": "dispense", "quantity": 1,
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestInventory_AlmacenNoDisponibleRetorna503(t *testing.T) {
	sheets := newMemSheets()
	sheets.fetchErr = domain.ErrStoreUnavailable
	app := buildRouterApp(t, sheets, nil)

	resp := call(t, app, http.MethodGet, "/api/inventory/ph-1/2024-03/stats", tokenFor(t, "", entity.RoleOwner), nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "STORE_UNAVAILABLE")
}

// ──────────────────────────────────────────────────────────────────────────────
// Stream SSE
// ──────────────────────────────────────────────────────────────────────────────

func TestInventory_StreamEmiteStatsYTerminaConError(t *testing.T) {
	low := entity.NewInventoryItem("Metformina")
	low.Opening = 5
	source := scriptedSource{events: []sourceEvent{
		{items: []entity.InventoryItem{low}},
		{err: errors.New("listener cerrado")},
	}}
	app := buildRouterApp(t, newMemSheets(), sourceFactory{source: source})

	resp := call(t, app, http.MethodGet, "/api/inventory/ph-1/2024-03/stream", tokenFor(t, "", entity.RoleOwner), nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	var events []string
	var data []string
	sc := bufio.NewScanner(resp.Body)
	for sc.Scan() {
		line := sc.Text()
		switch {
		case strings.HasPrefix(line, "event: "):
			events = append(events, strings.TrimPrefix(line, "event: "))
		case strings.HasPrefix(line, "data: "):
			data = append(data, strings.TrimPrefix(line, "data: "))
		}
	}
	require.Equal(t, []string{"stats", "error"}, events)

	var stats dto.StatsDTO
	require.NoError(t, json.Unmarshal([]byte(data[0]), &stats))
	assert.Equal(t, dto.StatsDTO{TotalItems: 1, Available: 1, LowStock: 1, HighShortage: true}, stats)
	assert.Contains(t, data[1], "STREAM_ERROR")
}

func TestInventory_StreamSinFuenteRetorna503(t *testing.T) {
	app := buildRouterApp(t, newMemSheets(), nil)
	resp := call(t, app, http.MethodGet, "/api/inventory/ph-1/2024-03/stream", tokenFor(t, "", entity.RoleOwner), nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Permisos por rol y cola offline deshabilitada
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_FarmaceuticoNoAdministraFarmacias(t *testing.T) {
	app := buildRouterApp(t, newMemSheets(), nil)
	pharmacist := tokenFor(t, testOwnerID, entity.RolePharmacist)

	for _, path := range []string{"/api/pharmacies", "/api/dashboard/summary"} {
		resp := call(t, app, http.MethodGet, path, pharmacist, nil)
		resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode, path)
	}
}

func TestRouter_FarmaceuticoSoloRegistraSuAsistencia(t *testing.T) {
	app := buildRouterApp(t, newMemSheets(), nil)
	resp := call(t, app, http.MethodPost, "/api/attendance", tokenFor(t, testOwnerID, entity.RolePharmacist), map[string]any{
		"pharmacy_id": "ph-1", "pharmacist_id": "otro", "date": "2024-03-01", "status": "present",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRouter_OfflineDeshabilitado(t *testing.T) {
	app := buildRouterApp(t, newMemSheets(), nil)
	owner := tokenFor(t, "", entity.RoleOwner)

	resp := call(t, app, http.MethodGet, "/api/offline/status", owner, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var status dto.OfflineStatusDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	assert.False(t, status.Enabled)

	resp2 := call(t, app, http.MethodPost, "/api/offline/replay", owner, nil)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusConflict, resp2.StatusCode)
	body, _ := io.ReadAll(resp2.Body)
	assert.Contains(t, string(body), "OFFLINE_DISABLED")
}
