package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Restaurante-api/internal/application/auth"
	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/order"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/infrastructure/memory"
	"github.com/jhoicas/Restaurante-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/Restaurante-api/internal/interfaces/http"
	"github.com/jhoicas/Restaurante-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testPassword  = "clave-del-mozo"
)

type testServer struct {
	app     *fiber.App
	store   *memory.Store
	userID  int64
	clientA int64
	clientB int64
	clientC int64 // el usuario no es miembro
}

// newTestServer arma la API completa sobre el store en memoria.
// El usuario mozo@example.com es miembro de los clients A y B.
func newTestServer(t *testing.T, renderer order.TicketRenderer) *testServer {
	t.Helper()
	return newTestServerWithLog(t, renderer, logger.Nop())
}

func newTestServerWithLog(t *testing.T, renderer order.TicketRenderer, log *logger.Logger) *testServer {
	t.Helper()
	store := memory.NewStore()
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.User{Email: "mozo@example.com", Name: "Mozo", PasswordHash: string(hash), IsActive: true}
	require.NoError(t, store.Users().Create(ctx, u))

	ids := make([]int64, 0, 3)
	for _, name := range []string{"cantina-a", "cantina-b", "cantina-c"} {
		c := &entity.Client{Name: name, Slug: name}
		require.NoError(t, store.Clients().Create(ctx, c))
		ids = append(ids, c.ID)
	}
	require.NoError(t, store.Clients().AddMember(ctx, ids[0], u.ID))
	require.NoError(t, store.Clients().AddMember(ctx, ids[1], u.ID))

	authUC := auth.NewAuthUseCase(store.Users(), store.Clients(), auth.JWTConfig{
		Secret:     testJWTSecret,
		Issuer:     "restaurante-api-test",
		AccessTTL:  5 * time.Minute,
		RefreshTTL: time.Hour,
	})
	orderUC := order.NewUseCase(store.Repos(), store, store.Clients(), renderer)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:  authUC,
		OrderUC: orderUC,
		Log:     log,
		Metrics: apphttp.NewMetrics("restaurante"),
	})
	return &testServer{app: app, store: store, userID: u.ID, clientA: ids[0], clientB: ids[1], clientC: ids[2]}
}

// do lanza la petición y decodifica la respuesta JSON en out (si no es nil).
func (s *testServer) do(t *testing.T, method, path, token string, body any, out any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, ok := body.(string)
		if !ok {
			b, err := json.Marshal(body)
			require.NoError(t, err)
			raw = string(b)
		}
		reader = bytes.NewBufferString(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func intp(v int) *int { return &v }

func itoa(v int64) string { return strconv.FormatInt(v, 10) }

func (s *testServer) login(t *testing.T, clientID int64) dto.TokenResponse {
	t.Helper()
	var out dto.TokenResponse
	resp := s.do(t, http.MethodPost, "/v1/auth/token/", "", dto.TokenRequest{
		Email: "mozo@example.com", Password: testPassword, ClientID: clientID,
	}, &out)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestToken_EmiteParaClientDelUsuario(t *testing.T) {
	s := newTestServer(t, nil)
	tok := s.login(t, s.clientA)
	assert.Equal(t, s.clientA, tok.ClientID)
	assert.NotEmpty(t, tok.Access)
	assert.NotEmpty(t, tok.Refresh)

	var me dto.UserResponse
	resp := s.do(t, http.MethodGet, "/v1/auth/me/", tok.Access, nil, &me)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, s.userID, me.ID)
	assert.Equal(t, "mozo@example.com", me.Email)
}

func TestToken_Rechazos(t *testing.T) {
	s := newTestServer(t, nil)

	cases := []struct {
		name   string
		body   any
		status int
		code   string
	}{
		{"password incorrecto", dto.TokenRequest{Email: "mozo@example.com", Password: "otra", ClientID: s.clientA}, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"email desconocido", dto.TokenRequest{Email: "nadie@example.com", Password: testPassword, ClientID: s.clientA}, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"client ajeno", dto.TokenRequest{Email: "mozo@example.com", Password: testPassword, ClientID: s.clientC}, http.StatusUnauthorized, "INVALID_CLIENT"},
		{"sin client_id", dto.TokenRequest{Email: "mozo@example.com", Password: testPassword}, http.StatusBadRequest, "VALIDATION"},
		{"json roto", `{"email": `, http.StatusBadRequest, "INVALID_BODY"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out dto.ErrorResponse
			resp := s.do(t, http.MethodPost, "/v1/auth/token/", "", tc.body, &out)
			assert.Equal(t, tc.status, resp.StatusCode)
			assert.Equal(t, tc.code, out.Code)
		})
	}
}

func TestRefresh_MantieneClient(t *testing.T) {
	s := newTestServer(t, nil)
	tok := s.login(t, s.clientB)

	var out dto.RefreshResponse
	resp := s.do(t, http.MethodPost, "/v1/auth/token/refresh/", "", dto.RefreshRequest{Refresh: tok.Refresh}, &out)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// el access nuevo ve los datos de B
	s.do(t, http.MethodPost, "/v1/order/tables/", out.Access, dto.TableRequest{Number: intp(3), Description: "terraza"}, nil)
	var list []dto.TableResponse
	s.do(t, http.MethodGet, "/v1/order/tables/", tok.Access, nil, &list)
	assert.Len(t, list, 1)

	var errOut dto.ErrorResponse
	resp = s.do(t, http.MethodPost, "/v1/auth/token/refresh/", "", dto.RefreshRequest{Refresh: tok.Access}, &errOut)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "un access token no sirve como refresh")
	assert.Equal(t, "INVALID_TOKEN", errOut.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware + TenantScope
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinHeader(t *testing.T) {
	s := newTestServer(t, nil)
	var out dto.ErrorResponse
	resp := s.do(t, http.MethodGet, "/v1/order/tables/", "", nil, &out)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", out.Code)
}

func TestAuthMiddleware_FormatoIncorrecto(t *testing.T) {
	s := newTestServer(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/v1/order/tables/", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenInvalido(t *testing.T) {
	s := newTestServer(t, nil)
	var out dto.ErrorResponse
	resp := s.do(t, http.MethodGet, "/v1/order/tables/", "token.invalido.aqui", nil, &out)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", out.Code)
}

func TestAuthMiddleware_RefreshNoSirveComoAccess(t *testing.T) {
	s := newTestServer(t, nil)
	tok := s.login(t, s.clientA)
	resp := s.do(t, http.MethodGet, "/v1/order/tables/", tok.Refresh, nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_MembresiaRevocada(t *testing.T) {
	s := newTestServer(t, nil)
	tok := s.login(t, s.clientA)
	require.NoError(t, s.store.Clients().RemoveMember(context.Background(), s.clientA, s.userID))

	var out dto.ErrorResponse
	resp := s.do(t, http.MethodGet, "/v1/order/tables/", tok.Access, nil, &out)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MEMBERSHIP_REVOKED", out.Code)
}

func TestAuthMiddleware_UsuarioDesactivado(t *testing.T) {
	s := newTestServer(t, nil)
	tok := s.login(t, s.clientA)
	s.store.Users().SetActive(s.userID, false)

	resp := s.do(t, http.MethodGet, "/v1/auth/me/", tok.Access, nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestTenantScope_IgnoraClientDelBody(t *testing.T) {
	s := newTestServer(t, nil)
	tokA := s.login(t, s.clientA)
	tokB := s.login(t, s.clientB)

	body := `{"number": 1, "description": "barra", "client_id": ` + itoa(s.clientB) + `}`
	var created dto.TableResponse
	resp := s.do(t, http.MethodPost, "/v1/order/tables/?client_id="+itoa(s.clientB), tokA.Access, body, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var listB []dto.TableResponse
	s.do(t, http.MethodGet, "/v1/order/tables/", tokB.Access, nil, &listB)
	assert.Empty(t, listB, "la mesa pertenece al client del token, no al enviado")

	resp = s.do(t, http.MethodGet, "/v1/order/tables/"+itoa(created.ID)+"/", tokB.Access, nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var listA []dto.TableResponse
	s.do(t, http.MethodGet, "/v1/order/tables/", tokA.Access, nil, &listA)
	require.Len(t, listA, 1)
	assert.Equal(t, created.ID, listA[0].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Pedidos
// ──────────────────────────────────────────────────────────────────────────────

// setupMenu crea mesa, dos ingredientes y un plato en el client del token.
func setupMenu(t *testing.T, s *testServer, token string) (table, cebolla, queso, dish int64) {
	t.Helper()
	var tb dto.TableResponse
	resp := s.do(t, http.MethodPost, "/v1/order/tables/", token, dto.TableRequest{Number: intp(5), Description: "ventana"}, &tb)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var ing dto.IngredientResponse
	s.do(t, http.MethodPost, "/v1/order/ingredients/", token, dto.IngredientRequest{Name: "Cebolla", Description: "morada"}, &ing)
	cebolla = ing.ID
	s.do(t, http.MethodPost, "/v1/order/ingredients/", token, dto.IngredientRequest{Name: "Queso", Description: "mozzarella"}, &ing)
	queso = ing.ID

	var d dto.DishResponse
	resp = s.do(t, http.MethodPost, "/v1/order/dishes/", token,
		`{"name":"Pizza","description":"napolitana","price":"42.90","ingredients":[`+itoa(queso)+`,`+itoa(cebolla)+`]}`, &d)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Len(t, d.Ingredients, 2)
	assert.Equal(t, "Cebolla", d.Ingredients[0].Name, "ingredientes ordenados por nombre")
	assert.Equal(t, "42.90", d.Price)
	return tb.ID, cebolla, queso, d.ID
}

func TestOrders_FlujoCompleto(t *testing.T) {
	s := newTestServer(t, nil)
	tok := s.login(t, s.clientA).Access
	table, cebolla, queso, dish := setupMenu(t, s, tok)

	var created dto.OrderResponse
	resp := s.do(t, http.MethodPost, "/v1/order/orders/", tok, dto.CreateOrderRequest{
		Table:       table,
		Description: "sin apuro",
		Dishes: []dto.OrderDishInput{
			{Dish: dish, Quantity: intp(2), RemovedIngredient: []int64{cebolla}},
			{Dish: dish, Quantity: intp(1), AdditionalIngredient: []int64{queso}},
		},
	}, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "RECEIVED", created.Status)
	assert.Equal(t, s.userID, created.CreatedBy)
	require.Len(t, created.Dishes, 2)
	assert.Equal(t, 2, created.Dishes[0].Quantity)
	require.Len(t, created.Dishes[0].RemovedIngredient, 1)
	assert.Equal(t, cebolla, created.Dishes[0].RemovedIngredient[0].ID)

	path := "/v1/order/orders/" + itoa(created.ID)
	var changed dto.OrderResponse
	resp = s.do(t, http.MethodPost, path+"/status/", tok, dto.ChangeStatusRequest{Status: "PREPARING"}, &changed)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotNil(t, changed.StartPreparation)

	var errOut dto.ErrorResponse
	resp = s.do(t, http.MethodPost, path+"/status/", tok, dto.ChangeStatusRequest{Status: "RECEIVED"}, &errOut)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "INVALID_TRANSITION", errOut.Code)

	resp = s.do(t, http.MethodPost, path+"/status/", tok, dto.ChangeStatusRequest{Status: "DONE"}, &changed)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotNil(t, changed.EndPreparation)

	var history []dto.OrderHistoryResponse
	s.do(t, http.MethodGet, path+"/history/", tok, nil, &history)
	require.Len(t, history, 3)
	assert.Equal(t, "RECEIVED", history[0].Status)
	assert.Equal(t, "DONE", history[2].Status)

	var lines []dto.OrderDishResponse
	s.do(t, http.MethodGet, "/v1/order/order-dishes/", tok, nil, &lines)
	assert.Len(t, lines, 2)

	resp = s.do(t, http.MethodDelete, path+"/", tok, nil, &errOut)
	assert.Equal(t, http.StatusConflict, resp.StatusCode, "un pedido con líneas no se borra")
}

func TestOrders_LineaFallidaNoDejaNada(t *testing.T) {
	s := newTestServer(t, nil)
	tokA := s.login(t, s.clientA).Access
	tokB := s.login(t, s.clientB).Access
	table, _, _, dish := setupMenu(t, s, tokA)
	_, _, _, foreignDish := setupMenu(t, s, tokB)

	var errOut dto.ErrorResponse
	resp := s.do(t, http.MethodPost, "/v1/order/orders/", tokA, dto.CreateOrderRequest{
		Table: table,
		Dishes: []dto.OrderDishInput{
			{Dish: dish, Quantity: intp(1)},
			{Dish: foreignDish, Quantity: intp(1)},
		},
	}, &errOut)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", errOut.Code)
	assert.Equal(t, 0, s.store.Count("orders"))
	assert.Equal(t, 0, s.store.Count("orders_dishes"))
	assert.Equal(t, 0, s.store.Count("orders_history"))
}

func TestOrders_Validacion(t *testing.T) {
	s := newTestServer(t, nil)
	tok := s.login(t, s.clientA).Access
	table, _, _, dish := setupMenu(t, s, tok)

	var errOut dto.ErrorResponse
	resp := s.do(t, http.MethodPost, "/v1/order/orders/", tok, `{"table": `+itoa(table)+`}`, &errOut)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", errOut.Code)
	assert.NotEmpty(t, errOut.Fields)

	resp = s.do(t, http.MethodPost, "/v1/order/orders/", tok, dto.CreateOrderRequest{
		Table:  table,
		Dishes: []dto.OrderDishInput{{Dish: dish, Quantity: intp(0)}},
	}, &errOut)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, 0, s.store.Count("orders"))

	errOut = dto.ErrorResponse{}
	resp = s.do(t, http.MethodPost, "/v1/order/orders/", tok,
		`{"table": `+itoa(table)+`, "dishes": [{"dish": `+itoa(dish)+`, "quantity": 3000000000}]}`, &errOut)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "cantidad que no cabe en INTEGER")
	assert.Equal(t, "VALIDATION", errOut.Code)
	assert.Equal(t, 0, s.store.Count("orders"))

	errOut = dto.ErrorResponse{}
	resp = s.do(t, http.MethodPost, "/v1/order/tables/", tok, `{"number": 3000000000, "description": "patio"}`, &errOut)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", errOut.Code)
}

func TestCatalog_ErroresHTTP(t *testing.T) {
	s := newTestServer(t, nil)
	tok := s.login(t, s.clientA).Access
	_, cebolla, _, _ := setupMenu(t, s, tok)

	var errOut dto.ErrorResponse
	resp := s.do(t, http.MethodGet, "/v1/order/tables/abc/", tok, nil, &errOut)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", errOut.Code)

	resp = s.do(t, http.MethodPost, "/v1/order/tables/", tok, dto.TableRequest{Number: intp(5), Description: "otra"}, &errOut)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "número de mesa repetido")
	assert.Equal(t, "DUPLICATE", errOut.Code)

	resp = s.do(t, http.MethodDelete, "/v1/order/ingredients/"+itoa(cebolla)+"/", tok, nil, &errOut)
	assert.Equal(t, http.StatusConflict, resp.StatusCode, "ingrediente usado por un plato")

	resp = s.do(t, http.MethodGet, "/v1/order/dishes/999/", tok, nil, &errOut)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTicket(t *testing.T) {
	s := newTestServer(t, pdf.NewMarotoTicketRenderer())
	tok := s.login(t, s.clientA).Access
	table, _, _, dish := setupMenu(t, s, tok)

	var created dto.OrderResponse
	s.do(t, http.MethodPost, "/v1/order/orders/", tok, dto.CreateOrderRequest{
		Table:  table,
		Dishes: []dto.OrderDishInput{{Dish: dish, Quantity: intp(1)}},
	}, &created)

	resp := s.do(t, http.MethodGet, "/v1/order/orders/"+itoa(created.ID)+"/ticket/", tok, nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))

	tokB := s.login(t, s.clientB).Access
	resp = s.do(t, http.MethodGet, "/v1/order/orders/"+itoa(created.ID)+"/ticket/", tokB, nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTicket_SinRenderer(t *testing.T) {
	s := newTestServer(t, nil)
	tok := s.login(t, s.clientA).Access
	resp := s.do(t, http.MethodGet, "/v1/order/orders/1/ticket/", tok, nil, nil)
	assert.Equal(t, http.StatusNotImplemented, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Observabilidad
// ──────────────────────────────────────────────────────────────────────────────

func TestMetrics_CuentaPorRuta(t *testing.T) {
	s := newTestServer(t, nil)
	tok := s.login(t, s.clientA).Access
	s.do(t, http.MethodGet, "/v1/order/tables/", tok, nil, nil)

	resp := s.do(t, http.MethodGet, "/metrics", "", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "restaurante_api_requests_total")
	assert.Contains(t, string(body), `path="/v1/order/tables`)
}

func TestRequestID(t *testing.T) {
	s := newTestServer(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/v1/order/tables/", nil)
	req.Header.Set(apphttp.HeaderRequestID, "abc-123")
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Header.Get(apphttp.HeaderRequestID))

	resp = s.do(t, http.MethodGet, "/v1/order/tables/", "", nil, nil)
	assert.NotEmpty(t, resp.Header.Get(apphttp.HeaderRequestID))
}

func TestRequestLogger_RegistraTenantSinToken(t *testing.T) {
	var buf bytes.Buffer
	s := newTestServerWithLog(t, nil, logger.New(logger.Config{Env: "test", Level: "info", Output: &buf}))
	tok := s.login(t, s.clientB).Access
	buf.Reset()

	s.do(t, http.MethodGet, "/v1/order/tables/", tok, nil, nil)

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "/v1/order/tables/", line["path"])
	assert.Equal(t, float64(http.StatusOK), line["status"])
	assert.Equal(t, float64(s.clientB), line["client_id"])
	assert.Equal(t, float64(s.userID), line["user_id"])
	assert.NotContains(t, buf.String(), tok)
}
