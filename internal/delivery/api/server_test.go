package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"marketplace/config"
	apimiddleware "marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/router"
	"marketplace/internal/delivery/api/router/handler"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"
	mockservice "marketplace/internal/mocks/service"
	mockusecase "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	providerToken    = "provider-token"
	adminToken       = "admin-token"
	systemAdminToken = "system-token"
)

type tokenTable map[string]*service.Claims

func (t tokenTable) GenerateAccessToken(uuid.UUID, []string) (string, error) {
	return "", nil
}

func (t tokenTable) ValidateToken(token string) (*service.Claims, error) {
	claims, ok := t[token]
	if !ok {
		return nil, errors.New("unknown token")
	}

	return claims, nil
}

type testAPI struct {
	echo        *echo.Echo
	providerUC  *mockusecase.MockProviderUsecase
	documentUC  *mockusecase.MockDocumentUsecase
	modulesAPI  *mockservice.MockDocumentsModuleAPI
	ownerID     uuid.UUID
	adminID     uuid.UUID
	ownerPrin   entity.Principal
	adminPrin   entity.Principal
	servicePrin entity.Principal
}

func createTestAPI(t *testing.T) *testAPI {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "12MB"
	cfg.Metrics.Enabled = true
	cfg.Metrics.Path = "/metrics"
	logger := slog.New(slog.DiscardHandler)

	api := &testAPI{
		providerUC: mockusecase.NewMockProviderUsecase(t),
		documentUC: mockusecase.NewMockDocumentUsecase(t),
		modulesAPI: mockservice.NewMockDocumentsModuleAPI(t),
		ownerID:    uuid.New(),
		adminID:    uuid.New(),
	}
	api.ownerPrin = entity.Principal{UserID: api.ownerID, Roles: entity.Roles{entity.RoleProvider}}
	api.adminPrin = entity.Principal{UserID: api.adminID, Roles: entity.Roles{entity.RoleAdmin}}
	serviceID := uuid.New()
	api.servicePrin = entity.Principal{UserID: serviceID, Roles: entity.Roles{entity.RoleSystemAdmin}}

	tokens := tokenTable{
		providerToken:    {UserID: api.ownerID, Roles: []string{"provider"}},
		adminToken:       {UserID: api.adminID, Roles: []string{"admin"}},
		systemAdminToken: {UserID: serviceID, Roles: []string{"system-admin"}},
	}

	api.echo = NewEcho(cfg, logger)
	router.NewRouter(router.RouterParams{
		ProviderHandler: handler.NewProviderHandler(handler.ProviderHandlerParams{ProviderUC: api.providerUC, Logger: logger}),
		DocumentHandler: handler.NewDocumentHandler(handler.DocumentHandlerParams{DocumentUC: api.documentUC, Logger: logger}),
		ModuleHandler:   handler.NewModuleHandler(handler.ModuleHandlerParams{DocumentsAPI: api.modulesAPI, Logger: logger}),
		AuthMiddleware:  apimiddleware.NewAuthMiddleware(tokens, logger),
		Registry:        prometheus.NewRegistry(),
		Config:          cfg,
	}).RegisterRoutes(api.echo)

	return api
}

func (a *testAPI) do(method, target, token string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	return rec
}

func (a *testAPI) doJSON(method, target, token, body string) *httptest.ResponseRecorder {
	return a.do(method, target, token, strings.NewReader(body), echo.MIMEApplicationJSON)
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func TestAPI_CreateProvider(t *testing.T) {
	api := createTestAPI(t)
	provider := &entity.Provider{ID: uuid.New(), UserID: api.ownerID, Status: entity.ProviderStatusPendingBasicInfo}

	api.providerUC.EXPECT().
		CreateProvider(mock.Anything, api.ownerPrin, &usecase.CreateProviderInput{Name: "Ana Lima", Type: "individual"}).
		Return(provider, nil)

	rec := api.doJSON(http.MethodPost, "/api/v1/providers", providerToken, `{"name":"Ana Lima","type":"individual"}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	env := decode(t, rec)
	assert.NotEmpty(t, env.Meta.RequestID)
	assert.Equal(t, rec.Header().Get("X-Request-Id"), env.Meta.RequestID)

	var got entity.Provider
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, provider.ID, got.ID)
	assert.Equal(t, entity.ProviderStatusPendingBasicInfo, got.Status)
}

func TestAPI_CreateProvider_ValidationFailed(t *testing.T) {
	api := createTestAPI(t)

	rec := api.doJSON(http.MethodPost, "/api/v1/providers", providerToken, `{"name":"Ana","type":"robot"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
}

func TestAPI_RequiresAuthentication(t *testing.T) {
	api := createTestAPI(t)

	rec := api.doJSON(http.MethodGet, "/api/v1/providers/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", decode(t, rec).Error.Code)

	rec = api.doJSON(http.MethodGet, "/api/v1/providers/me", "forged", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPI_AdminRoutes(t *testing.T) {
	api := createTestAPI(t)
	providerID := uuid.New()
	target := "/api/v1/providers/" + providerID.String() + "/activate"

	rec := api.doJSON(http.MethodPost, target, providerToken, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", decode(t, rec).Error.Code)

	api.providerUC.EXPECT().
		Activate(mock.Anything, api.adminPrin, providerID).
		Return(nil, domainerrors.ErrMissingRequiredDocuments)

	rec = api.doJSON(http.MethodPost, target, adminToken, "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "MISSING_REQUIRED_DOCUMENTS", env.Error.Code)
	assert.Equal(t, "provider must have all required documents before activation", env.Error.Message)
}

func TestAPI_TransitionWithReason(t *testing.T) {
	api := createTestAPI(t)
	providerID := uuid.New()
	suspended := &entity.Provider{ID: providerID, Status: entity.ProviderStatusSuspended}

	api.providerUC.EXPECT().
		Suspend(mock.Anything, api.adminPrin, providerID, "fraud report").
		Return(suspended, nil)

	rec := api.doJSON(http.MethodPost, "/api/v1/providers/"+providerID.String()+"/suspend", adminToken, `{"reason":"fraud report"}`)

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestAPI_InvalidID(t *testing.T) {
	api := createTestAPI(t)

	rec := api.doJSON(http.MethodGet, "/api/v1/providers/not-a-uuid", providerToken, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", decode(t, rec).Error.Code)
}

func TestAPI_UnexpectedErrorIsHidden(t *testing.T) {
	api := createTestAPI(t)
	providerID := uuid.New()

	api.providerUC.EXPECT().
		GetProvider(mock.Anything, api.ownerPrin, providerID).
		Return(nil, errors.New("pq: connection reset"))

	rec := api.doJSON(http.MethodGet, "/api/v1/providers/"+providerID.String(), providerToken, "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestAPI_AddService(t *testing.T) {
	api := createTestAPI(t)
	providerID := uuid.New()
	serviceID := uuid.New()

	api.providerUC.EXPECT().
		AddService(mock.Anything, api.ownerPrin, &usecase.AddProviderServiceInput{
			ProviderID:  providerID,
			ServiceID:   serviceID,
			ServiceName: "Plumbing",
		}).
		Return(&entity.Provider{ID: providerID}, nil)

	rec := api.doJSON(http.MethodPost, "/api/v1/providers/"+providerID.String()+"/services", providerToken,
		`{"service_id":"`+serviceID.String()+`","service_name":"Plumbing"}`)

	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestAPI_UploadDocument(t *testing.T) {
	api := createTestAPI(t)
	providerID := uuid.New()
	documentID := uuid.New()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("provider_id", providerID.String()))
	require.NoError(t, writer.WriteField("document_type", "identity_document"))
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="id.pdf"`)
	header.Set("Content-Type", "application/pdf; charset=binary")
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4 test"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	api.documentUC.EXPECT().
		UploadDocument(mock.Anything, api.ownerPrin, mock.AnythingOfType("*usecase.UploadDocumentInput")).
		RunAndReturn(func(_ context.Context, _ entity.Principal, input *usecase.UploadDocumentInput) (*entity.Document, error) {
			assert.Equal(t, providerID, input.ProviderID)
			assert.Equal(t, "identity_document", input.DocumentType)
			assert.Equal(t, "id.pdf", input.FileName)
			assert.Equal(t, "application/pdf; charset=binary", input.ContentType)
			assert.Equal(t, int64(13), input.Size)

			content, readErr := io.ReadAll(input.Content)
			require.NoError(t, readErr)
			assert.Equal(t, "%PDF-1.4 test", string(content))

			return &entity.Document{ID: documentID, Status: entity.DocumentStatusPendingVerification}, nil
		})

	rec := api.do(http.MethodPost, "/api/v1/documents", providerToken, &body, writer.FormDataContentType())

	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
	var got entity.Document
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &got))
	assert.Equal(t, documentID, got.ID)
}

func TestAPI_UploadDocument_MissingFile(t *testing.T) {
	api := createTestAPI(t)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("provider_id", uuid.NewString()))
	require.NoError(t, writer.WriteField("document_type", "identity_document"))
	require.NoError(t, writer.Close())

	rec := api.do(http.MethodPost, "/api/v1/documents", providerToken, &body, writer.FormDataContentType())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "file is required", decode(t, rec).Error.Message)
}

func TestAPI_RejectDocument(t *testing.T) {
	api := createTestAPI(t)
	documentID := uuid.New()

	api.documentUC.EXPECT().
		RejectDocument(mock.Anything, api.adminPrin, documentID, "blurry").
		Return(nil, domainerrors.ErrInvalidStateTransition.WithMessage("cannot reject document in status verified"))

	rec := api.doJSON(http.MethodPost, "/api/v1/documents/"+documentID.String()+"/reject", adminToken, `{"reason":"blurry"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "INVALID_STATE_TRANSITION", decode(t, rec).Error.Code)
}

func TestAPI_DocumentsModuleCheck(t *testing.T) {
	api := createTestAPI(t)
	providerID := uuid.New()
	target := "/internal/documents/providers/" + providerID.String() + "/checks/"

	api.modulesAPI.EXPECT().HasVerifiedDocuments(mock.Anything, providerID).Return(true, nil)

	rec := api.doJSON(http.MethodGet, target+"verified", systemAdminToken, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"result":true}`, string(decode(t, rec).Data))

	rec = api.doJSON(http.MethodGet, target+"bogus", systemAdminToken, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.doJSON(http.MethodGet, target+"verified", adminToken, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAPI_HealthAndMetrics(t *testing.T) {
	api := createTestAPI(t)

	rec := api.do(http.MethodGet, "/health", "", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = api.do(http.MethodGet, "/metrics", "", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
