package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-admin-api/internal/dto"
	"github.com/noah-isme/campus-admin-api/internal/handler"
	"github.com/noah-isme/campus-admin-api/internal/middleware"
	"github.com/noah-isme/campus-admin-api/internal/models"
	"github.com/noah-isme/campus-admin-api/internal/rbac"
	"github.com/noah-isme/campus-admin-api/internal/service"
)

type mockLibraryService struct {
	txn models.LibraryTransaction
	err error
}

func (m *mockLibraryService) List(context.Context) ([]models.LibraryTransaction, error) {
	return []models.LibraryTransaction{m.txn}, nil
}

func (m *mockLibraryService) Submit(context.Context, string, dto.LibraryTxnRequest) (models.LibraryTransaction, error) {
	if m.err != nil {
		return models.LibraryTransaction{}, m.err
	}
	return m.txn, nil
}

func libraryTestApp(svc service.LibraryService) *fiber.App {
	logger := zerolog.New(io.Discard)
	app := fiber.New()
	group := app.Group("/api/v1/library", middleware.ResolveRole(nil), middleware.RequireView(rbac.SectionLibrary))
	handler.NewLibraryHandler(svc, logger).Register(group)
	return app
}

func postTxn(t *testing.T, app *fiber.App, role string, payload dto.LibraryTxnRequest) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/library/transactions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.RoleHeader, role)

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestLibraryHandler_SubmitSuccess(t *testing.T) {
	svc := &mockLibraryService{txn: models.LibraryTransaction{Reference: "LTX-1A2B3C", StudentCode: "STU001", BookID: "BK1", Action: models.ActionBorrow}}
	app := libraryTestApp(svc)

	resp := postTxn(t, app, rbac.RoleLibrarian, dto.LibraryTxnRequest{StudentID: "STU001", BookID: "BK1", Action: models.ActionBorrow})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var response struct {
		Success bool                      `json:"success"`
		Data    models.LibraryTransaction `json:"data"`
	}
	decodeResponse(t, resp, &response)
	require.True(t, response.Success)
	require.Equal(t, "LTX-1A2B3C", response.Data.Reference)
}

func TestLibraryHandler_NoOpenBorrowMapsTo409(t *testing.T) {
	svc := &mockLibraryService{err: service.ErrNoOpenBorrow}
	app := libraryTestApp(svc)

	resp := postTxn(t, app, rbac.RoleAdmin, dto.LibraryTxnRequest{StudentID: "STU001", BookID: "BK2", Action: models.ActionReturn})
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestLibraryHandler_UnknownStudentMapsTo404(t *testing.T) {
	svc := &mockLibraryService{err: service.ErrStudentNotFound}
	app := libraryTestApp(svc)

	resp := postTxn(t, app, rbac.RoleAdmin, dto.LibraryTxnRequest{StudentID: "STU404", BookID: "BK1", Action: models.ActionBorrow})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestLibraryHandler_ListGatedByView(t *testing.T) {
	app := libraryTestApp(&mockLibraryService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/library/transactions", nil)
	req.Header.Set(middleware.RoleHeader, rbac.RoleAccounts)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
