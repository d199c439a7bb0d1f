package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbdocs/mbdocs-api/internal/application/usecase"
	"github.com/mbdocs/mbdocs-api/internal/domain/printing"
	"github.com/mbdocs/mbdocs-api/internal/infrastructure/bolt"
	"github.com/mbdocs/mbdocs-api/internal/infrastructure/excel"
	infrapdf "github.com/mbdocs/mbdocs-api/internal/infrastructure/pdf"
	"github.com/mbdocs/mbdocs-api/internal/infrastructure/qrimg"
	"github.com/mbdocs/mbdocs-api/internal/infrastructure/xmlexport"
	apphttp "github.com/mbdocs/mbdocs-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp собирает приложение на временном файле хранилища
// с первичным заполнением (контрагенты c1/c2, товары p1/p2, шаблоны).
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()

	store, err := bolt.Open(bolt.Options{
		Path: filepath.Join(t.TempDir(), "test.db"),
		Seed: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	companyRepo := bolt.NewCompanyRepository(store)
	productRepo := bolt.NewProductRepository(store)
	documentRepo := bolt.NewDocumentRepository(store)
	counterRepo := bolt.NewCounterRepository(store)
	templateRepo := bolt.NewTemplateRepository(store)
	workspaceRepo := bolt.NewWorkspaceRepository(store)

	renderer := printing.NewRenderer(qrimg.NewEncoder())

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CompanyUC:   usecase.NewCompanyUseCase(companyRepo),
		ProductUC:   usecase.NewProductUseCase(productRepo),
		TemplateUC:  usecase.NewTemplateUseCase(templateRepo),
		DocumentUC:  usecase.NewDocumentUseCase(documentRepo, counterRepo, productRepo),
		WorkspaceUC: usecase.NewWorkspaceUseCase(workspaceRepo),
		PrintUC:     usecase.NewPrintUseCase(renderer, documentRepo, companyRepo, productRepo, templateRepo),
		ExportUC: usecase.NewExportUseCase(
			excel.NewBuilder(), xmlexport.NewBuilder(), infrapdf.NewMarotoGenerator(),
			documentRepo, companyRepo, productRepo,
		),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func createInvoice(t *testing.T, app *fiber.App) map[string]any {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/invoices", map[string]any{
		"date":     "2024-03-15",
		"sellerId": "c1",
		"buyerId":  "c2",
		"lines": []map[string]any{
			{"productId": "p1", "quantity": 2, "price": 500000, "vat": 20},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var doc map[string]any
	decode(t, resp, &doc)
	return doc
}

// ──────────────────────────────────────────────────────────────────────────────
// Документы
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateInvoice_AssignsSequentialNumbers(t *testing.T) {
	app := buildTestApp(t)

	first := createInvoice(t, app)
	second := createInvoice(t, app)

	assert.Equal(t, "0001", first["number"])
	assert.Equal(t, "0002", second["number"])
	assert.Equal(t, float64(1_000_000), first["total"])
	assert.Equal(t, float64(166_667), first["totalVat"])
}

// Номер не переиспользуется после удаления документа.
func TestCreateInvoice_NumberSurvivesDeletion(t *testing.T) {
	app := buildTestApp(t)

	createInvoice(t, app)
	second := createInvoice(t, app)

	resp := doJSON(t, app, http.MethodDelete, "/api/invoices/"+second["id"].(string), nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	third := createInvoice(t, app)
	assert.Equal(t, "0003", third["number"])
}

// Мусорное количество приводится к 1, мусорная цена — к нулю и затем
// добирается из каталога.
func TestCreateInvoice_LenientLineInput(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/invoices", map[string]any{
		"sellerId": "c1",
		"buyerId":  "c2",
		"lines": []map[string]any{
			{"productId": "p1", "quantity": "мусор", "price": "тоже мусор"},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var doc map[string]any
	decode(t, resp, &doc)
	lines := doc["lines"].([]any)
	require.Len(t, lines, 1)
	line := lines[0].(map[string]any)
	assert.Equal(t, float64(1), line["quantity"])
	assert.Equal(t, float64(500_000), line["price"], "цена снята из каталога")
	assert.Equal(t, float64(20), line["vat"])
}

func TestGetInvoice_NotFound(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/invoices/missing", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "NOT_FOUND")
}

func TestCreateUPD_RejectsUnknownStatus(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/upds", map[string]any{
		"sellerId": "c1",
		"buyerId":  "c2",
		"status":   "7",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Печать и выгрузка
// ──────────────────────────────────────────────────────────────────────────────

func TestPrintInvoice(t *testing.T) {
	app := buildTestApp(t)
	doc := createInvoice(t, app)

	resp := doJSON(t, app, http.MethodGet, "/api/invoices/"+doc["id"].(string)+"/print", nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	body, _ := io.ReadAll(resp.Body)
	html := string(body)
	assert.Contains(t, html, "Счет на оплату № 0001 от 15.03.2024")
	assert.Contains(t, html, "ООО &#34;Ромашка&#34;")
}

// Документ с висячим контрагентом печатается страницей-заглушкой, а не 500.
func TestPrintInvoice_DanglingCounterparty(t *testing.T) {
	app := buildTestApp(t)
	doc := createInvoice(t, app)

	resp := doJSON(t, app, http.MethodDelete, "/api/companies/c2", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/invoices/"+doc["id"].(string)+"/print", nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Не указан продавец или покупатель")
}

func TestExportInvoiceXLSX(t *testing.T) {
	app := buildTestApp(t)
	doc := createInvoice(t, app)

	resp := doJSON(t, app, http.MethodGet, "/api/invoices/"+doc["id"].(string)+"/export.xlsx", nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		resp.Header.Get("Content-Type"))

	disposition := resp.Header.Get("Content-Disposition")
	assert.Contains(t, disposition, "attachment")
	assert.Contains(t, disposition, "UTF-8''", "кириллическое имя кодируется по RFC 5987")

	body, _ := io.ReadAll(resp.Body)
	assert.True(t, bytes.HasPrefix(body, []byte("PK")), "XLSX — это ZIP-контейнер")
}

func TestExportInvoiceXML(t *testing.T) {
	app := buildTestApp(t)
	doc := createInvoice(t, app)

	resp := doJSON(t, app, http.MethodGet, "/api/invoices/"+doc["id"].(string)+"/export.xml", nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "<Invoice>")
	assert.Contains(t, string(body), "<Number>0001</Number>")
}

// ──────────────────────────────────────────────────────────────────────────────
// Шаблоны
// ──────────────────────────────────────────────────────────────────────────────

func TestTemplatePreview(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/templates/preview", map[string]any{
		"template": map[string]any{
			"docType":       "invoice",
			"font":          "Arial",
			"fontSize":      12,
			"titleFontSize": 15,
			"pageMargin":    15,
			"tableHeaderBg": "#e8e8e8",
			"showBankBlock": true,
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string]string
	decode(t, resp, &out)
	assert.Contains(t, out["html"], "Счет на оплату № 0001")
	assert.Contains(t, out["html"], "Arial")
}

// Повреждённый шаблон отклоняется со статусом 422.
func TestTemplateCreate_Invalid(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/templates", map[string]any{
		"docType": "invoice",
		"font":    "",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "TEMPLATE_INVALID")
}

// ──────────────────────────────────────────────────────────────────────────────
// Рабочая область
// ──────────────────────────────────────────────────────────────────────────────

func TestWorkspaceTabs_RoundTrip(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPut, "/api/workspace/tabs", map[string]any{
		"tabs": []map[string]any{
			{"id": "t1", "type": "companies", "title": "Организации"},
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPut, "/api/workspace/active-tab", map[string]any{"id": "t1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/workspace/tabs", nil)
	var tabs []map[string]any
	decode(t, resp, &tabs)
	require.Len(t, tabs, 1)
	assert.Equal(t, "Организации", tabs[0]["title"])

	resp = doJSON(t, app, http.MethodGet, "/api/workspace/active-tab", nil)
	var active map[string]string
	decode(t, resp, &active)
	assert.Equal(t, "t1", active["id"])
}

// Удаление товара не трогает строки существующих документов.
func TestDeleteProduct_DocumentSnapshotsSurvive(t *testing.T) {
	app := buildTestApp(t)
	doc := createInvoice(t, app)

	resp := doJSON(t, app, http.MethodDelete, "/api/products/p1", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/invoices/"+doc["id"].(string), nil)
	var got map[string]any
	decode(t, resp, &got)
	lines := got["lines"].([]any)
	require.Len(t, lines, 1)
	assert.Equal(t, float64(500_000), lines[0].(map[string]any)["price"])

	// печать показывает «—» вместо названия
	resp = doJSON(t, app, http.MethodGet, "/api/invoices/"+doc["id"].(string)+"/print", nil)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	assert.True(t, strings.Contains(string(body), "—"))
}
