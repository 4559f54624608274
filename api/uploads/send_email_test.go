package uploads_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cocooriginal_server/api/uploads"
	"cocooriginal_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

type stubNotifier struct {
	got  *structs.UploadNotification
	err  error
	sent int
}

func (s *stubNotifier) SendUploadNotification(ctx context.Context, n *structs.UploadNotification) (*structs.UploadReceipt, error) {
	s.sent++
	s.got = n
	if s.err != nil {
		return nil, s.err
	}
	return &structs.UploadReceipt{Id: "email-1", Reference: n.Reference}, nil
}

func testConfig() *structs.Config {
	return &structs.Config{
		Server: &structs.ServerConfig{
			MaxUploadBytes: 10 * 1024 * 1024,
		},
		Email: &structs.EmailConfig{
			ApiKey:    "re_test_key",
			From:      "Coco Original <orders@cocooriginalmm.com>",
			ShopOwner: "owner@cocooriginalmm.com",
		},
	}
}

func newUploadRouter(cfg *structs.Config, notifier uploads.Notifier) chi.Router {
	r := chi.NewRouter()
	uploads.NewUploadRoutesManager(gecho.NewDefaultLogger(), cfg, notifier).RegisterRoutes(r)
	return r
}

func jsonRequest(t *testing.T, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/send-email", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func multipartRequest(t *testing.T, fields map[string]string, fileName string, fileContent []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileContent != nil {
		fw, err := mw.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = fw.Write(fileContent)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/send-email", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSendUploadEmail_JSONSuccess(t *testing.T) {
	notifier := &stubNotifier{}
	r := newUploadRouter(testConfig(), notifier)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, jsonRequest(t, `{"orderNumber":"1042","orderEmail":"a@b.com","uploadImage":"https://cdn.example.com/slip.png"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "email-1", data["id"])

	require.Equal(t, 1, notifier.sent)
	require.Equal(t, "1042", notifier.got.OrderNumber)
	require.Equal(t, "a@b.com", notifier.got.CustomerEmail)
	require.Equal(t, "a@b.com", notifier.got.ReplyTo)
	require.Equal(t, "https://cdn.example.com/slip.png", notifier.got.ImageURL)
	require.Empty(t, notifier.got.FileContent)
}

func TestSendUploadEmail_MultipartSuccess(t *testing.T) {
	notifier := &stubNotifier{}
	r := newUploadRouter(testConfig(), notifier)

	rec := httptest.NewRecorder()
	req := multipartRequest(t, map[string]string{
		"orderNumber": "1042",
		"orderEmail":  "a@b.com",
	}, "slip.jpg", []byte("jpeg-bytes"))
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, notifier.sent)
	require.Equal(t, "slip.jpg", notifier.got.FileName)
	require.Equal(t, []byte("jpeg-bytes"), notifier.got.FileContent)
	require.Empty(t, notifier.got.ImageURL)
}

func TestSendUploadEmail_EmailFieldAlias(t *testing.T) {
	notifier := &stubNotifier{}
	r := newUploadRouter(testConfig(), notifier)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, jsonRequest(t, `{"orderNumber":"1042","email":"alias@b.com"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "alias@b.com", notifier.got.CustomerEmail)
}

func TestSendUploadEmail_OrderEmailWinsOverAlias(t *testing.T) {
	notifier := &stubNotifier{}
	r := newUploadRouter(testConfig(), notifier)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, jsonRequest(t, `{"orderNumber":"1042","orderEmail":"first@b.com","email":"second@b.com"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "first@b.com", notifier.got.CustomerEmail)
}

func TestSendUploadEmail_MissingOrderNumber(t *testing.T) {
	notifier := &stubNotifier{}
	r := newUploadRouter(testConfig(), notifier)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, jsonRequest(t, `{"orderEmail":"a@b.com"}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "orderNumber is required", decodeBody(t, rec)["error"])
	require.Zero(t, notifier.sent)
}

func TestSendUploadEmail_MissingEmail(t *testing.T) {
	notifier := &stubNotifier{}
	r := newUploadRouter(testConfig(), notifier)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, jsonRequest(t, `{"orderNumber":"1042"}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "orderEmail is required", decodeBody(t, rec)["error"])
	require.Zero(t, notifier.sent)
}

func TestSendUploadEmail_MultipartMissingFile(t *testing.T) {
	notifier := &stubNotifier{}
	r := newUploadRouter(testConfig(), notifier)

	rec := httptest.NewRecorder()
	req := multipartRequest(t, map[string]string{
		"orderNumber": "1042",
		"orderEmail":  "a@b.com",
	}, "", nil)
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "file is required", decodeBody(t, rec)["error"])
	require.Zero(t, notifier.sent)
}

func TestSendUploadEmail_InvalidJSONBody(t *testing.T) {
	notifier := &stubNotifier{}
	r := newUploadRouter(testConfig(), notifier)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, jsonRequest(t, `not json at all`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Invalid request body", decodeBody(t, rec)["error"])
	require.Zero(t, notifier.sent)
}

func TestSendUploadEmail_InvalidUploadImageURL(t *testing.T) {
	notifier := &stubNotifier{}
	r := newUploadRouter(testConfig(), notifier)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, jsonRequest(t, `{"orderNumber":"1042","orderEmail":"a@b.com","uploadImage":"not a url"}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Zero(t, notifier.sent)
}

func TestSendUploadEmail_MissingConfiguration(t *testing.T) {
	cfg := testConfig()
	cfg.Email.ApiKey = ""
	notifier := &stubNotifier{}
	r := newUploadRouter(cfg, notifier)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, jsonRequest(t, `{"orderNumber":"1042","orderEmail":"a@b.com"}`))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "Server configuration is missing", decodeBody(t, rec)["error"])
	require.Zero(t, notifier.sent)
}

func TestSendUploadEmail_InvalidSenderFormat(t *testing.T) {
	cfg := testConfig()
	cfg.Email.From = "not-an-email"
	notifier := &stubNotifier{}
	r := newUploadRouter(cfg, notifier)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, jsonRequest(t, `{"orderNumber":"1042","orderEmail":"a@b.com"}`))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "Invalid RESEND_FROM format", decodeBody(t, rec)["error"])
	require.Zero(t, notifier.sent)
}

func TestSendUploadEmail_QuotedSenderAccepted(t *testing.T) {
	cfg := testConfig()
	cfg.Email.From = `"shop@example.com"`
	notifier := &stubNotifier{}
	r := newUploadRouter(cfg, notifier)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, jsonRequest(t, `{"orderNumber":"1042","orderEmail":"a@b.com"}`))

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestSendUploadEmail_InvalidCustomerEmailNoReplyTo(t *testing.T) {
	notifier := &stubNotifier{}
	r := newUploadRouter(testConfig(), notifier)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, jsonRequest(t, `{"orderNumber":"1042","orderEmail":"not-an-email"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, notifier.got.ReplyTo)
	require.Equal(t, "not-an-email", notifier.got.CustomerEmail)
}

func TestSendUploadEmail_DeliveryFailure(t *testing.T) {
	notifier := &stubNotifier{err: errors.New("resend rejected the message")}
	r := newUploadRouter(testConfig(), notifier)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, jsonRequest(t, `{"orderNumber":"1042","orderEmail":"a@b.com"}`))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "resend rejected the message", decodeBody(t, rec)["error"])
}

func TestSendUploadEmail_Preflight(t *testing.T) {
	r := newUploadRouter(testConfig(), &stubNotifier{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/send-email", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, rec.Body.String())
}
