package contact_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formdesk/contactapi/modules/contact"
	"github.com/formdesk/contactapi/pkg/email"
)

func newTestServer(t *testing.T, svc *contact.Service) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(svc.Handle())
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

const validSubmission = `{
	"name": "Jane Doe",
	"email": "jane@example.com",
	"phone": "+1 555 0100",
	"subject": "Hello",
	"message": "Just checking in."
}`

func TestRouter_Submit(t *testing.T) {
	t.Parallel()

	t.Run("valid submission without mail credentials", func(t *testing.T) {
		t.Parallel()

		repo := contact.NewInMemRepository()
		srv := newTestServer(t, newTestService(repo, nil, email.Config{}))

		resp := postJSON(t, srv.URL+"/", validSubmission)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "Message received successfully! (saved to DB)", body["msg"])

		mail, ok := body["mail"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, false, mail["sent"])
		assert.Equal(t, "no-mail-credentials", mail["reason"])

		subs, err := repo.ListAll(t.Context())
		require.NoError(t, err)
		require.Len(t, subs, 1)
		assert.Equal(t, "Jane Doe", subs[0].Name)
	})

	t.Run("valid submission with delivery", func(t *testing.T) {
		t.Parallel()

		sender := &stubSender{}
		srv := newTestServer(t, newTestService(contact.NewInMemRepository(), sender, configuredMailCfg()))

		resp := postJSON(t, srv.URL+"/", validSubmission)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "Message received and email sent successfully!", body["msg"])

		mail := body["mail"].(map[string]any)
		assert.Equal(t, true, mail["sent"])
	})

	t.Run("transport failure still yields 201", func(t *testing.T) {
		t.Parallel()

		repo := contact.NewInMemRepository()
		sender := &stubSender{err: errors.New("postmark unavailable")}
		srv := newTestServer(t, newTestService(repo, sender, configuredMailCfg()))

		resp := postJSON(t, srv.URL+"/", validSubmission)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "Message received successfully! (saved to DB, but mail failed)", body["msg"])

		mail := body["mail"].(map[string]any)
		assert.Equal(t, false, mail["sent"])
		assert.Equal(t, "transport-failure", mail["reason"])

		subs, err := repo.ListAll(t.Context())
		require.NoError(t, err)
		assert.Len(t, subs, 1)
	})

	t.Run("missing required field", func(t *testing.T) {
		t.Parallel()

		repo := contact.NewInMemRepository()
		srv := newTestServer(t, newTestService(repo, nil, email.Config{}))

		resp := postJSON(t, srv.URL+"/", `{"name":"Jane","email":"jane@example.com"}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "Please fill all required fields", body["msg"])

		subs, err := repo.ListAll(t.Context())
		require.NoError(t, err)
		assert.Empty(t, subs)
	})

	t.Run("empty-string required field", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, newTestService(contact.NewInMemRepository(), nil, email.Config{}))

		resp := postJSON(t, srv.URL+"/", `{"name":"Jane","email":"jane@example.com","message":"  "}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("malformed JSON body", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, newTestService(contact.NewInMemRepository(), nil, email.Config{}))

		resp := postJSON(t, srv.URL+"/", `{broken`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "Invalid request body", body["msg"])
	})

	t.Run("missing content type", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, newTestService(contact.NewInMemRepository(), nil, email.Config{}))

		req, err := http.NewRequest(http.MethodPost, srv.URL+"/", bytes.NewReader([]byte(validSubmission)))
		require.NoError(t, err)
		req.Header.Del("Content-Type")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("persistence failure", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, newTestService(failingRepository{}, nil, email.Config{}))

		resp := postJSON(t, srv.URL+"/", validSubmission)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "Server error", body["msg"])
		assert.NotEmpty(t, body["error"])
	})
}

func TestRouter_List(t *testing.T) {
	t.Parallel()

	t.Run("empty store returns 404", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, newTestService(contact.NewInMemRepository(), nil, email.Config{}))

		resp, err := http.Get(srv.URL + "/")
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "No contacts found", body["msg"])
	})

	t.Run("one submission is listed back", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, newTestService(contact.NewInMemRepository(), nil, email.Config{}))

		resp := postJSON(t, srv.URL+"/", validSubmission)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()

		resp, err := http.Get(srv.URL + "/")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, true, body["success"])

		data, ok := body["data"].([]any)
		require.True(t, ok)
		require.Len(t, data, 1)

		entry := data[0].(map[string]any)
		assert.Equal(t, "Jane Doe", entry["name"])
		assert.Equal(t, "jane@example.com", entry["email"])
		assert.Equal(t, "Just checking in.", entry["message"])
		assert.NotEmpty(t, entry["id"])
		assert.NotEmpty(t, entry["createdAt"])
	})

	t.Run("store error returns 500", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, newTestService(failingRepository{}, nil, email.Config{}))

		resp, err := http.Get(srv.URL + "/")
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, false, body["success"])
	})
}

func TestRouter_GetByID(t *testing.T) {
	t.Parallel()

	t.Run("posted submission is retrievable by id", func(t *testing.T) {
		t.Parallel()

		repo := contact.NewInMemRepository()
		srv := newTestServer(t, newTestService(repo, nil, email.Config{}))

		resp := postJSON(t, srv.URL+"/", validSubmission)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		subs, err := repo.ListAll(t.Context())
		require.NoError(t, err)
		require.Len(t, subs, 1)

		resp, err = http.Get(srv.URL + "/" + subs[0].ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, subs[0].ID.Hex(), body["id"])
		assert.Equal(t, "Jane Doe", body["name"])
		assert.Equal(t, "jane@example.com", body["email"])
		assert.Equal(t, "+1 555 0100", body["phone"])
		assert.Equal(t, "Hello", body["subject"])
		assert.Equal(t, "Just checking in.", body["message"])
	})

	t.Run("well-formed but unknown id returns 404", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, newTestService(contact.NewInMemRepository(), nil, email.Config{}))

		resp, err := http.Get(srv.URL + "/65a0c0ffee65a0c0ffee65a0")
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "Message not found", body["msg"])
	})

	t.Run("malformed id is an error response, not a crash", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, newTestService(contact.NewInMemRepository(), nil, email.Config{}))

		resp, err := http.Get(srv.URL + "/not-a-valid-object-id")
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "Invalid contact id", body["msg"])
	})

	t.Run("store error returns 500", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, newTestService(failingRepository{}, nil, email.Config{}))

		resp, err := http.Get(srv.URL + "/65a0c0ffee65a0c0ffee65a0")
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		resp.Body.Close()
	})
}
