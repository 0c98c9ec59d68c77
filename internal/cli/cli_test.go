package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"society-admin-svc/internal/apiclient"
	"society-admin-svc/internal/service"
	"society-admin-svc/internal/session"
)

func TestParseFields(t *testing.T) {
	fields, err := ParseFields([]string{"name=Green Valley", "note=a=b", "name=Blue Ridge"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"name": "Blue Ridge", "note": "a=b"}, fields)

	_, err = ParseFields([]string{"=value"})
	assert.Error(t, err)
	_, err = ParseFields([]string{"novalue"})
	assert.Error(t, err)
}

func TestInferFields(t *testing.T) {
	fields := InferFields(map[string]string{
		"active":   "true",
		"fee":      "1500",
		"ratio":    "0.5",
		"phone":    "09876543210",
		"assignee": "null",
		"tags":     `["a","b"]`,
		"title":    "Lift broken",
	})

	assert.Equal(t, true, fields["active"])
	assert.Equal(t, 1500.0, fields["fee"])
	assert.Equal(t, 0.5, fields["ratio"])
	assert.Equal(t, "09876543210", fields["phone"])
	assert.Nil(t, fields["assignee"])
	assert.Equal(t, []interface{}{"a", "b"}, fields["tags"])
	assert.Equal(t, "Lift broken", fields["title"])
}

func TestDecodeInput(t *testing.T) {
	input, err := DecodeInput[service.SocietyInput](map[string]string{
		"name":         "Green Valley Residency",
		"type":         "residential",
		"address":      "12 Baner Road",
		"city":         "Pune",
		"state":        "Maharashtra",
		"pincode":      "411045",
		"contactEmail": "office@greenvalley.in",
		"contactPhone": "9876543210",
		"totalUnits":   "240",
		"isActive":     "true",
	})
	require.NoError(t, err)
	assert.Equal(t, "411045", input.Pincode)
	assert.Equal(t, "9876543210", input.ContactPhone)
	assert.Equal(t, 240, input.TotalUnits)
	require.NotNil(t, input.IsActive)
	assert.True(t, *input.IsActive)

	_, err = DecodeInput[service.SocietyInput](map[string]string{"name": "GV"})
	assert.Error(t, err, "binding tags are enforced")

	_, err = DecodeInput[service.AmenityInput](map[string]string{
		"societyId": "1", "name": "Gym", "openTime": "6am", "closeTime": "22:00",
	})
	assert.Error(t, err, "hhmm is enforced")

	payment, err := DecodeInput[service.PaymentInput](map[string]string{
		"societyId": "1", "userId": "12", "amount": "2500", "purpose": "Maintenance October",
		"method": "upi", "dueDate": "2026-10-01",
	})
	require.NoError(t, err)
	require.NotNil(t, payment.DueDate)
	assert.Equal(t, "2026-10-01", payment.DueDate.String())
}

func TestOpenFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notice.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF"), 0o600))

	files, closeFiles, err := OpenFiles([]string{"attachment=" + path})
	require.NoError(t, err)
	defer closeFiles()

	require.Len(t, files, 1)
	assert.Equal(t, "attachment", files[0].Field)
	assert.Equal(t, "notice.pdf", files[0].Name)
	assert.Equal(t, "application/pdf", files[0].ContentType)

	_, _, err = OpenFiles([]string{"attachment=" + filepath.Join(dir, "missing.pdf")})
	assert.Error(t, err)
}

// fakeAPI answers login and records the other requests
type fakeAPI struct {
	mu       sync.Mutex
	requests []string
	bodies   []map[string]interface{}
	auth     []string
	forbid   bool
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body map[string]interface{}
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		_ = json.NewDecoder(r.Body).Decode(&body)
	} else {
		_, _ = io.Copy(io.Discard, r.Body)
	}

	f.mu.Lock()
	f.requests = append(f.requests, r.Method+" "+r.URL.Path)
	f.bodies = append(f.bodies, body)
	f.auth = append(f.auth, r.Header.Get("Authorization"))
	forbid := f.forbid
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch {
	case r.URL.Path == "/auth/login":
		_, _ = io.WriteString(w, `{"message":"ok","result":{"token":"cli-token","user":{"id":1,"email":"ops@society.in","role":"admin"}}}`)
	case forbid:
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, `{"message":"Forbidden"}`)
	case r.Method == http.MethodPost:
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"message":"created","result":{"id":11,"title":"Water cut"}}`)
	default:
		_, _ = io.WriteString(w, `{"message":"ok","result":{"items":[],"pagination":{"page":1,"limit":10,"total":0}}}`)
	}
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCommand(&out, &errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestCLI_LoginCreateAndForbidden(t *testing.T) {
	api := &fakeAPI{}
	server := httptest.NewServer(api)
	defer server.Close()

	sessionFile := filepath.Join(t.TempDir(), "session.json")
	common := []string{"--api-url", server.URL, "--session-file", sessionFile}

	out, _, err := runCLI(t, append([]string{"login", "--email", "ops@society.in", "--password", "secret123"}, common...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Logged in as ops@society.in (admin)")

	out, _, err = runCLI(t, append([]string{"notices", "create",
		"-f", "societyId=1",
		"-f", "title=Water cut",
		"-f", "content=No water supply on Sunday morning",
		"-f", "category=maintenance",
	}, common...)...)
	require.NoError(t, err)
	assert.Contains(t, out, `"id": 11`)

	api.mu.Lock()
	require.Equal(t, []string{"POST /auth/login", "POST /notices"}, api.requests)
	assert.Equal(t, "Bearer cli-token", api.auth[1])
	assert.Equal(t, "Water cut", api.bodies[1]["title"])
	assert.Equal(t, float64(1), api.bodies[1]["societyId"])
	api.forbid = true
	api.mu.Unlock()

	_, errOut, err := runCLI(t, append([]string{"notices", "list"}, common...)...)
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, apiclient.StatusOf(err))
	assert.Contains(t, errOut, "societyctl login")

	store := session.NewFileStore(sessionFile)
	for _, key := range apiclient.SessionKeys {
		_, err := store.Get(context.Background(), DefaultProfile, key)
		assert.ErrorIs(t, err, session.ErrNotFound, key)
	}
}

func TestCLI_ValidationStopsBeforeRequest(t *testing.T) {
	api := &fakeAPI{}
	server := httptest.NewServer(api)
	defer server.Close()

	_, _, err := runCLI(t, "payments", "create", "-f", "amount=0",
		"--api-url", server.URL, "--session-file", filepath.Join(t.TempDir(), "s.json"))
	require.Error(t, err)

	api.mu.Lock()
	defer api.mu.Unlock()
	assert.Empty(t, api.requests)
}

func TestCLI_RequiresAPIURL(t *testing.T) {
	t.Setenv("API_BASE_URL", "")
	_, _, err := runCLI(t, "whoami", "--session-file", filepath.Join(t.TempDir(), "s.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API URL")
}
