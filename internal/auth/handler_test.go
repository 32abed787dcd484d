package auth

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nevilinq/nevilinq-api/internal/account"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	repo := account.NewMemoryRepository()
	accounts := account.NewService(repo, nil)
	issuer := NewTokenIssuer("test-secret", time.Hour)
	handler := NewHandler(accounts, NewService(repo, issuer))

	app := fiber.New()
	group := app.Group("/auth")
	group.Post("/signup", handler.Signup)
	group.Post("/login", handler.Login)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test %s: %v", path, err)
	}
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

const signupBob = `{"name":"  Bob  ","email":"Bob@Example.COM","password":"hunter22","whatsapp":"241 06 12 34 56","telegram":""}`

func TestSignupCreatesUser(t *testing.T) {
	app := setupApp(t)

	resp := postJSON(t, app, "/auth/signup", signupBob)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var body map[string]any
	decodeJSON(t, resp, &body)

	if body["name"] != "Bob" {
		t.Fatalf("expected trimmed name Bob, got %v", body["name"])
	}
	if body["email"] != "bob@example.com" {
		t.Fatalf("expected lowercased email, got %v", body["email"])
	}
	if body["whatsapp"] != "+24106123456" {
		t.Fatalf("expected normalized whatsapp, got %v", body["whatsapp"])
	}
	if body["telegram"] != nil {
		t.Fatalf("expected null telegram, got %v", body["telegram"])
	}
	if _, ok := body["id"]; !ok {
		t.Fatal("expected id in response")
	}
	if _, ok := body["password_hash"]; ok {
		t.Fatal("password hash must never appear in responses")
	}
}

func TestSignupConflicts(t *testing.T) {
	app := setupApp(t)

	if resp := postJSON(t, app, "/auth/signup", signupBob); resp.StatusCode != http.StatusCreated {
		t.Fatalf("seed signup failed with %d", resp.StatusCode)
	}

	// Same email, fresh number.
	resp := postJSON(t, app, "/auth/signup", `{"name":"Other","email":"bob@example.com","password":"pw","whatsapp":"+24106999999"}`)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d", resp.StatusCode)
	}

	// Fresh email, same number with different spacing.
	resp = postJSON(t, app, "/auth/signup", `{"name":"Other","email":"other@example.com","password":"pw","whatsapp":" 241 06 12 34 56"}`)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate whatsapp, got %d", resp.StatusCode)
	}
}

func TestSignupRejectsInvalidInput(t *testing.T) {
	app := setupApp(t)

	cases := map[string]string{
		"missing name":   `{"email":"a@b.com","password":"pw","whatsapp":"+24106123456"}`,
		"bad email":      `{"name":"A","email":"not-an-email","password":"pw","whatsapp":"+24106123456"}`,
		"no password":    `{"name":"A","email":"a@b.com","whatsapp":"+24106123456"}`,
		"bad whatsapp":   `{"name":"A","email":"a@b.com","password":"pw","whatsapp":"12"}`,
		"display-name":   `{"name":"A","email":"Bob <bob@x.com>","password":"pw","whatsapp":"+24106123456"}`,
		"malformed body": `{"name":`,
	}
	for label, body := range cases {
		resp := postJSON(t, app, "/auth/signup", body)
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", label, resp.StatusCode)
		}
	}
}

func TestSignupAndLoginWithLongPassphrase(t *testing.T) {
	app := setupApp(t)

	passphrase := strings.Repeat("correct horse battery staple ", 3) // 87 bytes
	body := `{"name":"Bob","email":"bob@example.com","password":"` + passphrase + `","whatsapp":"+24106123456"}`

	resp := postJSON(t, app, "/auth/signup", body)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 for long passphrase, got %d", resp.StatusCode)
	}

	login := `{"identifier":"bob@example.com","password":"` + passphrase + `"}`
	resp = postJSON(t, app, "/auth/login", login)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 logging in with long passphrase, got %d", resp.StatusCode)
	}
}

func TestLoginReturnsToken(t *testing.T) {
	app := setupApp(t)
	postJSON(t, app, "/auth/signup", signupBob)

	resp := postJSON(t, app, "/auth/login", `{"identifier":"bob@example.com","password":"hunter22"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		AccessToken string             `json:"access_token"`
		TokenType   string             `json:"token_type"`
		User        account.PublicView `json:"user"`
	}
	decodeJSON(t, resp, &body)

	if body.AccessToken == "" {
		t.Fatal("expected access token")
	}
	if body.TokenType != "bearer" {
		t.Fatalf("expected token_type bearer, got %q", body.TokenType)
	}
	if body.User.Email != "bob@example.com" {
		t.Fatalf("expected user view in response, got %+v", body.User)
	}
}

func TestLoginByPhoneIdentifier(t *testing.T) {
	app := setupApp(t)
	postJSON(t, app, "/auth/signup", signupBob)

	resp := postJSON(t, app, "/auth/login", `{"identifier":"24106123456","password":"hunter22"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for phone login, got %d", resp.StatusCode)
	}
}

func TestLoginFailuresAreUniform(t *testing.T) {
	app := setupApp(t)
	postJSON(t, app, "/auth/signup", signupBob)

	readBody := func(resp *http.Response) string {
		defer resp.Body.Close()
		b, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatalf("read body: %v", err)
		}
		return string(b)
	}

	wrongPass := postJSON(t, app, "/auth/login", `{"identifier":"bob@example.com","password":"wrong"}`)
	unknown := postJSON(t, app, "/auth/login", `{"identifier":"ghost@example.com","password":"hunter22"}`)

	if wrongPass.StatusCode != http.StatusUnauthorized || unknown.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", wrongPass.StatusCode, unknown.StatusCode)
	}

	if b1, b2 := readBody(wrongPass), readBody(unknown); b1 != b2 {
		t.Fatalf("login failure responses must be identical, got %q and %q", b1, b2)
	}
}

func TestLoginEmptyIdentifierRejected(t *testing.T) {
	app := setupApp(t)

	resp := postJSON(t, app, "/auth/login", `{"identifier":"   ","password":"pw"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for blank identifier, got %d", resp.StatusCode)
	}
}
