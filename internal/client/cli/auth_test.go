package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylocoin/dashboard/internal/client/models"
)

// stubAnswers replaces the text and yes/no prompts with canned answers,
// consumed in order.
func stubAnswers(t *testing.T, texts []string, yes bool) {
	t.Helper()
	origST, origYN := getSimpleText, getYesNo
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(texts) == 0 {
			return "", io.EOF
		}
		v := texts[0]
		texts = texts[1:]
		return v, nil
	}
	getYesNo = func(_ *bufio.Reader, _ string, _ io.Writer) (bool, error) { return yes, nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getYesNo = origYN
	})
}

func signedInApp(t *testing.T, mux *http.ServeMux) (*App, *bytes.Buffer) {
	t.Helper()
	stubPassword(t, "pw")
	app, out := newTestApp(t, mux, "STY000007\nn\n")
	require.NoError(t, app.SignIn(context.Background()))
	out.Reset()
	return app, out
}

func TestWhoAmI(t *testing.T) {
	app, out := newTestApp(t, http.NotFoundHandler(), "")
	require.NoError(t, app.WhoAmI(context.Background()))
	assert.Equal(t, "Not signed in.\n", out.String())

	app, out = signedInApp(t, memberBackend(t))
	require.NoError(t, app.WhoAmI(context.Background()))
	assert.Equal(t, "Bob (STY000007), member\nLanding page: /home\n", out.String())
}

func TestSignOut_WhenSignedOut(t *testing.T) {
	app, out := newTestApp(t, http.NotFoundHandler(), "")

	require.NoError(t, app.SignOut(context.Background()))
	assert.Equal(t, "Not signed in.\n", out.String())
}

func TestSignUp_BackendMessageIsReturned(t *testing.T) {
	stubPassword(t, "secret1")
	stubAnswers(t, []string{"Carol", "carol@example.com", "+100", "DE", "", "", ""}, true)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/auth/register", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusConflict, map[string]string{"message": "Email already registered"})
	})
	app, _ := newTestApp(t, mux, "")

	err := app.SignUp(context.Background())
	require.EqualError(t, err, "Email already registered")
}

func TestProfile_Edit(t *testing.T) {
	var put models.User
	mux := memberBackend(t)
	mux.HandleFunc("GET /api/v1/users/7", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"data": models.User{
			ID: 7, Username: "STY000007", Name: "Bob", Email: "bob@example.com", Country: "LV",
			Roles: []models.Role{{Name: "USER"}},
		}})
	})
	mux.HandleFunc("PUT /api/v1/users/7", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&put)
		writeJSON(w, http.StatusOK, put)
	})
	app, out := signedInApp(t, mux)

	stubAnswers(t, []string{"Robert", "", "", "", ""}, true)
	require.NoError(t, app.Profile(context.Background()))

	assert.Equal(t, "Robert", put.Name)
	assert.Equal(t, "bob@example.com", put.Email)
	assert.Equal(t, "LV", put.Country)
	assert.Contains(t, out.String(), "Profile updated.")
	assert.Equal(t, "Robert", app.dash.Auth.Snapshot().User.Name)
	assert.Equal(t, []models.Role{{Name: "USER"}}, app.dash.Auth.Snapshot().User.Roles)
}

func TestProfile_ViewOnly(t *testing.T) {
	calls := 0
	mux := memberBackend(t)
	mux.HandleFunc("GET /api/v1/users/7", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.User{ID: 7, Username: "STY000007", Name: "Bob"})
	})
	mux.HandleFunc("PUT /api/v1/users/7", func(w http.ResponseWriter, r *http.Request) { calls++ })
	app, out := signedInApp(t, mux)

	stubAnswers(t, nil, false)
	require.NoError(t, app.Profile(context.Background()))

	assert.Contains(t, out.String(), "STY000007")
	assert.NotContains(t, out.String(), "Profile updated.")
	assert.Zero(t, calls)
}
