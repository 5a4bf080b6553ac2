package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"pet-hub/internal/adapters/auth/bcrypthash"
	"pet-hub/internal/config"
	"pet-hub/internal/domain/users"
	"pet-hub/internal/ports/auth"
	"pet-hub/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// -------------------------
// Harness
// -------------------------

type testApp struct {
	t    *testing.T
	ts   *httptest.Server
	svcs router.Services
	cfg  *config.Config
}

func newTestApp(t *testing.T, mutate func(*config.Config)) *testApp {
	t.Helper()

	cfg := config.Defaults()
	cfg.Uploads.Dir = t.TempDir()
	cfg.Auth.LoginRatePerMinute = 0 // sin throttling salvo que el test lo pida
	if mutate != nil {
		mutate(&cfg)
	}

	opts := router.Options{
		Config: &cfg,
		Hasher: bcrypthash.New(bcrypt.MinCost),
	}
	svcs := router.NewServices(opts)
	ts := httptest.NewServer(router.Mount(svcs, opts))
	t.Cleanup(ts.Close)

	return &testApp{t: t, ts: ts, svcs: svcs, cfg: &cfg}
}

func (a *testApp) seed() {
	a.t.Helper()
	accounts := make([]users.SeedAccount, 0, len(a.cfg.Bootstrap.Accounts))
	for _, acc := range a.cfg.Bootstrap.Accounts {
		accounts = append(accounts, users.SeedAccount{Name: acc.Name, Email: acc.Email, Password: acc.Password, Role: acc.Role})
	}
	_, err := a.svcs.Users.SeedDefaults(context.Background(), accounts)
	require.NoError(a.t, err)
}

func (a *testApp) userByEmail(email string) users.User {
	a.t.Helper()
	all, err := a.svcs.Users.List(context.Background())
	require.NoError(a.t, err)
	for _, u := range all {
		if u.Email == email {
			return u
		}
	}
	a.t.Fatalf("user %s not found", email)
	return users.User{}
}

// browser es un cliente con cookies que NO sigue redirects.
type browser struct {
	t      *testing.T
	app    *testApp
	client *http.Client
}

func (a *testApp) browser() *browser {
	jar, err := cookiejar.New(nil)
	require.NoError(a.t, err)
	return &browser{
		t:   a.t,
		app: a,
		client: &http.Client{
			Jar: jar,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

type flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

type viewEnvelope struct {
	View    string  `json:"view"`
	Flashes []flash `json:"flashes"`
	User    *struct {
		ID    int64  `json:"id"`
		Email string `json:"email"`
		Role  string `json:"role"`
	} `json:"user"`
	Data json.RawMessage `json:"data"`
}

func (v viewEnvelope) hasFlash(category, prefix string) bool {
	for _, f := range v.Flashes {
		if f.Category == category && strings.HasPrefix(f.Message, prefix) {
			return true
		}
	}
	return false
}

func (b *browser) do(req *http.Request) (int, http.Header, []byte) {
	b.t.Helper()
	res, err := b.client.Do(req)
	require.NoError(b.t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(b.t, err)
	return res.StatusCode, res.Header, body
}

func (b *browser) get(path string) (int, http.Header, []byte) {
	b.t.Helper()
	req, err := http.NewRequest(http.MethodGet, b.app.ts.URL+path, nil)
	require.NoError(b.t, err)
	return b.do(req)
}

func (b *browser) postForm(path string, vals url.Values) (int, http.Header, []byte) {
	b.t.Helper()
	req, err := http.NewRequest(http.MethodPost, b.app.ts.URL+path, strings.NewReader(vals.Encode()))
	require.NoError(b.t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return b.do(req)
}

func (b *browser) postMultipart(path string, fields map[string]string, fileName string, fileBody []byte) (int, http.Header, []byte) {
	b.t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(b.t, mw.WriteField(k, v))
	}
	if fileName != "" {
		fw, err := mw.CreateFormFile("image", fileName)
		require.NoError(b.t, err)
		_, err = fw.Write(fileBody)
		require.NoError(b.t, err)
	}
	require.NoError(b.t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, b.app.ts.URL+path, &buf)
	require.NoError(b.t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return b.do(req)
}

// view hace GET y decodifica el envelope; exige 200.
func (b *browser) view(path string) viewEnvelope {
	b.t.Helper()
	st, _, body := b.get(path)
	require.Equal(b.t, http.StatusOK, st, "GET %s body=%s", path, string(body))
	var v viewEnvelope
	require.NoError(b.t, json.Unmarshal(body, &v), string(body))
	return v
}

func (b *browser) register(name, email, password string, extra url.Values) string {
	b.t.Helper()
	vals := url.Values{"name": {name}, "email": {email}, "password": {password}}
	for k, v := range extra {
		vals[k] = v
	}
	st, h, _ := b.postForm("/register", vals)
	require.Equal(b.t, http.StatusSeeOther, st)
	return h.Get("Location")
}

func (b *browser) login(email, password string) (int, string) {
	b.t.Helper()
	st, h, _ := b.postForm("/login", url.Values{"email": {email}, "password": {password}})
	return st, h.Get("Location")
}

func (b *browser) mustLogin(email, password string) {
	b.t.Helper()
	st, loc := b.login(email, password)
	require.Equal(b.t, http.StatusSeeOther, st)
	require.Equal(b.t, "/dashboard", loc)
}

type petJSON struct {
	ID            int64    `json:"id"`
	OwnerID       int64    `json:"owner_id"`
	Name          string   `json:"name"`
	Age           int      `json:"age"`
	Image         *string  `json:"image"`
	WeightKg      *float64 `json:"weight_kg"`
	IsForAdoption bool     `json:"is_for_adoption"`
	IsForMating   bool     `json:"is_for_mating"`
}

type dashboardData struct {
	Pets             []petJSON         `json:"pets"`
	Appointments     []json.RawMessage `json:"appointments"`
	AdoptionRequests []struct {
		PetID     int64  `json:"pet_id"`
		Status    string `json:"status"`
		CreatedAt string `json:"created_at"`
	} `json:"adoption_requests"`
}

func (b *browser) dashboard() (viewEnvelope, dashboardData) {
	b.t.Helper()
	v := b.view("/dashboard")
	require.Equal(b.t, "dashboard", v.View)
	var d dashboardData
	require.NoError(b.t, json.Unmarshal(v.Data, &d))
	return v, d
}

// -------------------------
// Tests
// -------------------------

func TestHTTP_Health(t *testing.T) {
	app := newTestApp(t, nil)
	st, _, body := app.browser().get("/health")
	assert.Equal(t, http.StatusOK, st)
	assert.Equal(t, "ok", string(body))

	st, _, body = app.browser().get("/metrics")
	assert.Equal(t, http.StatusOK, st)
	assert.Contains(t, string(body), "pethub_http_requests_total")
}

func TestHTTP_EndToEnd_RegisterLoginAddPet(t *testing.T) {
	app := newTestApp(t, nil)
	b := app.browser()

	loc := b.register("Alice", "alice@x.com", "Str0ng!Pass", nil)
	assert.Equal(t, "/login", loc)

	login := b.view("/login")
	assert.Equal(t, "auth_login", login.View)
	assert.True(t, login.hasFlash("success", "Registration successful"))

	b.mustLogin("alice@x.com", "Str0ng!Pass")

	v, d := b.dashboard()
	require.NotNil(t, v.User)
	assert.Equal(t, "alice@x.com", v.User.Email)
	assert.Equal(t, "owner", v.User.Role)
	assert.True(t, v.hasFlash("success", "Logged in successfully"))
	assert.Empty(t, d.Pets)

	// owner_id del cliente se ignora
	st, h, _ := b.postForm("/pets/add", url.Values{
		"name":            {"Rex"},
		"species":         {"dog"},
		"owner_id":        {"999"},
		"is_for_adoption": {"on"},
	})
	require.Equal(t, http.StatusSeeOther, st)
	assert.Equal(t, "/dashboard", h.Get("Location"))

	v, d = b.dashboard()
	assert.True(t, v.hasFlash("success", "Pet added successfully"))
	require.Len(t, d.Pets, 1)
	assert.Equal(t, "Rex", d.Pets[0].Name)
	assert.Equal(t, 0, d.Pets[0].Age)
	assert.Equal(t, v.User.ID, d.Pets[0].OwnerID)
	assert.True(t, d.Pets[0].IsForAdoption)
	assert.False(t, d.Pets[0].IsForMating)
	assert.Nil(t, d.Pets[0].Image)
	assert.Nil(t, d.Pets[0].WeightKg)
}

func TestHTTP_Register_WeakPassword_NoUser(t *testing.T) {
	app := newTestApp(t, nil)
	b := app.browser()

	for _, pw := range []string{"short1!", "alllowercase1!", "NoDigitsHere!", "NoSymbol123"} {
		loc := b.register("Bob", "bob@x.com", pw, nil)
		assert.Equal(t, "/register", loc)

		v := b.view("/register")
		assert.Equal(t, "auth_register", v.View)
		assert.True(t, v.hasFlash("danger", "Password"), "password %q", pw)
	}

	all, err := app.svcs.Users.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestHTTP_Register_DuplicateEmailAndBadRole(t *testing.T) {
	app := newTestApp(t, nil)
	b := app.browser()

	b.register("Alice", "alice@x.com", "Str0ng!Pass", nil)

	loc := b.register("Alice 2", "alice@x.com", "An0ther!Pass", nil)
	assert.Equal(t, "/register", loc)
	assert.True(t, b.view("/register").hasFlash("danger", "Email already registered"))

	loc = b.register("Root", "root@x.com", "Str0ng!Pass", url.Values{"role": {"superuser"}})
	assert.Equal(t, "/register", loc)
	assert.True(t, b.view("/register").hasFlash("danger", "Invalid role"))

	all, err := app.svcs.Users.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestHTTP_Login_GenericFailure(t *testing.T) {
	app := newTestApp(t, nil)
	b := app.browser()
	b.register("Alice", "alice@x.com", "Str0ng!Pass", nil)

	stWrong, _, bodyWrong := b.postForm("/login", url.Values{"email": {"alice@x.com"}, "password": {"nope"}})
	stGhost, _, bodyGhost := b.postForm("/login", url.Values{"email": {"ghost@x.com"}, "password": {"Str0ng!Pass"}})

	assert.Equal(t, http.StatusOK, stWrong)
	assert.Equal(t, stWrong, stGhost)
	assert.JSONEq(t, string(bodyWrong), string(bodyGhost))

	var v viewEnvelope
	require.NoError(t, json.Unmarshal(bodyWrong, &v))
	assert.Equal(t, "auth_login", v.View)
	assert.Nil(t, v.User)
	assert.True(t, v.hasFlash("danger", "Invalid email or password"))

	// sigue anónimo
	st, h, _ := b.get("/dashboard")
	assert.Equal(t, http.StatusSeeOther, st)
	assert.Equal(t, "/login?next=%2Fdashboard", h.Get("Location"))
}

func TestHTTP_Login_NextRedirect(t *testing.T) {
	app := newTestApp(t, nil)
	b := app.browser()
	b.register("Alice", "alice@x.com", "Str0ng!Pass", nil)

	st, h, _ := b.get("/pets")
	require.Equal(t, http.StatusSeeOther, st)
	assert.Equal(t, "/login?next=%2Fpets", h.Get("Location"))

	st, h, _ = b.postForm("/login?next=%2Fpets", url.Values{"email": {"alice@x.com"}, "password": {"Str0ng!Pass"}})
	require.Equal(t, http.StatusSeeOther, st)
	assert.Equal(t, "/pets", h.Get("Location"))

	other := app.browser()
	st, h, _ = other.postForm("/login?next=%2F%2Fevil.example", url.Values{"email": {"alice@x.com"}, "password": {"Str0ng!Pass"}})
	require.Equal(t, http.StatusSeeOther, st)
	assert.Equal(t, "/dashboard", h.Get("Location"))
}

func TestHTTP_Login_Throttled(t *testing.T) {
	app := newTestApp(t, func(c *config.Config) {
		c.Auth.LoginRatePerMinute = 1
		c.Auth.LoginBurst = 2
	})
	b := app.browser()

	for i := 0; i < 2; i++ {
		st, _ := b.login("ghost@x.com", "x")
		assert.Equal(t, http.StatusOK, st)
	}
	st, _, body := b.postForm("/login", url.Values{"email": {"ghost@x.com"}, "password": {"x"}})
	assert.Equal(t, http.StatusTooManyRequests, st)
	assert.Contains(t, string(body), "Too many login attempts")
}

func TestHTTP_Logout(t *testing.T) {
	app := newTestApp(t, nil)
	b := app.browser()
	b.register("Alice", "alice@x.com", "Str0ng!Pass", nil)
	b.mustLogin("alice@x.com", "Str0ng!Pass")

	st, h, _ := b.get("/logout")
	require.Equal(t, http.StatusSeeOther, st)
	assert.Equal(t, "/login", h.Get("Location"))
	assert.True(t, b.view("/login").hasFlash("info", "Logged out"))

	st, _, _ = b.get("/dashboard")
	assert.Equal(t, http.StatusSeeOther, st)

	st, h, _ = b.get("/")
	assert.Equal(t, http.StatusSeeOther, st)
	assert.Equal(t, "/login", h.Get("Location"))
}

func TestHTTP_AddPet_AgeValidation(t *testing.T) {
	app := newTestApp(t, nil)
	b := app.browser()
	b.register("Alice", "alice@x.com", "Str0ng!Pass", nil)
	b.mustLogin("alice@x.com", "Str0ng!Pass")
	b.view("/dashboard") // consume el flash de login

	st, _, _ := b.postForm("/pets/add", url.Values{"name": {"Rex"}, "species": {"dog"}, "age": {"three"}})
	require.Equal(t, http.StatusSeeOther, st)

	v, d := b.dashboard()
	assert.True(t, v.hasFlash("danger", "Age must be a whole number"))
	assert.Empty(t, d.Pets)

	// no entra en la columna INTEGER
	st, _, _ = b.postForm("/pets/add", url.Values{"name": {"Rex"}, "species": {"dog"}, "age": {"3000000000"}})
	require.Equal(t, http.StatusSeeOther, st)

	v, d = b.dashboard()
	assert.True(t, v.hasFlash("danger", "Age must be a whole number"))
	assert.Empty(t, d.Pets)

	st, _, _ = b.postForm("/pets/add", url.Values{"name": {"Rex"}, "species": {"dog"}, "age": {"3"}, "weight_kg": {"12.5"}})
	require.Equal(t, http.StatusSeeOther, st)
	_, d = b.dashboard()
	require.Len(t, d.Pets, 1)
	assert.Equal(t, 3, d.Pets[0].Age)
	require.NotNil(t, d.Pets[0].WeightKg)
	assert.InDelta(t, 12.5, *d.Pets[0].WeightKg, 1e-9)

	st, _, _ = b.postForm("/pets/add", url.Values{"name": {""}, "species": {"dog"}})
	require.Equal(t, http.StatusSeeOther, st)
	v, d = b.dashboard()
	assert.True(t, v.hasFlash("danger", "Name and species are required"))
	assert.Len(t, d.Pets, 1)
}

func TestHTTP_AddPet_ImageUpload(t *testing.T) {
	app := newTestApp(t, nil)
	b := app.browser()
	b.register("Alice", "alice@x.com", "Str0ng!Pass", nil)
	b.mustLogin("alice@x.com", "Str0ng!Pass")

	st, _, _ := b.postMultipart("/pets/add", map[string]string{"name": "Evil", "species": "cat"}, "evil.exe", []byte("MZ"))
	require.Equal(t, http.StatusSeeOther, st)

	st, _, _ = b.postMultipart("/pets/add", map[string]string{"name": "Rex", "species": "dog", "vaccinated": "on"}, "Rex Photo.PNG", []byte("\x89PNG"))
	require.Equal(t, http.StatusSeeOther, st)

	_, d := b.dashboard()
	require.Len(t, d.Pets, 2)
	assert.Equal(t, "Evil", d.Pets[0].Name)
	assert.Nil(t, d.Pets[0].Image, "bad extension still creates the pet, without image")

	require.NotNil(t, d.Pets[1].Image)
	assert.Equal(t, "Rex_Photo.PNG", *d.Pets[1].Image)

	st, h, body := app.browser().get("/images/Rex_Photo.PNG")
	require.Equal(t, http.StatusOK, st)
	assert.Equal(t, "\x89PNG", string(body))
	assert.Equal(t, "image/png", h.Get("Content-Type"))

	st, _, _ = app.browser().get("/images/missing.png")
	assert.Equal(t, http.StatusNotFound, st)
}

func TestHTTP_PetsView_AllAndMine(t *testing.T) {
	app := newTestApp(t, nil)
	alice := app.browser()
	alice.register("Alice", "alice@x.com", "Str0ng!Pass", nil)
	alice.mustLogin("alice@x.com", "Str0ng!Pass")
	alice.postForm("/pets/add", url.Values{"name": {"Rex"}, "species": {"dog"}})

	bob := app.browser()
	bob.register("Bob", "bob@x.com", "Str0ng!Pass", nil)
	bob.mustLogin("bob@x.com", "Str0ng!Pass")
	bob.postForm("/pets/add", url.Values{"name": {"Mia"}, "species": {"cat"}})

	v := bob.view("/pets")
	assert.Equal(t, "pets", v.View)
	var d struct {
		AllPets []petJSON `json:"all_pets"`
		MyPets  []petJSON `json:"my_pets"`
	}
	require.NoError(t, json.Unmarshal(v.Data, &d))
	assert.Len(t, d.AllPets, 2)
	require.Len(t, d.MyPets, 1)
	assert.Equal(t, "Mia", d.MyPets[0].Name)
}

func TestHTTP_AdoptionAndMatingRequests(t *testing.T) {
	app := newTestApp(t, nil)
	alice := app.browser()
	alice.register("Alice", "alice@x.com", "Str0ng!Pass", nil)
	alice.mustLogin("alice@x.com", "Str0ng!Pass")
	alice.postForm("/pets/add", url.Values{"name": {"Rex"}, "species": {"dog"}})

	bob := app.browser()
	bob.register("Bob", "bob@x.com", "Str0ng!Pass", nil)
	bob.mustLogin("bob@x.com", "Str0ng!Pass")
	bob.postForm("/pets/add", url.Values{"name": {"Luna"}, "species": {"dog"}})

	// Rex no está marcado para adopción; igual se acepta
	st, h, _ := bob.postForm("/adopt/1", url.Values{"message": {"I have a garden"}})
	require.Equal(t, http.StatusSeeOther, st)
	assert.Equal(t, "/pets", h.Get("Location"))
	assert.True(t, bob.view("/pets").hasFlash("success", "Adoption request submitted"))

	_, d := bob.dashboard()
	require.Len(t, d.AdoptionRequests, 1)
	assert.Equal(t, int64(1), d.AdoptionRequests[0].PetID)
	assert.Equal(t, "pending", d.AdoptionRequests[0].Status)
	assert.NotEmpty(t, d.AdoptionRequests[0].CreatedAt)

	st, _, _ = bob.postForm("/adopt/404", nil)
	require.Equal(t, http.StatusSeeOther, st)
	assert.True(t, bob.view("/pets").hasFlash("danger", "Pet not found"))
	_, d = bob.dashboard()
	assert.Len(t, d.AdoptionRequests, 1)

	st, _, _ = bob.postForm("/adopt/abc", nil)
	assert.Equal(t, http.StatusNotFound, st)

	st, _, _ = bob.postForm("/mating/request/1", url.Values{"requester_pet_id": {"2"}})
	require.Equal(t, http.StatusSeeOther, st)
	assert.True(t, bob.view("/pets").hasFlash("success", "Mating request submitted"))

	st, _, _ = bob.postForm("/mating/request/1", url.Values{"requester_pet_id": {"two"}})
	require.Equal(t, http.StatusSeeOther, st)
	assert.True(t, bob.view("/pets").hasFlash("danger", "Choose one of your pets"))

	st, _, _ = bob.postForm("/mating/request/1", url.Values{"requester_pet_id": {"77"}})
	require.Equal(t, http.StatusSeeOther, st)
	assert.True(t, bob.view("/pets").hasFlash("danger", "Pet not found"))
}

func TestHTTP_Admin_RoleGate(t *testing.T) {
	app := newTestApp(t, nil)
	app.seed()

	owner := app.browser()
	owner.register("Alice", "alice@x.com", "Str0ng!Pass", nil)
	owner.mustLogin("alice@x.com", "Str0ng!Pass")

	st, h, body := owner.get("/admin")
	require.Equal(t, http.StatusSeeOther, st)
	assert.Equal(t, "/dashboard", h.Get("Location"))
	assert.NotContains(t, string(body), "admin@janvar.com")

	v, _ := owner.dashboard()
	assert.True(t, v.hasFlash("danger", "Admin access only."))

	admin := app.browser()
	admin.mustLogin("admin@janvar.com", "admin123")
	av := admin.view("/admin")
	assert.Equal(t, "admin_dashboard", av.View)

	var d struct {
		Users []map[string]any `json:"users"`
	}
	require.NoError(t, json.Unmarshal(av.Data, &d))
	assert.Len(t, d.Users, 3)
	for _, u := range d.Users {
		_, leaked := u["password_hash"]
		assert.False(t, leaked)
	}
}

func TestHTTP_Seed_Idempotent(t *testing.T) {
	app := newTestApp(t, nil)
	app.seed()
	app.seed()

	all, err := app.svcs.Users.List(context.Background())
	require.NoError(t, err)

	roles := map[auth.Role]int{}
	for _, u := range all {
		roles[u.Role]++
	}
	assert.Equal(t, 1, roles[auth.RoleAdmin])
	assert.Equal(t, 1, roles[auth.RoleVet])
	assert.Len(t, all, 2)
}

func TestHTTP_Appointments_RoleScoped(t *testing.T) {
	app := newTestApp(t, nil)
	app.seed()
	vet := app.userByEmail("vet@example.com")

	alice := app.browser()
	alice.register("Alice", "alice@x.com", "Str0ng!Pass", nil)
	alice.mustLogin("alice@x.com", "Str0ng!Pass")
	alice.postForm("/pets/add", url.Values{"name": {"Rex"}, "species": {"dog"}})

	st, h, _ := alice.postForm("/appointments/book", url.Values{
		"pet_id":           {"1"},
		"vet_id":           {strconv.FormatInt(vet.ID, 10)},
		"appointment_time": {"2026-07-01 09:30"},
		"reason":           {"checkup"},
	})
	require.Equal(t, http.StatusSeeOther, st)
	assert.Equal(t, "/appointments", h.Get("Location"))

	st, _, _ = alice.postForm("/appointments/book", url.Values{
		"pet_id":           {"1"},
		"vet_id":           {strconv.FormatInt(vet.ID, 10)},
		"appointment_time": {"01/07/2026 9am"},
	})
	require.Equal(t, http.StatusSeeOther, st)

	type apptView struct {
		Appointments []struct {
			OwnerID         int64  `json:"owner_id"`
			VetID           int64  `json:"vet_id"`
			AppointmentTime string `json:"appointment_time"`
			Reason          string `json:"reason"`
		} `json:"appointments"`
		Users []map[string]any `json:"users"`
	}

	v := alice.view("/appointments")
	assert.Equal(t, "vet_appointments", v.View)
	assert.True(t, v.hasFlash("success", "Appointment booked"))
	assert.True(t, v.hasFlash("danger", "Appointment time must be"))
	var ad apptView
	require.NoError(t, json.Unmarshal(v.Data, &ad))
	require.Len(t, ad.Appointments, 1)
	assert.Equal(t, "2026-07-01T09:30:00Z", ad.Appointments[0].AppointmentTime)
	assert.Len(t, ad.Users, 3)

	vb := app.browser()
	vb.mustLogin("vet@example.com", "vet123")
	vv := vb.view("/appointments")
	var vd apptView
	require.NoError(t, json.Unmarshal(vv.Data, &vd))
	require.Len(t, vd.Appointments, 1)
	assert.Equal(t, vet.ID, vd.Appointments[0].VetID)
	assert.Empty(t, vd.Users)

	// el dashboard del vet muestra los turnos asignados
	_, dd := vb.dashboard()
	assert.Len(t, dd.Appointments, 1)

	// vet inexistente
	st, _, _ = alice.postForm("/appointments/book", url.Values{
		"pet_id":           {"1"},
		"vet_id":           {"999"},
		"appointment_time": {"2026-07-02 10:00"},
	})
	require.Equal(t, http.StatusSeeOther, st)
	assert.True(t, alice.view("/appointments").hasFlash("danger", "Pet not found"))
}

func TestHTTP_MultipartForms(t *testing.T) {
	app := newTestApp(t, nil)
	app.seed()
	vet := app.userByEmail("vet@example.com")
	b := app.browser()

	st, h, _ := b.postMultipart("/register", map[string]string{
		"name":     "Alice",
		"email":    "alice@x.com",
		"password": "Str0ng!Pass",
	}, "", nil)
	require.Equal(t, http.StatusSeeOther, st)
	assert.Equal(t, "/login", h.Get("Location"))
	alice := app.userByEmail("alice@x.com")
	assert.Equal(t, "Alice", alice.Name)

	st, h, _ = b.postMultipart("/login", map[string]string{
		"email":    "alice@x.com",
		"password": "Str0ng!Pass",
	}, "", nil)
	require.Equal(t, http.StatusSeeOther, st)
	assert.Equal(t, "/dashboard", h.Get("Location"))

	st, _, _ = b.postMultipart("/pets/add", map[string]string{"name": "Rex", "species": "dog"}, "", nil)
	require.Equal(t, http.StatusSeeOther, st)

	st, h, _ = b.postMultipart("/appointments/book", map[string]string{
		"pet_id":           "1",
		"vet_id":           strconv.FormatInt(vet.ID, 10),
		"appointment_time": "2026-07-01 09:30",
	}, "", nil)
	require.Equal(t, http.StatusSeeOther, st)
	assert.Equal(t, "/appointments", h.Get("Location"))

	st, _, _ = b.postMultipart("/adopt/1", map[string]string{"message": "hi"}, "", nil)
	require.Equal(t, http.StatusSeeOther, st)
	st, _, _ = b.postMultipart("/mating/request/1", map[string]string{"requester_pet_id": "1"}, "", nil)
	require.Equal(t, http.StatusSeeOther, st)

	v := b.view("/appointments")
	assert.True(t, v.hasFlash("success", "Appointment booked"))
	assert.True(t, v.hasFlash("success", "Adoption request submitted"))
	assert.True(t, v.hasFlash("success", "Mating request submitted"))

	_, d := b.dashboard()
	assert.Len(t, d.Appointments, 1)
	require.Len(t, d.AdoptionRequests, 1)
	assert.Equal(t, "pending", d.AdoptionRequests[0].Status)
}
