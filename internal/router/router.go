package router

import (
	"net/http"

	"pet-hub/internal/adapters/auth/bcrypthash"
	"pet-hub/internal/adapters/auth/jwtsession"
	"pet-hub/internal/adapters/media/local"
	mem "pet-hub/internal/adapters/storage/memory"
	pg "pet-hub/internal/adapters/storage/postgres"
	"pet-hub/internal/config"
	"pet-hub/internal/domain/adoptions"
	"pet-hub/internal/domain/appointments"
	"pet-hub/internal/domain/dashboard"
	"pet-hub/internal/domain/matings"
	"pet-hub/internal/domain/pets"
	"pet-hub/internal/domain/users"
	"pet-hub/internal/middleware"
	"pet-hub/internal/platform/logger"
	"pet-hub/internal/platform/metrics"
	"pet-hub/internal/ports/auth"
	"pet-hub/internal/ports/media"
	"pet-hub/internal/web"

	_ "pet-hub/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Config *config.Config // nil => config.Defaults()
	Logger logger.Logger  // nil => sin logs

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sqlx.DB

	// Opcionales; nil => defaults a partir de Config.
	Images   media.ImageStore
	Hasher   auth.PasswordHasher
	Renderer web.Renderer
	Metrics  *metrics.Metrics
}

// Services son los casos de uso ya cableados a un store.
// El CLI los usa también para sembrar sin levantar HTTP.
type Services struct {
	Users        *users.Service
	Pets         *pets.Service
	Adoptions    *adoptions.Service
	Matings      *matings.Service
	Appointments *appointments.Service
	Sessions     *jwtsession.Manager
}

func (o Options) withDefaults() Options {
	if o.Config == nil {
		cfg := config.Defaults()
		o.Config = &cfg
	}
	if o.Logger == nil {
		o.Logger = logger.Nop()
	}
	if o.Hasher == nil {
		o.Hasher = bcrypthash.New(o.Config.Auth.BcryptCost)
	}
	if o.Renderer == nil {
		o.Renderer = web.JSONRenderer{}
	}
	if o.Metrics == nil {
		o.Metrics = metrics.New()
	}
	if o.Images == nil {
		st, err := local.New(o.Config.Uploads.Dir)
		if err != nil {
			o.Logger.Warn("image store unavailable, uploads disabled", map[string]any{"err": err})
		} else {
			o.Images = st
		}
	}
	return o
}

func NewServices(opts Options) Services {
	opts = opts.withDefaults()

	var (
		userRepo        users.Repository
		petRepo         pets.Repository
		adoptionRepo    adoptions.Repository
		matingRepo      matings.Repository
		appointmentRepo appointments.Repository
	)

	if opts.DB != nil {
		userRepo = pg.NewUsersRepo(opts.DB)
		petRepo = pg.NewPetsRepo(opts.DB)
		adoptionRepo = pg.NewAdoptionsRepo(opts.DB)
		matingRepo = pg.NewMatingsRepo(opts.DB)
		appointmentRepo = pg.NewAppointmentsRepo(opts.DB)
	} else {
		st := mem.NewStore()
		userRepo = mem.NewUserRepo(st)
		petRepo = mem.NewPetRepo(st)
		adoptionRepo = mem.NewAdoptionRepo(st)
		matingRepo = mem.NewMatingRepo(st)
		appointmentRepo = mem.NewAppointmentRepo(st)
	}

	return Services{
		Users:        users.NewService(userRepo, opts.Hasher),
		Pets:         pets.NewService(petRepo),
		Adoptions:    adoptions.NewService(adoptionRepo),
		Matings:      matings.NewService(matingRepo),
		Appointments: appointments.NewService(appointmentRepo),
		Sessions: jwtsession.NewManager(jwtsession.Config{
			Secret: opts.Config.Session.Secret,
			TTL:    opts.Config.Session.TTL,
			Issuer: opts.Config.App.Name,
		}),
	}
}

// Mount arma el router HTTP sobre servicios ya construidos.
func Mount(svcs Services, opts Options) http.Handler {
	opts = opts.withDefaults()
	cfg := opts.Config

	env := web.Env{
		Renderer: opts.Renderer,
		Log:      opts.Logger,
		Metrics:  opts.Metrics,
	}
	cookie := middleware.SessionCookie{
		Name:   cfg.Session.CookieName,
		Secure: cfg.Session.Secure,
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(opts.Logger))
	r.Use(middleware.Recover(opts.Logger))
	r.Use(opts.Metrics.Middleware)
	r.Use(web.Flashes)
	r.Use(middleware.Session(cookie, svcs.Sessions, svcs.Users))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", opts.Metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Rutas por módulo
	users.RegisterRoutes(r, svcs.Users, users.SessionDeps{
		Issuer:  svcs.Sessions,
		Cookie:  cookie,
		Limiter: middleware.NewRateLimiter(cfg.Auth.LoginRatePerMinute, cfg.Auth.LoginBurst),
	}, env)

	uploads := pets.Uploads{
		Uploader: pets.NewImageUploader(opts.Images),
		MaxBytes: cfg.Uploads.MaxBytes,
	}
	if opener, ok := opts.Images.(media.ImageOpener); ok {
		uploads.Opener = opener
	}
	pets.RegisterRoutes(r, svcs.Pets, uploads, env)

	adoptions.RegisterRoutes(r, svcs.Adoptions, env)
	matings.RegisterRoutes(r, svcs.Matings, env)
	appointments.RegisterRoutes(r, svcs.Appointments, svcs.Users, env)
	dashboard.RegisterRoutes(r, dashboard.Sources{
		Users:        svcs.Users,
		Pets:         svcs.Pets,
		Adoptions:    svcs.Adoptions,
		Matings:      svcs.Matings,
		Appointments: svcs.Appointments,
	}, env)

	return r
}

func NewRouter(opts Options) http.Handler {
	opts = opts.withDefaults()
	return Mount(NewServices(opts), opts)
}
