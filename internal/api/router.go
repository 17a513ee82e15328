package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	apimw "github.com/phrazzld/mesto-api/internal/api/middleware"
	"github.com/phrazzld/mesto-api/internal/api/shared"
	"github.com/phrazzld/mesto-api/internal/domain"
	"github.com/phrazzld/mesto-api/internal/platform/metrics"
	"github.com/phrazzld/mesto-api/internal/service"
	"github.com/phrazzld/mesto-api/internal/service/auth"
)

// Dependencies are the services the router dispatches to.
type Dependencies struct {
	Credentials CredentialService
	Users       service.UserService
	Cards       service.CardService
	JWT         auth.JWTService

	// AccessLog enables chi's request logger.
	AccessLog bool
}

var (
	userIDParam = apimw.ParamRule{Name: "userId", Tag: "required,hex24"}
	cardIDParam = apimw.ParamRule{Name: "cardId", Tag: "required,hex24"}
)

// NewRouter builds the public API router.
//
// Only /signup and /signin are reachable without a token. Every other
// route, including unknown paths and unsupported methods, runs behind the
// auth gate, so an unauthenticated request never learns whether a path
// exists.
func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(apimw.TraceMiddleware)
	if deps.AccessLog {
		r.Use(chimw.Logger)
	}
	r.Use(metrics.Middleware)
	r.Use(apimw.Recoverer)

	authHandler := NewAuthHandler(deps.Credentials)
	userHandler := NewUserHandler(deps.Users)
	cardHandler := NewCardHandler(deps.Cards)
	authMiddleware := apimw.NewAuthMiddleware(deps.JWT)

	r.With(apimw.BindJSON[SignupRequest]).Post("/signup", Handle(authHandler.Signup))
	r.With(apimw.BindJSON[SigninRequest]).Post("/signin", Handle(authHandler.Signin))

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", Handle(userHandler.ListUsers))
			r.Get("/me", Handle(userHandler.GetCurrentUser))
			r.With(apimw.BindJSON[ProfileRequest]).Patch("/me", Handle(userHandler.UpdateProfile))
			r.With(apimw.BindJSON[AvatarRequest]).Patch("/me/avatar", Handle(userHandler.UpdateAvatar))
			r.With(apimw.ValidateParams(userIDParam)).Get("/{userId}", Handle(userHandler.GetUser))
		})

		r.Route("/cards", func(r chi.Router) {
			r.Get("/", Handle(cardHandler.ListCards))
			r.With(apimw.BindJSON[CardRequest]).Post("/", Handle(cardHandler.CreateCard))

			r.Route("/{cardId}", func(r chi.Router) {
				r.Use(apimw.ValidateParams(cardIDParam))
				r.Delete("/", Handle(cardHandler.DeleteCard))
				r.Put("/likes", Handle(cardHandler.LikeCard))
				r.Delete("/likes", Handle(cardHandler.UnlikeCard))
			})
		})

		r.NotFound(notFound)
		r.MethodNotAllowed(notFound)
	})

	return r
}

func notFound(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithFailure(w, r, domain.NewNotFoundError(shared.MsgPathNotFound))
}
