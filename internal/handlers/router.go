package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-social/internal/middlewares"
	httpSwagger "github.com/swaggo/http-swagger"
)

// RouterDeps is everything the HTTP surface is built from.
// DB, Metrics, MetricsHandler and SigninLimiter are optional.
type RouterDeps struct {
	Registerer    Registerer
	Authenticator Authenticator
	Users         UserProfiler
	Posts         PostManager
	Tokener       middlewares.Tokener

	DB             *sqlx.DB
	Metrics        middlewares.RequestRecorder
	MetricsHandler http.Handler
	SigninLimiter  *middlewares.IPRateLimiter

	MaxPhotoBytes int64
}

// NewRouter wires the /api/v1 routes. Mutating routes run inside a per-request transaction.
// Client addresses come from the connection only; forwarding headers are not trusted.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	if d.Metrics != nil {
		r.Use(middlewares.MetricsMiddleware(d.Metrics))
	}

	auth := middlewares.AuthMiddleware(d.Tokener)
	tx := passthrough
	if d.DB != nil {
		tx = middlewares.TxMiddleware(d.DB)
	}
	limit := passthrough
	if d.SigninLimiter != nil {
		limit = d.SigninLimiter.Middleware
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.With(tx).Post("/users", NewRegisterHandler(d.Registerer))
		r.Get("/users", NewListUsersHandler(d.Users))
		r.Get("/users/{userId}", NewGetUserHandler(d.Users))
		r.Get("/users/{userId}/photo", NewGetUserPhotoHandler(d.Users))

		r.With(limit).Post("/auth/signin", NewSigninHandler(d.Authenticator))

		r.Group(func(r chi.Router) {
			r.Use(auth)

			r.With(tx).Put("/users/follow", NewFollowHandler(d.Users))
			r.With(tx).Put("/users/unfollow", NewUnfollowHandler(d.Users))
			r.With(tx).Put("/users/{userId}", NewUpdateUserHandler(d.Users, d.MaxPhotoBytes))
			r.With(tx).Delete("/users/{userId}", NewDeleteUserHandler(d.Users))

			r.With(tx).Post("/posts/new/{userId}", NewCreatePostHandler(d.Posts, d.MaxPhotoBytes))
			r.Get("/posts/by/{userId}", NewListUserPostsHandler(d.Posts))
			r.Get("/posts/feed/{userId}", NewFeedHandler(d.Posts))
			r.Get("/posts/{postId}/photo", NewGetPostPhotoHandler(d.Posts))
			r.With(tx).Delete("/posts/{postId}", NewDeletePostHandler(d.Posts))
			r.With(tx).Put("/posts/like", NewLikeHandler(d.Posts))
			r.With(tx).Put("/posts/unlike", NewUnlikeHandler(d.Posts))
			r.With(tx).Put("/posts/comment", NewCommentHandler(d.Posts))
			r.With(tx).Put("/posts/uncomment", NewUncommentHandler(d.Posts))
		})
	})

	if d.MetricsHandler != nil {
		r.Handle("/metrics", d.MetricsHandler)
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return r
}

func passthrough(next http.Handler) http.Handler { return next }
