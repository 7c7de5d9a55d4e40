package main

import (
	"log"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/brendanbates89/dot/app"
	frameworkapp "github.com/brendanbates89/dot/framework/app"
	"github.com/brendanbates89/dot/framework/cache"
	"github.com/brendanbates89/dot/framework/container"
	dothttp "github.com/brendanbates89/dot/framework/http"
	"github.com/brendanbates89/dot/framework/routing"
)

func main() {
	application, err := frameworkapp.New() // loads .env automatically
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}
	if err := application.Register(&app.AppServiceProvider{}); err != nil {
		log.Fatalf("register providers: %v", err)
	}
	if err := application.Boot(); err != nil {
		log.Fatalf("boot: %v", err)
	}

	router, err := application.Router()
	if err != nil {
		log.Fatalf("router: %v", err)
	}

	// Every request runs in its own child scope of the application
	// container; handlers resolve services through that scope.
	router.Middleware(application.ScopeMiddleware())

	router.Get("/", func(w http.ResponseWriter, req *http.Request) {
		res := dothttp.NewResponse(w)
		res.Success(map[string]any{"message": "Welcome to dot!"})
	})

	// Shows the per-request scope: the RequestInfo was registered by the
	// middleware into this request's scope only.
	router.Get("/whoami", func(w http.ResponseWriter, req *http.Request) {
		scope := dothttp.ScopeFrom(req.Context(), application.Container)
		res := dothttp.NewResponse(w)

		info, err := container.Get[dothttp.RequestInfo](scope)
		if err != nil {
			res.Error(http.StatusInternalServerError, err.Error())
			return
		}
		res.Success(map[string]any{"request_id": info.ID, "path": info.Path})
	})

	router.Prefix("/api/v1", func(api *routing.Router) {

		// GET /api/v1/users resolves the store and cache from the scope.
		api.Get("/users", func(w http.ResponseWriter, req *http.Request) {
			scope := dothttp.ScopeFrom(req.Context(), application.Container)
			res := dothttp.NewResponse(w)

			store, err := container.Get[app.UserStore](scope)
			if err != nil {
				res.Error(http.StatusInternalServerError, err.Error())
				return
			}
			kv, err := container.Get[cache.Store](scope)
			if err != nil {
				res.Error(http.StatusInternalServerError, err.Error())
				return
			}

			if cached, ok := kv.Get("users:all"); ok {
				res.Success(cached)
				return
			}
			users := store.All()
			kv.Set("users:all", users)
			res.Success(users)
		})

		// GET /api/v1/users/{id}
		api.Get("/users/{id}", func(w http.ResponseWriter, req *http.Request) {
			scope := dothttp.ScopeFrom(req.Context(), application.Container)
			res := dothttp.NewResponse(w)

			id, err := strconv.Atoi(routing.Param(req, "id"))
			if err != nil {
				res.Error(http.StatusBadRequest, "id must be an integer")
				return
			}
			store, err := container.Get[app.UserStore](scope)
			if err != nil {
				res.Error(http.StatusInternalServerError, err.Error())
				return
			}
			user, ok := store.Find(id)
			if !ok {
				res.NotFound("no such user")
				return
			}
			res.Success(user)
		})

		// POST /api/v1/users
		api.Post("/users", func(w http.ResponseWriter, req *http.Request) {
			scope := dothttp.ScopeFrom(req.Context(), application.Container)
			res := dothttp.NewResponse(w)

			var body struct {
				Name string `json:"name"`
			}
			if err := dothttp.NewRequest(req).Bind(&body); err != nil {
				res.Error(http.StatusBadRequest, err.Error())
				return
			}
			if body.Name == "" {
				res.Error(http.StatusUnprocessableEntity, "name is required")
				return
			}

			store, err := container.Get[app.UserStore](scope)
			if err != nil {
				res.Error(http.StatusInternalServerError, err.Error())
				return
			}
			logger, err := container.Get[zap.Logger](scope)
			if err != nil {
				res.Error(http.StatusInternalServerError, err.Error())
				return
			}
			kv, _ := container.Get[cache.Store](scope)
			if kv != nil {
				kv.Delete("users:all")
			}

			user := store.Add(body.Name)
			logger.Info("user created", zap.Int("id", user.ID), zap.String("name", user.Name))
			res.Created(user)
		})

		// POST /api/v1/mail/preview builds a one-off mailer via Generate, no
		// registry side effect.
		api.Post("/mail/preview", func(w http.ResponseWriter, req *http.Request) {
			scope := dothttp.ScopeFrom(req.Context(), application.Container)
			res := dothttp.NewResponse(w)

			var body struct {
				Host    string `json:"host"`
				To      string `json:"to"`
				Subject string `json:"subject"`
			}
			if err := dothttp.NewRequest(req).Bind(&body); err != nil {
				res.Error(http.StatusBadRequest, err.Error())
				return
			}

			mailer, err := container.Generate[app.Mailer](scope, app.MailerConfig{
				Host: body.Host,
				Port: "587",
				From: "preview@localhost",
			})
			if err != nil {
				res.Error(http.StatusUnprocessableEntity, err.Error())
				return
			}
			res.Success(map[string]any{"envelope": mailer.Compose(body.To, body.Subject)})
		})
	})

	if err := application.Run(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
