package router

import (
	"net/http"

	"death-registry/app/controllers"
	"death-registry/app/middleware"
)

// New builds the route table. Role checks live in the services, so the only
// middleware split here is authenticated vs not.
func New(authCtrl *controllers.AuthController, deathCtrl *controllers.DeathController, mw *middleware.Auth) http.Handler {
	mux := http.NewServeMux()

	// public
	mux.HandleFunc("POST /register", authCtrl.Register)
	mux.HandleFunc("POST /login", authCtrl.Login)
	mux.HandleFunc("GET /users", authCtrl.Index)
	mux.HandleFunc("POST /search", authCtrl.Search)

	// token required
	mux.Handle("POST /check-token", mw.RequireAuth(http.HandlerFunc(authCtrl.CheckToken)))
	mux.Handle("POST /logout", mw.RequireAuth(http.HandlerFunc(authCtrl.Logout)))
	mux.Handle("POST /deaths", mw.RequireAuth(http.HandlerFunc(deathCtrl.Store)))
	mux.Handle("GET /deaths", mw.RequireAuth(http.HandlerFunc(deathCtrl.Index)))
	mux.Handle("POST /deaths/{id}", mw.RequireAuth(http.HandlerFunc(deathCtrl.Update)))

	return mux
}
