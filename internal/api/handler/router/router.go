package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/commerce-insights-api/pkg/apiErrors"
)

var (
	WithRoutes = func(routes ...Route) ConfigRouter {
		return func(router *Router) {
			router.AddRoutes(routes...)
		}
	}
)

type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler // Middlewares aplicados apenas a esta rota
}

type Router struct {
	router *httprouter.Router
}

type ConfigRouter func(router *Router)

// New cria o router com respostas de rota inexistente e método não suportado
// no mesmo envelope de erro usado pelos handlers
func New(configs ...ConfigRouter) Router {
	rt := httprouter.New()
	rt.NotFound = http.HandlerFunc(notFound)
	rt.MethodNotAllowed = http.HandlerFunc(methodNotAllowed)

	router := &Router{router: rt}
	for _, config := range configs {
		config(router)
	}

	return *router
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// AddRoutes registra as rotas envolvendo cada handler nos seus middlewares
func (r Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		handler := route.Handler

		// do último para o primeiro, para que o primeiro da lista seja o mais externo
		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			handler = route.Middlewares[i](handler)
		}

		r.router.Handler(route.Method, route.Path, handler)
	}
}

func notFound(w http.ResponseWriter, req *http.Request) {
	apiErrors.WriteError(w, apiErrors.ErrRouteNotFound, "Route not found", map[string]string{
		"path": req.URL.Path,
	})
}

// o httprouter já preenche o header Allow antes de chamar este handler
func methodNotAllowed(w http.ResponseWriter, req *http.Request) {
	apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "Method not allowed", map[string]string{
		"method": req.Method,
		"allow":  w.Header().Get("Allow"),
	})
}
