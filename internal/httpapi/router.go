package httpapi

import "net/http"

// NewMux wires the handlers. The search entry point also answers at "/",
// matching how the hosted functions were mounted at their root.
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	sh := SearchHandler{
		DB:           d.DB,
		Hub:          d.Hub,
		Searcher:     d.Searcher,
		FetchTimeout: d.FetchTimeout,
	}
	searchMux := methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sh.Search,
	})
	mux.HandleFunc("/", searchMux)
	mux.HandleFunc("/search", searchMux)

	jh := JobsHandler{DB: d.DB, Hub: d.Hub}
	mux.HandleFunc("/jobs", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.List,
	}))
	mux.HandleFunc("/jobs/", methodMux(map[string]http.HandlerFunc{
		http.MethodDelete: jh.DeleteByPath, // expects /jobs/{id}
	}))

	ch := ConfigHandler{
		CfgVal:      d.CfgVal,
		UserCfgPath: d.UserCfgPath,
		LoadCfg:     d.LoadCfg,
	}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Get,
		http.MethodPut: ch.Put,
	}))
	mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Path,
	}))

	sech := SecretsHandler{Apply: d.ApplyCredentials}
	mux.HandleFunc("/api/secrets/proxy", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sech.SetProxyAPIKey,
	}))

	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	hh := HealthHandler{}
	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: hh.Health,
	}))

	return mux
}
