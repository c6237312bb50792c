package handlers

import "net/http"

// ServiceInfo is the body of the health check response.
type ServiceInfo struct {
	Name      string            `json:"name"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// Health returns a handler for GET / that reports the service version and the available endpoint
// groups.
func Health(name, version string) http.HandlerFunc {
	info := ServiceInfo{
		Name:    name,
		Version: version,
		Endpoints: map[string]string{
			"appointments":  "/appointments",
			"results":       "/results",
			"notifications": "/notifications",
		},
	}
	return func(w http.ResponseWriter, r *http.Request) {
		writeSuccess(w, http.StatusOK, info, name+" is running")
	}
}
