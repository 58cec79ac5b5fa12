package model

// AppName identifies the service in health responses.
const AppName = "mita"

const (
	StatusUp   = "UP"
	StatusDown = "DOWN"
)

// HealthStatus is the response for GET /health.
type HealthStatus struct {
	Status string `json:"status"`
	App    string `json:"app"`
}

// NewHealthStatus returns the fixed health payload.
func NewHealthStatus() HealthStatus {
	return HealthStatus{Status: StatusUp, App: AppName}
}

// Greeting is the response for GET /hello.
type Greeting struct {
	Message string `json:"message"`
}

// NewGreeting returns the fixed greeting payload.
func NewGreeting() Greeting {
	return Greeting{Message: "Hello from MITA App!"}
}

// Readiness is the response for GET /ready on the admin listener.
type Readiness struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
