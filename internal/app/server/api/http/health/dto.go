package health

type healthOutput struct {
	Body HealthResponse
}

type HealthResponse struct {
	Status string `json:"status" example:"OK" doc:"Health status of the service"`
}

type rootOutput struct {
	Body RootResponse
}

type RootResponse struct {
	Message string `json:"message" example:"Secure Auth API Server"`
}
