package response

type Response struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type UptimeResponse struct {
	UptimePercentage float64 `json:"uptime_percentage"`
}
