package request

type AddDeploymentRequest struct {
	Name string `json:"name" binding:"required" validate:"required"`
	URL  string `json:"url" binding:"required,url" validate:"required,url"`
}

type SetActiveRequest struct {
	Index *int `json:"index" binding:"required,gte=0"`
}
