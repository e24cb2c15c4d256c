package project

type ProjectRequest struct {
	Name              string `json:"name" form:"name" binding:"required,notblank"`
	ClientID          string `json:"client_id" form:"client_id" binding:"required,uuid"`
	Type              string `json:"type" form:"type" binding:"required,oneof=web mobile desktop"`
	CompletedFeatures *int   `json:"completed_features" form:"completed_features" binding:"required,min=0"`
	TotalFeatures     *int   `json:"total_features" form:"total_features" binding:"required,min=0"`
	StartedAt         string `json:"started_at" form:"started_at" binding:"required,datetime=2006-01-02"`
	Deadline          string `json:"deadline" form:"deadline" binding:"required,datetime=2006-01-02"`
	Status            string `json:"status" form:"status" binding:"required,notblank"`
	Description       string `json:"description" form:"description" binding:"required,notblank"`
}

type (
	CreateProjectRequest = ProjectRequest
	UpdateProjectRequest = ProjectRequest
)

type ProjectResponse struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	ClientID          string `json:"client_id"`
	ClientName        string `json:"client_name,omitempty"`
	Type              string `json:"type"`
	CompletedFeatures int    `json:"completed_features"`
	TotalFeatures     int    `json:"total_features"`
	Progress          string `json:"progress"`
	StartedAt         string `json:"started_at"`
	Deadline          string `json:"deadline"`
	Status            string `json:"status"`
	StatusLabel       string `json:"status_label"`
	StatusColor       string `json:"status_color"`
	Description       string `json:"description"`
	ImagePath         string `json:"image_path"`
	ImageURL          string `json:"image_url"`
	CreatedAt         string `json:"created_at"`
}

type ProjectOptionResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}
