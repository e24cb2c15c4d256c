package client

type ClientRequest struct {
	Name        string `json:"name" form:"name" binding:"required,notblank"`
	ClientSince string `json:"client_since" form:"client_since" binding:"required,datetime=2006-01-02"`
}

type (
	CreateClientRequest = ClientRequest
	UpdateClientRequest = ClientRequest
)

type ClientResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ClientSince string `json:"client_since"`
	LogoPath    string `json:"logo_path"`
	LogoURL     string `json:"logo_url"`
	CreatedAt   string `json:"created_at"`
}

type ClientOptionResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
