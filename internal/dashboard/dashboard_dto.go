package dashboard

type BlogCard struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	PublishedAt string `json:"published_at"`
	Excerpt     string `json:"excerpt"`
	BannerURL   string `json:"banner_url"`
}

type ProjectRow struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ClientName  string `json:"client_name"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	StatusLabel string `json:"status_label"`
	StatusColor string `json:"status_color"`
	Progress    string `json:"progress"`
}

type TeamMember struct {
	ID             string `json:"id"`
	FullName       string `json:"full_name"`
	JobLevel       string `json:"job_level"`
	Specialization string `json:"specialization"`
	InstagramURL   string `json:"instagram_url"`
	PhotoURL       string `json:"photo_url"`
}

type Summary struct {
	Blogs    []BlogCard   `json:"blogs"`
	Projects []ProjectRow `json:"projects"`
	Team     []TeamMember `json:"team"`
}
