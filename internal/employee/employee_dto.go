package employee

import (
	"encoding/json"
	"strings"
)

type EmployeeRequest struct {
	EmployeeCode        string     `json:"employee_code" form:"employee_code"`
	FullName            string     `json:"full_name" form:"full_name" binding:"required,notblank"`
	CompanyName         string     `json:"company_name" form:"company_name"`
	Position            string     `json:"position" form:"position" binding:"required,notblank"`
	Department          string     `json:"department" form:"department" binding:"required,notblank"`
	NIKInternal         string     `json:"nik_internal" form:"nik_internal"`
	JoinDate            string     `json:"join_date" form:"join_date" binding:"omitempty,datetime=2006-01-02"`
	JobLevel            string     `json:"job_level" form:"job_level"`
	Specialization      string     `json:"specialization" form:"specialization"`
	WorkExperience      string     `json:"work_experience" form:"work_experience"`
	Education           string     `json:"education" form:"education"`
	EmailOffice         string     `json:"email_office" form:"email_office" binding:"omitempty,email"`
	PhoneNumber         string     `json:"phone_number" form:"phone_number"`
	LinkedinURL         string     `json:"linkedin_url" form:"linkedin_url"`
	PortfolioURL        string     `json:"portfolio_url" form:"portfolio_url"`
	InstagramURL        string     `json:"instagram_url" form:"instagram_url"`
	IDCardNumber        string     `json:"id_card_number" form:"id_card_number"`
	IDCardValidUntil    string     `json:"id_card_valid_until" form:"id_card_valid_until" binding:"omitempty,datetime=2006-01-02"`
	BloodType           string     `json:"blood_type" form:"blood_type"`
	Address             string     `json:"address" form:"address"`
	DigitalSignatureURL string     `json:"digital_signature_url" form:"digital_signature_url"`
	QRCodeURL           string     `json:"qr_code_url" form:"qr_code_url"`
	CVURL               string     `json:"cv_url" form:"cv_url"`
	Badges              BadgeInput `json:"badges" form:"badges"`
}

type (
	CreateEmployeeRequest = EmployeeRequest
	UpdateEmployeeRequest = EmployeeRequest
)

// BadgeInput is the comma separated badge field of the form. JSON bodies may
// also send the list form returned by EmployeeResponse.Badges.
type BadgeInput string

func (b *BadgeInput) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*b = BadgeInput(strings.Join(list, ","))
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*b = BadgeInput(raw)
	return nil
}

// ParseBadges splits a comma separated list, trimming entries and dropping blanks.
func ParseBadges(raw string) []string {
	badges := []string{}
	for _, b := range strings.Split(raw, ",") {
		if b = strings.TrimSpace(b); b != "" {
			badges = append(badges, b)
		}
	}
	return badges
}

type EmployeeResponse struct {
	ID                  string   `json:"id"`
	EmployeeCode        string   `json:"employee_code"`
	FullName            string   `json:"full_name"`
	CompanyName         string   `json:"company_name"`
	Position            string   `json:"position"`
	Department          string   `json:"department"`
	NIKInternal         string   `json:"nik_internal,omitempty"`
	JoinDate            string   `json:"join_date,omitempty"`
	JobLevel            string   `json:"job_level,omitempty"`
	Specialization      string   `json:"specialization,omitempty"`
	WorkExperience      string   `json:"work_experience,omitempty"`
	Education           string   `json:"education,omitempty"`
	EmailOffice         string   `json:"email_office,omitempty"`
	PhoneNumber         string   `json:"phone_number,omitempty"`
	LinkedinURL         string   `json:"linkedin_url,omitempty"`
	PortfolioURL        string   `json:"portfolio_url,omitempty"`
	InstagramURL        string   `json:"instagram_url,omitempty"`
	IDCardNumber        string   `json:"id_card_number,omitempty"`
	IDCardValidUntil    string   `json:"id_card_valid_until,omitempty"`
	BloodType           string   `json:"blood_type,omitempty"`
	Address             string   `json:"address,omitempty"`
	DigitalSignatureURL string   `json:"digital_signature_url,omitempty"`
	QRCodeURL           string   `json:"qr_code_url,omitempty"`
	CVURL               string   `json:"cv_url,omitempty"`
	Badges              []string `json:"badges"`
	ProfilePhotoPath    string   `json:"profile_photo_path,omitempty"`
	ProfilePhotoURL     string   `json:"profile_photo_url,omitempty"`
}

type EmployeeOptionResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Position string `json:"position"`
}
