package employee

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const DefaultCompanyName = "PT. Indo Caris International"

type Employee struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primaryKey"`
	EmployeeCode        string         `gorm:"column:employee_code;uniqueIndex:uq_employee_code"`
	FullName            string         `gorm:"column:full_name;not null"`
	CompanyName         string         `gorm:"column:company_name"`
	Position            string         `gorm:"column:position;not null"`
	Department          string         `gorm:"column:department;not null"`
	NIKInternal         string         `gorm:"column:nik_internal"`
	JoinDate            *time.Time     `gorm:"column:join_date;type:date"`
	JobLevel            string         `gorm:"column:job_level"`
	Specialization      string         `gorm:"column:specialization"`
	WorkExperience      string         `gorm:"column:work_experience"`
	Education           string         `gorm:"column:education"`
	EmailOffice         string         `gorm:"column:email_office"`
	PhoneNumber         string         `gorm:"column:phone_number"`
	LinkedinURL         string         `gorm:"column:linkedin_url"`
	PortfolioURL        string         `gorm:"column:portfolio_url"`
	InstagramURL        string         `gorm:"column:instagram_url"`
	IDCardNumber        string         `gorm:"column:id_card_number"`
	IDCardValidUntil    *time.Time     `gorm:"column:id_card_valid_until;type:date"`
	BloodType           string         `gorm:"column:blood_type"`
	Address             string         `gorm:"column:address"`
	DigitalSignatureURL string         `gorm:"column:digital_signature_url"`
	QRCodeURL           string         `gorm:"column:qr_code_url"`
	CVURL               string         `gorm:"column:cv_url"`
	Badges              pq.StringArray `gorm:"column:badges;type:text[]"`
	ProfilePhotoPath    string         `gorm:"column:profile_photo_url"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (Employee) TableName() string {
	return "employees"
}
