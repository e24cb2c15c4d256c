package console

import (
	"context"

	"github.com/indocarisinternational/admin-caris/internal/assignment"
	"github.com/indocarisinternational/admin-caris/internal/attachment"
	"github.com/indocarisinternational/admin-caris/internal/blog"
	"github.com/indocarisinternational/admin-caris/internal/client"
	"github.com/indocarisinternational/admin-caris/internal/employee"
	"github.com/indocarisinternational/admin-caris/internal/project"
	"github.com/indocarisinternational/admin-caris/internal/shared/request"

	"github.com/gin-gonic/gin"
)

func dateOnly(s string) string {
	if len(s) >= 10 {
		return s[:10]
	}
	return s
}

func EmployeeResource(svc employee.Service) Resource {
	return Resource{
		Slug:    "pegawai",
		Plural:  "pegawais",
		Title:   "Data Pegawai",
		Noun:    "pegawai",
		Columns: []string{"Pegawai", "Jabatan", "Departemen", "Email Office"},
		Fields: []Field{
			{Name: "full_name", Label: "Nama Lengkap", Kind: KindText, Required: true},
			{Name: "employee_code", Label: "Kode Pegawai", Kind: KindText},
			{Name: "company_name", Label: "Perusahaan", Kind: KindText},
			{Name: "position", Label: "Jabatan", Kind: KindText, Required: true},
			{Name: "department", Label: "Departemen", Kind: KindText, Required: true},
			{Name: "nik_internal", Label: "NIK Internal", Kind: KindText},
			{Name: "join_date", Label: "Tanggal Bergabung", Kind: KindDate},
			{Name: "job_level", Label: "Level", Kind: KindText},
			{Name: "specialization", Label: "Spesialisasi", Kind: KindText},
			{Name: "work_experience", Label: "Pengalaman Kerja", Kind: KindTextarea},
			{Name: "education", Label: "Pendidikan", Kind: KindText},
			{Name: "email_office", Label: "Email Office", Kind: KindEmail},
			{Name: "phone_number", Label: "No. Telepon", Kind: KindText},
			{Name: "linkedin_url", Label: "LinkedIn", Kind: KindURL},
			{Name: "portfolio_url", Label: "Portfolio", Kind: KindURL},
			{Name: "instagram_url", Label: "Instagram", Kind: KindURL},
			{Name: "id_card_number", Label: "No. ID Card", Kind: KindText},
			{Name: "id_card_valid_until", Label: "ID Card Berlaku Hingga", Kind: KindDate},
			{Name: "blood_type", Label: "Golongan Darah", Kind: KindText},
			{Name: "address", Label: "Alamat", Kind: KindTextarea},
			{Name: "digital_signature_url", Label: "Tanda Tangan Digital (URL)", Kind: KindURL},
			{Name: "qr_code_url", Label: "QR Code (URL)", Kind: KindURL},
			{Name: "cv_url", Label: "CV (URL)", Kind: KindURL},
			{Name: "badges", Label: "Badges (pisahkan dengan koma)", Kind: KindText},
			{Name: employee.PhotoField, Label: "Foto Profil", Kind: KindFile, Accept: "image/*"},
		},
		FileField: employee.PhotoField,
		List: func(ctx context.Context) ([]Row, error) {
			list, err := svc.GetAll(ctx)
			if err != nil {
				return nil, err
			}
			rows := make([]Row, len(list))
			for i, e := range list {
				rows[i] = Row{ID: e.ID, Cells: []Cell{
					{Text: e.FullName, Image: e.ProfilePhotoURL},
					{Text: e.Position},
					{Text: e.Department},
					{Text: e.EmailOffice},
				}}
			}
			return rows, nil
		},
		Delete: svc.Delete,
		Values: func(ctx context.Context, id string) (Values, error) {
			e, err := svc.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			v := valuesOf(e)
			v[employee.PhotoField] = e.ProfilePhotoURL
			return v, nil
		},
		Create: func(c *gin.Context) error {
			return submit(c, employee.PhotoField, func(ctx context.Context, req employee.CreateEmployeeRequest, f *attachment.File) error {
				_, err := svc.Create(ctx, req, f)
				return err
			})
		},
		Update: func(c *gin.Context, id string) error {
			return submit(c, employee.PhotoField, func(ctx context.Context, req employee.UpdateEmployeeRequest, f *attachment.File) error {
				_, err := svc.Update(ctx, id, req, f)
				return err
			})
		},
	}
}

func ProjectResource(svc project.Service, clients client.Service) Resource {
	statuses := make([]Option, len(project.Statuses))
	for i, s := range project.Statuses {
		statuses[i] = Option{Value: string(s), Label: s.Label()}
	}

	return Resource{
		Slug:    "project",
		Plural:  "projects",
		Title:   "Projects",
		Noun:    "project",
		Columns: []string{"Project", "Client", "Date", "Status"},
		Fields: []Field{
			{Name: "name", Label: "Nama Project", Kind: KindText, Required: true},
			{Name: "client_id", Label: "Client", Kind: KindSelect, Required: true, Options: func(ctx context.Context) ([]Option, error) {
				list, err := clients.GetOptions(ctx)
				if err != nil {
					return nil, err
				}
				opts := make([]Option, len(list))
				for i, o := range list {
					opts[i] = Option{Value: o.ID, Label: o.Name}
				}
				return opts, nil
			}},
			{Name: "type", Label: "Tipe", Kind: KindSelect, Required: true, Options: staticOptions(
				Option{Value: "web", Label: "Web"},
				Option{Value: "mobile", Label: "Mobile"},
				Option{Value: "desktop", Label: "Desktop"},
			)},
			{Name: "completed_features", Label: "Fitur Selesai", Kind: KindNumber, Required: true},
			{Name: "total_features", Label: "Total Fitur", Kind: KindNumber, Required: true},
			{Name: "started_at", Label: "Tanggal Mulai", Kind: KindDate, Required: true},
			{Name: "deadline", Label: "Deadline", Kind: KindDate, Required: true},
			{Name: "status", Label: "Status", Kind: KindSelect, Required: true, Options: staticOptions(statuses...)},
			{Name: "description", Label: "Deskripsi", Kind: KindTextarea, Required: true},
			{Name: project.ImageField, Label: "Gambar", Kind: KindFile, Required: true, Accept: "image/*"},
		},
		FileField: project.ImageField,
		List: func(ctx context.Context) ([]Row, error) {
			list, err := svc.GetAll(ctx)
			if err != nil {
				return nil, err
			}
			rows := make([]Row, len(list))
			for i, p := range list {
				rows[i] = Row{ID: p.ID, Cells: []Cell{
					{Text: p.Name, Image: p.ImageURL},
					{Text: p.ClientName},
					{Text: p.StartedAt + " s/d " + p.Deadline},
					{Badge: p.StatusLabel, Color: p.StatusColor, Text: p.Progress},
				}}
			}
			return rows, nil
		},
		Delete: svc.Delete,
		Values: func(ctx context.Context, id string) (Values, error) {
			p, err := svc.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			v := valuesOf(p)
			v[project.ImageField] = p.ImageURL
			return v, nil
		},
		Create: func(c *gin.Context) error {
			return submit(c, project.ImageField, func(ctx context.Context, req project.CreateProjectRequest, f *attachment.File) error {
				_, err := svc.Create(ctx, req, f)
				return err
			})
		},
		Update: func(c *gin.Context, id string) error {
			return submit(c, project.ImageField, func(ctx context.Context, req project.UpdateProjectRequest, f *attachment.File) error {
				_, err := svc.Update(ctx, id, req, f)
				return err
			})
		},
	}
}

func ClientResource(svc client.Service) Resource {
	return Resource{
		Slug:    "client",
		Plural:  "clients",
		Title:   "Clients",
		Noun:    "client",
		Columns: []string{"Client", "Tanggal Menjadi Client"},
		Fields: []Field{
			{Name: "name", Label: "Nama Client", Kind: KindText, Required: true},
			{Name: "client_since", Label: "Tanggal Menjadi Client", Kind: KindDate, Required: true},
			{Name: client.LogoField, Label: "Logo", Kind: KindFile, Required: true, Accept: "image/*"},
		},
		FileField: client.LogoField,
		List: func(ctx context.Context) ([]Row, error) {
			list, err := svc.GetAll(ctx)
			if err != nil {
				return nil, err
			}
			rows := make([]Row, len(list))
			for i, cl := range list {
				rows[i] = Row{ID: cl.ID, Cells: []Cell{
					{Text: cl.Name, Image: cl.LogoURL},
					{Text: cl.ClientSince},
				}}
			}
			return rows, nil
		},
		Delete: svc.Delete,
		Values: func(ctx context.Context, id string) (Values, error) {
			cl, err := svc.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			v := valuesOf(cl)
			v[client.LogoField] = cl.LogoURL
			return v, nil
		},
		Create: func(c *gin.Context) error {
			return submit(c, client.LogoField, func(ctx context.Context, req client.CreateClientRequest, f *attachment.File) error {
				_, err := svc.Create(ctx, req, f)
				return err
			})
		},
		Update: func(c *gin.Context, id string) error {
			return submit(c, client.LogoField, func(ctx context.Context, req client.UpdateClientRequest, f *attachment.File) error {
				_, err := svc.Update(ctx, id, req, f)
				return err
			})
		},
	}
}

func BlogResource(svc blog.Service) Resource {
	return Resource{
		Slug:    "blog",
		Plural:  "blogs",
		Title:   "Blogs",
		Noun:    "blog",
		Columns: []string{"Judul Blog", "Tanggal Dibuat", "Terakhir Diupdate"},
		Fields: []Field{
			{Name: "title", Label: "Judul", Kind: KindText, Required: true},
			{Name: "published_at", Label: "Tanggal Dibuat", Kind: KindDate, Required: true},
			{Name: "revised_at", Label: "Terakhir Diupdate", Kind: KindDate, Required: true},
			{Name: "body", Label: "Isi", Kind: KindTextarea, Required: true},
			{Name: blog.BannerField, Label: "Banner", Kind: KindFile, Required: true, Accept: "image/*"},
		},
		FileField: blog.BannerField,
		List: func(ctx context.Context) ([]Row, error) {
			list, err := svc.GetAll(ctx)
			if err != nil {
				return nil, err
			}
			rows := make([]Row, len(list))
			for i, b := range list {
				rows[i] = Row{ID: b.ID, Cells: []Cell{
					{Text: b.Title, Image: b.BannerURL},
					{Text: b.PublishedAt},
					{Text: b.RevisedAt},
				}}
			}
			return rows, nil
		},
		Delete: svc.Delete,
		Values: func(ctx context.Context, id string) (Values, error) {
			b, err := svc.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			v := valuesOf(b)
			v[blog.BannerField] = b.BannerURL
			return v, nil
		},
		Create: func(c *gin.Context) error {
			return submit(c, blog.BannerField, func(ctx context.Context, req blog.CreateBlogRequest, f *attachment.File) error {
				_, err := svc.Create(ctx, req, f)
				return err
			})
		},
		Update: func(c *gin.Context, id string) error {
			return submit(c, blog.BannerField, func(ctx context.Context, req blog.UpdateBlogRequest, f *attachment.File) error {
				_, err := svc.Update(ctx, id, req, f)
				return err
			})
		},
	}
}

func AssignmentResource(svc assignment.Service, employees employee.Service, projects project.Service) Resource {
	return Resource{
		Slug:    "assignment",
		Plural:  "assignments",
		Title:   "Assignments",
		Noun:    "assignment",
		Columns: []string{"Pegawai", "Project", "Role", "Tanggal Assign"},
		Fields: []Field{
			{Name: "employee_id", Label: "Pegawai", Kind: KindSelect, Required: true, Options: func(ctx context.Context) ([]Option, error) {
				list, err := employees.GetOptions(ctx)
				if err != nil {
					return nil, err
				}
				opts := make([]Option, len(list))
				for i, e := range list {
					opts[i] = Option{Value: e.ID, Label: e.FullName + " (" + e.Position + ")"}
				}
				return opts, nil
			}},
			{Name: "project_id", Label: "Project", Kind: KindSelect, Required: true, Options: func(ctx context.Context) ([]Option, error) {
				list, err := projects.GetOptions(ctx)
				if err != nil {
					return nil, err
				}
				opts := make([]Option, len(list))
				for i, p := range list {
					opts[i] = Option{Value: p.ID, Label: p.Name}
				}
				return opts, nil
			}},
			{Name: "role", Label: "Role", Kind: KindText, Required: true},
		},
		List: func(ctx context.Context) ([]Row, error) {
			list, err := svc.GetAll(ctx)
			if err != nil {
				return nil, err
			}
			rows := make([]Row, len(list))
			for i, a := range list {
				row := Row{ID: a.ID, Cells: make([]Cell, 4)}
				if a.Employee != nil {
					row.Cells[0] = Cell{Text: a.Employee.FullName}
				}
				if a.Project != nil {
					row.Cells[1] = Cell{Text: a.Project.Name}
				}
				row.Cells[2] = Cell{Text: a.Role}
				row.Cells[3] = Cell{Text: dateOnly(a.CreatedAt)}
				rows[i] = row
			}
			return rows, nil
		},
		Delete: svc.Delete,
		Values: func(ctx context.Context, id string) (Values, error) {
			a, err := svc.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			return valuesOf(a), nil
		},
		Create: func(c *gin.Context) error {
			var req assignment.CreateAssignmentRequest
			if err := request.Bind(c, &req); err != nil {
				return err
			}
			_, err := svc.Create(c.Request.Context(), req)
			return err
		},
		Update: func(c *gin.Context, id string) error {
			var req assignment.UpdateAssignmentRequest
			if err := request.Bind(c, &req); err != nil {
				return err
			}
			_, err := svc.Update(c.Request.Context(), id, req)
			return err
		},
	}
}
