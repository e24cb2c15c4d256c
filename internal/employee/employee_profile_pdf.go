package employee

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"
)

func (s *service) ProfilePDF(ctx context.Context, id string) ([]byte, error) {
	resp, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	out, err := renderProfile(resp)
	if err != nil {
		s.logger.Error("render employee profile failed", zap.String("employee_id", id), zap.Error(err))
		return nil, err
	}
	return out, nil
}

type profileRow struct {
	label string
	value string
}

func renderProfile(e EmployeeResponse) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Profil Pegawai - "+e.FullName, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(e.CompanyName), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, "Profil Pegawai", "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, tr(e.FullName), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("%s - %s", e.Position, e.Department)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	sections := []struct {
		title string
		rows  []profileRow
	}{
		{"Identitas", []profileRow{
			{"Kode Pegawai", e.EmployeeCode},
			{"NIK Internal", e.NIKInternal},
			{"Tanggal Bergabung", e.JoinDate},
			{"Level", e.JobLevel},
			{"Spesialisasi", e.Specialization},
			{"Pengalaman", e.WorkExperience},
			{"Pendidikan", e.Education},
			{"No. KTP", e.IDCardNumber},
			{"Berlaku Hingga", e.IDCardValidUntil},
			{"Golongan Darah", e.BloodType},
		}},
		{"Kontak", []profileRow{
			{"Email Kantor", e.EmailOffice},
			{"Telepon", e.PhoneNumber},
			{"LinkedIn", e.LinkedinURL},
			{"Portofolio", e.PortfolioURL},
			{"Instagram", e.InstagramURL},
			{"Alamat", e.Address},
		}},
		{"Dokumen", []profileRow{
			{"Tanda Tangan Digital", e.DigitalSignatureURL},
			{"QR Code", e.QRCodeURL},
			{"CV", e.CVURL},
			{"Badges", strings.Join(e.Badges, ", ")},
		}},
	}

	for _, sec := range sections {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, sec.title, "B", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, row := range sec.rows {
			value := row.value
			if value == "" {
				value = "-"
			}
			pdf.CellFormat(50, 6, row.label, "", 0, "L", false, 0, "")
			pdf.MultiCell(0, 6, tr(value), "", "L", false)
		}
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
