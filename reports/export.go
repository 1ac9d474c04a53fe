package reports

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/Govind-619/TurboLeague/models"
	"github.com/tealeg/xlsx"
)

// RegistrationHeaders are the column titles of the registrations export
var RegistrationHeaders = []string{
	"Registration ID", "League", "Name", "Age", "Mobile", "Email", "District",
	"State", "Role", "Status", "Profile Image", "Documents", "Registered At",
}

// RegistrationsWorkbook renders registrations as a single-sheet XLSX workbook
func RegistrationsWorkbook(regs []models.Registration) ([]byte, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Registrations")
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %v", err)
	}

	headerRow := sheet.AddRow()
	for _, h := range RegistrationHeaders {
		cell := headerRow.AddCell()
		cell.SetString(h)
		style := xlsx.NewStyle()
		font := xlsx.DefaultFont()
		font.Bold = true
		style.Font = *font
		cell.SetStyle(style)
	}

	for _, reg := range regs {
		row := sheet.AddRow()
		row.AddCell().SetString(reg.ID)
		row.AddCell().SetString(reg.LeagueType)
		row.AddCell().SetString(reg.Name)
		row.AddCell().SetInt(reg.Age)
		row.AddCell().SetString(reg.Mobile)
		row.AddCell().SetString(reg.Email)
		row.AddCell().SetString(reg.District)
		row.AddCell().SetString(reg.State)
		row.AddCell().SetString(reg.Role)
		row.AddCell().SetString(string(reg.Status))
		row.AddCell().SetString(deref(reg.ProfileImage))
		row.AddCell().SetString(strings.Join(reg.Documents, "\n"))
		row.AddCell().SetString(reg.RegisteredAt.Format("2006-01-02 15:04"))
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %v", err)
	}
	return buf.Bytes(), nil
}
