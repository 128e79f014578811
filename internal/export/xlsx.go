// Package export writes stored leads to report files.
package export

import (
	"strconv"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/guardline/leads-cli/internal/model"
)

var leadColumns = []string{
	"ID", "Source", "Type", "Status", "Organization", "Industry",
	"Title", "Location", "States", "Contact Email", "Contact Phone",
	"Armed", "Guard Count", "End Date", "Confidence", "Created At",
}

// WriteXLSX writes leads to an XLSX workbook at path, one row per lead with
// a header row. The primary (first) contact supplies the email and phone
// columns.
func WriteXLSX(path string, leads []model.Lead) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Leads")
	if err != nil {
		return eris.Wrap(err, "export: add sheet")
	}

	header := sheet.AddRow()
	for _, col := range leadColumns {
		header.AddCell().SetString(col)
	}

	for _, l := range leads {
		row := sheet.AddRow()
		row.AddCell().SetString(l.ID)
		row.AddCell().SetString(l.Source)
		row.AddCell().SetString(string(l.Type))
		row.AddCell().SetString(string(l.Status))
		row.AddCell().SetString(l.Organization.Name)
		row.AddCell().SetString(l.Organization.Industry)
		row.AddCell().SetString(l.Opportunity.Title)
		row.AddCell().SetString(l.Opportunity.Location)
		row.AddCell().SetString(stateCodes(l.States))
		row.AddCell().SetString(primaryEmail(l.Contacts))
		row.AddCell().SetString(primaryPhone(l.Contacts))
		row.AddCell().SetString(armedLabel(l.Opportunity.IsArmed))
		row.AddCell().SetString(guardCountLabel(l.Opportunity.GuardCount))
		row.AddCell().SetString(dateLabel(l.Opportunity.EndDate))
		row.AddCell().SetFloatWithFormat(l.ConfidenceScore, "0.00")
		row.AddCell().SetString(l.CreatedAt.UTC().Format(time.RFC3339))
	}

	return eris.Wrapf(f.Save(path), "export: save %s", path)
}

func stateCodes(states []model.State) string {
	codes := make([]string, 0, len(states))
	for _, st := range states {
		codes = append(codes, st.Code)
	}
	return strings.Join(codes, ", ")
}

func primaryEmail(contacts []model.Contact) string {
	if len(contacts) == 0 {
		return ""
	}
	return contacts[0].Email
}

func primaryPhone(contacts []model.Contact) string {
	if len(contacts) == 0 {
		return ""
	}
	return contacts[0].Phone
}

func armedLabel(armed *bool) string {
	if armed == nil {
		return ""
	}
	if *armed {
		return "armed"
	}
	return "unarmed"
}

func guardCountLabel(count *int) string {
	if count == nil {
		return ""
	}
	return strconv.Itoa(*count)
}

func dateLabel(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
