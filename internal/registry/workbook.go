// Package registry reads market participant registrations exported from the
// actor register as Excel workbooks.
package registry

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"charges/internal/domain"
)

// Columns of the first sheet. Row 1 is a header.
const (
	colMarketParticipantID = 0
	colRole                = 1
	colActive              = 2
	firstDataRow           = 1
)

var knownRoles = map[domain.MarketParticipantRole]bool{
	domain.RoleSystemOperator:             true,
	domain.RoleGridAccessProvider:         true,
	domain.RoleMeteringPointAdministrator: true,
	domain.RoleEnergySupplier:             true,
}

// RowError reports an unusable row. Rows are 1-based as shown in Excel.
type RowError struct {
	Row    int
	Reason string
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Reason)
}

// ReadMarketParticipants parses the first sheet of the workbook in r.
// Blank rows are skipped; the last registration of a repeated participant wins.
// Rows with an unknown role are returned as RowErrors next to the parsed participants.
func ReadMarketParticipants(r io.Reader) ([]domain.MarketParticipant, []RowError, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet: %w", err)
	}

	index := make(map[string]int)
	var participants []domain.MarketParticipant
	var rowErrs []RowError
	for i := firstDataRow; i < len(rows); i++ {
		row := rows[i]
		id := cellVal(row, colMarketParticipantID)
		if id == "" {
			continue
		}

		role := domain.MarketParticipantRole(strings.ToUpper(cellVal(row, colRole)))
		if !knownRoles[role] {
			rowErrs = append(rowErrs, RowError{Row: i + 1, Reason: fmt.Sprintf("unknown role %q", role)})
			continue
		}

		mp := domain.MarketParticipant{
			MarketParticipantID: id,
			BusinessProcessRole: role,
			IsActive:            parseActive(cellVal(row, colActive)),
		}
		if at, ok := index[id]; ok {
			participants[at] = mp
			continue
		}
		index[id] = len(participants)
		participants = append(participants, mp)
	}
	return participants, rowErrs, nil
}

// parseActive treats an empty cell as active.
func parseActive(s string) bool {
	switch strings.ToLower(s) {
	case "", "1", "true", "yes", "active":
		return true
	default:
		return false
	}
}

func cellVal(row []string, col int) string {
	if col < len(row) {
		return strings.TrimSpace(row[col])
	}
	return ""
}
