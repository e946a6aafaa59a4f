package http

import (
	"github.com/balco/tracker/internal/tracker/domain"
	"github.com/balco/tracker/pkg/trackersdk"
)

func toUser(id domain.Identity) trackersdk.User {
	return trackersdk.User{ID: id.ID, Name: id.Name, Email: id.Email, Role: string(id.Role)}
}

func toProductType(pt domain.ProductType) trackersdk.ProductType {
	return trackersdk.ProductType{
		ID:          pt.ID,
		Name:        pt.Name,
		Description: pt.Description,
		CreatedAt:   pt.CreatedAt,
		UpdatedAt:   pt.UpdatedAt,
	}
}

func toColor(c domain.Color) trackersdk.Color {
	return trackersdk.Color{
		ID:        c.ID,
		Name:      c.Name,
		HexCode:   c.HexCode,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toRecord(r domain.ProductionRecord) trackersdk.ProductionRecord {
	return trackersdk.ProductionRecord{
		ID:              r.ID,
		ProductTypeID:   r.ProductTypeID,
		ProductTypeName: r.ProductTypeName,
		ColorID:         r.ColorID,
		ColorName:       r.ColorName,
		ColorHex:        r.ColorHex,
		Quantity:        r.Quantity,
		Date:            r.Date.Format(domain.DateLayout),
		Shift:           string(r.Shift),
		Operator:        r.Operator,
		Notes:           r.Notes,
		Quality:         string(r.Quality),
		CreatedBy:       r.CreatedBy,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func toSummary(s domain.ProductionSummary) trackersdk.SummaryResponse {
	out := trackersdk.SummaryResponse{
		TodayTotal:       s.TodayTotal,
		WeeklyTotal:      s.WeeklyTotal,
		RecordCount:      s.RecordCount,
		ProductTypeCount: s.ProductTypeCount,
		ByProductType:    make([]trackersdk.NamedQuantity, 0, len(s.ByProductType)),
		ByShift:          make(map[string]int, len(domain.Shifts)),
		ByQuality:        make(map[string]int, len(domain.Qualities)),
	}
	for _, nq := range s.ByProductType {
		out.ByProductType = append(out.ByProductType, trackersdk.NamedQuantity{Name: nq.Name, Quantity: nq.Quantity})
	}

	// Every shift and grade is present so charts need no gap handling.
	for _, sh := range domain.Shifts {
		out.ByShift[string(sh)] = 0
	}
	for _, q := range domain.Qualities {
		out.ByQuality[string(q)] = 0
	}
	for k, v := range s.ByShift {
		out.ByShift[string(k)] = v
	}
	for k, v := range s.ByQuality {
		out.ByQuality[string(k)] = v
	}
	return out
}
